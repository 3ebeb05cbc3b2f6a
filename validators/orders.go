package validators

import (
	"errors"
	"strings"

	"github.com/yeremiapane/grubdash/models"
	"github.com/yeremiapane/grubdash/pipeline"
	"github.com/yeremiapane/grubdash/repository"
	"github.com/yeremiapane/grubdash/utils"
)

const (
	OrderIDParam = "orderId"

	foundOrderKey = "foundOrder"
)

// OrderFields are the fields an order body must carry on create. Update
// additionally requires "status".
var OrderFields = []string{"deliverTo", "mobileNumber", "dishes"}

// OrderTextFields are the OrderFields stored as strings.
var OrderTextFields = []string{"deliverTo", "mobileNumber"}

var errNoResolvedOrder = errors.New("pending guard used without a resolved order")

// DishesIsArray fails unless data.dishes is a non-empty JSON array. The
// type is checked before the length, so a non-array never reaches the
// emptiness check.
func DishesIsArray() pipeline.Step {
	return func(r *pipeline.Request) error {
		dishes, ok := r.Data.List("dishes")
		if !ok {
			return utils.Validationf("The dishes key must be an array.")
		}
		if len(dishes) < 1 {
			return utils.Validationf("The dishes array cannot be empty.")
		}
		return nil
	}
}

// DishesHaveQuantity fails at the first line item whose quantity is
// missing, not a number, or not greater than zero.
func DishesHaveQuantity() pipeline.Step {
	return func(r *pipeline.Request) error {
		dishes, _ := r.Data.List("dishes")
		for i, item := range dishes {
			fields, _ := item.(map[string]interface{})
			quantity, ok := pipeline.Payload(fields).Number("quantity")
			if !ok || quantity <= 0 {
				return utils.Validationf("Each dish must have a quantity greater than 0. Dish %d does not.", i)
			}
		}
		return nil
	}
}

// StatusValid fails unless data.status is one of models.ValidStatuses.
func StatusValid() pipeline.Step {
	return func(r *pipeline.Request) error {
		if !models.IsValidStatus(r.Data.String("status")) {
			return utils.Validationf("The status is invalid. Must be one of: %s", strings.Join(models.ValidStatuses, ", "))
		}
		return nil
	}
}

// OrderExists resolves the order named by the orderId path parameter and
// makes it available through FoundOrder.
func OrderExists(store repository.Store[models.Order]) pipeline.Step {
	return func(r *pipeline.Request) error {
		id := r.Param(OrderIDParam)
		order, err := store.Find(r.Context(), id)
		if errors.Is(err, repository.ErrNotFound) {
			return utils.NotFoundf("Order does not exist: %s", id)
		}
		if err != nil {
			return err
		}
		r.Set(foundOrderKey, order)
		return nil
	}
}

// FoundOrder returns the order stored by OrderExists.
func FoundOrder(r *pipeline.Request) (models.Order, bool) {
	v, ok := r.Get(foundOrderKey)
	if !ok {
		return models.Order{}, false
	}
	order, ok := v.(models.Order)
	return order, ok
}

// IsPending fails unless the resolved order has status "pending". It must
// run after OrderExists.
func IsPending() pipeline.Step {
	return func(r *pipeline.Request) error {
		order, ok := FoundOrder(r)
		if !ok {
			return errNoResolvedOrder
		}
		if order.Status != models.StatusPending {
			return utils.Validationf("An order can only be deleted if the status is pending. Order status: %s.", order.Status)
		}
		return nil
	}
}
