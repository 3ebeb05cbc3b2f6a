package validators

import (
	"errors"
	"math"

	"github.com/yeremiapane/grubdash/models"
	"github.com/yeremiapane/grubdash/pipeline"
	"github.com/yeremiapane/grubdash/repository"
	"github.com/yeremiapane/grubdash/utils"
)

const (
	DishIDParam = "dishId"

	foundDishKey = "foundDish"
)

// DishFields are the fields a dish body must carry on create and update.
var DishFields = []string{"name", "description", "price", "image_url"}

// DishTextFields are the DishFields stored as strings.
var DishTextFields = []string{"name", "description", "image_url"}

// PriceGreaterThanZero fails unless data.price is a finite number above zero.
func PriceGreaterThanZero() pipeline.Step {
	return func(r *pipeline.Request) error {
		price, ok := r.Data.Number("price")
		if !ok || math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
			return utils.Validationf("The price must be a number and greater than zero.")
		}
		return nil
	}
}

// DishExists resolves the dish named by the dishId path parameter and makes
// it available through FoundDish.
func DishExists(store repository.Store[models.Dish]) pipeline.Step {
	return func(r *pipeline.Request) error {
		id := r.Param(DishIDParam)
		dish, err := store.Find(r.Context(), id)
		if errors.Is(err, repository.ErrNotFound) {
			return utils.NotFoundf("Dish does not exist: %s", id)
		}
		if err != nil {
			return err
		}
		r.Set(foundDishKey, dish)
		return nil
	}
}

// FoundDish returns the dish stored by DishExists.
func FoundDish(r *pipeline.Request) (models.Dish, bool) {
	v, ok := r.Get(foundDishKey)
	if !ok {
		return models.Dish{}, false
	}
	dish, ok := v.(models.Dish)
	return dish, ok
}
