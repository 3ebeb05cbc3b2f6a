package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/grubdash/kds"
	"github.com/yeremiapane/grubdash/models"
	"github.com/yeremiapane/grubdash/pipeline"
	"github.com/yeremiapane/grubdash/repository"
	"github.com/yeremiapane/grubdash/utils"
	"github.com/yeremiapane/grubdash/validators"
)

// OrderEvents receives successful order mutations. *kds.Hub implements it.
type OrderEvents interface {
	PublishOrder(event string, order models.Order)
}

type OrderController struct {
	Orders repository.Store[models.Order]
	NextID utils.IDGenerator
	Events OrderEvents

	create  pipeline.Pipeline
	read    pipeline.Pipeline
	update  pipeline.Pipeline
	destroy pipeline.Pipeline
}

// NewOrderController builds the order pipelines. events may be nil.
func NewOrderController(orders repository.Store[models.Order], nextID utils.IDGenerator, events OrderEvents) *OrderController {
	if nextID == nil {
		nextID = utils.NextID
	}
	return &OrderController{
		Orders: orders,
		NextID: nextID,
		Events: events,
		create: pipeline.New(validators.BodyDataHasAll("Order", validators.OrderFields...)...).
			Then(validators.BodyDataAreText("Order", validators.OrderTextFields...)...).
			Then(
				validators.DishesIsArray(),
				validators.DishesHaveQuantity(),
			),
		read: pipeline.New(validators.OrderExists(orders)),
		update: pipeline.New(validators.OrderExists(orders)).
			Then(validators.BodyDataHasAll("Order", validators.OrderFields...)...).
			Then(validators.BodyDataHas("Order", "status")).
			Then(validators.BodyDataAreText("Order", validators.OrderTextFields...)...).
			Then(
				validators.IDMatchesParam("Order", validators.OrderIDParam),
				validators.DishesIsArray(),
				validators.DishesHaveQuantity(),
				validators.StatusValid(),
			),
		destroy: pipeline.New(
			validators.OrderExists(orders),
			validators.IsPending(),
		),
	}
}

// GetAllOrders -> GET /orders
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	run(c, pipeline.New(), oc.list)
}

// CreateOrder -> POST /orders. The new order has no status.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	run(c, oc.create, oc.insert)
}

// GetOrderByID -> GET /orders/:orderId
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	run(c, oc.read, oc.found)
}

// UpdateOrder -> PUT /orders/:orderId
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	run(c, oc.update, oc.replace)
}

// DeleteOrder -> DELETE /orders/:orderId, only while pending.
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	run(c, oc.destroy, oc.remove)
}

func (oc *OrderController) list(r *pipeline.Request) (pipeline.Result, error) {
	orders, err := oc.Orders.List(r.Context())
	if err != nil {
		return pipeline.Result{}, err
	}
	return pipeline.OK(orders), nil
}

func (oc *OrderController) insert(r *pipeline.Request) (pipeline.Result, error) {
	order := models.Order{
		ID:           oc.NextID(),
		DeliverTo:    r.Data.String("deliverTo"),
		MobileNumber: r.Data.String("mobileNumber"),
		Dishes:       lineItemsFromPayload(r.Data),
	}
	if err := oc.Orders.Insert(r.Context(), order); err != nil {
		return pipeline.Result{}, err
	}
	oc.publish(kds.EventOrderCreated, order)
	return pipeline.Created(order), nil
}

func (oc *OrderController) found(r *pipeline.Request) (pipeline.Result, error) {
	order, _ := validators.FoundOrder(r)
	return pipeline.OK(order), nil
}

func (oc *OrderController) replace(r *pipeline.Request) (pipeline.Result, error) {
	id := r.Param(validators.OrderIDParam)
	order := models.Order{
		ID:           id,
		DeliverTo:    r.Data.String("deliverTo"),
		MobileNumber: r.Data.String("mobileNumber"),
		Dishes:       lineItemsFromPayload(r.Data),
		Status:       r.Data.String("status"),
	}

	err := oc.Orders.Replace(r.Context(), id, order)
	if errors.Is(err, repository.ErrNotFound) {
		return pipeline.Result{}, utils.NotFoundf("Order does not exist: %s", id)
	}
	if err != nil {
		return pipeline.Result{}, err
	}
	oc.publish(kds.EventOrderUpdated, order)
	return pipeline.OK(order), nil
}

func (oc *OrderController) remove(r *pipeline.Request) (pipeline.Result, error) {
	order, _ := validators.FoundOrder(r)

	err := oc.Orders.Remove(r.Context(), order.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return pipeline.Result{}, utils.NotFoundf("Order does not exist: %s", order.ID)
	}
	if err != nil {
		return pipeline.Result{}, err
	}
	oc.publish(kds.EventOrderDeleted, order)
	return pipeline.NoContent(), nil
}

func (oc *OrderController) publish(event string, order models.Order) {
	if oc.Events != nil {
		oc.Events.PublishOrder(event, order)
	}
}

// lineItemsFromPayload converts data.dishes, keeping every submitted key.
// It assumes DishesIsArray and DishesHaveQuantity already passed.
func lineItemsFromPayload(data pipeline.Payload) []models.DishLineItem {
	raw, _ := data.List("dishes")
	items := make([]models.DishLineItem, 0, len(raw))
	for _, entry := range raw {
		fields, _ := entry.(map[string]interface{})
		items = append(items, models.LineItemFromMap(fields))
	}
	return items
}
