package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"gurukul/backend/config"
	"gurukul/backend/middleware"
	"gurukul/backend/models"
	"gurukul/backend/store"
	"gurukul/backend/utils"
)

type OrderController struct {
	Store store.Store
	Cfg   *config.Config
}

func NewOrderController(st store.Store, cfg *config.Config) *OrderController {
	return &OrderController{Store: st, Cfg: cfg}
}

// GetMyOrders godoc
// @Summary List the caller's orders
// @Tags orders
// @Produce json
// @Success 200 {array} models.Order
// @Security ApiKeyAuth
// @Router /orders/my [get]
func (oc *OrderController) GetMyOrders(c *fiber.Ctx) error {
	orders, err := oc.Store.ListUserOrders(middleware.Claims(c).UserID)
	if err != nil {
		return utils.InternalServerError(c, "Could not fetch orders")
	}
	return c.JSON(orders)
}

// CreateOrder godoc
// @Summary Create an order against the payment gateway
// @Tags orders
// @Accept json
// @Produce json
// @Param input body models.CreateOrderInput true "Batch and amount"
// @Success 200 {object} models.Order
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /orders [post]
func (oc *OrderController) CreateOrder(c *fiber.Ctx) error {
	var input models.CreateOrderInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if fields := utils.ValidateStruct(input); fields != nil {
		return utils.ValidationFailed(c, fields)
	}

	order, err := oc.Store.CreateOrder(middleware.Claims(c).UserID, input)
	if errors.Is(err, store.ErrNotFound) {
		return utils.BadRequest(c, "Batch not found")
	}
	if err != nil {
		return utils.InternalServerError(c, "Could not create order")
	}
	return c.JSON(order)
}

// UpdateOrderStatus godoc
// @Summary Update an order's payment status
// @Description Completing an order enrolls the buyer into the batch in the same unit of work
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param input body models.UpdateOrderStatusInput true "New status"
// @Success 200 {object} models.Order
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /orders/{id}/status [put]
func (oc *OrderController) UpdateOrderStatus(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid order ID")
	}

	var input models.UpdateOrderStatusInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if fields := utils.ValidateStruct(input); fields != nil {
		return utils.ValidationFailed(c, fields)
	}

	order, err := oc.Store.GetOrder(uint(id))
	if errors.Is(err, store.ErrNotFound) {
		return utils.NotFound(c, "Order not found")
	}
	if err != nil {
		return utils.InternalServerError(c, "Could not fetch order")
	}
	if order.UserID != middleware.Claims(c).UserID {
		return utils.Forbidden(c, "Not your order")
	}

	if input.Status == models.OrderCompleted {
		completed, _, err := oc.Store.CompleteOrder(order.ID, input.PaymentID)
		if errors.Is(err, store.ErrBatchFull) {
			return utils.BadRequest(c, "Batch is full")
		}
		if err != nil {
			return utils.InternalServerError(c, "Could not complete order")
		}
		return c.JSON(completed)
	}

	updated, err := oc.Store.UpdateOrderStatus(order.ID, input.Status, input.PaymentID)
	if err != nil {
		return utils.InternalServerError(c, "Could not update order")
	}
	return c.JSON(updated)
}
