package controllers

import (
	"errors"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/rabbit/app/models"
	"github.com/shashiranjanraj/rabbit/app/repositories"
	"github.com/shashiranjanraj/rabbit/pkg/ctx"
	"github.com/shashiranjanraj/rabbit/pkg/logger"
	"github.com/shashiranjanraj/rabbit/pkg/middleware"
)

type OrderController struct {
	orders *repositories.OrderRepository
}

func NewOrderController(orders *repositories.OrderRepository) *OrderController {
	return &OrderController{orders: orders}
}

type orderItemInput struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	Size      string  `json:"size"`
	Color     string  `json:"color"`
	Quantity  int     `json:"quantity"`
}

type orderInput struct {
	Items           []orderItemInput `json:"orderItems"`
	ShippingAddress models.Address   `json:"shippingAddress"`
	PaymentMethod   string           `json:"paymentMethod"`
	GuestID         string           `json:"guestId"`
}

// buildItems converts the request lines. The total is always recomputed
// server-side from the line snapshots.
func buildItems(in []orderItemInput) ([]models.OrderItem, float64, error) {
	items := make([]models.OrderItem, 0, len(in))
	var total float64

	for _, line := range in {
		oid, err := primitive.ObjectIDFromHex(line.ProductID)
		if err != nil {
			return nil, 0, err
		}
		if line.Quantity < 1 {
			line.Quantity = 1
		}
		items = append(items, models.OrderItem{
			Product:  oid,
			Name:     line.Name,
			Image:    line.Image,
			Price:    line.Price,
			Size:     line.Size,
			Color:    line.Color,
			Quantity: line.Quantity,
		})
		total += line.Price * float64(line.Quantity)
	}
	return items, total, nil
}

// Create handles POST /api/orders for authenticated checkout.
func (c *OrderController) Create(cc *ctx.Context) {
	var in orderInput
	if !cc.BindJSON(&in) {
		return
	}
	if len(in.Items) == 0 {
		cc.Error(http.StatusBadRequest, "No order items")
		return
	}

	items, total, err := buildItems(in.Items)
	if err != nil {
		cc.Error(http.StatusBadRequest, "Invalid product in order items")
		return
	}

	user := middleware.CurrentUser(cc.Context())
	order := &models.Order{
		Owner:           models.UserOwner(user.ID),
		Items:           items,
		ShippingAddress: in.ShippingAddress,
		PaymentMethod:   in.PaymentMethod,
		PaymentStatus:   models.PaymentPending,
		TotalPrice:      total,
	}

	if err := c.orders.Create(cc.Context(), order); err != nil {
		logger.WithCtx(cc.Context()).Error("order create failed", "error", err)
		cc.ServerError()
		return
	}
	cc.JSON(http.StatusCreated, order)
}

// CreateGuest handles POST /api/orders/guest, the cash-on-delivery checkout
// for callers who never logged in.
func (c *OrderController) CreateGuest(cc *ctx.Context) {
	var in orderInput
	if !cc.BindJSON(&in) {
		return
	}
	if in.GuestID == "" {
		cc.Error(http.StatusBadRequest, "Guest ID is required")
		return
	}
	if len(in.Items) == 0 {
		cc.Error(http.StatusBadRequest, "No order items")
		return
	}

	items, total, err := buildItems(in.Items)
	if err != nil {
		cc.Error(http.StatusBadRequest, "Invalid product in order items")
		return
	}

	order := &models.Order{
		Owner:           models.GuestOwner(in.GuestID),
		Items:           items,
		ShippingAddress: in.ShippingAddress,
		PaymentMethod:   "COD",
		PaymentStatus:   models.PaymentPending,
		TotalPrice:      total,
	}

	if err := c.orders.Create(cc.Context(), order); err != nil {
		logger.WithCtx(cc.Context()).Error("guest order create failed", "error", err)
		cc.ServerError()
		return
	}
	cc.JSON(http.StatusCreated, order)
}

// MyOrders handles GET /api/orders/myorders.
func (c *OrderController) MyOrders(cc *ctx.Context) {
	user := middleware.CurrentUser(cc.Context())

	orders, err := c.orders.FindByUser(cc.Context(), user.ID)
	if err != nil {
		logger.WithCtx(cc.Context()).Error("order list failed", "error", err)
		cc.ServerError()
		return
	}
	if len(orders) == 0 {
		cc.NotFound("No orders found")
		return
	}
	cc.JSON(http.StatusOK, orders)
}

// Show handles GET /api/orders/{id}. Admins may view any order; everyone
// else only their own.
func (c *OrderController) Show(cc *ctx.Context) {
	order, err := c.orders.FindByID(cc.Context(), cc.Param("id"))
	if errors.Is(err, models.ErrNotFound) {
		cc.NotFound("Order not found")
		return
	}
	if err != nil {
		logger.WithCtx(cc.Context()).Error("order fetch failed", "error", err)
		cc.ServerError()
		return
	}

	user := middleware.CurrentUser(cc.Context())
	if !user.IsAdmin() && (order.User == nil || *order.User != user.ID) {
		cc.Error(http.StatusUnauthorized, "Not authorized to view this order")
		return
	}
	cc.JSON(http.StatusOK, order)
}

// Index handles GET /api/admin/orders.
func (c *OrderController) Index(cc *ctx.Context) {
	orders, err := c.orders.All(cc.Context())
	if err != nil {
		logger.WithCtx(cc.Context()).Error("order list failed", "error", err)
		cc.ServerError()
		return
	}
	cc.JSON(http.StatusOK, orders)
}

// ShowAny handles GET /api/admin/orders/{id}.
func (c *OrderController) ShowAny(cc *ctx.Context) {
	order, err := c.orders.FindByID(cc.Context(), cc.Param("id"))
	if errors.Is(err, models.ErrNotFound) {
		cc.NotFound("Order not found")
		return
	}
	if err != nil {
		logger.WithCtx(cc.Context()).Error("order fetch failed", "error", err)
		cc.ServerError()
		return
	}
	cc.JSON(http.StatusOK, order)
}

// Deliver handles PUT /api/admin/orders/{id}/deliver.
func (c *OrderController) Deliver(cc *ctx.Context) {
	order, err := c.orders.FindByID(cc.Context(), cc.Param("id"))
	if errors.Is(err, models.ErrNotFound) {
		cc.NotFound("Order not found")
		return
	}
	if err != nil {
		logger.WithCtx(cc.Context()).Error("order fetch failed", "error", err)
		cc.ServerError()
		return
	}

	now := time.Now()
	order.IsDelivered = true
	order.DeliveredAt = &now

	if err := c.orders.Update(cc.Context(), order); err != nil {
		logger.WithCtx(cc.Context()).Error("order deliver failed", "error", err)
		cc.ServerError()
		return
	}
	cc.JSON(http.StatusOK, order)
}
