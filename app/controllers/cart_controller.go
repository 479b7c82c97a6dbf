package controllers

import (
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/rabbit/app/models"
	"github.com/shashiranjanraj/rabbit/app/services"
	"github.com/shashiranjanraj/rabbit/pkg/auth"
	"github.com/shashiranjanraj/rabbit/pkg/ctx"
	"github.com/shashiranjanraj/rabbit/pkg/logger"
	"github.com/shashiranjanraj/rabbit/pkg/middleware"
)

// CartController serves the cart routes. They are deliberately unprotected:
// a bearer token is honored when present and valid, and a guestId identifies
// the caller otherwise.
type CartController struct {
	cart   *services.CartService
	tokens *auth.JWT
}

func NewCartController(cart *services.CartService, tokens *auth.JWT) *CartController {
	return &CartController{cart: cart, tokens: tokens}
}

type cartItemInput struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	GuestID   string `json:"guestId"`
}

type mergeInput struct {
	GuestCartID string `json:"guestCartId"`
}

// owner resolves who the request acts for. A valid bearer token wins; an
// invalid or absent one falls back to the guestId. A zero return means the
// caller supplied neither.
func (c *CartController) owner(cc *ctx.Context, guestID string) models.Owner {
	if token := middleware.BearerToken(cc.R); token != "" {
		if claims, err := c.tokens.Validate(token); err == nil {
			if oid, err := primitive.ObjectIDFromHex(claims.UserID); err == nil {
				return models.UserOwner(oid)
			}
		}
	}
	if guestID != "" {
		return models.GuestOwner(guestID)
	}
	return models.Owner{}
}

// Show handles GET /api/cart. A logged-in user with no cart yet still sees
// their pre-login guest cart; an owner with no cart at all gets an empty one
// rather than a 404 so the storefront can render without special-casing.
func (c *CartController) Show(cc *ctx.Context) {
	guestID := cc.Query("guestId")
	owner := c.owner(cc, guestID)

	cart, err := c.cart.Find(cc.Context(), owner)
	if errors.Is(err, models.ErrNotFound) && owner.IsUser() && guestID != "" {
		cart, err = c.cart.Find(cc.Context(), models.GuestOwner(guestID))
	}
	if errors.Is(err, models.ErrNotFound) {
		cc.JSON(http.StatusOK, models.Cart{Owner: owner, Items: []models.CartItem{}})
		return
	}
	if err != nil {
		logger.WithCtx(cc.Context()).Error("cart fetch failed", "error", err)
		cc.ServerError()
		return
	}
	cc.JSON(http.StatusOK, cart)
}

// Add handles POST /api/cart.
func (c *CartController) Add(cc *ctx.Context) {
	var in cartItemInput
	if !cc.BindJSON(&in) {
		return
	}

	owner := c.owner(cc, in.GuestID)
	if owner.IsZero() {
		cc.Error(http.StatusBadRequest, "Guest ID is required")
		return
	}

	cart, err := c.cart.AddItem(cc.Context(), owner, in.ProductID, in.Quantity, in.Size, in.Color)
	if errors.Is(err, models.ErrNotFound) {
		cc.NotFound("Product not found")
		return
	}
	if err != nil {
		logger.WithCtx(cc.Context()).Error("cart add failed", "error", err)
		cc.ServerError()
		return
	}
	cc.JSON(http.StatusOK, cart)
}

// Update handles PUT /api/cart.
func (c *CartController) Update(cc *ctx.Context) {
	var in cartItemInput
	if !cc.BindJSON(&in) {
		return
	}

	owner := c.owner(cc, in.GuestID)
	if owner.IsZero() {
		cc.Error(http.StatusBadRequest, "Guest ID is required")
		return
	}

	cart, err := c.cart.UpdateItem(cc.Context(), owner, in.ProductID, in.Quantity, in.Size, in.Color)
	if errors.Is(err, models.ErrNotFound) {
		cc.NotFound("Cart not found")
		return
	}
	if errors.Is(err, services.ErrItemNotFound) {
		cc.NotFound("Item not found")
		return
	}
	if err != nil {
		logger.WithCtx(cc.Context()).Error("cart update failed", "error", err)
		cc.ServerError()
		return
	}
	cc.JSON(http.StatusOK, cart)
}

// Remove handles DELETE /api/cart.
func (c *CartController) Remove(cc *ctx.Context) {
	var in cartItemInput
	if !cc.BindJSON(&in) {
		return
	}

	owner := c.owner(cc, in.GuestID)
	if owner.IsZero() {
		cc.Error(http.StatusBadRequest, "Guest ID is required")
		return
	}

	cart, err := c.cart.RemoveItem(cc.Context(), owner, in.ProductID, in.Size, in.Color)
	if errors.Is(err, models.ErrNotFound) {
		cc.NotFound("Cart not found")
		return
	}
	if err != nil {
		logger.WithCtx(cc.Context()).Error("cart remove failed", "error", err)
		cc.ServerError()
		return
	}
	cc.JSON(http.StatusOK, cart)
}

// Merge handles POST /api/cart/merge. Requires authentication; runs after
// login to fold the pre-login guest cart into the user's cart.
func (c *CartController) Merge(cc *ctx.Context) {
	var in mergeInput
	if !cc.BindJSON(&in) {
		return
	}
	if in.GuestCartID == "" {
		cc.Error(http.StatusBadRequest, "Guest cart ID is required")
		return
	}

	user := middleware.CurrentUser(cc.Context())
	cart, err := c.cart.Merge(cc.Context(), user.ID, in.GuestCartID)
	if errors.Is(err, models.ErrNotFound) {
		cc.NotFound("Guest cart not found")
		return
	}
	if err != nil {
		logger.WithCtx(cc.Context()).Error("cart merge failed", "error", err)
		cc.ServerError()
		return
	}
	cc.JSON(http.StatusOK, cart)
}
