package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Owner identifies who a cart (or order) belongs to: an authenticated user or
// a guest, never both. The constructors below are the only way to build one,
// which keeps the variant well-formed.
type Owner struct {
	User  *primitive.ObjectID `bson:"user,omitempty" json:"user,omitempty"`
	Guest string              `bson:"guestId,omitempty" json:"guestId,omitempty"`
}

func UserOwner(id primitive.ObjectID) Owner {
	return Owner{User: &id}
}

func GuestOwner(guestID string) Owner {
	return Owner{Guest: guestID}
}

func (o Owner) IsUser() bool  { return o.User != nil }
func (o Owner) IsGuest() bool { return o.User == nil && o.Guest != "" }
func (o Owner) IsZero() bool  { return o.User == nil && o.Guest == "" }

// Filter returns the query that matches documents owned by o.
func (o Owner) Filter() bson.M {
	if o.User != nil {
		return bson.M{"user": *o.User}
	}
	return bson.M{"guestId": o.Guest}
}

// CartItem is one line in a cart. Name, image and price are snapshots of the
// product at add-time.
type CartItem struct {
	Product  primitive.ObjectID `bson:"product" json:"productId"`
	Name     string             `bson:"name" json:"name"`
	Image    string             `bson:"image,omitempty" json:"image,omitempty"`
	Price    float64            `bson:"price" json:"price"`
	Size     string             `bson:"size,omitempty" json:"size,omitempty"`
	Color    string             `bson:"color,omitempty" json:"color,omitempty"`
	Quantity int                `bson:"quantity" json:"quantity"`
}

// SameVariant reports whether the line refers to the same purchasable variant,
// i.e. the (product, size, color) triple matches exactly. Absent size or color
// on both sides counts as equal; no trimming or case folding.
func (i CartItem) SameVariant(product primitive.ObjectID, size, color string) bool {
	return i.Product == product && i.Size == size && i.Color == color
}

type Cart struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Owner      `bson:",inline"`
	Items      []CartItem `bson:"items" json:"items"`
	TotalPrice float64    `bson:"totalPrice" json:"totalPrice"`
	TotalItems int        `bson:"totalItems" json:"totalItems"`
	CreatedAt  time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// RecomputeTotals derives the cart totals from an item list:
// totalPrice = Σ price×quantity, totalItems = Σ quantity.
func RecomputeTotals(items []CartItem) (totalPrice float64, totalItems int) {
	for _, item := range items {
		totalPrice += item.Price * float64(item.Quantity)
		totalItems += item.Quantity
	}
	return totalPrice, totalItems
}

// Recompute refreshes the derived totals. The cart repository calls this
// before every persisted write, so totals never drift from the items.
func (c *Cart) Recompute() {
	c.TotalPrice, c.TotalItems = RecomputeTotals(c.Items)
}
