package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product gender values.
const (
	GenderMen   = "men"
	GenderWomen = "women"
)

type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	Price         float64            `bson:"price" json:"price"`
	DiscountPrice float64            `bson:"discountPrice,omitempty" json:"discountPrice,omitempty"`
	CountInStock  int                `bson:"countInStock" json:"countInStock"`
	SKU           string             `bson:"sku" json:"sku"`
	Category      string             `bson:"category" json:"category"`
	Brand         string             `bson:"brand,omitempty" json:"brand,omitempty"`
	Sizes         []string           `bson:"sizes,omitempty" json:"sizes,omitempty"`
	Colors        []string           `bson:"colors,omitempty" json:"colors,omitempty"`
	Collections   []string           `bson:"collections,omitempty" json:"collections,omitempty"`
	Material      string             `bson:"material,omitempty" json:"material,omitempty"`
	Gender        string             `bson:"gender,omitempty" json:"gender,omitempty"`
	Images        []string           `bson:"images,omitempty" json:"images,omitempty"`
	IsFeatured    bool               `bson:"isFeatured" json:"isFeatured"`
	IsBestSeller  bool               `bson:"isBestSeller" json:"isBestSeller"`
	Rating        float64            `bson:"ratings" json:"ratings"`
	User          primitive.ObjectID `bson:"user" json:"user"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// EffectivePrice is the price a cart line snapshots at add-time: the discount
// price when one is set, the list price otherwise.
func (p *Product) EffectivePrice() float64 {
	if p.DiscountPrice > 0 {
		return p.DiscountPrice
	}
	return p.Price
}

// FirstImage returns the display image for cart snapshots, or "" when the
// product has none.
func (p *Product) FirstImage() string {
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return ""
}
