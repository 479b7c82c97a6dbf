package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment status values.
const (
	PaymentPending = "Pending"
	PaymentPaid    = "Paid"
)

// OrderItem is a line snapshot frozen at checkout.
type OrderItem struct {
	Product  primitive.ObjectID `bson:"product" json:"productId"`
	Name     string             `bson:"name" json:"name"`
	Image    string             `bson:"image,omitempty" json:"image,omitempty"`
	Price    float64            `bson:"price" json:"price"`
	Size     string             `bson:"size,omitempty" json:"size,omitempty"`
	Color    string             `bson:"color,omitempty" json:"color,omitempty"`
	Quantity int                `bson:"quantity" json:"quantity"`
}

type Address struct {
	Address    string `bson:"address,omitempty" json:"address,omitempty"`
	City       string `bson:"city,omitempty" json:"city,omitempty"`
	PostalCode string `bson:"postalCode,omitempty" json:"postalCode,omitempty"`
	Country    string `bson:"country,omitempty" json:"country,omitempty"`
}

// Order is immutable after checkout except for admin delivery marking.
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Owner           `bson:",inline"`
	Items           []OrderItem `bson:"items" json:"items"`
	ShippingAddress Address     `bson:"shippingAddress" json:"shippingAddress"`
	PaymentMethod   string      `bson:"paymentMethod" json:"paymentMethod"`
	PaymentStatus   string      `bson:"paymentStatus" json:"paymentStatus"`
	TotalPrice      float64     `bson:"totalPrice" json:"totalPrice"`
	IsDelivered     bool        `bson:"isDelivered" json:"isDelivered"`
	DeliveredAt     *time.Time  `bson:"deliveredAt,omitempty" json:"deliveredAt,omitempty"`
	CreatedAt       time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time   `bson:"updatedAt" json:"updatedAt"`
}
