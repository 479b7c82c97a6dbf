package models_test

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/rabbit/app/models"
)

func TestRecomputeTotals(t *testing.T) {
	items := []models.CartItem{
		{Price: 10.50, Quantity: 2},
		{Price: 5.00, Quantity: 3},
	}

	price, count := models.RecomputeTotals(items)
	if price != 36.00 {
		t.Errorf("totalPrice = %v, want 36.00", price)
	}
	if count != 5 {
		t.Errorf("totalItems = %v, want 5", count)
	}
}

func TestRecomputeTotalsEmpty(t *testing.T) {
	price, count := models.RecomputeTotals(nil)
	if price != 0 || count != 0 {
		t.Errorf("empty cart totals = (%v, %v), want (0, 0)", price, count)
	}
}

func TestCartRecompute(t *testing.T) {
	cart := models.Cart{
		Items: []models.CartItem{{Price: 20, Quantity: 1}},
		// Stale values that must be overwritten.
		TotalPrice: 999,
		TotalItems: 42,
	}

	cart.Recompute()
	if cart.TotalPrice != 20 {
		t.Errorf("TotalPrice = %v, want 20", cart.TotalPrice)
	}
	if cart.TotalItems != 1 {
		t.Errorf("TotalItems = %v, want 1", cart.TotalItems)
	}
}

func TestSameVariant(t *testing.T) {
	product := primitive.NewObjectID()
	other := primitive.NewObjectID()

	item := models.CartItem{Product: product, Size: "M", Color: "Blue"}

	if !item.SameVariant(product, "M", "Blue") {
		t.Error("exact triple should match")
	}
	if item.SameVariant(product, "L", "Blue") {
		t.Error("different size should not match")
	}
	if item.SameVariant(product, "M", "Red") {
		t.Error("different color should not match")
	}
	if item.SameVariant(other, "M", "Blue") {
		t.Error("different product should not match")
	}

	// Absent size and color on both sides counts as equal.
	bare := models.CartItem{Product: product}
	if !bare.SameVariant(product, "", "") {
		t.Error("absent size/color on both sides should match")
	}
	if bare.SameVariant(product, "M", "") {
		t.Error("size on one side only should not match")
	}
}

func TestOwnerVariants(t *testing.T) {
	id := primitive.NewObjectID()

	user := models.UserOwner(id)
	if !user.IsUser() || user.IsGuest() || user.IsZero() {
		t.Errorf("UserOwner flags wrong: %+v", user)
	}
	if got := user.Filter()["user"]; got != id {
		t.Errorf("user filter = %v, want %v", got, id)
	}

	guest := models.GuestOwner("guest_123")
	if guest.IsUser() || !guest.IsGuest() || guest.IsZero() {
		t.Errorf("GuestOwner flags wrong: %+v", guest)
	}
	if got := guest.Filter()["guestId"]; got != "guest_123" {
		t.Errorf("guest filter = %v, want guest_123", got)
	}

	var zero models.Owner
	if !zero.IsZero() || zero.IsUser() || zero.IsGuest() {
		t.Errorf("zero owner flags wrong: %+v", zero)
	}
}
