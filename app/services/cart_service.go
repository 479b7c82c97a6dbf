package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/rabbit/app/models"
)

// ErrItemNotFound means the cart exists but holds no line for the requested
// (product, size, color) variant.
var ErrItemNotFound = errors.New("item not found")

// ProductStore is the slice of the product repository the cart service needs.
type ProductStore interface {
	FindByID(ctx context.Context, id string) (*models.Product, error)
}

// CartStore is the slice of the cart repository the cart service needs.
type CartStore interface {
	FindByOwner(ctx context.Context, owner models.Owner) (*models.Cart, error)
	Save(ctx context.Context, cart *models.Cart) error
	Delete(ctx context.Context, cart *models.Cart) error
}

type CartService struct {
	products ProductStore
	carts    CartStore
}

func NewCartService(products ProductStore, carts CartStore) *CartService {
	return &CartService{products: products, carts: carts}
}

// Find returns the owner's cart, or models.ErrNotFound when none exists.
func (s *CartService) Find(ctx context.Context, owner models.Owner) (*models.Cart, error) {
	return s.carts.FindByOwner(ctx, owner)
}

// AddItem puts quantity units of a product variant into the owner's cart,
// incrementing an existing line for the same variant or appending a snapshot
// of the product.
func (s *CartService) AddItem(ctx context.Context, owner models.Owner, productID string, quantity int, size, color string) (*models.Cart, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if quantity <= 0 {
		quantity = 1
	}

	cart, err := s.carts.FindByOwner(ctx, owner)
	if errors.Is(err, models.ErrNotFound) {
		cart = &models.Cart{Owner: owner, Items: []models.CartItem{}}
	} else if err != nil {
		return nil, err
	}

	if i := findItem(cart.Items, product.ID, size, color); i >= 0 {
		cart.Items[i].Quantity += quantity
	} else {
		cart.Items = append(cart.Items, models.CartItem{
			Product:  product.ID,
			Name:     product.Name,
			Image:    product.FirstImage(),
			Price:    product.EffectivePrice(),
			Size:     size,
			Color:    color,
			Quantity: quantity,
		})
	}

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// UpdateItem sets the quantity of an existing line. A quantity of zero or
// less removes the line. Returns models.ErrNotFound when the owner has no
// cart and ErrItemNotFound when the variant is not in it.
func (s *CartService) UpdateItem(ctx context.Context, owner models.Owner, productID string, quantity int, size, color string) (*models.Cart, error) {
	cart, err := s.carts.FindByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}

	oid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, ErrItemNotFound
	}

	i := findItem(cart.Items, oid, size, color)
	if i < 0 {
		return nil, ErrItemNotFound
	}

	if quantity > 0 {
		cart.Items[i].Quantity = quantity
	} else {
		cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
	}

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveItem deletes the line for a variant. Removing a variant that is not
// in the cart is not an error; the cart is returned unchanged.
func (s *CartService) RemoveItem(ctx context.Context, owner models.Owner, productID, size, color string) (*models.Cart, error) {
	cart, err := s.carts.FindByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}

	oid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return cart, nil
	}

	i := findItem(cart.Items, oid, size, color)
	if i < 0 {
		return cart, nil
	}
	cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Merge folds a guest cart into the authenticated user's cart at login.
// Matching variants have their quantities added; the guest cart is deleted
// only after the merged cart is saved. When the user has no cart yet the
// guest cart is simply re-owned.
func (s *CartService) Merge(ctx context.Context, userID primitive.ObjectID, guestID string) (*models.Cart, error) {
	guestCart, err := s.carts.FindByOwner(ctx, models.GuestOwner(guestID))
	if err != nil {
		return nil, err
	}

	userCart, err := s.carts.FindByOwner(ctx, models.UserOwner(userID))
	if errors.Is(err, models.ErrNotFound) {
		guestCart.Owner = models.UserOwner(userID)
		if err := s.carts.Save(ctx, guestCart); err != nil {
			return nil, err
		}
		return guestCart, nil
	}
	if err != nil {
		return nil, err
	}

	for _, item := range guestCart.Items {
		if i := findItem(userCart.Items, item.Product, item.Size, item.Color); i >= 0 {
			userCart.Items[i].Quantity += item.Quantity
		} else {
			userCart.Items = append(userCart.Items, item)
		}
	}

	if err := s.carts.Save(ctx, userCart); err != nil {
		return nil, err
	}
	if err := s.carts.Delete(ctx, guestCart); err != nil {
		return nil, err
	}
	return userCart, nil
}

func findItem(items []models.CartItem, product primitive.ObjectID, size, color string) int {
	for i, item := range items {
		if item.SameVariant(product, size, color) {
			return i
		}
	}
	return -1
}
