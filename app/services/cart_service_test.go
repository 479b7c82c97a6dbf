package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/rabbit/app/models"
	"github.com/shashiranjanraj/rabbit/app/services"
)

// fakeProducts is an in-memory ProductStore.
type fakeProducts struct {
	byID map[string]*models.Product
}

func (f *fakeProducts) FindByID(_ context.Context, id string) (*models.Product, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return p, nil
}

// fakeCarts is an in-memory CartStore. Save mirrors the repository contract:
// totals are recomputed on every write.
type fakeCarts struct {
	carts []*models.Cart
}

func (f *fakeCarts) FindByOwner(_ context.Context, owner models.Owner) (*models.Cart, error) {
	if owner.IsZero() {
		return nil, models.ErrNotFound
	}
	for _, c := range f.carts {
		if ownerEqual(c.Owner, owner) {
			return c, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeCarts) Save(_ context.Context, cart *models.Cart) error {
	cart.Recompute()
	if cart.ID.IsZero() {
		cart.ID = primitive.NewObjectID()
		f.carts = append(f.carts, cart)
		return nil
	}
	for i, c := range f.carts {
		if c.ID == cart.ID {
			f.carts[i] = cart
			return nil
		}
	}
	f.carts = append(f.carts, cart)
	return nil
}

func (f *fakeCarts) Delete(_ context.Context, cart *models.Cart) error {
	for i, c := range f.carts {
		if c.ID == cart.ID {
			f.carts = append(f.carts[:i], f.carts[i+1:]...)
			return nil
		}
	}
	return nil
}

func ownerEqual(a, b models.Owner) bool {
	if a.IsUser() && b.IsUser() {
		return *a.User == *b.User
	}
	return a.Guest != "" && a.Guest == b.Guest
}

func newFixture() (*services.CartService, *fakeCarts, *models.Product) {
	product := &models.Product{
		ID:            primitive.NewObjectID(),
		Name:          "Classic Oxford Shirt",
		Price:         39.99,
		DiscountPrice: 34.99,
		Images:        []string{"https://example.com/shirt.jpg"},
	}
	products := &fakeProducts{byID: map[string]*models.Product{product.ID.Hex(): product}}
	carts := &fakeCarts{}
	return services.NewCartService(products, carts), carts, product
}

func TestAddItemCreatesCartWithSnapshot(t *testing.T) {
	svc, _, product := newFixture()
	owner := models.GuestOwner("g1")

	cart, err := svc.AddItem(context.Background(), owner, product.ID.Hex(), 1, "M", "Blue")
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	item := cart.Items[0]
	assert.Equal(t, product.ID, item.Product)
	assert.Equal(t, "Classic Oxford Shirt", item.Name)
	assert.Equal(t, "https://example.com/shirt.jpg", item.Image)
	assert.Equal(t, 34.99, item.Price, "snapshot uses the discount price when set")
	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, 34.99, cart.TotalPrice)
	assert.Equal(t, 1, cart.TotalItems)
}

func TestAddItemIncrementsSameVariant(t *testing.T) {
	svc, _, product := newFixture()
	owner := models.GuestOwner("g1")

	_, err := svc.AddItem(context.Background(), owner, product.ID.Hex(), 2, "M", "Blue")
	require.NoError(t, err)
	cart, err := svc.AddItem(context.Background(), owner, product.ID.Hex(), 3, "M", "Blue")
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, 5, cart.TotalItems)
}

func TestAddItemDifferentVariantAppends(t *testing.T) {
	svc, _, product := newFixture()
	owner := models.GuestOwner("g1")

	_, err := svc.AddItem(context.Background(), owner, product.ID.Hex(), 1, "M", "Blue")
	require.NoError(t, err)
	cart, err := svc.AddItem(context.Background(), owner, product.ID.Hex(), 1, "L", "Blue")
	require.NoError(t, err)

	assert.Len(t, cart.Items, 2)
}

func TestAddItemDefaultsQuantity(t *testing.T) {
	svc, _, product := newFixture()

	cart, err := svc.AddItem(context.Background(), models.GuestOwner("g1"), product.ID.Hex(), 0, "", "")
	require.NoError(t, err)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestAddItemUnknownProduct(t *testing.T) {
	svc, _, _ := newFixture()

	_, err := svc.AddItem(context.Background(), models.GuestOwner("g1"), primitive.NewObjectID().Hex(), 1, "", "")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdateItemQuantity(t *testing.T) {
	svc, _, product := newFixture()
	owner := models.GuestOwner("g1")

	_, err := svc.AddItem(context.Background(), owner, product.ID.Hex(), 1, "M", "Blue")
	require.NoError(t, err)

	cart, err := svc.UpdateItem(context.Background(), owner, product.ID.Hex(), 4, "M", "Blue")
	require.NoError(t, err)
	assert.Equal(t, 4, cart.Items[0].Quantity)
	assert.Equal(t, 4, cart.TotalItems)
}

func TestUpdateItemZeroRemovesLine(t *testing.T) {
	svc, _, product := newFixture()
	owner := models.GuestOwner("g1")

	_, err := svc.AddItem(context.Background(), owner, product.ID.Hex(), 2, "M", "Blue")
	require.NoError(t, err)

	cart, err := svc.UpdateItem(context.Background(), owner, product.ID.Hex(), 0, "M", "Blue")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.TotalPrice)
	assert.Zero(t, cart.TotalItems)
}

func TestUpdateItemNoCart(t *testing.T) {
	svc, _, product := newFixture()

	_, err := svc.UpdateItem(context.Background(), models.GuestOwner("nobody"), product.ID.Hex(), 1, "", "")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdateItemWrongVariant(t *testing.T) {
	svc, _, product := newFixture()
	owner := models.GuestOwner("g1")

	_, err := svc.AddItem(context.Background(), owner, product.ID.Hex(), 1, "M", "Blue")
	require.NoError(t, err)

	_, err = svc.UpdateItem(context.Background(), owner, product.ID.Hex(), 1, "XL", "Blue")
	assert.ErrorIs(t, err, services.ErrItemNotFound)
}

func TestRemoveItem(t *testing.T) {
	svc, _, product := newFixture()
	owner := models.GuestOwner("g1")

	_, err := svc.AddItem(context.Background(), owner, product.ID.Hex(), 1, "M", "Blue")
	require.NoError(t, err)

	cart, err := svc.RemoveItem(context.Background(), owner, product.ID.Hex(), "M", "Blue")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestRemoveItemIdempotent(t *testing.T) {
	svc, _, product := newFixture()
	owner := models.GuestOwner("g1")

	_, err := svc.AddItem(context.Background(), owner, product.ID.Hex(), 1, "M", "Blue")
	require.NoError(t, err)

	// Removing a variant that is not in the cart is a no-op.
	cart, err := svc.RemoveItem(context.Background(), owner, product.ID.Hex(), "S", "Red")
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func TestMergeCombinesCarts(t *testing.T) {
	svc, carts, _ := newFixture()

	productA := primitive.NewObjectID()
	productB := primitive.NewObjectID()
	userID := primitive.NewObjectID()

	guestCart := &models.Cart{
		Owner: models.GuestOwner("g1"),
		Items: []models.CartItem{
			{Product: productA, Name: "A", Price: 10, Quantity: 2},
			{Product: productB, Name: "B", Price: 5, Quantity: 1},
		},
	}
	userCart := &models.Cart{
		Owner: models.UserOwner(userID),
		Items: []models.CartItem{
			{Product: productA, Name: "A", Price: 10, Quantity: 1},
		},
	}
	require.NoError(t, carts.Save(context.Background(), guestCart))
	require.NoError(t, carts.Save(context.Background(), userCart))

	merged, err := svc.Merge(context.Background(), userID, "g1")
	require.NoError(t, err)

	require.Len(t, merged.Items, 2)
	assert.Equal(t, 3, merged.Items[0].Quantity, "matching variant quantities add")
	assert.Equal(t, 1, merged.Items[1].Quantity)
	assert.Equal(t, 35.0, merged.TotalPrice)
	assert.Equal(t, 4, merged.TotalItems)

	// The guest cart no longer exists.
	_, err = carts.FindByOwner(context.Background(), models.GuestOwner("g1"))
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestMergeReownsCartWhenUserHasNone(t *testing.T) {
	svc, carts, _ := newFixture()
	userID := primitive.NewObjectID()

	guestCart := &models.Cart{
		Owner: models.GuestOwner("g1"),
		Items: []models.CartItem{{Product: primitive.NewObjectID(), Price: 10, Quantity: 1}},
	}
	require.NoError(t, carts.Save(context.Background(), guestCart))

	merged, err := svc.Merge(context.Background(), userID, "g1")
	require.NoError(t, err)

	assert.True(t, merged.IsUser())
	assert.Equal(t, userID, *merged.User)
	assert.Empty(t, merged.Guest)

	_, err = carts.FindByOwner(context.Background(), models.GuestOwner("g1"))
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestMergeMissingGuestCart(t *testing.T) {
	svc, _, _ := newFixture()

	_, err := svc.Merge(context.Background(), primitive.NewObjectID(), "nobody")
	assert.ErrorIs(t, err, models.ErrNotFound)
}
