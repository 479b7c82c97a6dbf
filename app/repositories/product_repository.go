package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/rabbit/app/models"
	"github.com/shashiranjanraj/rabbit/pkg/database"
)

// ListFilter narrows the catalog listing. Zero values mean "no constraint";
// price bounds are pointers so a zero minimum is still expressible.
type ListFilter struct {
	Collection string
	Sizes      []string
	Colors     []string
	Category   string
	Material   string
	Brand      string
	Gender     string
	MinPrice   *float64
	MaxPrice   *float64
	Search     string
	Sort       string
	Limit      int64
}

const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortLatest    = "latest"
)

type ProductRepository struct {
	col *mongo.Collection
}

func NewProductRepository(db *database.DB) *ProductRepository {
	return &ProductRepository{col: db.Collection(database.Products)}
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrNotFound
	}

	var product models.Product
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	now := time.Now()
	product.ID = primitive.NewObjectID()
	product.CreatedAt = now
	product.UpdatedAt = now

	_, err := r.col.InsertOne(ctx, product)
	if database.IsDup(err) {
		return models.ErrAlreadyExists
	}
	return err
}

func (r *ProductRepository) Update(ctx context.Context, product *models.Product) error {
	product.UpdatedAt = time.Now()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": product.ID}, product)
	if database.IsDup(err) {
		return models.ErrAlreadyExists
	}
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.ErrNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

// List runs the catalog query built from the filter. Results default to
// newest first unless an explicit sort is requested.
func (r *ProductRepository) List(ctx context.Context, f ListFilter) ([]models.Product, error) {
	query := bson.M{}

	if f.Collection != "" && f.Collection != "all" {
		query["collections"] = f.Collection
	}
	if f.Category != "" && f.Category != "all" {
		query["category"] = f.Category
	}
	if f.Material != "" {
		query["material"] = bson.M{"$in": []string{f.Material}}
	}
	if f.Brand != "" {
		query["brand"] = bson.M{"$in": []string{f.Brand}}
	}
	if len(f.Sizes) > 0 {
		query["sizes"] = bson.M{"$in": f.Sizes}
	}
	if len(f.Colors) > 0 {
		query["colors"] = bson.M{"$in": f.Colors}
	}
	if f.Gender != "" {
		query["gender"] = f.Gender
	}
	if f.MinPrice != nil || f.MaxPrice != nil {
		price := bson.M{}
		if f.MinPrice != nil {
			price["$gte"] = *f.MinPrice
		}
		if f.MaxPrice != nil {
			price["$lte"] = *f.MaxPrice
		}
		query["price"] = price
	}
	if f.Search != "" {
		query["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": f.Search, "$options": "i"}},
			bson.M{"description": bson.M{"$regex": f.Search, "$options": "i"}},
		}
	}

	opts := options.Find()
	switch f.Sort {
	case SortPriceAsc:
		opts.SetSort(bson.D{{Key: "price", Value: 1}})
	case SortPriceDesc:
		opts.SetSort(bson.D{{Key: "price", Value: -1}})
	default:
		opts.SetSort(bson.D{{Key: "createdAt", Value: -1}})
	}
	if f.Limit > 0 {
		opts.SetLimit(f.Limit)
	}

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}

	products := []models.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// NewArrivals returns the 8 most recently created products.
func (r *ProductRepository) NewArrivals(ctx context.Context) ([]models.Product, error) {
	return r.find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(8))
}

// BestSellers returns the flagged best sellers ordered by rating, best first.
func (r *ProductRepository) BestSellers(ctx context.Context) ([]models.Product, error) {
	return r.find(ctx, bson.M{"isBestSeller": true},
		options.Find().SetSort(bson.D{{Key: "ratings", Value: -1}}))
}

// TopWomensWear returns up to 8 latest tops in the women's collection.
func (r *ProductRepository) TopWomensWear(ctx context.Context) ([]models.Product, error) {
	return r.find(ctx,
		bson.M{"gender": models.GenderWomen, "category": "Top Wear"},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(8))
}

// Similar returns up to 8 other products in the source product's category.
// Gender and brand narrow the match only when the source has them set.
func (r *ProductRepository) Similar(ctx context.Context, source *models.Product) ([]models.Product, error) {
	query := bson.M{
		"_id":      bson.M{"$ne": source.ID},
		"category": source.Category,
	}
	if source.Gender != "" {
		query["gender"] = source.Gender
	}
	if source.Brand != "" {
		query["brand"] = source.Brand
	}
	return r.find(ctx, query, options.Find().SetLimit(8))
}

func (r *ProductRepository) find(ctx context.Context, query bson.M, opts *options.FindOptions) ([]models.Product, error) {
	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}

	products := []models.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}
