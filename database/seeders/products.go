package seeders

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/shashiranjanraj/rabbit/app/models"
	"github.com/shashiranjanraj/rabbit/pkg/database"
)

func init() {
	Register("products", SeedProducts)
}

// SeedProducts wipes the products collection and inserts the sample catalog,
// owned by the seeded admin. Runs after SeedUsers.
func SeedProducts(ctx context.Context, db *database.DB) error {
	var admin models.User
	err := db.Collection(database.Users).
		FindOne(ctx, bson.M{"email": AdminEmail}).
		Decode(&admin)
	if err != nil {
		return fmt.Errorf("admin user not seeded: %w", err)
	}

	col := db.Collection(database.Products)
	if _, err := col.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}

	now := time.Now()
	docs := make([]interface{}, 0, len(sampleProducts))
	for _, p := range sampleProducts {
		p.User = admin.ID
		p.CreatedAt = now
		p.UpdatedAt = now
		docs = append(docs, p)
	}

	_, err = col.InsertMany(ctx, docs)
	return err
}

var sampleProducts = []models.Product{
	{
		Name:          "Classic Oxford Button-Down Shirt",
		Description:   "A timeless oxford shirt in breathable cotton with a button-down collar.",
		Price:         39.99,
		DiscountPrice: 34.99,
		CountInStock:  20,
		SKU:           "OX-SH-001",
		Category:      "Top Wear",
		Brand:         "Urban Threads",
		Sizes:         []string{"S", "M", "L", "XL"},
		Colors:        []string{"Red", "Blue", "Yellow"},
		Collections:   []string{"Business Casual"},
		Material:      "Cotton",
		Gender:        models.GenderMen,
		Images:        []string{"https://picsum.photos/seed/ox1/500/500"},
		Rating:        4.5,
	},
	{
		Name:          "Slim-Fit Stretch Shirt",
		Description:   "Stretch fabric shirt with a tailored slim fit for all-day comfort.",
		Price:         29.99,
		DiscountPrice: 24.99,
		CountInStock:  35,
		SKU:           "SL-SH-002",
		Category:      "Top Wear",
		Brand:         "Modern Fit",
		Sizes:         []string{"S", "M", "L"},
		Colors:        []string{"Black", "Navy"},
		Collections:   []string{"Formal Wear"},
		Material:      "Polyester",
		Gender:        models.GenderMen,
		Images:        []string{"https://picsum.photos/seed/sl2/500/500"},
		IsBestSeller:  true,
		Rating:        4.8,
	},
	{
		Name:         "Casual Denim Shirt",
		Description:  "Relaxed-fit denim shirt with classic snap buttons.",
		Price:        49.99,
		CountInStock: 15,
		SKU:          "DN-SH-003",
		Category:     "Top Wear",
		Brand:        "Street Style",
		Sizes:        []string{"M", "L", "XL"},
		Colors:       []string{"Blue"},
		Collections:  []string{"Casual Wear"},
		Material:     "Denim",
		Gender:       models.GenderMen,
		Images:       []string{"https://picsum.photos/seed/dn3/500/500"},
		Rating:       4.2,
	},
	{
		Name:          "High-Waist Classic Jeans",
		Description:   "Vintage-inspired high-waist jeans in stretch denim.",
		Price:         54.99,
		DiscountPrice: 44.99,
		CountInStock:  25,
		SKU:           "HW-JN-004",
		Category:      "Bottom Wear",
		Brand:         "Denim Goddess",
		Sizes:         []string{"XS", "S", "M", "L"},
		Colors:        []string{"Blue", "Black"},
		Collections:   []string{"Casual Wear"},
		Material:      "Denim",
		Gender:        models.GenderWomen,
		Images:        []string{"https://picsum.photos/seed/hw4/500/500"},
		IsBestSeller:  true,
		Rating:        4.7,
	},
	{
		Name:         "Knitted Cropped Top",
		Description:  "Soft ribbed knit crop top with a square neckline.",
		Price:        36.99,
		CountInStock: 40,
		SKU:          "KN-TP-005",
		Category:     "Top Wear",
		Brand:        "Chic Knits",
		Sizes:        []string{"S", "M", "L"},
		Colors:       []string{"Beige", "White"},
		Collections:  []string{"Smart Casual"},
		Material:     "Cotton Blend",
		Gender:       models.GenderWomen,
		Images:       []string{"https://picsum.photos/seed/kn5/500/500"},
		IsFeatured:   true,
		Rating:       4.6,
	},
	{
		Name:          "Flowy Boho Maxi Skirt",
		Description:   "Lightweight bohemian maxi skirt with an elastic waistband.",
		Price:         44.99,
		DiscountPrice: 39.99,
		CountInStock:  18,
		SKU:           "BH-SK-006",
		Category:      "Bottom Wear",
		Brand:         "Boho Vibes",
		Sizes:         []string{"S", "M", "L"},
		Colors:        []string{"Green", "Rust"},
		Collections:   []string{"Vacation Looks"},
		Material:      "Viscose",
		Gender:        models.GenderWomen,
		Images:        []string{"https://picsum.photos/seed/bh6/500/500"},
		Rating:        4.4,
	},
}
