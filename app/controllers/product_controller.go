package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/shashiranjanraj/rabbit/app/models"
	"github.com/shashiranjanraj/rabbit/app/repositories"
	"github.com/shashiranjanraj/rabbit/pkg/cache"
	"github.com/shashiranjanraj/rabbit/pkg/ctx"
	"github.com/shashiranjanraj/rabbit/pkg/logger"
	"github.com/shashiranjanraj/rabbit/pkg/middleware"
)

// Cache keys for the landing-page product queries. Admin writes invalidate
// all three.
const (
	cacheNewArrivals = "products:new-arrivals"
	cacheBestSellers = "products:best-sellers"
	cacheWomensTops  = "products:womens-tops"

	productCacheTTL = 5 * time.Minute
)

type ProductController struct {
	products *repositories.ProductRepository
	cache    *cache.Cache
}

func NewProductController(products *repositories.ProductRepository, c *cache.Cache) *ProductController {
	return &ProductController{products: products, cache: c}
}

type productInput struct {
	Name          string   `json:"name" validate:"required"`
	Description   string   `json:"description"`
	Price         float64  `json:"price" validate:"required,numeric,gte=0"`
	DiscountPrice float64  `json:"discountPrice" validate:"nullable,gte=0"`
	CountInStock  int      `json:"countInStock" validate:"gte=0"`
	SKU           string   `json:"sku" validate:"required"`
	Category      string   `json:"category" validate:"required"`
	Brand         string   `json:"brand"`
	Sizes         []string `json:"sizes"`
	Colors        []string `json:"colors"`
	Collections   []string `json:"collections"`
	Material      string   `json:"material"`
	Gender        string   `json:"gender" validate:"nullable,in=men,women"`
	Images        []string `json:"images"`
	IsFeatured    bool     `json:"isFeatured"`
	IsBestSeller  bool     `json:"isBestSeller"`
	Rating        float64  `json:"ratings" validate:"nullable,gte=0,lte=5"`
}

// Index handles GET /api/products with the catalog filters.
func (c *ProductController) Index(cc *ctx.Context) {
	filter := repositories.ListFilter{
		Collection: cc.Query("collection"),
		Category:   cc.Query("category"),
		Material:   cc.Query("material"),
		Brand:      cc.Query("brand"),
		Gender:     cc.Query("gender"),
		Search:     cc.Query("search"),
		Sort:       cc.Query("sortBy"),
	}
	if v := cc.Query("size"); v != "" {
		filter.Sizes = strings.Split(v, ",")
	}
	if v := cc.Query("color"); v != "" {
		filter.Colors = strings.Split(v, ",")
	}
	if v := cc.Query("minPrice"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinPrice = &f
		}
	}
	if v := cc.Query("maxPrice"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxPrice = &f
		}
	}
	if v := cc.Query("limit"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.Limit = n
		}
	}

	products, err := c.products.List(cc.Context(), filter)
	if err != nil {
		logger.WithCtx(cc.Context()).Error("product list failed", "error", err)
		cc.ServerError()
		return
	}
	cc.JSON(http.StatusOK, products)
}

// NewArrivals handles GET /api/products/new-arrivals.
func (c *ProductController) NewArrivals(cc *ctx.Context) {
	c.cached(cc, cacheNewArrivals, c.products.NewArrivals)
}

// BestSellers handles GET /api/products/best-sellers.
func (c *ProductController) BestSellers(cc *ctx.Context) {
	c.cached(cc, cacheBestSellers, c.products.BestSellers)
}

// WomensTops handles GET /api/products/womens-tops.
func (c *ProductController) WomensTops(cc *ctx.Context) {
	c.cached(cc, cacheWomensTops, c.products.TopWomensWear)
}

// Similar handles GET /api/products/similar/{id}.
func (c *ProductController) Similar(cc *ctx.Context) {
	source, err := c.products.FindByID(cc.Context(), cc.Param("id"))
	if errors.Is(err, models.ErrNotFound) {
		cc.NotFound("Product not found")
		return
	}
	if err != nil {
		logger.WithCtx(cc.Context()).Error("similar products failed", "error", err)
		cc.ServerError()
		return
	}

	products, err := c.products.Similar(cc.Context(), source)
	if err != nil {
		logger.WithCtx(cc.Context()).Error("similar products failed", "error", err)
		cc.ServerError()
		return
	}
	cc.JSON(http.StatusOK, products)
}

// Show handles GET /api/products/{id}.
func (c *ProductController) Show(cc *ctx.Context) {
	product, err := c.products.FindByID(cc.Context(), cc.Param("id"))
	if errors.Is(err, models.ErrNotFound) {
		cc.NotFound("Product not found")
		return
	}
	if err != nil {
		logger.WithCtx(cc.Context()).Error("product fetch failed", "error", err)
		cc.ServerError()
		return
	}
	cc.JSON(http.StatusOK, product)
}

// Create handles POST /api/products (admin).
func (c *ProductController) Create(cc *ctx.Context) {
	var in productInput
	if !cc.BindJSON(&in) {
		return
	}

	admin := middleware.CurrentUser(cc.Context())
	product := &models.Product{
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		DiscountPrice: in.DiscountPrice,
		CountInStock:  in.CountInStock,
		SKU:           in.SKU,
		Category:      in.Category,
		Brand:         in.Brand,
		Sizes:         in.Sizes,
		Colors:        in.Colors,
		Collections:   in.Collections,
		Material:      in.Material,
		Gender:        in.Gender,
		Images:        in.Images,
		IsFeatured:    in.IsFeatured,
		IsBestSeller:  in.IsBestSeller,
		Rating:        in.Rating,
		User:          admin.ID,
	}

	if err := c.products.Create(cc.Context(), product); err != nil {
		if errors.Is(err, models.ErrAlreadyExists) {
			cc.Error(http.StatusBadRequest, "Product with this SKU already exists")
			return
		}
		logger.WithCtx(cc.Context()).Error("product create failed", "error", err)
		cc.ServerError()
		return
	}

	c.invalidate(cc)
	cc.JSON(http.StatusCreated, product)
}

// Update handles PUT /api/products/{id} (admin). Only the fields present in
// the body change.
func (c *ProductController) Update(cc *ctx.Context) {
	product, err := c.products.FindByID(cc.Context(), cc.Param("id"))
	if errors.Is(err, models.ErrNotFound) {
		cc.NotFound("Product not found")
		return
	}
	if err != nil {
		logger.WithCtx(cc.Context()).Error("product fetch failed", "error", err)
		cc.ServerError()
		return
	}

	var in map[string]any
	if !cc.BindJSON(&in) {
		return
	}
	applyProductPatch(product, in)

	if err := c.products.Update(cc.Context(), product); err != nil {
		if errors.Is(err, models.ErrAlreadyExists) {
			cc.Error(http.StatusBadRequest, "Product with this SKU already exists")
			return
		}
		logger.WithCtx(cc.Context()).Error("product update failed", "error", err)
		cc.ServerError()
		return
	}

	c.invalidate(cc)
	cc.JSON(http.StatusOK, product)
}

// Delete handles DELETE /api/products/{id} (admin).
func (c *ProductController) Delete(cc *ctx.Context) {
	err := c.products.Delete(cc.Context(), cc.Param("id"))
	if errors.Is(err, models.ErrNotFound) {
		cc.NotFound("Product not found")
		return
	}
	if err != nil {
		logger.WithCtx(cc.Context()).Error("product delete failed", "error", err)
		cc.ServerError()
		return
	}

	c.invalidate(cc)
	cc.JSON(http.StatusOK, map[string]string{"message": "Product removed"})
}

// cached serves a landing query through the cache.
func (c *ProductController) cached(cc *ctx.Context, key string, fetch func(context.Context) ([]models.Product, error)) {
	var products []models.Product
	if c.cache.Get(cc.Context(), key, &products) {
		cc.JSON(http.StatusOK, products)
		return
	}

	products, err := fetch(cc.Context())
	if err != nil {
		logger.WithCtx(cc.Context()).Error("product query failed", "key", key, "error", err)
		cc.ServerError()
		return
	}

	c.cache.Set(cc.Context(), key, products, productCacheTTL)
	cc.JSON(http.StatusOK, products)
}

func (c *ProductController) invalidate(cc *ctx.Context) {
	c.cache.Del(cc.Context(), cacheNewArrivals, cacheBestSellers, cacheWomensTops)
}

// applyProductPatch copies recognized fields from a partial JSON body onto the
// product. Unknown keys are ignored.
func applyProductPatch(p *models.Product, in map[string]any) {
	for key, raw := range in {
		switch key {
		case "name":
			setString(&p.Name, raw)
		case "description":
			setString(&p.Description, raw)
		case "price":
			setFloat(&p.Price, raw)
		case "discountPrice":
			setFloat(&p.DiscountPrice, raw)
		case "countInStock":
			setInt(&p.CountInStock, raw)
		case "sku":
			setString(&p.SKU, raw)
		case "category":
			setString(&p.Category, raw)
		case "brand":
			setString(&p.Brand, raw)
		case "sizes":
			setStrings(&p.Sizes, raw)
		case "colors":
			setStrings(&p.Colors, raw)
		case "collections":
			setStrings(&p.Collections, raw)
		case "material":
			setString(&p.Material, raw)
		case "gender":
			setString(&p.Gender, raw)
		case "images":
			setStrings(&p.Images, raw)
		case "isFeatured":
			setBool(&p.IsFeatured, raw)
		case "isBestSeller":
			setBool(&p.IsBestSeller, raw)
		case "ratings":
			setFloat(&p.Rating, raw)
		}
	}
}

func setString(dst *string, raw any) {
	if v, ok := raw.(string); ok {
		*dst = v
	}
}

func setFloat(dst *float64, raw any) {
	if v, ok := raw.(float64); ok {
		*dst = v
	}
}

func setInt(dst *int, raw any) {
	if v, ok := raw.(float64); ok {
		*dst = int(v)
	}
}

func setBool(dst *bool, raw any) {
	if v, ok := raw.(bool); ok {
		*dst = v
	}
}

func setStrings(dst *[]string, raw any) {
	items, ok := raw.([]any)
	if !ok {
		return
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	*dst = out
}
