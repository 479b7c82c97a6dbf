// Package routes declares the full HTTP route table.
package routes

import (
	"net/http"
	"time"

	"github.com/shashiranjanraj/rabbit/app/controllers"
	"github.com/shashiranjanraj/rabbit/pkg/auth"
	"github.com/shashiranjanraj/rabbit/pkg/ctx"
	"github.com/shashiranjanraj/rabbit/pkg/middleware"
	"github.com/shashiranjanraj/rabbit/pkg/response"
	"github.com/shashiranjanraj/rabbit/pkg/router"
)

// API bundles everything route registration needs.
type API struct {
	Users       *controllers.UserController
	Products    *controllers.ProductController
	Cart        *controllers.CartController
	Orders      *controllers.OrderController
	Subscribers *controllers.SubscriberController
	Upload      *controllers.UploadController
	AdminUsers  *controllers.AdminUserController

	Tokens   *auth.JWT
	LoadUser middleware.UserLoader
}

// Register mounts every application route on r.
func Register(r *router.Router, api API) {
	protect := middleware.Protect(api.Tokens, api.LoadUser)
	admin := router.Middleware(middleware.Admin)
	loginLimit := middleware.RateLimit(10, time.Minute)

	r.Get("/", "home", func(w http.ResponseWriter, _ *http.Request) {
		response.JSON(w, http.StatusOK, map[string]string{"message": "Welcome to Rabbit API"})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.Error(w, http.StatusNotFound, "Route Not Found")
	})

	// Users.
	users := r.Group("/api/users")
	users.Post("/register", "users.register", ctx.Wrap(api.Users.Register), loginLimit)
	users.Post("/login", "users.login", ctx.Wrap(api.Users.Login), loginLimit)
	users.Get("/profile", "users.profile", ctx.Wrap(api.Users.Profile), protect)
	users.Put("/profile", "users.profile.update", ctx.Wrap(api.Users.UpdateProfile), protect)

	// Products. Fixed paths register before the {id} catch-all.
	products := r.Group("/api/products")
	products.Get("/", "products.index", ctx.Wrap(api.Products.Index))
	products.Get("/new-arrivals", "products.new_arrivals", ctx.Wrap(api.Products.NewArrivals))
	products.Get("/best-sellers", "products.best_sellers", ctx.Wrap(api.Products.BestSellers))
	products.Get("/womens-tops", "products.womens_tops", ctx.Wrap(api.Products.WomensTops))
	products.Get("/similar/{id}", "products.similar", ctx.Wrap(api.Products.Similar))
	products.Get("/{id}", "products.show", ctx.Wrap(api.Products.Show))
	products.Post("/", "products.create", ctx.Wrap(api.Products.Create), protect, admin)
	products.Put("/{id}", "products.update", ctx.Wrap(api.Products.Update), protect, admin)
	products.Delete("/{id}", "products.delete", ctx.Wrap(api.Products.Delete), protect, admin)

	// Cart. Owner comes from the optional bearer token or guestId.
	cart := r.Group("/api/cart")
	cart.Get("/", "cart.show", ctx.Wrap(api.Cart.Show))
	cart.Post("/add", "cart.add", ctx.Wrap(api.Cart.Add))
	cart.Put("/update", "cart.update", ctx.Wrap(api.Cart.Update))
	cart.Delete("/remove", "cart.remove", ctx.Wrap(api.Cart.Remove))
	cart.Post("/merge", "cart.merge", ctx.Wrap(api.Cart.Merge), protect)

	// Unnamed aliases: the mutations also answer on the collection root.
	cart.Post("/", "", ctx.Wrap(api.Cart.Add))
	cart.Put("/", "", ctx.Wrap(api.Cart.Update))
	cart.Delete("/", "", ctx.Wrap(api.Cart.Remove))

	// Orders.
	orders := r.Group("/api/orders")
	orders.Post("/", "orders.create", ctx.Wrap(api.Orders.Create), protect)
	orders.Post("/guest", "orders.guest", ctx.Wrap(api.Orders.CreateGuest))
	orders.Get("/myorders", "orders.mine", ctx.Wrap(api.Orders.MyOrders), protect)
	orders.Get("/{id}", "orders.show", ctx.Wrap(api.Orders.Show), protect)

	// Newsletter.
	r.Post("/api/subscribe", "subscribe", ctx.Wrap(api.Subscribers.Subscribe))

	// Upload proxy.
	r.Post("/api/upload", "upload", ctx.Wrap(api.Upload.Upload), protect, admin)

	// Admin.
	adminGroup := r.Group("/api/admin", protect, admin)

	adminGroup.Get("/products", "admin.products.index", ctx.Wrap(api.Products.Index))
	adminGroup.Post("/products", "admin.products.create", ctx.Wrap(api.Products.Create))
	adminGroup.Put("/products/{id}", "admin.products.update", ctx.Wrap(api.Products.Update))
	adminGroup.Delete("/products/{id}", "admin.products.delete", ctx.Wrap(api.Products.Delete))

	adminGroup.Get("/orders", "admin.orders.index", ctx.Wrap(api.Orders.Index))
	adminGroup.Get("/orders/{id}", "admin.orders.show", ctx.Wrap(api.Orders.ShowAny))
	adminGroup.Put("/orders/{id}/deliver", "admin.orders.deliver", ctx.Wrap(api.Orders.Deliver))

	adminGroup.Get("/subscribers", "admin.subscribers.index", ctx.Wrap(api.Subscribers.Index))
	adminGroup.Delete("/subscribers/{id}", "admin.subscribers.delete", ctx.Wrap(api.Subscribers.Delete))

	adminGroup.Get("/users", "admin.users.index", ctx.Wrap(api.AdminUsers.Index))
	adminGroup.Post("/users", "admin.users.create", ctx.Wrap(api.AdminUsers.Create))
	adminGroup.Put("/users/{id}", "admin.users.update", ctx.Wrap(api.AdminUsers.Update))
	adminGroup.Delete("/users/{id}", "admin.users.delete", ctx.Wrap(api.AdminUsers.Delete))
}
