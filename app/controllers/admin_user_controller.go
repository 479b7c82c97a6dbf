package controllers

import (
	"errors"
	"net/http"

	"github.com/shashiranjanraj/rabbit/app/models"
	"github.com/shashiranjanraj/rabbit/app/repositories"
	"github.com/shashiranjanraj/rabbit/pkg/auth"
	"github.com/shashiranjanraj/rabbit/pkg/ctx"
	"github.com/shashiranjanraj/rabbit/pkg/logger"
)

// AdminUserController serves the /api/admin/users CRUD.
type AdminUserController struct {
	users *repositories.UserRepository
}

func NewAdminUserController(users *repositories.UserRepository) *AdminUserController {
	return &AdminUserController{users: users}
}

type adminUserInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"nullable,in=customer,admin"`
}

type adminUserPatch struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"nullable,email"`
	Role  string `json:"role" validate:"nullable,in=customer,admin"`
}

// Index handles GET /api/admin/users.
func (c *AdminUserController) Index(cc *ctx.Context) {
	users, err := c.users.All(cc.Context())
	if err != nil {
		logger.WithCtx(cc.Context()).Error("user list failed", "error", err)
		cc.ServerError()
		return
	}
	cc.JSON(http.StatusOK, users)
}

// Create handles POST /api/admin/users.
func (c *AdminUserController) Create(cc *ctx.Context) {
	var in adminUserInput
	if !cc.BindJSON(&in) {
		return
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		logger.WithCtx(cc.Context()).Error("password hash failed", "error", err)
		cc.ServerError()
		return
	}

	role := in.Role
	if role == "" {
		role = models.RoleCustomer
	}
	user := &models.User{Name: in.Name, Email: in.Email, Password: hash, Role: role}

	err = c.users.Create(cc.Context(), user)
	if errors.Is(err, models.ErrAlreadyExists) {
		cc.Error(http.StatusBadRequest, "User already exists")
		return
	}
	if err != nil {
		logger.WithCtx(cc.Context()).Error("user create failed", "error", err)
		cc.ServerError()
		return
	}
	cc.JSON(http.StatusCreated, user)
}

// Update handles PUT /api/admin/users/{id}. Name, email and role change;
// passwords do not, that stays with the profile route.
func (c *AdminUserController) Update(cc *ctx.Context) {
	user, err := c.users.FindByID(cc.Context(), cc.Param("id"))
	if errors.Is(err, models.ErrNotFound) {
		cc.NotFound("User not found")
		return
	}
	if err != nil {
		logger.WithCtx(cc.Context()).Error("user fetch failed", "error", err)
		cc.ServerError()
		return
	}

	var in adminUserPatch
	if !cc.BindJSON(&in) {
		return
	}
	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Email != "" {
		user.Email = in.Email
	}
	if in.Role != "" {
		user.Role = in.Role
	}

	err = c.users.Update(cc.Context(), user)
	if errors.Is(err, models.ErrAlreadyExists) {
		cc.Error(http.StatusBadRequest, "User already exists")
		return
	}
	if err != nil {
		logger.WithCtx(cc.Context()).Error("user update failed", "error", err)
		cc.ServerError()
		return
	}
	cc.JSON(http.StatusOK, user)
}

// Delete handles DELETE /api/admin/users/{id}.
func (c *AdminUserController) Delete(cc *ctx.Context) {
	err := c.users.Delete(cc.Context(), cc.Param("id"))
	if errors.Is(err, models.ErrNotFound) {
		cc.NotFound("User not found")
		return
	}
	if err != nil {
		logger.WithCtx(cc.Context()).Error("user delete failed", "error", err)
		cc.ServerError()
		return
	}
	cc.JSON(http.StatusOK, map[string]string{"message": "User deleted successfully"})
}
