package controllers

import (
	"errors"
	"net/http"

	"github.com/shashiranjanraj/rabbit/app/models"
	"github.com/shashiranjanraj/rabbit/app/services"
	"github.com/shashiranjanraj/rabbit/pkg/ctx"
	"github.com/shashiranjanraj/rabbit/pkg/logger"
	"github.com/shashiranjanraj/rabbit/pkg/middleware"
)

type UserController struct {
	auth *services.AuthService
}

func NewUserController(auth *services.AuthService) *UserController {
	return &UserController{auth: auth}
}

type registerInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type profileInput struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"nullable,email"`
	Password string `json:"password" validate:"nullable,min=6"`
}

// authResponse is the wire shape for register and login.
type authResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// Register handles POST /api/users/register.
func (c *UserController) Register(cc *ctx.Context) {
	var in registerInput
	if !cc.BindJSON(&in) {
		return
	}

	user, token, err := c.auth.Register(cc.Context(), in.Name, in.Email, in.Password)
	if errors.Is(err, models.ErrAlreadyExists) {
		cc.Error(http.StatusBadRequest, "User already exists")
		return
	}
	if err != nil {
		logger.WithCtx(cc.Context()).Error("register failed", "error", err)
		cc.ServerError()
		return
	}

	cc.JSON(http.StatusCreated, authResponse{User: user, Token: token})
}

// Login handles POST /api/users/login.
func (c *UserController) Login(cc *ctx.Context) {
	var in loginInput
	if !cc.BindJSON(&in) {
		return
	}

	user, token, err := c.auth.Login(cc.Context(), in.Email, in.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		cc.Error(http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		logger.WithCtx(cc.Context()).Error("login failed", "error", err)
		cc.ServerError()
		return
	}

	cc.JSON(http.StatusOK, authResponse{User: user, Token: token})
}

// Profile handles GET /api/users/profile.
func (c *UserController) Profile(cc *ctx.Context) {
	cc.JSON(http.StatusOK, middleware.CurrentUser(cc.Context()))
}

// UpdateProfile handles PUT /api/users/profile.
func (c *UserController) UpdateProfile(cc *ctx.Context) {
	var in profileInput
	if !cc.BindJSON(&in) {
		return
	}

	user := middleware.CurrentUser(cc.Context())
	updated, err := c.auth.UpdateProfile(cc.Context(), user, in.Name, in.Email, in.Password)
	if errors.Is(err, models.ErrAlreadyExists) {
		cc.Error(http.StatusBadRequest, "User already exists")
		return
	}
	if err != nil {
		logger.WithCtx(cc.Context()).Error("profile update failed", "error", err)
		cc.ServerError()
		return
	}

	cc.JSON(http.StatusOK, updated)
}
