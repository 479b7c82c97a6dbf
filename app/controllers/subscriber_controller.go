package controllers

import (
	"errors"
	"net/http"

	"github.com/shashiranjanraj/rabbit/app/models"
	"github.com/shashiranjanraj/rabbit/app/repositories"
	"github.com/shashiranjanraj/rabbit/pkg/ctx"
	"github.com/shashiranjanraj/rabbit/pkg/logger"
)

type SubscriberController struct {
	subscribers *repositories.SubscriberRepository
}

func NewSubscriberController(subscribers *repositories.SubscriberRepository) *SubscriberController {
	return &SubscriberController{subscribers: subscribers}
}

type subscribeInput struct {
	Email string `json:"email" validate:"required,email"`
}

// Subscribe handles POST /api/subscribe.
func (c *SubscriberController) Subscribe(cc *ctx.Context) {
	var in subscribeInput
	if !cc.BindJSON(&in) {
		return
	}

	sub := &models.Subscriber{Email: in.Email}
	err := c.subscribers.Create(cc.Context(), sub)
	if errors.Is(err, models.ErrAlreadyExists) {
		cc.Error(http.StatusBadRequest, "Email already subscribed!")
		return
	}
	if err != nil {
		logger.WithCtx(cc.Context()).Error("subscribe failed", "error", err)
		cc.ServerError()
		return
	}

	cc.JSON(http.StatusCreated, map[string]string{
		"message": "Successfully subscribed to the newsletter!",
	})
}

// Index handles GET /api/admin/subscribers.
func (c *SubscriberController) Index(cc *ctx.Context) {
	subs, err := c.subscribers.All(cc.Context())
	if err != nil {
		logger.WithCtx(cc.Context()).Error("subscriber list failed", "error", err)
		cc.ServerError()
		return
	}
	cc.JSON(http.StatusOK, subs)
}

// Delete handles DELETE /api/admin/subscribers/{id}.
func (c *SubscriberController) Delete(cc *ctx.Context) {
	err := c.subscribers.Delete(cc.Context(), cc.Param("id"))
	if errors.Is(err, models.ErrNotFound) {
		cc.NotFound("Subscriber not found")
		return
	}
	if err != nil {
		logger.WithCtx(cc.Context()).Error("subscriber delete failed", "error", err)
		cc.ServerError()
		return
	}
	cc.JSON(http.StatusOK, map[string]string{"message": "Subscriber removed"})
}
