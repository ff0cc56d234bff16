package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/leonardo-a/daily-diet-api/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	Svc *services.MealService
}

func NewMealController(svc *services.MealService) *MealController {
	return &MealController{Svc: svc}
}

type CreateMealInput struct {
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	IsOnDiet    *bool     `json:"is_on_diet" binding:"required"`
	AteAt       time.Time `json:"ate_at" binding:"required"`
}

type UpdateMealInput struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	IsOnDiet    *bool      `json:"is_on_diet"`
	AteAt       *time.Time `json:"ate_at"`
}

// mealError maps the service taxonomy to status codes. Not-found is
// reported before ownership, so a caller probing a foreign meal id still
// learns it exists; that ordering is part of the API contract.
func mealError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMealNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found."})
	case errors.Is(err, services.ErrNotMealOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden."})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (h *MealController) CreateMeal(c *gin.Context) {
	user, ok := userFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized."})
		return
	}

	var input CreateMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := h.Svc.Create(c.Request.Context(), user.ID, input.Name, input.Description, *input.IsOnDiet, input.AteAt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"mealId": meal.ID})
}

func (h *MealController) ListMeals(c *gin.Context) {
	user, ok := userFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized."})
		return
	}

	meals, err := h.Svc.List(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

func (h *MealController) GetMeal(c *gin.Context) {
	user, ok := userFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized."})
		return
	}

	meal, err := h.Svc.Get(c.Request.Context(), user, c.Param("id"))
	if err != nil {
		mealError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"meal": meal})
}

func (h *MealController) UpdateMeal(c *gin.Context) {
	user, ok := userFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized."})
		return
	}

	var input UpdateMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	upd := services.MealUpdate{
		Name:        input.Name,
		Description: input.Description,
		IsOnDiet:    input.IsOnDiet,
		AteAt:       input.AteAt,
	}
	if err := h.Svc.Update(c.Request.Context(), user, c.Param("id"), upd); err != nil {
		mealError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *MealController) DeleteMeal(c *gin.Context) {
	user, ok := userFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized."})
		return
	}

	if err := h.Svc.Delete(c.Request.Context(), user, c.Param("id")); err != nil {
		mealError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
