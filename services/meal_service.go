// services/meal_service.go
package services

import (
	"context"
	"errors"
	"time"

	"github.com/leonardo-a/daily-diet-api/models"
	"github.com/leonardo-a/daily-diet-api/utils"

	"gorm.io/gorm"
)

type MealService struct{ db *gorm.DB }

func NewMealService(db *gorm.DB) *MealService { return &MealService{db: db} }

// MealUpdate carries the fields of a partial update. Nil fields keep the
// stored value.
type MealUpdate struct {
	Name        *string
	Description *string
	IsOnDiet    *bool
	AteAt       *time.Time
}

// authorizeMeal fetches a meal and checks it belongs to user. Order
// matters: a missing meal is ErrMealNotFound, a foreign meal is
// ErrNotMealOwner, in that order. Every single-meal read or write goes
// through here.
func (s *MealService) authorizeMeal(ctx context.Context, user *models.User, mealID string) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.WithContext(ctx).Where("id = ?", mealID).First(&meal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMealNotFound
	}
	if err != nil {
		return nil, err
	}
	if meal.UserID != user.ID {
		return nil, ErrNotMealOwner
	}
	return &meal, nil
}

func (s *MealService) Create(ctx context.Context, userID, name, description string, isOnDiet bool, ateAt time.Time) (*models.Meal, error) {
	meal := &models.Meal{
		ID:          utils.NewID(),
		UserID:      userID,
		Name:        name,
		Description: description,
		IsOnDiet:    isOnDiet,
		AteAt:       ateAt,
	}
	if err := s.db.WithContext(ctx).Create(meal).Error; err != nil {
		return nil, err
	}
	return meal, nil
}

func (s *MealService) Get(ctx context.Context, user *models.User, mealID string) (*models.Meal, error) {
	return s.authorizeMeal(ctx, user, mealID)
}

// List returns the user's meals in display order, most recent first.
// The metrics service does NOT consume this order; it issues its own
// ascending query.
func (s *MealService) List(ctx context.Context, userID string) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("ate_at DESC").
		Find(&meals).Error
	return meals, err
}

// Update applies only the fields set in upd; everything else keeps its
// stored value. All provided fields are written in a single Updates call.
func (s *MealService) Update(ctx context.Context, user *models.User, mealID string, upd MealUpdate) error {
	meal, err := s.authorizeMeal(ctx, user, mealID)
	if err != nil {
		return err
	}

	fields := map[string]interface{}{}
	if upd.Name != nil {
		fields["name"] = *upd.Name
	}
	if upd.Description != nil {
		fields["description"] = *upd.Description
	}
	if upd.IsOnDiet != nil {
		fields["is_on_diet"] = *upd.IsOnDiet
	}
	if upd.AteAt != nil {
		fields["ate_at"] = *upd.AteAt
	}
	if len(fields) == 0 {
		return nil
	}

	return s.db.WithContext(ctx).
		Model(&models.Meal{}).
		Where("id = ?", meal.ID).
		Updates(fields).Error
}

func (s *MealService) Delete(ctx context.Context, user *models.User, mealID string) error {
	meal, err := s.authorizeMeal(ctx, user, mealID)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&models.Meal{}, "id = ?", meal.ID).Error
}
