package services

import (
	"context"

	"github.com/leonardo-a/daily-diet-api/models"

	"gorm.io/gorm"
)

type MetricsService struct{ db *gorm.DB }

func NewMetricsService(db *gorm.DB) *MetricsService { return &MetricsService{db: db} }

type DietMetrics struct {
	TotalMeals        int `json:"totalMeals"`
	TotalMealsOnDiet  int `json:"totalMealsOnDiet"`
	TotalMealsOutDiet int `json:"totalMealsOutDiet"`
	BestDietSequence  int `json:"bestDietSequence"`
}

// Compute walks the user's meals in chronological order and derives the
// totals plus the longest run of consecutive on-diet meals. The streak is
// only correct over ascending ate_at, so the query orders explicitly here
// instead of reusing the descending display order.
func (s *MetricsService) Compute(ctx context.Context, userID string) (*DietMetrics, error) {
	var meals []models.Meal
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("ate_at ASC").
		Find(&meals).Error
	if err != nil {
		return nil, err
	}

	m := &DietMetrics{TotalMeals: len(meals)}
	current := 0
	for _, meal := range meals {
		if meal.IsOnDiet {
			m.TotalMealsOnDiet++
			current++
		} else {
			m.TotalMealsOutDiet++
			current = 0
		}
		if current > m.BestDietSequence {
			m.BestDietSequence = current
		}
	}
	return m, nil
}
