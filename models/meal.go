package models

import (
    "time"
)

// One logged meal. Ownership is the whole access model: a meal is only
// ever visible to the user whose ID it carries.
type Meal struct {
    ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
    UserID      string    `gorm:"type:varchar(36);index;not null" json:"user_id"` // FK → users.id, no cascade
    Name        string    `gorm:"not null" json:"name"`
    Description string    `json:"description"`
    IsOnDiet    bool      `gorm:"not null" json:"is_on_diet"`
    AteAt       time.Time `gorm:"index;not null" json:"ate_at"` // timestamp of the meal
    CreatedAt   time.Time `json:"created_at"`
    UpdatedAt   time.Time `json:"updated_at"`
}
