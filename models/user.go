package models

import (
    "time"
)

type User struct {
    ID           string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
    Name         string    `gorm:"not null" json:"name"`
    Email        string    `gorm:"uniqueIndex;not null" json:"email"`
    SessionToken string    `gorm:"uniqueIndex;not null" json:"-"`
    CreatedAt    time.Time `json:"created_at"`
}
