package services

import (
	"context"
	"errors"

	"github.com/leonardo-a/daily-diet-api/models"
	"github.com/leonardo-a/daily-diet-api/utils"

	"gorm.io/gorm"
)

type AuthService struct{ db *gorm.DB }

func NewAuthService(db *gorm.DB) *AuthService { return &AuthService{db: db} }

// Register creates a user and issues their session token. The token is a
// permanent bearer credential: there is no expiry, rotation or revocation.
// A duplicate email fails with ErrEmailTaken and leaves the existing user
// untouched.
func (s *AuthService) Register(ctx context.Context, name, email string) (*models.User, error) {
	var existing models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := &models.User{
		ID:           utils.NewID(),
		Name:         name,
		Email:        email,
		SessionToken: utils.NewSessionToken(),
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// ResolveToken maps a session token back to its user. An unknown or empty
// token fails with ErrInvalidSession.
func (s *AuthService) ResolveToken(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrInvalidSession
	}
	var user models.User
	err := s.db.WithContext(ctx).Where("session_token = ?", token).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidSession
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
