package utils

import (
	"github.com/google/uuid"
)

// NewID returns a fresh identifier for a stored record.
func NewID() string {
	return uuid.NewString()
}

// NewSessionToken returns an opaque bearer credential. Tokens are never
// rotated or expired; the random UUID keeps them collision-free.
func NewSessionToken() string {
	return uuid.NewString()
}
