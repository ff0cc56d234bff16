package services

import "errors"

var (
	// ErrEmailTaken is returned when a registration reuses an email.
	ErrEmailTaken = errors.New("user already exists")

	// ErrInvalidSession is returned when no user holds the presented
	// session token.
	ErrInvalidSession = errors.New("invalid session token")

	// ErrMealNotFound is returned when a meal id resolves to nothing.
	ErrMealNotFound = errors.New("meal not found")

	// ErrNotMealOwner is returned when the meal exists but belongs to a
	// different user. Callers must check ErrMealNotFound first; existence
	// is reported before ownership on single-meal lookups.
	ErrNotMealOwner = errors.New("meal belongs to another user")
)
