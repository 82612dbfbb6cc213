package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")
	ErrPlayerExists   = errors.New("player already exists for this subject")

	// Rate limiting
	ErrRateLimited = errors.New("rate limited")

	// Generation cache
	ErrNotCached = errors.New("no cached example for this word")
)
