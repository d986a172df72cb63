package utils

import "errors"

var (
	ErrUnauthenticated      = errors.New("unauthenticated")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrEmailAlreadyExists   = errors.New("email already registered")
	ErrUserNotFound         = errors.New("user not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrAnalysisNotFound     = errors.New("analysis not found")
	ErrMissingFields        = errors.New("missing required fields")
	ErrMissingNameOrSlug    = errors.New("name and slug are required")
	ErrMissingPreferences   = errors.New("preferences not provided")
	ErrInvalidExportFormat  = errors.New("invalid export format")
	ErrNoAnalysesFound      = errors.New("no analyses found")
	ErrDatabaseError        = errors.New("database error")
)
