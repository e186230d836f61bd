package service

import "errors"

// Sentinel errors returned by services; the HTTP layer maps them to statuses.
var (
	ErrNotFound         = errors.New("not found")
	ErrTitleRequired    = errors.New("title is required")
	ErrNameRequired     = errors.New("name is required")
	ErrInvalidPriority  = errors.New("invalid priority")
	ErrCategoryNotFound = errors.New("category not found")
	ErrDuplicateName    = errors.New("category name already exists")
	ErrCategoryHasTasks = errors.New("category still has tasks")
)
