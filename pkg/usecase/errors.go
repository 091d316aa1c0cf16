package usecase

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for use case layer
var (
	ErrEmptyCatalog       = goerr.New("empty catalog")
	ErrNoDrawableRisk     = goerr.New("no risk in catalog has a positive likelihood")
	ErrInvalidSprintCount = goerr.New("sprint count must be at least 1")
)
