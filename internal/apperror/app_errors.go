package apperror

import "errors"

var (
	ErrGameNotFound      = errors.New("game not found")
	ErrNameRequired      = errors.New("name is required")
	ErrInvalidDifficulty = errors.New("invalid difficulty")
)
