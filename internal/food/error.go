package food

import "errors"

var (
	ErrItemNotFound    = errors.New("food item not found")
	ErrCodeTaken       = errors.New("Code already exists")
	ErrInvalidPrice    = errors.New("price must be a non-negative number")
	ErrInvalidCategory = errors.New("invalid category")
	ErrNoFields        = errors.New("no fields to update")
)
