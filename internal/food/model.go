package food

import "time"

type Category string

const (
	CategoryMain     Category = "main"
	CategorySnacks   Category = "snacks"
	CategoryDesserts Category = "desserts"
	CategoryDrinks   Category = "drinks"
)

func ValidCategory(c Category) bool {
	switch c {
	case CategoryMain, CategorySnacks, CategoryDesserts, CategoryDrinks:
		return true
	}
	return false
}

type Item struct {
	ID          int64
	Name        string
	Price       float64
	Description *string
	ImageURL    *string
	Category    Category
	Code        *string
	Available   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateInput struct {
	Name        string
	Price       float64
	Description *string
	ImageURL    *string
	Category    Category
	Code        *string
	Available   *bool
}

type UpdateInput struct {
	Name        *string
	Price       *float64
	Description *string
	ImageURL    *string
	Category    *Category
	Code        *string
	Available   *bool
}

func (in UpdateInput) HasAnyField() bool {
	return in.Name != nil ||
		in.Price != nil ||
		in.Description != nil ||
		in.ImageURL != nil ||
		in.Category != nil ||
		in.Code != nil ||
		in.Available != nil
}
