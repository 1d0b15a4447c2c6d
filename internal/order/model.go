package order

import "time"

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusPreparing Status = "PREPARING"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusPreparing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID           int64
	CustomerName *string
	Contact      *string
	Email        *string
	Address      *string
	Status       Status
	Total        float64
	Archived     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Items        []Item
}

// Item is a line item. Name is a snapshot taken at order time so the line
// survives later catalog edits; FoodItemID may be nil for off-menu entries.
type Item struct {
	ID         int64
	OrderID    int64
	FoodItemID *int64
	Name       string
	Quantity   int
	UnitPrice  float64
	LineTotal  float64
}

type ItemInput struct {
	FoodItemID *int64
	Name       string
	Quantity   int
	UnitPrice  float64
}

type CreateInput struct {
	CustomerName *string
	Contact      *string
	Email        *string
	Address      *string
	Items        []ItemInput
}

// Filter narrows List results. Archived orders are excluded unless
// IncludeArchived is set.
type Filter struct {
	Status          *Status
	IncludeArchived bool
	DateFrom        *time.Time
	DateTo          *time.Time
	Limit           *int32
	Page            *int32
}
