package validate

import (
	"math"
	"regexp"
	"strings"
)

// FieldErrors carries the ordered validation messages for a rejected payload.
type FieldErrors []string

func (e FieldErrors) Error() string {
	return strings.Join(e, "; ")
}

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^[0-9()+\- ]{10,20}$`)
	alnumRegex = regexp.MustCompile(`[a-zA-Z0-9]`)
	digitRegex = regexp.MustCompile(`[0-9]`)
)

// Email reports whether s looks like local@domain with no embedded whitespace.
func Email(s string) bool {
	return emailRegex.MatchString(s)
}

// Phone accepts 10-20 characters of digits, spaces, hyphens, parentheses and
// plus signs, with at least 10 raw digits among them.
func Phone(s string) bool {
	if !phoneRegex.MatchString(s) {
		return false
	}
	return len(digitRegex.FindAllString(s, -1)) >= 10
}

// Address requires at least 5 characters after trimming and at least one
// alphanumeric character.
func Address(s string) bool {
	trimmed := strings.TrimSpace(s)
	return len(trimmed) >= 5 && alnumRegex.MatchString(trimmed)
}

type OrderItemInput struct {
	Name      string
	Quantity  int
	UnitPrice float64
}

type OrderInput struct {
	Contact *string
	Email   *string
	Address *string
	Items   []OrderItemInput
}

// OrderInput aggregates field checks into one pass/fail plus an ordered list
// of messages. The check order is fixed so error output is stable.
func CheckOrderInput(in OrderInput) (bool, []string) {
	var errs []string

	if len(in.Items) == 0 {
		errs = append(errs, "order must contain at least one item")
	}
	for _, item := range in.Items {
		if strings.TrimSpace(item.Name) == "" {
			errs = append(errs, "item name is required")
		}
		if item.Quantity <= 0 {
			errs = append(errs, "item quantity must be greater than zero")
		}
		if math.IsNaN(item.UnitPrice) || math.IsInf(item.UnitPrice, 0) || item.UnitPrice < 0 {
			errs = append(errs, "item price must be a non-negative number")
		}
	}
	if in.Contact != nil && *in.Contact != "" && !Phone(*in.Contact) {
		errs = append(errs, "invalid contact number")
	}
	if in.Email != nil && *in.Email != "" && !Email(*in.Email) {
		errs = append(errs, "invalid email address")
	}
	if in.Address != nil && *in.Address != "" && !Address(*in.Address) {
		errs = append(errs, "invalid delivery address")
	}

	return len(errs) == 0, errs
}

var foodCategories = map[string]bool{
	"main":     true,
	"snacks":   true,
	"desserts": true,
	"drinks":   true,
}

type FoodItemInput struct {
	Name     string
	Price    float64
	Category string
}

func CheckFoodItem(in FoodItemInput) (bool, []string) {
	var errs []string

	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, "name is required")
	}
	if math.IsNaN(in.Price) || math.IsInf(in.Price, 0) || in.Price < 0 {
		errs = append(errs, "price must be a non-negative number")
	}
	if !foodCategories[in.Category] {
		errs = append(errs, "invalid category")
	}

	return len(errs) == 0, errs
}
