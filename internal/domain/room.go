package domain

import "strings"

type Category string

const (
	CategoryStandard Category = "Standard"
	CategoryDeluxe   Category = "Deluxe"
	CategorySuite    Category = "Suite"
)

// ParseCategory matches a user-supplied category name ignoring case.
// The second result is false for empty or unknown input, which callers
// treat as "any category".
func ParseCategory(s string) (Category, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard":
		return CategoryStandard, true
	case "deluxe":
		return CategoryDeluxe, true
	case "suite":
		return CategorySuite, true
	default:
		return "", false
	}
}

type Room struct {
	ID            string   `json:"id"`
	Category      Category `json:"category"`
	PricePerNight float64  `json:"price_per_night"`
}
