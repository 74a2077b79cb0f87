package entities

import (
	"time"

	"github.com/google/uuid"
)

// Category vocabulary for food items.
var FoodCategories = []string{
	"dairy", "vegetables", "fruit", "meat", "fish",
	"grains", "preserves", "condiments", "beverages", "other",
}

// Units a food quantity can be expressed in.
var FoodUnits = []string{"unit", "kg", "g", "L", "mL"}

type FoodItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	Quantity   float64   `json:"quantity"`
	Unit       string    `json:"unit"`
	ExpiryDate time.Time `gorm:"type:date" json:"expiry_date"`
	Notes      string    `gorm:"type:text" json:"notes,omitempty"`
	Position   int       `gorm:"index" json:"-"`
	DateAdded  time.Time `json:"date_added"`
}

func IsValidFoodCategory(category string) bool {
	for _, c := range FoodCategories {
		if c == category {
			return true
		}
	}
	return false
}
