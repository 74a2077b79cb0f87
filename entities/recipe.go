package entities

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Units ingredients accept on top of the food units.
var IngredientUnits = append(append([]string{}, FoodUnits...), "cup", "tablespoon")

type Ingredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// IngredientList is stored as a JSON text column, keeping the
// ingredient order the author gave it.
type IngredientList []Ingredient

func (l IngredientList) Value() (driver.Value, error) {
	if l == nil {
		l = IngredientList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *IngredientList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = IngredientList{}
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into IngredientList", src)
	}
}

type Recipe struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name         string         `json:"name"`
	Description  string         `gorm:"type:text" json:"description,omitempty"`
	Instructions string         `gorm:"type:text" json:"instructions"`
	CookingTime  string         `json:"cooking_time,omitempty"`
	Servings     int            `json:"servings"`
	Ingredients  IngredientList `gorm:"type:text" json:"ingredients"`
	Position     int            `gorm:"index" json:"-"`
	DateCreated  time.Time      `json:"date_created"`
}
