package fingerprint

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"PantryTrack/entities"
)

func sampleFoods() []entities.FoodItem {
	return []entities.FoodItem{
		{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Name: "Milk", Quantity: 1, Unit: "L",
			ExpiryDate: time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)},
		{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Name: "Bread", Quantity: 2, Unit: "unit",
			ExpiryDate: time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)},
	}
}

func TestFoods_Deterministic(t *testing.T) {
	assert.Equal(t, Foods(sampleFoods()), Foods(sampleFoods()))
}

func TestFoods_OrderIndependent(t *testing.T) {
	items := sampleFoods()
	reversed := []entities.FoodItem{items[1], items[0]}
	assert.Equal(t, Foods(items), Foods(reversed))
}

func TestFoods_FieldSensitive(t *testing.T) {
	items := sampleFoods()
	changed := sampleFoods()
	changed[0].Quantity = 0.5
	assert.NotEqual(t, Foods(items), Foods(changed))

	renamed := sampleFoods()
	renamed[1].Name = "Baguette"
	assert.NotEqual(t, Foods(items), Foods(renamed))
}

func TestFoods_EmptyStable(t *testing.T) {
	assert.Equal(t, Foods(nil), Foods([]entities.FoodItem{}))
}

func TestFoodsAndRecipes_DomainsDiffer(t *testing.T) {
	// Empty collections of different kinds must never collide.
	assert.NotEqual(t, Foods(nil), Recipes(nil))
}

func TestRecipes_OrderIndependent(t *testing.T) {
	a := entities.Recipe{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Name: "Pancakes",
		Instructions: "mix and fry", Servings: 2,
		Ingredients: entities.IngredientList{{Name: "milk", Quantity: 0.5, Unit: "L"}}}
	b := entities.Recipe{ID: uuid.MustParse("44444444-4444-4444-4444-444444444444"), Name: "Toast",
		Instructions: "toast it", Servings: 1}

	assert.Equal(t,
		Recipes([]entities.Recipe{a, b}),
		Recipes([]entities.Recipe{b, a}))
}
