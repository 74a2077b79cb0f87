// Package views derives read-only projections from the working set: expiry
// buckets, recipe feasibility, and search/filter subsets. Every function
// is pure over its inputs and a reference "today".
package views

import (
	"math"
	"strings"
	"time"

	"PantryTrack/entities"
)

// Expiry buckets.
const (
	StatusSafe    = "Safe"
	StatusWarning = "Warning"
	StatusExpired = "Expired"
)

// DefaultExpiryWindowDays is the expiring-soon horizon.
const DefaultExpiryWindowDays = 3

// CategoryAll matches every category in FilteredFoods.
const CategoryAll = "all"

// DaysUntilExpiry returns the whole days left before an item expires.
// Zero means it expires today; negative means it already has.
func DaysUntilExpiry(item entities.FoodItem, today time.Time) int {
	expiry := startOfDay(item.ExpiryDate)
	ref := startOfDay(today)
	return int(math.Ceil(expiry.Sub(ref).Hours() / 24))
}

// ExpiringSoon returns the foods expiring within the window, today
// included, in collection order.
func ExpiringSoon(foods []entities.FoodItem, today time.Time, windowDays int) []entities.FoodItem {
	var out []entities.FoodItem
	for _, item := range foods {
		days := DaysUntilExpiry(item, today)
		if days >= 0 && days <= windowDays {
			out = append(out, item)
		}
	}
	return out
}

// Expired returns the foods already past their expiry date.
func Expired(foods []entities.FoodItem, today time.Time) []entities.FoodItem {
	var out []entities.FoodItem
	for _, item := range foods {
		if DaysUntilExpiry(item, today) < 0 {
			out = append(out, item)
		}
	}
	return out
}

// Status buckets one item: Expired, Warning inside the default window,
// Safe otherwise.
func Status(item entities.FoodItem, today time.Time) string {
	days := DaysUntilExpiry(item, today)
	switch {
	case days < 0:
		return StatusExpired
	case days <= DefaultExpiryWindowDays:
		return StatusWarning
	default:
		return StatusSafe
	}
}

// Stats counts the collection per expiry bucket.
type Stats struct {
	Total   int `json:"total"`
	Safe    int `json:"safe"`
	Warning int `json:"warning"`
	Expired int `json:"expired"`
}

func Summarize(foods []entities.FoodItem, today time.Time) Stats {
	stats := Stats{Total: len(foods)}
	for _, item := range foods {
		switch Status(item, today) {
		case StatusExpired:
			stats.Expired++
		case StatusWarning:
			stats.Warning++
		default:
			stats.Safe++
		}
	}
	return stats
}

// AvailableRecipes returns the recipes whose every ingredient is matched
// by some food: case-insensitive substring on the name and stock quantity
// at least the required quantity.
//
// Matching is per-ingredient independent: one food may satisfy several
// ingredients at once without its quantity being reserved. That keeps
// compatibility with how stock has always been counted here; see
// AvailableRecipesStrict for the reservation-based variant.
func AvailableRecipes(recipes []entities.Recipe, foods []entities.FoodItem) []entities.Recipe {
	var out []entities.Recipe
	for _, r := range recipes {
		if feasible(r, foods) {
			out = append(out, r)
		}
	}
	return out
}

func feasible(r entities.Recipe, foods []entities.FoodItem) bool {
	for _, ing := range r.Ingredients {
		if !ingredientSatisfied(ing, foods) {
			return false
		}
	}
	return true
}

func ingredientSatisfied(ing entities.Ingredient, foods []entities.FoodItem) bool {
	needle := strings.ToLower(ing.Name)
	for _, item := range foods {
		if strings.Contains(strings.ToLower(item.Name), needle) && item.Quantity >= ing.Quantity {
			return true
		}
	}
	return false
}

// AvailableRecipesStrict is the reservation-based variant: within one
// recipe's evaluation a food's quantity is consumed as ingredients match
// it, so two ingredients cannot double-count the same stock.
func AvailableRecipesStrict(recipes []entities.Recipe, foods []entities.FoodItem) []entities.Recipe {
	var out []entities.Recipe
	for _, r := range recipes {
		if feasibleStrict(r, foods) {
			out = append(out, r)
		}
	}
	return out
}

func feasibleStrict(r entities.Recipe, foods []entities.FoodItem) bool {
	remaining := make([]float64, len(foods))
	for i, item := range foods {
		remaining[i] = item.Quantity
	}

	for _, ing := range r.Ingredients {
		needle := strings.ToLower(ing.Name)
		matched := false
		for i, item := range foods {
			if strings.Contains(strings.ToLower(item.Name), needle) && remaining[i] >= ing.Quantity {
				remaining[i] -= ing.Quantity
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

// FilteredFoods returns the foods whose name contains the search term,
// case-insensitively, restricted to one category unless category is
// CategoryAll. An empty term matches everything; order is preserved.
func FilteredFoods(foods []entities.FoodItem, searchTerm, category string) []entities.FoodItem {
	needle := strings.ToLower(searchTerm)
	var out []entities.FoodItem
	for _, item := range foods {
		if !strings.Contains(strings.ToLower(item.Name), needle) {
			continue
		}
		if category != CategoryAll && item.Category != category {
			continue
		}
		out = append(out, item)
	}
	return out
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
