// Package storage defines the whole-collection persistence contract shared
// by the gateway client and the local fallback store.
package storage

import (
	"context"

	"PantryTrack/entities"
)

// Store is the whole-collection read/replace contract. There is no
// partial-update protocol: a write replaces the entire collection.
type Store interface {
	ReadFoods(ctx context.Context) ([]entities.FoodItem, error)
	WriteFoods(ctx context.Context, items []entities.FoodItem) error
	ReadRecipes(ctx context.Context) ([]entities.Recipe, error)
	WriteRecipes(ctx context.Context, items []entities.Recipe) error
}

// Prober reports whether a store is currently reachable. Stores that do
// not implement Prober are assumed always reachable.
type Prober interface {
	Probe(ctx context.Context) error
}
