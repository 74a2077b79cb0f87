package storage

import (
	"context"
	"log"

	"PantryTrack/entities"
)

// TwoTier reads and writes through a primary store, degrading to a
// fallback store when the primary is unreachable. Selection is driven by
// the primary's capability probe; a write still gets exactly one attempt
// against a probed-healthy primary before degrading.
type TwoTier struct {
	primary  Store
	fallback Store
}

func NewTwoTier(primary, fallback Store) *TwoTier {
	return &TwoTier{primary: primary, fallback: fallback}
}

func (t *TwoTier) ReadFoods(ctx context.Context) ([]entities.FoodItem, error) {
	if t.primaryReachable(ctx) {
		items, err := t.primary.ReadFoods(ctx)
		if err == nil {
			return items, nil
		}
		log.Printf("storage: primary food read failed, using fallback: %v", err)
	}
	return t.fallback.ReadFoods(ctx)
}

func (t *TwoTier) WriteFoods(ctx context.Context, items []entities.FoodItem) error {
	if t.primaryReachable(ctx) {
		err := t.primary.WriteFoods(ctx, items)
		if err == nil {
			return nil
		}
		log.Printf("storage: primary food write failed, degrading to fallback: %v", err)
	}
	return t.fallback.WriteFoods(ctx, items)
}

func (t *TwoTier) ReadRecipes(ctx context.Context) ([]entities.Recipe, error) {
	if t.primaryReachable(ctx) {
		items, err := t.primary.ReadRecipes(ctx)
		if err == nil {
			return items, nil
		}
		log.Printf("storage: primary recipe read failed, using fallback: %v", err)
	}
	return t.fallback.ReadRecipes(ctx)
}

func (t *TwoTier) WriteRecipes(ctx context.Context, items []entities.Recipe) error {
	if t.primaryReachable(ctx) {
		err := t.primary.WriteRecipes(ctx, items)
		if err == nil {
			return nil
		}
		log.Printf("storage: primary recipe write failed, degrading to fallback: %v", err)
	}
	return t.fallback.WriteRecipes(ctx, items)
}

func (t *TwoTier) primaryReachable(ctx context.Context) bool {
	p, ok := t.primary.(Prober)
	if !ok {
		return true
	}
	if err := p.Probe(ctx); err != nil {
		log.Printf("storage: primary probe failed: %v", err)
		return false
	}
	return true
}
