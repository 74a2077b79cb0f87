// Package session owns the in-memory working set for one user session and
// implements the record lifecycle: identity assignment, in-place edits
// preserving identity and creation time, and deletion by identity.
package session

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"PantryTrack/domain"
	"PantryTrack/entities"
	"PantryTrack/pkg/syncer"
)

const dateLayout = "2006-01-02"

// Synchronizer is what the session needs from the synchronization
// engine. *syncer.Engine satisfies it.
type Synchronizer interface {
	Load(ctx context.Context) ([]entities.FoodItem, []entities.Recipe)
	FoodsChanged(items []entities.FoodItem, src syncer.Source)
	RecipesChanged(items []entities.Recipe, src syncer.Source)
}

type Session struct {
	engine   Synchronizer
	validate *validator.Validate

	now   func() time.Time
	newID func() uuid.UUID

	foods   []entities.FoodItem
	recipes []entities.Recipe
}

type Option func(*Session)

// WithClock fixes the creation-timestamp source. Tests use it.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithIDSource fixes the identity generator. Tests use it.
func WithIDSource(newID func() uuid.UUID) Option {
	return func(s *Session) { s.newID = newID }
}

func New(engine Synchronizer, opts ...Option) *Session {
	s := &Session{
		engine:   engine,
		validate: validator.New(),
		now:      time.Now,
		newID:    uuid.New,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load populates the working set. It is called once per session, before
// any mutation.
func (s *Session) Load(ctx context.Context) {
	s.foods, s.recipes = s.engine.Load(ctx)
}

// Foods returns a copy of the food working set in insertion order.
func (s *Session) Foods() []entities.FoodItem {
	return append([]entities.FoodItem(nil), s.foods...)
}

// Recipes returns a copy of the recipe working set in insertion order.
func (s *Session) Recipes() []entities.Recipe {
	return append([]entities.Recipe(nil), s.recipes...)
}

func (s *Session) CreateFood(req domain.AddFoodItemRequest) (entities.FoodItem, error) {
	if err := s.validate.Struct(req); err != nil {
		return entities.FoodItem{}, err
	}

	expiry, err := time.Parse(dateLayout, req.ExpiryDate)
	if err != nil {
		return entities.FoodItem{}, domain.ErrInvalidExpiryDate
	}

	item := entities.FoodItem{
		ID:         s.newID(),
		Name:       req.Name,
		Category:   normalizeCategory(req.Category),
		Quantity:   coercePositive(req.Quantity),
		Unit:       normalizeUnit(req.Unit),
		ExpiryDate: expiry,
		Notes:      req.Notes,
		DateAdded:  s.now(),
	}

	s.foods = append(s.foods, item)
	s.engine.FoodsChanged(s.Foods(), syncer.SourceUser)
	return item, nil
}

func (s *Session) UpdateFood(id uuid.UUID, req domain.UpdateFoodItemRequest) (entities.FoodItem, error) {
	if err := s.validate.Struct(req); err != nil {
		return entities.FoodItem{}, err
	}

	expiry, err := time.Parse(dateLayout, req.ExpiryDate)
	if err != nil {
		return entities.FoodItem{}, domain.ErrInvalidExpiryDate
	}

	for i := range s.foods {
		if s.foods[i].ID != id {
			continue
		}

		// Identity, position and creation time survive every edit.
		item := &s.foods[i]
		item.Name = req.Name
		item.Category = normalizeCategory(req.Category)
		item.Quantity = coercePositive(req.Quantity)
		item.Unit = normalizeUnit(req.Unit)
		item.ExpiryDate = expiry
		item.Notes = req.Notes

		s.engine.FoodsChanged(s.Foods(), syncer.SourceUser)
		return *item, nil
	}

	return entities.FoodItem{}, domain.ErrFoodItemNotFound
}

// DeleteFood removes the food with the given identity. Deleting an
// absent identity is a silent no-op.
func (s *Session) DeleteFood(id uuid.UUID) {
	for i := range s.foods {
		if s.foods[i].ID != id {
			continue
		}
		s.foods = append(s.foods[:i], s.foods[i+1:]...)
		s.engine.FoodsChanged(s.Foods(), syncer.SourceUser)
		return
	}
}

func (s *Session) CreateRecipe(req domain.AddRecipeRequest) (entities.Recipe, error) {
	if err := s.validate.Struct(req); err != nil {
		return entities.Recipe{}, err
	}

	item := entities.Recipe{
		ID:           s.newID(),
		Name:         req.Name,
		Description:  req.Description,
		Instructions: req.Instructions,
		CookingTime:  req.CookingTime,
		Servings:     coerceServings(req.Servings),
		Ingredients:  buildIngredients(req.Ingredients),
		DateCreated:  s.now(),
	}

	s.recipes = append(s.recipes, item)
	s.engine.RecipesChanged(s.Recipes(), syncer.SourceUser)
	return item, nil
}

func (s *Session) UpdateRecipe(id uuid.UUID, req domain.UpdateRecipeRequest) (entities.Recipe, error) {
	if err := s.validate.Struct(req); err != nil {
		return entities.Recipe{}, err
	}

	for i := range s.recipes {
		if s.recipes[i].ID != id {
			continue
		}

		item := &s.recipes[i]
		item.Name = req.Name
		item.Description = req.Description
		item.Instructions = req.Instructions
		item.CookingTime = req.CookingTime
		item.Servings = coerceServings(req.Servings)
		item.Ingredients = buildIngredients(req.Ingredients)

		s.engine.RecipesChanged(s.Recipes(), syncer.SourceUser)
		return *item, nil
	}

	return entities.Recipe{}, domain.ErrRecipeNotFound
}

// DeleteRecipe removes the recipe with the given identity. Deleting an
// absent identity is a silent no-op.
func (s *Session) DeleteRecipe(id uuid.UUID) {
	for i := range s.recipes {
		if s.recipes[i].ID != id {
			continue
		}
		s.recipes = append(s.recipes[:i], s.recipes[i+1:]...)
		s.engine.RecipesChanged(s.Recipes(), syncer.SourceUser)
		return
	}
}

func buildIngredients(inputs []domain.IngredientInput) entities.IngredientList {
	list := make(entities.IngredientList, 0, len(inputs))
	for _, in := range inputs {
		list = append(list, entities.Ingredient{
			Name:     in.Name,
			Quantity: coercePositive(in.Quantity),
			Unit:     normalizeIngredientUnit(in.Unit),
		})
	}
	return list
}

// coercePositive replaces a non-positive quantity with the safe default
// of 1 instead of refusing the record.
func coercePositive(q float64) float64 {
	if q <= 0 {
		return 1
	}
	return q
}

func coerceServings(servings int) int {
	if servings <= 0 {
		return 1
	}
	return servings
}

func normalizeCategory(category string) string {
	category = strings.ToLower(strings.TrimSpace(category))
	if entities.IsValidFoodCategory(category) {
		return category
	}
	return "other"
}

func normalizeUnit(unit string) string {
	for _, u := range entities.FoodUnits {
		if u == unit {
			return unit
		}
	}
	return "unit"
}

func normalizeIngredientUnit(unit string) string {
	for _, u := range entities.IngredientUnits {
		if u == unit {
			return unit
		}
	}
	return "unit"
}
