package collection

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PantryTrack/entities"
)

type fakeRepository struct {
	foods   []entities.FoodItem
	recipes []entities.Recipe
}

func (f *fakeRepository) GetFoodItems(ctx context.Context) ([]entities.FoodItem, error) {
	return f.foods, nil
}

func (f *fakeRepository) ReplaceFoodItems(ctx context.Context, items []entities.FoodItem) error {
	f.foods = items
	return nil
}

func (f *fakeRepository) GetRecipes(ctx context.Context) ([]entities.Recipe, error) {
	return f.recipes, nil
}

func (f *fakeRepository) ReplaceRecipes(ctx context.Context, items []entities.Recipe) error {
	f.recipes = items
	return nil
}

func TestGetFoods_NeverNil(t *testing.T) {
	s := NewCollectionService(&fakeRepository{})

	items, err := s.GetFoods(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestReplaceFoods_AssignsPositionsAndIdentities(t *testing.T) {
	repo := &fakeRepository{}
	s := NewCollectionService(repo)

	existing := uuid.New()
	err := s.ReplaceFoods(context.Background(), []entities.FoodItem{
		{ID: existing, Name: "Milk"},
		{Name: "Bread"},
	})
	require.NoError(t, err)

	require.Len(t, repo.foods, 2)
	assert.Equal(t, 0, repo.foods[0].Position)
	assert.Equal(t, 1, repo.foods[1].Position)
	assert.Equal(t, existing, repo.foods[0].ID, "existing identity is kept")
	assert.NotEqual(t, uuid.Nil, repo.foods[1].ID, "missing identity is assigned")
}

func TestReplaceRecipes_EmptyArrayClears(t *testing.T) {
	repo := &fakeRepository{recipes: []entities.Recipe{{ID: uuid.New(), Name: "Old"}}}
	s := NewCollectionService(repo)

	require.NoError(t, s.ReplaceRecipes(context.Background(), []entities.Recipe{}))
	assert.Empty(t, repo.recipes)
}
