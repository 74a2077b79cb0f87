package collection

import (
	"PantryTrack/entities"
	"context"

	"github.com/google/uuid"
)

type (
	CollectionService interface {
		GetFoods(ctx context.Context) ([]entities.FoodItem, error)
		ReplaceFoods(ctx context.Context, items []entities.FoodItem) error
		GetRecipes(ctx context.Context) ([]entities.Recipe, error)
		ReplaceRecipes(ctx context.Context, items []entities.Recipe) error
	}

	collectionService struct {
		collectionRepository CollectionRepository
	}
)

func NewCollectionService(collectionRepository CollectionRepository) CollectionService {
	return &collectionService{collectionRepository: collectionRepository}
}

func (s *collectionService) GetFoods(ctx context.Context) ([]entities.FoodItem, error) {
	items, err := s.collectionRepository.GetFoodItems(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []entities.FoodItem{}
	}
	return items, nil
}

// ReplaceFoods stores the submitted array as the whole collection. The
// array position becomes the durable insertion order; records arriving
// without an identity get one assigned.
func (s *collectionService) ReplaceFoods(ctx context.Context, items []entities.FoodItem) error {
	for i := range items {
		items[i].Position = i
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
	}
	return s.collectionRepository.ReplaceFoodItems(ctx, items)
}

func (s *collectionService) GetRecipes(ctx context.Context) ([]entities.Recipe, error) {
	items, err := s.collectionRepository.GetRecipes(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []entities.Recipe{}
	}
	return items, nil
}

func (s *collectionService) ReplaceRecipes(ctx context.Context, items []entities.Recipe) error {
	for i := range items {
		items[i].Position = i
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
	}
	return s.collectionRepository.ReplaceRecipes(ctx, items)
}
