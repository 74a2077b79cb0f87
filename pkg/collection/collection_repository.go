package collection

import (
	"PantryTrack/entities"
	"context"
	"gorm.io/gorm"
)

type (
	CollectionRepository interface {
		GetFoodItems(ctx context.Context) ([]entities.FoodItem, error)
		ReplaceFoodItems(ctx context.Context, items []entities.FoodItem) error
		GetRecipes(ctx context.Context) ([]entities.Recipe, error)
		ReplaceRecipes(ctx context.Context, items []entities.Recipe) error
	}

	collectionRepository struct {
		db *gorm.DB
	}
)

func NewCollectionRepository(db *gorm.DB) CollectionRepository {
	return &collectionRepository{db: db}
}

func (r *collectionRepository) GetFoodItems(ctx context.Context) ([]entities.FoodItem, error) {
	var items []entities.FoodItem
	if err := r.db.WithContext(ctx).Order("position asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *collectionRepository) ReplaceFoodItems(ctx context.Context, items []entities.FoodItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entities.FoodItem{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		return tx.CreateInBatches(items, 100).Error
	})
}

func (r *collectionRepository) GetRecipes(ctx context.Context) ([]entities.Recipe, error) {
	var items []entities.Recipe
	if err := r.db.WithContext(ctx).Order("position asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *collectionRepository) ReplaceRecipes(ctx context.Context, items []entities.Recipe) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entities.Recipe{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		return tx.CreateInBatches(items, 100).Error
	})
}
