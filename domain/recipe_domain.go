package domain

import (
	"errors"
)

var (
	MessageSuccessGetRecipes     = "recipe collection retrieved successfully"
	MessageSuccessReplaceRecipes = "recipe collection replaced successfully"

	MessageFailedGetRecipes     = "failed to retrieve recipe collection"
	MessageFailedReplaceRecipes = "failed to replace recipe collection"

	ErrRecipeNotFound = errors.New("recipe not found")
)

type (
	IngredientInput struct {
		Name     string  `json:"name" validate:"required"`
		Quantity float64 `json:"quantity"`
		Unit     string  `json:"unit"`
	}

	AddRecipeRequest struct {
		Name         string            `json:"name" validate:"required"`
		Description  string            `json:"description"`
		Instructions string            `json:"instructions" validate:"required"`
		CookingTime  string            `json:"cooking_time"`
		Servings     int               `json:"servings"`
		Ingredients  []IngredientInput `json:"ingredients" validate:"dive"`
	}

	UpdateRecipeRequest struct {
		Name         string            `json:"name" validate:"required"`
		Description  string            `json:"description"`
		Instructions string            `json:"instructions" validate:"required"`
		CookingTime  string            `json:"cooking_time"`
		Servings     int               `json:"servings"`
		Ingredients  []IngredientInput `json:"ingredients" validate:"dive"`
	}
)
