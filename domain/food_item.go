package domain

import (
	"errors"
)

var (
	MessageSuccessGetFoods     = "food collection retrieved successfully"
	MessageSuccessReplaceFoods = "food collection replaced successfully"

	MessageFailedGetFoods     = "failed to retrieve food collection"
	MessageFailedReplaceFoods = "failed to replace food collection"

	ErrFoodItemNotFound  = errors.New("food item not found")
	ErrInvalidExpiryDate = errors.New("invalid expiry date")
)

type (
	AddFoodItemRequest struct {
		Name       string  `json:"name" validate:"required"`
		Category   string  `json:"category"`
		Quantity   float64 `json:"quantity"`
		Unit       string  `json:"unit"`
		ExpiryDate string  `json:"expiry_date" validate:"required"`
		Notes      string  `json:"notes"`
	}

	UpdateFoodItemRequest struct {
		Name       string  `json:"name" validate:"required"`
		Category   string  `json:"category"`
		Quantity   float64 `json:"quantity"`
		Unit       string  `json:"unit"`
		ExpiryDate string  `json:"expiry_date" validate:"required"`
		Notes      string  `json:"notes"`
	}
)
