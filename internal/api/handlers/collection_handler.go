package handlers

import (
	"PantryTrack/domain"
	"PantryTrack/entities"
	"PantryTrack/internal/api/presenters"
	"PantryTrack/pkg/collection"
	"github.com/gofiber/fiber/v2"
)

type (
	CollectionHandler interface {
		GetFoods(c *fiber.Ctx) error
		ReplaceFoods(c *fiber.Ctx) error
		GetRecipes(c *fiber.Ctx) error
		ReplaceRecipes(c *fiber.Ctx) error
	}

	collectionHandler struct {
		collectionService collection.CollectionService
	}
)

func NewCollectionHandler(collectionService collection.CollectionService) CollectionHandler {
	return &collectionHandler{collectionService: collectionService}
}

// GetFoods returns the bare ordered array; sync clients expect no
// envelope on collection reads.
func (h *collectionHandler) GetFoods(c *fiber.Ctx) error {
	items, err := h.collectionService.GetFoods(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFoods, err)
	}
	return c.Status(fiber.StatusOK).JSON(items)
}

func (h *collectionHandler) ReplaceFoods(c *fiber.Ctx) error {
	var items []entities.FoodItem
	if err := c.BodyParser(&items); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.collectionService.ReplaceFoods(c.Context(), items); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedReplaceFoods, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessReplaceFoods)
}

func (h *collectionHandler) GetRecipes(c *fiber.Ctx) error {
	items, err := h.collectionService.GetRecipes(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRecipes, err)
	}
	return c.Status(fiber.StatusOK).JSON(items)
}

func (h *collectionHandler) ReplaceRecipes(c *fiber.Ctx) error {
	var items []entities.Recipe
	if err := c.BodyParser(&items); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.collectionService.ReplaceRecipes(c.Context(), items); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedReplaceRecipes, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessReplaceRecipes)
}
