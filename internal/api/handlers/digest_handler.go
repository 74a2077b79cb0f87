package handlers

import (
	"time"

	"PantryTrack/domain"
	"PantryTrack/internal/api/presenters"
	"PantryTrack/internal/utils"
	"PantryTrack/pkg/collection"
	"PantryTrack/pkg/digest"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DigestHandler interface {
		SendDigest(c *fiber.Ctx) error
	}

	digestHandler struct {
		collectionService collection.CollectionService
		digestService     digest.DigestService
		validator         *validator.Validate
	}
)

func NewDigestHandler(collectionService collection.CollectionService, digestService digest.DigestService, validator *validator.Validate) DigestHandler {
	return &digestHandler{
		collectionService: collectionService,
		digestService:     digestService,
		validator:         validator,
	}
}

func (h *digestHandler) SendDigest(c *fiber.Ctx) error {
	req := new(domain.SendDigestRequest)
	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
		}
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSendDigest, err)
	}

	recipient := req.Recipient
	if recipient == "" {
		recipient = utils.GetConfig("DIGEST_RECIPIENT")
	}

	foods, err := h.collectionService.GetFoods(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSendDigest, err)
	}

	sent, err := h.digestService.SendDigest(foods, time.Now(), recipient)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedSendDigest, err)
	}
	if !sent {
		return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageNothingExpiring)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSendDigest)
}
