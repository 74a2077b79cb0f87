package routes

import (
	"PantryTrack/internal/api/handlers"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	CollectionHandler handlers.CollectionHandler
	HealthHandler     handlers.HealthHandler
	DigestHandler     handlers.DigestHandler
}

func (c *Config) Setup() {
	c.Collections()
	c.Health()
	c.Digest()
}

func (c *Config) Collections() {
	// Whole-collection read/replace, no partial updates. PUT is the
	// canonical replace verb; POST is accepted for older clients.
	c.App.Get("/foods-collection", c.CollectionHandler.GetFoods)
	c.App.Put("/foods-collection", c.CollectionHandler.ReplaceFoods)
	c.App.Post("/foods-collection", c.CollectionHandler.ReplaceFoods)

	c.App.Get("/recipes-collection", c.CollectionHandler.GetRecipes)
	c.App.Put("/recipes-collection", c.CollectionHandler.ReplaceRecipes)
	c.App.Post("/recipes-collection", c.CollectionHandler.ReplaceRecipes)
}

func (c *Config) Health() {
	c.App.Get("/health", c.HealthHandler.Health)
}

func (c *Config) Digest() {
	c.App.Post("/api/v1/digest", c.DigestHandler.SendDigest)
}
