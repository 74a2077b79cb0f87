// Package gateway is the HTTP client for the persistence gateway. It is
// the primary tier of the two-tier storage policy.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"PantryTrack/entities"
)

const (
	foodsPath   = "/foods-collection"
	recipesPath = "/recipes-collection"
	healthPath  = "/health"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Probe checks the gateway's liveness endpoint. A non-200 answer counts
// as unreachable.
func (c *Client) Probe(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+healthPath, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("gateway health check returned %s", resp.Status)
	}
	return nil
}

func (c *Client) ReadFoods(ctx context.Context) ([]entities.FoodItem, error) {
	body, err := c.get(ctx, foodsPath)
	if err != nil {
		return nil, err
	}

	var items []entities.FoodItem
	if err := json.Unmarshal(body, &items); err != nil {
		// Malformed persisted data loads as an empty collection.
		log.Printf("gateway: malformed food payload, loading empty: %v", err)
		return []entities.FoodItem{}, nil
	}
	if items == nil {
		items = []entities.FoodItem{}
	}
	return items, nil
}

func (c *Client) WriteFoods(ctx context.Context, items []entities.FoodItem) error {
	return c.put(ctx, foodsPath, items)
}

func (c *Client) ReadRecipes(ctx context.Context) ([]entities.Recipe, error) {
	body, err := c.get(ctx, recipesPath)
	if err != nil {
		return nil, err
	}

	var items []entities.Recipe
	if err := json.Unmarshal(body, &items); err != nil {
		log.Printf("gateway: malformed recipe payload, loading empty: %v", err)
		return []entities.Recipe{}, nil
	}
	if items == nil {
		items = []entities.Recipe{}
	}
	return items, nil
}

func (c *Client) WriteRecipes(ctx context.Context, items []entities.Recipe) error {
	return c.put(ctx, recipesPath, items)
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gateway GET %s returned %s", path, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

func (c *Client) put(ctx context.Context, path string, payload interface{}) error {
	if payload == nil {
		payload = []interface{}{}
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("gateway PUT %s returned %s", path, resp.Status)
	}
	return nil
}
