// Package localstore is the device-local fallback tier: a two-slot
// key-value store over SQLite holding one serialized array per collection.
package localstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	_ "github.com/mattn/go-sqlite3"

	"PantryTrack/entities"
)

const (
	slotFoods   = "foods"
	slotRecipes = "recipes"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS collection_slots (
	collection TEXT PRIMARY KEY,
	payload    TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

type Store struct {
	db *sql.DB
}

// Open creates or opens the fallback database at the given path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fallback database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to fallback database: %w", err)
	}

	// SQLite only supports one writer at a time.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply fallback schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) ReadFoods(ctx context.Context) ([]entities.FoodItem, error) {
	payload, err := s.readSlot(ctx, slotFoods)
	if err != nil {
		return nil, err
	}
	if payload == nil {
		return []entities.FoodItem{}, nil
	}

	var items []entities.FoodItem
	if err := json.Unmarshal(payload, &items); err != nil {
		// A corrupt slot is recovered as an empty collection.
		log.Printf("localstore: malformed food slot, loading empty: %v", err)
		return []entities.FoodItem{}, nil
	}
	if items == nil {
		items = []entities.FoodItem{}
	}
	return items, nil
}

func (s *Store) WriteFoods(ctx context.Context, items []entities.FoodItem) error {
	return s.writeSlot(ctx, slotFoods, items)
}

func (s *Store) ReadRecipes(ctx context.Context) ([]entities.Recipe, error) {
	payload, err := s.readSlot(ctx, slotRecipes)
	if err != nil {
		return nil, err
	}
	if payload == nil {
		return []entities.Recipe{}, nil
	}

	var items []entities.Recipe
	if err := json.Unmarshal(payload, &items); err != nil {
		log.Printf("localstore: malformed recipe slot, loading empty: %v", err)
		return []entities.Recipe{}, nil
	}
	if items == nil {
		items = []entities.Recipe{}
	}
	return items, nil
}

func (s *Store) WriteRecipes(ctx context.Context, items []entities.Recipe) error {
	return s.writeSlot(ctx, slotRecipes, items)
}

// readSlot returns nil with no error when the slot has never been written.
func (s *Store) readSlot(ctx context.Context, collection string) ([]byte, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		"SELECT payload FROM collection_slots WHERE collection = ?", collection,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(payload), nil
}

func (s *Store) writeSlot(ctx context.Context, collection string, v interface{}) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO collection_slots (collection, payload, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(collection) DO UPDATE SET
			payload = excluded.payload,
			updated_at = CURRENT_TIMESTAMP`,
		collection, string(payload),
	)
	return err
}
