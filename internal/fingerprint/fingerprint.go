// Package fingerprint computes content digests for whole collections.
//
// A fingerprint is an order-independent digest of every field of every
// record, keyed by identity: two collections holding the same records in
// any order produce the same fingerprint. The synchronization engine
// compares fingerprints to recognize no-op saves.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"

	"PantryTrack/entities"
)

// Domain prefixes keep food and recipe digests from ever colliding.
// Version suffix enables future algorithm migration.
const (
	domainFoods   = "pantrytrack/foods/v1"
	domainRecipes = "pantrytrack/recipes/v1"
)

// Foods digests a food collection.
func Foods(items []entities.FoodItem) string {
	records := make([]record, 0, len(items))
	for _, item := range items {
		records = append(records, record{id: item.ID.String(), body: mustMarshal(item)})
	}
	return digest(domainFoods, records)
}

// Recipes digests a recipe collection.
func Recipes(items []entities.Recipe) string {
	records := make([]record, 0, len(items))
	for _, item := range items {
		records = append(records, record{id: item.ID.String(), body: mustMarshal(item)})
	}
	return digest(domainRecipes, records)
}

type record struct {
	id   string
	body []byte
}

// digest computes SHA-256 over domain + records sorted by identity.
// The null byte separators prevent boundary ambiguity between records.
func digest(domain string, records []record) string {
	sort.Slice(records, func(i, j int) bool { return records[i].id < records[j].id })

	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	for _, r := range records {
		h.Write(r.body)
		h.Write([]byte{0x00})
	}
	return hex.EncodeToString(h.Sum(nil))
}

func mustMarshal(v interface{}) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		// Entities are plain data types; marshaling them cannot fail.
		panic(err)
	}
	return b
}
