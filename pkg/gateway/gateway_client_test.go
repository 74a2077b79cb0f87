package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PantryTrack/entities"
)

func TestProbe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/health", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	assert.NoError(t, c.Probe(context.Background()))
}

func TestProbe_NonOKStatusFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	assert.Error(t, c.Probe(context.Background()))
}

func TestProbe_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient(srv.URL)
	assert.Error(t, c.Probe(context.Background()))
}

func TestReadFoods(t *testing.T) {
	want := []entities.FoodItem{{
		ID:         uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		Name:       "Milk",
		Category:   "dairy",
		Quantity:   1,
		Unit:       "L",
		ExpiryDate: time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
	}}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/foods-collection", r.URL.Path)
		json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	got, err := c.ReadFoods(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, want[0].ID, got[0].ID)
}

func TestReadFoods_EmptyBodyIsEmptyCollection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	got, err := c.ReadFoods(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestReadFoods_MalformedPayloadLoadsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	got, err := c.ReadFoods(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadFoods_ServerErrorPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.ReadFoods(context.Background())
	assert.Error(t, err)
}

func TestWriteFoods_PutsWholeArray(t *testing.T) {
	var gotMethod, gotPath, gotContentType string
	var gotBody []entities.FoodItem

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	items := []entities.FoodItem{{ID: uuid.New(), Name: "Milk", Quantity: 1, Unit: "L"}}
	require.NoError(t, c.WriteFoods(context.Background(), items))

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/foods-collection", gotPath)
	assert.Equal(t, "application/json", gotContentType)
	require.Len(t, gotBody, 1)
	assert.Equal(t, "Milk", gotBody[0].Name)
}

func TestWriteRecipes_RejectionFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	err := c.WriteRecipes(context.Background(), []entities.Recipe{})
	assert.Error(t, err)
}
