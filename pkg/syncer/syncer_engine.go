// Package syncer is the synchronization engine. It loads the working set
// once, recognizes no-op saves by fingerprint, and persists changed
// collections through a debounced write-back so bursts of edits collapse
// into a single write.
package syncer

import (
	"context"
	"log"
	"sync"
	"time"

	"PantryTrack/entities"
	"PantryTrack/internal/fingerprint"
	"PantryTrack/pkg/storage"
)

// State is the engine lifecycle. Change notifications are only honored
// once the engine is Ready, which keeps the initial load from scheduling
// a redundant write-back of the data it just read.
type State int32

const (
	StateUninitialized State = iota
	StateLoading
	StateReady
)

// Source tags who produced a change notification. Only user-driven
// changes are persisted; load echoes are dropped explicitly instead of
// being inferred from timing.
type Source int

const (
	SourceLoad Source = iota
	SourceUser
)

// DefaultQuiescence is how long a collection must stay unchanged before
// its pending snapshot is written back.
const DefaultQuiescence = 500 * time.Millisecond

const flushTimeout = 15 * time.Second

// tracker holds the per-collection debounce state. The two collections
// are synchronized fully independently.
type tracker struct {
	last    string // fingerprint of the last persisted state
	pending string // fingerprint of the stashed snapshot, "" when none
	timer   *time.Timer
}

type Engine struct {
	mu    sync.Mutex
	store storage.Store
	state State

	quiesce time.Duration

	foods          tracker
	pendingFoods   []entities.FoodItem
	recipes        tracker
	pendingRecipes []entities.Recipe
}

type Option func(*Engine)

// WithQuiescence overrides the debounce window. Tests shorten it.
func WithQuiescence(d time.Duration) Option {
	return func(e *Engine) { e.quiesce = d }
}

func New(store storage.Store, opts ...Option) *Engine {
	e := &Engine{
		store:   store,
		quiesce: DefaultQuiescence,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Load fetches both collections once and records their fingerprints as
// the last-persisted baseline. A failed read loads that collection empty;
// the session stays usable either way.
func (e *Engine) Load(ctx context.Context) ([]entities.FoodItem, []entities.Recipe) {
	e.mu.Lock()
	e.state = StateLoading
	e.mu.Unlock()

	foods, err := e.store.ReadFoods(ctx)
	if err != nil {
		log.Printf("syncer: food load failed, starting empty: %v", err)
		foods = []entities.FoodItem{}
	}

	recipes, err := e.store.ReadRecipes(ctx)
	if err != nil {
		log.Printf("syncer: recipe load failed, starting empty: %v", err)
		recipes = []entities.Recipe{}
	}

	e.mu.Lock()
	e.foods.last = fingerprint.Foods(foods)
	e.recipes.last = fingerprint.Recipes(recipes)
	e.state = StateReady
	e.mu.Unlock()

	return foods, recipes
}

// FoodsChanged notifies the engine of a new food collection state.
// Fingerprint-identical states schedule nothing; a changed state replaces
// any pending write-back and restarts the quiescence window.
func (e *Engine) FoodsChanged(items []entities.FoodItem, src Source) {
	if src != SourceUser {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != StateReady {
		return
	}

	fp := fingerprint.Foods(items)
	if fp == e.foods.last {
		// The collection is back at its persisted state; a pending
		// write-back would be a no-op, so drop it.
		e.cancelLocked(&e.foods)
		e.pendingFoods = nil
		return
	}
	if fp == e.foods.pending && e.foods.timer != nil {
		// Already scheduled with this exact state.
		return
	}

	e.pendingFoods = append([]entities.FoodItem(nil), items...)
	e.foods.pending = fp
	if e.foods.timer != nil {
		e.foods.timer.Stop()
	}
	e.foods.timer = time.AfterFunc(e.quiesce, e.flushFoods)
}

// RecipesChanged is FoodsChanged for the recipe collection.
func (e *Engine) RecipesChanged(items []entities.Recipe, src Source) {
	if src != SourceUser {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != StateReady {
		return
	}

	fp := fingerprint.Recipes(items)
	if fp == e.recipes.last {
		e.cancelLocked(&e.recipes)
		e.pendingRecipes = nil
		return
	}
	if fp == e.recipes.pending && e.recipes.timer != nil {
		return
	}

	e.pendingRecipes = append([]entities.Recipe(nil), items...)
	e.recipes.pending = fp
	if e.recipes.timer != nil {
		e.recipes.timer.Stop()
	}
	e.recipes.timer = time.AfterFunc(e.quiesce, e.flushRecipes)
}

// Close cancels pending timers and flushes whatever is still unwritten.
func (e *Engine) Close() {
	e.mu.Lock()
	if e.foods.timer != nil {
		e.foods.timer.Stop()
		e.foods.timer = nil
	}
	if e.recipes.timer != nil {
		e.recipes.timer.Stop()
		e.recipes.timer = nil
	}
	e.mu.Unlock()

	e.flushFoods()
	e.flushRecipes()
}

func (e *Engine) cancelLocked(t *tracker) {
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.pending = ""
}

func (e *Engine) flushFoods() {
	e.mu.Lock()
	e.foods.timer = nil
	// Re-check at fire time: a stale timer must never clobber a save
	// that already happened.
	if e.foods.pending == "" || e.foods.pending == e.foods.last {
		e.mu.Unlock()
		return
	}
	items := e.pendingFoods
	fp := e.foods.pending
	e.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()

	if err := e.store.WriteFoods(ctx, items); err != nil {
		// Not retried on a timer; the next mutation reschedules.
		log.Printf("syncer: food write-back failed: %v", err)
		return
	}

	e.mu.Lock()
	e.foods.last = fp
	if e.foods.pending == fp {
		e.foods.pending = ""
		e.pendingFoods = nil
	}
	e.mu.Unlock()
}

func (e *Engine) flushRecipes() {
	e.mu.Lock()
	e.recipes.timer = nil
	if e.recipes.pending == "" || e.recipes.pending == e.recipes.last {
		e.mu.Unlock()
		return
	}
	items := e.pendingRecipes
	fp := e.recipes.pending
	e.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()

	if err := e.store.WriteRecipes(ctx, items); err != nil {
		log.Printf("syncer: recipe write-back failed: %v", err)
		return
	}

	e.mu.Lock()
	e.recipes.last = fp
	if e.recipes.pending == fp {
		e.recipes.pending = ""
		e.pendingRecipes = nil
	}
	e.mu.Unlock()
}
