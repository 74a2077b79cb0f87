package digest

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PantryTrack/entities"
)

var today = time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)

func item(name string, offsetDays int) entities.FoodItem {
	return entities.FoodItem{
		ID:         uuid.New(),
		Name:       name,
		Quantity:   1,
		Unit:       "unit",
		ExpiryDate: today.AddDate(0, 0, offsetDays),
	}
}

func TestBuildDigest(t *testing.T) {
	s := &digestService{}

	foods := []entities.FoodItem{
		item("Milk", -1),
		item("Yogurt", 2),
		item("Rice", 90),
	}

	subject, body, ok := s.BuildDigest(foods, today)
	require.True(t, ok)
	assert.Contains(t, subject, "1 expired")
	assert.Contains(t, subject, "1 expiring soon")
	assert.Contains(t, body, "Milk")
	assert.Contains(t, body, "Yogurt")
	assert.NotContains(t, body, "Rice")
}

func TestBuildDigest_NothingExpiring(t *testing.T) {
	s := &digestService{}

	_, _, ok := s.BuildDigest([]entities.FoodItem{item("Rice", 90)}, today)
	assert.False(t, ok)
}

func TestSendDigest(t *testing.T) {
	var sentTo, sentSubject string
	s := &digestService{sendMail: func(to, subject, body string) error {
		sentTo = to
		sentSubject = subject
		return nil
	}}

	sent, err := s.SendDigest([]entities.FoodItem{item("Milk", 1)}, today, "me@example.com")
	require.NoError(t, err)
	assert.True(t, sent)
	assert.Equal(t, "me@example.com", sentTo)
	assert.NotEmpty(t, sentSubject)
}

func TestSendDigest_NoopWhenNothingExpiring(t *testing.T) {
	called := false
	s := &digestService{sendMail: func(to, subject, body string) error {
		called = true
		return nil
	}}

	sent, err := s.SendDigest([]entities.FoodItem{item("Rice", 90)}, today, "me@example.com")
	require.NoError(t, err)
	assert.False(t, sent)
	assert.False(t, called)
}

func TestSendDigest_MailerFailure(t *testing.T) {
	s := &digestService{sendMail: func(to, subject, body string) error {
		return errors.New("smtp down")
	}}

	sent, err := s.SendDigest([]entities.FoodItem{item("Milk", 0)}, today, "me@example.com")
	require.Error(t, err)
	assert.False(t, sent)
}
