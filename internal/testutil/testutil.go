package testutil

import (
	"time"

	"polyglot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user
func NewTestUser(telegramID int64) *domain.User {
	return &domain.User{
		TelegramID:       telegramID,
		RegistrationDate: time.Now(),
	}
}

// NewTestDictionary creates a dictionary from alternating
// word/translation pairs
func NewTestDictionary(name string, pairs ...string) domain.Dictionary {
	words := domain.Words{}
	for i := 0; i+1 < len(pairs); i += 2 {
		words.Set(pairs[i], pairs[i+1])
	}
	return domain.Dictionary{Name: name, Words: words}
}
