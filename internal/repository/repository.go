package repository

import (
	"polyglot/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	GetUser(telegramID int64) (*domain.User, error)
	EnsureUser(telegramID int64) error
}

// DictionaryRepository defines dictionary data operations. The whole
// per-user dictionaries blob is read and replaced as one unit; there
// are no partial updates below that.
type DictionaryRepository interface {
	GetDictionaries(telegramID int64) (domain.Dictionaries, error)
	SaveDictionaries(telegramID int64, dictionaries domain.Dictionaries) error
}
