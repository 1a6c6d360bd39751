package testutil

import (
	"polyglot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetUser(telegramID int64) (*domain.User, error) {
	args := m.Called(telegramID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) EnsureUser(telegramID int64) error {
	args := m.Called(telegramID)
	return args.Error(0)
}

// MockDictionaryRepository is a mock for DictionaryRepository
type MockDictionaryRepository struct {
	mock.Mock
}

func (m *MockDictionaryRepository) GetDictionaries(telegramID int64) (domain.Dictionaries, error) {
	args := m.Called(telegramID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Dictionaries), args.Error(1)
}

func (m *MockDictionaryRepository) SaveDictionaries(telegramID int64, dictionaries domain.Dictionaries) error {
	args := m.Called(telegramID, dictionaries)
	return args.Error(0)
}
