package service

import (
	"polyglot/internal/domain"
	"polyglot/internal/repository"
)

// UserService handles user registration
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// EnsureUser registers the user on first contact
func (s *UserService) EnsureUser(telegramID int64) error {
	return s.userRepo.EnsureUser(telegramID)
}

// GetUser returns a registered user, or nil if unknown
func (s *UserService) GetUser(telegramID int64) (*domain.User, error) {
	return s.userRepo.GetUser(telegramID)
}
