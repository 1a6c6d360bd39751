package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"polyglot/internal/testutil"
)

func TestUserService_EnsureUser(t *testing.T) {
	mockRepo := new(testutil.MockUserRepository)
	svc := NewUserService(mockRepo)

	mockRepo.On("EnsureUser", testUserID).Return(nil)

	err := svc.EnsureUser(testUserID)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestUserService_GetUser(t *testing.T) {
	t.Run("registered user", func(t *testing.T) {
		mockRepo := new(testutil.MockUserRepository)
		svc := NewUserService(mockRepo)

		expected := testutil.NewTestUser(testUserID)
		mockRepo.On("GetUser", testUserID).Return(expected, nil)

		user, err := svc.GetUser(testUserID)

		assert.NoError(t, err)
		assert.Equal(t, expected, user)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockRepo := new(testutil.MockUserRepository)
		svc := NewUserService(mockRepo)

		mockRepo.On("GetUser", testUserID).Return(nil, nil)

		user, err := svc.GetUser(testUserID)

		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo := new(testutil.MockUserRepository)
		svc := NewUserService(mockRepo)

		repoErr := errors.New("db down")
		mockRepo.On("GetUser", testUserID).Return(nil, repoErr)

		_, err := svc.GetUser(testUserID)

		assert.ErrorIs(t, err, repoErr)
	})
}
