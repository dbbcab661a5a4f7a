package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	errs "github.com/sohhamm/personal-finance-app/internal/domain/error"
	mockCore "github.com/sohhamm/personal-finance-app/mocks/port/core"
)

const testSecret = "test-signing-secret-at-least-32-chars!"

func TestTokenManager(t *testing.T) {
	fixedTime := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	t.Run("Generated token verifies back to the same user", func(t *testing.T) {
		// Arrange
		mockTimeProvider := new(mockCore.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)
		manager := NewTokenManager(testSecret, 24*time.Hour, mockTimeProvider)

		// Act
		token, err := manager.Generate(userID, "user@example.com")
		assert.NoError(t, err)

		verifiedID, err := manager.Verify(token)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, userID, verifiedID)
	})

	t.Run("Expired token is rejected", func(t *testing.T) {
		// Arrange
		issueTimeProvider := new(mockCore.MockTimeProvider)
		issueTimeProvider.On("Now").Return(fixedTime)
		manager := NewTokenManager(testSecret, time.Hour, issueTimeProvider)

		token, err := manager.Generate(userID, "user@example.com")
		assert.NoError(t, err)

		lateTimeProvider := new(mockCore.MockTimeProvider)
		lateTimeProvider.On("Now").Return(fixedTime.Add(2 * time.Hour))
		lateManager := NewTokenManager(testSecret, time.Hour, lateTimeProvider)

		// Act
		_, err = lateManager.Verify(token)

		// Assert
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("Token signed with a different secret is rejected", func(t *testing.T) {
		// Arrange
		mockTimeProvider := new(mockCore.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime)
		manager := NewTokenManager(testSecret, time.Hour, mockTimeProvider)
		other := NewTokenManager("another-signing-secret-32-chars-long!", time.Hour, mockTimeProvider)

		token, err := other.Generate(userID, "user@example.com")
		assert.NoError(t, err)

		// Act
		_, err = manager.Verify(token)

		// Assert
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("Garbage token is rejected", func(t *testing.T) {
		mockTimeProvider := new(mockCore.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime).Maybe()
		manager := NewTokenManager(testSecret, time.Hour, mockTimeProvider)

		_, err := manager.Verify("not.a.token")

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}
