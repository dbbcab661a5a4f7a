package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/sohhamm/personal-finance-app/internal/domain/entity"
	errs "github.com/sohhamm/personal-finance-app/internal/domain/error"
	"github.com/sohhamm/personal-finance-app/internal/domain/port/usecase"
	"github.com/sohhamm/personal-finance-app/internal/infrastructure/adapter/logger"
	mockCore "github.com/sohhamm/personal-finance-app/mocks/port/core"
	mockPersistence "github.com/sohhamm/personal-finance-app/mocks/port/persistence"
)

func TestSignup(t *testing.T) {
	fixedTime := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	newUseCase := func(userRepo *mockPersistence.MockUserRepository) usecase.AuthUseCase {
		mockTimeProvider := new(mockCore.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime).Maybe()
		tokens := NewTokenManager(testSecret, 24*time.Hour, mockTimeProvider)
		return NewAuthUseCase(userRepo, tokens, mockTimeProvider, logger.NewNoopLogger())
	}

	t.Run("Registers a user and issues a token", func(t *testing.T) {
		// Arrange
		mockUserRepo := new(mockPersistence.MockUserRepository)
		var created *entity.User
		mockUserRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*entity.User)
			}).
			Return(nil)

		useCase := newUseCase(mockUserRepo)

		// Act
		resp, err := useCase.Signup(context.Background(), usecase.SignupRequest{
			Name:     "Jordan Reyes",
			Email:    "Jordan@Example.com",
			Password: "Sup3rSecret",
		})

		// Assert
		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "jordan@example.com", resp.User.Email)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("Sup3rSecret")))
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("Weak passwords are rejected", func(t *testing.T) {
		testCases := []struct {
			password    string
			description string
		}{
			{"short1A", "Too short"},
			{"alllowercase1", "No upper-case letter"},
			{"ALLUPPERCASE1", "No lower-case letter"},
			{"NoDigitsHere", "No digit"},
		}

		for _, tc := range testCases {
			t.Run(tc.description, func(t *testing.T) {
				mockUserRepo := new(mockPersistence.MockUserRepository)
				useCase := newUseCase(mockUserRepo)

				_, err := useCase.Signup(context.Background(), usecase.SignupRequest{
					Name:     "Jordan Reyes",
					Email:    "jordan@example.com",
					Password: tc.password,
				})

				assert.ErrorIs(t, err, errs.ErrWeakPassword)
				mockUserRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("Duplicate email surfaces a conflict", func(t *testing.T) {
		// Arrange
		mockUserRepo := new(mockPersistence.MockUserRepository)
		mockUserRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).
			Return(errs.ErrDuplicateEmail)

		useCase := newUseCase(mockUserRepo)

		// Act
		_, err := useCase.Signup(context.Background(), usecase.SignupRequest{
			Name:     "Jordan Reyes",
			Email:    "jordan@example.com",
			Password: "Sup3rSecret",
		})

		// Assert
		assert.ErrorIs(t, err, errs.ErrDuplicateEmail)
	})
}

func TestLogin(t *testing.T) {
	fixedTime := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	hash, _ := bcrypt.GenerateFromPassword([]byte("Sup3rSecret"), bcrypt.MinCost)
	storedUser := &entity.User{
		Name:         "Jordan Reyes",
		Email:        "jordan@example.com",
		PasswordHash: string(hash),
	}

	newUseCase := func(userRepo *mockPersistence.MockUserRepository) usecase.AuthUseCase {
		mockTimeProvider := new(mockCore.MockTimeProvider)
		mockTimeProvider.On("Now").Return(fixedTime).Maybe()
		tokens := NewTokenManager(testSecret, 24*time.Hour, mockTimeProvider)
		return NewAuthUseCase(userRepo, tokens, mockTimeProvider, logger.NewNoopLogger())
	}

	t.Run("Valid credentials issue a token", func(t *testing.T) {
		// Arrange
		mockUserRepo := new(mockPersistence.MockUserRepository)
		mockUserRepo.On("GetByEmail", mock.Anything, "jordan@example.com").Return(storedUser, nil)

		useCase := newUseCase(mockUserRepo)

		// Act
		resp, err := useCase.Login(context.Background(), usecase.LoginRequest{
			Email:    "  Jordan@Example.com ",
			Password: "Sup3rSecret",
		})

		// Assert
		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, storedUser, resp.User)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("Wrong password yields invalid credentials", func(t *testing.T) {
		// Arrange
		mockUserRepo := new(mockPersistence.MockUserRepository)
		mockUserRepo.On("GetByEmail", mock.Anything, "jordan@example.com").Return(storedUser, nil)

		useCase := newUseCase(mockUserRepo)

		// Act
		_, err := useCase.Login(context.Background(), usecase.LoginRequest{
			Email:    "jordan@example.com",
			Password: "WrongPassword1",
		})

		// Assert
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("Unknown email yields invalid credentials, not not-found", func(t *testing.T) {
		// Arrange
		mockUserRepo := new(mockPersistence.MockUserRepository)
		mockUserRepo.On("GetByEmail", mock.Anything, "nobody@example.com").
			Return(nil, errs.ErrUserNotFound)

		useCase := newUseCase(mockUserRepo)

		// Act
		_, err := useCase.Login(context.Background(), usecase.LoginRequest{
			Email:    "nobody@example.com",
			Password: "Sup3rSecret",
		})

		// Assert
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
		assert.NotErrorIs(t, err, errs.ErrUserNotFound)
	})
}
