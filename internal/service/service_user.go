package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-mark-keeper/internal/crypto"
	"github.com/MKhiriev/go-mark-keeper/internal/logger"
	"github.com/MKhiriev/go-mark-keeper/internal/store"
	"github.com/MKhiriev/go-mark-keeper/models"
)

// userService is the concrete implementation of UserService. It exposes
// profile operations for an already-authenticated account; the caller supplies
// the subject's userID resolved from the request token.
type userService struct {
	userRepository store.UserRepository
	hasher         *crypto.PasswordHasher
	logger         *logger.Logger
}

func NewUserService(userRepository store.UserRepository, hasher *crypto.PasswordHasher, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		logger:         logger,
	}
}

// GetUser returns the account record for userID.
//
// Returns store.ErrNoUserWasFound unchanged when the account does not exist.
func (u *userService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, err
		}

		log.Err(err).Int64("id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}

// UpdateUser applies a partial profile update. A new password is hashed before
// it reaches the repository, so plain text never crosses the storage boundary.
//
// Returns the updated user record or:
//   - ErrInvalidDataProvided if the update is empty or a provided field is invalid.
//   - store.ErrEmailAlreadyExists if the new email is already taken.
//   - store.ErrNoUserWasFound if the account does not exist.
func (u *userService) UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if update.Email == nil && update.Name == nil && update.Password == nil {
		log.Error().Int64("id", userID).Msg("empty user update provided")
		return models.User{}, ErrInvalidDataProvided
	}
	if update.Email != nil && (*update.Email == "" || !strings.Contains(*update.Email, "@")) {
		log.Error().Int64("id", userID).Msg("invalid email provided")
		return models.User{}, ErrInvalidDataProvided
	}
	if update.Password != nil && *update.Password == "" {
		log.Error().Int64("id", userID).Msg("empty password provided")
		return models.User{}, ErrInvalidDataProvided
	}

	patch := models.UserPatch{
		Email: update.Email,
		Name:  update.Name,
	}
	if update.Password != nil {
		passwordHash, err := u.hasher.HashPassword(*update.Password)
		if err != nil {
			log.Err(err).Int64("id", userID).Msg("password hashing failed")
			return models.User{}, fmt.Errorf("password hashing failed: %w", err)
		}
		patch.PasswordHash = &passwordHash
	}

	updatedUser, err := u.userRepository.UpdateUser(ctx, userID, patch)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) || errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, err
		}

		log.Err(err).Int64("id", userID).Msg("user update failed")
		return models.User{}, fmt.Errorf("user update failed: %w", err)
	}

	return updatedUser, nil
}

// DeleteUser removes the account. The schema's cascading foreign key removes
// the account's bookmarks in the same statement.
//
// Returns store.ErrNoUserWasFound unchanged when the account does not exist.
func (u *userService) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if err := u.userRepository.DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return err
		}

		log.Err(err).Int64("id", userID).Msg("user deletion failed")
		return fmt.Errorf("user deletion failed: %w", err)
	}

	return nil
}
