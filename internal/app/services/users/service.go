// Package users handles registration, authentication and role management.
package users

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/campusmap/campus-api/internal/app/domain/user"
	"github.com/campusmap/campus-api/internal/app/storage"
	"github.com/campusmap/campus-api/internal/app/validate"
	"github.com/campusmap/campus-api/internal/auth"
	apperrors "github.com/campusmap/campus-api/internal/errors"
	"github.com/campusmap/campus-api/internal/logging"
)

// Service manages users and their roles.
type Service struct {
	store  storage.UserStore
	tokens *auth.Manager
	log    *logging.Logger
}

// New constructs a user service.
func New(store storage.UserStore, tokens *auth.Manager, log *logging.Logger) *Service {
	if log == nil {
		log = logging.NewDefault("users")
	}
	return &Service{store: store, tokens: tokens, log: log}
}

// Register creates a user with a hashed credential. The role record is
// created alongside the user with the admin flag unset.
func (s *Service) Register(ctx context.Context, email, password, name string) (user.User, error) {
	if err := validate.Email(email, nil); err != nil {
		return user.User{}, err
	}
	if err := validate.Password(password); err != nil {
		return user.User{}, err
	}
	if err := validate.Required("name", name); err != nil {
		return user.User{}, err
	}

	if _, err := s.store.GetUserByEmail(ctx, email); err == nil {
		return user.User{}, apperrors.Conflict("Email already registered")
	} else if !errors.Is(err, storage.ErrNotFound) {
		return user.User{}, apperrors.Internal("Failed to register user", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, apperrors.Internal("Failed to register user", err)
	}

	created, err := s.store.CreateUser(ctx, user.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
	})
	if err != nil {
		return user.User{}, apperrors.Internal("Failed to register user", err)
	}
	s.log.WithContext(ctx).Infof("user %d registered", created.ID)
	return created, nil
}

// Authenticate verifies credentials and issues a bearer token.
func (s *Service) Authenticate(ctx context.Context, email, password string) (user.User, string, error) {
	u, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return user.User{}, "", apperrors.Unauthorized("Invalid email or password")
		}
		return user.User{}, "", apperrors.Internal("Failed to authenticate", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return user.User{}, "", apperrors.Unauthorized("Invalid email or password")
	}

	role, err := s.store.GetRole(ctx, u.ID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return user.User{}, "", apperrors.Internal("Failed to authenticate", err)
	}

	token, err := s.tokens.Issue(u.ID, role.IsAdmin)
	if err != nil {
		return user.User{}, "", apperrors.Internal("Failed to authenticate", err)
	}
	return u, token, nil
}

// Get returns a user by id.
func (s *Service) Get(ctx context.Context, id int64) (user.User, error) {
	if err := validate.ID(id); err != nil {
		return user.User{}, err
	}
	u, err := s.store.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return user.User{}, apperrors.NotFound("User not found")
		}
		return user.User{}, apperrors.Internal("Failed to get user", err)
	}
	return u, nil
}

// GetRole returns a user's role record.
func (s *Service) GetRole(ctx context.Context, userID int64) (user.Role, error) {
	if err := validate.ID(userID); err != nil {
		return user.Role{}, err
	}
	role, err := s.store.GetRole(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return user.Role{}, apperrors.NotFound("Role not found")
		}
		return user.Role{}, apperrors.Internal("Failed to get role", err)
	}
	return role, nil
}

// SetAdmin flips a user's admin flag. Only admins may call this; the
// requester's own role is checked first.
func (s *Service) SetAdmin(ctx context.Context, requesterID, userID int64, isAdmin bool) (user.Role, error) {
	if err := validate.ID(userID); err != nil {
		return user.Role{}, err
	}

	requesterRole, err := s.store.GetRole(ctx, requesterID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return user.Role{}, apperrors.Forbidden("Only admins may change roles")
		}
		return user.Role{}, apperrors.Internal("Failed to update role", err)
	}
	if !requesterRole.IsAdmin {
		return user.Role{}, apperrors.Forbidden("Only admins may change roles")
	}

	role, err := s.store.SetAdmin(ctx, userID, isAdmin)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return user.Role{}, apperrors.NotFound("User not found")
		}
		return user.Role{}, apperrors.Internal("Failed to update role", err)
	}
	s.log.WithContext(ctx).Infof("user %d admin flag set to %t by user %d", userID, isAdmin, requesterID)
	return role, nil
}
