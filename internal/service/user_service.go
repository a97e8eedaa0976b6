package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/phrazzld/til-api/internal/domain"
	"github.com/phrazzld/til-api/internal/platform/logger"
	"github.com/phrazzld/til-api/internal/store"
)

// UserService provides user-related operations
type UserService interface {
	// CreateUser creates a new user, storing only a bcrypt hash of password.
	CreateUser(ctx context.Context, name, username, password string) (*domain.User, error)

	// GetUser retrieves a user by their ID
	GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error)

	// ListUsers returns every user.
	ListUsers(ctx context.Context) ([]*domain.User, error)

	// ListUserAcronyms returns the acronyms owned by userID.
	// It fails with store.ErrUserNotFound when the user does not exist.
	ListUserAcronyms(ctx context.Context, userID uuid.UUID) ([]*domain.Acronym, error)
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	users      store.UserStore
	acronyms   store.AcronymStore
	bcryptCost int
	logger     *slog.Logger
}

// NewUserService creates a new UserService.
// A bcryptCost outside bcrypt's accepted range falls back to bcrypt.DefaultCost.
func NewUserService(
	users store.UserStore,
	acronyms store.AcronymStore,
	bcryptCost int,
	logger *slog.Logger,
) (UserService, error) {
	if users == nil {
		return nil, domain.NewValidationError("userStore", "cannot be nil", domain.ErrValidation)
	}
	if acronyms == nil {
		return nil, domain.NewValidationError("acronymStore", "cannot be nil", domain.ErrValidation)
	}

	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &userServiceImpl{
		users:      users,
		acronyms:   acronyms,
		bcryptCost: bcryptCost,
		logger:     logger.With(slog.String("component", "user_service")),
	}, nil
}

// CreateUser implements UserService.CreateUser
func (s *userServiceImpl) CreateUser(
	ctx context.Context,
	name, username, password string,
) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := domain.NewUser(name, username, password)
	if err != nil {
		log.Debug("invalid user input", slog.String("error", err.Error()))
		return nil, newUserError("create", "invalid user", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), s.bcryptCost)
	if err != nil {
		log.Error("failed to hash password", slog.String("error", err.Error()))
		return nil, newUserError("create", "failed to hash password", err)
	}
	user.PasswordHash = string(hash)
	user.Password = ""

	if err := s.users.Create(ctx, user); err != nil {
		if store.IsDuplicateError(err) {
			log.Debug("attempted to create user with existing username")
		} else {
			log.Error("failed to save user",
				slog.String("error", err.Error()),
				slog.String("user_id", user.ID.String()))
		}
		return nil, newUserError("create", "failed to save user", err)
	}

	log.Info("user created", slog.String("user_id", user.ID.String()))
	return user, nil
}

// GetUser implements UserService.GetUser
func (s *userServiceImpl) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("user not found", slog.String("user_id", userID.String()))
		} else {
			log.Error("failed to retrieve user",
				slog.String("error", err.Error()),
				slog.String("user_id", userID.String()))
		}
		return nil, newUserError("get", "failed to retrieve user", err)
	}

	return user, nil
}

// ListUsers implements UserService.ListUsers
func (s *userServiceImpl) ListUsers(ctx context.Context) ([]*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	users, err := s.users.List(ctx)
	if err != nil {
		log.Error("failed to list users", slog.String("error", err.Error()))
		return nil, newUserError("list", "failed to list users", err)
	}

	return users, nil
}

// ListUserAcronyms implements UserService.ListUserAcronyms
func (s *userServiceImpl) ListUserAcronyms(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Acronym, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	acronyms, err := s.acronyms.ListByUser(ctx, userID)
	if err != nil {
		log.Error("failed to list user acronyms",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, newUserError("list_acronyms", "failed to list acronyms", err)
	}

	return acronyms, nil
}
