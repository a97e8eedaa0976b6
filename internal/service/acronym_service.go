package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/phrazzld/til-api/internal/domain"
	"github.com/phrazzld/til-api/internal/platform/logger"
	"github.com/phrazzld/til-api/internal/store"
)

// AcronymService provides acronym-related operations
type AcronymService interface {
	// ListAcronyms returns every acronym in store order.
	ListAcronyms(ctx context.Context) ([]*domain.Acronym, error)

	// GetAcronym retrieves an acronym by its ID.
	GetAcronym(ctx context.Context, id uuid.UUID) (*domain.Acronym, error)

	// CreateAcronym stores a new acronym built from in.
	CreateAcronym(ctx context.Context, in domain.AcronymInput) (*domain.Acronym, error)

	// UpdateAcronym replaces short, long and user ID of an existing acronym.
	UpdateAcronym(ctx context.Context, id uuid.UUID, in domain.AcronymInput) (*domain.Acronym, error)

	// DeleteAcronym removes an acronym.
	DeleteAcronym(ctx context.Context, id uuid.UUID) error

	// SearchAcronyms returns acronyms whose short or long form equals term.
	SearchAcronyms(ctx context.Context, term string) ([]*domain.Acronym, error)

	// FirstAcronym returns the earliest stored acronym.
	FirstAcronym(ctx context.Context) (*domain.Acronym, error)

	// SortedAcronyms returns every acronym ordered by short form ascending.
	SortedAcronyms(ctx context.Context) ([]*domain.Acronym, error)

	// GetAcronymOwner returns the user referenced by the acronym's UserID.
	GetAcronymOwner(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// acronymServiceImpl implements the AcronymService interface
type acronymServiceImpl struct {
	acronyms store.AcronymStore
	users    store.UserStore
	logger   *slog.Logger
}

// NewAcronymService creates a new AcronymService.
// It returns an error if any of the required dependencies are nil.
func NewAcronymService(
	acronyms store.AcronymStore,
	users store.UserStore,
	logger *slog.Logger,
) (AcronymService, error) {
	if acronyms == nil {
		return nil, domain.NewValidationError("acronymStore", "cannot be nil", domain.ErrValidation)
	}
	if users == nil {
		return nil, domain.NewValidationError("userStore", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &acronymServiceImpl{
		acronyms: acronyms,
		users:    users,
		logger:   logger.With(slog.String("component", "acronym_service")),
	}, nil
}

// ListAcronyms implements AcronymService.ListAcronyms
func (s *acronymServiceImpl) ListAcronyms(ctx context.Context) ([]*domain.Acronym, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	acronyms, err := s.acronyms.List(ctx)
	if err != nil {
		log.Error("failed to list acronyms", slog.String("error", err.Error()))
		return nil, newAcronymError("list", "failed to list acronyms", err)
	}

	return acronyms, nil
}

// GetAcronym implements AcronymService.GetAcronym
func (s *acronymServiceImpl) GetAcronym(ctx context.Context, id uuid.UUID) (*domain.Acronym, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	acronym, err := s.acronyms.GetByID(ctx, id)
	if err != nil {
		s.logLookupFailure(log, "failed to retrieve acronym", err, slog.String("acronym_id", id.String()))
		return nil, newAcronymError("get", "failed to retrieve acronym", err)
	}

	return acronym, nil
}

// CreateAcronym implements AcronymService.CreateAcronym
// The owning user is not checked for existence.
func (s *acronymServiceImpl) CreateAcronym(
	ctx context.Context,
	in domain.AcronymInput,
) (*domain.Acronym, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	acronym := domain.NewAcronym(in)

	if err := s.acronyms.Create(ctx, acronym); err != nil {
		log.Error("failed to save acronym",
			slog.String("error", err.Error()),
			slog.String("acronym_id", acronym.ID.String()))
		return nil, newAcronymError("create", "failed to save acronym", err)
	}

	log.Info("acronym created",
		slog.String("acronym_id", acronym.ID.String()),
		slog.String("user_id", acronym.UserID.String()))
	return acronym, nil
}

// UpdateAcronym implements AcronymService.UpdateAcronym
// Concurrent updates to the same acronym are last-write-wins.
func (s *acronymServiceImpl) UpdateAcronym(
	ctx context.Context,
	id uuid.UUID,
	in domain.AcronymInput,
) (*domain.Acronym, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	acronym, err := s.acronyms.GetByID(ctx, id)
	if err != nil {
		s.logLookupFailure(log, "failed to retrieve acronym for update", err,
			slog.String("acronym_id", id.String()))
		return nil, newAcronymError("update", "failed to retrieve acronym", err)
	}

	acronym.Apply(in)

	if err := s.acronyms.Update(ctx, acronym); err != nil {
		s.logLookupFailure(log, "failed to save acronym", err, slog.String("acronym_id", id.String()))
		return nil, newAcronymError("update", "failed to save acronym", err)
	}

	log.Info("acronym updated", slog.String("acronym_id", id.String()))
	return acronym, nil
}

// DeleteAcronym implements AcronymService.DeleteAcronym
func (s *acronymServiceImpl) DeleteAcronym(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.acronyms.Delete(ctx, id); err != nil {
		s.logLookupFailure(log, "failed to delete acronym", err, slog.String("acronym_id", id.String()))
		return newAcronymError("delete", "failed to delete acronym", err)
	}

	log.Info("acronym deleted", slog.String("acronym_id", id.String()))
	return nil
}

// SearchAcronyms implements AcronymService.SearchAcronyms
// An empty term is a real search and matches acronyms with an empty short or long form.
func (s *acronymServiceImpl) SearchAcronyms(
	ctx context.Context,
	term string,
) ([]*domain.Acronym, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	acronyms, err := s.acronyms.Search(ctx, term)
	if err != nil {
		log.Error("failed to search acronyms", slog.String("error", err.Error()))
		return nil, newAcronymError("search", "failed to search acronyms", err)
	}

	log.Debug("acronym search complete", slog.Int("matches", len(acronyms)))
	return acronyms, nil
}

// FirstAcronym implements AcronymService.FirstAcronym
func (s *acronymServiceImpl) FirstAcronym(ctx context.Context) (*domain.Acronym, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	acronym, err := s.acronyms.First(ctx)
	if err != nil {
		s.logLookupFailure(log, "failed to retrieve first acronym", err)
		return nil, newAcronymError("first", "failed to retrieve first acronym", err)
	}

	return acronym, nil
}

// SortedAcronyms implements AcronymService.SortedAcronyms
func (s *acronymServiceImpl) SortedAcronyms(ctx context.Context) ([]*domain.Acronym, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	acronyms, err := s.acronyms.ListSortedByShort(ctx)
	if err != nil {
		log.Error("failed to list sorted acronyms", slog.String("error", err.Error()))
		return nil, newAcronymError("sorted", "failed to list sorted acronyms", err)
	}

	return acronyms, nil
}

// GetAcronymOwner implements AcronymService.GetAcronymOwner
// It fetches the acronym, then the user it references. A missing user is
// reported as store.ErrUserNotFound.
func (s *acronymServiceImpl) GetAcronymOwner(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	acronym, err := s.acronyms.GetByID(ctx, id)
	if err != nil {
		s.logLookupFailure(log, "failed to retrieve acronym for owner lookup", err,
			slog.String("acronym_id", id.String()))
		return nil, newAcronymError("get_owner", "failed to retrieve acronym", err)
	}

	user, err := s.users.GetByID(ctx, acronym.UserID)
	if err != nil {
		s.logLookupFailure(log, "failed to retrieve acronym owner", err,
			slog.String("acronym_id", id.String()),
			slog.String("user_id", acronym.UserID.String()))
		return nil, newAcronymError("get_owner", "failed to retrieve owner", err)
	}

	return user, nil
}

// logLookupFailure logs not-found results at debug level and everything else as errors.
func (s *acronymServiceImpl) logLookupFailure(log *slog.Logger, msg string, err error, attrs ...any) {
	args := append([]any{slog.String("error", err.Error())}, attrs...)
	if store.IsNotFoundError(err) {
		log.Debug(msg, args...)
		return
	}
	log.Error(msg, args...)
}
