package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/phrazzld/til-api/internal/domain"
)

// AcronymStore defines the interface for acronym data persistence.
//
// Methods returning collections always return a non-nil slice.
type AcronymStore interface {
	// Create saves a new acronym. The owning user is not checked for existence.
	Create(ctx context.Context, acronym *domain.Acronym) error

	// GetByID retrieves an acronym by its ID.
	// Returns ErrAcronymNotFound if the acronym does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Acronym, error)

	// List returns every acronym in no particular order.
	List(ctx context.Context) ([]*domain.Acronym, error)

	// Update replaces short, long and user ID of an existing acronym.
	// Returns ErrAcronymNotFound if the acronym does not exist.
	Update(ctx context.Context, acronym *domain.Acronym) error

	// Delete removes an acronym by its ID.
	// Returns ErrAcronymNotFound if the acronym does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// Search returns acronyms whose short or long form equals term exactly.
	Search(ctx context.Context, term string) ([]*domain.Acronym, error)

	// First returns the earliest stored acronym.
	// Returns ErrAcronymNotFound if the store is empty.
	First(ctx context.Context) (*domain.Acronym, error)

	// ListSortedByShort returns every acronym ordered by short form ascending.
	ListSortedByShort(ctx context.Context) ([]*domain.Acronym, error)

	// ListByUser returns the acronyms owned by userID.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Acronym, error)

	// WithTx returns a new AcronymStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) AcronymStore
}
