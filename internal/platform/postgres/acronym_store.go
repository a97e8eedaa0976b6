package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/phrazzld/til-api/internal/domain"
	"github.com/phrazzld/til-api/internal/platform/logger"
	"github.com/phrazzld/til-api/internal/store"
)

const acronymColumns = `id, short, long, user_id, created_at, updated_at`

// PostgresAcronymStore implements the store.AcronymStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAcronymStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAcronymStore creates a new PostgreSQL implementation of the AcronymStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresAcronymStore(db store.DBTX, logger *slog.Logger) *PostgresAcronymStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAcronymStore{
		db:     db,
		logger: logger.With(slog.String("component", "acronym_store")),
	}
}

// Ensure PostgresAcronymStore implements store.AcronymStore interface
var _ store.AcronymStore = (*PostgresAcronymStore)(nil)

// WithTx implements store.AcronymStore.WithTx
func (s *PostgresAcronymStore) WithTx(tx *sql.Tx) store.AcronymStore {
	return &PostgresAcronymStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.AcronymStore.Create
func (s *PostgresAcronymStore) Create(ctx context.Context, acronym *domain.Acronym) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO acronyms (id, short, long, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		acronym.ID,
		acronym.Short,
		acronym.Long,
		acronym.UserID,
		acronym.CreatedAt,
		acronym.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to create acronym",
			slog.String("error", err.Error()),
			slog.String("acronym_id", acronym.ID.String()))
		return store.NewStoreError("acronym", "create", "insert failed", MapError(err))
	}

	log.Debug("acronym created",
		slog.String("acronym_id", acronym.ID.String()),
		slog.String("user_id", acronym.UserID.String()))
	return nil
}

// GetByID implements store.AcronymStore.GetByID
// Returns store.ErrAcronymNotFound if the acronym does not exist.
func (s *PostgresAcronymStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Acronym, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + acronymColumns + ` FROM acronyms WHERE id = $1`

	acronym, err := scanAcronym(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("acronym not found", slog.String("acronym_id", id.String()))
			return nil, store.ErrAcronymNotFound
		}
		log.Error("failed to get acronym by ID",
			slog.String("error", err.Error()),
			slog.String("acronym_id", id.String()))
		return nil, store.NewStoreError("acronym", "get", "query failed", MapError(err))
	}

	return acronym, nil
}

// List implements store.AcronymStore.List
func (s *PostgresAcronymStore) List(ctx context.Context) ([]*domain.Acronym, error) {
	query := `SELECT ` + acronymColumns + ` FROM acronyms`
	return s.queryAcronyms(ctx, "list", query)
}

// Update implements store.AcronymStore.Update
// Returns store.ErrAcronymNotFound if the acronym does not exist.
func (s *PostgresAcronymStore) Update(ctx context.Context, acronym *domain.Acronym) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE acronyms
		SET short = $1, long = $2, user_id = $3, updated_at = $4
		WHERE id = $5
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		acronym.Short,
		acronym.Long,
		acronym.UserID,
		acronym.UpdatedAt,
		acronym.ID,
	)
	if err != nil {
		log.Error("failed to update acronym",
			slog.String("error", err.Error()),
			slog.String("acronym_id", acronym.ID.String()))
		return store.NewStoreError("acronym", "update", "update failed", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrAcronymNotFound); err != nil {
		log.Debug("acronym not updated",
			slog.String("acronym_id", acronym.ID.String()),
			slog.String("reason", err.Error()))
		return err
	}

	return nil
}

// Delete implements store.AcronymStore.Delete
// Returns store.ErrAcronymNotFound if the acronym does not exist.
func (s *PostgresAcronymStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM acronyms WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete acronym",
			slog.String("error", err.Error()),
			slog.String("acronym_id", id.String()))
		return store.NewStoreError("acronym", "delete", "delete failed", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrAcronymNotFound); err != nil {
		log.Debug("acronym not deleted",
			slog.String("acronym_id", id.String()),
			slog.String("reason", err.Error()))
		return err
	}

	log.Debug("acronym deleted", slog.String("acronym_id", id.String()))
	return nil
}

// Search implements store.AcronymStore.Search
// Matching is exact and case-sensitive on either column.
func (s *PostgresAcronymStore) Search(ctx context.Context, term string) ([]*domain.Acronym, error) {
	query := `SELECT ` + acronymColumns + ` FROM acronyms WHERE short = $1 OR long = $1`
	return s.queryAcronyms(ctx, "search", query, term)
}

// First implements store.AcronymStore.First
// Store order is insertion order; id breaks ties between equal timestamps.
func (s *PostgresAcronymStore) First(ctx context.Context) (*domain.Acronym, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + acronymColumns + ` FROM acronyms ORDER BY created_at, id LIMIT 1`

	acronym, err := scanAcronym(s.db.QueryRowContext(ctx, query))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("no acronyms stored")
			return nil, store.ErrAcronymNotFound
		}
		log.Error("failed to get first acronym", slog.String("error", err.Error()))
		return nil, store.NewStoreError("acronym", "first", "query failed", MapError(err))
	}

	return acronym, nil
}

// ListSortedByShort implements store.AcronymStore.ListSortedByShort
func (s *PostgresAcronymStore) ListSortedByShort(ctx context.Context) ([]*domain.Acronym, error) {
	query := `SELECT ` + acronymColumns + ` FROM acronyms ORDER BY short ASC, id ASC`
	return s.queryAcronyms(ctx, "sorted", query)
}

// ListByUser implements store.AcronymStore.ListByUser
func (s *PostgresAcronymStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Acronym, error) {
	query := `SELECT ` + acronymColumns + ` FROM acronyms WHERE user_id = $1 ORDER BY created_at, id`
	return s.queryAcronyms(ctx, "list_by_user", query, userID)
}

// queryAcronyms runs a multi-row query and always returns a non-nil slice on success.
func (s *PostgresAcronymStore) queryAcronyms(
	ctx context.Context,
	operation string,
	query string,
	args ...any,
) ([]*domain.Acronym, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query acronyms",
			slog.String("operation", operation),
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("acronym", operation, "query failed", MapError(err))
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	acronyms := make([]*domain.Acronym, 0)
	for rows.Next() {
		acronym, err := scanAcronym(rows)
		if err != nil {
			log.Error("failed to scan acronym row",
				slog.String("operation", operation),
				slog.String("error", err.Error()))
			return nil, store.NewStoreError("acronym", operation, "scan failed", err)
		}
		acronyms = append(acronyms, acronym)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating acronym rows",
			slog.String("operation", operation),
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("acronym", operation, "iteration failed", MapError(err))
	}

	log.Debug("acronyms retrieved",
		slog.String("operation", operation),
		slog.Int("count", len(acronyms)))
	return acronyms, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanAcronym(row rowScanner) (*domain.Acronym, error) {
	var a domain.Acronym
	if err := row.Scan(
		&a.ID,
		&a.Short,
		&a.Long,
		&a.UserID,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}
