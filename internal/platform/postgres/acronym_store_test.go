package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/til-api/internal/domain"
	"github.com/phrazzld/til-api/internal/platform/postgres"
	"github.com/phrazzld/til-api/internal/store"
	"github.com/phrazzld/til-api/internal/testdb"
)

func mustCreateAcronym(
	t *testing.T,
	s store.AcronymStore,
	short, long string,
	userID uuid.UUID,
	createdAt time.Time,
) *domain.Acronym {
	t.Helper()

	acronym := domain.NewAcronym(domain.AcronymInput{Short: short, Long: long, UserID: userID})
	acronym.CreatedAt = createdAt
	acronym.UpdatedAt = createdAt

	require.NoError(t, s.Create(context.Background(), acronym))
	return acronym
}

func TestPostgresAcronymStore_CRUD(t *testing.T) {
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		s := postgres.NewPostgresAcronymStore(db, nil).WithTx(tx)
		userID := uuid.New()

		created := mustCreateAcronym(t, s, "OMG", "Oh My God", userID, time.Now().UTC())

		got, err := s.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "OMG", got.Short)
		assert.Equal(t, "Oh My God", got.Long)
		assert.Equal(t, userID, got.UserID)

		newOwner := uuid.New()
		got.Apply(domain.AcronymInput{Short: "IKR", Long: "I Know Right", UserID: newOwner})
		require.NoError(t, s.Update(ctx, got))

		updated, err := s.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "IKR", updated.Short)
		assert.Equal(t, "I Know Right", updated.Long)
		assert.Equal(t, newOwner, updated.UserID)

		require.NoError(t, s.Delete(ctx, created.ID))
		_, err = s.GetByID(ctx, created.ID)
		assert.ErrorIs(t, err, store.ErrAcronymNotFound)

		assert.ErrorIs(t, s.Delete(ctx, created.ID), store.ErrAcronymNotFound)
	})
}

func TestPostgresAcronymStore_MissingIDs(t *testing.T) {
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		s := postgres.NewPostgresAcronymStore(tx, nil)

		_, err := s.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, store.ErrAcronymNotFound)

		ghost := &domain.Acronym{ID: uuid.New(), Short: "X", Long: "Y", UserID: uuid.New(), UpdatedAt: time.Now().UTC()}
		assert.ErrorIs(t, s.Update(ctx, ghost), store.ErrAcronymNotFound)
		assert.ErrorIs(t, s.Delete(ctx, ghost.ID), store.ErrAcronymNotFound)
	})
}

func TestPostgresAcronymStore_Queries(t *testing.T) {
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		s := postgres.NewPostgresAcronymStore(tx, nil)

		_, err := tx.ExecContext(ctx, `DELETE FROM acronyms`)
		require.NoError(t, err)

		_, err = s.First(ctx)
		assert.ErrorIs(t, err, store.ErrAcronymNotFound, "first on an empty store is not found")

		all, err := s.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, all)
		assert.Empty(t, all)

		alice, bob := uuid.New(), uuid.New()
		base := time.Now().UTC().Add(-time.Hour)
		lol := mustCreateAcronym(t, s, "LOL", "Laugh Out Loud", alice, base)
		mustCreateAcronym(t, s, "BRB", "Be Right Back", bob, base.Add(time.Minute))
		mustCreateAcronym(t, s, "OMG", "Oh My God", alice, base.Add(2*time.Minute))
		mustCreateAcronym(t, s, "TIL", "LOL", bob, base.Add(3*time.Minute))

		first, err := s.First(ctx)
		require.NoError(t, err)
		assert.Equal(t, lol.ID, first.ID)

		sorted, err := s.ListSortedByShort(ctx)
		require.NoError(t, err)
		require.Len(t, sorted, 4)
		for i := 1; i < len(sorted); i++ {
			assert.LessOrEqual(t, sorted[i-1].Short, sorted[i].Short)
		}
		assert.Equal(t, "BRB", sorted[0].Short)

		matches, err := s.Search(ctx, "LOL")
		require.NoError(t, err)
		assert.Len(t, matches, 2, "matches on short and on long")

		none, err := s.Search(ctx, "lol")
		require.NoError(t, err)
		assert.Empty(t, none, "search is case-sensitive")

		owned, err := s.ListByUser(ctx, alice)
		require.NoError(t, err)
		require.Len(t, owned, 2)
		assert.Equal(t, "LOL", owned[0].Short)
		assert.Equal(t, "OMG", owned[1].Short)
	})
}
