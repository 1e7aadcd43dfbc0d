package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"watchlist_backend/internal/feature/watchlist/domain/entity"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.UserStock{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func TestStockMySQL_ListSymbols(t *testing.T) {
	t.Run("empty watchlist returns no symbols", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewStockRepository(db)

		symbols, err := repo.ListSymbols(context.Background(), 1)

		assert.NoError(t, err)
		assert.Empty(t, symbols)
	})

	t.Run("returns only the user's symbols", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewStockRepository(db)

		require.NoError(t, repo.Add(context.Background(), 1, "AAPL"))
		require.NoError(t, repo.Add(context.Background(), 1, "TSLA"))
		require.NoError(t, repo.Add(context.Background(), 2, "GOOG"))

		symbols, err := repo.ListSymbols(context.Background(), 1)

		assert.NoError(t, err)
		assert.ElementsMatch(t, []string{"AAPL", "TSLA"}, symbols)

		// User 2's list stays isolated
		other, err := repo.ListSymbols(context.Background(), 2)
		assert.NoError(t, err)
		assert.ElementsMatch(t, []string{"GOOG"}, other)
	})
}

func TestStockMySQL_Add(t *testing.T) {
	t.Run("adding a symbol persists it", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewStockRepository(db)

		err := repo.Add(context.Background(), 1, "AAPL")

		assert.NoError(t, err)

		var count int64
		db.Model(&entity.UserStock{}).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("re-adding the same symbol is a no-op", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewStockRepository(db)

		require.NoError(t, repo.Add(context.Background(), 1, "AAPL"))
		err := repo.Add(context.Background(), 1, "AAPL")

		assert.NoError(t, err, "duplicate insert should not error")

		var count int64
		db.Model(&entity.UserStock{}).Where("user_id = ? AND symbol = ?", 1, "AAPL").Count(&count)
		assert.Equal(t, int64(1), count, "expected exactly one row")
	})

	t.Run("same symbol for different users creates separate rows", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewStockRepository(db)

		require.NoError(t, repo.Add(context.Background(), 1, "AAPL"))
		require.NoError(t, repo.Add(context.Background(), 2, "AAPL"))

		var count int64
		db.Model(&entity.UserStock{}).Where("symbol = ?", "AAPL").Count(&count)
		assert.Equal(t, int64(2), count)
	})
}

func TestStockMySQL_Remove(t *testing.T) {
	t.Run("removing an existing symbol deletes it", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewStockRepository(db)

		require.NoError(t, repo.Add(context.Background(), 1, "AAPL"))

		err := repo.Remove(context.Background(), 1, "AAPL")

		assert.NoError(t, err)

		symbols, err := repo.ListSymbols(context.Background(), 1)
		assert.NoError(t, err)
		assert.Empty(t, symbols)
	})

	t.Run("removing an absent symbol succeeds", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewStockRepository(db)

		require.NoError(t, repo.Add(context.Background(), 1, "AAPL"))

		err := repo.Remove(context.Background(), 1, "ZZZ")

		assert.NoError(t, err, "delete-if-exists should not error")

		// The watchlist is unchanged
		symbols, err := repo.ListSymbols(context.Background(), 1)
		assert.NoError(t, err)
		assert.ElementsMatch(t, []string{"AAPL"}, symbols)
	})

	t.Run("only the user's own row is removed", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewStockRepository(db)

		require.NoError(t, repo.Add(context.Background(), 1, "AAPL"))
		require.NoError(t, repo.Add(context.Background(), 2, "AAPL"))

		require.NoError(t, repo.Remove(context.Background(), 1, "AAPL"))

		other, err := repo.ListSymbols(context.Background(), 2)
		assert.NoError(t, err)
		assert.ElementsMatch(t, []string{"AAPL"}, other)
	})
}
