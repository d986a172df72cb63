package repositories

import (
	"context"
	"fmt"
	"testing"

	"arboris/internal/models/db_models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// The article repository is exercised at the service level only: its tags
// column is a postgres text[] that the sqlite test engine cannot migrate.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&db_models.User{},
		&db_models.Notification{},
		&db_models.PlantAnalysis{},
		&db_models.CodexCategory{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, email string) *db_models.User {
	t.Helper()
	user := &db_models.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "hash",
		Role:         "user",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestUserRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	t.Run("insert and find by email", func(t *testing.T) {
		user := &db_models.User{Name: "Maria", Email: "maria@example.com", PasswordHash: "h", Role: "user"}
		require.NoError(t, repo.Insert(ctx, user))
		assert.NotEqual(t, uuid.Nil, user.ID)

		found, err := repo.FindByEmail(ctx, "maria@example.com")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, user.ID, found.ID)

		byID, err := repo.FindByID(ctx, user.ID.String())
		require.NoError(t, err)
		require.NotNil(t, byID)
		assert.Equal(t, "maria@example.com", byID.Email)
	})

	t.Run("unknown email is nil, not error", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("save preferences", func(t *testing.T) {
		blob := datatypes.JSON(`{"theme":"dark"}`)
		updated, err := repo.SavePreferences(ctx, "maria@example.com", blob)
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.JSONEq(t, `{"theme":"dark"}`, string(updated.Preferences))
	})

	t.Run("save preferences for missing user", func(t *testing.T) {
		updated, err := repo.SavePreferences(ctx, "nobody@example.com", datatypes.JSON(`{}`))
		require.NoError(t, err)
		assert.Nil(t, updated)
	})
}

func TestNotificationRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewNotificationRepository(db)
	ctx := context.Background()
	owner := createUser(t, db, "dona@example.com")
	other := createUser(t, db, "outra@example.com")

	insertAt := func(userID uuid.UUID, title string, createdAt int64) *db_models.Notification {
		n := &db_models.Notification{UserID: userID, Title: title, Type: "info"}
		require.NoError(t, repo.Insert(ctx, n))
		require.NoError(t, db.Model(&db_models.Notification{}).
			Where("id = ?", n.ID).
			UpdateColumn("created_at", createdAt).Error)
		n.CreatedAt = createdAt
		return n
	}

	for i := 0; i < 60; i++ {
		insertAt(owner.ID, fmt.Sprintf("n-%d", i), int64(1000+i))
	}
	insertAt(other.ID, "foreign", 5000)

	t.Run("list caps at limit, newest first, owner only", func(t *testing.T) {
		listed, err := repo.ListByUser(ctx, owner.ID, 50)
		require.NoError(t, err)
		require.Len(t, listed, 50)
		assert.Equal(t, "n-59", listed[0].Title)
		for i := 1; i < len(listed); i++ {
			assert.Greater(t, listed[i-1].CreatedAt, listed[i].CreatedAt)
		}
		for _, n := range listed {
			assert.Equal(t, owner.ID, n.UserID)
		}
	})

	t.Run("mark read is idempotent and owner scoped", func(t *testing.T) {
		n := insertAt(owner.ID, "to-read", 9000)

		first, err := repo.MarkRead(ctx, n.ID.String(), owner.ID)
		require.NoError(t, err)
		require.NotNil(t, first)
		assert.True(t, first.IsRead)

		second, err := repo.MarkRead(ctx, n.ID.String(), owner.ID)
		require.NoError(t, err)
		require.NotNil(t, second)
		assert.True(t, second.IsRead)

		foreign, err := repo.MarkRead(ctx, n.ID.String(), other.ID)
		require.NoError(t, err)
		assert.Nil(t, foreign)

		missing, err := repo.MarkRead(ctx, uuid.NewString(), owner.ID)
		require.NoError(t, err)
		assert.Nil(t, missing)
	})
}

func TestAnalysisRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewAnalysisRepository(db)
	ctx := context.Background()
	owner := createUser(t, db, "dona@example.com")
	other := createUser(t, db, "outra@example.com")

	analysis := &db_models.PlantAnalysis{
		UserID:         owner.ID,
		ImageURL:       "https://img.example/1.jpg",
		AnalysisResult: datatypes.JSON(`{"plantName":"Ipê","confidence":0.97}`),
		Notes:          "primeira muda",
	}
	require.NoError(t, db.Create(analysis).Error)

	t.Run("find with user preloaded", func(t *testing.T) {
		found, err := repo.FindByIDWithUser(ctx, analysis.ID.String())
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "Test User", found.User.Name)
	})

	t.Run("update favorite scoped to owner", func(t *testing.T) {
		updated, err := repo.UpdateFavorite(ctx, analysis.ID.String(), owner.ID, true)
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.True(t, updated.IsFavorite)

		foreign, err := repo.UpdateFavorite(ctx, analysis.ID.String(), other.ID, false)
		require.NoError(t, err)
		assert.Nil(t, foreign)
	})

	t.Run("update notes", func(t *testing.T) {
		updated, err := repo.UpdateNotes(ctx, analysis.ID.String(), owner.ID, "regada hoje")
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "regada hoje", updated.Notes)
	})

	t.Run("export fetch is owner scoped", func(t *testing.T) {
		owned, err := repo.FindOwnedByIDs(ctx, owner.ID, []string{analysis.ID.String()})
		require.NoError(t, err)
		assert.Len(t, owned, 1)

		foreign, err := repo.FindOwnedByIDs(ctx, other.ID, []string{analysis.ID.String()})
		require.NoError(t, err)
		assert.Empty(t, foreign)
	})

	t.Run("delete scoped to owner", func(t *testing.T) {
		deleted, err := repo.Delete(ctx, analysis.ID.String(), other.ID)
		require.NoError(t, err)
		assert.False(t, deleted)

		deleted, err = repo.Delete(ctx, analysis.ID.String(), owner.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		gone, err := repo.FindByIDWithUser(ctx, analysis.ID.String())
		require.NoError(t, err)
		assert.Nil(t, gone)
	})
}

func TestCategoryRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	for _, name := range []string{"Sustentabilidade", "Botânica", "Cuidados"} {
		require.NoError(t, repo.Insert(ctx, &db_models.CodexCategory{
			Name: name,
			Slug: name,
		}))
	}

	listed, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	// Categories are the one listing ordered by name, not recency.
	assert.Equal(t, "Botânica", listed[0].Name)
	assert.Equal(t, "Cuidados", listed[1].Name)
	assert.Equal(t, "Sustentabilidade", listed[2].Name)
}
