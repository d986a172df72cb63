package services

import (
	"context"
	"sort"
	"testing"
	"time"

	"arboris/internal/models/db_models"
	"arboris/internal/models/request_models"
	"arboris/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeNotificationRepo struct {
	notifications map[string]*db_models.Notification
	lastLimit     int
	nextCreatedAt int64
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{
		notifications: make(map[string]*db_models.Notification),
		nextCreatedAt: time.Now().Unix(),
	}
}

func (f *fakeNotificationRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]db_models.Notification, error) {
	f.lastLimit = limit
	var owned []db_models.Notification
	for _, n := range f.notifications {
		if n.UserID == userID {
			owned = append(owned, *n)
		}
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].CreatedAt > owned[j].CreatedAt })
	if len(owned) > limit {
		owned = owned[:limit]
	}
	return owned, nil
}

func (f *fakeNotificationRepo) Insert(ctx context.Context, notification *db_models.Notification) error {
	notification.ID = uuid.New()
	notification.CreatedAt = f.nextCreatedAt
	f.nextCreatedAt++
	copied := *notification
	f.notifications[notification.ID.String()] = &copied
	return nil
}

func (f *fakeNotificationRepo) MarkRead(ctx context.Context, id string, userID uuid.UUID) (*db_models.Notification, error) {
	notification, ok := f.notifications[id]
	if !ok || notification.UserID != userID {
		return nil, nil
	}
	notification.IsRead = true
	copied := *notification
	return &copied, nil
}

func TestNotificationCreate(t *testing.T) {
	userRepo := newFakeUserRepo()
	owner := userRepo.addUser("dona@example.com", "Dona", "senha", "user")
	repo := newFakeNotificationRepo()
	svc := NewNotificationService(repo, userRepo, zap.NewNop())

	created, err := svc.Create(context.Background(), "dona@example.com", request_models.CreateNotificationRequest{
		Title:   "Nova análise",
		Message: "Sua análise está pronta",
	})
	require.NoError(t, err)

	// Always on behalf of the caller, type defaults to info.
	assert.Equal(t, "info", created.Type)
	assert.False(t, created.IsRead)
	stored := repo.notifications[created.ID]
	require.NotNil(t, stored)
	assert.Equal(t, owner.ID, stored.UserID)
}

func TestNotificationCreate_UserRowMissing(t *testing.T) {
	svc := NewNotificationService(newFakeNotificationRepo(), newFakeUserRepo(), zap.NewNop())

	_, err := svc.Create(context.Background(), "fantasma@example.com", request_models.CreateNotificationRequest{
		Title: "x",
	})
	assert.ErrorIs(t, err, utils.ErrUserNotFound)
}

func TestNotificationList(t *testing.T) {
	userRepo := newFakeUserRepo()
	owner := userRepo.addUser("dona@example.com", "Dona", "senha", "user")
	other := userRepo.addUser("outra@example.com", "Outra", "senha", "user")
	repo := newFakeNotificationRepo()
	svc := NewNotificationService(repo, userRepo, zap.NewNop())

	for i := 0; i < 3; i++ {
		_, err := svc.Create(context.Background(), owner.Email, request_models.CreateNotificationRequest{Title: "minha"})
		require.NoError(t, err)
	}
	_, err := svc.Create(context.Background(), other.Email, request_models.CreateNotificationRequest{Title: "alheia"})
	require.NoError(t, err)

	listed, err := svc.List(context.Background(), owner.Email)
	require.NoError(t, err)

	assert.Len(t, listed, 3)
	for _, n := range listed {
		assert.Equal(t, "minha", n.Title)
	}
	// Newest first, and the 50-item cap reaches the repository.
	for i := 1; i < len(listed); i++ {
		assert.GreaterOrEqual(t, listed[i-1].CreatedAt, listed[i].CreatedAt)
	}
	assert.Equal(t, 50, repo.lastLimit)
}

func TestNotificationMarkRead(t *testing.T) {
	userRepo := newFakeUserRepo()
	owner := userRepo.addUser("dona@example.com", "Dona", "senha", "user")
	intruder := userRepo.addUser("intrusa@example.com", "Intrusa", "senha", "user")
	repo := newFakeNotificationRepo()
	svc := NewNotificationService(repo, userRepo, zap.NewNop())

	created, err := svc.Create(context.Background(), owner.Email, request_models.CreateNotificationRequest{Title: "lida?"})
	require.NoError(t, err)

	t.Run("marks read", func(t *testing.T) {
		updated, err := svc.MarkRead(context.Background(), owner.Email, created.ID)
		require.NoError(t, err)
		assert.True(t, updated.IsRead)
	})

	t.Run("idempotent on re-mark", func(t *testing.T) {
		updated, err := svc.MarkRead(context.Background(), owner.Email, created.ID)
		require.NoError(t, err)
		assert.True(t, updated.IsRead)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.MarkRead(context.Background(), owner.Email, uuid.NewString())
		assert.ErrorIs(t, err, utils.ErrNotificationNotFound)
	})

	t.Run("foreign owner", func(t *testing.T) {
		_, err := svc.MarkRead(context.Background(), intruder.Email, created.ID)
		assert.ErrorIs(t, err, utils.ErrNotificationNotFound)
	})
}
