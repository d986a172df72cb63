package repositories

import (
	"context"
	"errors"

	"arboris/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// All mutating operations are scoped to the owning user: a foreign or unknown
// id behaves exactly like a missing row.
type AnalysisRepositoryInterface interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.PlantAnalysis, error)
	FindByIDWithUser(ctx context.Context, id string) (*db_models.PlantAnalysis, error)
	FindOwnedByIDs(ctx context.Context, userID uuid.UUID, ids []string) ([]db_models.PlantAnalysis, error)
	UpdateNotes(ctx context.Context, id string, userID uuid.UUID, notes string) (*db_models.PlantAnalysis, error)
	UpdateFavorite(ctx context.Context, id string, userID uuid.UUID, isFavorite bool) (*db_models.PlantAnalysis, error)
	Delete(ctx context.Context, id string, userID uuid.UUID) (bool, error)
}

type analysisRepository struct {
	db *gorm.DB
}

func NewAnalysisRepository(db *gorm.DB) AnalysisRepositoryInterface {
	return &analysisRepository{db: db}
}

func (a *analysisRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.PlantAnalysis, error) {
	var analyses []db_models.PlantAnalysis
	err := a.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&analyses).Error
	if err != nil {
		return nil, err
	}
	return analyses, nil
}

func (a *analysisRepository) FindByIDWithUser(ctx context.Context, id string) (*db_models.PlantAnalysis, error) {
	var analysis db_models.PlantAnalysis
	err := a.db.WithContext(ctx).
		Preload("User").
		First(&analysis, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &analysis, nil
}

func (a *analysisRepository) FindOwnedByIDs(ctx context.Context, userID uuid.UUID, ids []string) ([]db_models.PlantAnalysis, error) {
	var analyses []db_models.PlantAnalysis
	err := a.db.WithContext(ctx).
		Where("user_id = ? AND id IN ?", userID, ids).
		Order("created_at DESC").
		Find(&analyses).Error
	if err != nil {
		return nil, err
	}
	return analyses, nil
}

func (a *analysisRepository) UpdateNotes(ctx context.Context, id string, userID uuid.UUID, notes string) (*db_models.PlantAnalysis, error) {
	return a.updateOwned(ctx, id, userID, map[string]interface{}{"notes": notes})
}

func (a *analysisRepository) UpdateFavorite(ctx context.Context, id string, userID uuid.UUID, isFavorite bool) (*db_models.PlantAnalysis, error) {
	return a.updateOwned(ctx, id, userID, map[string]interface{}{"is_favorite": isFavorite})
}

func (a *analysisRepository) updateOwned(ctx context.Context, id string, userID uuid.UUID, patch map[string]interface{}) (*db_models.PlantAnalysis, error) {
	tx := a.db.WithContext(ctx).
		Model(&db_models.PlantAnalysis{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(patch)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, nil
	}

	var analysis db_models.PlantAnalysis
	if err := a.db.WithContext(ctx).First(&analysis, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &analysis, nil
}

func (a *analysisRepository) Delete(ctx context.Context, id string, userID uuid.UUID) (bool, error) {
	tx := a.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&db_models.PlantAnalysis{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
