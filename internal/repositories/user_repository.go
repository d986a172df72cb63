package repositories

import (
	"context"
	"errors"

	"arboris/internal/models/db_models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type UserRepositoryInterface interface {
	Insert(ctx context.Context, user *db_models.User) error
	FindByEmail(ctx context.Context, email string) (*db_models.User, error)
	FindByID(ctx context.Context, id string) (*db_models.User, error)
	SavePreferences(ctx context.Context, email string, preferences datatypes.JSON) (*db_models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepositoryInterface {
	return &userRepository{db: db}
}

func (u *userRepository) Insert(ctx context.Context, user *db_models.User) error {
	return u.db.WithContext(ctx).Create(user).Error
}

func (u *userRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	var user db_models.User
	err := u.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (u *userRepository) FindByID(ctx context.Context, id string) (*db_models.User, error) {
	var user db_models.User
	err := u.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// SavePreferences overwrites the preference blob for the user with the given
// email. Returns (nil, nil) when no such user exists.
func (u *userRepository) SavePreferences(ctx context.Context, email string, preferences datatypes.JSON) (*db_models.User, error) {
	tx := u.db.WithContext(ctx).
		Model(&db_models.User{}).
		Where("email = ?", email).
		Update("preferences", preferences)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, nil
	}
	return u.FindByEmail(ctx, email)
}
