package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"arboris/internal/models/db_models"
	"arboris/internal/models/request_models"
	"arboris/internal/models/response_models"
	"arboris/internal/repositories"
	"arboris/pkg/utils"

	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type AccountServiceInterface interface {
	CreateGuestSession(ctx context.Context) (*response_models.GuestSessionResponse, error)
	Register(ctx context.Context, request request_models.RegisterRequest) (string, error)
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
	GetPreferences(ctx context.Context, email string) (json.RawMessage, error)
	SavePreferences(ctx context.Context, email string, preferences json.RawMessage) (json.RawMessage, error)
}

type AccountService struct {
	userRepo repositories.UserRepositoryInterface
	logger   *zap.Logger
}

func NewAccountService(userRepo repositories.UserRepositoryInterface, logger *zap.Logger) AccountServiceInterface {
	return &AccountService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// CreateGuestSession provisions a throwaway account. The plaintext password is
// returned exactly once; only the bcrypt hash is stored. Email format:
// guest_<unixMillis>_<rand>@guest.arboris.ai.
func (a *AccountService) CreateGuestSession(ctx context.Context) (*response_models.GuestSessionResponse, error) {
	now := time.Now().UnixMilli()

	suffix, err := utils.RandomBase36(13)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	password, err := utils.RandomBase36(13)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	guestID := fmt.Sprintf("guest_%d_%s", now, suffix)
	email := guestID + "@guest.arboris.ai"

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	user := &db_models.User{
		Name:         fmt.Sprintf("Guest User %d", now),
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         "guest",
	}

	if err := a.userRepo.Insert(ctx, user); err != nil {
		a.logger.Error("guest account creation failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	token, err := utils.CreateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.GuestSessionResponse{
		Success:  true,
		Email:    email,
		Password: password,
		UserID:   user.ID.String(),
		Token:    token,
	}, nil
}

func (a *AccountService) Register(ctx context.Context, request request_models.RegisterRequest) (string, error) {
	existing, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if existing != nil {
		return "", utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return "", utils.ErrDatabaseError
	}

	user := &db_models.User{
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Role:         "user",
	}

	if err := a.userRepo.Insert(ctx, user); err != nil {
		a.logger.Error("account creation failed", zap.Error(err))
		return "", utils.ErrDatabaseError
	}

	return utils.CreateToken(user.ID, user.Email, user.Role)
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {
	user, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if user == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	return utils.CreateToken(user.ID, user.Email, user.Role)
}

func (a *AccountService) GetPreferences(ctx context.Context, email string) (json.RawMessage, error) {
	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return json.RawMessage(user.Preferences), nil
}

func (a *AccountService) SavePreferences(ctx context.Context, email string, preferences json.RawMessage) (json.RawMessage, error) {
	if len(preferences) == 0 || string(preferences) == "null" {
		return nil, utils.ErrMissingPreferences
	}

	user, err := a.userRepo.SavePreferences(ctx, email, datatypes.JSON(preferences))
	if err != nil {
		a.logger.Error("saving preferences failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return json.RawMessage(user.Preferences), nil
}
