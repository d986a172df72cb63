package services

import (
	"context"
	"encoding/json"

	"arboris/internal/models/db_models"
	"arboris/internal/models/response_models"
	"arboris/internal/repositories"
	"arboris/pkg/utils"

	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type AnalysisServiceInterface interface {
	History(ctx context.Context, email string) ([]response_models.AnalysisResponse, error)
	UpdateNotes(ctx context.Context, email string, id string, notes string) (*response_models.AnalysisResponse, error)
	UpdateFavorite(ctx context.Context, email string, id string, isFavorite bool) (*response_models.AnalysisResponse, error)
	Delete(ctx context.Context, email string, id string) error
	ShareView(ctx context.Context, id string) (*response_models.ShareViewResponse, error)
	Export(ctx context.Context, email string, ids []string) ([]response_models.ExportedAnalysis, error)
}

type AnalysisService struct {
	analysisRepo repositories.AnalysisRepositoryInterface
	userRepo     repositories.UserRepositoryInterface
	logger       *zap.Logger
}

func NewAnalysisService(
	analysisRepo repositories.AnalysisRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	logger *zap.Logger) AnalysisServiceInterface {
	return &AnalysisService{
		analysisRepo: analysisRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

func (s *AnalysisService) History(ctx context.Context, email string) ([]response_models.AnalysisResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	analyses, err := s.analysisRepo.ListByUser(ctx, user.ID)
	if err != nil {
		s.logger.Error("listing analyses failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.AnalysisResponse, 0, len(analyses))
	for _, analysis := range analyses {
		responses = append(responses, toAnalysisResponse(analysis))
	}
	return responses, nil
}

func (s *AnalysisService) UpdateNotes(ctx context.Context, email string, id string, notes string) (*response_models.AnalysisResponse, error) {
	user, err := s.resolveUser(ctx, email)
	if err != nil {
		return nil, err
	}

	analysis, err := s.analysisRepo.UpdateNotes(ctx, id, user.ID, notes)
	if err != nil {
		s.logger.Error("updating notes failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if analysis == nil {
		return nil, utils.ErrAnalysisNotFound
	}

	response := toAnalysisResponse(*analysis)
	return &response, nil
}

func (s *AnalysisService) UpdateFavorite(ctx context.Context, email string, id string, isFavorite bool) (*response_models.AnalysisResponse, error) {
	user, err := s.resolveUser(ctx, email)
	if err != nil {
		return nil, err
	}

	analysis, err := s.analysisRepo.UpdateFavorite(ctx, id, user.ID, isFavorite)
	if err != nil {
		s.logger.Error("updating favorite failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if analysis == nil {
		return nil, utils.ErrAnalysisNotFound
	}

	response := toAnalysisResponse(*analysis)
	return &response, nil
}

func (s *AnalysisService) Delete(ctx context.Context, email string, id string) error {
	user, err := s.resolveUser(ctx, email)
	if err != nil {
		return err
	}

	deleted, err := s.analysisRepo.Delete(ctx, id, user.ID)
	if err != nil {
		s.logger.Error("deleting analysis failed", zap.Error(err))
		return utils.ErrDatabaseError
	}
	if !deleted {
		return utils.ErrAnalysisNotFound
	}
	return nil
}

// ShareView is the only unauthenticated projection: no owner id, no notes.
func (s *AnalysisService) ShareView(ctx context.Context, id string) (*response_models.ShareViewResponse, error) {
	analysis, err := s.analysisRepo.FindByIDWithUser(ctx, id)
	if err != nil {
		s.logger.Error("fetching shared analysis failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if analysis == nil {
		return nil, utils.ErrAnalysisNotFound
	}

	result := ParseAnalysisResult(analysis.AnalysisResult)

	userName := analysis.User.Name
	if userName == "" {
		userName = "Usuário ARBORIS"
	}

	return &response_models.ShareViewResponse{
		ID:             analysis.ID.String(),
		PlantName:      result.PlantName,
		ScientificName: result.ScientificName,
		Confidence:     result.Confidence,
		ImageURL:       analysis.ImageURL,
		Date:           analysis.CreatedAt,
		UserName:       userName,
	}, nil
}

func (s *AnalysisService) Export(ctx context.Context, email string, ids []string) ([]response_models.ExportedAnalysis, error) {
	user, err := s.resolveUser(ctx, email)
	if err != nil {
		return nil, err
	}

	analyses, err := s.analysisRepo.FindOwnedByIDs(ctx, user.ID, ids)
	if err != nil {
		s.logger.Error("fetching analyses for export failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if len(analyses) == 0 {
		return nil, utils.ErrNoAnalysesFound
	}

	exported := make([]response_models.ExportedAnalysis, 0, len(analyses))
	for _, analysis := range analyses {
		result := ParseAnalysisResult(analysis.AnalysisResult)
		exported = append(exported, response_models.ExportedAnalysis{
			ID:             analysis.ID.String(),
			Date:           analysis.CreatedAt,
			PlantName:      result.PlantName,
			ScientificName: result.ScientificName,
			Confidence:     result.Confidence,
			ImageURL:       analysis.ImageURL,
			Notes:          analysis.Notes,
			IsFavorite:     analysis.IsFavorite,
		})
	}
	return exported, nil
}

func (s *AnalysisService) resolveUser(ctx context.Context, email string) (*db_models.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return user, nil
}

// AnalysisResult is the structured part of the stored result blob.
type AnalysisResult struct {
	PlantName      string  `json:"plantName"`
	ScientificName string  `json:"scientificName"`
	Confidence     float64 `json:"confidence"`
}

// ParseAnalysisResult tolerates both shapes the analyzer has written over
// time: a JSON object, or that same object double-encoded as a JSON string.
// Unparseable blobs degrade to the "Desconhecida" placeholder.
func ParseAnalysisResult(raw datatypes.JSON) AnalysisResult {
	result := AnalysisResult{PlantName: "Desconhecida"}
	if len(raw) == 0 {
		return result
	}

	data := []byte(raw)
	var encoded string
	if err := json.Unmarshal(data, &encoded); err == nil {
		data = []byte(encoded)
	}

	var parsed AnalysisResult
	if err := json.Unmarshal(data, &parsed); err != nil {
		return result
	}
	if parsed.PlantName == "" {
		parsed.PlantName = "Desconhecida"
	}
	return parsed
}

func toAnalysisResponse(analysis db_models.PlantAnalysis) response_models.AnalysisResponse {
	return response_models.AnalysisResponse{
		ID:             analysis.ID.String(),
		ImageURL:       analysis.ImageURL,
		AnalysisResult: json.RawMessage(analysis.AnalysisResult),
		IsFavorite:     analysis.IsFavorite,
		Notes:          analysis.Notes,
		CreatedAt:      analysis.CreatedAt,
	}
}
