package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PlantAnalysis rows are written by the external analyzer; this service only
// mutates the favorite flag and the notes. AnalysisResult carries the result
// blob (plantName, scientificName, confidence), sometimes double-encoded by
// older writers.
type PlantAnalysis struct {
	BaseModel
	UserID         uuid.UUID `gorm:"type:uuid;index"`
	ImageURL       string
	AnalysisResult datatypes.JSON
	IsFavorite     bool `gorm:"default:false"`
	Notes          string

	User User `gorm:"foreignKey:UserID"`
}
