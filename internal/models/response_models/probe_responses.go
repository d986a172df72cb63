package response_models

import "encoding/json"

type AnalysisResponse struct {
	ID             string          `json:"id"`
	ImageURL       string          `json:"imageUrl"`
	AnalysisResult json.RawMessage `json:"analysisResult"`
	IsFavorite     bool            `json:"isFavorite"`
	Notes          string          `json:"notes"`
	CreatedAt      int64           `json:"createdAt"`
}

// ShareViewResponse is the only public projection of an analysis. It carries
// no owner id and no notes.
type ShareViewResponse struct {
	ID             string  `json:"id"`
	PlantName      string  `json:"plantName"`
	ScientificName string  `json:"scientificName"`
	Confidence     float64 `json:"confidence"`
	ImageURL       string  `json:"imageUrl"`
	Date           int64   `json:"date"`
	UserName       string  `json:"userName"`
}

type ExportedAnalysis struct {
	ID             string  `json:"id"`
	Date           int64   `json:"date"`
	PlantName      string  `json:"plantName"`
	ScientificName string  `json:"scientificName"`
	Confidence     float64 `json:"confidence"`
	ImageURL       string  `json:"imageUrl"`
	Notes          string  `json:"notes"`
	IsFavorite     bool    `json:"isFavorite"`
}

type DeleteResponse struct {
	Success bool `json:"success"`
}
