package request_models

type UpdateNotesRequest struct {
	Notes string `json:"notes"`
}

type UpdateFavoriteRequest struct {
	IsFavorite bool `json:"isFavorite"`
}

type ExportRequest struct {
	IDs    []string `json:"ids"`
	Format string   `json:"format"`
}
