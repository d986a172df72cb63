package controllers

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"

	"arboris/internal/models/request_models"
	"arboris/internal/models/response_models"
	"arboris/internal/services"
	"arboris/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ProbeController struct {
	analysisService services.AnalysisServiceInterface
}

func NewProbeController(analysisService services.AnalysisServiceInterface) *ProbeController {
	return &ProbeController{
		analysisService: analysisService,
	}
}

// GetHistory godoc
// @Summary List the caller's plant analyses, newest first
// @Tags Probe
// @Produce json
// @Success 200 {array} response_models.AnalysisResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /probe/history [get]
func (p *ProbeController) GetHistory(c *gin.Context) {
	email := c.GetString("user_email")

	analyses, err := p.analysisService.History(c.Request.Context(), email)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondJSON(c, analyses)
}

// UpdateNotes godoc
// @Summary Update the notes of an analysis owned by the caller
// @Tags Probe
// @Accept json
// @Produce json
// @Param id path string true "Analysis id"
// @Param request body request_models.UpdateNotesRequest true "Notes payload"
// @Success 200 {object} response_models.AnalysisResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /probe/history/{id} [patch]
func (p *ProbeController) UpdateNotes(c *gin.Context) {
	email := c.GetString("user_email")
	id := c.Param("id")

	var req request_models.UpdateNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Formato de requisição inválido")
		return
	}

	analysis, err := p.analysisService.UpdateNotes(c.Request.Context(), email, id, req.Notes)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondJSON(c, analysis)
}

// UpdateFavorite godoc
// @Summary Toggle the favorite flag of an analysis owned by the caller
// @Tags Probe
// @Accept json
// @Produce json
// @Param id path string true "Analysis id"
// @Param request body request_models.UpdateFavoriteRequest true "Favorite payload"
// @Success 200 {object} response_models.AnalysisResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /probe/history/{id}/favorite [patch]
func (p *ProbeController) UpdateFavorite(c *gin.Context) {
	email := c.GetString("user_email")
	id := c.Param("id")

	var req request_models.UpdateFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Formato de requisição inválido")
		return
	}

	analysis, err := p.analysisService.UpdateFavorite(c.Request.Context(), email, id, req.IsFavorite)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondJSON(c, analysis)
}

// DeleteAnalysis godoc
// @Summary Delete an analysis owned by the caller
// @Tags Probe
// @Produce json
// @Param id path string true "Analysis id"
// @Success 200 {object} response_models.DeleteResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /probe/history/{id} [delete]
func (p *ProbeController) DeleteAnalysis(c *gin.Context) {
	email := c.GetString("user_email")
	id := c.Param("id")

	if err := p.analysisService.Delete(c.Request.Context(), email, id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondJSON(c, response_models.DeleteResponse{Success: true})
}

// ShareView godoc
// @Summary Public, field-reduced view of a shared analysis
// @Tags Share
// @Produce json
// @Param id path string true "Analysis id"
// @Success 200 {object} response_models.ShareViewResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /share/{id} [get]
func (p *ProbeController) ShareView(c *gin.Context) {
	id := c.Param("id")

	view, err := p.analysisService.ShareView(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, utils.ErrAnalysisNotFound) {
			utils.RespondError(c, http.StatusNotFound, "Analysis not found")
			return
		}
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondJSON(c, view)
}

// Export godoc
// @Summary Export owned analyses as CSV or JSON
// @Tags Probe
// @Accept json
// @Produce json
// @Param request body request_models.ExportRequest true "Export payload"
// @Success 200
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /export [post]
func (p *ProbeController) Export(c *gin.Context) {
	email := c.GetString("user_email")

	var req request_models.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Formato de requisição inválido")
		return
	}

	if req.Format != "csv" && req.Format != "json" {
		utils.RespondError(c, http.StatusBadRequest, "Invalid format")
		return
	}

	analyses, err := p.analysisService.Export(c.Request.Context(), email, req.IDs)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if req.Format == "json" {
		utils.RespondJSON(c, gin.H{"analyses": analyses})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="arboris-export.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buildExportCSV(analyses))
}

func buildExportCSV(analyses []response_models.ExportedAnalysis) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	_ = w.Write([]string{"ID", "Date", "Plant Name", "Scientific Name", "Confidence", "Favorite", "Notes"})
	for _, a := range analyses {
		_ = w.Write([]string{
			a.ID,
			fmt.Sprintf("%d", a.Date),
			a.PlantName,
			a.ScientificName,
			fmt.Sprintf("%.2f", a.Confidence),
			fmt.Sprintf("%t", a.IsFavorite),
			a.Notes,
		})
	}
	w.Flush()
	return buf.Bytes()
}
