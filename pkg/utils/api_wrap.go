package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every failed request: {"error": "<message>"}.
type ErrorResponse struct {
	Error string `json:"error"`
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}

func RespondJSON(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// HandleServiceError maps service sentinel errors onto HTTP statuses and the
// client-facing messages. Anything unrecognized is a 500 and gets logged
// server-side only.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		RespondError(c, http.StatusUnauthorized, "Não autenticado")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Credenciais inválidas")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusBadRequest, "E-mail já cadastrado")
	case errors.Is(err, ErrUserNotFound):
		RespondError(c, http.StatusNotFound, "Usuário não encontrado")
	case errors.Is(err, ErrNotificationNotFound):
		RespondError(c, http.StatusNotFound, "Notificação não encontrada")
	case errors.Is(err, ErrAnalysisNotFound):
		RespondError(c, http.StatusNotFound, "Análise não encontrada")
	case errors.Is(err, ErrMissingFields):
		RespondError(c, http.StatusBadRequest, "Campos obrigatórios ausentes")
	case errors.Is(err, ErrMissingNameOrSlug):
		RespondError(c, http.StatusBadRequest, "Nome e slug são obrigatórios")
	case errors.Is(err, ErrMissingPreferences):
		RespondError(c, http.StatusBadRequest, "Preferências não fornecidas")
	case errors.Is(err, ErrInvalidExportFormat):
		RespondError(c, http.StatusBadRequest, "Invalid format")
	case errors.Is(err, ErrNoAnalysesFound):
		RespondError(c, http.StatusNotFound, "No analyses found")
	default:
		zap.L().Error("unhandled service error",
			zap.String("path", c.FullPath()),
			zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Erro interno do servidor")
	}
}
