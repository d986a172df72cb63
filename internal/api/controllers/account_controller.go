package controllers

import (
	"net/http"

	"arboris/internal/models/request_models"
	"arboris/internal/models/response_models"
	"arboris/internal/services"
	"arboris/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// GuestLogin godoc
// @Summary Create a guest session
// @Description Provisions a throwaway account and reveals its password once
// @Tags Auth
// @Produce json
// @Success 200 {object} response_models.GuestSessionResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /auth/guest [post]
func (a *AccountController) GuestLogin(c *gin.Context) {
	session, err := a.accountService.CreateGuestSession(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to create guest session",
		})
		return
	}

	utils.RespondJSON(c, session)
}

// Register godoc
// @Summary Register a new account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.RegisterRequest true "Registration payload"
// @Success 200 {object} response_models.TokenResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /auth/register [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Formato de requisição inválido")
		return
	}

	token, err := a.accountService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondJSON(c, response_models.TokenResponse{Token: token})
}

// Login godoc
// @Summary Login to an account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} response_models.TokenResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /auth/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Formato de requisição inválido")
		return
	}

	token, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondJSON(c, response_models.TokenResponse{Token: token})
}

// GetPreferences godoc
// @Summary Get the caller's preference blob
// @Tags Preferences
// @Produce json
// @Success 200 {object} response_models.PreferencesResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /preferences [get]
func (a *AccountController) GetPreferences(c *gin.Context) {
	email := c.GetString("user_email")

	preferences, err := a.accountService.GetPreferences(c.Request.Context(), email)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondJSON(c, response_models.PreferencesResponse{Preferences: preferences})
}

// SavePreferences godoc
// @Summary Save the caller's preference blob
// @Tags Preferences
// @Accept json
// @Produce json
// @Param request body request_models.SavePreferencesRequest true "Preferences payload"
// @Success 200 {object} response_models.SavePreferencesResponse
// @Failure 400 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /preferences [post]
func (a *AccountController) SavePreferences(c *gin.Context) {
	email := c.GetString("user_email")

	var req request_models.SavePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Preferências não fornecidas")
		return
	}

	preferences, err := a.accountService.SavePreferences(c.Request.Context(), email, req.Preferences)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondJSON(c, response_models.SavePreferencesResponse{
		Success:     true,
		Preferences: preferences,
	})
}
