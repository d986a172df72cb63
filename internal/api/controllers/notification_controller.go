package controllers

import (
	"net/http"

	"arboris/internal/models/request_models"
	"arboris/internal/services"
	"arboris/pkg/utils"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	notificationService services.NotificationServiceInterface
}

func NewNotificationController(notificationService services.NotificationServiceInterface) *NotificationController {
	return &NotificationController{
		notificationService: notificationService,
	}
}

// ListNotifications godoc
// @Summary List the caller's notifications, newest first, capped at 50
// @Tags Notifications
// @Produce json
// @Success 200 {array} response_models.NotificationResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /notifications [get]
func (nc *NotificationController) ListNotifications(c *gin.Context) {
	email := c.GetString("user_email")

	notifications, err := nc.notificationService.List(c.Request.Context(), email)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondJSON(c, notifications)
}

// CreateNotification godoc
// @Summary Create a notification for the caller
// @Tags Notifications
// @Accept json
// @Produce json
// @Param request body request_models.CreateNotificationRequest true "Notification payload"
// @Success 200 {object} response_models.NotificationResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /notifications [post]
func (nc *NotificationController) CreateNotification(c *gin.Context) {
	email := c.GetString("user_email")

	var req request_models.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Formato de requisição inválido")
		return
	}

	notification, err := nc.notificationService.Create(c.Request.Context(), email, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondJSON(c, notification)
}

// MarkNotificationRead godoc
// @Summary Mark a notification as read (idempotent)
// @Tags Notifications
// @Produce json
// @Param id path string true "Notification id"
// @Success 200 {object} response_models.NotificationResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /notifications/{id}/read [patch]
func (nc *NotificationController) MarkNotificationRead(c *gin.Context) {
	email := c.GetString("user_email")

	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "ID da notificação é obrigatório")
		return
	}

	notification, err := nc.notificationService.MarkRead(c.Request.Context(), email, id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondJSON(c, notification)
}
