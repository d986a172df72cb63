package controllers

import (
	"net/http"

	"arboris/internal/models/request_models"
	"arboris/internal/services"
	"arboris/pkg/utils"

	"github.com/gin-gonic/gin"
)

type CodexController struct {
	codexService services.CodexServiceInterface
}

func NewCodexController(codexService services.CodexServiceInterface) *CodexController {
	return &CodexController{
		codexService: codexService,
	}
}

// ListArticles godoc
// @Summary List published articles
// @Description category=all or an absent category means no filter
// @Tags Codex
// @Produce json
// @Param category query string false "Category slug"
// @Success 200 {array} response_models.ArticleResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /codex/articles [get]
func (cc *CodexController) ListArticles(c *gin.Context) {
	category := c.Query("category")

	articles, err := cc.codexService.ListArticles(c.Request.Context(), category)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondJSON(c, articles)
}

// CreateArticle godoc
// @Summary Create an article authored by the caller
// @Tags Codex
// @Accept json
// @Produce json
// @Param request body request_models.CreateArticleRequest true "Article payload"
// @Success 200 {object} response_models.ArticleResponse
// @Failure 400 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /codex/articles [post]
func (cc *CodexController) CreateArticle(c *gin.Context) {
	email := c.GetString("user_email")

	var req request_models.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Campos obrigatórios ausentes")
		return
	}

	article, err := cc.codexService.CreateArticle(c.Request.Context(), email, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondJSON(c, article)
}

// ListCategories godoc
// @Summary List categories with derived article counts
// @Tags Codex
// @Produce json
// @Success 200 {array} response_models.CategoryResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /codex/categories [get]
func (cc *CodexController) ListCategories(c *gin.Context) {
	categories, err := cc.codexService.ListCategories(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondJSON(c, categories)
}

// CreateCategory godoc
// @Summary Create a category
// @Tags Codex
// @Accept json
// @Produce json
// @Param request body request_models.CreateCategoryRequest true "Category payload"
// @Success 200 {object} response_models.CategoryResponse
// @Failure 400 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /codex/categories [post]
func (cc *CodexController) CreateCategory(c *gin.Context) {
	var req request_models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Nome e slug são obrigatórios")
		return
	}

	category, err := cc.codexService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondJSON(c, category)
}
