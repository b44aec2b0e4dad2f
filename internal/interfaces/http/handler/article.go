package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	catalogapp "github.com/procure/backend/internal/application/catalog"
)

// ArticleHandler handles article endpoints
type ArticleHandler struct {
	BaseHandler
	articleService *catalogapp.ArticleService
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(articleService *catalogapp.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

// Create godoc
// @Summary      Create an article
// @Description  Creates an article, optionally bound to a classifier
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        request body catalogapp.CreateArticleRequest true "Article"
// @Success      201 {object} dto.Response{data=catalogapp.ArticleResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /catalog/articles [post]
func (h *ArticleHandler) Create(c *gin.Context) {
	var req catalogapp.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	article, err := h.articleService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, article)
}

// GetByID godoc
// @Summary      Get an article by ID
// @Tags         catalog
// @Produce      json
// @Param        id path string true "Article ID" format(uuid)
// @Success      200 {object} dto.Response{data=catalogapp.ArticleResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /catalog/articles/{id} [get]
func (h *ArticleHandler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid article ID format")
		return
	}

	article, err := h.articleService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, article)
}

// List godoc
// @Summary      List articles
// @Tags         catalog
// @Produce      json
// @Param        classifier_id query string false "Filter by classifier" format(uuid)
// @Param        search query string false "Search by name"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Success      200 {object} dto.Response{data=[]catalogapp.ArticleResponse,meta=dto.Meta}
// @Security     BearerAuth
// @Router       /catalog/articles [get]
func (h *ArticleHandler) List(c *gin.Context) {
	var filter catalogapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	var classifierID *uuid.UUID
	if raw := c.Query("classifier_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid classifier ID format")
			return
		}
		classifierID = &id
	}

	articles, total, err := h.articleService.List(c.Request.Context(), classifierID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, articles, total, filter.Page, filter.PageSize)
}
