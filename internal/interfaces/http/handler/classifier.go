package handler

import (
	"github.com/gin-gonic/gin"
	catalogapp "github.com/procure/backend/internal/application/catalog"
)

// ClassifierHandler handles classifier endpoints
type ClassifierHandler struct {
	BaseHandler
	classifierService *catalogapp.ClassifierService
}

// NewClassifierHandler creates a new ClassifierHandler
func NewClassifierHandler(classifierService *catalogapp.ClassifierService) *ClassifierHandler {
	return &ClassifierHandler{classifierService: classifierService}
}

// Create godoc
// @Summary      Create a classifier
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        request body catalogapp.CreateClassifierRequest true "Classifier"
// @Success      201 {object} dto.Response{data=catalogapp.ClassifierResponse}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /catalog/classifiers [post]
func (h *ClassifierHandler) Create(c *gin.Context) {
	var req catalogapp.CreateClassifierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	classifier, err := h.classifierService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, classifier)
}

// GetByID godoc
// @Summary      Get a classifier by ID
// @Tags         catalog
// @Produce      json
// @Param        id path string true "Classifier ID" format(uuid)
// @Success      200 {object} dto.Response{data=catalogapp.ClassifierResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /catalog/classifiers/{id} [get]
func (h *ClassifierHandler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid classifier ID format")
		return
	}

	classifier, err := h.classifierService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, classifier)
}

// List godoc
// @Summary      List classifiers
// @Tags         catalog
// @Produce      json
// @Param        search query string false "Search by name"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Success      200 {object} dto.Response{data=[]catalogapp.ClassifierResponse,meta=dto.Meta}
// @Security     BearerAuth
// @Router       /catalog/classifiers [get]
func (h *ClassifierHandler) List(c *gin.Context) {
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

	classifiers, total, err := h.classifierService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, classifiers, total, filter.Page, filter.PageSize)
}
