package handler

import (
	"github.com/gin-gonic/gin"
	partnerapp "github.com/procure/backend/internal/application/partner"
)

// BusinessUnitHandler handles business unit endpoints
type BusinessUnitHandler struct {
	BaseHandler
	unitService *partnerapp.BusinessUnitService
}

// NewBusinessUnitHandler creates a new BusinessUnitHandler
func NewBusinessUnitHandler(unitService *partnerapp.BusinessUnitService) *BusinessUnitHandler {
	return &BusinessUnitHandler{unitService: unitService}
}

// Create godoc
// @Summary      Create a business unit
// @Tags         partner
// @Accept       json
// @Produce      json
// @Param        request body partnerapp.CreateBusinessUnitRequest true "Business unit"
// @Success      201 {object} dto.Response{data=partnerapp.BusinessUnitResponse}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /partner/business-units [post]
func (h *BusinessUnitHandler) Create(c *gin.Context) {
	var req partnerapp.CreateBusinessUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	unit, err := h.unitService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, unit)
}

// GetByID godoc
// @Summary      Get a business unit by ID
// @Tags         partner
// @Produce      json
// @Param        id path string true "Business unit ID" format(uuid)
// @Success      200 {object} dto.Response{data=partnerapp.BusinessUnitResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /partner/business-units/{id} [get]
func (h *BusinessUnitHandler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid business unit ID format")
		return
	}

	unit, err := h.unitService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, unit)
}

// List godoc
// @Summary      List business units
// @Tags         partner
// @Produce      json
// @Param        search query string false "Search by name"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Success      200 {object} dto.Response{data=[]partnerapp.BusinessUnitResponse,meta=dto.Meta}
// @Security     BearerAuth
// @Router       /partner/business-units [get]
func (h *BusinessUnitHandler) List(c *gin.Context) {
	var filter partnerapp.ListFilter
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

	units, total, err := h.unitService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, units, total, filter.Page, filter.PageSize)
}
