package handler

import (
	"github.com/gin-gonic/gin"
	identityapp "github.com/procure/backend/internal/application/identity"
)

// DepartmentHandler handles department endpoints
type DepartmentHandler struct {
	BaseHandler
	departmentService *identityapp.DepartmentService
}

// NewDepartmentHandler creates a new DepartmentHandler
func NewDepartmentHandler(departmentService *identityapp.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{departmentService: departmentService}
}

// Create godoc
// @Summary      Create a department
// @Tags         identity
// @Accept       json
// @Produce      json
// @Param        request body identityapp.CreateDepartmentRequest true "Department"
// @Success      201 {object} dto.Response{data=identityapp.DepartmentResponse}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /identity/departments [post]
func (h *DepartmentHandler) Create(c *gin.Context) {
	var req identityapp.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	department, err := h.departmentService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, department)
}

// GetByID godoc
// @Summary      Get a department by ID
// @Tags         identity
// @Produce      json
// @Param        id path string true "Department ID" format(uuid)
// @Success      200 {object} dto.Response{data=identityapp.DepartmentResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /identity/departments/{id} [get]
func (h *DepartmentHandler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid department ID format")
		return
	}

	department, err := h.departmentService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, department)
}

// List godoc
// @Summary      List departments
// @Tags         identity
// @Produce      json
// @Param        search query string false "Search by name"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Success      200 {object} dto.Response{data=[]identityapp.DepartmentResponse,meta=dto.Meta}
// @Security     BearerAuth
// @Router       /identity/departments [get]
func (h *DepartmentHandler) List(c *gin.Context) {
	var filter identityapp.ListFilter
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

	departments, total, err := h.departmentService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, departments, total, filter.Page, filter.PageSize)
}
