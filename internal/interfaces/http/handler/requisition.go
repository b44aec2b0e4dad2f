package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	procurementapp "github.com/procure/backend/internal/application/procurement"
)

// RequisitionHandler handles purchase requisition endpoints
type RequisitionHandler struct {
	BaseHandler
	requisitionService *procurementapp.RequisitionService
}

// NewRequisitionHandler creates a new RequisitionHandler
func NewRequisitionHandler(requisitionService *procurementapp.RequisitionService) *RequisitionHandler {
	return &RequisitionHandler{requisitionService: requisitionService}
}

// Create godoc
// @Summary      Create a requisition
// @Description  Creates a draft requisition; every requested article must belong
// @Description  to the requisition's classifier
// @Tags         procurement
// @Accept       json
// @Produce      json
// @Param        request body procurementapp.CreateRequisitionRequest true "Requisition"
// @Success      201 {object} dto.Response{data=procurementapp.RequisitionResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /procurement/requisitions [post]
func (h *RequisitionHandler) Create(c *gin.Context) {
	var req procurementapp.CreateRequisitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	requisition, err := h.requisitionService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, requisition)
}

// GetByID godoc
// @Summary      Get a requisition by ID
// @Tags         procurement
// @Produce      json
// @Param        id path string true "Requisition ID" format(uuid)
// @Success      200 {object} dto.Response{data=procurementapp.RequisitionResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /procurement/requisitions/{id} [get]
func (h *RequisitionHandler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid requisition ID format")
		return
	}

	requisition, err := h.requisitionService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, requisition)
}

// List godoc
// @Summary      List requisitions
// @Tags         procurement
// @Produce      json
// @Param        status query string false "Filter by status" Enums(draft, in_review, approved, rejected)
// @Param        department_id query string false "Filter by department" format(uuid)
// @Param        classifier_id query string false "Filter by classifier" format(uuid)
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Success      200 {object} dto.Response{data=[]procurementapp.RequisitionResponse,meta=dto.Meta}
// @Security     BearerAuth
// @Router       /procurement/requisitions [get]
func (h *RequisitionHandler) List(c *gin.Context) {
	var filter procurementapp.RequisitionListFilter
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

	requisitions, total, err := h.requisitionService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, requisitions, total, filter.Page, filter.PageSize)
}

// SendToReview godoc
// @Summary      Send a draft requisition to review
// @Tags         procurement
// @Produce      json
// @Param        id path string true "Requisition ID" format(uuid)
// @Success      200 {object} dto.Response{data=procurementapp.RequisitionResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /procurement/requisitions/{id}/send-to-review [post]
func (h *RequisitionHandler) SendToReview(c *gin.Context) {
	h.transition(c, h.requisitionService.SendToReview)
}

// Approve godoc
// @Summary      Approve a requisition under review
// @Tags         procurement
// @Produce      json
// @Param        id path string true "Requisition ID" format(uuid)
// @Success      200 {object} dto.Response{data=procurementapp.RequisitionResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /procurement/requisitions/{id}/approve [post]
func (h *RequisitionHandler) Approve(c *gin.Context) {
	h.transition(c, h.requisitionService.Approve)
}

// Reject godoc
// @Summary      Reject a requisition under review
// @Tags         procurement
// @Produce      json
// @Param        id path string true "Requisition ID" format(uuid)
// @Success      200 {object} dto.Response{data=procurementapp.RequisitionResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /procurement/requisitions/{id}/reject [post]
func (h *RequisitionHandler) Reject(c *gin.Context) {
	h.transition(c, h.requisitionService.Reject)
}

// transition applies a workflow transition identified by the :id parameter
func (h *RequisitionHandler) transition(c *gin.Context, apply func(ctx context.Context, id uuid.UUID) (*procurementapp.RequisitionResponse, error)) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid requisition ID format")
		return
	}

	requisition, err := apply(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, requisition)
}
