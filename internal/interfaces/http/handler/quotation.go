package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	procurementapp "github.com/procure/backend/internal/application/procurement"
)

// QuotationHandler handles quotation round endpoints
type QuotationHandler struct {
	BaseHandler
	quotationService *procurementapp.QuotationService
}

// NewQuotationHandler creates a new QuotationHandler
func NewQuotationHandler(quotationService *procurementapp.QuotationService) *QuotationHandler {
	return &QuotationHandler{quotationService: quotationService}
}

// Create godoc
// @Summary      Open a quotation round for an approved requisition
// @Description  At most one quotation may exist per requisition
// @Tags         procurement
// @Accept       json
// @Produce      json
// @Param        request body procurementapp.CreateQuotationRequest true "Quotation"
// @Success      201 {object} dto.Response{data=procurementapp.QuotationResponse}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /procurement/quotations [post]
func (h *QuotationHandler) Create(c *gin.Context) {
	var req procurementapp.CreateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	quotation, err := h.quotationService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, quotation)
}

// GetByID godoc
// @Summary      Get a quotation by ID
// @Tags         procurement
// @Produce      json
// @Param        id path string true "Quotation ID" format(uuid)
// @Success      200 {object} dto.Response{data=procurementapp.QuotationResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /procurement/quotations/{id} [get]
func (h *QuotationHandler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid quotation ID format")
		return
	}

	quotation, err := h.quotationService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, quotation)
}

// List godoc
// @Summary      List quotations
// @Tags         procurement
// @Produce      json
// @Param        status query string false "Filter by status" Enums(open, approved, rejected)
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Success      200 {object} dto.Response{data=[]procurementapp.QuotationResponse,meta=dto.Meta}
// @Security     BearerAuth
// @Router       /procurement/quotations [get]
func (h *QuotationHandler) List(c *gin.Context) {
	var filter procurementapp.QuotationListFilter
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

	quotations, total, err := h.quotationService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, quotations, total, filter.Page, filter.PageSize)
}

// AddSupplier godoc
// @Summary      Invite a supplier to the quotation round
// @Description  Adding the same supplier twice is a no-op
// @Tags         procurement
// @Accept       json
// @Produce      json
// @Param        id path string true "Quotation ID" format(uuid)
// @Param        request body procurementapp.AddQuotationSupplierRequest true "Supplier"
// @Success      200 {object} dto.Response{data=procurementapp.QuotationResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /procurement/quotations/{id}/suppliers [post]
func (h *QuotationHandler) AddSupplier(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid quotation ID format")
		return
	}

	var req procurementapp.AddQuotationSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	quotation, err := h.quotationService.AddSupplier(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, quotation)
}

// LoadSupplierQuotes godoc
// @Summary      Load a supplier's quoted prices
// @Description  Upserts quoted lines for an invited supplier. Quantities are
// @Description  taken from the requisition lines; articles outside the
// @Description  requisition are rejected.
// @Tags         procurement
// @Accept       json
// @Produce      json
// @Param        id path string true "Quotation ID" format(uuid)
// @Param        supplier_id path string true "Supplier ID" format(uuid)
// @Param        request body procurementapp.LoadSupplierQuotesRequest true "Quoted lines"
// @Success      200 {object} dto.Response{data=procurementapp.QuotationResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /procurement/quotations/{id}/suppliers/{supplier_id}/quotes [put]
func (h *QuotationHandler) LoadSupplierQuotes(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid quotation ID format")
		return
	}

	supplierID, err := uuid.Parse(c.Param("supplier_id"))
	if err != nil {
		h.BadRequest(c, "Invalid supplier ID format")
		return
	}

	var req procurementapp.LoadSupplierQuotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	quotation, err := h.quotationService.LoadSupplierQuotes(c.Request.Context(), id, supplierID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, quotation)
}

// Comparison godoc
// @Summary      Get the side-by-side price comparison
// @Description  Lines follow requisition order; suppliers that did not quote a
// @Description  line are omitted from it
// @Tags         procurement
// @Produce      json
// @Param        id path string true "Quotation ID" format(uuid)
// @Success      200 {object} dto.Response{data=procurementapp.ComparisonResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /procurement/quotations/{id}/comparison [get]
func (h *QuotationHandler) Comparison(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid quotation ID format")
		return
	}

	comparison, err := h.quotationService.Comparison(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, comparison)
}

// Approve godoc
// @Summary      Approve an open quotation
// @Tags         procurement
// @Produce      json
// @Param        id path string true "Quotation ID" format(uuid)
// @Success      200 {object} dto.Response{data=procurementapp.QuotationResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /procurement/quotations/{id}/approve [post]
func (h *QuotationHandler) Approve(c *gin.Context) {
	h.transition(c, h.quotationService.Approve)
}

// Reject godoc
// @Summary      Reject an open quotation
// @Tags         procurement
// @Produce      json
// @Param        id path string true "Quotation ID" format(uuid)
// @Success      200 {object} dto.Response{data=procurementapp.QuotationResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /procurement/quotations/{id}/reject [post]
func (h *QuotationHandler) Reject(c *gin.Context) {
	h.transition(c, h.quotationService.Reject)
}

// transition applies a workflow transition identified by the :id parameter
func (h *QuotationHandler) transition(c *gin.Context, apply func(ctx context.Context, id uuid.UUID) (*procurementapp.QuotationResponse, error)) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid quotation ID format")
		return
	}

	quotation, err := apply(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, quotation)
}
