package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	tradeapp "github.com/procure/backend/internal/application/trade"
)

// PurchaseOrderHandler handles purchase order endpoints
type PurchaseOrderHandler struct {
	BaseHandler
	orderService *tradeapp.PurchaseOrderService
}

// NewPurchaseOrderHandler creates a new PurchaseOrderHandler
func NewPurchaseOrderHandler(orderService *tradeapp.PurchaseOrderService) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{orderService: orderService}
}

// Generate godoc
// @Summary      Generate purchase orders from an approved quotation
// @Description  Awards each selected line to a supplier and creates one order
// @Description  per supplier. A quotation can be converted only once; a second
// @Description  attempt returns a conflict.
// @Tags         trade
// @Accept       json
// @Produce      json
// @Param        id path string true "Quotation ID" format(uuid)
// @Param        request body tradeapp.GenerateOrdersRequest true "Selections"
// @Success      201 {object} dto.Response{data=tradeapp.GenerateOrdersResponse}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /trade/quotations/{id}/orders [post]
func (h *PurchaseOrderHandler) Generate(c *gin.Context) {
	quotationID, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid quotation ID format")
		return
	}

	var req tradeapp.GenerateOrdersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.orderService.Generate(c.Request.Context(), quotationID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, result)
}

// ListByQuotation godoc
// @Summary      List the orders generated from a quotation
// @Tags         trade
// @Produce      json
// @Param        id path string true "Quotation ID" format(uuid)
// @Success      200 {object} dto.Response{data=[]tradeapp.PurchaseOrderResponse}
// @Security     BearerAuth
// @Router       /trade/quotations/{id}/orders [get]
func (h *PurchaseOrderHandler) ListByQuotation(c *gin.Context) {
	quotationID, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid quotation ID format")
		return
	}

	orders, err := h.orderService.ListByQuotation(c.Request.Context(), quotationID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, orders)
}

// GetByID godoc
// @Summary      Get a purchase order by ID
// @Tags         trade
// @Produce      json
// @Param        id path string true "Purchase order ID" format(uuid)
// @Success      200 {object} dto.Response{data=tradeapp.PurchaseOrderResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /trade/orders/{id} [get]
func (h *PurchaseOrderHandler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid purchase order ID format")
		return
	}

	order, err := h.orderService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, order)
}

// List godoc
// @Summary      List purchase orders
// @Tags         trade
// @Produce      json
// @Param        status query string false "Filter by status" Enums(draft, in_review, approved, rejected)
// @Param        supplier_id query string false "Filter by supplier" format(uuid)
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Success      200 {object} dto.Response{data=[]tradeapp.PurchaseOrderResponse,meta=dto.Meta}
// @Security     BearerAuth
// @Router       /trade/orders [get]
func (h *PurchaseOrderHandler) List(c *gin.Context) {
	var filter tradeapp.PurchaseOrderListFilter
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

	orders, total, err := h.orderService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, orders, total, filter.Page, filter.PageSize)
}

// SendToReview godoc
// @Summary      Send a draft purchase order to review
// @Tags         trade
// @Produce      json
// @Param        id path string true "Purchase order ID" format(uuid)
// @Success      200 {object} dto.Response{data=tradeapp.PurchaseOrderResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /trade/orders/{id}/send-to-review [post]
func (h *PurchaseOrderHandler) SendToReview(c *gin.Context) {
	h.transition(c, h.orderService.SendToReview)
}

// Approve godoc
// @Summary      Approve a purchase order under review
// @Tags         trade
// @Produce      json
// @Param        id path string true "Purchase order ID" format(uuid)
// @Success      200 {object} dto.Response{data=tradeapp.PurchaseOrderResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /trade/orders/{id}/approve [post]
func (h *PurchaseOrderHandler) Approve(c *gin.Context) {
	h.transition(c, h.orderService.Approve)
}

// Reject godoc
// @Summary      Reject a purchase order under review
// @Tags         trade
// @Produce      json
// @Param        id path string true "Purchase order ID" format(uuid)
// @Success      200 {object} dto.Response{data=tradeapp.PurchaseOrderResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /trade/orders/{id}/reject [post]
func (h *PurchaseOrderHandler) Reject(c *gin.Context) {
	h.transition(c, h.orderService.Reject)
}

// transition applies a workflow transition identified by the :id parameter
func (h *PurchaseOrderHandler) transition(c *gin.Context, apply func(ctx context.Context, id uuid.UUID) (*tradeapp.PurchaseOrderResponse, error)) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid purchase order ID format")
		return
	}

	order, err := apply(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, order)
}
