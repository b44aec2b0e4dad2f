package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	financeapp "github.com/procure/backend/internal/application/finance"
)

// PaymentScheduleHandler handles payment schedule endpoints
type PaymentScheduleHandler struct {
	BaseHandler
	scheduleService *financeapp.PaymentScheduleService
}

// NewPaymentScheduleHandler creates a new PaymentScheduleHandler
func NewPaymentScheduleHandler(scheduleService *financeapp.PaymentScheduleService) *PaymentScheduleHandler {
	return &PaymentScheduleHandler{scheduleService: scheduleService}
}

// Create godoc
// @Summary      Create a payment schedule for an approved purchase order
// @Description  One schedule per purchase order; every detail's business unit
// @Description  must exist
// @Tags         finance
// @Accept       json
// @Produce      json
// @Param        request body financeapp.CreatePaymentScheduleRequest true "Schedule"
// @Success      201 {object} dto.Response{data=financeapp.PaymentScheduleResponse}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /finance/payment-schedules [post]
func (h *PaymentScheduleHandler) Create(c *gin.Context) {
	var req financeapp.CreatePaymentScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	schedule, err := h.scheduleService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, schedule)
}

// GetByID godoc
// @Summary      Get a payment schedule by ID
// @Tags         finance
// @Produce      json
// @Param        id path string true "Schedule ID" format(uuid)
// @Success      200 {object} dto.Response{data=financeapp.PaymentScheduleResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /finance/payment-schedules/{id} [get]
func (h *PaymentScheduleHandler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid schedule ID format")
		return
	}

	schedule, err := h.scheduleService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, schedule)
}

// GetByPurchaseOrder godoc
// @Summary      Get the payment schedule of a purchase order
// @Tags         finance
// @Produce      json
// @Param        id path string true "Purchase order ID" format(uuid)
// @Success      200 {object} dto.Response{data=financeapp.PaymentScheduleResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /finance/orders/{id}/payment-schedule [get]
func (h *PaymentScheduleHandler) GetByPurchaseOrder(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid purchase order ID format")
		return
	}

	schedule, err := h.scheduleService.GetByPurchaseOrder(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, schedule)
}

// List godoc
// @Summary      List payment schedules
// @Tags         finance
// @Produce      json
// @Param        status query string false "Filter by status" Enums(draft, first_approval, approved)
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Success      200 {object} dto.Response{data=[]financeapp.PaymentScheduleResponse,meta=dto.Meta}
// @Security     BearerAuth
// @Router       /finance/payment-schedules [get]
func (h *PaymentScheduleHandler) List(c *gin.Context) {
	var filter financeapp.ScheduleListFilter
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

	schedules, total, err := h.scheduleService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, schedules, total, filter.Page, filter.PageSize)
}

// ApproveFirst godoc
// @Summary      Record the first approval on a draft schedule
// @Description  The approver is taken from the authenticated user
// @Tags         finance
// @Produce      json
// @Param        id path string true "Schedule ID" format(uuid)
// @Success      200 {object} dto.Response{data=financeapp.PaymentScheduleResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /finance/payment-schedules/{id}/approve-first [post]
func (h *PaymentScheduleHandler) ApproveFirst(c *gin.Context) {
	h.approve(c, h.scheduleService.ApproveFirst)
}

// ApproveSecond godoc
// @Summary      Record the second approval, activating the schedule
// @Tags         finance
// @Produce      json
// @Param        id path string true "Schedule ID" format(uuid)
// @Success      200 {object} dto.Response{data=financeapp.PaymentScheduleResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /finance/payment-schedules/{id}/approve-second [post]
func (h *PaymentScheduleHandler) ApproveSecond(c *gin.Context) {
	h.approve(c, h.scheduleService.ApproveSecond)
}

// MarkDetailPaid godoc
// @Summary      Mark one schedule detail as paid
// @Description  Only allowed on fully approved schedules; a detail can be paid
// @Description  exactly once
// @Tags         finance
// @Accept       json
// @Produce      json
// @Param        detail_id path string true "Detail ID" format(uuid)
// @Param        request body financeapp.MarkDetailPaidRequest true "Payment record"
// @Success      200 {object} dto.Response{data=financeapp.PaymentScheduleResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /finance/payment-details/{detail_id}/pay [post]
func (h *PaymentScheduleHandler) MarkDetailPaid(c *gin.Context) {
	detailID, err := uuid.Parse(c.Param("detail_id"))
	if err != nil {
		h.BadRequest(c, "Invalid detail ID format")
		return
	}

	var req financeapp.MarkDetailPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	schedule, err := h.scheduleService.MarkDetailPaid(c.Request.Context(), detailID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, schedule)
}

// approve records an approval step with the authenticated user as approver
func (h *PaymentScheduleHandler) approve(c *gin.Context, apply func(ctx context.Context, id uuid.UUID, approverID string) (*financeapp.PaymentScheduleResponse, error)) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid schedule ID format")
		return
	}

	approverID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	schedule, err := apply(c.Request.Context(), id, approverID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, schedule)
}
