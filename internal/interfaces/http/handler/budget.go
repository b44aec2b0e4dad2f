package handler

import (
	"github.com/gin-gonic/gin"
	financeapp "github.com/procure/backend/internal/application/finance"
)

// BudgetHandler handles budget allocation endpoints
type BudgetHandler struct {
	BaseHandler
	budgetService *financeapp.BudgetService
}

// NewBudgetHandler creates a new BudgetHandler
func NewBudgetHandler(budgetService *financeapp.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// Create godoc
// @Summary      Create a budget allocation
// @Description  The (department, classifier, business unit, period) combination
// @Description  must be unique
// @Tags         finance
// @Accept       json
// @Produce      json
// @Param        request body financeapp.CreateBudgetRequest true "Budget"
// @Success      201 {object} dto.Response{data=financeapp.BudgetResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /finance/budgets [post]
func (h *BudgetHandler) Create(c *gin.Context) {
	var req financeapp.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	budget, err := h.budgetService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, budget)
}

// GetByID godoc
// @Summary      Get a budget by ID
// @Tags         finance
// @Produce      json
// @Param        id path string true "Budget ID" format(uuid)
// @Success      200 {object} dto.Response{data=financeapp.BudgetResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /finance/budgets/{id} [get]
func (h *BudgetHandler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid budget ID format")
		return
	}

	budget, err := h.budgetService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, budget)
}

// Update godoc
// @Summary      Update a budget's amount and description
// @Description  The dimensions and period of a budget are immutable
// @Tags         finance
// @Accept       json
// @Produce      json
// @Param        id path string true "Budget ID" format(uuid)
// @Param        request body financeapp.UpdateBudgetRequest true "Changes"
// @Success      200 {object} dto.Response{data=financeapp.BudgetResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /finance/budgets/{id} [put]
func (h *BudgetHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid budget ID format")
		return
	}

	var req financeapp.UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	budget, err := h.budgetService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, budget)
}

// Delete godoc
// @Summary      Delete a budget
// @Tags         finance
// @Param        id path string true "Budget ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /finance/budgets/{id} [delete]
func (h *BudgetHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid budget ID format")
		return
	}

	if err := h.budgetService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// List godoc
// @Summary      List budgets
// @Tags         finance
// @Produce      json
// @Param        department_id query string false "Filter by department" format(uuid)
// @Param        classifier_id query string false "Filter by classifier" format(uuid)
// @Param        business_unit_id query string false "Filter by business unit" format(uuid)
// @Param        period query string false "Filter by period (YYYY-MM)"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Success      200 {object} dto.Response{data=[]financeapp.BudgetResponse,meta=dto.Meta}
// @Security     BearerAuth
// @Router       /finance/budgets [get]
func (h *BudgetHandler) List(c *gin.Context) {
	var filter financeapp.BudgetListFilter
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

	budgets, total, err := h.budgetService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, budgets, total, filter.Page, filter.PageSize)
}
