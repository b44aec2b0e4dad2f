package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/finance"
	"github.com/procure/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PaymentDetailRequest is one planned disbursement
type PaymentDetailRequest struct {
	BusinessUnitID uuid.UUID       `json:"business_unit_id" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	DueDate        time.Time       `json:"due_date" binding:"required"`
}

// CreatePaymentScheduleRequest is the input for creating a schedule
type CreatePaymentScheduleRequest struct {
	PurchaseOrderID uuid.UUID              `json:"purchase_order_id" binding:"required"`
	Notes           string                 `json:"notes,omitempty"`
	Details         []PaymentDetailRequest `json:"details" binding:"required,min=1,dive"`
}

// MarkDetailPaidRequest records the realization of one detail
type MarkDetailPaidRequest struct {
	PaymentReference string `json:"payment_reference" binding:"required"`
	PaymentNotes     string `json:"payment_notes,omitempty"`
}

// PaymentDetailResponse is one schedule detail with the business unit name resolved
type PaymentDetailResponse struct {
	ID               uuid.UUID       `json:"id"`
	BusinessUnitID   uuid.UUID       `json:"business_unit_id"`
	BusinessUnitName string          `json:"business_unit_name,omitempty"`
	Amount           decimal.Decimal `json:"amount"`
	DueDate          time.Time       `json:"due_date"`
	Status           string          `json:"status"`
	PaidAt           *time.Time      `json:"paid_at,omitempty"`
	PaymentReference string          `json:"payment_reference,omitempty"`
	PaymentNotes     string          `json:"payment_notes,omitempty"`
}

// PaymentScheduleResponse represents a schedule with its details
type PaymentScheduleResponse struct {
	ID               uuid.UUID               `json:"id"`
	PurchaseOrderID  uuid.UUID               `json:"purchase_order_id"`
	Notes            string                  `json:"notes,omitempty"`
	Status           string                  `json:"status"`
	FirstApprovedBy  string                  `json:"first_approved_by,omitempty"`
	FirstApprovedAt  *time.Time              `json:"first_approved_at,omitempty"`
	SecondApprovedBy string                  `json:"second_approved_by,omitempty"`
	SecondApprovedAt *time.Time              `json:"second_approved_at,omitempty"`
	Details          []PaymentDetailResponse `json:"details,omitempty"`
	CreatedAt        time.Time               `json:"created_at"`
	UpdatedAt        time.Time               `json:"updated_at"`
}

// ScheduleListFilter filters schedule listings
type ScheduleListFilter struct {
	Page     int    `form:"page,omitempty" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size,omitempty" binding:"omitempty,min=1,max=100"`
	Status   string `form:"status,omitempty"`
}

func (f ScheduleListFilter) toDomain() shared.Filter {
	filter := shared.DefaultFilter()
	if f.Page > 0 {
		filter.Page = f.Page
	}
	if f.PageSize > 0 {
		filter.PageSize = f.PageSize
	}
	if f.Status != "" {
		filter.Filters["status"] = f.Status
	}
	return filter
}

// CreateBudgetRequest is the input for creating a budget allocation
type CreateBudgetRequest struct {
	DepartmentID   uuid.UUID       `json:"department_id" binding:"required"`
	ClassifierID   uuid.UUID       `json:"classifier_id" binding:"required"`
	BusinessUnitID uuid.UUID       `json:"business_unit_id" binding:"required"`
	Period         string          `json:"period" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	Description    string          `json:"description,omitempty"`
}

// UpdateBudgetRequest changes the amount and description of a budget
type UpdateBudgetRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description,omitempty"`
}

// BudgetResponse represents a budget with dimension names resolved
type BudgetResponse struct {
	ID               uuid.UUID       `json:"id"`
	DepartmentID     uuid.UUID       `json:"department_id"`
	DepartmentName   string          `json:"department_name,omitempty"`
	ClassifierID     uuid.UUID       `json:"classifier_id"`
	ClassifierName   string          `json:"classifier_name,omitempty"`
	BusinessUnitID   uuid.UUID       `json:"business_unit_id"`
	BusinessUnitName string          `json:"business_unit_name,omitempty"`
	Period           string          `json:"period"`
	Amount           decimal.Decimal `json:"amount"`
	Description      string          `json:"description,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// BudgetListFilter filters budget listings
type BudgetListFilter struct {
	Page           int        `form:"page,omitempty" binding:"omitempty,min=1"`
	PageSize       int        `form:"page_size,omitempty" binding:"omitempty,min=1,max=100"`
	DepartmentID   *uuid.UUID `form:"department_id,omitempty"`
	ClassifierID   *uuid.UUID `form:"classifier_id,omitempty"`
	BusinessUnitID *uuid.UUID `form:"business_unit_id,omitempty"`
	Period         string     `form:"period,omitempty"`
}

func (f BudgetListFilter) toDomain() shared.Filter {
	filter := shared.DefaultFilter()
	if f.Page > 0 {
		filter.Page = f.Page
	}
	if f.PageSize > 0 {
		filter.PageSize = f.PageSize
	}
	if f.DepartmentID != nil {
		filter.Filters["department_id"] = *f.DepartmentID
	}
	if f.ClassifierID != nil {
		filter.Filters["classifier_id"] = *f.ClassifierID
	}
	if f.BusinessUnitID != nil {
		filter.Filters["business_unit_id"] = *f.BusinessUnitID
	}
	if f.Period != "" {
		filter.Filters["period"] = f.Period
	}
	return filter
}

func publishEvents(ctx context.Context, publisher shared.EventPublisher, aggregate shared.AggregateRoot) {
	if publisher == nil {
		return
	}
	events := aggregate.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = publisher.Publish(ctx, events...)
	aggregate.ClearDomainEvents()
}

func toScheduleResponse(s *finance.PaymentSchedule, unitNames map[uuid.UUID]string) PaymentScheduleResponse {
	details := make([]PaymentDetailResponse, 0, len(s.Details))
	for _, detail := range s.Details {
		details = append(details, PaymentDetailResponse{
			ID:               detail.ID,
			BusinessUnitID:   detail.BusinessUnitID,
			BusinessUnitName: unitNames[detail.BusinessUnitID],
			Amount:           detail.Amount,
			DueDate:          detail.DueDate,
			Status:           string(detail.Status),
			PaidAt:           detail.PaidAt,
			PaymentReference: detail.PaymentReference,
			PaymentNotes:     detail.PaymentNotes,
		})
	}
	return PaymentScheduleResponse{
		ID:               s.ID,
		PurchaseOrderID:  s.PurchaseOrderID,
		Notes:            s.Notes,
		Status:           s.Status.String(),
		FirstApprovedBy:  s.FirstApprovedBy,
		FirstApprovedAt:  s.FirstApprovedAt,
		SecondApprovedBy: s.SecondApprovedBy,
		SecondApprovedAt: s.SecondApprovedAt,
		Details:          details,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

func toBudgetResponse(b *finance.Budget, departmentName, classifierName, unitName string) BudgetResponse {
	return BudgetResponse{
		ID:               b.ID,
		DepartmentID:     b.DepartmentID,
		DepartmentName:   departmentName,
		ClassifierID:     b.ClassifierID,
		ClassifierName:   classifierName,
		BusinessUnitID:   b.BusinessUnitID,
		BusinessUnitName: unitName,
		Period:           b.Period,
		Amount:           b.Amount,
		Description:      b.Description,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}
