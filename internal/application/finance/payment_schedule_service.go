package finance

import (
	"context"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/finance"
	"github.com/procure/backend/internal/domain/partner"
	"github.com/procure/backend/internal/domain/shared"
	"github.com/procure/backend/internal/domain/trade"
)

// PaymentScheduleService handles payment schedule operations
type PaymentScheduleService struct {
	scheduleRepo finance.PaymentScheduleRepository
	orderRepo    trade.PurchaseOrderRepository
	unitRepo     partner.BusinessUnitRepository
	publisher    shared.EventPublisher
}

// NewPaymentScheduleService creates a new PaymentScheduleService
func NewPaymentScheduleService(
	scheduleRepo finance.PaymentScheduleRepository,
	orderRepo trade.PurchaseOrderRepository,
	unitRepo partner.BusinessUnitRepository,
	publisher shared.EventPublisher,
) *PaymentScheduleService {
	return &PaymentScheduleService{
		scheduleRepo: scheduleRepo,
		orderRepo:    orderRepo,
		unitRepo:     unitRepo,
		publisher:    publisher,
	}
}

// Create creates a draft schedule for an approved purchase order. Each order
// takes at most one schedule, and every charged business unit must exist.
func (s *PaymentScheduleService) Create(ctx context.Context, req CreatePaymentScheduleRequest) (*PaymentScheduleResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, req.PurchaseOrderID)
	if err != nil {
		return nil, err
	}
	if !order.IsApproved() {
		return nil, shared.NewDomainError("INVALID_STATE",
			"Payment schedules can only be created for approved purchase orders")
	}

	exists, err := s.scheduleRepo.ExistsByPurchaseOrderID(ctx, req.PurchaseOrderID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS",
			"A payment schedule already exists for this purchase order")
	}

	unitNames, err := s.checkBusinessUnits(ctx, req.Details)
	if err != nil {
		return nil, err
	}

	lines := make([]finance.DetailLine, 0, len(req.Details))
	for _, detail := range req.Details {
		lines = append(lines, finance.DetailLine{
			BusinessUnitID: detail.BusinessUnitID,
			Amount:         detail.Amount,
			DueDate:        detail.DueDate,
		})
	}

	schedule, err := finance.NewPaymentSchedule(req.PurchaseOrderID, req.Notes, lines)
	if err != nil {
		return nil, err
	}

	if err := s.scheduleRepo.Save(ctx, schedule); err != nil {
		return nil, err
	}
	publishEvents(ctx, s.publisher, schedule)

	response := toScheduleResponse(schedule, unitNames)
	return &response, nil
}

// GetByID retrieves a schedule with business unit names resolved
func (s *PaymentScheduleService) GetByID(ctx context.Context, id uuid.UUID) (*PaymentScheduleResponse, error) {
	schedule, err := s.scheduleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, schedule)
}

// GetByPurchaseOrder retrieves the schedule created for a purchase order
func (s *PaymentScheduleService) GetByPurchaseOrder(ctx context.Context, purchaseOrderID uuid.UUID) (*PaymentScheduleResponse, error) {
	schedule, err := s.scheduleRepo.FindByPurchaseOrderID(ctx, purchaseOrderID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, schedule)
}

// List retrieves schedules matching the filter
func (s *PaymentScheduleService) List(ctx context.Context, filter ScheduleListFilter) ([]PaymentScheduleResponse, int64, error) {
	domainFilter := filter.toDomain()

	schedules, err := s.scheduleRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.scheduleRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]PaymentScheduleResponse, 0, len(schedules))
	for i := range schedules {
		responses = append(responses, toScheduleResponse(&schedules[i], nil))
	}
	return responses, total, nil
}

// ApproveFirst records the first approval step
func (s *PaymentScheduleService) ApproveFirst(ctx context.Context, id uuid.UUID, approverID string) (*PaymentScheduleResponse, error) {
	return s.applyApproval(ctx, id, approverID, (*finance.PaymentSchedule).ApproveFirst)
}

// ApproveSecond records the second approval step and finalizes the schedule
func (s *PaymentScheduleService) ApproveSecond(ctx context.Context, id uuid.UUID, approverID string) (*PaymentScheduleResponse, error) {
	return s.applyApproval(ctx, id, approverID, (*finance.PaymentSchedule).ApproveSecond)
}

// MarkDetailPaid records the realization of one pending detail
func (s *PaymentScheduleService) MarkDetailPaid(ctx context.Context, detailID uuid.UUID, req MarkDetailPaidRequest) (*PaymentScheduleResponse, error) {
	schedule, err := s.scheduleRepo.FindByDetailID(ctx, detailID)
	if err != nil {
		return nil, err
	}

	if _, err := schedule.MarkDetailPaid(detailID, req.PaymentReference, req.PaymentNotes); err != nil {
		return nil, err
	}

	if err := s.scheduleRepo.Save(ctx, schedule); err != nil {
		return nil, err
	}
	publishEvents(ctx, s.publisher, schedule)

	return s.toResponse(ctx, schedule)
}

func (s *PaymentScheduleService) applyApproval(ctx context.Context, id uuid.UUID, approverID string, approve func(*finance.PaymentSchedule, string) error) (*PaymentScheduleResponse, error) {
	schedule, err := s.scheduleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := approve(schedule, approverID); err != nil {
		return nil, err
	}

	if err := s.scheduleRepo.Save(ctx, schedule); err != nil {
		return nil, err
	}
	publishEvents(ctx, s.publisher, schedule)

	return s.toResponse(ctx, schedule)
}

func (s *PaymentScheduleService) toResponse(ctx context.Context, schedule *finance.PaymentSchedule) (*PaymentScheduleResponse, error) {
	ids := make([]uuid.UUID, 0, len(schedule.Details))
	seen := make(map[uuid.UUID]bool)
	for _, detail := range schedule.Details {
		if !seen[detail.BusinessUnitID] {
			seen[detail.BusinessUnitID] = true
			ids = append(ids, detail.BusinessUnitID)
		}
	}

	unitNames := map[uuid.UUID]string{}
	if len(ids) > 0 {
		units, err := s.unitRepo.FindByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		for i := range units {
			unitNames[units[i].ID] = units[i].Name
		}
	}

	response := toScheduleResponse(schedule, unitNames)
	return &response, nil
}

// checkBusinessUnits verifies every charged business unit exists, returning
// names keyed by id.
func (s *PaymentScheduleService) checkBusinessUnits(ctx context.Context, details []PaymentDetailRequest) (map[uuid.UUID]string, error) {
	ids := make([]uuid.UUID, 0, len(details))
	seen := make(map[uuid.UUID]bool)
	for _, detail := range details {
		if !seen[detail.BusinessUnitID] {
			seen[detail.BusinessUnitID] = true
			ids = append(ids, detail.BusinessUnitID)
		}
	}

	units, err := s.unitRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	names := make(map[uuid.UUID]string, len(units))
	for i := range units {
		names[units[i].ID] = units[i].Name
	}
	for _, id := range ids {
		if _, ok := names[id]; !ok {
			return nil, shared.NewDomainError("BUSINESS_UNIT_NOT_FOUND", "Business unit not found")
		}
	}
	return names, nil
}
