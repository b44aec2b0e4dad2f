package finance

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/catalog"
	"github.com/procure/backend/internal/domain/finance"
	"github.com/procure/backend/internal/domain/identity"
	"github.com/procure/backend/internal/domain/partner"
	"github.com/procure/backend/internal/domain/shared"
)

// BudgetService handles budget allocations
type BudgetService struct {
	budgetRepo     finance.BudgetRepository
	departmentRepo identity.DepartmentRepository
	classifierRepo catalog.ClassifierRepository
	unitRepo       partner.BusinessUnitRepository
	publisher      shared.EventPublisher
}

// NewBudgetService creates a new BudgetService
func NewBudgetService(
	budgetRepo finance.BudgetRepository,
	departmentRepo identity.DepartmentRepository,
	classifierRepo catalog.ClassifierRepository,
	unitRepo partner.BusinessUnitRepository,
	publisher shared.EventPublisher,
) *BudgetService {
	return &BudgetService{
		budgetRepo:     budgetRepo,
		departmentRepo: departmentRepo,
		classifierRepo: classifierRepo,
		unitRepo:       unitRepo,
		publisher:      publisher,
	}
}

// Create allocates a budget. The dimension combination must be unused for the
// period and every referenced dimension must exist.
func (s *BudgetService) Create(ctx context.Context, req CreateBudgetRequest) (*BudgetResponse, error) {
	department, err := s.departmentRepo.FindByID(ctx, req.DepartmentID)
	if err != nil {
		return nil, err
	}
	classifier, err := s.classifierRepo.FindByID(ctx, req.ClassifierID)
	if err != nil {
		return nil, err
	}
	unit, err := s.unitRepo.FindByID(ctx, req.BusinessUnitID)
	if err != nil {
		return nil, err
	}

	existing, err := s.budgetRepo.FindByDimensions(ctx, req.DepartmentID, req.ClassifierID, req.BusinessUnitID, req.Period)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS",
			"A budget already exists for this combination and period")
	}

	budget, err := finance.NewBudget(req.DepartmentID, req.ClassifierID, req.BusinessUnitID, req.Period, req.Amount, req.Description)
	if err != nil {
		return nil, err
	}

	if err := s.budgetRepo.Save(ctx, budget); err != nil {
		return nil, err
	}
	publishEvents(ctx, s.publisher, budget)

	response := toBudgetResponse(budget, department.Name, classifier.Name, unit.Name)
	return &response, nil
}

// GetByID retrieves a budget with dimension names resolved
func (s *BudgetService) GetByID(ctx context.Context, id uuid.UUID) (*BudgetResponse, error) {
	budget, err := s.budgetRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	departmentName, classifierName, unitName := s.dimensionNames(ctx, budget)
	response := toBudgetResponse(budget, departmentName, classifierName, unitName)
	return &response, nil
}

// Update changes the amount and description of a budget
func (s *BudgetService) Update(ctx context.Context, id uuid.UUID, req UpdateBudgetRequest) (*BudgetResponse, error) {
	budget, err := s.budgetRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := budget.Update(req.Amount, req.Description); err != nil {
		return nil, err
	}

	if err := s.budgetRepo.Save(ctx, budget); err != nil {
		return nil, err
	}
	publishEvents(ctx, s.publisher, budget)

	departmentName, classifierName, unitName := s.dimensionNames(ctx, budget)
	response := toBudgetResponse(budget, departmentName, classifierName, unitName)
	return &response, nil
}

// Delete removes a budget allocation
func (s *BudgetService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.budgetRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.budgetRepo.Delete(ctx, id)
}

// List retrieves budgets matching the filter
func (s *BudgetService) List(ctx context.Context, filter BudgetListFilter) ([]BudgetResponse, int64, error) {
	domainFilter := filter.toDomain()

	budgets, err := s.budgetRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.budgetRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	departmentNames, classifierNames, unitNames, err := s.batchDimensionNames(ctx, budgets)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]BudgetResponse, 0, len(budgets))
	for i := range budgets {
		b := &budgets[i]
		responses = append(responses, toBudgetResponse(b,
			departmentNames[b.DepartmentID], classifierNames[b.ClassifierID], unitNames[b.BusinessUnitID]))
	}
	return responses, total, nil
}

func (s *BudgetService) dimensionNames(ctx context.Context, budget *finance.Budget) (string, string, string) {
	departmentName := ""
	if department, err := s.departmentRepo.FindByID(ctx, budget.DepartmentID); err == nil {
		departmentName = department.Name
	}
	classifierName := ""
	if classifier, err := s.classifierRepo.FindByID(ctx, budget.ClassifierID); err == nil {
		classifierName = classifier.Name
	}
	unitName := ""
	if unit, err := s.unitRepo.FindByID(ctx, budget.BusinessUnitID); err == nil {
		unitName = unit.Name
	}
	return departmentName, classifierName, unitName
}

func (s *BudgetService) batchDimensionNames(ctx context.Context, budgets []finance.Budget) (map[uuid.UUID]string, map[uuid.UUID]string, map[uuid.UUID]string, error) {
	departmentIDs := make([]uuid.UUID, 0)
	classifierIDs := make([]uuid.UUID, 0)
	unitIDs := make([]uuid.UUID, 0)
	seenDept := make(map[uuid.UUID]bool)
	seenClsf := make(map[uuid.UUID]bool)
	seenUnit := make(map[uuid.UUID]bool)
	for i := range budgets {
		if !seenDept[budgets[i].DepartmentID] {
			seenDept[budgets[i].DepartmentID] = true
			departmentIDs = append(departmentIDs, budgets[i].DepartmentID)
		}
		if !seenClsf[budgets[i].ClassifierID] {
			seenClsf[budgets[i].ClassifierID] = true
			classifierIDs = append(classifierIDs, budgets[i].ClassifierID)
		}
		if !seenUnit[budgets[i].BusinessUnitID] {
			seenUnit[budgets[i].BusinessUnitID] = true
			unitIDs = append(unitIDs, budgets[i].BusinessUnitID)
		}
	}

	departmentNames := map[uuid.UUID]string{}
	if len(departmentIDs) > 0 {
		departments, err := s.departmentRepo.FindByIDs(ctx, departmentIDs)
		if err != nil {
			return nil, nil, nil, err
		}
		for i := range departments {
			departmentNames[departments[i].ID] = departments[i].Name
		}
	}

	classifierNames := map[uuid.UUID]string{}
	if len(classifierIDs) > 0 {
		classifiers, err := s.classifierRepo.FindByIDs(ctx, classifierIDs)
		if err != nil {
			return nil, nil, nil, err
		}
		for i := range classifiers {
			classifierNames[classifiers[i].ID] = classifiers[i].Name
		}
	}

	unitNames := map[uuid.UUID]string{}
	if len(unitIDs) > 0 {
		units, err := s.unitRepo.FindByIDs(ctx, unitIDs)
		if err != nil {
			return nil, nil, nil, err
		}
		for i := range units {
			unitNames[units[i].ID] = units[i].Name
		}
	}

	return departmentNames, classifierNames, unitNames, nil
}
