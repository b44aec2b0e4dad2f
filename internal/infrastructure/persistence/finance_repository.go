package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/procure/backend/internal/domain/finance"
	"github.com/procure/backend/internal/domain/shared"
)

// GormPaymentScheduleRepository implements PaymentScheduleRepository using GORM
type GormPaymentScheduleRepository struct {
	db *gorm.DB
}

var _ finance.PaymentScheduleRepository = (*GormPaymentScheduleRepository)(nil)

// NewGormPaymentScheduleRepository creates a new GormPaymentScheduleRepository
func NewGormPaymentScheduleRepository(db *gorm.DB) *GormPaymentScheduleRepository {
	return &GormPaymentScheduleRepository{db: db}
}

// FindByID finds a schedule with its details
func (r *GormPaymentScheduleRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.PaymentSchedule, error) {
	var schedule finance.PaymentSchedule
	if err := r.preloadDetails(r.db.WithContext(ctx)).
		First(&schedule, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &schedule, nil
}

// FindByPurchaseOrderID finds the schedule for a purchase order
func (r *GormPaymentScheduleRepository) FindByPurchaseOrderID(ctx context.Context, purchaseOrderID uuid.UUID) (*finance.PaymentSchedule, error) {
	var schedule finance.PaymentSchedule
	if err := r.preloadDetails(r.db.WithContext(ctx)).
		First(&schedule, "purchase_order_id = ?", purchaseOrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &schedule, nil
}

// ExistsByPurchaseOrderID reports whether a schedule exists for the order
func (r *GormPaymentScheduleRepository) ExistsByPurchaseOrderID(ctx context.Context, purchaseOrderID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&finance.PaymentSchedule{}).
		Where("purchase_order_id = ?", purchaseOrderID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindByDetailID finds the schedule owning a detail
func (r *GormPaymentScheduleRepository) FindByDetailID(ctx context.Context, detailID uuid.UUID) (*finance.PaymentSchedule, error) {
	var detail finance.PaymentDetail
	if err := r.db.WithContext(ctx).First(&detail, "id = ?", detailID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return r.FindByID(ctx, detail.ScheduleID)
}

// FindAll finds all schedules matching the filter
func (r *GormPaymentScheduleRepository) FindAll(ctx context.Context, filter shared.Filter) ([]finance.PaymentSchedule, error) {
	var schedules []finance.PaymentSchedule
	query := r.applyFilter(r.db.WithContext(ctx).Model(&finance.PaymentSchedule{}), filter)
	query = applySort(query, filter, scheduleSortColumns, "created_at")
	query = applyPagination(query, filter)

	if err := r.preloadDetails(query).Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

// Save creates or updates a schedule with its details
func (r *GormPaymentScheduleRepository) Save(ctx context.Context, schedule *finance.PaymentSchedule) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(schedule).Error
}

// Delete deletes a schedule
func (r *GormPaymentScheduleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&finance.PaymentSchedule{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts schedules matching the filter
func (r *GormPaymentScheduleRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&finance.PaymentSchedule{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormPaymentScheduleRepository) preloadDetails(query *gorm.DB) *gorm.DB {
	return query.Preload("Details", func(db *gorm.DB) *gorm.DB {
		return db.Order("payment_details.due_date ASC, payment_details.created_at ASC")
	})
}

func (r *GormPaymentScheduleRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "purchase_order_id":
			query = query.Where("purchase_order_id = ?", value)
		}
	}
	return query
}

// GormBudgetRepository implements BudgetRepository using GORM
type GormBudgetRepository struct {
	db *gorm.DB
}

var _ finance.BudgetRepository = (*GormBudgetRepository)(nil)

// NewGormBudgetRepository creates a new GormBudgetRepository
func NewGormBudgetRepository(db *gorm.DB) *GormBudgetRepository {
	return &GormBudgetRepository{db: db}
}

// FindByID finds a budget by its ID
func (r *GormBudgetRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Budget, error) {
	var budget finance.Budget
	if err := r.db.WithContext(ctx).First(&budget, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &budget, nil
}

// FindByDimensions finds the budget for an exact dimension combination
func (r *GormBudgetRepository) FindByDimensions(ctx context.Context, departmentID, classifierID, businessUnitID uuid.UUID, period string) (*finance.Budget, error) {
	var budget finance.Budget
	if err := r.db.WithContext(ctx).
		Where("department_id = ? AND classifier_id = ? AND business_unit_id = ? AND period = ?",
			departmentID, classifierID, businessUnitID, period).
		First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &budget, nil
}

// FindAll finds all budgets matching the filter
func (r *GormBudgetRepository) FindAll(ctx context.Context, filter shared.Filter) ([]finance.Budget, error) {
	var budgets []finance.Budget
	query := r.applyFilter(r.db.WithContext(ctx).Model(&finance.Budget{}), filter)
	query = applySort(query, filter, budgetSortColumns, "created_at")
	query = applyPagination(query, filter)

	if err := query.Find(&budgets).Error; err != nil {
		return nil, err
	}
	return budgets, nil
}

// Save creates or updates a budget
func (r *GormBudgetRepository) Save(ctx context.Context, budget *finance.Budget) error {
	return r.db.WithContext(ctx).Save(budget).Error
}

// Delete deletes a budget
func (r *GormBudgetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&finance.Budget{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts budgets matching the filter
func (r *GormBudgetRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&finance.Budget{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormBudgetRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "department_id":
			query = query.Where("department_id = ?", value)
		case "classifier_id":
			query = query.Where("classifier_id = ?", value)
		case "business_unit_id":
			query = query.Where("business_unit_id = ?", value)
		case "period":
			query = query.Where("period = ?", value)
		}
	}
	return query
}
