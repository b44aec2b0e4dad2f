package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/procure/backend/internal/domain/procurement"
	"github.com/procure/backend/internal/domain/shared"
)

// GormRequisitionRepository implements RequisitionRepository using GORM
type GormRequisitionRepository struct {
	db *gorm.DB
}

var _ procurement.RequisitionRepository = (*GormRequisitionRepository)(nil)

// NewGormRequisitionRepository creates a new GormRequisitionRepository
func NewGormRequisitionRepository(db *gorm.DB) *GormRequisitionRepository {
	return &GormRequisitionRepository{db: db}
}

// FindByID finds a requisition with its items
func (r *GormRequisitionRepository) FindByID(ctx context.Context, id uuid.UUID) (*procurement.Requisition, error) {
	var requisition procurement.Requisition
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("requisition_items.created_at ASC")
		}).
		First(&requisition, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &requisition, nil
}

// FindAll finds all requisitions matching the filter
func (r *GormRequisitionRepository) FindAll(ctx context.Context, filter shared.Filter) ([]procurement.Requisition, error) {
	var requisitions []procurement.Requisition
	query := r.applyFilter(r.db.WithContext(ctx).Model(&procurement.Requisition{}), filter)
	query = applySort(query, filter, requisitionSortColumns, "created_at")
	query = applyPagination(query, filter)

	if err := query.Preload("Items").Find(&requisitions).Error; err != nil {
		return nil, err
	}
	return requisitions, nil
}

// FindByStatus finds requisitions in the given status
func (r *GormRequisitionRepository) FindByStatus(ctx context.Context, status procurement.RequisitionStatus, filter shared.Filter) ([]procurement.Requisition, error) {
	var requisitions []procurement.Requisition
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&procurement.Requisition{}).Where("status = ?", status),
		filter,
	)
	query = applySort(query, filter, requisitionSortColumns, "created_at")
	query = applyPagination(query, filter)

	if err := query.Preload("Items").Find(&requisitions).Error; err != nil {
		return nil, err
	}
	return requisitions, nil
}

// Save creates or updates a requisition with its items
func (r *GormRequisitionRepository) Save(ctx context.Context, requisition *procurement.Requisition) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(requisition).Error
}

// Delete deletes a requisition
func (r *GormRequisitionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&procurement.Requisition{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts requisitions matching the filter
func (r *GormRequisitionRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&procurement.Requisition{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormRequisitionRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("description ILIKE ?", "%"+filter.Search+"%")
	}
	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "department_id":
			query = query.Where("department_id = ?", value)
		case "classifier_id":
			query = query.Where("classifier_id = ?", value)
		}
	}
	return query
}

// GormQuotationRepository implements QuotationRepository using GORM
type GormQuotationRepository struct {
	db *gorm.DB
}

var _ procurement.QuotationRepository = (*GormQuotationRepository)(nil)

// NewGormQuotationRepository creates a new GormQuotationRepository
func NewGormQuotationRepository(db *gorm.DB) *GormQuotationRepository {
	return &GormQuotationRepository{db: db}
}

// FindByID finds a quotation with its suppliers and their items
func (r *GormQuotationRepository) FindByID(ctx context.Context, id uuid.UUID) (*procurement.Quotation, error) {
	var quotation procurement.Quotation
	if err := r.preloadSuppliers(r.db.WithContext(ctx)).
		First(&quotation, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &quotation, nil
}

// FindByRequisitionID finds the quotation opened for a requisition
func (r *GormQuotationRepository) FindByRequisitionID(ctx context.Context, requisitionID uuid.UUID) (*procurement.Quotation, error) {
	var quotation procurement.Quotation
	if err := r.preloadSuppliers(r.db.WithContext(ctx)).
		First(&quotation, "requisition_id = ?", requisitionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &quotation, nil
}

// ExistsByRequisitionID reports whether a quotation exists for a requisition
func (r *GormQuotationRepository) ExistsByRequisitionID(ctx context.Context, requisitionID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&procurement.Quotation{}).
		Where("requisition_id = ?", requisitionID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindAll finds all quotations matching the filter
func (r *GormQuotationRepository) FindAll(ctx context.Context, filter shared.Filter) ([]procurement.Quotation, error) {
	var quotations []procurement.Quotation
	query := r.applyFilter(r.db.WithContext(ctx).Model(&procurement.Quotation{}), filter)
	query = applySort(query, filter, quotationSortColumns, "created_at")
	query = applyPagination(query, filter)

	if err := r.preloadSuppliers(query).Find(&quotations).Error; err != nil {
		return nil, err
	}
	return quotations, nil
}

// Save creates or updates a quotation with its suppliers and items
func (r *GormQuotationRepository) Save(ctx context.Context, quotation *procurement.Quotation) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(quotation).Error
}

// Delete deletes a quotation
func (r *GormQuotationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&procurement.Quotation{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts quotations matching the filter
func (r *GormQuotationRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&procurement.Quotation{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// preloadSuppliers loads supplier links in invitation order and their items
// in quote order
func (r *GormQuotationRepository) preloadSuppliers(query *gorm.DB) *gorm.DB {
	return query.
		Preload("Suppliers", func(db *gorm.DB) *gorm.DB {
			return db.Order("quotation_suppliers.created_at ASC")
		}).
		Preload("Suppliers.Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("quotation_supplier_items.created_at ASC")
		})
}

func (r *GormQuotationRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "requisition_id":
			query = query.Where("requisition_id = ?", value)
		}
	}
	return query
}
