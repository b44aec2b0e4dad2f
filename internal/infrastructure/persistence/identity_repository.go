package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/procure/backend/internal/domain/identity"
	"github.com/procure/backend/internal/domain/shared"
)

// GormDepartmentRepository implements DepartmentRepository using GORM
type GormDepartmentRepository struct {
	db *gorm.DB
}

var _ identity.DepartmentRepository = (*GormDepartmentRepository)(nil)

// NewGormDepartmentRepository creates a new GormDepartmentRepository
func NewGormDepartmentRepository(db *gorm.DB) *GormDepartmentRepository {
	return &GormDepartmentRepository{db: db}
}

// FindByID finds a department by its ID
func (r *GormDepartmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Department, error) {
	var department identity.Department
	if err := r.db.WithContext(ctx).First(&department, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &department, nil
}

// FindByIDs finds multiple departments by their IDs
func (r *GormDepartmentRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]identity.Department, error) {
	if len(ids) == 0 {
		return []identity.Department{}, nil
	}
	var departments []identity.Department
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&departments).Error; err != nil {
		return nil, err
	}
	return departments, nil
}

// FindByName finds a department by its exact name
func (r *GormDepartmentRepository) FindByName(ctx context.Context, name string) (*identity.Department, error) {
	var department identity.Department
	if err := r.db.WithContext(ctx).First(&department, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &department, nil
}

// FindAll finds all departments matching the filter
func (r *GormDepartmentRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.Department, error) {
	var departments []identity.Department
	query := searchByName(r.db.WithContext(ctx).Model(&identity.Department{}), filter)
	query = applySort(query, filter, identitySortColumns, "name")
	query = applyPagination(query, filter)

	if err := query.Find(&departments).Error; err != nil {
		return nil, err
	}
	return departments, nil
}

// Save creates or updates a department
func (r *GormDepartmentRepository) Save(ctx context.Context, department *identity.Department) error {
	return r.db.WithContext(ctx).Save(department).Error
}

// Delete deletes a department
func (r *GormDepartmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&identity.Department{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts departments matching the filter
func (r *GormDepartmentRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := searchByName(r.db.WithContext(ctx).Model(&identity.Department{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GormProfileRepository implements ProfileRepository using GORM
type GormProfileRepository struct {
	db *gorm.DB
}

var _ identity.ProfileRepository = (*GormProfileRepository)(nil)

// NewGormProfileRepository creates a new GormProfileRepository
func NewGormProfileRepository(db *gorm.DB) *GormProfileRepository {
	return &GormProfileRepository{db: db}
}

// FindByID finds a profile by its ID
func (r *GormProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Profile, error) {
	var profile identity.Profile
	if err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// FindByIDs finds multiple profiles by their IDs
func (r *GormProfileRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]identity.Profile, error) {
	if len(ids) == 0 {
		return []identity.Profile{}, nil
	}
	var profiles []identity.Profile
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

// FindByName finds a profile by its exact name
func (r *GormProfileRepository) FindByName(ctx context.Context, name string) (*identity.Profile, error) {
	var profile identity.Profile
	if err := r.db.WithContext(ctx).First(&profile, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// FindAll finds all profiles matching the filter
func (r *GormProfileRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.Profile, error) {
	var profiles []identity.Profile
	query := searchByName(r.db.WithContext(ctx).Model(&identity.Profile{}), filter)
	query = applySort(query, filter, identitySortColumns, "name")
	query = applyPagination(query, filter)

	if err := query.Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

// Save creates or updates a profile
func (r *GormProfileRepository) Save(ctx context.Context, profile *identity.Profile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

// Delete deletes a profile
func (r *GormProfileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&identity.Profile{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts profiles matching the filter
func (r *GormProfileRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := searchByName(r.db.WithContext(ctx).Model(&identity.Profile{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GormUserRoleRepository implements UserRoleRepository using GORM
type GormUserRoleRepository struct {
	db *gorm.DB
}

var _ identity.UserRoleRepository = (*GormUserRoleRepository)(nil)

// NewGormUserRoleRepository creates a new GormUserRoleRepository
func NewGormUserRoleRepository(db *gorm.DB) *GormUserRoleRepository {
	return &GormUserRoleRepository{db: db}
}

// FindByID finds a user role by its ID
func (r *GormUserRoleRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.UserRole, error) {
	var role identity.UserRole
	if err := r.db.WithContext(ctx).First(&role, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &role, nil
}

// FindByUser finds all role assignments for a user
func (r *GormUserRoleRepository) FindByUser(ctx context.Context, userID string) ([]identity.UserRole, error) {
	var roles []identity.UserRole
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

// FindByUserAndRole finds a specific assignment
func (r *GormUserRoleRepository) FindByUserAndRole(ctx context.Context, userID, roleName string) (*identity.UserRole, error) {
	var role identity.UserRole
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND role = ?", userID, roleName).
		First(&role).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &role, nil
}

// FindAll finds all user roles matching the filter
func (r *GormUserRoleRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.UserRole, error) {
	var roles []identity.UserRole
	query := r.db.WithContext(ctx).Model(&identity.UserRole{})
	if filter.Search != "" {
		query = query.Where("user_id ILIKE ?", "%"+filter.Search+"%")
	}
	for key, value := range filter.Filters {
		switch key {
		case "user_id":
			query = query.Where("user_id = ?", value)
		case "role":
			query = query.Where("role = ?", value)
		}
	}
	query = applySort(query, filter, userRoleSortColumns, "created_at")
	query = applyPagination(query, filter)

	if err := query.Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

// Save creates or updates a user role
func (r *GormUserRoleRepository) Save(ctx context.Context, role *identity.UserRole) error {
	return r.db.WithContext(ctx).Save(role).Error
}

// Delete deletes a user role
func (r *GormUserRoleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&identity.UserRole{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// GormPermissionRepository implements PermissionRepository using GORM
type GormPermissionRepository struct {
	db *gorm.DB
}

var _ identity.PermissionRepository = (*GormPermissionRepository)(nil)

// NewGormPermissionRepository creates a new GormPermissionRepository
func NewGormPermissionRepository(db *gorm.DB) *GormPermissionRepository {
	return &GormPermissionRepository{db: db}
}

// FindByID finds a permission by its ID
func (r *GormPermissionRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Permission, error) {
	var permission identity.Permission
	if err := r.db.WithContext(ctx).First(&permission, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &permission, nil
}

// FindByGrant finds the permission for an exact role and triple
func (r *GormPermissionRepository) FindByGrant(ctx context.Context, role string, profileID, departmentID, classifierID uuid.UUID) (*identity.Permission, error) {
	var permission identity.Permission
	if err := r.db.WithContext(ctx).
		Where("role = ? AND profile_id = ? AND department_id = ? AND classifier_id = ?", role, profileID, departmentID, classifierID).
		First(&permission).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &permission, nil
}

// FindByRolesAndTriple finds a permission whose role is in roles and whose
// triple matches exactly
func (r *GormPermissionRepository) FindByRolesAndTriple(ctx context.Context, roles []string, profileID, departmentID, classifierID uuid.UUID) (*identity.Permission, error) {
	if len(roles) == 0 {
		return nil, shared.ErrNotFound
	}
	var permission identity.Permission
	if err := r.db.WithContext(ctx).
		Where("role IN ? AND profile_id = ? AND department_id = ? AND classifier_id = ?", roles, profileID, departmentID, classifierID).
		First(&permission).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &permission, nil
}

// FindAll finds all permissions matching the filter
func (r *GormPermissionRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.Permission, error) {
	var permissions []identity.Permission
	query := r.db.WithContext(ctx).Model(&identity.Permission{})
	for key, value := range filter.Filters {
		switch key {
		case "role":
			query = query.Where("role = ?", value)
		case "profile_id":
			query = query.Where("profile_id = ?", value)
		case "department_id":
			query = query.Where("department_id = ?", value)
		case "classifier_id":
			query = query.Where("classifier_id = ?", value)
		}
	}
	query = applySort(query, filter, permissionSortColumns, "created_at")
	query = applyPagination(query, filter)

	if err := query.Find(&permissions).Error; err != nil {
		return nil, err
	}
	return permissions, nil
}

// Save creates or updates a permission
func (r *GormPermissionRepository) Save(ctx context.Context, permission *identity.Permission) error {
	return r.db.WithContext(ctx).Save(permission).Error
}

// Delete deletes a permission
func (r *GormPermissionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&identity.Permission{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// searchByName applies a case-insensitive name search shared by the
// name-only lookup entities
func searchByName(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	return query
}
