package persistence

import (
	"strings"

	"gorm.io/gorm"

	"github.com/procure/backend/internal/domain/shared"
)

// sortDirection normalizes the sort direction to ASC or DESC.
// ASC is the default for invalid or empty input.
func sortDirection(orderDir string) string {
	if strings.EqualFold(strings.TrimSpace(orderDir), "desc") {
		return "DESC"
	}
	return "ASC"
}

// sortColumn validates the requested column against a whitelist.
// Unknown columns fall back to defaultColumn to keep user input out of
// the ORDER BY clause.
func sortColumn(requested string, allowed map[string]bool, defaultColumn string) string {
	trimmed := strings.TrimSpace(requested)
	if trimmed != "" && allowed[trimmed] {
		return trimmed
	}
	return defaultColumn
}

// applySort orders the query by the validated filter column
func applySort(query *gorm.DB, filter shared.Filter, allowed map[string]bool, defaultColumn string) *gorm.DB {
	return query.Order(sortColumn(filter.OrderBy, allowed, defaultColumn) + " " + sortDirection(filter.OrderDir))
}

// applyPagination applies page-based offset and limit
func applyPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.Limit())
	}
	return query
}

// Allowed sort columns per entity

var catalogSortColumns = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
}

var articleSortColumns = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"name":          true,
	"classifier_id": true,
}

var partnerSortColumns = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
}

var identitySortColumns = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
}

var userRoleSortColumns = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"user_id":    true,
	"role":       true,
}

var permissionSortColumns = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"role":          true,
	"profile_id":    true,
	"department_id": true,
	"classifier_id": true,
}

var requisitionSortColumns = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"status":        true,
	"department_id": true,
	"classifier_id": true,
}

var quotationSortColumns = map[string]bool{
	"id":             true,
	"created_at":     true,
	"updated_at":     true,
	"status":         true,
	"requisition_id": true,
}

var purchaseOrderSortColumns = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"status":       true,
	"supplier_id":  true,
	"quotation_id": true,
}

var scheduleSortColumns = map[string]bool{
	"id":                true,
	"created_at":        true,
	"updated_at":        true,
	"status":            true,
	"purchase_order_id": true,
}

var budgetSortColumns = map[string]bool{
	"id":               true,
	"created_at":       true,
	"updated_at":       true,
	"period":           true,
	"amount":           true,
	"department_id":    true,
	"classifier_id":    true,
	"business_unit_id": true,
}
