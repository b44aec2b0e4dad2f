package persistence

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/procure/backend/internal/domain/catalog"
	"github.com/procure/backend/internal/domain/finance"
	"github.com/procure/backend/internal/domain/identity"
	"github.com/procure/backend/internal/domain/partner"
	"github.com/procure/backend/internal/domain/procurement"
	"github.com/procure/backend/internal/domain/trade"
)

// newTestDB opens an isolated in-memory database with the full schema.
// A single connection keeps every query on the same in-memory instance.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&catalog.Classifier{},
		&catalog.Article{},
		&partner.Supplier{},
		&partner.BusinessUnit{},
		&identity.Department{},
		&identity.Profile{},
		&identity.UserRole{},
		&identity.Permission{},
		&procurement.Requisition{},
		&procurement.RequisitionItem{},
		&procurement.Quotation{},
		&procurement.QuotationSupplier{},
		&procurement.QuotationSupplierItem{},
		&trade.PurchaseOrder{},
		&trade.PurchaseOrderItem{},
		&finance.PaymentSchedule{},
		&finance.PaymentDetail{},
		&finance.Budget{},
	))

	return db
}
