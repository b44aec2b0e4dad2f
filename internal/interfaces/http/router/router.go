package router

import (
	"github.com/gin-gonic/gin"
	"github.com/procure/backend/internal/infrastructure/auth"
	"github.com/procure/backend/internal/interfaces/http/handler"
	"github.com/procure/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// Handlers holds every HTTP handler the router wires up
type Handlers struct {
	Auth            *handler.AuthHandler
	Classifier      *handler.ClassifierHandler
	Article         *handler.ArticleHandler
	Supplier        *handler.SupplierHandler
	BusinessUnit    *handler.BusinessUnitHandler
	Department      *handler.DepartmentHandler
	Profile         *handler.ProfileHandler
	Permission      *handler.PermissionHandler
	Requisition     *handler.RequisitionHandler
	Quotation       *handler.QuotationHandler
	PurchaseOrder   *handler.PurchaseOrderHandler
	PaymentSchedule *handler.PaymentScheduleHandler
	Budget          *handler.BudgetHandler
	System          *handler.SystemHandler
}

// Config carries the router dependencies
type Config struct {
	Handlers   Handlers
	JWTService *auth.JWTService
	Authorizer middleware.Authorizer
	Logger     *zap.Logger
}

// Setup registers all routes on the engine. Everything under /api/v1 is
// JWT protected except the auth and health endpoints.
func Setup(engine *gin.Engine, cfg Config) {
	h := cfg.Handlers

	engine.GET("/health", h.System.Health)

	jwtConfig := middleware.DefaultJWTConfig(cfg.JWTService)
	jwtConfig.Logger = cfg.Logger

	api := engine.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	api.GET("/health", h.System.Health)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", h.Auth.Login)
		authGroup.POST("/refresh", h.Auth.Refresh)
	}

	catalog := api.Group("/catalog")
	{
		catalog.POST("/classifiers", h.Classifier.Create)
		catalog.GET("/classifiers", h.Classifier.List)
		catalog.GET("/classifiers/:id", h.Classifier.GetByID)

		catalog.POST("/articles", h.Article.Create)
		catalog.GET("/articles", h.Article.List)
		catalog.GET("/articles/:id", h.Article.GetByID)
	}

	partner := api.Group("/partner")
	{
		partner.POST("/suppliers", h.Supplier.Create)
		partner.GET("/suppliers", h.Supplier.List)
		partner.GET("/suppliers/:id", h.Supplier.GetByID)

		partner.POST("/business-units", h.BusinessUnit.Create)
		partner.GET("/business-units", h.BusinessUnit.List)
		partner.GET("/business-units/:id", h.BusinessUnit.GetByID)
	}

	identity := api.Group("/identity")
	{
		identity.POST("/departments", h.Department.Create)
		identity.GET("/departments", h.Department.List)
		identity.GET("/departments/:id", h.Department.GetByID)

		identity.POST("/profiles", h.Profile.Create)
		identity.GET("/profiles", h.Profile.List)
		identity.GET("/profiles/:id", h.Profile.GetByID)

		identity.POST("/permissions", h.Permission.Grant)
		identity.GET("/permissions", h.Permission.List)
		identity.POST("/user-roles", h.Permission.AssignRole)
		identity.GET("/users/:user_id/roles", h.Permission.ListUserRoles)
		identity.POST("/authorize", h.Permission.Authorize)
		identity.GET("/protected", middleware.PermissionGuard(cfg.Authorizer), h.Permission.Protected)
	}

	procurement := api.Group("/procurement")
	{
		procurement.POST("/requisitions", h.Requisition.Create)
		procurement.GET("/requisitions", h.Requisition.List)
		procurement.GET("/requisitions/:id", h.Requisition.GetByID)
		procurement.POST("/requisitions/:id/send-to-review", h.Requisition.SendToReview)
		procurement.POST("/requisitions/:id/approve", h.Requisition.Approve)
		procurement.POST("/requisitions/:id/reject", h.Requisition.Reject)

		procurement.POST("/quotations", h.Quotation.Create)
		procurement.GET("/quotations", h.Quotation.List)
		procurement.GET("/quotations/:id", h.Quotation.GetByID)
		procurement.POST("/quotations/:id/suppliers", h.Quotation.AddSupplier)
		procurement.PUT("/quotations/:id/suppliers/:supplier_id/quotes", h.Quotation.LoadSupplierQuotes)
		procurement.GET("/quotations/:id/comparison", h.Quotation.Comparison)
		procurement.POST("/quotations/:id/approve", h.Quotation.Approve)
		procurement.POST("/quotations/:id/reject", h.Quotation.Reject)
	}

	trade := api.Group("/trade")
	{
		trade.POST("/quotations/:id/orders", h.PurchaseOrder.Generate)
		trade.GET("/quotations/:id/orders", h.PurchaseOrder.ListByQuotation)
		trade.GET("/orders", h.PurchaseOrder.List)
		trade.GET("/orders/:id", h.PurchaseOrder.GetByID)
		trade.POST("/orders/:id/send-to-review", h.PurchaseOrder.SendToReview)
		trade.POST("/orders/:id/approve", h.PurchaseOrder.Approve)
		trade.POST("/orders/:id/reject", h.PurchaseOrder.Reject)
	}

	finance := api.Group("/finance")
	{
		finance.POST("/payment-schedules", h.PaymentSchedule.Create)
		finance.GET("/payment-schedules", h.PaymentSchedule.List)
		finance.GET("/payment-schedules/:id", h.PaymentSchedule.GetByID)
		finance.POST("/payment-schedules/:id/approve-first", h.PaymentSchedule.ApproveFirst)
		finance.POST("/payment-schedules/:id/approve-second", h.PaymentSchedule.ApproveSecond)
		finance.GET("/orders/:id/payment-schedule", h.PaymentSchedule.GetByPurchaseOrder)
		finance.POST("/payment-details/:detail_id/pay", h.PaymentSchedule.MarkDetailPaid)

		finance.POST("/budgets", h.Budget.Create)
		finance.GET("/budgets", h.Budget.List)
		finance.GET("/budgets/:id", h.Budget.GetByID)
		finance.PUT("/budgets/:id", h.Budget.Update)
		finance.DELETE("/budgets/:id", h.Budget.Delete)
	}

	system := api.Group("/system")
	{
		system.GET("/info", h.System.Info)
	}
}
