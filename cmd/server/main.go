package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/procure/backend/internal/application/catalog"
	financeapp "github.com/procure/backend/internal/application/finance"
	identityapp "github.com/procure/backend/internal/application/identity"
	partnerapp "github.com/procure/backend/internal/application/partner"
	procurementapp "github.com/procure/backend/internal/application/procurement"
	tradeapp "github.com/procure/backend/internal/application/trade"
	"github.com/procure/backend/internal/infrastructure/auth"
	"github.com/procure/backend/internal/infrastructure/config"
	"github.com/procure/backend/internal/infrastructure/event"
	"github.com/procure/backend/internal/infrastructure/logger"
	"github.com/procure/backend/internal/infrastructure/persistence"
	"github.com/procure/backend/internal/interfaces/http/handler"
	"github.com/procure/backend/internal/interfaces/http/middleware"
	"github.com/procure/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting procurement backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLogger := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLogger)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", zap.Error(err))
		}
	}()

	// Repositories
	classifierRepo := persistence.NewGormClassifierRepository(db.DB)
	articleRepo := persistence.NewGormArticleRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	unitRepo := persistence.NewGormBusinessUnitRepository(db.DB)
	departmentRepo := persistence.NewGormDepartmentRepository(db.DB)
	profileRepo := persistence.NewGormProfileRepository(db.DB)
	userRoleRepo := persistence.NewGormUserRoleRepository(db.DB)
	permissionRepo := persistence.NewGormPermissionRepository(db.DB)
	requisitionRepo := persistence.NewGormRequisitionRepository(db.DB)
	quotationRepo := persistence.NewGormQuotationRepository(db.DB)
	orderRepo := persistence.NewGormPurchaseOrderRepository(db.DB)
	scheduleRepo := persistence.NewGormPaymentScheduleRepository(db.DB)
	budgetRepo := persistence.NewGormBudgetRepository(db.DB)

	// Event bus with audit trail
	eventBus := event.NewInMemoryEventBus(log)
	auditLogger := event.NewAuditLogger(log)
	eventBus.Subscribe(auditLogger)
	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := eventBus.Stop(stopCtx); err != nil {
			log.Error("Failed to stop event bus", zap.Error(err))
		}
	}()

	// Services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(cfg.Auth.Username, cfg.Auth.Password, cfg.Auth.Role, jwtService)
	classifierService := catalogapp.NewClassifierService(classifierRepo, eventBus)
	articleService := catalogapp.NewArticleService(articleRepo, classifierRepo, eventBus)
	supplierService := partnerapp.NewSupplierService(supplierRepo, eventBus)
	unitService := partnerapp.NewBusinessUnitService(unitRepo, eventBus)
	departmentService := identityapp.NewDepartmentService(departmentRepo, eventBus)
	profileService := identityapp.NewProfileService(profileRepo, eventBus)
	permissionService := identityapp.NewPermissionService(permissionRepo, userRoleRepo, profileRepo, departmentRepo, classifierRepo, eventBus)
	requisitionService := procurementapp.NewRequisitionService(requisitionRepo, departmentRepo, classifierRepo, articleRepo, eventBus)
	quotationService := procurementapp.NewQuotationService(quotationRepo, requisitionRepo, supplierRepo, articleRepo, eventBus)
	orderService := tradeapp.NewPurchaseOrderService(orderRepo, quotationRepo, requisitionRepo, supplierRepo, articleRepo, eventBus)
	scheduleService := financeapp.NewPaymentScheduleService(scheduleRepo, orderRepo, unitRepo, eventBus)
	budgetService := financeapp.NewBudgetService(budgetRepo, departmentRepo, classifierRepo, unitRepo, eventBus)

	// HTTP surface
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Fatal("Failed to set trusted proxies", zap.Error(err))
	}

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}

	engine.Use(
		middleware.RequestID(),
		logger.Recovery(log),
		logger.GinMiddleware(log),
		middleware.Secure(),
		middleware.CORSWithConfig(corsConfig),
		middleware.BodyLimit(cfg.HTTP.MaxBodySize),
	)

	router.Setup(engine, router.Config{
		Handlers: router.Handlers{
			Auth:            handler.NewAuthHandler(authService, jwtService),
			Classifier:      handler.NewClassifierHandler(classifierService),
			Article:         handler.NewArticleHandler(articleService),
			Supplier:        handler.NewSupplierHandler(supplierService),
			BusinessUnit:    handler.NewBusinessUnitHandler(unitService),
			Department:      handler.NewDepartmentHandler(departmentService),
			Profile:         handler.NewProfileHandler(profileService),
			Permission:      handler.NewPermissionHandler(permissionService),
			Requisition:     handler.NewRequisitionHandler(requisitionService),
			Quotation:       handler.NewQuotationHandler(quotationService),
			PurchaseOrder:   handler.NewPurchaseOrderHandler(orderService),
			PaymentSchedule: handler.NewPaymentScheduleHandler(scheduleService),
			Budget:          handler.NewBudgetHandler(budgetService),
			System:          handler.NewSystemHandler(db),
		},
		JWTService: jwtService,
		Authorizer: permissionService,
		Logger:     log,
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}
