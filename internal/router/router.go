package router

import (
	"time"

	"inventory/internal/config"
	"inventory/internal/handler"
	"inventory/internal/infra"
	"inventory/internal/middleware"
	"inventory/internal/repository"
	"inventory/internal/service"
	"inventory/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis.
// rdb may be nil; the analytics cache and low-stock alert queue are then
// left out.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Both /products and /products/ are registered explicitly.
	r.RedirectTrailingSlash = false

	// ── Optional Redis-backed collaborators ──────────────────────────────────
	var (
		cache    service.AnalyticsCache
		notifier service.StockAlertNotifier
		redisMW  []gin.HandlerFunc
	)
	if rdb != nil {
		c := infra.NewAnalyticsCache(rdb, cfg.AnalyticsCacheTTL)
		cache = c
		notifier = worker.NewDispatcher(rdb)
		redisMW = append(redisMW, middleware.InvalidateOnWrite(c))
	}

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(cfg.RateLimitPerMinute, time.Minute))
	r.Use(redisMW...)

	// ── Repositories ─────────────────────────────────────────────────────────
	supplierRepo := repository.NewSupplierRepository(db)
	skuRepo := repository.NewSKURepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	supplierSvc := service.NewSupplierService(supplierRepo)
	skuSvc := service.NewSKUService(skuRepo)
	productSvc := service.NewProductService(productRepo)
	orderSvc := service.NewOrderService(orderRepo)
	saleSvc := service.NewSaleService(saleRepo, productRepo, notifier, cfg.LowStockThreshold)
	analyticsSvc := service.NewAnalyticsService(analyticsRepo, cache)
	reportSvc := service.NewReportService(productRepo, analyticsRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	suppliersH := handler.NewSuppliersHandler(supplierSvc)
	skusH := handler.NewSKUsHandler(skuSvc)
	productsH := handler.NewProductsHandler(productSvc)
	ordersH := handler.NewOrdersHandler(orderSvc)
	salesH := handler.NewSalesHandler(saleSvc)
	analyticsH := handler.NewAnalyticsHandler(analyticsSvc)
	reportsH := handler.NewReportsHandler(reportSvc)

	r.GET("/health", handler.Health(db, rdb))

	crud(r, "/products", productsH)
	crud(r, "/skus", skusH)
	crud(r, "/suppliers", suppliersH)
	crud(r, "/orders", ordersH)

	both(r.POST, "/sales", salesH.Record)
	both(r.GET, "/sales/:product_id", salesH.ListByProduct)
	both(r.GET, "/capacity-analytics", analyticsH.Capacity)
	both(r.GET, "/sales-analytics", analyticsH.UnitsSold)
	both(r.GET, "/reports/stock", reportsH.Stock)

	return r
}

type crudHandler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

func crud(r *gin.Engine, base string, h crudHandler) {
	both(r.POST, base, h.Create)
	both(r.GET, base, h.List)
	both(r.GET, base+"/:id", h.Get)
	both(r.PUT, base+"/:id", h.Update)
	both(r.DELETE, base+"/:id", h.Delete)
}

// both registers path with and without a trailing slash.
func both(register func(string, ...gin.HandlerFunc) gin.IRoutes, path string, h gin.HandlerFunc) {
	register(path, h)
	register(path+"/", h)
}
