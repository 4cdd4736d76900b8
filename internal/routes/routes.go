package routes

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/storefront-api/internal/audit"
	"github.com/BruksfildServices01/storefront-api/internal/auth"
	"github.com/BruksfildServices01/storefront-api/internal/config"
	"github.com/BruksfildServices01/storefront-api/internal/domain/account"
	"github.com/BruksfildServices01/storefront-api/internal/domain/customer"
	"github.com/BruksfildServices01/storefront-api/internal/domain/order"
	"github.com/BruksfildServices01/storefront-api/internal/domain/principal"
	"github.com/BruksfildServices01/storefront-api/internal/domain/product"
	"github.com/BruksfildServices01/storefront-api/internal/handlers"
	"github.com/BruksfildServices01/storefront-api/internal/middleware"
	"github.com/BruksfildServices01/storefront-api/internal/throttle"
	ucAuth "github.com/BruksfildServices01/storefront-api/internal/usecase/auth"
	"github.com/BruksfildServices01/storefront-api/internal/validators"
)

// Dependencies are the singletons the router is built from.
type Dependencies struct {
	Config *config.Config
	Logger *slog.Logger

	Accounts  account.Store
	Customers customer.Repository
	Products  product.Repository
	Orders    order.Repository
	AuditLogs audit.Store

	Hasher *auth.PasswordHasher
	Tokens *auth.TokenManager
	Guard  throttle.Guard
	Audit  audit.Recorder
}

// NewRouter builds the engine with the global middleware and every route.
func NewRouter(deps Dependencies) *gin.Engine {
	r := gin.New()

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.SecureHeaders(deps.Config.IsProduction(), deps.Logger))
	r.Use(middleware.CORSMiddleware(deps.Config.CORSAllowedOrigins...))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	RegisterRoutes(r, deps)
	return r
}

func RegisterRoutes(r *gin.Engine, deps Dependencies) {
	validators.Register()

	rec := deps.Audit
	if rec == nil {
		rec = audit.Discard{}
	}

	// ======================================================
	// USE CASES
	// ======================================================
	registerUC := ucAuth.NewRegister(deps.Accounts, deps.Hasher, deps.Tokens, rec)
	loginUC := ucAuth.NewLogin(deps.Accounts, deps.Hasher, deps.Tokens, deps.Guard, deps.Logger)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(registerUC, loginUC, deps.Logger)
	meHandler := handlers.NewMeHandler()
	productHandler := handlers.NewProductHandler(deps.Products, rec, deps.Logger)
	customerHandler := handlers.NewCustomerHandler(deps.Customers, deps.Orders, deps.Hasher, rec, deps.Logger)
	orderHandler := handlers.NewOrderHandler(deps.Orders, rec, deps.Logger)
	auditLogsHandler := handlers.NewAuditLogsHandler(deps.AuditLogs, deps.Logger)

	authenticated := middleware.AuthMiddleware(deps.Tokens, deps.Logger)
	staffOrAdmin := middleware.StaffOrAdmin()
	adminOnly := middleware.AdminOnly()
	selfOrStaff := middleware.SelfOrRole(principal.RoleCustomer, "id", principal.RoleStaff, principal.RoleAdmin)

	api := r.Group("/api/v1")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		authAPI := api.Group("/auth")
		for _, kind := range []principal.Role{principal.RoleCustomer, principal.RoleStaff, principal.RoleAdmin} {
			authAPI.POST("/"+string(kind)+"/register", authHandler.Register(kind))
			authAPI.POST("/"+string(kind)+"/login", authHandler.Login(kind))
		}
		authAPI.GET("/me", authenticated, meHandler.GetMe)

		// ------------------------------
		// PRODUCTS
		// ------------------------------
		products := api.Group("/products")
		{
			products.GET("", authenticated, staffOrAdmin, productHandler.List)
			products.GET("/:id", productHandler.Get)
			products.GET("/o/:field/:dir", productHandler.SortBy)
			products.GET("/sort/two/:first/:second", productHandler.SortByTwo)
			products.POST("", authenticated, adminOnly, productHandler.Create)
			products.PUT("/:id", authenticated, adminOnly, productHandler.Update)
			products.DELETE("/:id", authenticated, adminOnly, productHandler.Delete)
		}

		// ------------------------------
		// CUSTOMERS
		// ------------------------------
		customers := api.Group("/customers", authenticated)
		{
			customers.GET("", staffOrAdmin, customerHandler.List)
			customers.POST("", staffOrAdmin, customerHandler.Create)
			customers.GET("/:id", selfOrStaff, customerHandler.Get)
			customers.PUT("/:id", selfOrStaff, customerHandler.Update)
			customers.DELETE("/:id", adminOnly, customerHandler.Delete)
			customers.GET("/:id/orders", selfOrStaff, customerHandler.ListOrders)
		}

		// ------------------------------
		// ORDERS
		// ------------------------------
		orders := api.Group("/orders", authenticated)
		{
			orders.GET("", staffOrAdmin, orderHandler.List)
			orders.GET("/:id", staffOrAdmin, orderHandler.Get)
			orders.GET("/o/:field/:dir", staffOrAdmin, orderHandler.SortBy)
			orders.GET("/sort/two/:first/:second", staffOrAdmin, orderHandler.SortByTwo)
			orders.POST("", orderHandler.Create)
			orders.PUT("/:id", staffOrAdmin, orderHandler.Update)
			orders.DELETE("/:id", adminOnly, orderHandler.Delete)
		}

		api.GET("/audit-logs", authenticated, adminOnly, auditLogsHandler.List)
	}
}
