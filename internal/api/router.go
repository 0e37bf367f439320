package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"serviciosmarket/core/internal/api/handlers"
	"serviciosmarket/core/internal/api/middleware"
	"serviciosmarket/core/internal/config"
	"serviciosmarket/core/internal/models"
	"serviciosmarket/core/internal/services"
	"serviciosmarket/core/internal/store"
)

// SetupRouter configures and returns the main Gin engine.
func SetupRouter(cfg *config.Config, st *store.Store, rdb *redis.Client) *gin.Engine {
	// Initialize services needed by API handlers HERE
	sessionStore := services.NewRedisSessionStore(rdb)
	authService := services.NewAuthService(sessionStore, cfg)
	marketService := services.NewMarketService(st)
	catalogService := services.NewCatalogService(st)

	r := gin.Default()

	// Initialize Middleware
	rateLimiter := middleware.NewRateLimiterMiddleware(cfg)

	// Apply global middleware first (order matters)
	r.Use(middleware.CORSMiddleware())
	r.Use(rateLimiter.Limit())

	// Initialize handlers
	restAuthHandler := handlers.NewRestAuthHandler(authService)
	restDemandHandler := handlers.NewRestDemandHandler(marketService)
	restQuoteHandler := handlers.NewRestQuoteHandler(marketService)
	restCatalogHandler := handlers.NewRestCatalogHandler(catalogService)

	v1 := r.Group("/v1")
	{
		// Public Routes (Rate limiting already applied globally)
		v1.POST("/auth/login", restAuthHandler.Login)
		v1.GET("/currencies", restCatalogHandler.GetCurrencies)

		v1.GET("/demands", restDemandHandler.ListDemands)
		v1.GET("/demands/:id", restDemandHandler.GetDemand)
		v1.GET("/demands/:id/quotes", restDemandHandler.GetQuotes)
		v1.GET("/demands/:id/comparison", restDemandHandler.Compare)
		v1.GET("/demands/:id/selected", restDemandHandler.GetSelectedQuote)

		v1.GET("/supplies", restCatalogHandler.ListSupplies)
		v1.GET("/supplies/:id", restCatalogHandler.GetSupply)
		v1.GET("/packs", restCatalogHandler.ListPacks)

		v1.GET("/ping", func(c *gin.Context) {
			c.String(http.StatusOK, "pong")
		})

		// Authenticated Routes (already have rate limiting from global middleware)
		authRequired := v1.Group("/")
		authRequired.Use(middleware.AuthMiddleware(cfg.JwtSecret))
		{
			authRequired.POST("/auth/logout", restAuthHandler.Logout)
			authRequired.POST("/auth/switch", restAuthHandler.SwitchUser)
			authRequired.GET("/auth/me", restAuthHandler.Me)
		}

		// Requesters publish demands and pick quotes.
		solicitante := v1.Group("/")
		solicitante.Use(middleware.AuthMiddleware(cfg.JwtSecret), middleware.RoleMiddleware(models.RoleSolicitante))
		{
			solicitante.POST("/demands", restDemandHandler.PublishDemand)
			solicitante.PATCH("/demands/:id", restDemandHandler.UpdateDemand)
			solicitante.POST("/demands/:id/select", restDemandHandler.SelectQuote)
		}

		// Service providers manage their quotes.
		proveedor := v1.Group("/")
		proveedor.Use(middleware.AuthMiddleware(cfg.JwtSecret), middleware.RoleMiddleware(models.RoleProveedorServicio))
		{
			proveedor.POST("/quotes", restQuoteHandler.SubmitQuote)
			proveedor.PATCH("/quotes/:id", restQuoteHandler.UpdateQuote)
			proveedor.DELETE("/quotes/:id", restQuoteHandler.WithdrawQuote)
		}

		// Supply providers manage the catalog and assemble packs.
		insumos := v1.Group("/")
		insumos.Use(middleware.AuthMiddleware(cfg.JwtSecret), middleware.RoleMiddleware(models.RoleProveedorInsumos))
		{
			insumos.POST("/supplies", restCatalogHandler.AddSupply)
			insumos.PATCH("/supplies/:id", restCatalogHandler.UpdateSupply)
			insumos.DELETE("/supplies/:id", restCatalogHandler.RemoveSupply)
			insumos.POST("/packs", restCatalogHandler.BuildPack)
		}
	}

	return r
}
