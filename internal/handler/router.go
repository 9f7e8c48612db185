package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hall-booking/internal/domain/user"
	"hall-booking/internal/handler/api"
	"hall-booking/internal/handler/middleware"
	"hall-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	Catalog      *api.CatalogHandler
	Quote        *api.QuoteHandler
	Booking      *api.BookingHandler
	AdminCatalog *api.AdminCatalogHandler
	AdminTariff  *api.AdminTariffHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		// Public site: browse the catalog, get a quote, leave a request.
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/halls", Handler: h.Catalog.ListHalls},
			{Method: http.MethodGet, Path: "/halls/:code", Handler: h.Catalog.GetHall},
			{Method: http.MethodGet, Path: "/extras", Handler: h.Catalog.ListExtras},
			{Method: http.MethodPost, Path: "/quotes", Handler: h.Quote.GetQuote},
			{Method: http.MethodPost, Path: "/booking-requests", Handler: h.Booking.SubmitBookingRequest},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth())
		admin.Use(authMiddleware.RequireRoleAtLeast(user.RoleOperator))
		{
			// Catalog and tariff configuration changes are admin-only;
			// operators read everything and work the booking inbox.
			adminOnly := []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleAdmin)}

			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/halls", Handler: h.AdminCatalog.CreateHall, Mw: adminOnly},
				{Method: http.MethodPatch, Path: "/halls/:id", Handler: h.AdminCatalog.UpdateHall, Mw: adminOnly},
				{Method: http.MethodDelete, Path: "/halls/:id", Handler: h.AdminCatalog.DeleteHall, Mw: adminOnly},
				{Method: http.MethodGet, Path: "/halls/:id/rates", Handler: h.AdminTariff.ListRateCards},
				{Method: http.MethodPut, Path: "/halls/:id/rates", Handler: h.AdminTariff.PutRateCard, Mw: adminOnly},
				{Method: http.MethodDelete, Path: "/halls/:id/rates/:priceSetId", Handler: h.AdminTariff.DeleteRateCard, Mw: adminOnly},

				{Method: http.MethodPost, Path: "/extras", Handler: h.AdminCatalog.CreateExtra, Mw: adminOnly},
				{Method: http.MethodPatch, Path: "/extras/:id", Handler: h.AdminCatalog.UpdateExtra, Mw: adminOnly},
				{Method: http.MethodDelete, Path: "/extras/:id", Handler: h.AdminCatalog.DeleteExtra, Mw: adminOnly},
				{Method: http.MethodGet, Path: "/extras/:id/prices", Handler: h.AdminCatalog.ListExtraPrices},
				{Method: http.MethodPut, Path: "/extras/:id/prices", Handler: h.AdminTariff.PutExtraPrice, Mw: adminOnly},
				{Method: http.MethodDelete, Path: "/extras/:id/prices/:priceSetId", Handler: h.AdminTariff.DeleteExtraPrice, Mw: adminOnly},

				{Method: http.MethodGet, Path: "/price-sets", Handler: h.AdminTariff.ListPriceSets},
				{Method: http.MethodPost, Path: "/price-sets", Handler: h.AdminTariff.CreatePriceSet, Mw: adminOnly},
				{Method: http.MethodDelete, Path: "/price-sets/:id", Handler: h.AdminTariff.DeletePriceSet, Mw: adminOnly},

				{Method: http.MethodGet, Path: "/season-rules", Handler: h.AdminTariff.ListSeasonRules},
				{Method: http.MethodPost, Path: "/season-rules", Handler: h.AdminTariff.CreateSeasonRule, Mw: adminOnly},
				{Method: http.MethodDelete, Path: "/season-rules/:id", Handler: h.AdminTariff.DeleteSeasonRule, Mw: adminOnly},

				{Method: http.MethodGet, Path: "/booking-requests", Handler: h.Booking.ListBookingRequests},
				{Method: http.MethodGet, Path: "/booking-requests/:id", Handler: h.Booking.GetBookingRequest},
				{Method: http.MethodPatch, Path: "/booking-requests/:id/status", Handler: h.Booking.UpdateBookingStatus},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
