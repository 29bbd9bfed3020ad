package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"rental-marketplace/internal/domain/user"
	"rental-marketplace/internal/handler/api"
	"rental-marketplace/internal/handler/middleware"
	"rental-marketplace/internal/handler/validation"
	"rental-marketplace/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	Booking  *api.BookingHandler
	Review   *api.ReviewHandler
	Property *api.PropertyHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.RateLimiter) {
	validation.RegisterJSONFieldNames()
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware, limiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.Metrics())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMw *middleware.AuthMiddleware, limiter *middleware.RateLimiter) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	can := authMw.RequireCapability
	throttle := limiter.Handler()

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		addRoutes(auth, []route{
			{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
			{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: []gin.HandlerFunc{authMw.RequireAuth()}},
		})

		properties := apiGroup.Group("/properties")
		addRoutes(properties, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Property.Search},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Property.Get, Mw: []gin.HandlerFunc{authMw.OptionalAuth()}},
		})
		ownedProperties := properties.Group("")
		ownedProperties.Use(authMw.RequireAuth())
		addRoutes(ownedProperties, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Property.Create, Mw: []gin.HandlerFunc{can(user.CapPropertyCreate)}},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Property.Delete},
			{Method: http.MethodPatch, Path: "/:id/availability", Handler: h.Property.SetAvailability},
		})

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMw.RequireAuth())
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Booking.Create, Mw: []gin.HandlerFunc{can(user.CapBookingCreate), throttle}},
			{Method: http.MethodGet, Path: "", Handler: h.Booking.ListMine},
			{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Booking.UpdateStatus},
		})

		reviews := apiGroup.Group("/reviews")
		reviews.Use(authMw.RequireAuth())
		addRoutes(reviews, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Review.Create, Mw: []gin.HandlerFunc{can(user.CapReviewCreate), throttle}},
		})

		landlord := apiGroup.Group("/landlord")
		landlord.Use(authMw.RequireAuth(), can(user.CapPropertyListOwn))
		addRoutes(landlord, []route{
			{Method: http.MethodGet, Path: "/properties", Handler: h.Property.ListMine},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(authMw.RequireAuth())
		addRoutes(admin, []route{
			{Method: http.MethodGet, Path: "/reviews", Handler: h.Review.ListPending, Mw: []gin.HandlerFunc{can(user.CapReviewModerate)}},
			{Method: http.MethodPatch, Path: "/reviews/:id/moderate", Handler: h.Review.Moderate, Mw: []gin.HandlerFunc{can(user.CapReviewModerate)}},
			{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.ListAll, Mw: []gin.HandlerFunc{can(user.CapBookingManageAny)}},
			{Method: http.MethodPatch, Path: "/bookings/:id/status", Handler: h.Booking.UpdateStatus, Mw: []gin.HandlerFunc{can(user.CapBookingManageAny)}},
			{Method: http.MethodGet, Path: "/properties", Handler: h.Property.ListAll, Mw: []gin.HandlerFunc{can(user.CapPropertyManageAny)}},
			{Method: http.MethodPatch, Path: "/properties/:id/availability", Handler: h.Property.SetAvailability, Mw: []gin.HandlerFunc{can(user.CapPropertyManageAny)}},
			{Method: http.MethodDelete, Path: "/properties/:id", Handler: h.Property.Delete, Mw: []gin.HandlerFunc{can(user.CapPropertyManageAny)}},
		})
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
