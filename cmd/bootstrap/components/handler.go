package components

import (
	"rental-marketplace/internal/handler"
	"rental-marketplace/internal/handler/api"
	"rental-marketplace/internal/handler/middleware"
	"rental-marketplace/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewReviewHandler,
		api.NewPropertyHandler,
		middleware.NewAuthMiddleware,
		func(cfg config.Config) *middleware.RateLimiter {
			return middleware.NewRateLimiter(cfg.RateLimit)
		},
		func(auth *api.AuthHandler, booking *api.BookingHandler, review *api.ReviewHandler, property *api.PropertyHandler) handler.Handlers {
			return handler.Handlers{Auth: auth, Booking: booking, Review: review, Property: property}
		},
	),
	fx.Invoke(handler.NewRouter),
)
