package components

import (
	"hall-booking/internal/handler"
	"hall-booking/internal/handler/api"
	"hall-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCatalogHandler,
		api.NewQuoteHandler,
		api.NewBookingHandler,
		api.NewAdminCatalogHandler,
		api.NewAdminTariffHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	catalog *api.CatalogHandler,
	quote *api.QuoteHandler,
	booking *api.BookingHandler,
	adminCatalog *api.AdminCatalogHandler,
	adminTariff *api.AdminTariffHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:         auth,
		Catalog:      catalog,
		Quote:        quote,
		Booking:      booking,
		AdminCatalog: adminCatalog,
		AdminTariff:  adminTariff,
	}
}
