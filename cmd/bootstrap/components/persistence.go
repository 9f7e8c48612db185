package components

import (
	"hall-booking/internal/infra"
	"hall-booking/internal/infra/readstore"
	"hall-booking/internal/infra/repository"
	"hall-booking/internal/notifier"
	"hall-booking/internal/usecase/commands"
	"hall-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewHallReadStore,
			fx.As(new(queries.HallReadStore)),
		),
		fx.Annotate(
			readstore.NewPricingReadStore,
			fx.As(new(queries.PricingReadStore)),
		),
		fx.Annotate(
			readstore.NewExtraReadStore,
			fx.As(new(queries.ExtraReadStore)),
		),
		fx.Annotate(
			readstore.NewTariffReadStore,
			fx.As(new(queries.TariffReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewNotificationReadStore,
			fx.As(new(notifier.PendingJobStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			repository.NewHallRepository,
			fx.As(new(commands.HallRepository)),
		),
		fx.Annotate(
			repository.NewExtraRepository,
			fx.As(new(commands.ExtraRepository)),
		),
		fx.Annotate(
			repository.NewTariffRepository,
			fx.As(new(commands.TariffRepository)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(commands.NotificationRepository)),
			fx.As(new(notifier.JobRepository)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) infra.DBTX {
	return pool
}
