package main

import (
	"context"
	"log/slog"
	"os"

	"souk/config"
	"souk/internal/delivery"
	"souk/internal/delivery/http"
	"souk/internal/delivery/http/middleware"
	"souk/internal/delivery/http/router/handler"
	"souk/internal/domain/service"
	"souk/internal/identity"
	"souk/internal/infra/auth"
	logs "souk/internal/infra/log"
	"souk/internal/infra/persistence/postgres"
	"souk/internal/infra/qrcode"
	"souk/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectIdentity(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			observeIdentity,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewProfileRepository,
			postgres.NewRoleRepository,
			postgres.NewSupplierRepository,
			postgres.NewVendorRepository,
			postgres.NewFavoriteRepository,
			postgres.NewCategoryRepository,
			postgres.NewProductRepository,
			postgres.NewOrderRepository,
			postgres.NewReviewRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectIdentity() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewLocalProvider,
			identity.NewResolver,
			identity.NewStore,
			identity.NewWatcher,
			fx.Annotate(
				newWatcherDelivery,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// watcherDelivery runs the identity watcher alongside the HTTP server so the
// in-process identity store stays hydrated.
type watcherDelivery struct {
	watcher *identity.Watcher
}

func newWatcherDelivery(watcher *identity.Watcher) delivery.Delivery {
	return &watcherDelivery{watcher: watcher}
}

func (d *watcherDelivery) Serve(ctx context.Context) error {
	return d.watcher.Run(ctx)
}

// observeIdentity keeps an audit subscriber on the identity store for the
// process lifetime.
func observeIdentity(lc fx.Lifecycle, store *identity.Store, logger *slog.Logger) {
	unsubscribe := identity.LogChanges(store, logger)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			unsubscribe()

			return nil
		},
	})
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewProfileService,
			impl.NewCatalogService,
			impl.NewOrderService,
			impl.NewReviewService,
			impl.NewFavoriteService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewProfileHandler,
			handler.NewCatalogHandler,
			handler.NewOrderHandler,
			handler.NewFavoriteHandler,
			handler.NewReviewHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
