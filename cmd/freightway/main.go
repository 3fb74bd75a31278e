package main

import (
	"context"
	"log/slog"
	"os"

	"freightway/config"
	"freightway/internal/delivery"
	"freightway/internal/delivery/http"
	"freightway/internal/delivery/http/middleware"
	"freightway/internal/delivery/http/router/handler"
	"freightway/internal/infra/kakao"
	logs "freightway/internal/infra/log"
	"freightway/internal/infra/persistence/postgres"
	"freightway/internal/infra/ratelimit"
	"freightway/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
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
			postgres.NewDistanceCacheRepository,
			postgres.NewAddressChangeLogRepository,
			postgres.NewAPIUsageRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			kakao.NewClient,
			ratelimit.NewWindowLimiter,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUsageService,
			impl.NewDistanceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewDistanceHandler,
			handler.NewUsageHandler,
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
				os.Exit(1)
			}
		}()
	}
}
