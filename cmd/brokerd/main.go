package main

import (
	"context"
	"log/slog"
	"os"

	"brokerage/config"
	"brokerage/internal/delivery"
	"brokerage/internal/delivery/http"
	"brokerage/internal/delivery/http/middleware"
	"brokerage/internal/delivery/http/router/handler"
	"brokerage/internal/infra/auth"
	logs "brokerage/internal/infra/log"
	"brokerage/internal/infra/notification"
	"brokerage/internal/infra/persistence/localstore"
	"brokerage/internal/usecase/impl"

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
		localstore.NewMirror,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			localstore.NewUserRepository,
			localstore.NewSessionRepository,
			localstore.NewPropertyRepository,
			localstore.NewAppointmentRepository,
			localstore.NewReviewRepository,
			localstore.NewNotificationRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			notification.NewDispatcher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewListingService,
			impl.NewBookingService,
			impl.NewReviewService,
			impl.NewNotificationService,
			impl.NewDashboardService,
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
			handler.NewAccountHandler,
			handler.NewListingHandler,
			handler.NewBookingHandler,
			handler.NewReviewHandler,
			handler.NewNotificationHandler,
			handler.NewDashboardHandler,
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
