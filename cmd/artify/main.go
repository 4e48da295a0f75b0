package main

import (
	"context"
	"log/slog"
	"os"

	"artify/config"
	"artify/internal/delivery"
	deliverycontext "artify/internal/delivery/context"
	"artify/internal/delivery/http"
	"artify/internal/delivery/http/middleware"
	"artify/internal/delivery/http/router/handler"
	"artify/internal/delivery/http/session"
	"artify/internal/infra/auth"
	"artify/internal/infra/identity/firebase"
	"artify/internal/infra/identity/google"
	"artify/internal/infra/imagehost/imgbb"
	logs "artify/internal/infra/log"
	"artify/internal/infra/prefs"
	"artify/internal/infra/qrcode"
	"artify/internal/infra/rest"
	"artify/internal/usecase"
	"artify/internal/usecase/impl"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	// .env is a development convenience; absence is not an error.
	_ = godotenv.Load()

	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			installSessionExpiry,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		rest.NewClient,
		prefs.NewStore,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			rest.NewArtworkRepository,
			rest.NewFavoriteRepository,
			rest.NewUserRepository,
			rest.NewAdminRepository,
			rest.NewLikesRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			firebase.NewClient,
			google.NewOAuthService,
			imgbb.NewClient,
			auth.NewPasswordPolicy,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionManager,
			impl.NewExploreService,
			impl.NewDetailsService,
			impl.NewGalleryService,
			impl.NewFavoritesService,
			impl.NewAdminService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			session.NewRegistry,
			middleware.NewSessionMiddleware,
			middleware.NewGuardMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewExploreHandler,
			handler.NewDetailsHandler,
			handler.NewGalleryHandler,
			handler.NewAdminHandler,
			handler.NewThemeHandler,
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

// installSessionExpiry wires the remote data client's 401/403 interceptor to
// the request's session handle. Installed after construction: the hook closes
// over sessions built from repositories that themselves use the client.
func installSessionExpiry(client *rest.Client) {
	client.SetUnauthorizedHook(func(ctx context.Context) {
		if s, ok := deliverycontext.SessionValue(ctx).(usecase.Session); ok {
			s.Expire()
		}
	})
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
