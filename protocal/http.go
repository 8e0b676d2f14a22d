package protocal

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"getcooked/configs"
	httpAdapter "getcooked/internal/adapters/input/http"
	"getcooked/internal/adapters/output/spotify"
	"getcooked/internal/application"
	"getcooked/pkg/validator"

	swagger "github.com/arsmn/fiber-swagger/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// ServeHTTP func
func ServeHTTP(env string) error {
	if err := godotenv.Load(); err != nil {
		logrus.Debugf("No .env file loaded: %v", err)
	}
	configs.InitViper("./configs", env)
	cfg := configs.GetViper()
	setupLogger(cfg.App)
	logrus.Info(cfg.App.Env)

	if err := validator.New().ValidateStruct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Wire up the hexagonal architecture layers
	// Output adapters
	generator, err := newTextGenerator(ctx, cfg)
	if err != nil {
		return err
	}
	ledger, err := newStateLedger(ctx, cfg.StateStore)
	if err != nil {
		return err
	}
	defer ledger.Close()

	oauthProvider := spotify.NewOAuthProviderAdapter(cfg.Spotify)
	spotifyClient := spotify.NewAPIClientAdapter(cfg.Spotify)

	// Application services (use cases)
	authSrv := application.NewAuthService(oauthProvider, ledger, seconds(cfg.Session.StateTTL))
	roastSrv := application.NewRoastService(
		application.NewProfileAggregator(spotifyClient),
		generator,
		cfg.Model.RoastCount,
		seconds(cfg.Model.Timeout),
	)

	// Input adapter (HTTP handler)
	hdl := httpAdapter.New(authSrv, roastSrv, httpAdapter.NewCookieStore(cfg.Session.CookieSecure), httpAdapter.Options{
		HomeURL:      cfg.App.HomeURL,
		RoastPageURL: cfg.App.RoastPageURL,
	})

	app := newApp(cfg.App)
	app.Get("/swagger/*", swagger.HandlerDefault)
	hdl.Register(app)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		logrus.Info("Gracefull shut down ...")
		cancel()
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			logrus.Errorf("Error when shutdown server: %v", err)
		}
	}()

	logrus.Infof("Listening on port: %s", cfg.App.Port)
	return app.Listen(":" + cfg.App.Port)
}

func newApp(cfg configs.App) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "getcooked",
		DisableStartupMessage: !cfg.Debug,
	})
	app.Use(recover.New())
	app.Use(httpAdapter.RequestID())
	app.Use(cors.New(corsConfig(cfg.CORSOrigins)))
	return app
}

// corsConfig allows credentials only for explicit origins, fiber refuses them with a wildcard
func corsConfig(origins string) cors.Config {
	config := cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, " + httpAdapter.RequestIDHeader,
	}
	if origins != "" && origins != "*" {
		config.AllowOrigins = origins
		config.AllowCredentials = true
	}
	return config
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
