package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"currency-registry/core/config"
	"currency-registry/core/loader"
	"currency-registry/core/logger"
	"currency-registry/core/middleware/auth"
	"currency-registry/core/middleware/rayid"
	"currency-registry/core/reconcile"
	"currency-registry/feature/currency"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "currency-registry/docs/swagger"
)

// @title Currency Registry API
// @version 1.0
// @description Lookup API over the reconciled ISO 4217 currency registry.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the currency lookup server",
	Long:  `Builds the registry and starts the HTTP lookup API.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if !cfg.Server.IsValidPort() {
			return fmt.Errorf("invalid server port: %q", cfg.Server.Port)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		client, err := storageClient(cfg)
		if err != nil {
			return err
		}
		load, err := registryLoader(cfg, client, logg)
		if err != nil {
			return err
		}

		ttl := time.Duration(cfg.Server.RefreshMinutes) * time.Minute
		store := reconcile.NewStore(load, ttl, logg)

		// Build eagerly so a broken source fails at startup
		if _, err := store.Reload(cmd.Context()); err != nil {
			return fmt.Errorf("failed to build registry: %w", err)
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager()
		mgr.Register(currency.NewFeature(store, logg))

		// RayID must be first to trace everything
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger documentation stays public
		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
