package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"s3dropbox/core/loader"
	"s3dropbox/core/logger"
	"s3dropbox/core/middleware/auth"
	"s3dropbox/core/middleware/rayid"
	"s3dropbox/feature/buckets"
	"s3dropbox/feature/cleanup"
	"s3dropbox/feature/journal"
	"s3dropbox/feature/objects"
	"s3dropbox/feature/transfer"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "s3dropbox/docs/swagger"
)

// @title S3 Dropbox API
// @version 1.0
// @description HTTP facade over S3-compatible object storage.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Configuration, logger, storage and journal
		s, err := openSession()
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		defer s.Close()
		zap.ReplaceGlobals(s.logger)
		logg := s.logger
		cfg := s.cfg

		// 2. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
			BodyLimit:             cfg.Server.BodyLimit(),
		})

		// 3. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(buckets.NewFeature(s.svc.Buckets()))
		mgr.Register(objects.NewFeature(s.svc.Objects(), cfg.Server.PresignMax()))
		mgr.Register(transfer.NewFeature(s.svc.Transfers(), ""))
		mgr.Register(cleanup.NewFeature(s.svc.Cleanup()))
		mgr.Register(journal.NewFeature(s.svc.Journal()))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Request logging with the ray ID attached
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

		// 3. Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 4. Auth (Protect API)
		if cfg.Server.ApiKey == "" {
			logg.Warn("No API key configured, the API is unprotected")
		}
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 5. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
