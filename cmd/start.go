package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"stocktake/core/config"
	"stocktake/core/database"
	"stocktake/core/journal"
	"stocktake/core/loader"
	"stocktake/core/logger"
	"stocktake/core/metrics"
	"stocktake/core/middleware/auth"
	"stocktake/core/middleware/rayid"
	"stocktake/core/retail"
	"stocktake/core/storage"

	"stocktake/feature/admin"
	authfeature "stocktake/feature/auth"
	"stocktake/feature/catalog"
	"stocktake/feature/distribution"
	"stocktake/feature/inventory"
	"stocktake/feature/inventory/models"
	"stocktake/feature/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "stocktake/docs/swagger"
)

// @title Stocktake API
// @version 1.0
// @description API for retail inventory counting sessions and device sync.
// @host localhost:8001
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the stocktake server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to the session database and migrate its schema
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to session database", zap.Error(err))
		}
		if err := db.AutoMigrate(&models.Session{}, &models.StockLine{}, &models.Reading{}); err != nil {
			logg.Fatal("Failed to migrate session schema", zap.Error(err))
		}

		// 4. Connect to the read-only retail database
		retailDB, err := database.Connect(cfg.Retail)
		if err != nil {
			logg.Fatal("Failed to connect to retail database", zap.Error(err))
		}
		src := retail.NewGormSource(retailDB)

		// 5. Initialize Storage (Optional)
		// The server runs without it; only APK distribution is disabled.
		var storageClient storage.Client
		if client, err := storage.NewClient(cfg.Storage); err != nil {
			logg.Warn("Storage client unavailable, APK distribution disabled", zap.Error(err))
		} else {
			storageClient = client
		}

		// 6. Shared activity journal
		j := journal.New()

		// 7. Initialize Fiber App
		app := fiber.New(fiber.Config{
			AppName:               cfg.Server.AppName,
			DisableStartupMessage: true, // We will log our own startup message
		})

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Zap + RayID)
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

		// 3. Metrics
		httpMetrics := metrics.NewHTTPMetrics(cfg.Server.AppName)
		app.Use(httpMetrics.Middleware())
		app.Get("/metrics", metrics.Handler())

		// 4. Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 5. Auth (Protect the API; login, docs and downloads stay open)
		app.Use(auth.New(auth.Config{
			Secret: cfg.Server.JWTSecret,
			Skip:   []string{"/api/login", "/swagger", "/metrics", "/download"},
		}))

		// 6. Feature Loader
		mgr := loader.NewManager()
		mgr.Register(distribution.NewFeature(storageClient, cfg.Storage.Bucket, logg))

		api := app.Group("/api")
		apiMgr := loader.NewManager()
		apiMgr.Register(authfeature.NewFeature(src, j, logg, cfg.Server.JWTSecret, cfg.Server.TokenTTL()))
		apiMgr.Register(store.NewFeature(src, logg))
		apiMgr.Register(catalog.NewFeature(src, j, logg))
		apiMgr.Register(inventory.NewFeature(db, src, j, logg))
		apiMgr.Register(admin.NewFeature(j))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}
		if err := apiMgr.LoadAll(api); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 7. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
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
