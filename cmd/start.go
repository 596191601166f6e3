package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"todo-sync/core/loader"
	"todo-sync/core/logger"
	"todo-sync/core/middleware/auth"
	"todo-sync/core/middleware/rayid"
	"todo-sync/core/records"

	"todo-sync/feature/health"
	"todo-sync/feature/todos"
	"todo-sync/feature/webhook"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "todo-sync/docs/swagger"
)

const shutdownTimeout = 10 * time.Second

var migrateOnStart bool

// @title todo-sync API
// @version 1.0
// @description Todo API kept in sync with Airtable.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-api-key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the todo-sync server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Configuration, logger and record store
		a, err := newApp()
		if err != nil {
			log.Fatalf("Failed to initialize: %v", err)
		}
		defer a.close()
		logg := a.logger.With(zap.String("stage", a.cfg.Server.Stage))
		zap.ReplaceGlobals(logg)

		if migrateOnStart {
			if gs, ok := a.store.(*records.GormStore); ok {
				if err := gs.AutoMigrate(); err != nil {
					logg.Fatal("Failed to migrate record table", zap.Error(err))
				}
			}
		}

		// 2. API key cache
		keys, err := a.keyCache()
		if err != nil {
			logg.Fatal("Failed to initialize API key source", zap.Error(err))
		}
		guard := auth.New(auth.Config{
			Authorizer: auth.NewAuthorizer(keys, logg),
			Logger:     logg,
		})

		// 3. Fiber app
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// RayID first so everything below is traceable
		app.Use(rayid.New())
		app.Use(cors.New(cors.Config{
			AllowOrigins: a.cfg.Server.AllowOrigins,
			AllowMethods: "OPTIONS,POST,GET",
			AllowHeaders: "Content-Type,X-Amz-Date,Authorization,X-Api-Key",
		}))
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

		// Public
		app.Get("/swagger/*", swagger.HandlerDefault)

		root := loader.NewManager(logg)
		root.Register(health.NewFeature(a.store, logg, a.cfg.Server.Stage))
		if err := root.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 4. Versioned API. Only the todo routes require the API key.
		table := a.cfg.TableName()
		api := loader.NewManager(logg)
		api.Register(todos.NewFeature(a.engine, logg, table, a.cfg.Server.Stage, guard))
		api.Register(webhook.NewFeature(a.engine, logg, table, a.cfg.Server.Stage))
		if err := api.LoadAll(app.Group("/v1")); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 5. Serve
		go func() {
			logg.Info("Starting server",
				zap.String("port", a.cfg.Server.Port),
				zap.String("table", table),
				zap.String("store", a.cfg.Store.Driver))
			if err := app.Listen(":" + a.cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 6. Graceful shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			logg.Error("Shutdown failed", zap.Error(err))
		}
	},
}

func init() {
	startCmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "Auto-migrate the record table before serving (database store only)")
	RootCmd.AddCommand(startCmd)
}
