package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"adverts_backend/internals/configs"
	database "adverts_backend/internals/databases"
	"adverts_backend/internals/databases/migrations"
	helper "adverts_backend/internals/helpers"
	middlewares "adverts_backend/internals/middlewares"
	routes "adverts_backend/internals/route"
	"adverts_backend/internals/seeds"
)

// usage:
//
//	adverts_backend                          start the HTTP server
//	adverts_backend migrate up|down|version  goose migrations (postgres, sqlite)
//	adverts_backend seed [dir]               load seed data (default internals/seeds)
func main() {
	configs.LoadEnv()

	cfg, err := configs.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := configs.NewLogger(cfg.Log)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if len(os.Args) > 1 {
		if err := runCommand(cfg, logger, os.Args[1], os.Args[2:]); err != nil {
			logger.Fatal("command failed", zap.String("command", os.Args[1]), zap.Error(err))
		}
		return
	}

	serve(cfg, logger)
}

func runCommand(cfg *configs.Config, logger *zap.Logger, cmd string, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	switch cmd {
	case "migrate":
		db, closeDB, err := openSQL(cfg, logger)
		if err != nil {
			return err
		}
		defer closeDB()

		direction := "up"
		if len(args) > 0 {
			direction = args[0]
		}
		switch direction {
		case "up":
			return migrations.Up(ctx, db, cfg.DB.Driver, logger)
		case "down":
			return migrations.Down(ctx, db, cfg.DB.Driver, logger)
		case "version":
			v, err := migrations.Version(ctx, db, cfg.DB.Driver, logger)
			if err != nil {
				return err
			}
			logger.Info("schema version", zap.Int64("version", v))
			return nil
		default:
			return fmt.Errorf("unknown migrate direction %q", direction)
		}

	case "seed":
		db, err := database.ConnectDB(cfg.DB, logger)
		if err != nil {
			return err
		}
		defer database.Close(db)

		dir := "internals/seeds"
		if len(args) > 0 {
			dir = args[0]
		}
		return seeds.RunAllSeeds(ctx, db, dir, logger)

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// openSQL returns a plain *sql.DB for the migrator: lib/pq for postgres,
// the gorm pool for everything else.
func openSQL(cfg *configs.Config, logger *zap.Logger) (*sql.DB, func(), error) {
	if cfg.DB.Driver == configs.DriverPostgres {
		db, err := sql.Open("postgres", cfg.DB.DSN)
		if err != nil {
			return nil, nil, err
		}
		return db, func() { _ = db.Close() }, nil
	}

	gdb, err := database.ConnectDB(cfg.DB, logger)
	if err != nil {
		return nil, nil, err
	}
	db, err := gdb.DB()
	if err != nil {
		return nil, nil, err
	}
	return db, func() { _ = database.Close(gdb) }, nil
}

func serve(cfg *configs.Config, logger *zap.Logger) {
	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ReadTimeout:           cfg.ServerReadTimeout,
		WriteTimeout:          cfg.ServerWriteTimeout,
		IdleTimeout:           cfg.ServerIdleTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return helper.FromFiberError(c, err)
		},
	})

	middlewares.SetupMiddlewares(app, cfg, logger)

	// 🔌 DB connect + pool + warm-up
	db, err := database.ConnectDB(cfg.DB, logger)
	if err != nil {
		logger.Fatal("database", zap.Error(err))
	}
	database.WarmUp(db, logger)

	routes.SetupRoutes(app, db, cfg, logger)

	go func() {
		logger.Info("listening", zap.String("port", cfg.Port))
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Warn("shutdown", zap.Error(err))
	}
	if err := database.Close(db); err != nil {
		logger.Warn("close db", zap.Error(err))
	}
}
