package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"fast-food/internal/data/repository"
	"fast-food/internal/wire"
	"fast-food/pkg/cache"
	"fast-food/pkg/database"
	"fast-food/pkg/mailer"
	"fast-food/pkg/token"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateOnStart bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context(), migrateOnStart)
	},
}

func init() {
	serveCmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "apply pending migrations before serving")
}

func serve(ctx context.Context, migrate bool) error {
	config, logger, err := boot()
	if err != nil {
		return err
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Error("Failed to connect to database", zap.Error(err))
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	if migrate {
		if err := runMigrations(ctx, db, logger); err != nil {
			return err
		}
	}

	var menuCache cache.Cache = cache.Noop{}
	if config.Redis.Addr != "" {
		redisCache, err := cache.NewRedis(ctx, config.Redis, config.App.Name+":")
		if err != nil {
			// the menu is served from the database without it
			logger.Warn("Redis unavailable, menu cache disabled", zap.Error(err))
		} else {
			defer redisCache.Close()
			menuCache = redisCache
			logger.Info("Menu cache enabled", zap.String("addr", config.Redis.Addr))
		}
	}

	var sender mailer.Sender
	if config.Email.Host != "" {
		sender = mailer.NewSMTPSender(config.Email)
	} else {
		logger.Warn("SMTP_HOST not set, status emails will only be logged")
		sender = mailer.NewLogSender(logger)
	}

	tokens := token.NewService(config.JWT.Secret, time.Duration(config.JWT.ExpiryHours)*time.Hour)
	repos := repository.NewRepository(db, logger)

	app := wire.Wiring(wire.Dependencies{
		Repo:   repos,
		DB:     db,
		Config: config,
		Tokens: tokens,
		Cache:  menuCache,
		Mailer: sender,
		Logger: logger,
	})

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return APIServer(ctx, app.Router, config.App.Port, logger)
}
