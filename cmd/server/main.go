package main

import (
	"alcyxob/fitness-tracker/internal/api"
	"alcyxob/fitness-tracker/internal/config"
	"alcyxob/fitness-tracker/internal/logging"
	"alcyxob/fitness-tracker/internal/metrics"
	"alcyxob/fitness-tracker/internal/repository/mongo"
	"alcyxob/fitness-tracker/internal/repository/sqlite"
	"alcyxob/fitness-tracker/internal/service"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var cfgFile string

// @title Fitness Tracker API
// @version 1.0
// @description Training plan schedule and workout completion ledger.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	rootCmd := &cobra.Command{
		Use:          "fitness-tracker",
		Short:        "Training plan scheduler and workout ledger API",
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context())
		},
	}

	setupFlags(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupFlags(cmd *cobra.Command) {
	config.ApplyDefaults(viper.GetViper())
	defaults := config.NewViper()
	flags := cmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Path to configuration file")
	flags.String("address", defaults.GetString("server.address"), "HTTP listen address")
	flags.String("db-driver", defaults.GetString("database.driver"), "Storage driver (sqlite, mongo)")
	flags.String("db-path", defaults.GetString("database.path"), "SQLite database path")
	flags.String("db-uri", defaults.GetString("database.uri"), "MongoDB connection URI")
	flags.String("db-name", defaults.GetString("database.name"), "MongoDB database name")
	flags.String("timezone", defaults.GetString("schedule.timezone"), "Time zone calendar days are evaluated in")
	flags.String("log-level", defaults.GetString("log.level"), "Log level (debug, info, warn, error)")
	flags.String("log-file", defaults.GetString("log.file"), "Rotated log file, stdout only when empty")

	bindFlag(cmd, "server.address", "address")
	bindFlag(cmd, "database.driver", "db-driver")
	bindFlag(cmd, "database.path", "db-path")
	bindFlag(cmd, "database.uri", "db-uri")
	bindFlag(cmd, "database.name", "db-name")
	bindFlag(cmd, "schedule.timezone", "timezone")
	bindFlag(cmd, "log.level", "log-level")
	bindFlag(cmd, "log.file", "log-file")
}

func bindFlag(cmd *cobra.Command, key, flag string) {
	if err := viper.BindPFlag(key, cmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(err)
	}
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}

	if err := viper.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &configNotFound) {
			return err
		}
	}
	return nil
}

// store bundles the repositories of one storage driver with its shutdown hook.
type store struct {
	deps  service.Deps
	close func() error
}

func openStore(ctx context.Context, cfg config.Config, logger *zap.Logger) (*store, error) {
	switch cfg.Database.Driver {
	case config.DriverMongo:
		client, err := mongo.ConnectDB(cfg.Database.URI)
		if err != nil {
			return nil, fmt.Errorf("connect mongo: %w", err)
		}
		db := client.Database(cfg.Database.Name)

		indexCtx, cancel := context.WithTimeout(ctx, time.Minute)
		defer cancel()
		if err := mongo.EnsureIndexes(indexCtx, db, logger); err != nil {
			return nil, multierr.Append(fmt.Errorf("ensure indexes: %w", err), mongo.DisconnectDB(client))
		}
		return &store{
			deps: service.Deps{
				Exercises:     mongo.NewMongoExerciseRepository(db),
				Plans:         mongo.NewMongoTrainingPlanRepository(db),
				PlanExercises: mongo.NewMongoPlanExerciseRepository(db),
				ClientPlans:   mongo.NewMongoClientPlanRepository(db),
				WorkoutLogs:   mongo.NewMongoWorkoutLogRepository(db),
			},
			close: func() error { return mongo.DisconnectDB(client) },
		}, nil
	default:
		db, err := sqlite.Open(cfg.Database.Path, logger)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		return &store{
			deps: service.Deps{
				Exercises:     sqlite.NewExerciseRepository(db),
				Plans:         sqlite.NewTrainingPlanRepository(db),
				PlanExercises: sqlite.NewPlanExerciseRepository(db),
				ClientPlans:   sqlite.NewClientPlanRepository(db),
				WorkoutLogs:   sqlite.NewWorkoutLogRepository(db),
			},
			close: func() error { return sqlite.Close(db) },
		}, nil
	}
}

func runServer(ctx context.Context) (err error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(logging.Params{
		Level:     cfg.Log.Level,
		File:      cfg.Log.File,
		MaxSizeMB: cfg.Log.MaxSizeMB,
	})
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	st, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("storage unavailable", zap.String("driver", cfg.Database.Driver), zap.Error(err))
		return err
	}
	defer func() {
		err = multierr.Append(err, st.close())
	}()
	logger.Info("storage ready", zap.String("driver", cfg.Database.Driver))

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	deps := st.deps
	deps.Clock = time.Now
	deps.Location = cfg.Location()
	deps.Logger = logger
	deps.Metrics = metrics.NewLedger(registry)

	gin.SetMode(gin.ReleaseMode)
	router := api.NewRouter(api.RouterDeps{
		JWTSecret:      cfg.JWT.Secret,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		WorkoutService: service.NewWorkoutService(deps),
		StatsService:   service.NewStatsService(deps),
		TrainerService: service.NewTrainerService(deps),
		Gatherer:       registry,
		Logger:         logger,
	})

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	signalCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			zap.String("address", cfg.Server.Address),
			zap.String("timezone", deps.Location.String()))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-signalCtx.Done():
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
