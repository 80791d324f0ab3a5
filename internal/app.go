package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"

	logger_adapter "github.com/G3ndalf/auto-sales-bot-sub000/internal/adapters/logger"
	photostore_adapter "github.com/G3ndalf/auto-sales-bot-sub000/internal/adapters/photostore"
	postgres_adapter "github.com/G3ndalf/auto-sales-bot-sub000/internal/adapters/postgres"
	rabbitmq_adapter "github.com/G3ndalf/auto-sales-bot-sub000/internal/adapters/rabbitmq"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/adapters/rest"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/configs"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/constants"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/port"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/usecase"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/ratelimit"
	fluentlogger "github.com/G3ndalf/auto-sales-bot-sub000/pkg/fluent_logger"
	"github.com/G3ndalf/auto-sales-bot-sub000/pkg/postgres"
	"github.com/G3ndalf/auto-sales-bot-sub000/pkg/rabbitmq/rabbitmq_common"
	"github.com/G3ndalf/auto-sales-bot-sub000/pkg/rabbitmq/rabbitmq_producer"
)

type App struct {
	config    *configs.AppConfig
	dbPool    *pgxpool.Pool
	apiServer *rest.Server

	rabbitConn   *rabbitmq_common.ConnectionManager
	rabbitProd   *rabbitmq_producer.Publisher
	fluentClient *fluent.Fluent
	logger       port.LoggerPort
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ИНИЦИАЛИЗАЦИЯ ЛОГГЕРОВ ---
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false,
		UseColor: true,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 2. НИЗКОУРОВНЕВЫЕ ЗАВИСИМОСТИ ---
	dbPool, err := postgres.NewClient(context.Background(), postgres.Config{DatabaseURL: appConfig.Database.URL})
	if err != nil {
		appLogger.Error("Failed to connect to PostgreSQL", err, nil)
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

	photoFiles, err := photostore_adapter.NewLocalPhotoStore(appConfig.Upload.Dir)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to init photo store: %w", err)
	}

	// --- 3. РЕПОЗИТОРИИ ---
	photosRepo, err := postgres_adapter.NewPostgresPhotosRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create photos repository: %w", err)
	}
	carAdsRepo, err := postgres_adapter.NewPostgresCarAdsRepository(dbPool, photosRepo)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create car ads repository: %w", err)
	}
	plateAdsRepo, err := postgres_adapter.NewPostgresPlateAdsRepository(dbPool, photosRepo)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create plate ads repository: %w", err)
	}
	usersRepo, err := postgres_adapter.NewPostgresUsersRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create users repository: %w", err)
	}
	favoritesRepo, err := postgres_adapter.NewPostgresFavoritesRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create favorites repository: %w", err)
	}
	viewsRepo, err := postgres_adapter.NewPostgresViewsRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create views repository: %w", err)
	}
	appLogger.Info("All persistence adapters initialized.", nil)

	// --- 4. RABBITMQ (опционально) ---
	var publisher port.EventPublisherPort = rabbitmq_adapter.NoopEventPublisher{}
	var rabbitConn *rabbitmq_common.ConnectionManager
	var rabbitProd *rabbitmq_producer.Publisher
	if appConfig.RabbitMQ.Enabled {
		pkgLogger := rabbitmq_adapter.NewPkgLoggerBridge(baseLogger)
		rabbitConn, err = rabbitmq_common.NewConnectionManager(appConfig.RabbitMQ.URL, pkgLogger)
		if err != nil {
			dbPool.Close()
			return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
		}
		rabbitProd, err = rabbitmq_producer.NewPublisher(rabbitmq_producer.PublisherConfig{
			Config:                   rabbitmq_common.Config{URL: appConfig.RabbitMQ.URL},
			ExchangeName:             constants.AdEventsExchange,
			ExchangeType:             constants.AdEventsExchangeType,
			DurableExchange:          true,
			DeclareExchangeIfMissing: true,
			Logger:                   pkgLogger,
		}, rabbitConn)
		if err != nil {
			rabbitConn.Close()
			dbPool.Close()
			return nil, fmt.Errorf("failed to create RabbitMQ producer: %w", err)
		}
		publisher, err = rabbitmq_adapter.NewRabbitMQAdEventsPublisher(rabbitProd)
		if err != nil {
			rabbitConn.Close()
			dbPool.Close()
			return nil, err
		}
		appLogger.Info("RabbitMQ producer initialized.", port.Fields{"exchange": constants.AdEventsExchange})
	} else {
		appLogger.Info("RabbitMQ disabled, ad events will be dropped.", nil)
	}

	limiter := ratelimit.NewSlidingWindowLimiter(
		ratelimit.DefaultWindow, ratelimit.DefaultMaxPerWindow, ratelimit.DefaultCooldown)

	// --- 5. USE CASES ---
	handlers := rest.Handlers{
		Catalog: rest.NewCatalogHandler(
			usecase.NewListCarAdsUseCase(carAdsRepo),
			usecase.NewListPlateAdsUseCase(plateAdsRepo),
			usecase.NewGetCarAdUseCase(carAdsRepo, plateAdsRepo, photosRepo, usersRepo, viewsRepo),
			usecase.NewGetPlateAdUseCase(carAdsRepo, plateAdsRepo, photosRepo, usersRepo, viewsRepo),
			usecase.NewGetCitiesUseCase(carAdsRepo, plateAdsRepo),
		),
		Submit: rest.NewSubmitHandler(
			usecase.NewSubmitAdUseCase(carAdsRepo, plateAdsRepo, photosRepo, photoFiles, usersRepo, limiter, publisher),
		),
		Photos: rest.NewPhotoHandler(
			usecase.NewUploadPhotoUseCase(photoFiles),
			photoFiles,
		),
		Profile: rest.NewProfileHandler(
			usecase.NewGetProfileUseCase(usersRepo, carAdsRepo, plateAdsRepo),
			usecase.NewUpdateProfileUseCase(usersRepo),
			usecase.NewGetUserAdsUseCase(usersRepo, carAdsRepo, plateAdsRepo, photosRepo),
		),
		Owner: rest.NewOwnerHandler(
			usecase.NewEditCarAdUseCase(carAdsRepo, usersRepo),
			usecase.NewEditPlateAdUseCase(plateAdsRepo, usersRepo),
			usecase.NewDeleteAdUseCase(carAdsRepo, plateAdsRepo, usersRepo),
			usecase.NewMarkSoldUseCase(carAdsRepo, plateAdsRepo, usersRepo),
		),
		Favorites: rest.NewFavoritesHandler(
			usecase.NewAddToFavoritesUseCase(favoritesRepo, usersRepo),
			usecase.NewRemoveFromFavoritesUseCase(favoritesRepo, usersRepo),
			usecase.NewGetFavoritesUseCase(favoritesRepo, usersRepo, carAdsRepo, plateAdsRepo, photosRepo),
		),
		Admin: rest.NewAdminHandler(
			usecase.NewGetPendingAdsUseCase(carAdsRepo, plateAdsRepo, photosRepo),
			usecase.NewGetAdStatsUseCase(carAdsRepo, plateAdsRepo),
			usecase.NewApproveAdUseCase(carAdsRepo, plateAdsRepo, usersRepo, publisher),
			usecase.NewRejectAdUseCase(carAdsRepo, plateAdsRepo),
			usecase.NewBanUserUseCase(usersRepo),
			usecase.NewEditCarAdUseCase(carAdsRepo, usersRepo),
			usecase.NewEditPlateAdUseCase(plateAdsRepo, usersRepo),
		),
	}
	appLogger.Info("Use cases wired.", nil)

	// --- 6. REST API SERVER ---
	apiServer := rest.NewServer(appConfig.Rest.PORT, handlers, appConfig.Admin.Token, appConfig.Admin.IDs, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	return &App{
		config:    appConfig,
		dbPool:    dbPool,
		apiServer: apiServer,

		rabbitConn:   rabbitConn,
		rabbitProd:   rabbitProd,
		fluentClient: fluentClient,
		logger:       appLogger,
	}, nil
}

// Run запускает все компоненты приложения и управляет их жизненным циклом.
func (a *App) Run() error {
	appCtx, cancelApp := context.WithCancel(context.Background())

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		if a.rabbitProd != nil {
			if err := a.rabbitProd.Close(); err != nil {
				a.logger.Error("Error closing RabbitMQ producer", err, nil)
			}
		}
		if a.rabbitConn != nil {
			if err := a.rabbitConn.Close(); err != nil {
				a.logger.Error("Error closing RabbitMQ connection", err, nil)
			}
		}

		if a.dbPool != nil {
			a.dbPool.Close()
			a.logger.Info("PostgreSQL pool closed.", nil)
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// Пишем в stdout: fluent может быть уже недоступен.
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	serverErrors := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case <-appCtx.Done():
		a.logger.Warn("Context was cancelled unexpectedly, shutting down...", nil)
	case err := <-serverErrors:
		a.logger.Error("Server failed to start, shutting down", err, nil)
	}

	cancelApp()

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
