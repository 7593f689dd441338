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

	backend_client "housing-dashboard-service/internal/adapters/backend"
	"housing-dashboard-service/internal/adapters/geojson"
	token_adapter "housing-dashboard-service/internal/adapters/jwt"
	logger_adapter "housing-dashboard-service/internal/adapters/logger"
	"housing-dashboard-service/internal/adapters/objectstorage"
	"housing-dashboard-service/internal/adapters/rest"
	"housing-dashboard-service/internal/adapters/session"
	"housing-dashboard-service/internal/configs"
	"housing-dashboard-service/internal/core/port"
	"housing-dashboard-service/internal/core/usecase"
)

type App struct {
	config       *configs.AppConfig
	apiServer    *rest.Server
	sessionStore *session.RedisSessionStore

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

	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false, // текстовый формат
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluent.New(fluent.Config{
			FluentHost: appConfig.FluentBit.Host,
			FluentPort: appConfig.FluentBit.Port,
			TagPrefix:  appConfig.AppName,
			Async:      true,
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

	// --- 2. БАЗОВЫЙ ЛОГГЕР ПРИЛОЖЕНИЯ ---
	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 3. НИЗКОУРОВНЕВЫЕ ЗАВИСИМОСТИ ---
	sessionStore, err := session.NewRedisSessionStore(context.Background(), session.Config{
		Addr:     appConfig.Redis.Addr,
		Password: appConfig.Redis.Password,
		DB:       appConfig.Redis.DB,
	})
	if err != nil {
		appLogger.Error("Failed to connect to Redis", err, nil)
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	appLogger.Info("Successfully connected to Redis!", nil)

	uploader, err := objectstorage.NewS3Uploader(context.Background(), objectstorage.Config{
		Bucket:    appConfig.ObjectStorage.Bucket,
		Region:    appConfig.ObjectStorage.Region,
		Endpoint:  appConfig.ObjectStorage.Endpoint,
		PublicURL: appConfig.ObjectStorage.PublicURL,
	})
	if err != nil {
		appLogger.Error("Failed to create object storage uploader", err, nil)
		sessionStore.Close()
		return nil, err
	}

	tokenService, err := token_adapter.NewTokenService(appConfig.Auth.SigningKey)
	if err != nil {
		appLogger.Error("Failed to create token service", err, nil)
		sessionStore.Close()
		return nil, err
	}

	// Клиенты групп ресурсов backend поверх общего базового клиента
	baseClient := backend_client.NewClient(appConfig.Backend.URL)
	propertiesClient := backend_client.NewPropertiesClient(baseClient)
	registrationsClient := backend_client.NewRegistrationsClient(baseClient)
	salesClient := backend_client.NewSalesClient(baseClient)
	reportsClient := backend_client.NewReportsClient(baseClient)
	profileClient := backend_client.NewProfileClient(baseClient)

	// Картографический сервис: тайловый слой подключаем сразу, после чего
	// карта считается готовой
	mapService := geojson.NewMapService()
	if err := mapService.AddTileLayer(appConfig.Map.TileLayerURL); err != nil {
		appLogger.Error("Failed to add tile layer", err, nil)
		sessionStore.Close()
		return nil, err
	}
	mapService.SetReady(true)

	appLogger.Info("All persistence and service adapters initialized.", nil)

	// --- 4. USE CASES ---
	listPropertiesUC := usecase.NewListPropertiesUseCase(propertiesClient)
	syncMarkersUC := usecase.NewSyncMarkersUseCase(mapService, appConfig.Map.FitBoundsPadding)
	listRegistrationsUC := usecase.NewListRegistrationsUseCase(registrationsClient)
	submitRegistrationUC := usecase.NewSubmitRegistrationUseCase(registrationsClient, sessionStore, uploader)
	updateRegistrationUC := usecase.NewUpdateRegistrationUseCase(registrationsClient, sessionStore, uploader)
	deleteRegistrationUC := usecase.NewDeleteRegistrationUseCase(registrationsClient, sessionStore)
	listSalesUC := usecase.NewListSalesUseCase(salesClient)
	recordSaleUC := usecase.NewRecordSaleUseCase(salesClient, sessionStore, uploader)
	transferOwnershipUC := usecase.NewTransferOwnershipUseCase(salesClient, sessionStore)
	listReportsUC := usecase.NewListReportsUseCase(reportsClient)
	getProfileUC := usecase.NewGetProfileUseCase(sessionStore)
	updateProfileUC := usecase.NewUpdateProfileUseCase(profileClient, sessionStore)

	// --- 5. REST API SERVER ---
	handlers := rest.Handlers{
		Properties:    rest.NewPropertiesHandler(listPropertiesUC, syncMarkersUC, mapService),
		Registrations: rest.NewRegistrationsHandler(listRegistrationsUC, submitRegistrationUC, updateRegistrationUC, deleteRegistrationUC),
		Sales:         rest.NewSalesHandler(listSalesUC, recordSaleUC, transferOwnershipUC),
		Reports:       rest.NewReportsHandler(listReportsUC),
		Profile:       rest.NewProfileHandler(getProfileUC, updateProfileUC),
		Session:       rest.NewSessionHandler(tokenService, sessionStore),
	}
	apiServer := rest.NewServer(appConfig.Rest.PORT, handlers, tokenService, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	application := &App{
		config:       appConfig,
		apiServer:    apiServer,
		sessionStore: sessionStore,

		fluentClient: fluentClient,
		logger:       appLogger,
	}

	return application, nil
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

		if a.sessionStore != nil {
			if err := a.sessionStore.Close(); err != nil {
				a.logger.Error("Error closing session store", err, nil)
			} else {
				a.logger.Info("Session store closed.", nil)
			}
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// Логируем в stdout, так как fluent может быть уже недоступен
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
