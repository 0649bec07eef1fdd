package internal

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"

	logger_adapter "github.com/theanasiqbal/Upfox-Property/internal/adapters/logger"
	"github.com/theanasiqbal/Upfox-Property/internal/adapters/memory"
	postgres_adapter "github.com/theanasiqbal/Upfox-Property/internal/adapters/postgres"
	rabbitmq_adapter "github.com/theanasiqbal/Upfox-Property/internal/adapters/rabbitmq"
	"github.com/theanasiqbal/Upfox-Property/internal/adapters/rest"
	"github.com/theanasiqbal/Upfox-Property/internal/configs"
	"github.com/theanasiqbal/Upfox-Property/internal/constants"
	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
	"github.com/theanasiqbal/Upfox-Property/internal/core/port"
	"github.com/theanasiqbal/Upfox-Property/internal/core/usecase"
	fluentlogger "github.com/theanasiqbal/Upfox-Property/pkg/fluent_logger"
	"github.com/theanasiqbal/Upfox-Property/pkg/postgres"
	"github.com/theanasiqbal/Upfox-Property/pkg/rabbitmq/rabbitmq_common"
	"github.com/theanasiqbal/Upfox-Property/pkg/rabbitmq/rabbitmq_consumer"
	"github.com/theanasiqbal/Upfox-Property/pkg/rabbitmq/rabbitmq_producer"
)

const (
	draftJanitorInterval = time.Minute
	shutdownTimeout      = 15 * time.Second
	dbConnectTimeout     = 10 * time.Second
)

// App – структура приложения
type App struct {
	config       *configs.AppConfig
	dbPool       *pgxpool.Pool
	apiServer    *rest.Server
	fluentClient *fluent.Fluent
	logger       port.LoggerPort

	drafts *memory.DraftStore

	connManager         *rabbitmq_common.ConnectionManager
	propertyEvents      *rabbitmq_producer.Publisher
	propertyViewsListen port.EventListenerPort
}

// repositories - выбранное хранилище
type repositories struct {
	properties port.PropertyRepositoryPort
	users      port.UserRepositoryPort
	inquiries  port.InquiryRepositoryPort
	favorites  port.FavoritesRepositoryPort
}

// NewApp создает новый экземпляр приложения.
// Это "Composition Root", где все зависимости создаются и связываются.
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	app := &App{config: appConfig}

	// --- 1. ИНИЦИАЛИЗАЦИЯ ЛОГГЕРОВ ---
	baseLogger, err := app.initLoggers()
	if err != nil {
		return nil, err
	}
	app.logger = baseLogger.WithFields(port.Fields{"component": "app"})

	// --- 2. ХРАНИЛИЩЕ ---
	repos, err := app.initStorage(baseLogger)
	if err != nil {
		app.closeResources()
		return nil, err
	}

	app.drafts = memory.NewDraftStore()
	recordViewUseCase := usecase.NewRecordPropertyViewUseCase(repos.properties)

	// --- 3. ИСХОДЯЩИЕ СОБЫТИЯ ---
	var events port.PropertyEventPublisherPort
	if appConfig.RabbitMQ.Enabled {
		events, err = app.initRabbitMQ(baseLogger, recordViewUseCase)
		if err != nil {
			app.closeResources()
			return nil, err
		}
	} else {
		// без брокера просмотры считаются сразу, в том же процессе
		events = memory.NewInProcessEventPublisher(recordViewUseCase)
		app.logger.Info("RabbitMQ disabled, using in-process event publisher", nil)
	}

	// --- 4. USE CASES ---
	listing := appConfig.Listing
	deletePropertyUseCase := usecase.NewDeletePropertyUseCase(repos.properties, repos.inquiries, repos.favorites)

	publicHandler := rest.NewPublicHandler(
		usecase.NewBrowsePropertiesUseCase(repos.properties),
		usecase.NewGetPropertyDetailsUseCase(repos.properties, repos.users, events),
		usecase.NewGetFilterOptionsUseCase(listing.PageSize),
		usecase.NewCreateInquiryUseCase(repos.properties, repos.inquiries),
		listing.PageSize,
	)
	sellerHandler := rest.NewSellerHandler(
		usecase.NewGetSellerPropertiesUseCase(repos.properties),
		usecase.NewGetSellerDashboardUseCase(repos.properties, repos.inquiries),
		usecase.NewGetSellerInquiriesUseCase(repos.properties, repos.inquiries),
		usecase.NewUpdateInquiryStatusUseCase(repos.properties, repos.inquiries),
		usecase.NewArchivePropertyUseCase(repos.properties, events),
		usecase.NewResubmitPropertyUseCase(repos.properties, events),
		deletePropertyUseCase,
		usecase.NewGetProfileUseCase(repos.users),
		usecase.NewUpdateProfileUseCase(repos.users),
	)
	submissionHandler := rest.NewSubmissionHandler(
		usecase.NewStartSubmissionUseCase(app.drafts),
		usecase.NewUpdateSubmissionDraftUseCase(app.drafts),
		usecase.NewNextSubmissionStepUseCase(app.drafts),
		usecase.NewPreviousSubmissionStepUseCase(app.drafts),
		usecase.NewSubmitPropertyUseCase(app.drafts, repos.properties, events, listing.SubmitTimeout),
		usecase.NewResetSubmissionUseCase(app.drafts),
	)
	favoritesHandler := rest.NewFavoritesHandler(
		usecase.NewAddToFavoritesUseCase(repos.favorites, repos.properties),
		usecase.NewRemoveFromFavoritesUseCase(repos.favorites),
		usecase.NewGetUserFavoritesUseCase(repos.favorites, repos.properties, listing.PageSize),
		usecase.NewGetUserFavoriteIDsUseCase(repos.favorites),
	)
	adminHandler := rest.NewAdminHandler(
		usecase.NewListPropertiesByStatusUseCase(repos.properties),
		usecase.NewApprovePropertyUseCase(repos.properties, events),
		usecase.NewRejectPropertyUseCase(repos.properties, events),
		usecase.NewGetAdminDashboardUseCase(repos.properties, repos.users, repos.inquiries),
		usecase.NewListUsersUseCase(repos.users),
		deletePropertyUseCase,
		usecase.NewSetUserRoleUseCase(repos.users),
		usecase.NewDeleteUserUseCase(repos.users, repos.favorites),
	)
	app.logger.Info("All use cases initialized.", nil)

	// --- 5. REST API ---
	router := rest.NewRouter(appConfig.Rest, publicHandler, sellerHandler, submissionHandler, favoritesHandler, adminHandler, baseLogger)
	app.apiServer = rest.NewServer(appConfig.Rest, router, baseLogger)
	app.logger.Info("REST API server configured.", nil)

	return app, nil
}

func (a *App) initLoggers() (port.LoggerPort, error) {
	cfg := a.config
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    parseLogLevel(cfg.StdoutLogger.Level),
		IsJSON:   false,
		UseColor: true,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	if cfg.FluentBit.Enabled {
		fluentClient, err := fluentlogger.NewClient(fluentlogger.Config{
			Host:      cfg.FluentBit.Host,
			Port:      cfg.FluentBit.Port,
			TagPrefix: cfg.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(cfg.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		a.fluentClient = fluentClient
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{"service_name": cfg.AppName})
	baseLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": cfg.FluentBit.Enabled,
	})
	return baseLogger, nil
}

func (a *App) initStorage(baseLogger port.LoggerPort) (repositories, error) {
	cfg := a.config
	storageLogger := baseLogger.WithFields(port.Fields{"component": "storage", "driver": cfg.Storage.Driver})

	if cfg.Storage.Driver == configs.StorageMemory {
		var (
			props     []domain.Property
			users     []domain.User
			inquiries []domain.Inquiry
			favorites []domain.Favorite
		)
		if cfg.Storage.SeedMockData {
			props, users, inquiries = memory.SeedProperties(), memory.SeedUsers(), memory.SeedInquiries()
			favorites = memory.SeedFavorites()
		}
		repos := repositories{
			properties: memory.NewPropertyRepository(props...),
			users:      memory.NewUserRepository(users...),
			inquiries:  memory.NewInquiryRepository(inquiries...),
			favorites:  memory.NewFavoritesRepository(favorites...),
		}
		storageLogger.Info("In-memory storage initialized", port.Fields{"seeded": cfg.Storage.SeedMockData})
		return repos, nil
	}

	ctx := context.Background()
	dbPool, err := postgres.NewClient(ctx, postgres.Config{
		DatabaseURL:    cfg.Database.URL,
		ConnectTimeout: dbConnectTimeout,
	})
	if err != nil {
		storageLogger.Error("Failed to connect to PostgreSQL", err, nil)
		return repositories{}, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	a.dbPool = dbPool
	storageLogger.Info("Successfully connected to PostgreSQL pool!", nil)

	if err := postgres_adapter.EnsureSchema(ctx, dbPool); err != nil {
		storageLogger.Error("Failed to apply schema", err, nil)
		return repositories{}, err
	}

	if cfg.Storage.SeedMockData {
		if err := postgres_adapter.Seed(ctx, dbPool, memory.SeedUsers(), memory.SeedProperties(), memory.SeedInquiries(), memory.SeedFavorites()); err != nil {
			storageLogger.Error("Failed to seed mock data", err, nil)
			return repositories{}, err
		}
		storageLogger.Info("Mock data seeded", nil)
	}

	properties, err := postgres_adapter.NewPropertyRepository(dbPool)
	if err != nil {
		return repositories{}, fmt.Errorf("failed to create property repository: %w", err)
	}
	users, err := postgres_adapter.NewUserRepository(dbPool)
	if err != nil {
		return repositories{}, fmt.Errorf("failed to create user repository: %w", err)
	}
	inquiries, err := postgres_adapter.NewInquiryRepository(dbPool)
	if err != nil {
		return repositories{}, fmt.Errorf("failed to create inquiry repository: %w", err)
	}
	favorites, err := postgres_adapter.NewFavoritesRepository(dbPool)
	if err != nil {
		return repositories{}, fmt.Errorf("failed to create favorites repository: %w", err)
	}

	storageLogger.Info("Postgres storage adapters initialized.", nil)
	return repositories{properties: properties, users: users, inquiries: inquiries, favorites: favorites}, nil
}

func (a *App) initRabbitMQ(baseLogger port.LoggerPort, recordView *usecase.RecordPropertyViewUseCase) (port.PropertyEventPublisherPort, error) {
	cfg := a.config.RabbitMQ

	connManagerBridge := rabbitmq_adapter.NewPkgLoggerBridge(baseLogger.WithFields(port.Fields{"component": "rabbitmq_conn_manager"}))
	connManager, err := rabbitmq_common.GetManager(cfg.URL, connManagerBridge)
	if err != nil {
		a.logger.Error("Failed to create connection manager", err, nil)
		return nil, fmt.Errorf("failed to create connection manager: %w", err)
	}
	a.connManager = connManager
	a.logger.Info("RabbitMQ Connection Manager initialized.", nil)

	producerCfg := rabbitmq_producer.PublisherConfig{
		Config:                   rabbitmq_common.Config{URL: cfg.URL},
		ExchangeName:             cfg.Exchange,
		ExchangeType:             constants.PropertyEventsExchangeType,
		DurableExchange:          true,
		DeclareExchangeIfMissing: true,

		Logger: rabbitmq_adapter.NewPkgLoggerBridge(baseLogger.WithFields(port.Fields{"component": "rabbitmq_producer"})),
	}
	producer, err := rabbitmq_producer.NewPublisher(producerCfg, connManager)
	if err != nil {
		a.logger.Error("Failed to create event producer", err, nil)
		return nil, fmt.Errorf("failed to create event producer: %w", err)
	}
	a.propertyEvents = producer

	events, err := rabbitmq_adapter.NewPropertyEventPublisherAdapter(producer)
	if err != nil {
		return nil, err
	}
	a.logger.Info("RabbitMQ Event Producer initialized.", nil)

	viewsConsumerCfg := rabbitmq_consumer.ConsumerConfig{
		Config:                 rabbitmq_common.Config{URL: cfg.URL},
		QueueName:              constants.QueuePropertyViews,
		DeclareQueue:           true,
		DurableQueue:           true,
		ExchangeNameForBind:    cfg.Exchange,
		DeclareExchangeForBind: true,
		ExchangeTypeForBind:    constants.PropertyEventsExchangeType,
		DurableExchangeForBind: true,
		RoutingKeyForBind:      constants.RoutingKeyPropertyViewed,
		PrefetchCount:          10,
		ConsumerTag:            "property-views-adapter",

		EnableRetryMechanism: true,
		RetryExchange:        constants.QueuePropertyViews + "_retry_ex",
		RetryQueue:           constants.QueuePropertyViews + "_retry_wait_10s",
		RetryTTL:             10000,

		FinalDLXExchange:   constants.FinalDLXExchange,
		FinalDLQ:           constants.FinalDLQ,
		FinalDLQRoutingKey: constants.FinalDLQRoutingKey,

		MaxRetries: 3,
	}
	listener, err := rabbitmq_adapter.NewPropertyViewConsumerAdapter(viewsConsumerCfg, recordView, baseLogger, connManager)
	if err != nil {
		a.logger.Error("Failed to create property views listener", err, nil)
		return nil, err
	}
	a.propertyViewsListen = listener
	a.logger.Info("Property Views Listener initialized.", nil)

	return events, nil
}

// Run запускает все компоненты приложения и управляет их жизненным циклом.
func (a *App) Run() error {
	appCtx, cancelApp := context.WithCancel(context.Background())
	defer cancelApp()

	var wg sync.WaitGroup
	errorsCh := make(chan error, 2)

	a.logger.Info("Application is starting...", nil)

	if a.propertyViewsListen != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			listenerLogger := a.logger.WithFields(port.Fields{"listener_name": "Property Views Listener"})
			listenerLogger.Info("Starting listener...", nil)

			if err := a.propertyViewsListen.Start(appCtx); err != nil {
				listenerLogger.Error("Listener stopped with an unexpected error", err, nil)
				errorsCh <- fmt.Errorf("property views listener error: %w", err)
			} else {
				listenerLogger.Info("Listener stopped gracefully due to context cancellation.", nil)
			}
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		a.drafts.RunJanitor(appCtx, draftJanitorInterval, a.config.Listing.DraftTTL,
			a.logger.WithFields(port.Fields{"component": "draft_janitor"}))
	}()

	go func() {
		if err := a.apiServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errorsCh <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	var runErr error
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case runErr = <-errorsCh:
		a.logger.Error("A critical component failed, shutting down", runErr, nil)
	}

	a.logger.Info("Shutdown sequence initiated...", nil)

	// сначала перестаем принимать запросы, потом гасим фоновые задачи
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	if err := a.apiServer.Stop(shutdownCtx); err != nil {
		a.logger.Error("Error during API server shutdown", err, nil)
	}

	cancelApp()
	a.logger.Info("Waiting for background processes to finish...", nil)
	wg.Wait()
	a.logger.Info("All background processes finished.", nil)

	a.closeResources()
	return runErr
}

// closeResources закрывает всё, что успело открыться. Безопасен при частичной инициализации.
func (a *App) closeResources() {
	if a.propertyViewsListen != nil {
		if err := a.propertyViewsListen.Close(); err != nil {
			a.logger.Error("Error closing property views listener", err, nil)
		}
	}

	if a.propertyEvents != nil {
		if err := a.propertyEvents.Close(); err != nil {
			a.logger.Error("Error closing event producer", err, nil)
		}
	}

	if a.connManager != nil {
		if err := a.connManager.Close(); err != nil {
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
			// fluent может быть уже недоступен
			fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
		}
	}
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
