package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/mhmdxx5/CarWashBackend/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/mhmdxx5/CarWashBackend/internal/api/handlers/create_booking"
	createProductHandler "github.com/mhmdxx5/CarWashBackend/internal/api/handlers/create_product"
	createSupportHandler "github.com/mhmdxx5/CarWashBackend/internal/api/handlers/create_support_request"
	deleteDateHoursHandler "github.com/mhmdxx5/CarWashBackend/internal/api/handlers/delete_date_hours"
	deleteProductHandler "github.com/mhmdxx5/CarWashBackend/internal/api/handlers/delete_product"
	getAvailabilityHandler "github.com/mhmdxx5/CarWashBackend/internal/api/handlers/get_availability"
	getBookingHandler "github.com/mhmdxx5/CarWashBackend/internal/api/handlers/get_booking"
	getDateHoursHandler "github.com/mhmdxx5/CarWashBackend/internal/api/handlers/get_date_hours"
	getUserBookingsHandler "github.com/mhmdxx5/CarWashBackend/internal/api/handlers/get_user_bookings"
	getWorkingHoursHandler "github.com/mhmdxx5/CarWashBackend/internal/api/handlers/get_working_hours"
	listBookingsHandler "github.com/mhmdxx5/CarWashBackend/internal/api/handlers/list_bookings"
	listProductsHandler "github.com/mhmdxx5/CarWashBackend/internal/api/handlers/list_products"
	listSupportHandler "github.com/mhmdxx5/CarWashBackend/internal/api/handlers/list_support_requests"
	updateBookingStatusHandler "github.com/mhmdxx5/CarWashBackend/internal/api/handlers/update_booking_status"
	updateDateHoursHandler "github.com/mhmdxx5/CarWashBackend/internal/api/handlers/update_date_hours"
	updateProductHandler "github.com/mhmdxx5/CarWashBackend/internal/api/handlers/update_product"
	updateSupportHandler "github.com/mhmdxx5/CarWashBackend/internal/api/handlers/update_support_request"
	updateWorkingHoursHandler "github.com/mhmdxx5/CarWashBackend/internal/api/handlers/update_working_hours"
	"github.com/mhmdxx5/CarWashBackend/internal/api/middleware"
	"github.com/mhmdxx5/CarWashBackend/internal/config"
	"github.com/mhmdxx5/CarWashBackend/internal/domain"
	"github.com/mhmdxx5/CarWashBackend/internal/infra/ratelimit"
	bookingRepo "github.com/mhmdxx5/CarWashBackend/internal/infra/storage/booking"
	"github.com/mhmdxx5/CarWashBackend/internal/infra/storage/memory"
	productRepo "github.com/mhmdxx5/CarWashBackend/internal/infra/storage/product"
	scheduleRepo "github.com/mhmdxx5/CarWashBackend/internal/infra/storage/schedule"
	supportRepo "github.com/mhmdxx5/CarWashBackend/internal/infra/storage/support"
	"github.com/mhmdxx5/CarWashBackend/internal/integrations/identity"
	"github.com/mhmdxx5/CarWashBackend/internal/integrations/mailer"
	bookingsService "github.com/mhmdxx5/CarWashBackend/internal/service/bookings"
	"github.com/mhmdxx5/CarWashBackend/internal/service/notifications"
	productsService "github.com/mhmdxx5/CarWashBackend/internal/service/products"
	scheduleService "github.com/mhmdxx5/CarWashBackend/internal/service/schedule"
	supportService "github.com/mhmdxx5/CarWashBackend/internal/service/support"
	createBookingUC "github.com/mhmdxx5/CarWashBackend/internal/usecase/create_booking"
	getAvailabilityUC "github.com/mhmdxx5/CarWashBackend/internal/usecase/get_availability"
	"github.com/mhmdxx5/CarWashBackend/pkg/dbmetrics"
	"github.com/mhmdxx5/CarWashBackend/pkg/logger"
	"github.com/mhmdxx5/CarWashBackend/pkg/metrics"
	"github.com/mhmdxx5/CarWashBackend/pkg/txmanager"
)

// Хранилище собирается из postgres или memory, поэтому поля описаны интерфейсами потребителей
type (
	bookingStore interface {
		createBookingUC.BookingRepository
		getAvailabilityUC.BookingRepository
		bookingsService.BookingRepository
	}
	scheduleStore interface {
		getAvailabilityUC.ScheduleRepository
		scheduleService.ScheduleRepository
	}
	txManager interface {
		createBookingUC.TransactionManager
		getAvailabilityUC.TransactionManager
	}
)

type storage struct {
	bookings  bookingStore
	schedule  scheduleStore
	products  productsService.ProductRepository
	support   supportService.TicketRepository
	txManager txManager
	close     func()
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level, cfg.Logs.Format)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting %s (env=%s)...", cfg.App.Name, cfg.App.Environment)

	loc, err := cfg.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.App.Timezone, err)
	}
	log.Info("Business timezone: %s", loc)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Хранилище
	store, err := openStorage(cfg, metricsCollector, stopMetricsCh, log)
	if err != nil {
		log.Fatal("Failed to open storage: %v", err)
	}
	defer store.close()

	// Уведомления
	var sender notifications.Sender = mailer.NewLogSender(log)
	if cfg.Notifications.Enabled && cfg.SMTP.Enabled {
		sender = mailer.NewSMTPClient(mailer.Config{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		})
		log.Info("SMTP sender enabled (host=%s, port=%d)", cfg.SMTP.Host, cfg.SMTP.Port)
	} else {
		log.Info("SMTP disabled, notifications are written to log")
	}

	dispatcher := notifications.NewDispatcher(sender, notifications.DispatcherConfig{
		Workers:     cfg.Notifications.Workers,
		QueueSize:   cfg.Notifications.QueueSize,
		SendTimeout: time.Duration(cfg.Notifications.SendTimeout) * time.Second,
		Retry: notifications.RetryPolicy{
			MaxRetries:   cfg.Notifications.MaxRetries,
			InitialDelay: time.Duration(cfg.Notifications.InitialDelayMS) * time.Millisecond,
			MaxDelay:     time.Duration(cfg.Notifications.MaxDelayMS) * time.Millisecond,
		},
	}, metricsCollector, log)

	dispatchCtx, stopDispatch := context.WithCancel(context.Background())
	defer stopDispatch()
	dispatcher.Start(dispatchCtx)

	notifier := notifications.NewService(dispatcher, cfg.Notifications.StaffEmail, loc, log)

	// Аутентификация
	policy := domain.NewStaffPolicy(cfg.Auth.StaffRoles)
	verifier := identity.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(store.bookings, notifier, policy, loc, log)
	scheduleSvc := scheduleService.NewService(store.schedule, loc, log)
	productSvc := productsService.NewService(store.products, log)
	supportSvc := supportService.NewService(store.support, notifier, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		store.bookings,
		store.txManager,
		notifier,
		metricsCollector,
		loc,
		log,
	)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		store.schedule,
		store.bookings,
		store.txManager,
		loc,
		log,
	)

	// Rate limit
	limit := func(h http.Handler) http.Handler { return h }
	if cfg.RateLimit.Enabled {
		var limiter middleware.Limiter
		if cfg.Redis.Enabled {
			client := ratelimit.NewRedisClient(ratelimit.Options{
				Address:  cfg.Redis.Address,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
				PoolSize: cfg.Redis.PoolSize,
			})
			defer client.Close()

			pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			err := ratelimit.Ping(pingCtx, client)
			cancel()
			if err != nil {
				log.Fatal("Failed to connect to redis: %v", err)
			}

			limiter = ratelimit.NewRedisLimiter(client, cfg.App.Name, cfg.RateLimit.Requests, cfg.RateLimitWindow())
			log.Info("Redis rate limiter enabled (addr=%s, %d req per %s)",
				cfg.Redis.Address, cfg.RateLimit.Requests, cfg.RateLimitWindow())
		} else {
			limiter = ratelimit.NewMemoryLimiter(cfg.RateLimit.Requests, cfg.RateLimitWindow())
			log.Info("In-memory rate limiter enabled (%d req per %s)", cfg.RateLimit.Requests, cfg.RateLimitWindow())
		}
		limit = middleware.RateLimit(limiter, log)
	}

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, loc, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getWorkingHours := getWorkingHoursHandler.NewHandler(scheduleSvc, log)
	updateWorkingHours := updateWorkingHoursHandler.NewHandler(scheduleSvc, log)
	getDateHours := getDateHoursHandler.NewHandler(scheduleSvc, log)
	updateDateHours := updateDateHoursHandler.NewHandler(scheduleSvc, log)
	deleteDateHours := deleteDateHoursHandler.NewHandler(scheduleSvc, log)
	listProducts := listProductsHandler.NewHandler(productSvc, log)
	createProduct := createProductHandler.NewHandler(productSvc, log)
	updateProduct := updateProductHandler.NewHandler(productSvc, log)
	deleteProduct := deleteProductHandler.NewHandler(productSvc, log)
	createSupport := createSupportHandler.NewHandler(supportSvc, log)
	listSupport := listSupportHandler.NewHandler(supportSvc, log)
	updateSupport := updateSupportHandler.NewHandler(supportSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/bookings/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/working-hours", getWorkingHours.Handle).Methods(http.MethodGet)
	api.HandleFunc("/products", listProducts.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (Bearer JWT)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Authenticate(verifier, log))

	protected.Handle("/bookings", limit(http.HandlerFunc(createBooking.Handle))).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/my", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/cancel-request", cancelBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{id:[0-9]+}", getBooking.Handle).Methods(http.MethodGet)
	protected.Handle("/support", limit(http.HandlerFunc(createSupport.Handle))).Methods(http.MethodPost)

	// ============================================================
	// STAFF ROUTES
	// ============================================================

	staff := api.PathPrefix("").Subrouter()
	staff.Use(middleware.Authenticate(verifier, log))
	staff.Use(middleware.RequireStaff(policy))

	// --- Бронирования ---
	staff.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/bookings/{id:[0-9]+}/status", updateBookingStatus.Handle).Methods(http.MethodPut)

	// --- Расписание ---
	staff.HandleFunc("/working-hours/date/{date}", getDateHours.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/working-hours/date/{date}", updateDateHours.Handle).Methods(http.MethodPut)
	staff.HandleFunc("/working-hours/date/{date}", deleteDateHours.Handle).Methods(http.MethodDelete)
	staff.HandleFunc("/working-hours/{day}", updateWorkingHours.Handle).Methods(http.MethodPut)

	// --- Каталог ---
	staff.HandleFunc("/products", createProduct.Handle).Methods(http.MethodPost)
	staff.HandleFunc("/products/{id:[0-9]+}", updateProduct.Handle).Methods(http.MethodPut)
	staff.HandleFunc("/products/{id:[0-9]+}", deleteProduct.Handle).Methods(http.MethodDelete)

	// --- Поддержка ---
	staff.HandleFunc("/support", listSupport.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/support/{id:[0-9]+}", updateSupport.Handle).Methods(http.MethodPut)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Дожидаемся отправки уже поставленных в очередь писем
	dispatcher.Stop()
	log.Info("Notification dispatcher stopped")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	log.Info("Server stopped gracefully")
}

func openStorage(cfg *config.Config, m *metrics.Metrics, stopCh <-chan struct{}, log *logger.Logger) (*storage, error) {
	if cfg.Storage.Driver == config.StorageDriverMemory {
		log.Warn("Using in-memory storage, data is lost on restart")
		mem := memory.NewStore()
		return &storage{
			bookings:  mem.Bookings(),
			schedule:  mem.Schedule(),
			products:  mem.Products(),
			support:   mem.Support(),
			txManager: mem.TxManager(),
			close:     func() {},
		}, nil
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Без метрик обёртка прозрачна
	wrappedDB := dbmetrics.WrapWithDefault(db, m, cfg.Metrics.ServiceName, stopCh)

	return &storage{
		bookings:  bookingRepo.NewRepository(wrappedDB),
		schedule:  scheduleRepo.NewRepository(wrappedDB),
		products:  productRepo.NewRepository(wrappedDB),
		support:   supportRepo.NewRepository(wrappedDB),
		txManager: txmanager.NewTransactionManager(wrappedDB, log),
		close:     func() { db.Close() },
	}, nil
}
