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

	createBookingHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/delete_booking"
	getAvailableRoomsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_available_rooms"
	getBookingHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_booking"
	getBookingCostHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_booking_cost"
	getBookingDurationHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_booking_duration"
	listBookingsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/list_bookings"
	roomCategoriesHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/room_categories"
	roomsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/rooms"
	updateBookingHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/update_booking"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/config"
	bookingRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/booking"
	categoryRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/category"
	roomRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/room"
	bookingsService "github.com/m04kA/SMC-ReservationService/internal/service/bookings"
	catalogService "github.com/m04kA/SMC-ReservationService/internal/service/catalog"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservation"
	createBookingUC "github.com/m04kA/SMC-ReservationService/internal/usecase/create_booking"
	getAvailableRoomsUC "github.com/m04kA/SMC-ReservationService/internal/usecase/get_available_rooms"
	updateBookingUC "github.com/m04kA/SMC-ReservationService/internal/usecase/update_booking"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
	"github.com/m04kA/SMC-ReservationService/pkg/metrics"
	"github.com/m04kA/SMC-ReservationService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-ReservationService...")

	location, err := cfg.Reservation.Location()
	if err != nil {
		log.Fatal("Invalid reservation timezone %q: %v", cfg.Reservation.Timezone, err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Все запросы идут через обёртку: с метриками или без
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	categoryRepository := categoryRepo.NewRepository(wrappedDB)
	roomRepository := roomRepo.NewRepository(wrappedDB)
	bookingRepository := bookingRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(categoryRepository, roomRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, txMgr, log)
	validator := reservation.NewValidator(
		bookingRepository,
		catalogSvc,
		reservation.NewSystemClock(location),
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		catalogSvc,
		validator,
		txMgr,
		metricsCollector,
		log,
	)
	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingRepository,
		catalogSvc,
		validator,
		txMgr,
		metricsCollector,
		log,
	)
	getAvailableRoomsUseCase := getAvailableRoomsUC.NewUseCase(roomRepository, validator, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBookingDuration := getBookingDurationHandler.NewHandler(bookingSvc, log)
	getBookingCost := getBookingCostHandler.NewHandler(bookingSvc, log)
	rooms := roomsHandler.NewHandler(catalogSvc, log)
	getAvailableRooms := getAvailableRoomsHandler.NewHandler(getAvailableRoomsUseCase, log)
	categories := roomCategoriesHandler.NewHandler(catalogSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))
	r.Use(middleware.Recovery(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Категории комнат ---
	api.HandleFunc("/rooms/categories", categories.List).Methods(http.MethodGet)
	api.HandleFunc("/rooms/categories", categories.Create).Methods(http.MethodPost)
	api.HandleFunc("/rooms/categories/{categoryId}", categories.Get).Methods(http.MethodGet)
	api.HandleFunc("/rooms/categories/{categoryId}", categories.Update).Methods(http.MethodPut)
	api.HandleFunc("/rooms/categories/{categoryId}", categories.Delete).Methods(http.MethodDelete)

	// --- Комнаты ---
	api.HandleFunc("/rooms", rooms.List).Methods(http.MethodGet)
	api.HandleFunc("/rooms", rooms.Create).Methods(http.MethodPost)
	api.HandleFunc("/rooms/available", getAvailableRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId:[0-9]+}", rooms.Get).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId:[0-9]+}", rooms.Update).Methods(http.MethodPut)
	api.HandleFunc("/rooms/{roomId:[0-9]+}", rooms.Delete).Methods(http.MethodDelete)

	// --- Бронирования ---
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)
	api.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/bookings/{bookingId}/duration", getBookingDuration.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/cost", getBookingCost.Handle).Methods(http.MethodGet)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
