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

	addSessionHandler "github.com/heyfarai/simplyteams/internal/api/handlers/add_session"
	cancelRentalHandler "github.com/heyfarai/simplyteams/internal/api/handlers/cancel_rental"
	checkAvailabilityHandler "github.com/heyfarai/simplyteams/internal/api/handlers/check_availability"
	confirmRentalHandler "github.com/heyfarai/simplyteams/internal/api/handlers/confirm_rental"
	createFacilityHandler "github.com/heyfarai/simplyteams/internal/api/handlers/create_facility"
	createProgramHandler "github.com/heyfarai/simplyteams/internal/api/handlers/create_program"
	createRentalHandler "github.com/heyfarai/simplyteams/internal/api/handlers/create_rental"
	getFacilityHandler "github.com/heyfarai/simplyteams/internal/api/handlers/get_facility"
	getProgramHandler "github.com/heyfarai/simplyteams/internal/api/handlers/get_program"
	getRentalHandler "github.com/heyfarai/simplyteams/internal/api/handlers/get_rental"
	listFacilitiesHandler "github.com/heyfarai/simplyteams/internal/api/handlers/list_facilities"
	listProgramsHandler "github.com/heyfarai/simplyteams/internal/api/handlers/list_programs"
	listRentalsHandler "github.com/heyfarai/simplyteams/internal/api/handlers/list_rentals"
	updateFacilityHandler "github.com/heyfarai/simplyteams/internal/api/handlers/update_facility"
	updateProgramHandler "github.com/heyfarai/simplyteams/internal/api/handlers/update_program"
	"github.com/heyfarai/simplyteams/internal/api/middleware"
	"github.com/heyfarai/simplyteams/internal/config"
	facilityRepo "github.com/heyfarai/simplyteams/internal/infra/storage/facility"
	programRepo "github.com/heyfarai/simplyteams/internal/infra/storage/program"
	rentalRepo "github.com/heyfarai/simplyteams/internal/infra/storage/rental"
	sessionRepo "github.com/heyfarai/simplyteams/internal/infra/storage/session"
	identityServiceClient "github.com/heyfarai/simplyteams/internal/integrations/identityservice"
	facilitiesService "github.com/heyfarai/simplyteams/internal/service/facilities"
	programsService "github.com/heyfarai/simplyteams/internal/service/programs"
	rentalsService "github.com/heyfarai/simplyteams/internal/service/rentals"
	checkAvailabilityUC "github.com/heyfarai/simplyteams/internal/usecase/check_availability"
	createProgramUC "github.com/heyfarai/simplyteams/internal/usecase/create_program"
	createRentalUC "github.com/heyfarai/simplyteams/internal/usecase/create_rental"
	updateProgramUC "github.com/heyfarai/simplyteams/internal/usecase/update_program"
	"github.com/heyfarai/simplyteams/pkg/logger"
	"github.com/heyfarai/simplyteams/pkg/metrics"
	"github.com/heyfarai/simplyteams/pkg/txmanager"
)

// Период фонового сброса pending аренд с истекшим холдом.
// Сброс косметический: скан конфликтов и так не учитывает истекшие холды.
const holdSweepInterval = time.Minute

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

	log.Info("Starting simplyteams booking service...")
	log.Info("Configuration loaded from config.toml")

	// Часы работы по умолчанию валидируем на старте
	defaultOpen, defaultClose, err := cfg.Booking.OperatingHours()
	if err != nil {
		log.Fatal("Invalid booking config: %v", err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем интеграционного клиента
	identityClient := identityServiceClient.NewClient(
		cfg.IdentityService.URL,
		time.Duration(cfg.IdentityService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (IdentityService=%s timeout=%ds)",
		cfg.IdentityService.URL, cfg.IdentityService.Timeout)

	// Инициализируем репозитории
	facilityRepository := facilityRepo.NewRepository(db)
	programRepository := programRepo.NewRepository(db)
	sessionRepository := sessionRepo.NewRepository(db)
	rentalRepository := rentalRepo.NewRepository(db)

	txMgr := txmanager.NewTransactionManager(db)

	// Политика бронирования: дефолтные часы работы и срок холда
	policy := createRentalUC.Policy{
		DefaultOpenTime:  defaultOpen,
		DefaultCloseTime: defaultClose,
		HoldMinutes:      cfg.Booking.HoldMinutes,
	}
	availabilityPolicy := checkAvailabilityUC.Policy{
		DefaultOpenTime:  defaultOpen,
		DefaultCloseTime: defaultClose,
	}

	// Инициализируем сервисы
	facilitiesSvc := facilitiesService.NewService(facilityRepository, log)
	programsSvc := programsService.NewService(programRepository, sessionRepository, log)
	rentalsSvc := rentalsService.NewService(rentalRepository, log)

	// Инициализируем use cases
	createRentalUseCase := createRentalUC.NewUseCase(
		facilityRepository,
		rentalRepository,
		sessionRepository,
		identityClient,
		txMgr,
		metricsCollector,
		policy,
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		facilityRepository,
		rentalRepository,
		sessionRepository,
		txMgr,
		availabilityPolicy,
		log,
	)
	createProgramUseCase := createProgramUC.NewUseCase(
		programRepository,
		sessionRepository,
		facilityRepository,
		txMgr,
		log,
	)
	updateProgramUseCase := updateProgramUC.NewUseCase(
		programRepository,
		sessionRepository,
		facilityRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createFacility := createFacilityHandler.NewHandler(facilitiesSvc, log)
	getFacility := getFacilityHandler.NewHandler(facilitiesSvc, log)
	listFacilities := listFacilitiesHandler.NewHandler(facilitiesSvc, log)
	updateFacility := updateFacilityHandler.NewHandler(facilitiesSvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)

	createProgram := createProgramHandler.NewHandler(createProgramUseCase, log)
	updateProgram := updateProgramHandler.NewHandler(updateProgramUseCase, log)
	getProgram := getProgramHandler.NewHandler(programsSvc, log)
	listPrograms := listProgramsHandler.NewHandler(programsSvc, log)
	addSession := addSessionHandler.NewHandler(programsSvc, log)

	createRental := createRentalHandler.NewHandler(createRentalUseCase, log)
	getRental := getRentalHandler.NewHandler(rentalsSvc, log)
	listRentals := listRentalsHandler.NewHandler(rentalsSvc, log)
	confirmRental := confirmRentalHandler.NewHandler(rentalsSvc, log)
	cancelRental := cancelRentalHandler.NewHandler(rentalsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// --- Площадки ---
	api.HandleFunc("/facilities", listFacilities.Handle).Methods(http.MethodGet)
	api.HandleFunc("/facilities/{facilityId}", getFacility.Handle).Methods(http.MethodGet)
	api.HandleFunc("/facilities/{facilityId}/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// --- Программы ---
	api.HandleFunc("/programs", listPrograms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/programs/{programId}", getProgram.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Управление площадками ---
	protected.HandleFunc("/facilities", createFacility.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/facilities/{facilityId}", updateFacility.Handle).Methods(http.MethodPut)

	// --- Управление программами ---
	protected.HandleFunc("/programs", createProgram.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/programs/{programId}", updateProgram.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/programs/{programId}/sessions", addSession.Handle).Methods(http.MethodPost)

	// --- Аренды ---
	protected.HandleFunc("/rentals", createRental.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/rentals", listRentals.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/rentals/{rentalId}", getRental.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/rentals/{rentalId}/confirm", confirmRental.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/rentals/{rentalId}/cancel", cancelRental.Handle).Methods(http.MethodPatch)

	// Фоновый сброс истекших холдов
	stopSweepCh := make(chan struct{})
	go func() {
		ticker := time.NewTicker(holdSweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				expired, err := rentalRepository.ExpireLapsedHolds(context.Background(), time.Now().UTC())
				if err != nil {
					log.Error("Hold sweep failed: %v", err)
					continue
				}
				if expired > 0 {
					log.Info("Hold sweep: expired %d lapsed rentals", expired)
				}
			case <-stopSweepCh:
				return
			}
		}
	}()

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

	close(stopSweepCh)

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
