package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/golang-migrate/migrate/v4"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/grenade-guide/internal/handlers"
	"github.com/sbilibin2017/grenade-guide/internal/jwt"
	"github.com/sbilibin2017/grenade-guide/internal/logger"
	"github.com/sbilibin2017/grenade-guide/internal/middlewares"
	"github.com/sbilibin2017/grenade-guide/internal/models"
	"github.com/sbilibin2017/grenade-guide/internal/repositories"
	"github.com/sbilibin2017/grenade-guide/internal/services"
	"golang.org/x/crypto/bcrypt"

	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title grenade-guide API
// @version 1.0.0
// @description Catalog of grenade lineup videos for Counter-Strike maps
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath, runMigrations := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaAddr, kafkaTopic,
		jwtSecret, jwtExpSecond, jwtRememberExpSecond,
		adminUsername, adminEmail, adminPassword,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaAddr, kafkaTopic,
		jwtSecret, jwtExpSecond, jwtRememberExpSecond,
		adminUsername, adminEmail, adminPassword,
		runMigrations,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path and
// whether database migrations should be applied on startup.
func parseFlags() (string, bool) {
	c := flag.String("c", "config.env", "Path to configuration file")
	m := flag.Bool("m", false, "Apply database migrations before starting")
	flag.Parse()
	return *c, *m
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaAddr, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond, jwtRememberExpSecond int,
	adminUsername, adminEmail, adminPassword string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "grenade_guide")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")

	// Kafka config, an empty address disables event publishing
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "video-events")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}
	if jwtRememberExpSecond, err = strconv.Atoi(getEnv("JWT_REMEMBER_EXP_SECOND", "2592000")); err != nil {
		return
	}

	// Bootstrap admin account, an empty password disables seeding
	adminUsername = getEnv("ADMIN_USERNAME", "admin")
	adminEmail = getEnv("ADMIN_EMAIL", "admin@example.com")
	adminPassword = getEnv("ADMIN_PASSWORD", "")

	return
}

// run initializes the logger, database, Redis, Kafka, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaAddr, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond, jwtRememberExpSecond int,
	adminUsername, adminEmail, adminPassword string,
	runMigrations bool,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Errorw("PostgreSQL ping failed", "error", err)
		return err
	}

	// Apply migrations
	if runMigrations {
		migrateDSN := fmt.Sprintf("pgx5://%s:%s@%s:%d/%s?sslmode=disable",
			pgUser, pgPassword, pgHost, pgPort, pgDB)
		migrator, err := migrate.New("file://migrations", migrateDSN)
		if err != nil {
			logger.Log.Errorw("failed to create migrator", "error", err)
			return err
		}
		if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			logger.Log.Errorw("migrations failed", "error", err)
			return err
		}
		logger.Log.Info("Migrations applied")
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Errorw("Redis connection error", "error", err)
		return err
	}
	defer rdb.Close()

	// Kafka writer for video lifecycle events
	var kafkaWriter services.KafkaWriter
	if kafkaAddr != "" {
		writer := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer writer.Close()
		kafkaWriter = writer
		logger.Log.Infof("Kafka writer configured for topic %s at %s", kafkaTopic, kafkaAddr)
	}

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(jwtSecretKey),
		jwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
		jwt.WithRememberExpiration(time.Duration(jwtRememberExpSecond)*time.Second),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	mapRepo := repositories.NewMapReadRepository(db)
	grenadeRepo := repositories.NewGrenadeReadRepository(db)
	videoReadRepo := repositories.NewVideoReadRepository(db)
	videoWriteRepo := repositories.NewVideoWriteRepository(db, middlewares.GetTxFromContext)
	sessionRepo := repositories.NewSessionRepository(rdb)

	// Bootstrap admin account
	if adminPassword != "" {
		if err := ensureAdmin(ctx, userReadRepo, userWriteRepo, adminUsername, adminEmail, adminPassword); err != nil {
			logger.Log.Errorw("failed to ensure admin account", "error", err)
			return err
		}
	}

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens, sessionRepo)
	catalogService := services.NewCatalogService(mapRepo, grenadeRepo, videoReadRepo, videoWriteRepo, userReadRepo, kafkaWriter)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	homeHandler := handlers.NewHomeHandler(catalogService)
	videosHandler := handlers.NewVideosHandler(catalogService)
	exportHandler := handlers.NewExportHandler(catalogService)
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	logoutHandler := handlers.NewLogoutHandler(authService)
	addVideoHandler := handlers.NewAddVideoHandler(catalogService)
	editVideoHandler := handlers.NewEditVideoHandler(catalogService)
	deleteVideoHandler := handlers.NewDeleteVideoHandler(catalogService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Get("/health", healthHandler)
	r.Get("/", homeHandler)
	r.Get("/videos", videosHandler)
	r.Get("/videos/export", exportHandler)
	r.Post("/register", registerHandler)
	r.Post("/login", loginHandler)

	// Protected routes with session middleware
	authMiddleware := middlewares.AuthMiddleware(tokens, authService)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/logout", logoutHandler)

		r.Group(func(r chi.Router) {
			r.Use(middlewares.TxMiddleware(db))
			r.Post("/videos", addVideoHandler)
			r.Put("/videos/{videoID}", editVideoHandler)
			r.Delete("/videos/{videoID}", deleteVideoHandler)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// ensureAdmin creates the admin account on first start. An existing user with
// the configured username is left untouched.
func ensureAdmin(ctx context.Context, reader *repositories.UserReadRepository, writer *repositories.UserWriteRepository, username, email, password string) error {
	existing, err := reader.GetByUsernameOrEmail(ctx, &username, &email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if _, err := writer.Save(ctx, username, email, string(hash), models.RoleAdmin); err != nil {
		return err
	}
	logger.Log.Infof("Admin account %s created", username)
	return nil
}
