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
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	_ "github.com/sbilibin2017/gw-remittance/docs"
	"github.com/sbilibin2017/gw-remittance/internal/catalog"
	"github.com/sbilibin2017/gw-remittance/internal/facades"
	"github.com/sbilibin2017/gw-remittance/internal/handlers"
	"github.com/sbilibin2017/gw-remittance/internal/jwt"
	"github.com/sbilibin2017/gw-remittance/internal/logger"
	"github.com/sbilibin2017/gw-remittance/internal/middlewares"
	"github.com/sbilibin2017/gw-remittance/internal/repositories"
	"github.com/sbilibin2017/gw-remittance/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const (
	ratesSourceStatic = "static"
	ratesSourceGRPC   = "grpc"
)

var errUnknownRatesSource = errors.New("RATES_SOURCE must be static or grpc")

// config holds everything the service reads from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PgHost         string
	PgPort         int
	PgUser         string
	PgPassword     string
	PgDB           string
	PgMaxOpenConns int
	PgMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	RedisExpSecond    int

	PricingHost string
	PricingPort string
	RatesSource string

	BoostMultiplier decimal.Decimal

	KafkaBrokers []string
	KafkaTopic   string

	JWTSecretKey string
	JWTExpSecond int

	CORSAllowedOrigins []string
}

// @title gw-remittance API
// @version 1.0.0
// @description Remittance quotes with promotional boost, calculator session, recipients and transfer intents
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application, database, Redis, pricing, Kafka, JWT and CORS configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PgUser = getEnv("POSTGRES_USER", "user")
	cfg.PgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PgDB = getEnv("POSTGRES_DB", "database")
	if cfg.PgPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PgMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PgMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}
	if cfg.RedisExpSecond, err = getInt("REDIS_EXP_SECOND", "60"); err != nil {
		return
	}

	// Pricing backend config
	cfg.PricingHost = getEnv("GW_PRICING_HOST", "localhost")
	cfg.PricingPort = getEnv("GW_PRICING_PORT", "50051")
	cfg.RatesSource = strings.ToLower(getEnv("RATES_SOURCE", ratesSourceStatic))
	if cfg.RatesSource != ratesSourceStatic && cfg.RatesSource != ratesSourceGRPC {
		err = fmt.Errorf("%w: %q", errUnknownRatesSource, cfg.RatesSource)
		return
	}

	// Promo config
	if cfg.BoostMultiplier, err = decimal.NewFromString(getEnv("PROMO_BOOST_MULTIPLIER", "1.1815")); err != nil {
		err = fmt.Errorf("PROMO_BOOST_MULTIPLIER: %w", err)
		return
	}

	// Kafka config
	cfg.KafkaBrokers = splitList(getEnv("KAFKA_BROKERS", ""))
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "transfer-intents")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.JWTExpSecond, err = getInt("JWT_EXP_SECOND", "3600"); err != nil {
		return
	}

	// CORS config
	cfg.CORSAllowedOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", "*"))

	return
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// run initializes the logger, database, pricing backend, Kafka writer and
// HTTP server. It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PgUser, cfg.PgPassword, cfg.PgHost, cfg.PgPort, cfg.PgDB)
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.PgHost, "port", cfg.PgPort, "db", cfg.PgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PgMaxOpenConns)
	db.SetMaxIdleConns(cfg.PgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}
	if err := repositories.Migrate(ctx, db); err != nil {
		return fmt.Errorf("PostgreSQL migration failed: %w", err)
	}

	// Rate sources: the static catalog, optionally fronted by the pricing backend and its Redis cache
	var (
		rateReader services.RateReader
		rateCache  services.RateCache
	)
	if cfg.RatesSource == ratesSourceGRPC {
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("Redis connection error: %w", err)
		}
		defer rdb.Close()

		grpcAddr := fmt.Sprintf("%s:%s", cfg.PricingHost, cfg.PricingPort)
		conn, err := grpc.NewClient(grpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return fmt.Errorf("failed to connect to pricing backend at %s: %w", grpcAddr, err)
		}
		defer conn.Close()

		rateReader = facades.NewPricingGRPCFacade(pb.NewExchangeServiceClient(conn))
		rateCache = repositories.NewRateCacheRepository(rdb, time.Duration(cfg.RedisExpSecond)*time.Second)
		logger.Log.Infow("Live rates enabled", "pricing_addr", grpcAddr)
	}

	// Kafka writer for transfer intents
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:         kafka.TCP(cfg.KafkaBrokers...),
			Topic:        cfg.KafkaTopic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		}
		defer w.Close()
		kafkaWriter = w
	} else {
		logger.Log.Warnw("KAFKA_BROKERS is empty, transfer intents will not be published")
	}

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(time.Duration(cfg.JWTExpSecond)*time.Second),
	)

	// Initialize repositories
	senderWriteRepo := repositories.NewSenderWriteRepository(db, middlewares.GetTxFromContext)
	senderReadRepo := repositories.NewSenderReadRepository(db)
	recipientWriteRepo := repositories.NewRecipientWriteRepository(db, middlewares.GetTxFromContext)
	recipientReadRepo := repositories.NewRecipientReadRepository(db)

	// Initialize services
	rateService := services.NewRateService(catalog.Rates(), rateReader, rateCache)
	quoteService := services.NewQuoteService(rateService, cfg.BoostMultiplier)
	calculatorService := services.NewCalculatorService(rateService, cfg.BoostMultiplier)
	promoService := services.NewPromoService(rateService, cfg.BoostMultiplier)
	onboardingService := services.NewOnboardingService(senderWriteRepo, recipientWriteRepo, tokens)
	senderService := services.NewSenderService(senderReadRepo)
	recipientService := services.NewRecipientService(recipientReadRepo, recipientWriteRepo)
	transferService := services.NewTransferService(quoteService, recipientReadRepo, kafkaWriter, func(code string) bool {
		_, ok := catalog.FindCurrency(code)
		return ok
	})

	// Setup router
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middlewares.RequestIDHeader},
		ExposedHeaders:   []string{middlewares.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.MetricsMiddleware)

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Get("/health", handlers.NewHealthHandler())
		r.Get("/currencies", handlers.NewCurrenciesHandler())
		r.Get("/delivery-methods", handlers.NewDeliveryMethodsHandler())
		r.Get("/payment-methods", handlers.NewPaymentMethodsHandler())
		r.Post("/quotes", handlers.NewQuoteHandler(quoteService))
		r.Get("/promo", handlers.NewPromoHandler(promoService))
		r.Get("/calculator", handlers.NewCalculatorHandler(calculatorService))
		r.Post("/calculator/events", handlers.NewCalculatorEventHandler(calculatorService))
		r.Get("/calculator/ws", handlers.NewCalculatorWSHandler(calculatorService))
		r.With(middlewares.TxMiddleware(db)).Post("/onboarding", handlers.NewOnboardingHandler(onboardingService))

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokens))
			r.Get("/senders/me", handlers.NewSenderProfileHandler(tokens, senderService))
			r.Get("/recipients", handlers.NewRecipientsHandler(tokens, recipientService))
			r.Get("/recipients/{id}", handlers.NewRecipientHandler(tokens, recipientService))
			r.With(middlewares.TxMiddleware(db)).Post("/recipients", handlers.NewCreateRecipientHandler(tokens, recipientService))
			r.Post("/transfers", handlers.NewTransferHandler(tokens, transferService))
		})
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
