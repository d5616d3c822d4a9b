package main

import (
	"context"
	"encoding/json"
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

	"github.com/vmaksimov/foodgram-api/internal/handlers"
	"github.com/vmaksimov/foodgram-api/internal/jwt"
	"github.com/vmaksimov/foodgram-api/internal/logger"
	"github.com/vmaksimov/foodgram-api/internal/middlewares"
	"github.com/vmaksimov/foodgram-api/internal/models"
	"github.com/vmaksimov/foodgram-api/internal/repositories"
	"github.com/vmaksimov/foodgram-api/internal/services"
	"github.com/vmaksimov/foodgram-api/internal/storage"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
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

// @title foodgram API
// @version 1.0.0
// @description Recipe publishing service with favorites, shopping carts and author subscriptions
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		minioEndpoint, minioAccessKey, minioSecretKey,
		minioBucket, minioUseSSL, minioPublicURL,
		jwtSecret, jwtExp,
		migrationsDir, ingredientsFile,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		minioEndpoint, minioAccessKey, minioSecretKey,
		minioBucket, minioUseSSL, minioPublicURL,
		jwtSecret, jwtExp,
		migrationsDir, ingredientsFile,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, object storage, JWT, migration, and seed
// configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	minioEndpoint, minioAccessKey, minioSecretKey string,
	minioBucket string, minioUseSSL bool, minioPublicURL string,
	jwtSecretKey string, jwtExpSecond int,
	migrationsDir, ingredientsFile string,
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
	pgDB = getEnv("POSTGRES_DB", "foodgram")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// MinIO config
	minioEndpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	minioAccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	minioSecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	minioBucket = getEnv("MINIO_BUCKET", "media")
	if minioUseSSL, err = strconv.ParseBool(getEnv("MINIO_USE_SSL", "false")); err != nil {
		return
	}
	minioPublicURL = getEnv("MINIO_PUBLIC_URL", "http://localhost:9000")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "86400")); err != nil {
		return
	}

	// Migrations and seed data
	migrationsDir = getEnv("MIGRATIONS_DIR", "migrations")
	ingredientsFile = getEnv("INGREDIENTS_FILE", "")

	return
}

// run initializes the logger, database, object storage, and HTTP
// server. It applies migrations, seeds the ingredient catalog, sets up
// routes, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	minioEndpoint, minioAccessKey, minioSecretKey string,
	minioBucket string, minioUseSSL bool, minioPublicURL string,
	jwtSecretKey string, jwtExpSecond int,
	migrationsDir, ingredientsFile string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d", pgHost, pgPort)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}

	// Apply migrations
	migrator, err := migrate.New("file://"+migrationsDir, dsn)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	if err := migrator.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migrate up failed: %w", err)
	}
	logger.Log.Info("Migrations applied")

	// Connect to MinIO
	minioClient, err := storage.NewMinioClient(minioEndpoint, minioAccessKey, minioSecretKey, minioBucket, minioUseSSL)
	if err != nil {
		return fmt.Errorf("MinIO connection error: %w", err)
	}
	images := storage.NewImageStore(minioClient, minioPublicURL)
	if err := images.EnsureBucket(ctx); err != nil {
		return fmt.Errorf("failed to ensure bucket: %w", err)
	}

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	ingredientRepo := repositories.NewIngredientRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	recipeReadRepo := repositories.NewRecipeReadRepository(db, middlewares.GetTxFromContext)
	recipeWriteRepo := repositories.NewRecipeWriteRepository(db, middlewares.GetTxFromContext)
	favoriteRepo := repositories.NewFavoriteRepository(db, middlewares.GetTxFromContext)
	cartRepo := repositories.NewShoppingCartRepository(db, middlewares.GetTxFromContext)
	subscriptionRepo := repositories.NewSubscriptionRepository(db, middlewares.GetTxFromContext)
	shoppingListRepo := repositories.NewShoppingListRepository(db)

	// Seed the ingredient catalog
	if ingredientsFile != "" {
		if err := importIngredients(ctx, ingredientsFile, ingredientRepo); err != nil {
			return fmt.Errorf("failed to import ingredients: %w", err)
		}
	}

	// Initialize JWT service
	jwtService := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtService)
	userService := services.NewUserService(userReadRepo, userWriteRepo, subscriptionRepo, images)
	ingredientService := services.NewIngredientService(ingredientRepo)
	tagService := services.NewTagService(tagRepo)
	recipeService := services.NewRecipeService(
		recipeReadRepo, recipeWriteRepo,
		tagRepo, ingredientRepo,
		userReadRepo, subscriptionRepo,
		favoriteRepo, cartRepo,
		images,
	)
	favoriteService := services.NewCollectionService(favoriteRepo, recipeReadRepo)
	cartService := services.NewCollectionService(cartRepo, recipeReadRepo)
	shoppingListService := services.NewShoppingListService(shoppingListRepo)
	subscriptionService := services.NewSubscriptionService(subscriptionRepo, userReadRepo)

	// Middlewares
	authMiddleware := middlewares.AuthMiddleware(jwtService)
	optionalAuthMiddleware := middlewares.OptionalAuthMiddleware(jwtService)
	txMiddleware := middlewares.TxMiddleware(db)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api", func(r chi.Router) {
		// Public routes with an optional viewer
		r.Group(func(r chi.Router) {
			r.Use(optionalAuthMiddleware)
			r.Post("/users", handlers.NewRegisterHandler(authService))
			r.Post("/auth/token/login", handlers.NewLoginHandler(authService))
			r.Get("/users", handlers.NewUserListHandler(userService))
			r.Get("/users/{id}", handlers.NewUserDetailHandler(userService))
			r.Get("/ingredients", handlers.NewIngredientListHandler(ingredientService))
			r.Get("/ingredients/{id}", handlers.NewIngredientDetailHandler(ingredientService))
			r.Get("/tags", handlers.NewTagListHandler(tagService))
			r.Get("/tags/{id}", handlers.NewTagDetailHandler(tagService))
			r.Get("/recipes", handlers.NewRecipeListHandler(recipeService))
			r.Get("/recipes/{id}", handlers.NewRecipeDetailHandler(recipeService))
		})

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Get("/users/me", handlers.NewMeHandler(userService))
			r.Post("/users/set_password", handlers.NewPasswordHandler(authService))
			r.Put("/users/me/avatar", handlers.NewAvatarSetHandler(userService))
			r.Delete("/users/me/avatar", handlers.NewAvatarClearHandler(userService))
			r.Get("/users/subscriptions", handlers.NewSubscriptionListHandler(subscriptionService))
			r.Post("/users/{id}/subscribe", handlers.NewSubscribeHandler(subscriptionService))
			r.Delete("/users/{id}/subscribe", handlers.NewUnsubscribeHandler(subscriptionService))
			r.Post("/recipes/{id}/favorite", handlers.NewCollectionAddHandler(favoriteService))
			r.Delete("/recipes/{id}/favorite", handlers.NewCollectionRemoveHandler(favoriteService))
			r.Post("/recipes/{id}/shopping_cart", handlers.NewCollectionAddHandler(cartService))
			r.Delete("/recipes/{id}/shopping_cart", handlers.NewCollectionRemoveHandler(cartService))
			r.Get("/recipes/download_shopping_cart", handlers.NewShoppingListDownloadHandler(shoppingListService))
		})

		// Mutating recipe routes run inside a transaction so tag and
		// ingredient replacement stays atomic.
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Use(txMiddleware)
			r.Post("/recipes", handlers.NewRecipeCreateHandler(recipeService))
			r.Patch("/recipes/{id}", handlers.NewRecipeUpdateHandler(recipeService))
			r.Delete("/recipes/{id}", handlers.NewRecipeDeleteHandler(recipeService))
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

// importIngredients seeds the catalog from a JSON file of
// {"name", "measurement_unit"} entries. Names already present are
// skipped, so re-running the import is safe.
func importIngredients(ctx context.Context, path string, repo *repositories.IngredientRepository) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var entries []struct {
		Name            string `json:"name"`
		MeasurementUnit string `json:"measurement_unit"`
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}

	ingredients := make([]models.IngredientDB, 0, len(entries))
	for _, entry := range entries {
		ingredients = append(ingredients, models.IngredientDB{
			Name:            entry.Name,
			MeasurementUnit: entry.MeasurementUnit,
		})
	}

	imported, err := repo.SaveBatch(ctx, ingredients)
	if err != nil {
		return err
	}
	logger.Log.Infof("Imported %d of %d ingredients from %s", imported, len(entries), path)
	return nil
}
