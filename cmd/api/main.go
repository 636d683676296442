package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/propie/recommendation-engine/internal/adapters/cache"
	"github.com/propie/recommendation-engine/internal/adapters/database"
	"github.com/propie/recommendation-engine/internal/adapters/events"
	"github.com/propie/recommendation-engine/internal/adapters/memory"
	"github.com/propie/recommendation-engine/internal/adapters/search"
	"github.com/propie/recommendation-engine/internal/api/handlers"
	"github.com/propie/recommendation-engine/internal/api/routes"
	"github.com/propie/recommendation-engine/internal/application/services"
	"github.com/propie/recommendation-engine/internal/domain/providers"
	"github.com/propie/recommendation-engine/internal/domain/repositories"
	"github.com/propie/recommendation-engine/internal/infrastructure/clients/postgres"
	"github.com/propie/recommendation-engine/internal/infrastructure/clients/redis"
	"github.com/propie/recommendation-engine/internal/infrastructure/clients/typesense"
	"github.com/propie/recommendation-engine/internal/infrastructure/observability"
	"github.com/propie/recommendation-engine/internal/prediction"
	"github.com/propie/recommendation-engine/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Server.Environment)

	// Initialize OpenTelemetry if enabled
	var shutdown func(context.Context) error
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err = observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			log.Printf("Warning: Failed to set up OpenTelemetry: %v", err)
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down OpenTelemetry: %v", err)
				}
			}()
			log.Println("OpenTelemetry initialized successfully")
		}
	}

	// Initialize metrics
	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatalf("Failed to initialize metrics: %v", err)
	}

	// Initialize database client
	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Printf("Warning: Failed to initialize PostgreSQL client: %v", err)
		// Continue without Postgres - interactions and market data fall
		// back to in-memory stores
	} else {
		defer pgClient.Close()
		log.Println("PostgreSQL client initialized successfully")
	}

	// Initialize Redis client
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		log.Printf("Warning: Failed to initialize Redis client: %v", err)
		// Continue without Redis - the application can work without caching
	} else {
		defer redisClient.Close()
		log.Println("Redis client initialized successfully")
	}

	// Initialize Typesense client
	typesenseClient, err := typesense.NewClient(&cfg.Typesense)
	if err != nil {
		log.Printf("Warning: Failed to initialize Typesense client: %v", err)
	} else {
		log.Println("Typesense client initialized successfully")
	}

	// Initialize adapters

	var interactionRepo repositories.InteractionRepository
	var marketRepo repositories.MarketDataRepository
	if pgClient != nil {
		interactionRepo = database.NewInteractionAdapter(pgClient)
		marketAdapter, err := database.NewMarketDataAdapter(ctx, pgClient)
		if err != nil {
			log.Fatalf("Failed to load market data: %v", err)
		}
		marketRepo = marketAdapter
	} else {
		interactionRepo = memory.NewInteractionStore()
		store := memory.NewMarketDataStore()
		if err := store.Replace(ctx, memory.SeedIrishMarkets(time.Now())); err != nil {
			log.Fatalf("Failed to seed market data: %v", err)
		}
		marketRepo = store
		log.Println("Running with in-memory interaction and market stores")
	}

	var cacheProvider providers.CacheProvider
	if redisClient != nil {
		cacheProvider = cache.NewRedisAdapter(redisClient)
	}

	var propertyRepo repositories.PropertyRepository
	if typesenseClient != nil {
		adapter := search.NewTypesenseAdapter(typesenseClient)
		// Ensure schema exists
		if err := adapter.InitSchema(context.Background()); err != nil {
			log.Printf("Warning: Failed to init Typesense schema: %v", err)
		}
		if cacheProvider != nil {
			propertyRepo = search.NewCachedPropertyAdapter(adapter, cacheProvider)
			log.Println("Property adapter wrapped with caching layer")
		} else {
			propertyRepo = adapter
		}
	}

	// Initialize event bus for interaction events
	var eventBus providers.EventBus
	if redisClient != nil {
		eventBus = events.NewRedisEventBus(redisClient)
		log.Println("Event bus initialized successfully")
	} else {
		log.Println("Event bus disabled (Redis not available)")
	}

	// Initialize predictor
	rng := rand.New(rand.NewSource(cfg.Engine.PredictorSeed))
	predictor, err := prediction.NewNetwork(
		services.FeatureCount,
		cfg.Engine.PredictorHidden,
		services.FeatureNames,
		rng,
	)
	if err != nil {
		log.Fatalf("Failed to initialize predictor: %v", err)
	}

	// Initialize services
	validator := services.NewValidationService()
	extractor := services.NewFeatureExtractor()
	scorer := services.NewScoringService(marketRepo)
	reasoner := services.NewReasoningService()

	recommendationService := services.NewRecommendationService(
		validator,
		extractor,
		scorer,
		reasoner,
		predictor,
	)

	interactionService := services.NewInteractionService(
		interactionRepo,
		propertyRepo,
		predictor,
		extractor,
		eventBus,
		cfg.Engine.RetrainMinSamples,
	)

	// Initialize handlers
	recommendationHandler := handlers.NewRecommendationHandler(recommendationService, propertyRepo, metrics)
	interactionHandler := handlers.NewInteractionHandler(interactionService)
	modelHandler := handlers.NewModelHandler(interactionService, metrics)

	// Set up router
	router := routes.NewRouter(
		recommendationHandler,
		interactionHandler,
		modelHandler,
		metrics,
	)

	handler := router.SetupRoutes()

	// Create HTTP server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s", serverAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	// Close event bus
	if eventBus != nil {
		if err := eventBus.Close(); err != nil {
			log.Printf("Error closing event bus: %v", err)
		}
	}

	log.Println("Server stopped")
}
