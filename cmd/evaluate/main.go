package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/propie/recommendation-engine/internal/adapters/memory"
	"github.com/propie/recommendation-engine/internal/application/services"
	"github.com/propie/recommendation-engine/internal/evaluation"
	"github.com/propie/recommendation-engine/internal/prediction"
	"github.com/propie/recommendation-engine/pkg/config"
)

func main() {
	goldenPath := flag.String("scenarios", "config/golden_scenarios.json", "path to the golden scenario file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	scenarios, err := evaluation.LoadGoldenScenarios(*goldenPath)
	if err != nil {
		log.Fatalf("Failed to load golden scenarios: %v", err)
	}
	if err := evaluation.ValidateGoldenScenarios(scenarios); err != nil {
		log.Fatalf("Invalid golden scenarios: %v", err)
	}

	markets := memory.NewMarketDataStore()
	if err := markets.Replace(context.Background(), memory.SeedIrishMarkets(time.Now())); err != nil {
		log.Fatalf("Failed to seed market data: %v", err)
	}

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

	service := services.NewRecommendationService(
		services.NewValidationService(),
		services.NewFeatureExtractor(),
		services.NewScoringService(markets),
		services.NewReasoningService(),
		predictor,
	)

	runner := evaluation.NewRunner(service)
	summary, err := runner.Run(context.Background(), scenarios)
	if err != nil {
		log.Fatalf("Evaluation failed: %v", err)
	}

	// Output results as JSON
	out, _ := json.MarshalIndent(summary, "", "  ")
	fmt.Println(string(out))
}
