// cmd/demo/main.go
//
// Runs the TechFlow demo campaign end to end in dry-run mode against
// the configured gateway. Nothing is actually sent.
package main

import (
	"context"
	"log"
	"strings"

	"github.com/joho/godotenv"

	"github.com/influenceos/influenceos-backend/internal/analyzer"
	"github.com/influenceos/influenceos-backend/internal/config"
	"github.com/influenceos/influenceos-backend/internal/llm"
	"github.com/influenceos/influenceos-backend/internal/model"
	"github.com/influenceos/influenceos-backend/internal/outreach"
	"github.com/influenceos/influenceos-backend/internal/platform"
	"github.com/influenceos/influenceos-backend/internal/registry"
	"github.com/influenceos/influenceos-backend/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	cfg := config.Load()
	ctx := context.Background()

	var generator llm.TextGenerator
	if cfg.GeminiKey != "" {
		if gemini, err := llm.NewGeminiClient(ctx, cfg.GeminiKey, cfg.GeminiModel); err == nil {
			generator = gemini
		}
	}

	social := platform.NewGatewayClient(cfg.GatewayURL)

	svc := &service.OutreachService{
		Store:     registry.NewInMemoryStore(),
		Analyzer:  &analyzer.Analyzer{Social: social, LLM: generator},
		Generator: &outreach.Generator{LLM: generator},
		Social:    social,
	}

	demoBrand := model.BrandConfig{
		Name:  "TechFlow",
		Goals: []string{"increase brand awareness", "drive app downloads"},
		TargetAudience: model.TargetAudience{
			AgeRange:  "18-35",
			Interests: []string{"tech", "productivity", "lifestyle"},
			Location:  "urban",
		},
		Budget:       "$1,000-$5,000 per creator",
		Duration:     "3 months",
		Requirements: []string{"authentic testimonials", "tutorial content"},
		Values:       []string{"innovation", "simplicity", "empowerment"},
		Formats:      []string{"posts", "stories", "reels"},
	}

	demoInfluencers := []string{"tech_sarah", "lifestyle_mike", "productivity_queen"}

	log.Println("🚀 InfluenceOS demo - AI-powered influencer outreach")
	log.Println("📋 Creating campaign for TechFlow...")
	log.Println("Target influencers:", strings.Join(demoInfluencers, ", "))

	summary, err := svc.CreateCampaign(ctx, demoBrand, demoInfluencers, "TechFlow_Launch")
	if err != nil {
		log.Fatal("failed to create campaign:", err)
	}

	log.Printf("📊 Campaign summary: %d influencers analyzed, avg compatibility %.1f%%, avg predicted response %.1f%%\n",
		summary.TotalInfluencers, summary.AvgCompatibility*100, summary.AvgPredictedResponse*100)

	log.Println("📤 Previewing personalized messages (dry run)...")
	result, err := svc.SendCampaignMessages(ctx, summary.CampaignID, true)
	if err != nil {
		log.Fatal("failed to preview messages:", err)
	}

	log.Printf("✅ Demo complete! %d messages prepared\n", len(result.Results))
}
