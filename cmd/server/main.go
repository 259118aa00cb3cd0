// cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/influenceos/influenceos-backend/internal/analyzer"
	"github.com/influenceos/influenceos-backend/internal/config"
	"github.com/influenceos/influenceos-backend/internal/controller"
	"github.com/influenceos/influenceos-backend/internal/db"
	"github.com/influenceos/influenceos-backend/internal/llm"
	"github.com/influenceos/influenceos-backend/internal/outreach"
	"github.com/influenceos/influenceos-backend/internal/platform"
	"github.com/influenceos/influenceos-backend/internal/queue"
	"github.com/influenceos/influenceos-backend/internal/registry"
	"github.com/influenceos/influenceos-backend/internal/repository"
	"github.com/influenceos/influenceos-backend/internal/service"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	cfg := config.Load()
	ctx := context.Background()

	// LLM capability; the pipeline degrades to fallbacks without it
	var generator llm.TextGenerator
	if cfg.GeminiKey != "" {
		gemini, err := llm.NewGeminiClient(ctx, cfg.GeminiKey, cfg.GeminiModel)
		if err != nil {
			log.Println("⚠️ Gemini client unavailable, using fallbacks:", err)
		} else {
			generator = gemini
			log.Println("✅ LLM ready:", gemini.Name())
		}
	} else {
		log.Println("⚠️ GEMINI_API_KEY not set, creative slots use fallbacks")
	}

	social := platform.NewGatewayClient(cfg.GatewayURL)

	// Send events: RabbitMQ when available, else in-process queue
	var events queue.Queue
	if cfg.AMQPURL != "" {
		pub, err := queue.NewAMQPPublisher(cfg.AMQPURL)
		if err != nil {
			log.Fatal("failed to connect to RabbitMQ:", err)
		}
		defer pub.Close()
		events = pub
		log.Println("✅ Publishing send events to RabbitMQ")
	} else {
		q := queue.NewInMemoryQueue()
		var archive queue.Archiver
		if db.Configured() {
			db.Init()
			archive = &repository.ArchiveRepository{DB: db.DB}
		}
		queue.StartArchiveSubscriber(q, archive)
		events = q
	}

	outreachService := &service.OutreachService{
		Store:     registry.NewInMemoryStore(),
		Analyzer:  &analyzer.Analyzer{Social: social, LLM: generator},
		Generator: &outreach.Generator{LLM: generator},
		Social:    social,
		Events:    events,
		SendDelay: cfg.SendDelay,
	}

	outreachController := &controller.OutreachController{
		OutreachService: outreachService,
	}

	r := chi.NewRouter()

	// Influencer routes
	r.Post("/influencers/{username}/analyze", outreachController.AnalyzeInfluencer)

	// Campaign routes
	r.Post("/campaigns", outreachController.CreateCampaign)
	r.Get("/campaigns", outreachController.ListCampaigns)
	r.Get("/campaigns/{id}", outreachController.GetCampaign)
	r.Post("/campaigns/{id}/send", outreachController.SendCampaign)
	r.Post("/campaigns/{id}/follow-ups/check", outreachController.CheckFollowUps)
	r.Get("/campaigns/{id}/performance", outreachController.CampaignPerformance)
	r.Post("/campaigns/{id}/responses", outreachController.RecordResponse)

	log.Println("🚀 Server running on", cfg.ListenAddr)
	log.Fatal(http.ListenAndServe(cfg.ListenAddr, r))
}
