// internal/service/outreach_service.go
package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/influenceos/influenceos-backend/internal/analyzer"
	appErrors "github.com/influenceos/influenceos-backend/internal/errors"
	"github.com/influenceos/influenceos-backend/internal/model"
	"github.com/influenceos/influenceos-backend/internal/outreach"
	"github.com/influenceos/influenceos-backend/internal/platform"
	"github.com/influenceos/influenceos-backend/internal/queue"
	"github.com/influenceos/influenceos-backend/internal/registry"
)

// OutreachService owns the campaign registry and drives the full
// pipeline: analysis, generation, sending, follow-ups, performance.
type OutreachService struct {
	Store     registry.CampaignStore
	Analyzer  *analyzer.Analyzer
	Generator *outreach.Generator
	Social    platform.SocialClient
	Events    queue.Queue // optional; nil disables the archive pipeline
	Now       func() time.Time
	SendDelay time.Duration // courtesy delay between consecutive real sends
}

func (s *OutreachService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// CampaignSummary mirrors the registry counters plus derived averages.
type CampaignSummary struct {
	CampaignID           string  `json:"campaign_id"`
	Brand                string  `json:"brand"`
	Status               string  `json:"status"`
	TotalInfluencers     int     `json:"total_influencers"`
	MessagesSent         int     `json:"messages_sent"`
	Responses            int     `json:"responses"`
	PositiveResponses    int     `json:"positive_responses"`
	AvgCompatibility     float64 `json:"avg_compatibility"`
	AvgPredictedResponse float64 `json:"avg_predicted_response"`
	ResponseRate         float64 `json:"response_rate"`
}

// SendResult is the per-influencer entry in a batch send.
type SendResult struct {
	Username   string `json:"username"`
	Success    bool   `json:"success"`
	PitchStyle string `json:"pitch_style,omitempty"`
	DryRun     bool   `json:"dry_run,omitempty"`
	Error      string `json:"error,omitempty"`
}

// BatchResult is the outcome of one send pass over a campaign.
type BatchResult struct {
	CampaignID   string       `json:"campaign_id"`
	MessagesSent int          `json:"messages_sent"`
	Results      []SendResult `json:"results"`
}

// FollowUpResult reports which follow-ups fired in one check pass.
type FollowUpResult struct {
	FollowUpsSent int      `json:"follow_ups_sent"`
	Usernames     []string `json:"usernames"`
}

// AnalyzeInfluencer runs a standalone analysis pass without attaching
// the profile to any campaign.
func (s *OutreachService) AnalyzeInfluencer(ctx context.Context, username string) (*model.InfluencerProfile, error) {
	return s.Analyzer.AnalyzeInfluencer(ctx, username)
}

// CreateCampaign analyzes each target influencer in sequence, skipping
// any whose analysis fails. The campaign always ends ready, even when
// zero influencers made it through.
func (s *OutreachService) CreateCampaign(ctx context.Context, cfg model.BrandConfig, usernames []string, name string) (*CampaignSummary, error) {
	brand := cfg.ToBrandCampaign()
	id := fmt.Sprintf("%s_%d", name, s.now().Unix())

	c := registry.NewCampaign(id, name, brand, s.now())
	s.Store.Put(c)

	for _, username := range usernames {
		log.Printf("📊 Analyzing @%s...\n", username)

		profile, err := s.Analyzer.AnalyzeInfluencer(ctx, username)
		if err != nil {
			log.Printf("❌ Could not analyze @%s: %v\n", username, err)
			continue
		}

		log.Printf("🎨 Creating personalized campaign for @%s...\n", username)
		pkg := s.Generator.GenerateCampaign(ctx, profile, brand)

		c.Lock()
		c.AddInfluencer(username, &registry.InfluencerRecord{
			Profile:  profile,
			Outreach: pkg,
			Status:   model.InfluencerReady,
			Messages: []model.SentMessage{},
		})
		c.Unlock()

		log.Printf("✅ Campaign ready for @%s (compatibility %.1f%%, predicted response %.1f%%, pitch %s)\n",
			username, pkg.CompatibilityScore*100, pkg.PredictedResponseRate*100, pkg.PitchStyle)
	}

	c.Lock()
	c.Status = model.CampaignReady
	c.Unlock()

	return s.summarize(c), nil
}

// SendCampaignMessages dispatches the composed message to every
// influencer still in ready state. Dry-run previews only: no counters,
// no status change, no follow-up registration.
func (s *OutreachService) SendCampaignMessages(ctx context.Context, campaignID string, dryRun bool) (*BatchResult, error) {
	c, ok := s.Store.Get(campaignID)
	if !ok {
		return nil, appErrors.NewCampaignNotFound(campaignID)
	}

	c.Lock()
	defer c.Unlock()

	result := &BatchResult{CampaignID: campaignID, Results: []SendResult{}}
	sent := 0

	for _, username := range c.Order {
		rec := c.Influencers[username]
		if rec.Status != model.InfluencerReady {
			continue
		}

		parts := make([]string, 0, len(rec.Outreach.CreativeElements))
		for _, el := range rec.Outreach.CreativeElements {
			parts = append(parts, el.Content)
		}
		fullMessage := strings.Join(parts, "\n\n")

		if dryRun {
			log.Printf("📤 DRY RUN - message to @%s:\n%s\n%s\n%s\n", username,
				strings.Repeat("-", 50), fullMessage, strings.Repeat("-", 50))
			result.Results = append(result.Results, SendResult{
				Username:   username,
				Success:    true,
				DryRun:     true,
				PitchStyle: rec.Outreach.PitchStyle,
			})
			continue
		}

		if sent > 0 && s.SendDelay > 0 {
			time.Sleep(s.SendDelay)
		}

		messageID, err := s.Social.SendMessage(ctx, username, fullMessage)
		if err != nil {
			// Entry stays ready so the caller can retry.
			result.Results = append(result.Results, SendResult{
				Username: username,
				Success:  false,
				Error:    err.Error(),
			})
			continue
		}
		sent++

		sentAt := s.now()
		rec.Status = model.InfluencerMessageSent
		rec.Messages = append(rec.Messages, model.SentMessage{
			Kind:      "initial",
			Content:   fullMessage,
			SentAt:    sentAt,
			MessageID: messageID,
		})
		c.MessagesSent++

		c.Trackers[username] = &registry.FollowUpTracker{
			Strategy: rec.Outreach.FollowUpStrategy,
		}

		s.publishSendEvent(campaignID, username, "initial", rec.Outreach.PitchStyle, fullMessage, sentAt)

		result.Results = append(result.Results, SendResult{
			Username:   username,
			Success:    true,
			PitchStyle: rec.Outreach.PitchStyle,
		})
	}

	result.MessagesSent = c.MessagesSent
	return result, nil
}

// CheckAndSendFollowUps fires at most one follow-up step per tracked
// influencer, gated on elapsed time since the last sent message. The
// views_profile condition is schedule-defined but never evaluated
// here: no profile-view signal source exists.
func (s *OutreachService) CheckAndSendFollowUps(ctx context.Context, campaignID string) (*FollowUpResult, error) {
	c, ok := s.Store.Get(campaignID)
	if !ok {
		return nil, appErrors.NewCampaignNotFound(campaignID)
	}

	c.Lock()
	defer c.Unlock()

	result := &FollowUpResult{Usernames: []string{}}

	for _, username := range c.Order {
		tracker, tracked := c.Trackers[username]
		if !tracked || tracker.Index >= len(tracker.Strategy) {
			continue
		}

		rec := c.Influencers[username]
		if len(rec.Messages) == 0 {
			continue
		}

		step := tracker.Strategy[tracker.Index]
		elapsed := s.now().Sub(rec.Messages[len(rec.Messages)-1].SentAt)

		shouldSend := false
		switch step.Timing {
		case "48_hours":
			shouldSend = elapsed > 48*time.Hour
		case "5_days":
			shouldSend = elapsed > 5*24*time.Hour
		}
		if !shouldSend {
			continue
		}

		messageID, err := s.Social.SendMessage(ctx, username, step.Content)
		if err != nil {
			log.Printf("⚠️ follow-up to @%s failed: %v\n", username, err)
			continue
		}

		sentAt := s.now()
		rec.Messages = append(rec.Messages, model.SentMessage{
			Kind:      "follow_up",
			Content:   step.Content,
			SentAt:    sentAt,
			MessageID: messageID,
		})
		tracker.Index++

		s.publishSendEvent(campaignID, username, "follow_up", "", step.Content, sentAt)

		result.FollowUpsSent++
		result.Usernames = append(result.Usernames, username)
	}

	return result, nil
}

// RecordResponse accepts the external responded transitions the core
// cannot produce on its own.
func (s *OutreachService) RecordResponse(campaignID, username string, positive bool) error {
	c, ok := s.Store.Get(campaignID)
	if !ok {
		return appErrors.NewCampaignNotFound(campaignID)
	}

	c.Lock()
	defer c.Unlock()

	rec, ok := c.Influencers[username]
	if !ok {
		return appErrors.NewInfluencerNotFound(username)
	}
	if rec.Status == model.InfluencerReady {
		return fmt.Errorf("no message sent to @%s yet", username)
	}

	if rec.Status == model.InfluencerMessageSent {
		c.Responses++
	}
	if positive {
		if rec.Status != model.InfluencerRespondedPositive {
			c.PositiveResponses++
		}
		rec.Status = model.InfluencerRespondedPositive
	} else if rec.Status == model.InfluencerMessageSent {
		rec.Status = model.InfluencerResponded
	}
	return nil
}

// GetCampaignSummary returns the registry counters for one campaign.
func (s *OutreachService) GetCampaignSummary(campaignID string) (*CampaignSummary, error) {
	c, ok := s.Store.Get(campaignID)
	if !ok {
		return nil, appErrors.NewCampaignNotFound(campaignID)
	}
	c.Lock()
	defer c.Unlock()
	return s.summarize(c), nil
}

// ListCampaignSummaries returns summaries for every registered
// campaign, oldest first.
func (s *OutreachService) ListCampaignSummaries() []*CampaignSummary {
	out := []*CampaignSummary{}
	for _, c := range s.Store.List() {
		c.Lock()
		out = append(out, s.summarize(c))
		c.Unlock()
	}
	return out
}

// summarize expects the campaign lock held.
func (s *OutreachService) summarize(c *registry.Campaign) *CampaignSummary {
	total := len(c.Influencers)
	sum := &CampaignSummary{
		CampaignID:        c.ID,
		Brand:             c.Brand.BrandName,
		Status:            c.Status,
		TotalInfluencers:  total,
		MessagesSent:      c.MessagesSent,
		Responses:         c.Responses,
		PositiveResponses: c.PositiveResponses,
	}

	if total > 0 {
		var compat, predicted float64
		for _, rec := range c.Influencers {
			compat += rec.Outreach.CompatibilityScore
			predicted += rec.Outreach.PredictedResponseRate
		}
		sum.AvgCompatibility = compat / float64(total)
		sum.AvgPredictedResponse = predicted / float64(total)
	}
	if c.MessagesSent > 0 {
		sum.ResponseRate = float64(c.Responses) / float64(c.MessagesSent)
	}
	return sum
}

// StylePerformance aggregates outcomes per pitch style.
type StylePerformance struct {
	ResponseRate   float64 `json:"response_rate"`
	TotalSent      int     `json:"total_sent"`
	TotalResponded int     `json:"total_responded"`
}

// ElementCount is one entry of the top-performing-elements ranking.
type ElementCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// PerformanceReport breaks campaign results down by pitch style and
// creative element.
type PerformanceReport struct {
	CampaignID            string                      `json:"campaign_id"`
	OverallResponseRate   float64                     `json:"overall_response_rate"`
	PositiveResponseRate  float64                     `json:"positive_response_rate"`
	StylePerformance      map[string]StylePerformance `json:"style_performance"`
	TopPerformingElements []ElementCount              `json:"top_performing_elements"`
}

// AnalyzeCampaignPerformance reports what worked per pitch style and
// which creative elements show up in positive responses.
func (s *OutreachService) AnalyzeCampaignPerformance(campaignID string) (*PerformanceReport, error) {
	c, ok := s.Store.Get(campaignID)
	if !ok {
		return nil, appErrors.NewCampaignNotFound(campaignID)
	}

	c.Lock()
	defer c.Unlock()

	type styleCount struct{ sent, responded int }
	perStyle := map[string]*styleCount{}

	elementCounts := map[string]int{}
	elementOrder := []string{}

	for _, username := range c.Order {
		rec := c.Influencers[username]
		style := rec.Outreach.PitchStyle

		sc, ok := perStyle[style]
		if !ok {
			sc = &styleCount{}
			perStyle[style] = sc
		}
		sc.sent++
		if rec.Status == model.InfluencerResponded {
			sc.responded++
		}

		if rec.Status == model.InfluencerRespondedPositive {
			for _, el := range rec.Outreach.CreativeElements {
				if elementCounts[el.Type] == 0 {
					elementOrder = append(elementOrder, el.Type)
				}
				elementCounts[el.Type]++
			}
		}
	}

	styleResults := map[string]StylePerformance{}
	for style, sc := range perStyle {
		if sc.sent == 0 {
			continue
		}
		styleResults[style] = StylePerformance{
			ResponseRate:   float64(sc.responded) / float64(sc.sent),
			TotalSent:      sc.sent,
			TotalResponded: sc.responded,
		}
	}

	sort.SliceStable(elementOrder, func(i, j int) bool {
		return elementCounts[elementOrder[i]] > elementCounts[elementOrder[j]]
	})
	if len(elementOrder) > 5 {
		elementOrder = elementOrder[:5]
	}
	topElements := make([]ElementCount, len(elementOrder))
	for i, typ := range elementOrder {
		topElements[i] = ElementCount{Type: typ, Count: elementCounts[typ]}
	}

	report := &PerformanceReport{
		CampaignID:            campaignID,
		StylePerformance:      styleResults,
		TopPerformingElements: topElements,
	}
	if c.MessagesSent > 0 {
		report.OverallResponseRate = float64(c.Responses) / float64(c.MessagesSent)
		report.PositiveResponseRate = float64(c.PositiveResponses) / float64(c.MessagesSent)
	}
	return report, nil
}

func (s *OutreachService) publishSendEvent(campaignID, username, kind, pitchStyle, content string, sentAt time.Time) {
	if s.Events == nil {
		return
	}
	ev := queue.NewSendEvent(campaignID, username, kind, pitchStyle, content, sentAt)
	if err := s.Events.Publish(queue.TopicSends, ev); err != nil {
		log.Println("⚠️ failed to publish send event:", err)
	}
}
