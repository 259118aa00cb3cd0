// internal/outreach/generator.go
package outreach

import (
	"context"
	"fmt"

	"github.com/influenceos/influenceos-backend/internal/llm"
	"github.com/influenceos/influenceos-backend/internal/model"
)

// Generator assembles personalized outreach campaigns.
type Generator struct {
	LLM llm.TextGenerator
}

// GenerateCampaign produces the full outreach package for one
// influencer/brand pairing. It never fails: LLM slots degrade to
// placeholders.
func (g *Generator) GenerateCampaign(ctx context.Context, inf *model.InfluencerProfile, brand model.BrandCampaign) *model.OutreachCampaign {
	compatibility := Compatibility(inf, brand)
	pitchStyle := SelectPitchStyle(inf)

	return &model.OutreachCampaign{
		Influencer:            inf,
		Brand:                 brand,
		PitchStyle:            pitchStyle,
		CompatibilityScore:    compatibility,
		PredictedResponseRate: PredictResponseRate(compatibility, pitchStyle, inf),
		CreativeElements:      g.creativeElements(ctx, inf, brand, pitchStyle),
		FollowUpStrategy:      FollowUpStrategy(inf),
	}
}

// FollowUpStrategy builds the fixed three-step strategy. The
// views_profile step is part of the plan but has no automatic trigger;
// no profile-view signal exists in the system.
func FollowUpStrategy(inf *model.InfluencerProfile) []model.FollowUpStep {
	peak := "7pm"
	if len(inf.BestPostingTimes) > 0 && inf.BestPostingTimes[0] != "varied" {
		peak = inf.BestPostingTimes[0]
	}

	return []model.FollowUpStep{
		{
			Timing:    "48_hours",
			Condition: "no_response",
			Action:    "send_value_add",
			Content:   fmt.Sprintf("Quick thought: noticed you post most at %s. We could time our campaign launch then for maximum impact 🚀", peak),
		},
		{
			Timing:    "5_days",
			Condition: "no_response",
			Action:    "send_social_proof",
			Content:   "No pressure, but wanted to share that we just wrapped an amazing campaign with [similar creator]. Happy to share results if you're curious!",
		},
		{
			Timing:    "immediate",
			Condition: "views_profile",
			Action:    "send_enthusiasm",
			Content:   "Saw you checked us out! 👀 Any questions I can answer?",
		},
	}
}
