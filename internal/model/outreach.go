// internal/model/outreach.go
package model

import "time"

// Pitch styles supported by the creative generator.
const (
	PitchMeme         = "meme"
	PitchDataDriven   = "data_driven"
	PitchStorytelling = "storytelling"
	PitchInteractive  = "interactive"
	PitchReverse      = "reverse"
)

// Campaign status values.
const (
	CampaignAnalyzing = "analyzing"
	CampaignReady     = "ready"
)

// Per-influencer status values. The responded transitions are fed in
// from outside; nothing in this service produces them on its own.
const (
	InfluencerReady             = "ready"
	InfluencerMessageSent       = "message_sent"
	InfluencerResponded         = "responded"
	InfluencerRespondedPositive = "responded_positive"
)

// CreativeElement is one ordered segment of an outreach message.
type CreativeElement struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// FollowUpStep is one timed entry in a follow-up strategy.
type FollowUpStep struct {
	Timing    string `json:"timing"`    // "48_hours", "5_days", "immediate"
	Condition string `json:"condition"` // "no_response", "views_profile"
	Action    string `json:"action"`
	Content   string `json:"content"`
}

// SentMessage records one delivered (or dry-run previewed) message.
type SentMessage struct {
	Kind      string    `json:"type"` // "initial" or "follow_up"
	Content   string    `json:"content"`
	SentAt    time.Time `json:"sent_at"`
	MessageID string    `json:"message_id,omitempty"`
}

// OutreachCampaign pairs one influencer profile with one brand campaign
// plus everything derived from the pairing. Immutable once generated.
type OutreachCampaign struct {
	Influencer            *InfluencerProfile `json:"influencer"`
	Brand                 BrandCampaign      `json:"brand"`
	PitchStyle            string             `json:"pitch_style"`
	CompatibilityScore    float64            `json:"compatibility_score"`
	PredictedResponseRate float64            `json:"predicted_response_rate"`
	CreativeElements      []CreativeElement  `json:"creative_elements"`
	FollowUpStrategy      []FollowUpStep     `json:"follow_up_strategy"`
}
