// internal/outreach/scoring.go
package outreach

import "github.com/influenceos/influenceos-backend/internal/model"

// Compatibility scores influencer/brand fit in [0,1]. Brand-exclusion
// and competitor-conflict checks are intentionally absent; the score is
// additive only.
func Compatibility(inf *model.InfluencerProfile, brand model.BrandCampaign) float64 {
	score := 0.0

	score += float64(overlap(inf.ContentThemes, brand.TargetAudience.Interests)) * 0.2

	if inf.Demographics.AgeRange == brand.TargetAudience.AgeRange && brand.TargetAudience.AgeRange != "" {
		score += 0.2
	}

	score += float64(overlap(inf.ContentFormats, brand.PreferredContentFormats)) * 0.1

	if inf.EngagementRate > 3.0 {
		score += 0.2
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}

func overlap(a, b []string) int {
	set := map[string]bool{}
	for _, s := range a {
		set[s] = true
	}
	n := 0
	seen := map[string]bool{}
	for _, s := range b {
		if set[s] && !seen[s] {
			seen[s] = true
			n++
		}
	}
	return n
}

// SelectPitchStyle maps personality and style signals to one of the
// five archetypes; the first matching rule wins.
func SelectPitchStyle(inf *model.InfluencerProfile) string {
	switch {
	case hasTrait(inf, "creative") || hasTrait(inf, "artistic"):
		return model.PitchMeme
	case hasTrait(inf, "analytical") || inf.CommunicationStyle == "data-driven":
		return model.PitchDataDriven
	case inf.CommunicationStyle == "storyteller":
		return model.PitchStorytelling
	case hasTrait(inf, "playful") || inf.CommunicationStyle == "emoji-heavy":
		return model.PitchInteractive
	case inf.FollowerCount > 100000:
		return model.PitchReverse
	default:
		return model.PitchStorytelling
	}
}

func hasTrait(inf *model.InfluencerProfile, trait string) bool {
	for _, t := range inf.PersonalityTraits {
		if t == trait {
			return true
		}
	}
	return false
}

var styleModifiers = map[string]float64{
	model.PitchMeme:         0.15,
	model.PitchInteractive:  0.12,
	model.PitchReverse:      0.18,
	model.PitchDataDriven:   0.08,
	model.PitchStorytelling: 0.10,
}

// PredictResponseRate estimates response likelihood in (0, 0.85].
// Bigger creators respond less, hence the follower penalties.
func PredictResponseRate(compatibility float64, pitchStyle string, inf *model.InfluencerProfile) float64 {
	rate := 0.15 + compatibility*0.3

	if mod, ok := styleModifiers[pitchStyle]; ok {
		rate += mod
	} else {
		rate += 0.05
	}

	if inf.EngagementRate > 5.0 {
		rate += 0.1
	}

	if inf.FollowerCount > 1000000 {
		rate *= 0.5
	} else if inf.FollowerCount > 100000 {
		rate *= 0.7
	}

	if rate > 0.85 {
		rate = 0.85
	}
	return rate
}
