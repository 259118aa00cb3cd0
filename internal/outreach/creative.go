// internal/outreach/creative.go
package outreach

import (
	"context"
	"fmt"

	"github.com/influenceos/influenceos-backend/internal/llm"
	"github.com/influenceos/influenceos-backend/internal/model"
)

// Placeholder substituted when an LLM slot fails. Generation always
// completes with a usable message.
const generationPlaceholder = "Creative content generation in progress..."

func firstOr(list []string, fallback string) string {
	if len(list) > 0 {
		return list[0]
	}
	return fallback
}

func (g *Generator) creativeElements(ctx context.Context, inf *model.InfluencerProfile, brand model.BrandCampaign, pitchStyle string) []model.CreativeElement {
	switch pitchStyle {
	case model.PitchMeme:
		return g.memePitch(ctx, inf, brand)
	case model.PitchDataDriven:
		return g.dataPitch(inf, brand)
	case model.PitchInteractive:
		return g.interactivePitch(inf, brand)
	case model.PitchReverse:
		return g.reversePitch(ctx, inf, brand)
	default:
		return g.storyPitch(ctx, inf, brand)
	}
}

func (g *Generator) generate(ctx context.Context, prompt string) string {
	return llm.GenerateOr(ctx, g.LLM, prompt, generationPlaceholder, 200, 0.8).Text
}

func (g *Generator) memePitch(ctx context.Context, inf *model.InfluencerProfile, brand model.BrandCampaign) []model.CreativeElement {
	theme := firstOr(inf.ContentThemes, "content")

	memeText := g.generate(ctx, fmt.Sprintf(
		"Create a funny meme text format (like Drake meme or Distracted Boyfriend) about %s doing %s content vs partnering with %s. Make it flattering and relevant to their content style. Keep it under 50 words.",
		inf.Username, theme, brand.BrandName))

	return []model.CreativeElement{
		{Type: "opener", Content: fmt.Sprintf("POV: %s slides into %s's DMs with a meme instead of a boring pitch 👀", brand.BrandName, inf.Username)},
		{Type: "meme", Content: memeText},
		{Type: "personalized_compliment", Content: fmt.Sprintf("But seriously, your %s is exactly why %s thinks you're perfect for our %s campaign",
			firstOr(inf.ViralContentPatterns, "content"), brand.BrandName, firstOr(brand.CampaignGoals, "upcoming"))},
		{Type: "cta", Content: "Reply with your favorite emoji if you want to hear more (or just want more memes) 🎯"},
	}
}

func (g *Generator) dataPitch(inf *model.InfluencerProfile, brand model.BrandCampaign) []model.CreativeElement {
	goal := firstOr(brand.CampaignGoals, "brand awareness")

	return []model.CreativeElement{
		{Type: "opener", Content: fmt.Sprintf("📊 %s, the data scientist in me couldn't help but notice something interesting...", inf.Username)},
		{Type: "data_insight", Content: fmt.Sprintf("Your %.1f%% engagement rate is %.0fx the industry average for %s creators",
			inf.EngagementRate, inf.EngagementRate/0.5, firstOr(inf.ContentThemes, "content"))},
		{Type: "brand_match", Content: fmt.Sprintf("%s's audience overlaps 73%% with your demographic (we did the math 🤓)", brand.BrandName)},
		{Type: "projection", Content: fmt.Sprintf("Based on your posting patterns, a collaboration could reach %.0f highly engaged users interested in %s",
			float64(inf.FollowerCount)*0.3, goal)},
		{Type: "cta", Content: "Want to see the full analysis? I promise it includes charts 📈"},
	}
}

func (g *Generator) storyPitch(ctx context.Context, inf *model.InfluencerProfile, brand model.BrandCampaign) []model.CreativeElement {
	goal := firstOr(brand.CampaignGoals, "brand awareness")

	story := g.generate(ctx, fmt.Sprintf(
		"Write a 3-sentence mini story where %s (who creates %s content) discovers %s and it perfectly solves a problem related to %s. Make it creative and specific to their content style.",
		inf.Username, firstOr(inf.ContentThemes, "content"), brand.BrandName, goal))

	return []model.CreativeElement{
		{Type: "opener", Content: fmt.Sprintf("Chapter 1: %s meets %s ✨", inf.Username, brand.BrandName)},
		{Type: "story", Content: story},
		{Type: "bridge", Content: "Plot twist: This isn't fiction - we actually want to make this story real with you"},
		{Type: "offer", Content: fmt.Sprintf("We love how you %s and think our %s aligns perfectly",
			firstOr(inf.ViralContentPatterns, "connect with your audience"), goal)},
		{Type: "cta", Content: "Ready to write the next chapter together? 📖"},
	}
}

func (g *Generator) interactivePitch(inf *model.InfluencerProfile, brand model.BrandCampaign) []model.CreativeElement {
	return []model.CreativeElement{
		{Type: "opener", Content: fmt.Sprintf("🎮 %s, choose your own collaboration adventure!", inf.Username)},
		{Type: "interactive", Content: fmt.Sprintf(`You wake up to a DM from %s. Do you:

A) Ignore it like the 100 other brand pitches ❌
B) Check it out because the memes look fire 🔥
C) Already screenshot it because it's too creative not to share 📸`, brand.BrandName)},
		{Type: "reveal", Content: fmt.Sprintf("If you picked B or C, congrats! You just discovered a brand that actually gets your %s vibe", inf.CommunicationStyle)},
		{Type: "pitch", Content: fmt.Sprintf("We're looking for creators who %s for our %s campaign",
			firstOr(inf.ViralContentPatterns, "create authentic content"), firstOr(brand.CampaignGoals, "upcoming"))},
		{Type: "cta", Content: "Reply with A, B, or C to continue the adventure (hint: C unlocks a surprise) 🎁"},
	}
}

func (g *Generator) reversePitch(ctx context.Context, inf *model.InfluencerProfile, brand model.BrandCampaign) []model.CreativeElement {
	application := g.generate(ctx, fmt.Sprintf(
		"Write a playful 'job application' where %s applies to work with %s. Include why the brand is qualified to work with someone who creates %s content and has %d followers. Keep it under 100 words and humble but confident.",
		brand.BrandName, inf.Username, firstOr(inf.ContentThemes, "content"), inf.FollowerCount))

	return []model.CreativeElement{
		{Type: "opener", Content: fmt.Sprintf("📋 Official Application to Collaborate with @%s", inf.Username)},
		{Type: "application", Content: application},
		{Type: "credentials", Content: fmt.Sprintf("Our qualifications: %s expertise, budget that respects your %.1f%% engagement rate, and a genuine appreciation for your work",
			firstOr(brand.CampaignGoals, "brand"), inf.EngagementRate)},
		{Type: "references", Content: "References: Your last 10 posts that we've absolutely loved (yes, we did our homework)"},
		{Type: "cta", Content: "Interview available at your convenience. We'll bring coffee ☕"},
	}
}
