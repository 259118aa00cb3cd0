// internal/analyzer/analyzer.go
package analyzer

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/influenceos/influenceos-backend/internal/llm"
	"github.com/influenceos/influenceos-backend/internal/model"
	"github.com/influenceos/influenceos-backend/internal/platform"
)

// Number of recent posts sampled per analysis pass.
const postSampleSize = 30

// fallbackTraits covers any failure of the personality call.
var fallbackTraits = []string{"authentic", "engaging", "creative"}

// Analyzer builds influencer profiles from gateway data plus one LLM
// call for personality traits.
type Analyzer struct {
	Social platform.SocialClient
	LLM    llm.TextGenerator
}

// AnalyzeInfluencer runs a full analysis pass. Only a missing user
// profile is fatal; everything downstream degrades to defaults.
func (a *Analyzer) AnalyzeInfluencer(ctx context.Context, username string) (*model.InfluencerProfile, error) {
	info, err := a.Social.FetchUserInfo(ctx, username)
	if err != nil {
		return nil, err
	}

	posts, err := a.Social.FetchUserPosts(ctx, username, postSampleSize)
	if err != nil {
		log.Println("⚠️ could not fetch posts for", username, "- analyzing bio only:", err)
		posts = nil
	}

	themes := ContentThemes(posts, info.Biography)

	return &model.InfluencerProfile{
		Username:             username,
		UserID:               info.UserID,
		FullName:             info.FullName,
		Bio:                  info.Biography,
		FollowerCount:        info.FollowerCount,
		EngagementRate:       EngagementRate(posts, info.FollowerCount),
		ContentThemes:        themes,
		PostingFrequency:     PostingFrequency(posts),
		BrandAffiliations:    BrandMentions(posts, info.Biography),
		CommunicationStyle:   CommunicationStyle(posts),
		BestPostingTimes:     BestPostingTimes(posts),
		Demographics:         EstimateDemographics(themes),
		PersonalityTraits:    a.personalityTraits(ctx, posts, info.Biography),
		ContentFormats:       ContentFormats(posts),
		ViralContentPatterns: ViralPatterns(posts),
	}, nil
}

// personalityTraits asks the LLM for 3-5 comma-separated traits; any
// failure falls back to a fixed list.
func (a *Analyzer) personalityTraits(ctx context.Context, posts []model.Post, bio string) []string {
	var captions strings.Builder
	for i, p := range posts {
		if i == 10 {
			break
		}
		fmt.Fprintf(&captions, "Post %d: %s\n", i+1, truncate(p.Caption, 200))
	}

	prompt := fmt.Sprintf(`Analyze this influencer's personality based on their content.

Bio: %s

%s
List 3-5 key personality traits that define this person's online presence.
Format: Return only the traits as a comma-separated list.`, bio, captions.String())

	res := llm.GenerateOr(ctx, a.LLM, prompt, "", 100, 0.7)
	if res.Fallback {
		return fallbackTraits
	}

	traits := []string{}
	for _, t := range strings.Split(res.Text, ",") {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		traits = append(traits, t)
		if len(traits) == 5 {
			break
		}
	}
	if len(traits) == 0 {
		return fallbackTraits
	}
	return traits
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
