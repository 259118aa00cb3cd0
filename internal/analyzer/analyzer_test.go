package analyzer_test

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/influenceos/influenceos-backend/internal/analyzer"
	"github.com/influenceos/influenceos-backend/internal/model"
)

// --- Mock capability providers ---

type MockSocial struct {
	users map[string]*model.UserInfo
	posts map[string][]model.Post

	postsErr error
}

func (m *MockSocial) FetchUserInfo(ctx context.Context, username string) (*model.UserInfo, error) {
	info, ok := m.users[username]
	if !ok {
		return nil, fmt.Errorf("user %q not found", username)
	}
	return info, nil
}

func (m *MockSocial) FetchUserPosts(ctx context.Context, username string, count int) ([]model.Post, error) {
	if m.postsErr != nil {
		return nil, m.postsErr
	}
	return m.posts[username], nil
}

func (m *MockSocial) SendMessage(ctx context.Context, username, text string) (string, error) {
	return "", fmt.Errorf("not implemented")
}

type FakeLLM struct {
	text string
	err  error
}

func (f *FakeLLM) Generate(ctx context.Context, prompt string, maxTokens int32, temperature float32) (string, error) {
	return f.text, f.err
}

// --- Tests ---

func TestAnalyzeInfluencer(t *testing.T) {
	social := &MockSocial{
		users: map[string]*model.UserInfo{
			"tech_sarah": {
				UserID:        "42",
				Username:      "tech_sarah",
				FullName:      "Sarah",
				Biography:     "tech reviews and gadget deep dives",
				FollowerCount: 50000,
			},
		},
		posts: map[string][]model.Post{
			"tech_sarah": {
				{Caption: "new app review! what do you think about this gadget?", LikeCount: 2000, CommentCount: 500, TakenAt: "2025-06-01T19:00:00Z", MediaType: model.MediaVideo},
				{Caption: "software tips for your daily routine", LikeCount: 1500, CommentCount: 200, TakenAt: "2025-06-03T19:00:00Z", MediaType: model.MediaPhoto},
			},
		},
	}

	a := &analyzer.Analyzer{
		Social: social,
		LLM:    &FakeLLM{text: "curious, analytical, witty"},
	}

	profile, err := a.AnalyzeInfluencer(context.Background(), "tech_sarah")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if profile.Username != "tech_sarah" || profile.FollowerCount != 50000 {
		t.Errorf("identity fields wrong: %+v", profile)
	}
	if len(profile.ContentThemes) == 0 || profile.ContentThemes[0] != "tech" {
		t.Errorf("expected tech theme first, got %v", profile.ContentThemes)
	}
	// mean engagement 2100 over 50k followers = 4.2%
	if math.Abs(profile.EngagementRate-4.2) > 1e-9 {
		t.Errorf("expected engagement 4.2, got %f", profile.EngagementRate)
	}
	if len(profile.PersonalityTraits) != 3 || profile.PersonalityTraits[1] != "analytical" {
		t.Errorf("traits not parsed: %v", profile.PersonalityTraits)
	}
	// tech theme drives the demographics override
	if profile.Demographics.AgeRange != "25-45" {
		t.Errorf("expected tech demographics, got %+v", profile.Demographics)
	}
}

func TestAnalyzeInfluencerNotFound(t *testing.T) {
	a := &analyzer.Analyzer{Social: &MockSocial{users: map[string]*model.UserInfo{}}}

	profile, err := a.AnalyzeInfluencer(context.Background(), "ghost")
	if err == nil {
		t.Fatal("expected error for unknown user")
	}
	if profile != nil {
		t.Errorf("expected nil profile, got %+v", profile)
	}
}

func TestAnalyzeInfluencerNoPosts(t *testing.T) {
	social := &MockSocial{
		users: map[string]*model.UserInfo{
			"quiet": {UserID: "7", Username: "quiet", Biography: "hi", FollowerCount: 100},
		},
	}
	a := &analyzer.Analyzer{Social: social, LLM: &FakeLLM{err: fmt.Errorf("llm down")}}

	profile, err := a.AnalyzeInfluencer(context.Background(), "quiet")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(profile.ContentThemes) != 0 {
		t.Errorf("expected no themes, got %v", profile.ContentThemes)
	}
	if profile.PostingFrequency != "inactive" {
		t.Errorf("expected inactive, got %q", profile.PostingFrequency)
	}
	if len(profile.ContentFormats) != 0 {
		t.Errorf("expected no formats, got %v", profile.ContentFormats)
	}
	if len(profile.ViralContentPatterns) != 0 {
		t.Errorf("expected no viral patterns, got %v", profile.ViralContentPatterns)
	}
	if profile.EngagementRate != 0.0 {
		t.Errorf("expected zero engagement, got %f", profile.EngagementRate)
	}
}

func TestAnalyzeInfluencerPostsFetchDegrades(t *testing.T) {
	social := &MockSocial{
		users: map[string]*model.UserInfo{
			"flaky": {UserID: "9", Username: "flaky", Biography: "fitness coach", FollowerCount: 1000},
		},
		postsErr: fmt.Errorf("gateway timeout"),
	}
	a := &analyzer.Analyzer{Social: social, LLM: &FakeLLM{err: fmt.Errorf("llm down")}}

	profile, err := a.AnalyzeInfluencer(context.Background(), "flaky")
	if err != nil {
		t.Fatalf("posts failure must not be fatal, got %v", err)
	}
	// bio-only analysis still yields themes
	if len(profile.ContentThemes) == 0 || profile.ContentThemes[0] != "fitness" {
		t.Errorf("expected fitness from bio, got %v", profile.ContentThemes)
	}
}

func TestPersonalityTraitsFallback(t *testing.T) {
	social := &MockSocial{
		users: map[string]*model.UserInfo{
			"x": {UserID: "1", Username: "x", Biography: "", FollowerCount: 10},
		},
	}
	a := &analyzer.Analyzer{Social: social, LLM: &FakeLLM{err: fmt.Errorf("timeout")}}

	profile, err := a.AnalyzeInfluencer(context.Background(), "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"authentic", "engaging", "creative"}
	if len(profile.PersonalityTraits) != len(want) {
		t.Fatalf("expected fallback traits, got %v", profile.PersonalityTraits)
	}
	for i, tr := range want {
		if profile.PersonalityTraits[i] != tr {
			t.Errorf("trait %d: expected %q, got %q", i, tr, profile.PersonalityTraits[i])
		}
	}
}

func TestPersonalityTraitsCappedAtFive(t *testing.T) {
	social := &MockSocial{
		users: map[string]*model.UserInfo{
			"x": {UserID: "1", Username: "x", FollowerCount: 10},
		},
	}
	a := &analyzer.Analyzer{
		Social: social,
		LLM:    &FakeLLM{text: "one, two, three, four, five, six, seven"},
	}

	profile, err := a.AnalyzeInfluencer(context.Background(), "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(profile.PersonalityTraits) != 5 {
		t.Errorf("expected 5 traits max, got %v", profile.PersonalityTraits)
	}
}
