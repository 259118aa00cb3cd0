package analyzer

import (
	"math"
	"strings"
	"testing"

	"github.com/influenceos/influenceos-backend/internal/model"
)

func TestEngagementRate(t *testing.T) {
	posts := []model.Post{
		{LikeCount: 300, CommentCount: 100},
		{LikeCount: 500, CommentCount: 100},
	}

	// mean engagement 500 over 10k followers = 5%
	got := EngagementRate(posts, 10000)
	if math.Abs(got-5.0) > 1e-9 {
		t.Errorf("expected 5.0, got %f", got)
	}

	if got := EngagementRate(nil, 10000); got != 0.0 {
		t.Errorf("no posts: expected 0.0, got %f", got)
	}
	if got := EngagementRate(posts, 0); got != 0.0 {
		t.Errorf("zero followers: expected 0.0, got %f", got)
	}
}

func TestContentThemes(t *testing.T) {
	posts := []model.Post{
		{Caption: "New workout at the gym today, fitness is life"},
		{Caption: "gym gym gym"},
		{Caption: "trying a new recipe tonight"},
	}
	themes := ContentThemes(posts, "fitness coach sharing daily training")

	if len(themes) == 0 || themes[0] != "fitness" {
		t.Fatalf("expected fitness first, got %v", themes)
	}
	if len(themes) > 3 {
		t.Errorf("themes capped at 3, got %d", len(themes))
	}
	for _, th := range themes {
		if th == "travel" {
			t.Errorf("travel scored zero but was returned")
		}
	}
}

func TestContentThemesEmpty(t *testing.T) {
	if themes := ContentThemes(nil, "hello there"); len(themes) != 0 {
		t.Errorf("expected no themes, got %v", themes)
	}
}

func TestPostingFrequency(t *testing.T) {
	cases := []struct {
		name  string
		times []string
		want  string
	}{
		{"no posts", nil, "inactive"},
		{"one timestamp", []string{"2025-06-01T10:00:00Z"}, "irregular"},
		{"unparseable only", []string{"not-a-date", "also-bad"}, "irregular"},
		{"twice a day", []string{"2025-06-01T08:00:00Z", "2025-06-01T20:00:00Z", "2025-06-02T08:00:00Z"}, "multiple daily"},
		{"every two days", []string{"2025-06-01T10:00:00Z", "2025-06-03T10:00:00Z", "2025-06-05T10:00:00Z"}, "daily"},
		{"weekly", []string{"2025-06-01T10:00:00Z", "2025-06-07T10:00:00Z", "2025-06-13T10:00:00Z"}, "weekly"},
		{"monthly", []string{"2025-01-01T10:00:00Z", "2025-02-01T10:00:00Z"}, "monthly"},
	}

	for _, tc := range cases {
		posts := make([]model.Post, len(tc.times))
		for i, ts := range tc.times {
			posts[i] = model.Post{TakenAt: ts}
		}
		if got := PostingFrequency(posts); got != tc.want {
			t.Errorf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestPostingFrequencySkipsBadTimestamps(t *testing.T) {
	posts := []model.Post{
		{TakenAt: "garbage"},
		{TakenAt: "2025-06-01T10:00:00Z"},
		{TakenAt: "2025-06-03T10:00:00Z"},
	}
	if got := PostingFrequency(posts); got != "daily" {
		t.Errorf("expected daily, got %q", got)
	}
}

func TestBrandMentions(t *testing.T) {
	posts := []model.Post{
		{Caption: "loving my gear from @nike and @gymshark"},
		{Caption: "again with @nike today"},
	}
	brands := BrandMentions(posts, "athlete | partner @protein_co")

	if len(brands) != 3 {
		t.Fatalf("expected 3 unique mentions, got %v", brands)
	}
	seen := map[string]bool{}
	for _, b := range brands {
		if seen[b] {
			t.Errorf("duplicate mention %q", b)
		}
		seen[b] = true
	}
	if !seen["nike"] || !seen["gymshark"] || !seen["protein_co"] {
		t.Errorf("missing expected mentions: %v", brands)
	}
}

func TestBrandMentionsCap(t *testing.T) {
	var sb strings.Builder
	for _, m := range []string{"a1", "b2", "c3", "d4", "e5", "f6", "g7", "h8", "i9", "j10", "k11", "l12"} {
		sb.WriteString("@" + m + " ")
	}
	brands := BrandMentions([]model.Post{{Caption: sb.String()}}, "")
	if len(brands) != 10 {
		t.Errorf("expected cap of 10, got %d", len(brands))
	}
}

func TestCommunicationStyle(t *testing.T) {
	long := strings.Repeat("words and more words ", 12) // >200 chars

	cases := []struct {
		name     string
		captions []string
		want     string
	}{
		{"no captions", nil, "visual-focused"},
		{"short captions", []string{"vibes", "ok"}, "minimalist"},
		{"emoji heavy", []string{strings.Repeat("word ", 15) + "🔥🔥🔥🔥🔥🔥"}, "emoji-heavy"},
		{"conversational", []string{strings.Repeat("word ", 15) + "what do you think? really?"}, "conversational"},
		{"enthusiastic", []string{strings.Repeat("word ", 15) + "amazing!! wow!!"}, "enthusiastic"},
		{"storyteller", []string{long}, "storyteller"},
		{"balanced", []string{strings.Repeat("word ", 20)}, "balanced"},
	}

	for _, tc := range cases {
		posts := make([]model.Post, len(tc.captions))
		for i, c := range tc.captions {
			posts[i] = model.Post{Caption: c}
		}
		if got := CommunicationStyle(posts); got != tc.want {
			t.Errorf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestBestPostingTimes(t *testing.T) {
	posts := []model.Post{
		{TakenAt: "2025-06-01T19:05:00Z"},
		{TakenAt: "2025-06-02T19:45:00Z"},
		{TakenAt: "2025-06-03T19:30:00Z"},
		{TakenAt: "2025-06-01T08:00:00Z"},
		{TakenAt: "2025-06-02T08:10:00Z"},
		{TakenAt: "2025-06-04T12:00:00Z"},
		{TakenAt: "2025-06-05T23:00:00Z"},
	}
	times := BestPostingTimes(posts)

	if len(times) != 3 {
		t.Fatalf("expected 3 peak hours, got %v", times)
	}
	if times[0] != "19:00" || times[1] != "8:00" {
		t.Errorf("expected 19:00 then 8:00, got %v", times)
	}
}

func TestBestPostingTimesEmpty(t *testing.T) {
	times := BestPostingTimes([]model.Post{{TakenAt: "bad"}})
	if len(times) != 1 || times[0] != "varied" {
		t.Errorf("expected [varied], got %v", times)
	}
}

func TestContentFormats(t *testing.T) {
	posts := []model.Post{
		{MediaType: model.MediaVideo},
		{MediaType: model.MediaPhoto},
		{MediaType: model.MediaVideo},
		{MediaType: 99}, // unknown codes are ignored
	}
	formats := ContentFormats(posts)

	if len(formats) != 2 {
		t.Fatalf("expected 2 formats, got %v", formats)
	}
	if formats[0] != "videos" || formats[1] != "photos" {
		t.Errorf("expected first-encountered order [videos photos], got %v", formats)
	}

	if got := ContentFormats(nil); len(got) != 0 {
		t.Errorf("expected no formats for no posts, got %v", got)
	}
}

func TestViralPatterns(t *testing.T) {
	// Ten posts; the top 20% (two posts) carry the patterns.
	posts := []model.Post{
		{Caption: "What's your favorite? 🔥🔥🔥🔥🔥🔥", LikeCount: 900},
		{Caption: "win", LikeCount: 800},
	}
	for i := 0; i < 8; i++ {
		posts = append(posts, model.Post{Caption: strings.Repeat("a filler caption for volume ", 3), LikeCount: 10})
	}

	patterns := ViralPatterns(posts)
	want := map[string]bool{
		"questions drive engagement":  true,
		"short captions perform well": true,
		"emoji-rich content":          true,
	}
	if len(patterns) != 3 {
		t.Fatalf("expected 3 patterns, got %v", patterns)
	}
	for _, p := range patterns {
		if !want[p] {
			t.Errorf("unexpected pattern %q", p)
		}
	}

	if got := ViralPatterns(nil); len(got) != 0 {
		t.Errorf("expected no patterns for no posts, got %v", got)
	}
}

func TestViralPatternsSinglePost(t *testing.T) {
	// One long, unremarkable post: top slice is still one post, no flags.
	posts := []model.Post{{Caption: strings.Repeat("a plain caption without hooks ", 3), LikeCount: 5}}
	if got := ViralPatterns(posts); len(got) != 0 {
		t.Errorf("expected no patterns, got %v", got)
	}
}

func TestEstimateDemographics(t *testing.T) {
	d := EstimateDemographics(nil)
	if d.AgeRange != "18-34" || d.GenderSplit["female"] != 60 {
		t.Errorf("unexpected defaults: %+v", d)
	}

	d = EstimateDemographics([]string{"fitness", "beauty"})
	if d.AgeRange != "25-40" {
		t.Errorf("fitness override should win first, got %q", d.AgeRange)
	}

	d = EstimateDemographics([]string{"tech"})
	if d.AgeRange != "25-45" || d.GenderSplit["male"] != 60 {
		t.Errorf("tech override wrong: %+v", d)
	}

	d = EstimateDemographics([]string{"beauty"})
	if d.AgeRange != "18-35" || d.GenderSplit["female"] != 85 {
		t.Errorf("beauty override wrong: %+v", d)
	}
}
