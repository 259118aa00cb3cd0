// internal/analyzer/extractors.go
package analyzer

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/influenceos/influenceos-backend/internal/model"
)

// contentCategories maps a theme to its indicator keywords. Order
// matters: ties in theme scoring break by table order.
var contentCategories = []struct {
	Theme    string
	Keywords []string
}{
	{"lifestyle", []string{"daily", "routine", "life", "day", "morning", "evening"}},
	{"fashion", []string{"outfit", "style", "wear", "fashion", "clothes", "look"}},
	{"beauty", []string{"makeup", "skincare", "beauty", "glow", "skin", "hair"}},
	{"fitness", []string{"workout", "gym", "fitness", "exercise", "health", "training"}},
	{"food", []string{"food", "recipe", "cooking", "eat", "restaurant", "meal"}},
	{"travel", []string{"travel", "trip", "vacation", "explore", "destination", "journey"}},
	{"tech", []string{"tech", "gadget", "app", "software", "device", "digital"}},
	{"business", []string{"entrepreneur", "business", "startup", "hustle", "success", "growth"}},
}

var mentionRe = regexp.MustCompile(`@(\w+)`)

// ContentThemes scores each category by keyword occurrence over
// bio+captions and returns up to 3 themes with a nonzero score.
func ContentThemes(posts []model.Post, bio string) []string {
	var sb strings.Builder
	sb.WriteString(strings.ToLower(bio))
	for _, p := range posts {
		sb.WriteString(" ")
		sb.WriteString(strings.ToLower(p.Caption))
	}
	allText := sb.String()

	type scored struct {
		theme string
		score int
	}
	scores := make([]scored, 0, len(contentCategories))
	for _, cat := range contentCategories {
		s := 0
		for _, kw := range cat.Keywords {
			s += strings.Count(allText, kw)
		}
		scores = append(scores, scored{cat.Theme, s})
	}

	sort.SliceStable(scores, func(i, j int) bool { return scores[i].score > scores[j].score })

	themes := []string{}
	for _, s := range scores {
		if len(themes) == 3 {
			break
		}
		if s.score > 0 {
			themes = append(themes, s.theme)
		}
	}
	return themes
}

// EngagementRate is the mean (likes+comments) over sampled posts as a
// percentage of follower count. Guards divide-by-zero.
func EngagementRate(posts []model.Post, followerCount int) float64 {
	if len(posts) == 0 || followerCount == 0 {
		return 0.0
	}
	total := 0
	for _, p := range posts {
		total += p.LikeCount + p.CommentCount
	}
	avg := float64(total) / float64(len(posts))
	return avg / float64(followerCount) * 100
}

// PostingFrequency buckets the mean inter-post gap. Unparseable
// timestamps are skipped, never fatal.
func PostingFrequency(posts []model.Post) string {
	if len(posts) == 0 {
		return "inactive"
	}

	times := []time.Time{}
	for _, p := range posts {
		if t, ok := parseTimestamp(p.TakenAt); ok {
			times = append(times, t)
		}
	}
	if len(times) < 2 {
		return "irregular"
	}

	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })
	totalDays := 0
	for i := 0; i < len(times)-1; i++ {
		totalDays += int(times[i+1].Sub(times[i]).Hours() / 24)
	}
	avgDays := float64(totalDays) / float64(len(times)-1)

	switch {
	case avgDays < 1:
		return "multiple daily"
	case avgDays <= 2:
		return "daily"
	case avgDays <= 7:
		return "weekly"
	default:
		return "monthly"
	}
}

func parseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// BrandMentions extracts @mentions from bio+captions, deduplicated and
// capped at 10. Order is not guaranteed.
func BrandMentions(posts []model.Post, bio string) []string {
	var sb strings.Builder
	sb.WriteString(bio)
	for _, p := range posts {
		sb.WriteString(" ")
		sb.WriteString(p.Caption)
	}

	seen := map[string]bool{}
	brands := []string{}
	for _, m := range mentionRe.FindAllStringSubmatch(sb.String(), -1) {
		name := m[1]
		if seen[name] {
			continue
		}
		seen[name] = true
		brands = append(brands, name)
		if len(brands) == 10 {
			break
		}
	}
	return brands
}

// CommunicationStyle classifies captions with an ordered cascade; the
// first matching rule wins.
func CommunicationStyle(posts []model.Post) string {
	captions := []string{}
	for _, p := range posts {
		if p.Caption != "" {
			captions = append(captions, p.Caption)
		}
	}
	if len(captions) == 0 {
		return "visual-focused"
	}

	totalLen, emojis, questions, exclamations := 0, 0, 0, 0
	for _, c := range captions {
		totalLen += utf8.RuneCountInString(c)
		emojis += countEmoji(c)
		questions += strings.Count(c, "?")
		exclamations += strings.Count(c, "!")
	}
	n := float64(len(captions))
	avgLen := float64(totalLen) / n

	switch {
	case avgLen < 50:
		return "minimalist"
	case float64(emojis)/n > 5:
		return "emoji-heavy"
	case float64(questions)/n > 0.5:
		return "conversational"
	case float64(exclamations)/n > 1:
		return "enthusiastic"
	case avgLen > 200:
		return "storyteller"
	default:
		return "balanced"
	}
}

func countEmoji(s string) int {
	n := 0
	for _, r := range s {
		if r >= 0x1F300 && r <= 0x1F9FF {
			n++
		}
	}
	return n
}

// BestPostingTimes returns the top 3 posting hours by frequency,
// formatted "H:00". Ties keep first-seen hour order.
func BestPostingTimes(posts []model.Post) []string {
	counts := map[int]int{}
	order := []int{}
	for _, p := range posts {
		t, ok := parseTimestamp(p.TakenAt)
		if !ok {
			continue
		}
		h := t.Hour()
		if _, seen := counts[h]; !seen {
			order = append(order, h)
		}
		counts[h]++
	}

	if len(order) == 0 {
		return []string{"varied"}
	}

	sort.SliceStable(order, func(i, j int) bool { return counts[order[i]] > counts[order[j]] })
	if len(order) > 3 {
		order = order[:3]
	}

	hours := make([]string, len(order))
	for i, h := range order {
		hours[i] = fmt.Sprintf("%d:00", h)
	}
	return hours
}

// ContentFormats buckets posts by media type code, returning only
// formats that actually occur, in first-encountered order.
func ContentFormats(posts []model.Post) []string {
	counts := map[string]int{}
	order := []string{}
	add := func(format string) {
		if counts[format] == 0 {
			order = append(order, format)
		}
		counts[format]++
	}

	for _, p := range posts {
		switch p.MediaType {
		case model.MediaPhoto:
			add("photos")
		case model.MediaVideo:
			add("videos")
		case model.MediaCarousel:
			add("carousels")
		}
	}
	return order
}

// ViralPatterns looks at the top 20% of posts by engagement (minimum
// one) and flags qualitative caption patterns.
func ViralPatterns(posts []model.Post) []string {
	if len(posts) == 0 {
		return []string{}
	}

	ranked := make([]model.Post, len(posts))
	copy(ranked, posts)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].LikeCount+ranked[i].CommentCount > ranked[j].LikeCount+ranked[j].CommentCount
	})

	top := len(ranked) / 5
	if top < 1 {
		top = 1
	}
	ranked = ranked[:top]

	hasQuestion, hasShort, hasEmojiRich := false, false, false
	for _, p := range ranked {
		c := strings.ToLower(p.Caption)
		if strings.Contains(c, "question") || strings.Contains(c, "?") {
			hasQuestion = true
		}
		if utf8.RuneCountInString(c) < 50 {
			hasShort = true
		}
		if countEmoji(c) > 5 {
			hasEmojiRich = true
		}
	}

	patterns := []string{}
	if hasQuestion {
		patterns = append(patterns, "questions drive engagement")
	}
	if hasShort {
		patterns = append(patterns, "short captions perform well")
	}
	if hasEmojiRich {
		patterns = append(patterns, "emoji-rich content")
	}
	return patterns
}

// EstimateDemographics applies the static lookup with theme-based
// overrides, first match wins in the order fitness, business/tech,
// beauty.
func EstimateDemographics(themes []string) model.AudienceDemographics {
	d := model.AudienceDemographics{
		AgeRange:    "18-34",
		GenderSplit: map[string]int{"female": 60, "male": 40},
		Interests:   themes,
		Location:    "urban",
	}

	has := func(theme string) bool {
		for _, t := range themes {
			if t == theme {
				return true
			}
		}
		return false
	}

	switch {
	case has("fitness"):
		d.AgeRange = "25-40"
		d.GenderSplit = map[string]int{"female": 55, "male": 45}
	case has("business") || has("tech"):
		d.AgeRange = "25-45"
		d.GenderSplit = map[string]int{"female": 40, "male": 60}
	case has("beauty"):
		d.AgeRange = "18-35"
		d.GenderSplit = map[string]int{"female": 85, "male": 15}
	}
	return d
}
