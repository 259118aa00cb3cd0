// internal/model/profile.go
package model

// AudienceDemographics is an estimate derived from content analysis,
// not platform analytics.
type AudienceDemographics struct {
	AgeRange    string         `json:"age_range"`
	GenderSplit map[string]int `json:"gender_split"`
	Interests   []string       `json:"interests"`
	Location    string         `json:"location"`
}

// InfluencerProfile is a snapshot built from one analysis pass over an
// influencer's public content. It is never mutated after construction.
type InfluencerProfile struct {
	Username             string               `json:"username"`
	UserID               string               `json:"user_id"`
	FullName             string               `json:"full_name"`
	Bio                  string               `json:"bio"`
	FollowerCount        int                  `json:"follower_count"`
	EngagementRate       float64              `json:"engagement_rate"`
	ContentThemes        []string             `json:"content_themes"`
	PostingFrequency     string               `json:"posting_frequency"`
	BrandAffiliations    []string             `json:"brand_affiliations"`
	CommunicationStyle   string               `json:"communication_style"`
	BestPostingTimes     []string             `json:"best_posting_times"`
	Demographics         AudienceDemographics `json:"audience_demographics"`
	PersonalityTraits    []string             `json:"personality_traits"`
	ContentFormats       []string             `json:"content_formats"`
	ViralContentPatterns []string             `json:"viral_content_patterns"`
}
