// internal/model/brand.go
package model

// TargetAudience describes who the brand wants to reach.
type TargetAudience struct {
	AgeRange  string   `json:"age_range,omitempty"`
	Interests []string `json:"interests"`
	Location  string   `json:"location,omitempty"`
}

// BrandCampaign holds the brand side of an outreach campaign. It is
// built from external configuration and read-only afterwards.
type BrandCampaign struct {
	BrandName               string         `json:"brand_name"`
	CampaignGoals           []string       `json:"campaign_goals"`
	TargetAudience          TargetAudience `json:"target_audience"`
	BudgetRange             string         `json:"budget_range"`
	CampaignDuration        string         `json:"campaign_duration"`
	ContentRequirements     []string       `json:"content_requirements"`
	BrandValues             []string       `json:"brand_values"`
	ExcludedTopics          []string       `json:"excluded_topics"`
	PreferredContentFormats []string       `json:"preferred_content_formats"`
}

// BrandConfig is the wire shape accepted when creating a campaign.
// Optional fields fall back to the same defaults the brand team used in
// early pilots.
type BrandConfig struct {
	Name           string         `json:"name"`
	Goals          []string       `json:"goals"`
	TargetAudience TargetAudience `json:"target_audience"`
	Budget         string         `json:"budget,omitempty"`
	Duration       string         `json:"duration,omitempty"`
	Requirements   []string       `json:"requirements,omitempty"`
	Values         []string       `json:"values,omitempty"`
	Excluded       []string       `json:"excluded,omitempty"`
	Formats        []string       `json:"formats,omitempty"`
}

// ToBrandCampaign applies defaults and returns the read-only campaign record.
func (c BrandConfig) ToBrandCampaign() BrandCampaign {
	b := BrandCampaign{
		BrandName:               c.Name,
		CampaignGoals:           c.Goals,
		TargetAudience:          c.TargetAudience,
		BudgetRange:             c.Budget,
		CampaignDuration:        c.Duration,
		ContentRequirements:     c.Requirements,
		BrandValues:             c.Values,
		ExcludedTopics:          c.Excluded,
		PreferredContentFormats: c.Formats,
	}
	if b.BudgetRange == "" {
		b.BudgetRange = "negotiable"
	}
	if b.CampaignDuration == "" {
		b.CampaignDuration = "1 month"
	}
	if len(b.PreferredContentFormats) == 0 {
		b.PreferredContentFormats = []string{"posts", "stories"}
	}
	return b
}
