// internal/registry/registry.go
package registry

import (
	"sync"
	"time"

	"github.com/influenceos/influenceos-backend/internal/model"
)

// InfluencerRecord is the mutable per-influencer entry inside a
// campaign. The profile and outreach package are immutable; only
// status and the message log change.
type InfluencerRecord struct {
	Profile  *model.InfluencerProfile `json:"profile"`
	Outreach *model.OutreachCampaign  `json:"outreach"`
	Status   string                   `json:"status"`
	Messages []model.SentMessage      `json:"messages"`
}

// FollowUpTracker is a cursor over an ordered follow-up strategy. The
// cursor advances by exactly one per fired step and never passes the
// strategy length.
type FollowUpTracker struct {
	Strategy []model.FollowUpStep `json:"follow_ups"`
	Index    int                  `json:"current_index"`
}

// Campaign is one registry entry. Campaigns embed their own mutex:
// callers hold it while reading or mutating influencer records so that
// concurrent campaigns stay independent.
type Campaign struct {
	sync.Mutex `json:"-"`

	ID                string                       `json:"campaign_id"`
	Name              string                       `json:"name"`
	Brand             model.BrandCampaign          `json:"brand"`
	Status            string                       `json:"status"`
	Influencers       map[string]*InfluencerRecord `json:"influencers"`
	Order             []string                     `json:"-"` // username insertion order
	Trackers          map[string]*FollowUpTracker  `json:"-"`
	MessagesSent      int                          `json:"messages_sent"`
	Responses         int                          `json:"responses"`
	PositiveResponses int                          `json:"positive_responses"`
	CreatedAt         time.Time                    `json:"created_at"`
}

func NewCampaign(id, name string, brand model.BrandCampaign, createdAt time.Time) *Campaign {
	return &Campaign{
		ID:          id,
		Name:        name,
		Brand:       brand,
		Status:      model.CampaignAnalyzing,
		Influencers: map[string]*InfluencerRecord{},
		Trackers:    map[string]*FollowUpTracker{},
		CreatedAt:   createdAt,
	}
}

// AddInfluencer registers a freshly analyzed influencer. Caller holds
// the campaign lock.
func (c *Campaign) AddInfluencer(username string, rec *InfluencerRecord) {
	if _, exists := c.Influencers[username]; !exists {
		c.Order = append(c.Order, username)
	}
	c.Influencers[username] = rec
}

// CampaignStore is the registry behind an interface so that the core
// logic does not depend on in-memory-only semantics.
type CampaignStore interface {
	Put(c *Campaign)
	Get(id string) (*Campaign, bool)
	List() []*Campaign
}

// InMemoryStore keeps all campaign state for a single process
// lifetime.
type InMemoryStore struct {
	mu        sync.RWMutex
	campaigns map[string]*Campaign
	order     []string
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{campaigns: map[string]*Campaign{}}
}

func (s *InMemoryStore) Put(c *Campaign) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.campaigns[c.ID]; !exists {
		s.order = append(s.order, c.ID)
	}
	s.campaigns[c.ID] = c
}

func (s *InMemoryStore) Get(id string) (*Campaign, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.campaigns[id]
	return c, ok
}

func (s *InMemoryStore) List() []*Campaign {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Campaign, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.campaigns[id])
	}
	return out
}

var _ CampaignStore = (*InMemoryStore)(nil)
