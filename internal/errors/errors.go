// internal/errors/errors.go
package appErrors

import "fmt"

// ErrCampaignNotFound is a sentinel error
type ErrCampaignNotFound struct {
	CampaignID string
}

func (e *ErrCampaignNotFound) Error() string {
	return fmt.Sprintf("campaign %q not found", e.CampaignID)
}

// Helper constructor
func NewCampaignNotFound(id string) error {
	return &ErrCampaignNotFound{CampaignID: id}
}

// ErrInfluencerNotFound marks a username the gateway could not resolve.
type ErrInfluencerNotFound struct {
	Username string
}

func (e *ErrInfluencerNotFound) Error() string {
	return fmt.Sprintf("influencer @%s not found", e.Username)
}

func NewInfluencerNotFound(username string) error {
	return &ErrInfluencerNotFound{Username: username}
}
