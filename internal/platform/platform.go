package platform

import (
	"context"

	"github.com/influenceos/influenceos-backend/internal/model"
)

// SocialClient is the capability surface the pipeline needs from the
// social platform. The real transport (login, sessions, scraping)
// lives in the external DM gateway; this interface keeps it out of the
// core.
type SocialClient interface {
	FetchUserInfo(ctx context.Context, username string) (*model.UserInfo, error)
	FetchUserPosts(ctx context.Context, username string, count int) ([]model.Post, error)
	SendMessage(ctx context.Context, username, text string) (messageID string, err error)
}
