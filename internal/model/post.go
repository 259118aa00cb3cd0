// internal/model/post.go
package model

// Media type codes as reported by the platform gateway.
const (
	MediaPhoto    = 1
	MediaVideo    = 2
	MediaCarousel = 8
)

// Post is one recent post as returned by the platform gateway. TakenAt
// stays a raw string; timestamps from the gateway are not always
// parseable and the analyzer skips the bad ones.
type Post struct {
	Caption      string `json:"caption"`
	LikeCount    int    `json:"like_count"`
	CommentCount int    `json:"comment_count"`
	TakenAt      string `json:"taken_at"`
	MediaType    int    `json:"media_type"`
}

// UserInfo is the subset of account metadata the analyzer reads.
type UserInfo struct {
	UserID        string `json:"user_id"`
	Username      string `json:"username"`
	FullName      string `json:"full_name"`
	Biography     string `json:"biography"`
	FollowerCount int    `json:"follower_count"`
}
