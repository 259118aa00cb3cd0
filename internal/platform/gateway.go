package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	appErrors "github.com/influenceos/influenceos-backend/internal/errors"
	"github.com/influenceos/influenceos-backend/internal/model"
)

// GatewayClient talks to the external DM gateway over JSON/HTTP. The
// gateway wraps the actual platform session; every response carries a
// success flag plus an error message on failure.
type GatewayClient struct {
	BaseURL string
	Client  *http.Client
}

func NewGatewayClient(baseURL string) *GatewayClient {
	return &GatewayClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type gatewayEnvelope struct {
	Success         bool            `json:"success"`
	Message         string          `json:"message"`
	DirectMessageID string          `json:"direct_message_id"`
	UserInfo        *model.UserInfo `json:"user_info"`
	Posts           []model.Post    `json:"posts"`
}

func (g *GatewayClient) do(ctx context.Context, method, path string, body any, out *gatewayEnvelope) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, g.BaseURL+path, &buf)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.Client.Do(req)
	if err != nil {
		return fmt.Errorf("gateway %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("gateway %s %s: status 404", method, path)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("gateway %s %s: status %d", method, path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("gateway %s %s: bad response: %w", method, path, err)
	}
	return nil
}

func (g *GatewayClient) FetchUserInfo(ctx context.Context, username string) (*model.UserInfo, error) {
	var env gatewayEnvelope
	if err := g.do(ctx, http.MethodGet, "/users/"+url.PathEscape(username), nil, &env); err != nil {
		return nil, err
	}
	if !env.Success || env.UserInfo == nil {
		return nil, appErrors.NewInfluencerNotFound(username)
	}
	return env.UserInfo, nil
}

func (g *GatewayClient) FetchUserPosts(ctx context.Context, username string, count int) ([]model.Post, error) {
	path := fmt.Sprintf("/users/%s/posts?count=%d", url.PathEscape(username), count)
	var env gatewayEnvelope
	if err := g.do(ctx, http.MethodGet, path, nil, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, fmt.Errorf("fetch posts for @%s: %s", username, env.Message)
	}
	return env.Posts, nil
}

func (g *GatewayClient) SendMessage(ctx context.Context, username, text string) (string, error) {
	body := map[string]string{"username": username, "message": text}
	var env gatewayEnvelope
	if err := g.do(ctx, http.MethodPost, "/send-dm", body, &env); err != nil {
		return "", err
	}
	if !env.Success {
		return "", fmt.Errorf("send to @%s failed: %s", username, env.Message)
	}
	return env.DirectMessageID, nil
}

var _ SocialClient = (*GatewayClient)(nil)
