package pushover

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Meyredha/Smart-Home-IEEE/internal/domain"
	"github.com/Meyredha/Smart-Home-IEEE/internal/infra"
)

// Client delivers emergency alerts through the Pushover message API.
// Delivery is retried with exponential backoff.
type Client struct {
	token      string
	userKey    string
	baseURL    string
	httpClient *http.Client
}

func NewClient(token, userKey string) *Client {
	return NewClientWithURL(token, userKey, "https://api.pushover.net")
}

func NewClientWithURL(token, userKey, baseURL string) *Client {
	return &Client{
		token:      token,
		userKey:    userKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Deliver(ctx context.Context, alert domain.Alert) error {
	if c.token == "" || c.userKey == "" {
		return nil
	}

	data := url.Values{}
	data.Set("token", c.token)
	data.Set("user", c.userKey)
	data.Set("title", fmt.Sprintf("Emergency: %s", alert.Reason))
	data.Set("message", alert.Message())
	data.Set("priority", "1")
	encoded := data.Encode()

	return infra.WithRetry(ctx, infra.DefaultRetryConfig(), func() error {
		req, err := http.NewRequestWithContext(
			ctx,
			http.MethodPost,
			c.baseURL+"/1/messages.json",
			strings.NewReader(encoded),
		)
		if err != nil {
			return fmt.Errorf("creating request: %w", err)
		}

		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("sending notification: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("pushover error: %s", resp.Status)
		}

		return nil
	})
}
