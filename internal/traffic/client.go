package traffic

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"sync"
	"time"

	"github.com/yegors/eco-flight/pkg/logger"
)

const defaultTokenURL = "https://auth.opensky-network.org/auth/realms/opensky-network/protocol/openid-connect/token"

// BoundingBox is the fixed geographic window the client polls.
type BoundingBox struct {
	LatMin float64
	LonMin float64
	LatMax float64
	LonMax float64
}

// Client fetches raw state vectors from an OpenSky-compatible REST endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	bbox       BoundingBox
	credsPath  string
	logger     *logger.Logger

	// Cached OAuth2 token (to reduce repeated token requests)
	token       string
	tokenExpiry time.Time
	tokenMu     sync.Mutex
}

// NewClient creates a traffic client. credsPath may be empty, in which case
// requests are anonymous (rate limits apply).
func NewClient(baseURL string, bbox BoundingBox, credsPath string, timeout time.Duration, log *logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		bbox:       bbox,
		credsPath:  credsPath,
		logger:     log.Named("traffic-cli"),
	}
}

// Fetch performs one GET against states/all for the configured bounding box
// and returns the raw feed. Errors here are the caller's to absorb; the
// polling service treats them as an unavailable cycle.
func (c *Client) Fetch(ctx context.Context) (*RawFeed, error) {
	token, err := c.bearerToken()
	if err != nil {
		return nil, err
	}

	urlStr := fmt.Sprintf("%s/states/all?lamin=%f&lomin=%f&lamax=%f&lomax=%f",
		c.baseURL, c.bbox.LatMin, c.bbox.LonMin, c.bbox.LatMax, c.bbox.LonMax)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.logger.Debug("Fetching live traffic", logger.String("url", urlStr))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Unexpected status code from traffic feed",
			logger.Int("status_code", resp.StatusCode),
			logger.String("body", preview(body)))
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var feed RawFeed
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("failed to parse feed JSON: %w", err)
	}

	c.logger.Debug("Successfully fetched live traffic",
		logger.Int("state_count", len(feed.States)),
		logger.Int64("feed_time", feed.Time))

	return &feed, nil
}

// bearerToken returns a cached or freshly obtained OAuth2 token, or the
// empty string when no credentials are configured.
func (c *Client) bearerToken() (string, error) {
	if c.credsPath == "" {
		return "", nil
	}

	c.tokenMu.Lock()
	if c.token != "" && time.Now().Before(c.tokenExpiry) {
		token := c.token
		c.tokenMu.Unlock()
		return token, nil
	}
	c.tokenMu.Unlock()

	b, err := os.ReadFile(c.credsPath)
	if err != nil {
		if os.IsNotExist(err) {
			c.logger.Warn("Credentials file not found, proceeding anonymously",
				logger.String("path", c.credsPath))
			return "", nil
		}
		return "", fmt.Errorf("failed to read credentials: %w", err)
	}

	var creds struct {
		AccessToken  string `json:"access_token"`
		ClientID     string `json:"client_id"`
		ClientSecret string `json:"client_secret"`
		TokenURL     string `json:"token_url"`
	}
	if err := json.Unmarshal(b, &creds); err != nil {
		return "", fmt.Errorf("invalid credentials JSON: %w", err)
	}

	// An explicit access token in the file wins; expiry is conservative.
	if creds.AccessToken != "" {
		c.cacheToken(creds.AccessToken, time.Now().Add(29*time.Minute))
		return creds.AccessToken, nil
	}

	if creds.ClientID == "" || creds.ClientSecret == "" {
		return "", fmt.Errorf("credentials must contain access_token or client_id+client_secret")
	}

	tokenURL := creds.TokenURL
	if tokenURL == "" {
		tokenURL = defaultTokenURL
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", creds.ClientID)
	form.Set("client_secret", creds.ClientSecret)

	c.logger.Debug("Requesting OAuth2 token", logger.String("token_url", tokenURL))
	resp, err := c.httpClient.PostForm(tokenURL, form)
	if err != nil {
		return "", fmt.Errorf("failed to request token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Token endpoint returned non-200",
			logger.Int("status", resp.StatusCode),
			logger.String("body", preview(body)))
		return "", fmt.Errorf("token endpoint error: %d", resp.StatusCode)
	}

	var tokResp struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokResp); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	if tokResp.AccessToken == "" {
		return "", fmt.Errorf("token response did not contain access_token")
	}

	expiry := time.Now().Add(29 * time.Minute)
	if tokResp.ExpiresIn > 60 {
		// Subtract a small safety margin
		expiry = time.Now().Add(time.Duration(tokResp.ExpiresIn-30) * time.Second)
	}
	c.cacheToken(tokResp.AccessToken, expiry)

	return tokResp.AccessToken, nil
}

func (c *Client) cacheToken(token string, expiry time.Time) {
	c.tokenMu.Lock()
	c.token = token
	c.tokenExpiry = expiry
	c.tokenMu.Unlock()
}

func preview(body []byte) string {
	s := string(body)
	if len(s) > 200 {
		return s[:200] + "..."
	}
	return s
}
