package store

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/matzehuels/sudet/pkg/cache"
	"github.com/matzehuels/sudet/pkg/integrations"
)

// StatusNoData is the status the endpoint returns for unknown app IDs.
const StatusNoData = 2

// DefaultLanguage is used when no language is configured.
const DefaultLanguage = "english"

// AppInfo holds the parts of a libraryappdetails response sudet uses.
type AppInfo struct {
	AppID  string `json:"appid"`  // App ID as queried
	Name   string `json:"name"`   // Store title (empty when Status is StatusNoData)
	Status int    `json:"status"` // 1 for success, StatusNoData for unknown apps
}

// Client provides access to store.steampowered.com app details.
type Client struct {
	*integrations.Client
	baseURL  string
	language string
}

// NewClient creates a store client caching responses in backend for
// cacheTTL. Titles are requested in language, or [DefaultLanguage] if empty.
func NewClient(backend cache.Cache, cacheTTL time.Duration, language string) *Client {
	if language == "" {
		language = DefaultLanguage
	}
	return &Client{
		Client:   integrations.NewClient(backend, "store:", cacheTTL, integrations.DefaultHeaders()),
		baseURL:  "https://store.steampowered.com/api",
		language: language,
	}
}

// AppDetails retrieves the title of appID.
//
// Returns:
//   - AppInfo on success
//   - [integrations.ErrNotFound] if the store has no data for the app
//   - [integrations.ErrNetwork] for HTTP failures
func (c *Client) AppDetails(ctx context.Context, appID string, refresh bool) (*AppInfo, error) {
	var resp appDetailsResponse
	err := c.Cached(ctx, c.language+":"+appID, refresh, &resp, func() error {
		u := fmt.Sprintf("%s/libraryappdetails/?appid=%s&l=%s",
			c.baseURL, url.QueryEscape(appID), url.QueryEscape(c.language))
		return c.Get(ctx, u, &resp)
	})
	if err != nil {
		return nil, err
	}
	if resp.Status == StatusNoData {
		return nil, fmt.Errorf("%w: app %s", integrations.ErrNotFound, appID)
	}
	return &AppInfo{AppID: appID, Name: resp.Name, Status: resp.Status}, nil
}

// appDetailsResponse omits appid since the endpoint returns it as either a
// string or a number.
type appDetailsResponse struct {
	Status int    `json:"status"`
	Name   string `json:"name"`
}
