package community

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/sudet/pkg/cache"
	"github.com/matzehuels/sudet/pkg/integrations"
)

// ResolvedUser is one entry of an ajaxresolveusers response.
type ResolvedUser struct {
	SteamID     string `json:"steamid"`      // SteamID64 as a decimal string
	AccountID   uint32 `json:"accountid"`    // 32-bit account ID, the userdata directory name
	PersonaName string `json:"persona_name"` // Current display name (may be empty)
	ProfileURL  string `json:"profile_url"`  // Vanity URL part (may be empty)
}

// Client provides access to steamcommunity.com user resolution.
// It handles HTTP requests with caching and automatic retries.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a steamcommunity.com client caching responses in
// backend for cacheTTL.
func NewClient(backend cache.Cache, cacheTTL time.Duration) *Client {
	return &Client{
		Client:  integrations.NewClient(backend, "community:", cacheTTL, integrations.DefaultHeaders()),
		baseURL: "https://steamcommunity.com",
	}
}

// ResolveUsers resolves SteamID64s to account information. The order of the
// result follows the response, which may omit unknown IDs. An empty input
// returns nil without a request.
//
// Returns:
//   - [integrations.ErrNetwork] for HTTP failures (timeout, 5xx, etc.)
//   - Other errors for JSON decoding failures
func (c *Client) ResolveUsers(ctx context.Context, steamIDs []string, refresh bool) ([]ResolvedUser, error) {
	if len(steamIDs) == 0 {
		return nil, nil
	}
	ids := slices.Clone(steamIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)
	key := strings.Join(ids, ",")

	var users []ResolvedUser
	err := c.Cached(ctx, key, refresh, &users, func() error {
		u := fmt.Sprintf("%s/actions/ajaxresolveusers?steamids=%s", c.baseURL, url.QueryEscape(key))
		return c.Get(ctx, u, &users)
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

// ResolveAccountID returns the account ID of steamID as a decimal string,
// suitable for building the userdata path. It returns a wrapped
// [integrations.ErrNotFound] if the response does not contain steamID.
func (c *Client) ResolveAccountID(ctx context.Context, steamID string, refresh bool) (string, error) {
	users, err := c.ResolveUsers(ctx, []string{steamID}, refresh)
	if err != nil {
		return "", err
	}
	for _, u := range users {
		if u.SteamID == steamID || (u.SteamID == "" && len(users) == 1) {
			return strconv.FormatUint(uint64(u.AccountID), 10), nil
		}
	}
	return "", fmt.Errorf("%w: steam user %s", integrations.ErrNotFound, steamID)
}
