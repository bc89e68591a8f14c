// Package integrations provides HTTP clients for public Steam web endpoints.
//
// # Overview
//
// Each endpoint family has its own subpackage:
//
//   - [community]: steamcommunity.com, resolves SteamID64s to account IDs
//   - [store]: store.steampowered.com, looks up app names by app ID
//
// # Client Pattern
//
// All clients follow a consistent pattern:
//
//	client := store.NewClient(backend, 24*time.Hour)
//	app, err := client.AppDetails(ctx, "440", false)  // false = use cache
//
// Clients handle:
//   - HTTP requests with retry on network errors, 429 and 5xx responses
//   - Response caching through a [cache.Cache] with a configurable TTL
//   - Mapping of API-specific "missing" answers to [ErrNotFound]
//
// # Shared Infrastructure
//
// The [Client] type provides the shared HTTP functionality used by every
// endpoint client.
//
// [community]: github.com/matzehuels/sudet/pkg/integrations/community
// [store]: github.com/matzehuels/sudet/pkg/integrations/store
// [cache.Cache]: github.com/matzehuels/sudet/pkg/cache.Cache
package integrations
