// Package community provides an HTTP client for steamcommunity.com.
//
// # Overview
//
// The Steam client stores users by SteamID64 (e.g. 76561197960287930) in
// config/loginusers.vdf, but per-user data lives under userdata/<accountid>,
// keyed by the 32-bit account ID. [Client.ResolveUsers] asks the public
// ajaxresolveusers endpoint for the account ID, persona name and profile URL
// of one or more SteamID64s:
//
//	client := community.NewClient(backend, 24*time.Hour)
//	accountID, err := client.ResolveAccountID(ctx, "76561197960287930", false)
//
// # Caching
//
// Responses are cached under the "community:" namespace. Pass refresh=true
// to bypass the cache.
package community
