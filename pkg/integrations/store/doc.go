// Package store provides an HTTP client for the Steam store's library app
// details endpoint, used to turn the app IDs found in localconfig.vdf into
// game titles.
//
//	client := store.NewClient(backend, 24*time.Hour, "english")
//	app, err := client.AppDetails(ctx, "440", false)
//	if errors.Is(err, integrations.ErrNotFound) {
//	    // tools, delisted apps and other IDs without store data
//	}
//
// The endpoint answers status 2 for app IDs it has no data for; the client
// reports those as [integrations.ErrNotFound].
package store
