// Package inspect builds a report of the Steam account data found on disk.
//
// A [Runner] reads loginusers.vdf, localconfig.vdf and remoteclients.vdf
// through [steam.Paths], resolves the primary account's ID through an
// [AccountResolver] and names owned apps through an [AppLookup]. Both
// lookups are optional: with Offline set, or when a lookup fails, the
// account ID is derived from the SteamID and apps are listed by ID.
//
// Only a missing or unreadable loginusers.vdf stops a run. Every other
// problem is recorded in [Report.Warnings].
package inspect
