// Package steam reads the text configuration files a Steam client keeps on
// disk.
//
// # Locations
//
// [Paths] holds the resolved Steam install and web-cache directories.
// [DefaultPaths] derives them for the current platform; callers may
// override either field from configuration. Nothing in this package reads
// the environment directly.
//
// # Files
//
// Three files are understood:
//
//   - config/loginusers.vdf: accounts that have signed in ([LoginUsers])
//   - userdata/<account>/config/localconfig.vdf: friends and apps ([LocalConfig])
//   - config/remoteclients.vdf: Remote Play peers ([RemoteClients])
//
// Each reader takes an already parsed [vdf.Document] so it can be tested
// from literal text. [ReadDocument] loads and parses a file.
//
// # Identifiers
//
// A 64-bit SteamID embeds the 32-bit account ID used under userdata/.
// [AccountIDFromSteamID64] and [SteamID64FromAccountID] convert between the
// two for individual accounts.
package steam
