// Package pkg provides the libraries behind sudet, the Steam user data
// extraction tool.
//
// # Overview
//
// sudet reads the text configuration files a Steam client keeps on disk
// to report account details, friends, owned games and remote connections,
// and copies those files together with the web cache and client logs into
// an output directory for offline inspection. The pkg directory is
// organized into four areas:
//
//  1. [vdf] - The VDF (Valve Data Format) text parser and serializer
//  2. [steam] - Steam install locations and typed readers for its files
//  3. [integrations] - Steam web clients (community profiles, store apps)
//  4. [inspect] and [artifacts] - The parse and extract operations
//
// # Architecture
//
// The typical data flow through sudet:
//
//	loginusers.vdf / localconfig.vdf / remoteclients.vdf
//	         ↓
//	    [vdf] package (text → ordered Node tree)
//	         ↓
//	    [steam] package (Node tree → User, Friend, RemoteClient)
//	         ↓
//	    [inspect] package (+ [integrations] lookups) → Report
//
// Extraction runs beside this: [artifacts] zips the web cache and logs and
// copies the raw files, recording each step in a manifest.
//
// # Quick Start
//
// Parse a file and read a value:
//
//	import "github.com/matzehuels/sudet/pkg/vdf"
//
//	doc, err := vdf.Parse(text)
//	if err != nil {
//	    // *vdf.ParseError with line and column
//	}
//	name, err := doc.Lookup("users", steamID, "PersonaName")
//
// Build a report for the local installation:
//
//	paths := steam.DefaultPaths(runtime.GOOS, os.Getenv, home)
//	r := &inspect.Runner{Paths: paths, Offline: true}
//	rep, err := r.Run(ctx)
//
// # Supporting Packages
//
// [cache] - File-backed response cache with TTLs, plus retry helpers.
//
// [config] - The TOML configuration file.
//
// [errors] - Error codes for user-facing messages and ID validation.
//
// [buildinfo] - Version information injected at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/vdf/...      # Specific package
//	go test -run Example       # Examples only
//
// [vdf]: https://pkg.go.dev/github.com/matzehuels/sudet/pkg/vdf
// [steam]: https://pkg.go.dev/github.com/matzehuels/sudet/pkg/steam
// [integrations]: https://pkg.go.dev/github.com/matzehuels/sudet/pkg/integrations
// [inspect]: https://pkg.go.dev/github.com/matzehuels/sudet/pkg/inspect
// [artifacts]: https://pkg.go.dev/github.com/matzehuels/sudet/pkg/artifacts
// [cache]: https://pkg.go.dev/github.com/matzehuels/sudet/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/sudet/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/sudet/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/sudet/pkg/buildinfo
package pkg
