package integrations

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/matzehuels/sudet/pkg/buildinfo"
)

const httpTimeout = 10 * time.Second

// DefaultCacheTTL is how long Steam web responses are cached by default.
const DefaultCacheTTL = 24 * time.Hour

var (
	// ErrNotFound is returned when a user or app doesn't exist on the Steam side.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, 5xx responses).
	ErrNetwork = errors.New("network error")
)

// NewHTTPClient creates an HTTP client with a standard timeout for Steam requests.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

// DefaultHeaders returns the headers sent with every Steam request.
func DefaultHeaders() map[string]string {
	return map[string]string{
		"User-Agent": "sudet/" + strings.TrimPrefix(buildinfo.Version, "v"),
		"Accept":     "application/json",
	}
}
