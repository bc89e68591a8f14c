package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// HTTPKey returns the cache key for an HTTP response identified by key
// within namespace, e.g. HTTPKey("store:", "440") == "http:store::440".
func HTTPKey(namespace, key string) string {
	return "http:" + namespace + ":" + key
}
