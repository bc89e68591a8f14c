package artifacts

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// ManifestFile is the manifest's file name inside the output directory.
const ManifestFile = "manifest.json"

// Kind says how an item was collected.
type Kind string

const (
	KindArchive Kind = "archive"
	KindFile    Kind = "file"
)

// Item is the outcome of one extraction step.
type Item struct {
	Name   string `json:"name"`
	Kind   Kind   `json:"kind"`
	Source string `json:"source"`
	Dest   string `json:"dest,omitempty"`
	Files  int    `json:"files"`
	Bytes  int64  `json:"bytes"`
	SHA256 string `json:"sha256,omitempty"`
	Error  string `json:"error,omitempty"`
}

// OK reports whether the step succeeded.
func (it Item) OK() bool { return it.Error == "" }

// Manifest describes one extraction run.
type Manifest struct {
	RunID      string    `json:"run_id"`
	Version    string    `json:"version"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	SteamDir   string    `json:"steam_dir"`
	AccountID  string    `json:"account_id,omitempty"`
	OutDir     string    `json:"out_dir"`
	Items      []Item    `json:"items"`
}

// Failed returns the items that did not complete.
func (m *Manifest) Failed() []Item {
	var out []Item
	for _, it := range m.Items {
		if !it.OK() {
			out = append(out, it)
		}
	}
	return out
}

// Path returns the location of manifest.json.
func (m *Manifest) Path() string { return filepath.Join(m.OutDir, ManifestFile) }

func (m *Manifest) write() error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(m.Path(), append(data, '\n'), 0o644)
}

// ReadManifest loads a manifest written by a previous run.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
