package artifacts

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/sudet/pkg/buildinfo"
	serrors "github.com/matzehuels/sudet/pkg/errors"
	"github.com/matzehuels/sudet/pkg/steam"
)

// FilesDir is the subdirectory of the output directory that receives copies.
const FilesDir = "files"

// Extractor collects artifacts from a Steam installation.
type Extractor struct {
	Paths  steam.Paths
	OutDir string
	Logger *log.Logger

	// now is replaced in tests.
	now func() time.Time
}

// NewExtractor creates an Extractor writing to outDir.
// If logger is nil, log.Default() is used.
func NewExtractor(paths steam.Paths, outDir string, logger *log.Logger) *Extractor {
	if logger == nil {
		logger = log.Default()
	}
	return &Extractor{Paths: paths, OutDir: outDir, Logger: logger, now: time.Now}
}

type step struct {
	name string
	kind Kind
	src  string
	dest string
	err  error
}

// Extract runs every extraction step and writes the manifest.
//
// Step failures are recorded in the returned Manifest. Extract itself fails
// only when the output directories or the manifest cannot be written, or
// when ctx is cancelled. accountID selects the localconfig.vdf to copy; an
// empty ID records that step as failed.
func (e *Extractor) Extract(ctx context.Context, accountID string) (*Manifest, error) {
	logger := e.Logger
	if logger == nil {
		logger = log.Default()
	}
	now := e.now
	if now == nil {
		now = time.Now
	}

	if err := serrors.ValidateOutputDir(e.OutDir); err != nil {
		return nil, err
	}
	filesDir := filepath.Join(e.OutDir, FilesDir)
	if err := os.MkdirAll(filesDir, 0o755); err != nil {
		return nil, serrors.Wrap(serrors.ErrCodeInternal, err, "create output directory %s", e.OutDir)
	}
	logger.Debug("output directory ready", "dir", e.OutDir)

	m := &Manifest{
		RunID:     uuid.NewString(),
		Version:   buildinfo.Version,
		StartedAt: now().UTC(),
		SteamDir:  e.Paths.SteamDir,
		AccountID: accountID,
		OutDir:    e.OutDir,
	}

	localConfig, lcErr := e.Paths.LocalConfig(accountID)
	steps := []step{
		{name: "htmlcache", kind: KindArchive, src: e.Paths.HTMLCacheDir, dest: filepath.Join(e.OutDir, "htmlcache.zip")},
		{name: "logs", kind: KindArchive, src: e.Paths.LogsDir(), dest: filepath.Join(e.OutDir, "logs.zip")},
		{name: steam.LoginUsersFile, kind: KindFile, src: e.Paths.LoginUsers(), dest: filepath.Join(filesDir, steam.LoginUsersFile)},
		{name: steam.LocalConfigFile, kind: KindFile, src: localConfig, dest: filepath.Join(filesDir, steam.LocalConfigFile), err: lcErr},
		{name: steam.RemoteClientsFile, kind: KindFile, src: e.Paths.RemoteClients(), dest: filepath.Join(filesDir, steam.RemoteClientsFile)},
	}

	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		it := e.run(ctx, s)
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if it.OK() {
			logger.Info("extracted", "item", it.Name, "files", it.Files, "bytes", it.Bytes)
		} else {
			logger.Warn("extraction step failed", "item", it.Name, "error", it.Error)
		}
		m.Items = append(m.Items, it)
	}

	m.FinishedAt = now().UTC()
	if err := m.write(); err != nil {
		return nil, serrors.Wrap(serrors.ErrCodeInternal, err, "write manifest")
	}
	return m, nil
}

func (e *Extractor) run(ctx context.Context, s step) Item {
	it := Item{Name: s.name, Kind: s.kind, Source: s.src}
	if s.err != nil {
		it.Error = s.err.Error()
		return it
	}

	switch s.kind {
	case KindArchive:
		files, err := zipDir(ctx, s.src, s.dest)
		if err != nil {
			it.Error = err.Error()
			return it
		}
		it.Files = files
		it.Bytes, it.SHA256, err = hashFile(s.dest)
		if err != nil {
			it.Error = err.Error()
			return it
		}
	case KindFile:
		n, sum, err := copyFile(s.src, s.dest)
		if err != nil {
			it.Error = err.Error()
			return it
		}
		it.Files, it.Bytes, it.SHA256 = 1, n, sum
	}
	it.Dest = s.dest
	return it
}
