package steam

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	serrors "github.com/matzehuels/sudet/pkg/errors"
	"github.com/matzehuels/sudet/pkg/vdf"
)

// ReadDocument opens and parses the VDF file at path.
//
// A missing file yields an error with code FILE_NOT_FOUND and malformed
// content one with code INVALID_VDF; both keep the underlying error in
// the chain.
func ReadDocument(path string) (*vdf.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, serrors.Wrap(serrors.ErrCodeFileNotFound, err, "%s not found", filepath.Base(path))
		}
		return nil, serrors.Wrap(serrors.ErrCodeInternal, err, "open %s", filepath.Base(path))
	}
	defer f.Close()

	doc, err := vdf.ParseReader(f)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrCodeInvalidVDF, err, "parse %s", filepath.Base(path))
	}
	return doc, nil
}
