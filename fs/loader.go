package fs

import (
	"os"
	"path/filepath"

	"github.com/fwojciec/seoaudit"
)

// Ensure Loader implements seoaudit.Loader at compile time.
var _ seoaudit.Loader = (*Loader)(nil)

// Loader reads raw HTML from local files for the local-file audit mode.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the file at path and returns its content together with the
// cleaned path, which serves as the document's source ID.
func (l *Loader) Load(path string) (string, string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", "", seoaudit.Errorf(seoaudit.ENOTFOUND, "file %q does not exist", path)
	} else if err != nil {
		return "", "", seoaudit.Errorf(seoaudit.EINVALID, "cannot read %q: %v", path, err)
	}
	return string(data), filepath.Clean(path), nil
}
