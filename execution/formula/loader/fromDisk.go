package loader

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/robbyt/go-formula/internal/helpers"
)

// maxFormulaBytes bounds how much a file- or network-backed loader will hand
// to the compiler. Formula templates are one-line expressions; anything
// larger is almost certainly the wrong file.
const maxFormulaBytes = 64 * 1024

// FromDisk implements the Loader interface for a formula template stored in a file.
type FromDisk struct {
	path      string
	sourceURL *url.URL
}

// NewFromDisk creates a Loader that reads the formula template from an
// absolute path on the local filesystem.
func NewFromDisk(path string) (*FromDisk, error) {
	path = strings.TrimPrefix(path, "file://")

	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return nil, fmt.Errorf("%w: %s", ErrSchemeUnsupported, path)
	}

	// Reject relative paths
	if !filepath.IsAbs(path) {
		return nil, fmt.Errorf("%w: relative paths are not supported", ErrFormulaNotAvailable)
	}

	path = filepath.Clean(path)

	if path == "" || path == "." || path == "/" || path == "\\" || path == "../" {
		return nil, fmt.Errorf("%w: path is empty or invalid", ErrFormulaNotAvailable)
	}

	u, err := url.Parse("file://" + path)
	if err != nil {
		return nil, fmt.Errorf("unable to parse URL: %w", err)
	}

	if u.Scheme != "file" {
		return nil, fmt.Errorf("%w: %s", ErrSchemeUnsupported, path)
	}

	return &FromDisk{
		path:      path,
		sourceURL: u,
	}, nil
}

func (l *FromDisk) String() string {
	var chksum string
	noChkSum := fmt.Sprintf("loader.FromDisk{Path: %s}", l.path)

	if l.sourceURL != nil {
		reader, err := l.GetReader()
		if err != nil {
			return noChkSum
		}
		defer reader.Close()

		chksum, err = helpers.SHA256Reader(reader)
		if err != nil {
			return noChkSum
		}

		chksum = chksum[:8]
	}

	if chksum == "" {
		return noChkSum
	}

	return fmt.Sprintf("loader.FromDisk{Path: %s, SHA256: %s}", l.path, chksum)
}

func (l *FromDisk) GetReader() (io.ReadCloser, error) {
	info, err := os.Stat(l.sourceURL.Path)
	if err != nil {
		return nil, err
	}
	if info.Size() > maxFormulaBytes {
		return nil, fmt.Errorf("%w: %d bytes", ErrFormulaTooLarge, info.Size())
	}

	return os.Open(l.sourceURL.Path)
}

// GetSourceURL returns the source URL of the formula.
func (l *FromDisk) GetSourceURL() *url.URL {
	return l.sourceURL
}
