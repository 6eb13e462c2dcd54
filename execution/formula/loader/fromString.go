package loader

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/robbyt/go-formula/internal/helpers"
)

// FromString implements the Loader interface for an inline formula string.
type FromString struct {
	content   string
	sourceURL *url.URL
}

// NewFromString creates a Loader from an inline formula template, e.g.
// "@VALUE * 2". Leading and trailing whitespace is trimmed; interior
// whitespace is left for the compiler, which strips it during normalization.
func NewFromString(content string) (*FromString, error) {
	content = strings.TrimSpace(content)

	if content == "" {
		return nil, fmt.Errorf("%w: content is empty", ErrFormulaNotAvailable)
	}

	// Use a more complete URL with a unique identifier
	u, err := url.Parse("string://inline/" + helpers.SHA256(content)[:8])
	if err != nil {
		return nil, fmt.Errorf("failed to create source URL: %w", err)
	}

	return &FromString{
		content:   content,
		sourceURL: u,
	}, nil
}

func (l *FromString) String() string {
	return fmt.Sprintf("loader.FromString{Chars: %d}", len(l.content))
}

func (l *FromString) GetReader() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(l.content)), nil
}

// GetSourceURL returns the source URL of the formula.
func (l *FromString) GetSourceURL() *url.URL {
	return l.sourceURL
}
