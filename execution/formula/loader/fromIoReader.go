package loader

import (
	"bytes"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/robbyt/go-formula/internal/helpers"
)

// FromIoReader implements the Loader interface for content from an io.Reader.
type FromIoReader struct {
	content   []byte
	sourceURL *url.URL
}

// NewFromIoReader creates a new Loader from an io.Reader source.
// The entire reader content is read and stored to allow multiple GetReader calls.
func NewFromIoReader(reader io.Reader, sourceName string) (*FromIoReader, error) {
	if reader == nil {
		return nil, fmt.Errorf("%w: reader is nil", ErrFormulaNotAvailable)
	}

	// Read all content from reader, bounded so a misdirected stream can't
	// balloon into memory.
	content, err := io.ReadAll(io.LimitReader(reader, maxFormulaBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read from reader: %w", err)
	}
	if len(content) > maxFormulaBytes {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrFormulaTooLarge, maxFormulaBytes)
	}

	// Check if content is empty or contains only whitespace
	if strings.TrimSpace(string(content)) == "" {
		return nil, fmt.Errorf(
			"%w: content is empty or contains only whitespace",
			ErrFormulaNotAvailable,
		)
	}

	// Create source URL with identifier based on content
	urlStr := "reader://"
	if sourceName != "" {
		urlStr += sourceName + "/"
	} else {
		urlStr += "unnamed/"
	}
	urlStr += helpers.SHA256(string(content))[:8]

	u, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("failed to create source URL: %w", err)
	}

	return &FromIoReader{
		content:   content,
		sourceURL: u,
	}, nil
}

func (l *FromIoReader) String() string {
	return fmt.Sprintf(
		"loader.FromIoReader{Bytes: %d, Source: %s}",
		len(l.content),
		l.sourceURL.String(),
	)
}

// GetReader returns a new reader for the stored content.
func (l *FromIoReader) GetReader() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(l.content)), nil
}

// GetSourceURL returns the source URL of the formula.
func (l *FromIoReader) GetSourceURL() *url.URL {
	return l.sourceURL
}
