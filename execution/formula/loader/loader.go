// Package loader provides implementations of the Loader interface for
// fetching formula templates from various source types.
package loader

import (
	"io"
	"net/url"
)

// Loader provides the formula template text to the compiler.
type Loader interface {
	GetReader() (io.ReadCloser, error)
	GetSourceURL() *url.URL
}
