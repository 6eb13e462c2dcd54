package formula

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/robbyt/go-formula/execution/data"
	"github.com/robbyt/go-formula/execution/formula/loader"
	"github.com/robbyt/go-formula/internal/helpers"
	machineTypes "github.com/robbyt/go-formula/machines/types"
)

const checksumLength = 12

// Template represents a specific version of a formula, including its compiled
// content and creation time. It is the unit the engine evaluates: compile
// once, evaluate many times with different bound values.
type Template struct {
	// ID is a unique identifier for this template, typically derived from a
	// hash of the formula source.
	ID string

	// CreatedAt records when this template was instantiated.
	CreatedAt time.Time

	// SourceLoader loads the formula text from various places (file, string, HTTP).
	SourceLoader loader.Loader

	// Compiler is the machine-specific compiler that validated this template.
	Compiler Compiler

	// Content holds the normalized, validated form of the formula.
	Content ExecutableContent

	// DataProvider supplies the bound value (and any auxiliary data) at
	// evaluation time, enabling the "compile once, run many times" design.
	DataProvider data.Provider

	// Logging components
	logHandler slog.Handler
	logger     *slog.Logger
}

// NewTemplate creates a new Template from the provided loader and compiler.
// The dataProvider parameter supplies the bound value at evaluation time.
func NewTemplate(
	handler slog.Handler,
	versionID string,
	sourceLoader loader.Loader,
	compiler Compiler,
	dataProvider data.Provider,
) (*Template, error) {
	handler, logger := helpers.SetupLogger(handler, "formula", "Template")

	if compiler == nil {
		return nil, ErrNoCompiler
	}

	if sourceLoader == nil {
		return nil, ErrNoLoader
	}

	reader, err := sourceLoader.GetReader()
	if err != nil {
		return nil, fmt.Errorf("failed to get reader from loader: %w", err)
	}

	exe, err := compiler.Compile(reader)
	if err != nil {
		return nil, fmt.Errorf("compiler failed: %w", err)
	}

	if versionID == "" {
		versionID = helpers.SHA256(exe.GetSource())
		if len(versionID) > checksumLength {
			versionID = versionID[:checksumLength]
		}
	}

	return &Template{
		ID:           versionID,
		CreatedAt:    time.Now(),
		SourceLoader: sourceLoader,
		Content:      exe,
		Compiler:     compiler,
		DataProvider: dataProvider,
		logHandler:   handler,
		logger:       logger.With("ID", versionID),
	}, nil
}

func (t *Template) String() string {
	return fmt.Sprintf("formula.Template{ID: %s, CreatedAt: %s, Loader: %s}",
		t.ID, t.CreatedAt, t.SourceLoader)
}

// GetID returns the unique identifier (version number, or name) for this template.
func (t *Template) GetID() string {
	return t.ID
}

// GetContent returns the validated & normalized formula as ExecutableContent
func (t *Template) GetContent() ExecutableContent {
	return t.Content
}

// GetCreatedAt returns the timestamp when the template was created.
func (t *Template) GetCreatedAt() time.Time {
	return t.CreatedAt
}

// GetMachineType returns the machine type this template is intended to run on.
func (t *Template) GetMachineType() machineTypes.Type {
	return t.Content.GetMachineType()
}

// GetCompiler returns the compiler used to validate the template.
func (t *Template) GetCompiler() Compiler {
	return t.Compiler
}

// GetLoader returns the loader used to load the formula source.
func (t *Template) GetLoader() loader.Loader {
	return t.SourceLoader
}

// GetDataProvider returns the data provider for this template.
func (t *Template) GetDataProvider() data.Provider {
	return t.DataProvider
}

// WithDataProvider returns a copy of the Template bound to a different data
// provider. The compiled content is shared; a Template is immutable after
// construction so the copy is safe for concurrent use.
func (t *Template) WithDataProvider(provider data.Provider) *Template {
	clone := *t
	clone.DataProvider = provider
	return &clone
}
