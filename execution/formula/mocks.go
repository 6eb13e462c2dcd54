package formula

import (
	"fmt"
	"io"
	"strings"

	machineTypes "github.com/robbyt/go-formula/machines/types"
)

// mockExecutableContent is a minimal ExecutableContent used by tests in this
// package, which cannot import a real machine without creating a cycle.
type mockExecutableContent struct {
	source      string
	normalized  string
	machineType machineTypes.Type
}

func (m *mockExecutableContent) GetSource() string                 { return m.source }
func (m *mockExecutableContent) GetNormalized() any                { return m.normalized }
func (m *mockExecutableContent) GetMachineType() machineTypes.Type { return m.machineType }

// mockCompiler strips whitespace and fails on content containing "INVALID".
type mockCompiler struct {
	machineType machineTypes.Type
}

func (m *mockCompiler) String() string { return "formula.mockCompiler" }

func (m *mockCompiler) Compile(reader io.ReadCloser) (ExecutableContent, error) {
	if reader == nil {
		return nil, fmt.Errorf("reader is nil")
	}
	raw, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	if err := reader.Close(); err != nil {
		return nil, err
	}

	source := strings.TrimSpace(string(raw))
	if strings.Contains(source, "INVALID") {
		return nil, fmt.Errorf("mock compile failure")
	}

	return &mockExecutableContent{
		source:      source,
		normalized:  strings.ReplaceAll(source, " ", ""),
		machineType: m.machineType,
	}, nil
}
