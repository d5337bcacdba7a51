package errors

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil error", err: nil, expected: 0},
		{name: "validation", err: ValidationError("bad field").Build(), expected: 2},
		{name: "config", err: ConfigError("bad config").Build(), expected: 7},
		{name: "spec", err: SpecError("missing operationId").Build(), expected: 9},
		{name: "build", err: BuildError("emit failed").Build(), expected: 11},
		{name: "filesystem", err: FileSystemError("rename failed").Build(), expected: 11},
		{name: "internal", err: InternalError("bug").Build(), expected: 10},
		{name: "wrapped classified", err: fmt.Errorf("stage: %w", SpecError("dup").Build()), expected: 9},
		{name: "unclassified error", err: io.EOF, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, adapter.ExitCodeFor(tt.err))
		})
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	specErr := SpecError("operation is missing operationId").
		WithContext("method", "post").
		WithContext("path", "/classify").
		Build()

	tests := []struct {
		name     string
		verbose  bool
		err      error
		contains string
	}{
		{name: "nil error", err: nil, contains: ""},
		{name: "spec error names operation", err: specErr, contains: "OpenAPI document error: operation is missing operationId (method=post path=/classify)"},
		{name: "config error", err: ConfigError("no versions configured").Build(), contains: "Configuration error: no versions configured"},
		{name: "internal hidden", err: InternalError("nil pointer").Build(), contains: "use -v for details"},
		{name: "internal verbose", verbose: true, err: InternalError("nil pointer").Build(), contains: "[internal:fatal] nil pointer"},
		{name: "unclassified", err: io.ErrUnexpectedEOF, contains: "Error: unexpected EOF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter := NewCLIErrorAdapter(tt.verbose, slog.Default())
			assert.Contains(t, adapter.FormatError(tt.err), tt.contains)
		})
	}
}

func TestCLIErrorAdapter_HandleError(t *testing.T) {
	var logs, out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	adapter := NewCLIErrorAdapter(false, logger)
	adapter.out = &out
	code := -1
	adapter.exit = func(c int) { code = c }

	adapter.HandleError(SpecError("duplicate operationId").WithContext("version", "next").Build())

	require.Equal(t, 9, code)
	assert.Contains(t, out.String(), "duplicate operationId (version=next)")
	assert.Contains(t, logs.String(), "category=spec")

	code = -1
	adapter.HandleError(nil)
	assert.Equal(t, -1, code)
}
