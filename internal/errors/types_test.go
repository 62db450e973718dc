package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      *BaseError
		expected string
	}{
		{
			name:     "plain",
			err:      New(GenerationErrorCode, "nothing to render"),
			expected: "nothing to render",
		},
		{
			name:     "with cause",
			err:      Wrap(FileSystemErrorCode, "failed to read", fmt.Errorf("permission denied")),
			expected: "failed to read: permission denied",
		},
		{
			name:     "with location",
			err:      ParseError("unexpected token").WithLocation(SourceLocation{File: "types.d.ts", Line: 4, Column: 2}),
			expected: "types.d.ts:4:2: unexpected token",
		},
		{
			name:     "file only location",
			err:      New(SyntaxErrorCode, "bad input").WithLocation(SourceLocation{File: "types.d.ts"}),
			expected: "types.d.ts: bad input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestWrappers(t *testing.T) {
	cause := fmt.Errorf("boom")

	tests := []struct {
		name    string
		err     *BaseError
		code    ErrorCode
		message string
		context map[string]interface{}
	}{
		{
			name:    "parse",
			err:     WrapParseError("types.d.ts", cause),
			code:    SyntaxErrorCode,
			message: "failed to parse types.d.ts: boom",
			context: map[string]interface{}{"item": "types.d.ts"},
		},
		{
			name:    "file system",
			err:     WrapFileSystemError("write", "doc/api.md", cause),
			code:    FileSystemErrorCode,
			message: "failed to write file 'doc/api.md': boom",
			context: map[string]interface{}{"operation": "write", "path": "doc/api.md"},
		},
		{
			name:    "template",
			err:     WrapTemplateError("interface", "execute", cause),
			code:    TemplateErrorCode,
			message: "failed to execute template 'interface': boom",
			context: map[string]interface{}{"template": "interface", "operation": "execute"},
		},
		{
			name:    "configuration",
			err:     ConfigurationError("locale", "unsupported"),
			code:    ConfigurationErrorCode,
			message: "configuration error in 'locale': unsupported",
			context: map[string]interface{}{"config_type": "locale"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.ErrorCode())
			assert.Equal(t, tt.message, tt.err.Error())
			assert.Equal(t, tt.context, tt.err.Context())
		})
	}
}

func TestErrorChain(t *testing.T) {
	inner := FileSystemError("read", "a.d.ts", "file does not exist")
	outer := fmt.Errorf("collect: %w", inner)

	assert.True(t, HasCode(outer, FileSystemErrorCode))
	assert.False(t, HasCode(outer, SyntaxErrorCode))
	assert.False(t, HasCode(nil, FileSystemErrorCode))

	docErr, ok := AsDocError(outer)
	require.True(t, ok)
	assert.Same(t, inner, docErr)

	_, ok = AsDocError(fmt.Errorf("plain"))
	assert.False(t, ok)
}

func TestErrorCodeString(t *testing.T) {
	assert.Equal(t, "SyntaxError", SyntaxErrorCode.String())
	assert.Equal(t, "ConfigurationError", ConfigurationErrorCode.String())
	assert.Equal(t, "UnknownError", ErrorCode(99).String())
	assert.Equal(t, "unknown location", SourceLocation{}.String())
}
