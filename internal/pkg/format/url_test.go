// internal/pkg/format/url_test.go
package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "returns full URL unchanged", input: "https://example.com/path", expected: "https://example.com/path"},
		{name: "returns full URL with query and fragment unchanged", input: "http://example.com/path?query=1#hash", expected: "http://example.com/path?query=1#hash"},
		{name: "trims spaces and keeps leading slash", input: "   /path  ", expected: "/path"},
		{name: "collapses multiple leading slashes", input: "///path/to/resource", expected: "/path/to/resource"},
		{name: "collapses interior slash runs", input: "/products//1", expected: "/products/1"},
		{name: "returns root slash for input slash", input: "/", expected: "/"},
		{name: "returns root slash for empty input", input: "", expected: "/"},
		{name: "removes leading spaces and slashes", input: "  ///multiple/slashes/and/spaces  ", expected: "/multiple/slashes/and/spaces"},
		{name: "adds missing leading slash", input: "no-leading-slash", expected: "/no-leading-slash"},
		{name: "handles unusual URL schemes", input: "ftp://example.com/resource", expected: "ftp://example.com/resource"},
		{name: "handles URL with port", input: "http://localhost:3000/path", expected: "http://localhost:3000/path"},
		{name: "does not modify already normalized path", input: "/already-normalized/path", expected: "/already-normalized/path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizePath(tt.input))
		})
	}
}

func TestNormalizePathIdempotent(t *testing.T) {
	inputs := []string{"", "/", "  /a//b ", "///x", "no-slash", "https://example.com/p?q=1#f"}

	for _, input := range inputs {
		once := NormalizePath(input)
		assert.Equal(t, once, NormalizePath(once), "input %q", input)
	}
}
