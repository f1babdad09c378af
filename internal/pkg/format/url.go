// internal/pkg/format/url.go
package format

import (
	"net/url"
	"strings"
)

// NormalizePath normalizes an API endpoint path:
//   - a full absolute URL is returned as-is, query string and fragment included
//   - otherwise surrounding whitespace is trimmed, runs of consecutive slashes
//     are collapsed to one, and the result starts with exactly one slash
//
// The function is idempotent; "" and "/" both normalize to "/".
func NormalizePath(path string) string {
	if u, err := url.Parse(path); err == nil && u.Scheme != "" && u.Host != "" {
		return path
	}

	p := strings.TrimSpace(path)
	for strings.Contains(p, "//") {
		p = strings.ReplaceAll(p, "//", "/")
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}

	return p
}
