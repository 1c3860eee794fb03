// Package clean prepares raw question text for the detectors
package clean

import (
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// entityRef matches named and numeric character references. They are
// dropped rather than decoded, as the upstream dataset cleaning does.
var entityRef = regexp.MustCompile(`&([a-z0-9]+|#[0-9]{1,6}|#x[0-9a-f]{1,6});`)

// Text strips HTML, normalizes to NFC and removes one pair of surrounding quotes
func Text(raw string) string {
	return StripQuotes(norm.NFC.String(StripHTML(raw)))
}

// StripHTML removes tags, comments and character references, keeping text content
func StripHTML(raw string) string {
	if !strings.ContainsAny(raw, "<&") {
		return raw
	}

	var buf strings.Builder
	z := html.NewTokenizer(strings.NewReader(raw))
	for {
		switch z.Next() {
		case html.ErrorToken:
			if z.Err() == io.EOF {
				return entityRef.ReplaceAllString(buf.String(), "")
			}
			// Malformed markup: fall back to the raw text
			return entityRef.ReplaceAllString(raw, "")
		case html.TextToken:
			buf.Write(z.Raw())
		}
	}
}

// StripQuotes removes a leading and trailing quote when both are the same
// kind (" or ')
func StripQuotes(s string) string {
	for _, q := range []string{`"`, `'`} {
		if strings.HasPrefix(s, q) && strings.HasSuffix(s, q) {
			if len(s) < 2 {
				return ""
			}
			return s[1 : len(s)-1]
		}
	}
	return s
}
