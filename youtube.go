// youtube.go
package main

import (
	"net/url"
	"strings"
)

const videoIDLength = 11

// idMatcher attempts to extract a video ID from one URL shape. It returns
// "" when the shape does not apply.
type idMatcher func(input string) string

// Matchers are tried in priority order; the first one whose extracted
// token is a syntactically valid ID wins. Adding a new URL shape means
// appending a matcher here.
var idMatchers = []idMatcher{
	matchWatchURL,
	matchShortURL,
	matchEmbedURL,
	matchBareID,
}

// ResolveVideo extracts the canonical 11-character video ID from any
// supported YouTube URL shape, or from a bare ID passed directly.
func ResolveVideo(input string) (VideoReference, error) {
	trimmed := strings.TrimSpace(input)
	for _, match := range idMatchers {
		if id := match(trimmed); isValidVideoID(id) {
			return VideoReference{ID: id}, nil
		}
	}
	return VideoReference{}, &InvalidURLError{Input: input}
}

// isValidVideoID reports whether id is exactly 11 characters from the
// YouTube identifier alphabet (alphanumeric plus - and _).
func isValidVideoID(id string) bool {
	if len(id) != videoIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '-' || c == '_':
		default:
			return false
		}
	}
	return true
}

// parseHostURL parses input as a URL, tolerating a missing scheme. Returns
// nil when input has no host component.
func parseHostURL(input string) *url.URL {
	if !strings.Contains(input, "://") {
		input = "https://" + input
	}
	parsed, err := url.Parse(input)
	if err != nil || parsed.Host == "" {
		return nil
	}
	return parsed
}

// matchWatchURL handles youtube.com/watch?v=ID with any extra query
// parameters in any order.
func matchWatchURL(input string) string {
	parsed := parseHostURL(input)
	if parsed == nil || !strings.Contains(parsed.Host, "youtube.com") {
		return ""
	}
	if strings.TrimSuffix(parsed.Path, "/") != "/watch" {
		return ""
	}
	return parsed.Query().Get("v")
}

// matchShortURL handles youtu.be/ID.
func matchShortURL(input string) string {
	parsed := parseHostURL(input)
	if parsed == nil || !strings.Contains(parsed.Host, "youtu.be") {
		return ""
	}
	return strings.Trim(parsed.Path, "/")
}

// matchEmbedURL handles youtube.com/embed/ID.
func matchEmbedURL(input string) string {
	parsed := parseHostURL(input)
	if parsed == nil || !strings.Contains(parsed.Host, "youtube.com") {
		return ""
	}
	id, ok := strings.CutPrefix(parsed.Path, "/embed/")
	if !ok {
		return ""
	}
	return strings.TrimSuffix(id, "/")
}

// matchBareID accepts an 11-character ID passed directly. Validation
// happens in ResolveVideo, so anything that is not a plausible ID still
// fails there.
func matchBareID(input string) string {
	return input
}
