package main

import (
	"errors"
	"fmt"
)

// VideoReference holds the canonical 11-character YouTube video ID.
type VideoReference struct {
	ID string
}

// WatchURL returns the canonical watch URL for the video.
func (v VideoReference) WatchURL() string {
	return "https://www.youtube.com/watch?v=" + v.ID
}

// LanguageSpec holds the canonical display name of the summary language.
type LanguageSpec struct {
	Name string
}

// SummaryRequest carries everything a single summarization call needs.
type SummaryRequest struct {
	Video    VideoReference
	Language LanguageSpec
	Prompt   string // optional custom instruction
	Model    string
}

// InvalidURLError reports input that could not be resolved to a video ID.
type InvalidURLError struct {
	Input string
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("invalid YouTube URL or video ID: %q", e.Input)
}

// APIError reports a failed summarization call.
type APIError struct {
	Model   string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("summarization with %s failed: %s", e.Model, e.Message)
}

// ErrMissingCredential is returned when no API key could be resolved from
// the --api-key flag, the GEMINI_API_KEY environment variable, or the
// settings file.
var ErrMissingCredential = errors.New("API key required: use --api-key, set GEMINI_API_KEY, or add api_key to .yt-summarize/settings.yaml")
