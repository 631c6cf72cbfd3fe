package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testRequest() SummaryRequest {
	return SummaryRequest{
		Video:    VideoReference{ID: "dQw4w9WgXcQ"},
		Language: LanguageSpec{Name: "English"},
		Model:    "gemini-2.5-flash",
	}
}

func TestWriteSummaryToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.txt")

	err := WriteSummary("A short summary.", path, testRequest())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}
	content := string(data)

	for _, want := range []string{
		"YouTube Video Summary",
		"URL: https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"Model: gemini-2.5-flash",
		"Language: English",
		strings.Repeat("-", 50),
		"A short summary.",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, content)
		}
	}
}

func TestWriteSummaryOverwritesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.txt")
	if err := os.WriteFile(path, []byte("stale content"), 0644); err != nil {
		t.Fatalf("Failed to seed file: %v", err)
	}

	if err := WriteSummary("Fresh summary.", path, testRequest()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "stale content") {
		t.Error("Expected existing file content to be replaced")
	}
	if !strings.Contains(string(data), "Fresh summary.") {
		t.Error("Expected new summary in file")
	}
}

func TestWriteSummaryBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "summary.txt")

	err := WriteSummary("A summary.", path, testRequest())
	if err == nil {
		t.Fatal("Expected an error for unwritable path, got nil")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("Expected error to name the target path, got %q", err.Error())
	}
}

func TestWriteSummaryStdout(t *testing.T) {
	// Empty path means stdout; must not fail.
	if err := WriteSummary("A summary.", "", testRequest()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
}
