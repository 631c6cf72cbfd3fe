package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"
)

// WriteSummary delivers the summary to stdout, or to outputPath when set.
// File output gets a metadata header; an existing file is overwritten.
func WriteSummary(summary, outputPath string, req SummaryRequest) error {
	if outputPath == "" {
		fmt.Println(summary)
		return nil
	}

	var buf bytes.Buffer
	buf.WriteString("YouTube Video Summary\n")
	fmt.Fprintf(&buf, "URL: %s\n", req.Video.WatchURL())
	fmt.Fprintf(&buf, "Model: %s\n", req.Model)
	fmt.Fprintf(&buf, "Language: %s\n", req.Language.Name)
	fmt.Fprintf(&buf, "\n%s\n\n", strings.Repeat("-", 50))
	buf.WriteString(summary)
	buf.WriteString("\n")

	if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing summary to %s: %w", outputPath, err)
	}
	return nil
}
