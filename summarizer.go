package main

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const defaultInstruction = "Summarize this video. Cover the main topic, the key points in the order they appear, and any conclusions or recommendations."

// Summarizer produces a summary for a request.
type Summarizer interface {
	Summarize(ctx context.Context, req SummaryRequest) (string, error)
}

// GeminiSummarizer sends summarization requests to the Gemini API. The
// video itself is referenced by URL; Gemini fetches the content, so no
// transcript handling happens on this side.
type GeminiSummarizer struct {
	client *genai.Client
}

// NewGeminiSummarizer creates a Gemini-backed summarizer.
func NewGeminiSummarizer(ctx context.Context, apiKey string) (*GeminiSummarizer, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}
	return &GeminiSummarizer{client: client}, nil
}

// Summarize issues one blocking GenerateContent call and returns the
// generated summary text.
func (s *GeminiSummarizer) Summarize(ctx context.Context, req SummaryRequest) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromURI(req.Video.WatchURL(), "video/mp4"),
			genai.NewPartFromText(buildInstruction(req)),
		}, genai.RoleUser),
	}

	debugLog("Gemini request: model=%s video=%s language=%s", req.Model, req.Video.ID, req.Language.Name)
	resp, err := s.client.Models.GenerateContent(ctx, req.Model, contents, nil)
	if err != nil {
		return "", &APIError{Model: req.Model, Message: err.Error()}
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", &APIError{Model: req.Model, Message: "no content in response"}
	}
	return text, nil
}

// buildInstruction assembles the summarization prompt: the custom prompt
// when given, the built-in instruction otherwise, always followed by the
// target language.
func buildInstruction(req SummaryRequest) string {
	instruction := req.Prompt
	if instruction == "" {
		instruction = defaultInstruction
	}
	return fmt.Sprintf("%s\n\nRespond in %s.", instruction, req.Language.Name)
}
