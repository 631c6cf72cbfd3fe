package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const defaultModel = "gemini-2.5-flash"

var (
	apiKey       string
	modelName    string
	customPrompt string
	outputPath   string
	langFlag     string
	debugMode    bool
)

var debugEnabled bool

// SetDebugMode enables or disables debug logging
func SetDebugMode(enabled bool) {
	debugEnabled = enabled
}

func debugLog(format string, args ...interface{}) {
	if debugEnabled {
		log.Printf("[DEBUG] "+format, args...)
	}
}

var rootCmd = &cobra.Command{
	Use:   "yt-summarize <video-url>",
	Short: "Summarize YouTube videos using the Gemini API",
	Long:  `A command-line tool that sends a YouTube video to Google Gemini and prints or saves the generated summary.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if debugMode {
			SetDebugMode(true)
		}

		// Optional .env file, same lookup the original tool performs
		if err := godotenv.Load(); err != nil {
			debugLog("no .env file loaded: %v", err)
		}

		if err := ensureConfigExists(); err != nil {
			log.Printf("Warning: %v", err)
		}
		settings, err := loadSettings()
		if err != nil {
			log.Fatalf("Failed to load settings: %v", err)
		}

		opts := runOptions{
			input:      args[0],
			apiKey:     resolveAPIKey(apiKey, settings),
			model:      firstNonEmpty(modelName, settings.Model, defaultModel),
			language:   firstNonEmpty(langFlag, settings.Language),
			prompt:     customPrompt,
			outputPath: outputPath,
		}

		if err := run(context.Background(), opts, newGeminiSummarizer); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

// runOptions collects the resolved inputs for one invocation.
type runOptions struct {
	input      string
	apiKey     string
	model      string
	language   string
	prompt     string
	outputPath string
}

// summarizerFactory defers client construction until the request has been
// validated, so invalid input never opens a connection.
type summarizerFactory func(ctx context.Context, apiKey string) (Summarizer, error)

func newGeminiSummarizer(ctx context.Context, apiKey string) (Summarizer, error) {
	return NewGeminiSummarizer(ctx, apiKey)
}

// buildRequest validates the input and assembles the summary request. Both
// failure modes here (bad URL, missing credential) happen before any
// network activity.
func buildRequest(opts runOptions) (SummaryRequest, error) {
	video, err := ResolveVideo(opts.input)
	if err != nil {
		return SummaryRequest{}, err
	}
	if opts.apiKey == "" {
		return SummaryRequest{}, ErrMissingCredential
	}
	return SummaryRequest{
		Video:    video,
		Language: ResolveLanguage(opts.language),
		Prompt:   opts.prompt,
		Model:    opts.model,
	}, nil
}

// run executes the one-shot flow: resolve, summarize, write.
func run(ctx context.Context, opts runOptions, newSummarizer summarizerFactory) error {
	req, err := buildRequest(opts)
	if err != nil {
		return err
	}

	log.Printf("Model: %s | Video: %s | Language: %s", req.Model, req.Video.WatchURL(), req.Language.Name)

	summarizer, err := newSummarizer(ctx, opts.apiKey)
	if err != nil {
		return err
	}

	summary, err := summarizer.Summarize(ctx, req)
	if err != nil {
		return err
	}

	if err := WriteSummary(summary, opts.outputPath, req); err != nil {
		return err
	}
	if opts.outputPath != "" {
		log.Printf("Summary saved to %s", opts.outputPath)
	}
	return nil
}

// resolveAPIKey applies the credential precedence: flag, then environment,
// then settings file. The first present value wins.
func resolveAPIKey(flagValue string, settings *Settings) string {
	for _, v := range []string{flagValue, os.Getenv("GEMINI_API_KEY"), settings.APIKey} {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func init() {
	rootCmd.Flags().StringVar(&apiKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY and settings.yaml)")
	rootCmd.Flags().StringVar(&modelName, "model", "", "Gemini model to use (default "+defaultModel+")")
	rootCmd.Flags().StringVar(&customPrompt, "prompt", "", "Custom summarization prompt")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Save summary to file instead of stdout")
	rootCmd.Flags().StringVarP(&langFlag, "lang", "l", "", "Output language, e.g. Chinese, zh, Spanish (default "+defaultLanguage+")")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
