package main

import "strings"

// defaultLanguage is used when no --lang flag is given and the settings
// file does not name one.
const defaultLanguage = "English"

// languageAliases maps lower-cased language tokens to the display name
// used in the summarization instruction.
var languageAliases = map[string]string{
	"zh":       "Chinese",
	"cn":       "Chinese",
	"chinese":  "Chinese",
	"en":       "English",
	"english":  "English",
	"es":       "Spanish",
	"spanish":  "Spanish",
	"fr":       "French",
	"french":   "French",
	"de":       "German",
	"german":   "German",
	"ja":       "Japanese",
	"japanese": "Japanese",
	"ko":       "Korean",
	"korean":   "Korean",
}

// ResolveLanguage maps a language token (code, alias, or name) to its
// canonical display name. Unknown tokens pass through trimmed but
// otherwise unchanged, so the model can still be asked for languages
// outside the table. The empty token yields the default language.
func ResolveLanguage(token string) LanguageSpec {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return LanguageSpec{Name: defaultLanguage}
	}
	if name, ok := languageAliases[strings.ToLower(trimmed)]; ok {
		return LanguageSpec{Name: name}
	}
	return LanguageSpec{Name: trimmed}
}
