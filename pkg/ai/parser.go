package ai

import (
	"regexp"
	"strings"
)

var (
	objectPattern = regexp.MustCompile(`(?s)\{.*\}`)
	arrayPattern  = regexp.MustCompile(`(?s)\[.*\]`)
)

// StripFences removes a markdown code fence wrapping the model output.
func StripFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	return strings.TrimSpace(text)
}

// ExtractJSONObject pulls the outermost JSON object out of free-form model
// output. Returns the empty string when no object is present.
func ExtractJSONObject(text string) string {
	return objectPattern.FindString(StripFences(text))
}

// ExtractJSONArray pulls the outermost JSON array out of free-form model
// output. Returns the empty string when no array is present.
func ExtractJSONArray(text string) string {
	return arrayPattern.FindString(StripFences(text))
}
