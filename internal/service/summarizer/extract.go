package summarizer

import (
	"encoding/json"
	"regexp"
	"strings"
)

// PlaceholderTitle is used when no title can be extracted from the
// model response.
const PlaceholderTitle = "Видео YouTube"

// Result is the structured pair extracted from a model response
type Result struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

// An extractor attempts one strategy for pulling a structured result
// out of free-form response text. Strategies are tried in order; the
// first success wins.
type extractor func(response string) (Result, bool)

var extractors = []extractor{
	extractLabeled,
	extractJSON,
}

// ExtractResult parses a title/summary pair from the raw model
// response. When every strategy fails, the entire response becomes the
// summary under a placeholder title, so extraction itself never fails.
func ExtractResult(response string) Result {
	for _, extract := range extractors {
		if result, ok := extract(response); ok {
			return result
		}
	}
	return Result{
		Title:   PlaceholderTitle,
		Summary: strings.TrimSpace(response),
	}
}

var (
	titleRe   = regexp.MustCompile(`(?im)^\s*(?:Название|Title):[ \t]*(.+)$`)
	summaryRe = regexp.MustCompile(`(?is)(?:Изложение|Summary):[ \t]*(.+)$`)
	fenceRe   = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")
)

// extractLabeled reads the line-anchored "Название:"/"Изложение:"
// (or "Title:"/"Summary:") block format requested by the prompt.
func extractLabeled(response string) (Result, bool) {
	titleMatch := titleRe.FindStringSubmatch(response)
	summaryMatch := summaryRe.FindStringSubmatch(response)
	if titleMatch == nil || summaryMatch == nil {
		return Result{}, false
	}
	return Result{
		Title:   strings.TrimSpace(titleMatch[1]),
		Summary: strings.TrimSpace(summaryMatch[1]),
	}, true
}

// extractJSON reads a JSON object with title/summary keys, optionally
// inside a fenced code block.
func extractJSON(response string) (Result, bool) {
	text := response
	if m := fenceRe.FindStringSubmatch(text); m != nil {
		text = m[1]
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return Result{}, false
	}

	var result Result
	if err := json.Unmarshal([]byte(text[start:end+1]), &result); err != nil {
		return Result{}, false
	}
	if result.Title == "" && result.Summary == "" {
		return Result{}, false
	}
	if result.Title == "" {
		result.Title = PlaceholderTitle
	}
	if result.Summary == "" {
		result.Summary = strings.TrimSpace(response)
	}
	return result, true
}
