package youtube

import (
	"regexp"

	apperrors "github.com/vidnotes/vidnotes/internal/errors"
)

// videoIDPatterns covers the URL shapes users paste. The captured
// group is always the 11-character video identifier.
var videoIDPatterns = []*regexp.Regexp{
	// Standard watch URL, with or without extra query params
	regexp.MustCompile(`(?:www\.|m\.)?youtube\.com/watch\?(?:[^#]*&)?v=([A-Za-z0-9_-]{11})`),
	// Short URL
	regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]{11})`),
	// Embed and legacy URLs
	regexp.MustCompile(`youtube\.com/(?:embed|v|shorts|live)/([A-Za-z0-9_-]{11})`),
}

// ExtractVideoID pulls the 11-character video identifier out of a
// user-supplied URL. It fails with INVALID_URL before any network call
// is made.
func ExtractVideoID(url string) (string, error) {
	for _, pattern := range videoIDPatterns {
		if m := pattern.FindStringSubmatch(url); m != nil {
			return m[1], nil
		}
	}
	return "", apperrors.New(apperrors.CodeInvalidURL, "")
}
