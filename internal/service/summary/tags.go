package summary

import (
	"fmt"
	"strings"

	apperrors "github.com/vidnotes/vidnotes/internal/errors"
	"github.com/vidnotes/vidnotes/internal/model"
)

// NormalizeTags trims, deduplicates and validates a tag list. Duplicates
// are compared case-insensitively, keeping the first spelling. Blank
// entries are dropped.
func NormalizeTags(tags []string) ([]string, error) {
	normalized := []string{}
	seen := map[string]bool{}

	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if len([]rune(tag)) > model.MaxTagLength {
			return nil, apperrors.New(apperrors.CodeInvalidArg,
				fmt.Sprintf("tag %q exceeds %d characters", tag, model.MaxTagLength))
		}

		key := strings.ToLower(tag)
		if seen[key] {
			continue
		}
		seen[key] = true
		normalized = append(normalized, tag)
	}

	if len(normalized) > model.MaxTags {
		return nil, apperrors.New(apperrors.CodeInvalidArg,
			fmt.Sprintf("at most %d tags are allowed", model.MaxTags))
	}

	return normalized, nil
}
