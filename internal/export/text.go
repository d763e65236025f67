package export

import (
	"regexp"
	"strings"
)

var (
	headingRe    = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	boldRe       = regexp.MustCompile(`\*\*(.*?)\*\*|__(.*?)__`)
	italicRe     = regexp.MustCompile(`\*(.*?)\*|_(.*?)_`)
	strikeRe     = regexp.MustCompile(`~~(.*?)~~`)
	imageRe      = regexp.MustCompile(`!\[[^\]]*\]\([^)]+\)`)
	linkRe       = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	codeBlockRe  = regexp.MustCompile("(?s)```.*?```")
	inlineCodeRe = regexp.MustCompile("`([^`]+)`")
	hrRe         = regexp.MustCompile(`(?m)^[-*_]{3,}$`)
	bulletRe     = regexp.MustCompile(`(?m)^\s*[-*+]\s+`)
	numberedRe   = regexp.MustCompile(`(?m)^\s*\d+\.\s+`)
	quoteRe      = regexp.MustCompile(`(?m)^>\s*`)
	blankRunRe   = regexp.MustCompile(`\n\s*\n\s*\n`)
	spaceRunRe   = regexp.MustCompile(`[ \t]+`)
)

// PlainText strips Markdown formatting, leaving readable plain text.
// Bullet list markers become the bullet character.
func PlainText(markdown string) string {
	if markdown == "" {
		return ""
	}

	text := markdown
	text = codeBlockRe.ReplaceAllString(text, "")
	text = headingRe.ReplaceAllString(text, "")
	text = boldRe.ReplaceAllString(text, "$1$2")
	text = italicRe.ReplaceAllString(text, "$1$2")
	text = strikeRe.ReplaceAllString(text, "$1")
	text = imageRe.ReplaceAllString(text, "")
	text = linkRe.ReplaceAllString(text, "$1")
	text = inlineCodeRe.ReplaceAllString(text, "$1")
	text = hrRe.ReplaceAllString(text, "")
	text = bulletRe.ReplaceAllString(text, "• ")
	text = numberedRe.ReplaceAllString(text, "")
	text = quoteRe.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "|", " ")
	text = blankRunRe.ReplaceAllString(text, "\n\n")
	text = spaceRunRe.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}
