package normalize

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// LooksLikeHTML reports whether the blob is plausibly an HTML document rather
// than plain model output. It is a cheap prefix heuristic, not a parser: a
// leading tag is enough, since genuine model output starts with prose, a
// fence, or the array itself.
func LooksLikeHTML(s string) bool {
	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "<") {
		return false
	}
	end := strings.IndexByte(t, '>')
	return end > 1
}

// FromHTML converts an HTML-captured transcript to markdown. Code blocks with
// a declared language come back as fenced ```json regions, which restores the
// exact convention the extractor prefers. Content outside code blocks turns
// into ordinary prose the extractor already knows how to skip.
func FromHTML(s string) (string, error) {
	markdown, err := htmltomarkdown.ConvertString(s)
	if err != nil {
		return "", fmt.Errorf("failed to convert HTML transcript to markdown: %w", err)
	}
	return markdown, nil
}

// Transcript normalises a blob of unknown provenance: HTML is converted to
// markdown, everything else passes through unchanged. Conversion failures
// fall back to the original text: the extraction pipeline would rather scan
// raw HTML than lose the input entirely.
func Transcript(s string) string {
	if !LooksLikeHTML(s) {
		return s
	}
	markdown, err := FromHTML(s)
	if err != nil {
		return s
	}
	return markdown
}
