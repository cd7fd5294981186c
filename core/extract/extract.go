package extract

import "strings"

// Source identifies which extraction strategy produced a candidate. It feeds
// the pipeline diagnostics so callers can see how the candidate was found
// without the package logging anything itself.
type Source string

const (
	// SourceFence means the candidate came from a complete ```json fenced block.
	SourceFence Source = "fence"
	// SourceBracketScan means the candidate is a balanced bracket slice of the raw text.
	SourceBracketScan Source = "bracket_scan"
	// SourceBracketTail means the raw text ended before the array closed; the
	// candidate runs from the first '[' to the end of input and is unbalanced.
	SourceBracketTail Source = "bracket_tail"
	// SourceRaw means no '[' exists anywhere; the raw text is returned unchanged.
	SourceRaw Source = "raw"
)

const (
	fenceOpen  = "```json"
	fenceClose = "```"
)

// Array returns the substring of raw most likely to delimit a JSON array,
// together with the strategy that found it.
//
// A complete fenced block wins. Otherwise the text is scanned from the first
// '[' with a signed depth counter: if the depth returns to zero the balanced
// slice (closer included) is the candidate, and if the input ends mid-array
// the unbalanced tail is returned for the repairer to deal with. When no '['
// exists at all the raw text comes back unchanged, which guarantees a parse
// failure downstream.
//
// Array is pure and never fails; the returned candidate may still be malformed.
func Array(raw string) (string, Source) {
	if candidate, ok := fencedBlock(raw); ok {
		return candidate, SourceFence
	}

	start := strings.IndexByte(raw, '[')
	if start == -1 {
		return raw, SourceRaw
	}

	depth := 0
	for i := start; i < len(raw); i++ {
		switch raw[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return raw[start : i+1], SourceBracketScan
			}
		}
	}

	return raw[start:], SourceBracketTail
}

// fencedBlock scans line by line for an opener line whose trimmed content is
// exactly "```json" and a later closer line whose trimmed content is exactly
// "```". Both markers are required; the candidate is the trimmed text strictly
// between them. A repeated opener before any closer moves the block start, so
// the last opener wins.
func fencedBlock(raw string) (string, bool) {
	lines := strings.Split(raw, "\n")

	start := -1
	for i, line := range lines {
		switch strings.TrimSpace(line) {
		case fenceOpen:
			start = i + 1
		case fenceClose:
			if start != -1 {
				return strings.TrimSpace(strings.Join(lines[start:i], "\n")), true
			}
		}
	}

	return "", false
}
