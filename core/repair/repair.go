package repair

import (
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// Outcome records which textual fixes CloseTruncated applied, so the pipeline
// can surface structured diagnostics instead of narrating to a log.
type Outcome struct {
	// PrefixCut reports that leading text before the first '[' was discarded.
	PrefixCut bool `json:"prefix_cut"`

	// Reclosed reports that the candidate was truncated after its last
	// complete object and re-closed with ']'.
	Reclosed bool `json:"reclosed"`

	// Hopeless reports that the candidate needed a re-close but held no '}'
	// at all, leaving nothing to anchor one on.
	Hopeless bool `json:"hopeless"`
}

// CloseTruncated trims a failing candidate down to its largest syntactically
// closed prefix. Two fixes are attempted in order:
//
//  1. If the trimmed candidate does not start with '[', everything before the
//     first '[' inside it is discarded (prose the extractor's fallback could
//     not exclude).
//  2. If it does not end with ']', it is cut immediately after the last '}'
//     and a single ']' is appended, forming a closed array containing only
//     fully-formed elements. Without any '}' there is nothing to anchor on
//     and the candidate is returned as-is with Outcome.Hopeless set.
//
// CloseTruncated never fabricates field values; it only removes trailing
// incomplete content. The result still has to survive a strict parse; that
// re-attempt belongs to the caller.
func CloseTruncated(candidate string) (string, Outcome) {
	var out Outcome
	s := strings.TrimSpace(candidate)

	if !strings.HasPrefix(s, "[") {
		if start := strings.IndexByte(s, '['); start != -1 {
			s = s[start:]
			out.PrefixCut = true
		}
	}

	if !strings.HasSuffix(s, "]") {
		last := strings.LastIndexByte(s, '}')
		if last == -1 {
			out.Hopeless = true
			return s, out
		}
		s = s[:last+1] + "]"
		out.Reclosed = true
	}

	return s, out
}

// Lenient hands the candidate to the jsonrepair library, which fixes a much
// wider class of damage (single quotes, unquoted keys, missing closers inside
// strings). Unlike [CloseTruncated] it may invent quotes and brackets, so it
// must stay off the default pipeline path and only run when the caller has
// explicitly opted in.
func Lenient(candidate string) (string, error) {
	return jsonrepair.JSONRepair(candidate)
}
