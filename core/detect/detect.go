package detect

import (
	"log/slog"

	jsoniter "github.com/json-iterator/go"

	"github.com/SimonKurono/Container-Emptiness-Classifier/core/extract"
	"github.com/SimonKurono/Container-Emptiness-Classifier/core/repair"
	"github.com/SimonKurono/Container-Emptiness-Classifier/internal/utils"
)

// json is the strict parser for candidate text. The compatible configuration
// keeps encoding/json semantics, so malformed or truncated input fails the
// same way the standard library fails.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Attempt identifies which parse attempt produced the final result of a
// ParseRecords call.
type Attempt string

const (
	// AttemptStrict means the extractor's candidate parsed on the first try.
	AttemptStrict Attempt = "strict"
	// AttemptRepaired means the structurally re-closed candidate parsed.
	AttemptRepaired Attempt = "repaired"
	// AttemptLenient means only the opt-in jsonrepair fallback parsed.
	AttemptLenient Attempt = "lenient"
	// AttemptNone means nothing parsed and the result is empty.
	AttemptNone Attempt = "none"
)

// Diagnostics captures the pipeline's intermediate state for a single
// ParseRecords call: the candidate and where it came from, which repair fixes
// fired, and which attempt (if any) produced the result. Pass it in with
// [WithDiagnostics]; it replaces the print-as-you-go narration of earlier
// incarnations of this pipeline.
type Diagnostics struct {
	// Candidate is the extractor's output before any repair.
	Candidate string `json:"candidate"`

	// Source is the extraction strategy that produced Candidate.
	Source extract.Source `json:"source"`

	// Repair records which textual fixes fired. Zero when the strict parse
	// succeeded outright.
	Repair repair.Outcome `json:"repair"`

	// Repaired is the candidate after structural repair, empty when no
	// repair ran.
	Repaired string `json:"repaired,omitempty"`

	// Attempt tells which parse attempt produced the final result.
	Attempt Attempt `json:"attempt"`

	// ParseErr is the strict-parse failure that triggered repair, empty when
	// the first parse succeeded.
	ParseErr string `json:"parse_err,omitempty"`
}

// Options collects the optional knobs of ParseRecords. Construct it through
// the With* functional options.
type Options struct {
	diagnostics *Diagnostics
	lenient     bool
	logger      *slog.Logger
}

// Option customises a single ParseRecords call.
type Option func(*Options)

// WithDiagnostics fills d with the pipeline's intermediate state as the call
// progresses. The pointed-to value is overwritten.
func WithDiagnostics(d *Diagnostics) Option {
	return func(o *Options) {
		o.diagnostics = d
	}
}

// WithLenient enables the jsonrepair fallback after structural repair fails.
// Lenient repair may invent quotes and closers, so a record recovered this
// way can contain a fabricated tail value; the default path never does this.
func WithLenient() Option {
	return func(o *Options) {
		o.lenient = true
	}
}

// WithLogger routes debug-level progress to the given logger. Without it the
// pipeline stays silent.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// ParseRecords recovers the best-effort sequence of records from raw model
// output. The candidate isolated by [extract.Array] is parsed strictly; on
// failure it is re-closed by [repair.CloseTruncated] and parsed again. The
// result is always a non-nil slice in source order: zero records when
// nothing is recoverable, never an error. Upstream generation is inherently
// unreliable, so malformed input is handled as an expected case rather than
// an error condition.
func ParseRecords(raw string, opts ...Option) []Record {
	o := Options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}
	if o.diagnostics != nil {
		*o.diagnostics = Diagnostics{}
	}

	candidate, source := extract.Array(raw)
	if o.diagnostics != nil {
		o.diagnostics.Candidate = candidate
		o.diagnostics.Source = source
	}
	o.logger.Debug("candidate isolated",
		slog.String("source", string(source)),
		slog.String("candidate", utils.TruncateStringDefault(candidate)))

	records, parseErr := parseArray(candidate)
	if parseErr == nil {
		if o.diagnostics != nil {
			o.diagnostics.Attempt = AttemptStrict
		}
		return records
	}
	if o.diagnostics != nil {
		o.diagnostics.ParseErr = parseErr.Error()
	}

	repaired, outcome := repair.CloseTruncated(candidate)
	if o.diagnostics != nil {
		o.diagnostics.Repair = outcome
		o.diagnostics.Repaired = repaired
	}
	if !outcome.Hopeless {
		if records, err := parseArray(repaired); err == nil {
			if o.diagnostics != nil {
				o.diagnostics.Attempt = AttemptRepaired
			}
			o.logger.Debug("recovered truncated array",
				slog.Int("records", len(records)))
			return records
		}
	}

	// Lenient repair works on the original candidate, not the re-closed one:
	// the structural cut may already have discarded the content the library
	// could have saved.
	if o.lenient {
		if fixed, err := repair.Lenient(candidate); err == nil {
			if records, err := parseArray(fixed); err == nil {
				if o.diagnostics != nil {
					o.diagnostics.Attempt = AttemptLenient
				}
				o.logger.Debug("recovered via lenient repair",
					slog.Int("records", len(records)))
				return records
			}
		}
	}

	if o.diagnostics != nil {
		o.diagnostics.Attempt = AttemptNone
	}
	o.logger.Debug("no recoverable records",
		slog.String("parse_err", parseErr.Error()))
	return []Record{}
}

// parseArray is the strict parse: a JSON array of objects, elements mapped to
// records verbatim, order preserved. A JSON null decodes without error, so it
// is normalised to an empty slice to keep the non-nil guarantee.
func parseArray(candidate string) ([]Record, error) {
	var records []Record
	if err := json.Unmarshal([]byte(candidate), &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []Record{}
	}
	return records, nil
}
