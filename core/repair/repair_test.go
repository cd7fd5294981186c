package repair

import (
	"encoding/json"
	"testing"
)

func TestCloseTruncated(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        string
		wantOutcome Outcome
	}{
		{
			name:        "already valid array untouched",
			input:       `[{"label":"a"}]`,
			want:        `[{"label":"a"}]`,
			wantOutcome: Outcome{},
		},
		{
			name:        "truncated mid-object recloses after last complete element",
			input:       `[{"label":"a"},{"label":"b`,
			want:        `[{"label":"a"}]`,
			wantOutcome: Outcome{Reclosed: true},
		},
		{
			name:        "truncated between elements",
			input:       `[{"label":"a"},{"label":"b"},`,
			want:        `[{"label":"a"},{"label":"b"}]`,
			wantOutcome: Outcome{Reclosed: true},
		},
		{
			name:        "leading prose discarded",
			input:       `the array: [{"label":"a"}]`,
			want:        `[{"label":"a"}]`,
			wantOutcome: Outcome{PrefixCut: true},
		},
		{
			name:        "leading prose and truncation combined",
			input:       `output [{"label":"a"},{"label":"b`,
			want:        `[{"label":"a"}]`,
			wantOutcome: Outcome{PrefixCut: true, Reclosed: true},
		},
		{
			name:        "surrounding whitespace trimmed first",
			input:       "  [{\"label\":\"a\"}]\n",
			want:        `[{"label":"a"}]`,
			wantOutcome: Outcome{},
		},
		{
			name:        "no closing brace anywhere is hopeless",
			input:       `[{"label":"a`,
			want:        `[{"label":"a`,
			wantOutcome: Outcome{Hopeless: true},
		},
		{
			name:        "bare opener is hopeless",
			input:       `[`,
			want:        `[`,
			wantOutcome: Outcome{Hopeless: true},
		},
		{
			name:        "prose without any bracket left alone",
			input:       `no json here`,
			want:        `no json here`,
			wantOutcome: Outcome{Hopeless: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, outcome := CloseTruncated(tt.input)
			if got != tt.want {
				t.Errorf("CloseTruncated() = %q, want %q", got, tt.want)
			}
			if outcome != tt.wantOutcome {
				t.Errorf("CloseTruncated() outcome = %+v, want %+v", outcome, tt.wantOutcome)
			}
		})
	}
}

func TestCloseTruncated_NeverFabricatesElements(t *testing.T) {
	// Reclosing must yield at most the complete leading elements, never a
	// best-guess partial one.
	got, outcome := CloseTruncated(`[{"label":"a","fill_percent":50},{"label":"b","fill_per`)
	if !outcome.Reclosed {
		t.Fatalf("CloseTruncated() outcome = %+v, want Reclosed", outcome)
	}

	var elements []map[string]any
	if err := json.Unmarshal([]byte(got), &elements); err != nil {
		t.Fatalf("reclosed candidate does not parse: %v", err)
	}
	if len(elements) != 1 {
		t.Fatalf("got %d elements, want 1", len(elements))
	}
	if elements[0]["label"] != "a" {
		t.Errorf("surviving element label = %v, want %q", elements[0]["label"], "a")
	}
}

func TestLenient(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "single quotes repaired",
			input:   `[{'label': 'a'}]`,
			wantErr: false,
		},
		{
			name:    "unquoted keys repaired",
			input:   `[{label: "a"}]`,
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Lenient(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Lenient() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			var elements []map[string]any
			if err := json.Unmarshal([]byte(got), &elements); err != nil {
				t.Fatalf("repaired candidate does not parse: %v", err)
			}
			if len(elements) != 1 || elements[0]["label"] != "a" {
				t.Errorf("repaired candidate = %q, want one element with label %q", got, "a")
			}
		})
	}
}
