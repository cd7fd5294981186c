package extract

import (
	"testing"
)

func TestArray_FencedBlock(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		want       string
		wantSource Source
	}{
		{
			name:       "clean fenced array",
			input:      "```json\n[{\"label\":\"a\"}]\n```",
			want:       `[{"label":"a"}]`,
			wantSource: SourceFence,
		},
		{
			name:       "prose before and after the fence",
			input:      "Sure, here it is:\n```json\n[{\"label\":\"a\"}]\n```\nHope this helps!",
			want:       `[{"label":"a"}]`,
			wantSource: SourceFence,
		},
		{
			name:       "multi-line array inside fence",
			input:      "```json\n[\n  {\"label\":\"a\"},\n  {\"label\":\"b\"}\n]\n```",
			want:       "[\n  {\"label\":\"a\"},\n  {\"label\":\"b\"}\n]",
			wantSource: SourceFence,
		},
		{
			name:       "fence markers with surrounding whitespace",
			input:      "  ```json  \n[1,2]\n   ```\t",
			want:       "[1,2]",
			wantSource: SourceFence,
		},
		{
			name:       "repeated opener uses the last one",
			input:      "```json\nnot this\n```json\n[1]\n```",
			want:       "[1]",
			wantSource: SourceFence,
		},
		{
			name:       "empty fenced block",
			input:      "```json\n```",
			want:       "",
			wantSource: SourceFence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, source := Array(tt.input)
			if got != tt.want {
				t.Errorf("Array() = %q, want %q", got, tt.want)
			}
			if source != tt.wantSource {
				t.Errorf("Array() source = %q, want %q", source, tt.wantSource)
			}
		})
	}
}

func TestArray_BracketScan(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		want       string
		wantSource Source
	}{
		{
			name:       "bare balanced array",
			input:      `[{"label":"a"}]`,
			want:       `[{"label":"a"}]`,
			wantSource: SourceBracketScan,
		},
		{
			name:       "prose around a balanced array",
			input:      `The detections are [{"label":"a"}] as requested.`,
			want:       `[{"label":"a"}]`,
			wantSource: SourceBracketScan,
		},
		{
			name:       "nested arrays stay balanced",
			input:      `result: [{"box":[1,2,3,4]}] done`,
			want:       `[{"box":[1,2,3,4]}]`,
			wantSource: SourceBracketScan,
		},
		{
			name:       "truncated array returns the unbalanced tail",
			input:      `Here you go: [{"label":"a"},{"label":"b`,
			want:       `[{"label":"a"},{"label":"b`,
			wantSource: SourceBracketTail,
		},
		{
			name:       "unclosed fence falls back to bracket scan",
			input:      "```json\n[{\"box\":[1,2,3,4]}]",
			want:       `[{"box":[1,2,3,4]}]`,
			wantSource: SourceBracketScan,
		},
		{
			name:       "lowercase-only fence tag is required",
			input:      "```JSON\n[1]\n```",
			want:       "[1]",
			wantSource: SourceBracketScan,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, source := Array(tt.input)
			if got != tt.want {
				t.Errorf("Array() = %q, want %q", got, tt.want)
			}
			if source != tt.wantSource {
				t.Errorf("Array() source = %q, want %q", source, tt.wantSource)
			}
		})
	}
}

func TestArray_NoBracket(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "plain prose",
			input: "Sure! Here is nothing.",
		},
		{
			name:  "empty input",
			input: "",
		},
		{
			name:  "object without array",
			input: `{"label":"a"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, source := Array(tt.input)
			if got != tt.input {
				t.Errorf("Array() = %q, want input unchanged %q", got, tt.input)
			}
			if source != SourceRaw {
				t.Errorf("Array() source = %q, want %q", source, SourceRaw)
			}
		})
	}
}
