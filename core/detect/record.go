package detect

// Record is one recovered detection: a container the vision model located,
// how full it judged the container to be, and how sure it was. Field values
// are copied verbatim from the source JSON; the pipeline enforces shape only.
// Range and geometry checks belong to the consuming report layer.
type Record struct {
	// Box is the bounding box as an opaque ordered sequence of four
	// normalized numbers. Prompt variants in the wild disagree on the axis
	// order ([y0,x0,y1,x1] vs [x0,y0,x1,y1]); the pipeline does not guess,
	// the consuming layer must pick a convention explicitly.
	Box []float64 `json:"box"`

	Label string `json:"label"`

	// FillPercent is intended to be 0-100, not enforced here.
	FillPercent int `json:"fill_percent"`

	IsLow bool `json:"is_low"`

	// Confidence is intended to be 0.0-1.0, not enforced here.
	Confidence float64 `json:"confidence"`
}
