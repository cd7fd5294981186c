package report

import (
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"github.com/SimonKurono/Container-Emptiness-Classifier/core/detect"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// validate holds the shared validator instance; it is safe for concurrent use.
var validate = validator.New()

// AxisOrder selects which bounding-box axis convention the records follow.
// Upstream prompt variants disagree, so the caller picks one explicitly
// instead of the pipeline guessing.
type AxisOrder string

const (
	// BoxYXYX reads a box as [y0, x0, y1, x1], the upstream prompt's stated
	// convention.
	BoxYXYX AxisOrder = "yxyx"
	// BoxXYXY reads a box as [x0, y0, x1, y1].
	BoxXYXY AxisOrder = "xyxy"
)

// DefaultScale is the coordinate range the upstream prompt normalises boxes
// to (integers in 0-1000).
const DefaultScale = 1000.0

// Rect is a bounding box resolved to integer pixel corners with X0 < X1 and
// Y0 < Y1.
type Rect struct {
	X0 int `json:"x0"`
	Y0 int `json:"y0"`
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
}

// Item is one validated, geometry-resolved detection, ready for the
// downstream rendering or export step.
type Item struct {
	Label       string  `json:"label" validate:"required"`
	Rect        Rect    `json:"rect"`
	FillPercent int     `json:"fill_percent" validate:"gte=0,lte=100"`
	IsLow       bool    `json:"is_low"`
	Confidence  float64 `json:"confidence" validate:"gte=0,lte=1"`
}

// Report is the export form of a detection run. Skipped counts records that
// were dropped for a degenerate box or out-of-range field values.
type Report struct {
	Items   []Item `json:"items"`
	Skipped int    `json:"skipped"`
}

// Options configures how records are resolved into report items. Zero values
// pick the documented defaults.
type Options struct {
	// Axis is the box axis convention. Default: [BoxYXYX].
	Axis AxisOrder

	// Scale is the normalised coordinate range of the boxes.
	// Default: [DefaultScale].
	Scale float64

	// Width and Height are the target image dimensions in pixels. When zero,
	// Scale is used, which leaves coordinates in the normalised range.
	Width  int
	Height int
}

func (o Options) withDefaults() Options {
	if o.Axis == "" {
		o.Axis = BoxYXYX
	}
	if o.Scale <= 0 {
		o.Scale = DefaultScale
	}
	if o.Width <= 0 {
		o.Width = int(o.Scale)
	}
	if o.Height <= 0 {
		o.Height = int(o.Scale)
	}
	return o
}

// Build resolves and validates records into a Report. Records with a
// malformed box, a degenerate rect, or field values outside their intended
// ranges are skipped and counted; a bad record never fails the whole report.
func Build(records []detect.Record, opts Options) Report {
	opts = opts.withDefaults()

	rep := Report{Items: []Item{}}
	for _, rec := range records {
		item, err := buildItem(rec, opts)
		if err != nil {
			rep.Skipped++
			continue
		}
		rep.Items = append(rep.Items, item)
	}
	return rep
}

// WriteJSON serialises the report to w, pretty-printed with two-space
// indentation when pretty is true.
func (r Report) WriteJSON(w io.Writer, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// ResolveRect converts a record's opaque box into pixel corners under the
// given options. It errors on a box that does not hold exactly four numbers,
// an unknown axis order, or a degenerate result (x0 >= x1 or y0 >= y1).
func ResolveRect(box []float64, opts Options) (Rect, error) {
	opts = opts.withDefaults()

	if len(box) != 4 {
		return Rect{}, fmt.Errorf("box must hold exactly 4 numbers, got %d", len(box))
	}

	var x0, y0, x1, y1 float64
	switch opts.Axis {
	case BoxYXYX:
		y0, x0, y1, x1 = box[0], box[1], box[2], box[3]
	case BoxXYXY:
		x0, y0, x1, y1 = box[0], box[1], box[2], box[3]
	default:
		return Rect{}, fmt.Errorf("unknown axis order %q", opts.Axis)
	}

	rect := Rect{
		X0: int(x0 / opts.Scale * float64(opts.Width)),
		Y0: int(y0 / opts.Scale * float64(opts.Height)),
		X1: int(x1 / opts.Scale * float64(opts.Width)),
		Y1: int(y1 / opts.Scale * float64(opts.Height)),
	}
	if rect.X0 >= rect.X1 || rect.Y0 >= rect.Y1 {
		return Rect{}, fmt.Errorf("degenerate box %v", box)
	}
	return rect, nil
}

func buildItem(rec detect.Record, opts Options) (Item, error) {
	rect, err := ResolveRect(rec.Box, opts)
	if err != nil {
		return Item{}, err
	}

	item := Item{
		Label:       rec.Label,
		Rect:        rect,
		FillPercent: rec.FillPercent,
		IsLow:       rec.IsLow,
		Confidence:  rec.Confidence,
	}
	if err := validate.Struct(item); err != nil {
		return Item{}, fmt.Errorf("record %q failed validation: %w", rec.Label, err)
	}
	return item, nil
}
