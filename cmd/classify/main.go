// Command classify runs the detection recovery pipeline over a captured
// model response and writes a JSON report.
//
// The raw response is read from -in (or stdin), optionally normalised from an
// HTML transcript, parsed into records, validated, resolved to pixel
// coordinates, and written to -out (or stdout). No network call is made: the
// upstream generation step is the caller's concern, this tool only consumes
// its output.
//
// A .env file in the working directory is loaded at startup; CLASSIFY_AXIS
// and CLASSIFY_SCALE provide defaults for the corresponding flags.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/SimonKurono/Container-Emptiness-Classifier/core/detect"
	"github.com/SimonKurono/Container-Emptiness-Classifier/core/normalize"
	"github.com/SimonKurono/Container-Emptiness-Classifier/core/report"
	"github.com/SimonKurono/Container-Emptiness-Classifier/internal/utils"
)

func main() {
	// Missing .env is fine; the flags have usable defaults.
	_ = godotenv.Load()

	var (
		in      = flag.String("in", "", "input file with the raw model response (default: stdin)")
		out     = flag.String("out", "", "output file for the JSON report (default: stdout)")
		axis    = flag.String("axis", envOr("CLASSIFY_AXIS", string(report.BoxYXYX)), "box axis order: yxyx or xyxy")
		scale   = flag.Float64("scale", envFloatOr("CLASSIFY_SCALE", report.DefaultScale), "normalised coordinate range of the boxes")
		width   = flag.Int("width", 0, "target image width in pixels (default: scale)")
		height  = flag.Int("height", 0, "target image height in pixels (default: scale)")
		html    = flag.Bool("html", false, "force HTML transcript normalisation (auto-detected otherwise)")
		lenient = flag.Bool("lenient", false, "enable lenient JSON repair when structural repair fails")
		diag    = flag.Bool("diag", false, "print pipeline diagnostics to stderr")
		pretty  = flag.Bool("pretty", true, "indent the JSON report")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	order := report.AxisOrder(*axis)
	if order != report.BoxYXYX && order != report.BoxXYXY {
		fmt.Fprintf(os.Stderr, "unknown axis order %q (want %s or %s)\n", *axis, report.BoxYXYX, report.BoxXYXY)
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := config{
		in:      *in,
		out:     *out,
		html:    *html,
		lenient: *lenient,
		diag:    *diag,
		pretty:  *pretty,
		opts: report.Options{
			Axis:   order,
			Scale:  *scale,
			Width:  *width,
			Height: *height,
		},
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("classify failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

type config struct {
	in, out string
	html    bool
	lenient bool
	diag    bool
	pretty  bool
	opts    report.Options
}

func run(cfg config, logger *slog.Logger) error {
	raw, err := readInput(cfg.in)
	if err != nil {
		return err
	}

	if cfg.html {
		raw, err = normalize.FromHTML(raw)
		if err != nil {
			return err
		}
	} else {
		raw = normalize.Transcript(raw)
	}

	var diagnostics detect.Diagnostics
	parseOpts := []detect.Option{
		detect.WithDiagnostics(&diagnostics),
		detect.WithLogger(logger),
	}
	if cfg.lenient {
		parseOpts = append(parseOpts, detect.WithLenient())
	}

	records := detect.ParseRecords(raw, parseOpts...)
	logger.Info("pipeline finished",
		slog.Int("records", len(records)),
		slog.String("source", string(diagnostics.Source)),
		slog.String("attempt", string(diagnostics.Attempt)))

	if cfg.diag {
		fmt.Fprintln(os.Stderr, utils.JSONToString(diagnostics, true))
	}

	rep := report.Build(records, cfg.opts)
	if rep.Skipped > 0 {
		logger.Warn("records skipped by validation", slog.Int("skipped", rep.Skipped))
	}

	return writeOutput(cfg.out, rep, cfg.pretty)
}

func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	return string(data), nil
}

func writeOutput(path string, rep report.Report, pretty bool) error {
	if path == "" {
		return rep.WriteJSON(os.Stdout, pretty)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	return rep.WriteJSON(f, pretty)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envFloatOr(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
