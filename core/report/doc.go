// Package report is the consuming layer behind the detection pipeline: it
// resolves each record's opaque bounding box into pixel coordinates under an
// explicitly chosen axis convention, applies the semantic range checks the
// core deliberately skips, and assembles a JSON report for the downstream
// rendering or export step. Records that fail validation are skipped and
// counted, never fatal.
package report
