// Package utils provides small shared helpers used by the detection
// pipeline's diagnostics and the classify CLI: JSON stringification that is
// safe to drop into log output, and length-capped truncation for candidate
// snapshots that can run to thousands of characters.
package utils
