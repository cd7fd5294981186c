// Package repair closes off truncated JSON array candidates. Upstream
// generation regularly hits its output-length limit mid-object, leaving an
// array with a trailing partial element and no closer. [CloseTruncated]
// applies cheap textual fixes that only ever discard incomplete content;
// [Lenient] delegates to the jsonrepair library for the harder cases where a
// caller has opted into fixes that may invent structure.
package repair
