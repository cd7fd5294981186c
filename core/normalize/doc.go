// Package normalize prepares captured transcripts for the extraction
// pipeline. Model output saved from a web chat arrives as HTML, where the
// ```json fence the extractor depends on survives only as a <pre><code>
// block; [FromHTML] converts such transcripts back to markdown so the fence
// convention holds again. Plain-text input passes through untouched.
package normalize
