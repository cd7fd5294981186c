// Package detect turns raw vision-model output into container detection
// records. The model is asked for a fenced JSON array but routinely delivers
// it wrapped in prose, truncated mid-object, or both, so [ParseRecords] runs a
// layered recovery pipeline: candidate extraction, a strict parse, structural
// repair, and a final strict parse. Malformed input is a normal, expected
// case. The pipeline never returns an error, only a (possibly empty) slice
// of complete records.
//
// Each call is stateless and idempotent, so ParseRecords is safe to invoke
// concurrently without coordination.
package detect
