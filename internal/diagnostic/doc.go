// Package diagnostic collects the non-fatal findings of an interpretation:
// planets missing from the input, input keys that were ignored, yoga rules
// that were skipped or failed.
//
// Nothing recorded here stops a computation. Hard input failures are
// returned as errors by the chart package instead.
package diagnostic
