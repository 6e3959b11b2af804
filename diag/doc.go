// Package diag provides the pluggable diagnostic sink consumed by EAX's
// shape-normalization warnings (spec.md section 9): "emit through a
// pluggable log sink accepting a severity and message; default sink is a
// no-op."
//
// The core is single-threaded and performs no I/O of its own (spec.md
// section 5); diag only defines the narrow vocabulary callers can hook
// into, plus a default no-op and a stdlib log.Logger-backed sink for
// callers who want one without pulling in a structured-logging
// dependency for a single recoverable warning per invocation.
package diag
