package diag

import "log"

// Severity classifies a diagnostic notification.
type Severity int

const (
	// Info reports a non-actionable observation.
	Info Severity = iota
	// Warning reports a recoverable condition the caller may want to
	// surface (e.g. EAX's shape-normalization conversion).
	Warning
	// Error reports a condition that degraded the result but did not
	// abort the operation.
	Error
)

// String renders the severity for log messages.
func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Sink receives diagnostic notifications. The core calls Log at most once
// per recoverable condition per invocation (spec.md section 7: "at-most-one
// diagnostic notification per invocation").
type Sink interface {
	Log(severity Severity, message string)
}

// NoopSink discards every notification. The zero value is ready to use.
type NoopSink struct{}

// Log implements Sink by doing nothing.
func (NoopSink) Log(Severity, string) {}

// compile-time assertions.
var (
	_ Sink = NoopSink{}
	_ Sink = (*StdSink)(nil)
)

// StdSink forwards notifications to a stdlib *log.Logger. Callers who want
// normalization warnings on stderr without adopting a structured-logging
// dependency can use this; everyone else gets NoopSink by default.
type StdSink struct {
	Logger *log.Logger
}

// Log writes "<severity>: <message>" through the wrapped logger, falling
// back to log.Default() if none was supplied.
func (s *StdSink) Log(severity Severity, message string) {
	l := s.Logger
	if l == nil {
		l = log.Default()
	}
	l.Printf("%s: %s", severity, message)
}
