package logs

// Span identifies one logical unit of work, usually a single
// evaluate, compile or fuzz run.
type Span string

type spanContextKey struct{}

var SpanKey spanContextKey
