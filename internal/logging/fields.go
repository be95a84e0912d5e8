package logging

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldRunID is the standardized structured logging key for per-invocation identifiers.
	FieldRunID = "run_id"
	// FieldPath is the standardized structured logging key for file paths.
	FieldPath = "path"
	// FieldLine is the standardized structured logging key for 1-based input line numbers.
	FieldLine = "line"
	// FieldEventType classifies a log line for filtering.
	FieldEventType = "event_type"
)
