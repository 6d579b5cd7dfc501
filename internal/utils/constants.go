package utils

// EmptyString represents a reusable empty string constant.
const EmptyString = ""

// LoggerInitializationFailedMessageFormat reports a logger that could not be built.
const LoggerInitializationFailedMessageFormat = "failed to initialize logger: %w"

// ApplicationExecutionFailedMessage prefixes the fatal log line of a failed run.
const ApplicationExecutionFailedMessage = "snapshot failed"

// Outcome labels printed at the start of console lines.
const (
	OutcomeAccepted = "OK"
	OutcomeWarning  = "WARN"
)
