package logging

import "io"

// Config controls how component loggers are built. The zero value logs at info
// level with the default text format and the "auto" stderr policy.
type Config struct {
	// Level is the minimum log level to output (e.g., "debug", "info", "warn", "error").
	Level string

	// Format configures the appearance of the log output.
	Format FormatConfig

	// Output, when set, receives all log output and bypasses the stderr policy.
	Output io.Writer
}

// FormatConfig controls the log output format.
type FormatConfig struct {
	// Preset is "default" (rich text) or "json".
	Preset string
	// DisableTimestamp disables the timestamp from the text format.
	DisableTimestamp bool
	// DisableComponent disables the component name from the text format.
	DisableComponent bool
	// StructuredToStderr controls when structured logs are sent to stderr.
	// Can be "auto" (default), "always", or "never".
	StructuredToStderr string
}
