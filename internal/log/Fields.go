package log

// Canonical field names for structured logging
const (
	FieldComponent  = "component"
	FieldFile       = "file"
	FieldExperiment = "experiment"
	FieldAgent      = "agent"
	FieldEnv        = "env"
	FieldErrors     = "errors"
	FieldWarnings   = "warnings"
)
