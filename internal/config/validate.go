package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error with context.
type ValidationError struct {
	Field   string
	Message string
	Hint    string
}

func (e ValidationError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s: %s (hint: %s)", e.Field, e.Message, e.Hint)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Field   string
	Message string
	Hint    string
}

// ValidationResult contains the results of configuration validation.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationWarning
}

// HasErrors returns true if there are any validation errors.
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// Error returns a combined error message if there are validation errors.
func (r *ValidationResult) Error() string {
	if !r.HasErrors() {
		return ""
	}
	var msgs []string
	for _, e := range r.Errors {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the configuration for errors and returns validation
// results. It returns both errors (fatal) and warnings (non-fatal).
func (c *Config) Validate() ValidationResult {
	var result ValidationResult

	switch c.Output.Format {
	case "text", "json":
	default:
		result.Errors = append(result.Errors, ValidationError{
			Field:   "output.format",
			Message: fmt.Sprintf("unsupported format %q", c.Output.Format),
			Hint:    "use text or json",
		})
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		result.Errors = append(result.Errors, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("unsupported level %q", c.Logging.Level),
			Hint:    "use debug, info, warn, or error",
		})
	}

	switch c.Logging.Format {
	case "text", "json":
	default:
		result.Errors = append(result.Errors, ValidationError{
			Field:   "logging.format",
			Message: fmt.Sprintf("unsupported format %q", c.Logging.Format),
			Hint:    "use text or json",
		})
	}

	if c.Inflect.RulesFile != "" && !fileExists(c.Inflect.RulesFile) {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "inflect.rules_file",
			Message: fmt.Sprintf("rules file %q not found", c.Inflect.RulesFile),
			Hint:    "check the path or remove the option",
		})
	}

	if c.Inflect.Singular && c.Inflect.Count != 2 {
		result.Warnings = append(result.Warnings, ValidationWarning{
			Field:   "inflect.count",
			Message: "count is ignored when singular mode is set",
			Hint:    "drop one of the two options",
		})
	}

	return result
}
