// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Error types, display and exit codes for CLI commands.
//
// Handlers return errors and never exit; main maps the returned error to
// an exit code with GetExitCode after DisplayError has shown it.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fmc2csv/fmc2csv/internal/config"
	"github.com/fmc2csv/fmc2csv/internal/export"
	"github.com/fmc2csv/fmc2csv/internal/fmc"
)

// =============================================================================
// EXIT CODES
// =============================================================================

const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitGeneralError indicates a general/unknown error
	ExitGeneralError = 1
	// ExitUsageError indicates invalid command usage or arguments
	ExitUsageError = 2
	// ExitConfigError indicates configuration file or settings error
	ExitConfigError = 3
	// ExitNotFoundError indicates a resource was not found, such as an
	// export document that was never produced
	ExitNotFoundError = 7
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// CommandError represents a CLI command error with context.
type CommandError struct {
	Command string // Command that failed (e.g., "convert", "config")
	Action  string // Action being performed (e.g., "rules", "init")
	Reason  string // Human-readable reason
	Err     error  // Underlying error (if any)
}

func (e *CommandError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s failed: %s: %v", e.Command, e.Action, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s %s failed: %s", e.Command, e.Action, e.Reason)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ValidationError represents a validation failure for user input.
type ValidationError struct {
	Field   string // Field that failed validation
	Value   string // Value that was provided
	Reason  string // Why validation failed
	Example string // Example of valid value (optional)
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	if e.Value != "" {
		msg += fmt.Sprintf(" (got: %s)", e.Value)
	}
	if e.Example != "" {
		msg += fmt.Sprintf("\nExample: %s", e.Example)
	}
	return msg
}

// NotFoundError represents a resource not found error.
type NotFoundError struct {
	Resource string // Type of resource (e.g., "export document", "config file")
	ID       string // Identifier that was not found
	Hint     string // What the user can do about it (optional)
	Err      error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// ConfigError represents a configuration that could not be loaded or is invalid.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("configuration %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("configuration: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// =============================================================================
// ERROR CONSTRUCTION HELPERS
// =============================================================================

// NewCommandError creates a new command error.
func NewCommandError(command, action, reason string, err error) error {
	return &CommandError{
		Command: command,
		Action:  action,
		Reason:  reason,
		Err:     err,
	}
}

// NewValidationError creates a new validation error.
func NewValidationError(field, value, reason string) error {
	return &ValidationError{
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}

// NewValidationErrorWithExample creates a validation error with an example.
func NewValidationErrorWithExample(field, value, reason, example string) error {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Reason:  reason,
		Example: example,
	}
}

// ErrMissingArgument creates an error for missing required arguments.
func ErrMissingArgument(argName, usage string) error {
	return NewValidationErrorWithExample(argName, "", "required argument missing", usage)
}

// ErrUnsupportedFormat creates an error for unsupported formats.
func ErrUnsupportedFormat(format string, supportedFormats []string) error {
	return NewValidationErrorWithExample(
		"format",
		format,
		"unsupported format",
		fmt.Sprintf("supported formats: %v", supportedFormats),
	)
}

// missingExportError turns a missing export document into a NotFoundError
// that tells the operator to run the export step first.
func missingExportError(err error) error {
	var readErr *fmc.DocumentReadError
	if !errors.As(err, &readErr) || !readErr.Missing() {
		return err
	}
	return &NotFoundError{
		Resource: "export document",
		ID:       readErr.Path,
		Hint:     "Run the FMC export step first, or point --input/--dir at the exported JSON.",
		Err:      err,
	}
}

// =============================================================================
// ERROR DISPLAY
// =============================================================================

// DisplayError displays an error in a consistent format.
//
// In JSON mode, outputs a structured JSON error on stdout.
// In normal mode, displays a formatted message on stderr.
func DisplayError(err error, jsonMode bool) {
	if err == nil {
		return
	}

	if jsonMode {
		DisplayErrorJSON(err)
		return
	}

	fmt.Fprintf(stderr, "%s %s\n", ErrorStyle.Render("[ERROR]"), err.Error())

	var notFound *NotFoundError
	if errors.As(err, &notFound) && notFound.Hint != "" {
		fmt.Fprintf(stderr, "  %s\n", DimStyle.Render(notFound.Hint))
	}
	var verrs config.ValidateErrors
	if errors.As(err, &verrs) {
		for _, v := range verrs {
			fmt.Fprintf(stderr, "  %s %s\n", WarningStyle.Render(v.Field+":"), v.Message)
		}
	}
}

// DisplayErrorJSON outputs an error as JSON.
func DisplayErrorJSON(err error) {
	output := map[string]interface{}{
		"error":   err.Error(),
		"success": false,
	}

	var (
		cmdErr      *CommandError
		validErr    *ValidationError
		notFoundErr *NotFoundError
		configErr   *ConfigError
		writeErr    *export.WriteError
		readErr     *fmc.DocumentReadError
	)
	switch {
	case errors.As(err, &validErr):
		output["error_type"] = "validation_error"
		output["field"] = validErr.Field
		output["value"] = validErr.Value
		output["reason"] = validErr.Reason
		if validErr.Example != "" {
			output["example"] = validErr.Example
		}

	case errors.As(err, &notFoundErr):
		output["error_type"] = "not_found_error"
		output["resource"] = notFoundErr.Resource
		output["id"] = notFoundErr.ID
		if notFoundErr.Hint != "" {
			output["hint"] = notFoundErr.Hint
		}

	case errors.As(err, &configErr):
		output["error_type"] = "config_error"
		output["path"] = configErr.Path

	case errors.As(err, &readErr):
		output["error_type"] = "document_error"
		output["path"] = readErr.Path
		output["reason"] = readErr.Reason

	case errors.As(err, &writeErr):
		output["error_type"] = "write_error"
		output["path"] = writeErr.Path

	case errors.As(err, &cmdErr):
		output["error_type"] = "command_error"
		output["command"] = cmdErr.Command
		output["action"] = cmdErr.Action
		output["reason"] = cmdErr.Reason
		if cmdErr.Err != nil {
			output["underlying_error"] = cmdErr.Err.Error()
		}

	default:
		output["error_type"] = "generic_error"
	}

	encoder := json.NewEncoder(stdout)
	encoder.SetIndent("", "  ")
	_ = encoder.Encode(output)
}

// =============================================================================
// EXIT CODES FROM ERRORS
// =============================================================================

// GetExitCode determines the appropriate exit code for an error:
//   - ExitUsageError (2): ValidationError
//   - ExitConfigError (3): ConfigError, config.ValidateErrors
//   - ExitNotFoundError (7): NotFoundError, missing export document
//   - ExitGeneralError (1): all other errors
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return ExitUsageError
	}

	var configErr *ConfigError
	var verrs config.ValidateErrors
	if errors.As(err, &configErr) || errors.As(err, &verrs) {
		return ExitConfigError
	}

	var notFoundErr *NotFoundError
	if errors.As(err, &notFoundErr) {
		return ExitNotFoundError
	}

	var readErr *fmc.DocumentReadError
	if errors.As(err, &readErr) && readErr.Missing() {
		return ExitNotFoundError
	}

	return ExitGeneralError
}
