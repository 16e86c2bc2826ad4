package cli

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/vogel/problem"
	"github.com/katalvlaran/vogel/vam"
)

// ExitCode is the process exit status of a failed command.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error (I/O, usage, encoding).
	ExitGeneralError ExitCode = 1

	// ExitInvalidInput indicates the problem document was rejected.
	ExitInvalidInput ExitCode = 2
)

// CLIError is an error that carries an exit code.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

// Unwrap exposes the cause to errors.Is / errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// WrapCLIError creates a CLIError around err.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}

// inputSentinels are the errors that mean "the document is wrong".
var inputSentinels = []error{
	vam.ErrEmptyInput,
	vam.ErrDimensionMismatch,
	vam.ErrNegativeValue,
	vam.ErrNaNInf,
	vam.ErrUnbalanced,
	problem.ErrUnknownFormat,
	problem.ErrLabelCount,
	problem.ErrDuplicateLabel,
	problem.ErrEmptyLabel,
}

// classify picks the exit code for a solve failure.
func classify(err error) ExitCode {
	for _, s := range inputSentinels {
		if errors.Is(err, s) {
			return ExitInvalidInput
		}
	}

	return ExitGeneralError
}
