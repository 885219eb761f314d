package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/shoproute/access"
	"github.com/katalvlaran/shoproute/floorplan"
	"github.com/katalvlaran/shoproute/gridgraph"
	"github.com/katalvlaran/shoproute/mapstore"
	"github.com/katalvlaran/shoproute/tsp"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // No route could be planned for the given inputs
	ExitCommandError = 2 // Command error (bad flags, unreadable files, store failures)
)

// Error codes reported in JSON output.
const (
	CodeNoFloorPlan   = "E001"
	CodeNoEntrance    = "E002"
	CodeUnreachable   = "E003"
	CodeNoRoute       = "E004"
	CodeInvalidInput  = "E005"
	CodeSearchLimit   = "E006"
	CodeCommandFailed = "E100"
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)

	// Reported is set when the OutputFormatter already printed the error.
	Reported bool
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// classify maps a planning error to its JSON error code and exit code.
func classify(err error) (string, int) {
	switch {
	case errors.Is(err, floorplan.ErrNoFloorPlan):
		return CodeNoFloorPlan, ExitFailure
	case errors.Is(err, floorplan.ErrNoEntrance):
		return CodeNoEntrance, ExitFailure
	case errors.Is(err, access.ErrUnreachable):
		return CodeUnreachable, ExitFailure
	case errors.Is(err, tsp.ErrNoFeasibleRoute):
		return CodeNoRoute, ExitFailure
	case errors.Is(err, tsp.ErrTooManyStops), errors.Is(err, tsp.ErrTimeLimit):
		return CodeSearchLimit, ExitFailure
	case errors.Is(err, floorplan.ErrMissingLocation),
		errors.Is(err, floorplan.ErrCellType),
		errors.Is(err, floorplan.ErrDimensions),
		errors.Is(err, gridgraph.ErrOutOfBounds),
		errors.Is(err, mapstore.ErrStoreID):
		return CodeInvalidInput, ExitCommandError
	default:
		return CodeCommandFailed, ExitCommandError
	}
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Separate writer for verbose/diagnostic output (defaults to Writer)
	Verbose   bool
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status    string      `json:"status"`               // "ok" or "error"
	Data      interface{} `json:"data,omitempty"`       // success payload
	Error     *CLIError   `json:"error,omitempty"`      // error details
	RequestID string      `json:"request_id,omitempty"` // route request correlation
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string      `json:"code"`              // "E001", "E002", etc.
	Message string      `json:"message"`           // human-readable message
	Details interface{} `json:"details,omitempty"` // additional context
}

// Success outputs a successful result in the configured format. In text
// mode data is printed with fmt.Fprint, so strings should carry their own
// trailing newline.
func (f *OutputFormatter) Success(data interface{}) error {
	return f.SuccessWithID(data, "")
}

// SuccessWithID is Success with a request id attached to the JSON envelope.
func (f *OutputFormatter) SuccessWithID(data interface{}, requestID string) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status:    "ok",
			Data:      data,
			RequestID: requestID,
		})
	}

	_, err := fmt.Fprint(f.Writer, data)
	return err
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string, details interface{}) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
		})
	}

	w := f.GetErrWriter()
	fmt.Fprintf(w, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(w, "Details: %v\n", details)
	}
	return nil
}

// Fail reports err through the formatter and returns the ExitError the
// command should return. The causes wrapped inside err become the details.
func (f *OutputFormatter) Fail(message string, err error) error {
	code, exit := classify(err)
	var details interface{}
	if c := causes(err); len(c) > 0 {
		details = c
	}
	_ = f.Error(code, fmt.Sprintf("%s: %v", message, err), details)

	return &ExitError{Code: exit, Message: message, Err: err, Reported: true}
}

// causes lists the messages of the errors wrapped by err, outermost first.
// err itself is not included.
func causes(err error) []string {
	var out []string
	for e := errors.Unwrap(err); e != nil; e = errors.Unwrap(e) {
		out = append(out, e.Error())
	}

	return out
}

// VerboseLog outputs a message only if verbose mode is enabled.
func (f *OutputFormatter) VerboseLog(format string, args ...interface{}) {
	if !f.Verbose {
		return
	}
	fmt.Fprintf(f.GetErrWriter(), format+"\n", args...)
}

// GetErrWriter returns ErrWriter if set, otherwise Writer.
func (f *OutputFormatter) GetErrWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}
