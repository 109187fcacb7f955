package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/roach88/basket/internal/engine"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Input rejected by validation, or scenarios failed
	ExitCommandError = 2 // Command error (missing file, bad config, database errors, etc.)
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)

	// Reported is set once the error has been written to the command output.
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

// ReportError writes err to w unless a command already reported it.
func ReportError(w io.Writer, err error) {
	if err == nil {
		return
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Reported {
		return
	}
	fmt.Fprintln(w, err)
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil and ExitFailure if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// Error codes reported in the JSON envelope and text error lines.
const (
	ErrCodeGeneric              = "E001" // Generic/unknown error
	ErrCodeNotFound             = "E002" // Input path not found
	ErrCodeIngest               = "E003" // Unreadable transaction source
	ErrCodeConfig               = "E004" // Invalid config file or flags
	ErrCodeStore                = "E005" // Database error
	ErrCodeInvalidThreshold     = "E010" // Threshold outside [0, 1]
	ErrCodeEmptyCorpus          = "E011" // No transactions
	ErrCodeMalformedTransaction = "E012" // Empty item token
	ErrCodeRunNotFound          = "E020" // Unknown run ID
	ErrCodeTestFailed           = "E030" // One or more scenarios failed
)

// validationCodes maps engine validation codes onto CLI error codes.
var validationCodes = map[engine.ValidationErrorCode]string{
	engine.ErrCodeInvalidThreshold:     ErrCodeInvalidThreshold,
	engine.ErrCodeEmptyCorpus:          ErrCodeEmptyCorpus,
	engine.ErrCodeMalformedTransaction: ErrCodeMalformedTransaction,
}

// OutputFormatter handles text, Markdown and JSON output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Separate writer for verbose/diagnostic output (defaults to Writer)
	Verbose   bool
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string    `json:"status"`          // "ok" or "error"
	Data   any       `json:"data,omitempty"`  // success payload
	Error  *CLIError `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`              // "E001", "E002", etc.
	Message string `json:"message"`           // human-readable message
	Details any    `json:"details,omitempty"` // additional context
}

// Success outputs a successful result in the configured format.
// Non-JSON formats print data with fmt.Println.
func (f *OutputFormatter) Success(data any) error {
	if f.Format == FormatJSON {
		return f.encode(CLIResponse{Status: "ok", Data: data})
	}

	fmt.Fprintln(f.Writer, data)
	return nil
}

// Render outputs data as the JSON envelope, or calls the writer matching
// the configured format. A nil markdown writer falls back to text.
func (f *OutputFormatter) Render(data any, text, markdown func(io.Writer) error) error {
	switch {
	case f.Format == FormatJSON:
		return f.encode(CLIResponse{Status: "ok", Data: data})
	case f.Format == FormatMarkdown && markdown != nil:
		return markdown(f.Writer)
	default:
		return text(f.Writer)
	}
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string, details any) error {
	if f.Format == FormatJSON {
		return f.encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
		})
	}

	// Human-readable error
	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(f.Writer, "Details: %v\n", details)
	}
	return nil
}

// Fail reports err and returns the ExitError the command should return.
//
// Engine validation errors override code with their own CLI code and exit
// with ExitFailure; a missing file reports ErrCodeNotFound. Everything else
// exits with ExitCommandError.
func (f *OutputFormatter) Fail(code, message string, err error) error {
	exit := ExitCommandError
	var details any

	var verr *engine.ValidationError
	switch {
	case errors.As(err, &verr):
		if mapped, ok := validationCodes[verr.Code]; ok {
			code = mapped
		}
		exit = ExitFailure
		if len(verr.Details) > 0 {
			details = verr.Details
		}
	case errors.Is(err, fs.ErrNotExist):
		code = ErrCodeNotFound
	}

	_ = f.Error(code, fmt.Sprintf("%s: %v", message, err), details)
	exitErr := WrapExitError(exit, fmt.Sprintf("%s [%s]", message, code), err)
	exitErr.Reported = true
	return exitErr
}

// VerboseLog outputs a message only if verbose mode is enabled.
// Uses ErrWriter if set, otherwise falls back to Writer.
// When format is JSON, verbose logs go to ErrWriter to avoid corrupting JSON output.
func (f *OutputFormatter) VerboseLog(format string, args ...any) {
	if !f.Verbose {
		return
	}
	fmt.Fprintf(f.GetErrWriter(), format+"\n", args...)
}

// GetErrWriter returns the appropriate writer for diagnostic output.
// Returns ErrWriter if set, otherwise Writer.
func (f *OutputFormatter) GetErrWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}

func (f *OutputFormatter) encode(resp CLIResponse) error {
	encoder := json.NewEncoder(f.Writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(resp)
}
