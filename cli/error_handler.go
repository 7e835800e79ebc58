package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/grovetools/restart-controller/errors"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
	Out     io.Writer
}

// NewErrorHandler creates a new error handler writing to stderr
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
		Out:     os.Stderr,
	}
}

// Handle prints a message for err based on its code and returns err unchanged
func (h *ErrorHandler) Handle(err error) error {
	if err == nil {
		return nil
	}
	out := h.Out
	if out == nil {
		out = os.Stderr
	}

	rcErr, _ := errors.As(err)

	switch errors.GetCode(err) {
	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(out, "❌ Configuration file %v does not exist.\n", rcErr.Details["path"])

	case errors.ErrCodeConfigUnreadable:
		fmt.Fprintf(out, "❌ Configuration file %v cannot be read: %v\n", rcErr.Details["path"], rcErr.Cause)

	case errors.ErrCodeConfigInvalid:
		fmt.Fprintf(out, "❌ Configuration is invalid: %v\n", rcErr.Details["reason"])
		if rcErr.Cause != nil {
			fmt.Fprintf(out, "%v\n", rcErr.Cause)
		}
		fmt.Fprintf(out, "Run 'restart-controller schema' to see the expected format.\n")

	case errors.ErrCodeCommandNotFound:
		fmt.Fprintf(out, "❌ %v is not installed or not on PATH.\n", rcErr.Details["command"])

	default:
		fmt.Fprintf(out, "❌ Error: %v\n", err)
	}

	// If verbose mode, show full error details
	if h.Verbose && rcErr != nil {
		fmt.Fprintf(out, "\nError details:\n%s\n", rcErr.ToJSON())
	}
	return err
}
