package errors

import (
	stderrors "errors"
	"fmt"
	"os/exec"
	"strings"
)

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string, err error) *RCError {
	return Wrap(err, ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigUnreadable creates an error for a configuration file that exists but cannot be read
func ConfigUnreadable(path string, err error) *RCError {
	return Wrap(err, ErrCodeConfigUnreadable, fmt.Sprintf("cannot read configuration file: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error. The reason is kept as
// a detail so handlers can print it without the message prefix.
func ConfigInvalid(reason string, err error) *RCError {
	return Wrap(err, ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason)).
		WithDetail("reason", reason)
}

// CommandFailed creates a command execution failure error
func CommandFailed(name string, args []string, err error) *RCError {
	cmd := strings.TrimSpace(name + " " + strings.Join(args, " "))
	rcErr := Wrap(err, ErrCodeCommandFailed, fmt.Sprintf("command failed: %s", cmd)).
		WithDetail("command", cmd)

	// Extract exit code if available
	if exitErr, ok := err.(*exec.ExitError); ok {
		rcErr = rcErr.WithDetail("exitCode", exitErr.ExitCode())
	}

	return rcErr
}

// CommandNotFound creates an error for an executable missing from PATH
func CommandNotFound(name string, err error) *RCError {
	return Wrap(err, ErrCodeCommandNotFound, fmt.Sprintf("command not found: %s", name)).
		WithDetail("command", name)
}

// FromExec classifies an error returned while running name: a program missing
// from PATH becomes CommandNotFound, anything else CommandFailed.
func FromExec(name string, args []string, err error) *RCError {
	if stderrors.Is(err, exec.ErrNotFound) {
		return CommandNotFound(name, err)
	}
	return CommandFailed(name, args, err)
}
