package errors

import (
	"fmt"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRCError(t *testing.T) {
	// Test basic error creation
	err := New(ErrCodeInvalidInput, "bad input")
	if err.Code != ErrCodeInvalidInput {
		t.Errorf("expected code %s, got %s", ErrCodeInvalidInput, err.Code)
	}

	// Test error wrapping
	cause := fmt.Errorf("underlying error")
	wrapped := Wrap(cause, ErrCodeCommandFailed, "command failed")

	if wrapped.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}

	// Test Is function
	if !Is(wrapped, ErrCodeCommandFailed) {
		t.Error("Is should return true for matching code")
	}

	if Is(wrapped, ErrCodeConfigInvalid) {
		t.Error("Is should return false for non-matching code")
	}

	// Test WithDetail
	detailed := err.WithDetail("entry", 3).WithDetail("field", "delay")
	if detailed.Details["field"] != "delay" {
		t.Error("WithDetail should add details")
	}
}

func TestIsThroughFmtWrapping(t *testing.T) {
	inner := ConfigInvalid("entry 0 matches no known shape", nil)
	outer := fmt.Errorf("loading: %w", inner)

	assert.True(t, Is(outer, ErrCodeConfigInvalid))
	assert.Equal(t, ErrCodeConfigInvalid, GetCode(outer))
	assert.Equal(t, ErrorCode(""), GetCode(fmt.Errorf("plain")))
	assert.Equal(t, ErrorCode(""), GetCode(nil))
}

func TestErrorConstructors(t *testing.T) {
	err := ConfigNotFound("/etc/restart-controller/config.json", nil)
	assert.Equal(t, ErrCodeConfigNotFound, err.Code)
	assert.Equal(t, "/etc/restart-controller/config.json", err.Details["path"])

	err = ConfigUnreadable("/etc/restart-controller/config.json", fmt.Errorf("permission denied"))
	assert.Equal(t, ErrCodeConfigUnreadable, err.Code)
	assert.Contains(t, err.Error(), "permission denied")

	err = CommandNotFound("tmux", exec.ErrNotFound)
	assert.Equal(t, ErrCodeCommandNotFound, err.Code)
	assert.Equal(t, "tmux", err.Details["command"])
}

func TestCommandFailedExitCode(t *testing.T) {
	runErr := exec.Command("false").Run()
	require.Error(t, runErr)

	err := CommandFailed("false", nil, runErr)
	assert.Equal(t, ErrCodeCommandFailed, err.Code)
	assert.Equal(t, "false", err.Details["command"])
	assert.Equal(t, 1, err.Details["exitCode"])

	err = CommandFailed("tmux", []string{"detach", "-s", "web"}, fmt.Errorf("boom"))
	assert.Equal(t, "tmux detach -s web", err.Details["command"])
	_, hasExit := err.Details["exitCode"]
	assert.False(t, hasExit)
}

func TestToJSON(t *testing.T) {
	err := ConfigInvalid("not an array", nil).WithDetail("path", "/tmp/x.json")
	out := err.ToJSON()
	assert.Contains(t, out, `"code": "CONFIG_INVALID"`)
	assert.Contains(t, out, `"path": "/tmp/x.json"`)
}

func TestFromExec(t *testing.T) {
	_, lookErr := exec.LookPath("restart-controller-missing-binary")
	require.Error(t, lookErr)

	err := FromExec("restart-controller-missing-binary", []string{"--flag"}, lookErr)
	assert.Equal(t, ErrCodeCommandNotFound, err.Code)
	assert.Equal(t, "restart-controller-missing-binary", err.Details["command"])

	runErr := exec.Command("false").Run()
	err = FromExec("false", nil, runErr)
	assert.Equal(t, ErrCodeCommandFailed, err.Code)
	assert.Equal(t, 1, err.Details["exitCode"])
}
