package runner

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/grovetools/restart-controller/command"
	"github.com/grovetools/restart-controller/config"
	rcerrors "github.com/grovetools/restart-controller/errors"
	"github.com/grovetools/restart-controller/logging"
	"github.com/grovetools/restart-controller/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessRunner_SplitsOnWhitespace(t *testing.T) {
	tests := []struct {
		name     string
		command  string
		wantName string
		wantArgs []string
	}{
		{"program and args", "echo hello world", "echo", []string{"hello", "world"}},
		{"program only", "uptime", "uptime", []string{}},
		{"runs of whitespace", "  systemctl \t restart\n nginx  ", "systemctl", []string{"restart", "nginx"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &testutil.RecordingExecutor{}
			r := NewProcessRunner(command.NewBuilderWithExecutor(rec))

			r.Run(context.Background(), &config.ProcessEntry{Command: tt.command})

			calls := rec.Calls()
			require.Len(t, calls, 1)
			assert.Equal(t, tt.wantName, calls[0].Name)
			assert.Equal(t, tt.wantArgs, calls[0].Args)
		})
	}
}

func TestProcessRunner_BlankCommandIsSkipped(t *testing.T) {
	for _, cmd := range []string{"", "   ", "\t\n"} {
		rec := &testutil.RecordingExecutor{}
		r := NewProcessRunner(command.NewBuilderWithExecutor(rec))

		assert.NotPanics(t, func() {
			r.Run(context.Background(), &config.ProcessEntry{Command: cmd})
		})
		assert.Empty(t, rec.Calls(), "blank command %q should not spawn", cmd)
	}
}

func TestProcessRunner_WaitsForExit(t *testing.T) {
	marker := filepath.Join(t.TempDir(), "ran")
	r := NewProcessRunner(nil)

	r.Run(context.Background(), &config.ProcessEntry{Command: "touch " + marker})

	_, err := os.Stat(marker)
	assert.NoError(t, err, "process should have completed before Run returned")
}

func TestProcessRunner_FailuresAreSwallowed(t *testing.T) {
	r := NewProcessRunner(nil)

	assert.NotPanics(t, func() {
		r.Run(context.Background(), &config.ProcessEntry{Command: "false"})
		r.Run(context.Background(), &config.ProcessEntry{Command: "/nonexistent/restart-controller-test-binary --flag"})
	})
}

func TestProcessRunner_MissingProgramIsLoggedAsNotFound(t *testing.T) {
	var buf bytes.Buffer
	logging.Configure(logging.Config{Level: "debug", Output: &buf})
	t.Cleanup(func() { logging.Configure(logging.Config{}) })

	r := NewProcessRunner(nil)
	r.Run(context.Background(), &config.ProcessEntry{Command: "restart-controller-missing-binary --flag"})

	assert.Contains(t, buf.String(), "process entry failed")
	assert.Contains(t, buf.String(), string(rcerrors.ErrCodeCommandNotFound))
}
