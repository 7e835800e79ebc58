package testutil

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// RequireTmux skips the test if tmux is not available
func RequireTmux(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath("tmux"); err != nil {
		t.Skip("tmux not available")
	}
}

// WriteConfig writes content to name inside a fresh temp directory and returns its path.
func WriteConfig(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

// RandomString generates a random string of the specified length
func RandomString(length int) string {
	bytes := make([]byte, length/2+1)
	if _, err := rand.Read(bytes); err != nil {
		panic(err)
	}
	return hex.EncodeToString(bytes)[:length]
}

// Invocation is one command recorded by RecordingExecutor.
type Invocation struct {
	Name string
	Args []string
}

// RecordingExecutor records every command it is asked to create and substitutes
// `true`, or `false` when Fail reports the invocation should fail. It satisfies
// command.Executor.
type RecordingExecutor struct {
	mu    sync.Mutex
	calls []Invocation

	// Fail, when set, decides per invocation whether the substitute exits non-zero.
	Fail func(name string, args []string) bool
	// OnCreate, when set, is called after an invocation is recorded.
	OnCreate func(inv Invocation)
}

// Command records the invocation and returns a stub command.
func (r *RecordingExecutor) Command(name string, args ...string) *exec.Cmd {
	return r.CommandContext(context.Background(), name, args...)
}

// CommandContext records the invocation and returns a stub command.
func (r *RecordingExecutor) CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd {
	inv := Invocation{Name: name, Args: append([]string{}, args...)}

	r.mu.Lock()
	r.calls = append(r.calls, inv)
	fail := r.Fail != nil && r.Fail(name, args)
	onCreate := r.OnCreate
	r.mu.Unlock()

	if onCreate != nil {
		onCreate(inv)
	}
	if fail {
		return exec.CommandContext(ctx, "false")
	}
	return exec.CommandContext(ctx, "true")
}

// Calls returns a copy of the recorded invocations.
func (r *RecordingExecutor) Calls() []Invocation {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Invocation(nil), r.calls...)
}
