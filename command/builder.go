package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Builder creates commands backed by an Executor.
type Builder struct {
	executor Executor
}

// NewBuilder creates a new Builder instance with a RealExecutor
func NewBuilder() *Builder {
	return NewBuilderWithExecutor(&RealExecutor{})
}

// NewBuilderWithExecutor creates a new Builder with a custom Executor
func NewBuilderWithExecutor(exec Executor) *Builder {
	if exec == nil {
		exec = &RealExecutor{}
	}
	return &Builder{executor: exec}
}

// Command represents a single external program invocation
type Command struct {
	ctx      context.Context
	name     string
	args     []string
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
	executor Executor
}

// Build creates a new command. The name must be non-empty.
func (b *Builder) Build(ctx context.Context, name string, args ...string) (*Command, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("command name cannot be empty")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	return &Command{
		ctx:      ctx,
		name:     name,
		args:     args,
		executor: b.executor,
	}, nil
}

// Name returns the program name.
func (c *Command) Name() string {
	return c.name
}

// Args returns the argument list, not including the program name.
func (c *Command) Args() []string {
	return c.args
}

// String renders the command line for logs.
func (c *Command) String() string {
	if len(c.args) == 0 {
		return c.name
	}
	return c.name + " " + strings.Join(c.args, " ")
}

// WithInheritedStdio connects the command to this process's stdin, stdout and stderr.
func (c *Command) WithInheritedStdio() *Command {
	c.stdin = os.Stdin
	c.stdout = os.Stdout
	c.stderr = os.Stderr
	return c
}

// Exec creates and returns an exec.Cmd. Commands have no timeout; they run
// until they exit or the build context is cancelled.
func (c *Command) Exec() *exec.Cmd {
	cmd := c.executor.CommandContext(c.ctx, c.name, c.args...) //nolint:gosec // argv is passed without a shell
	if c.stdin != nil {
		cmd.Stdin = c.stdin
	}
	if c.stdout != nil {
		cmd.Stdout = c.stdout
	}
	if c.stderr != nil {
		cmd.Stderr = c.stderr
	}
	return cmd
}

// Run starts the command and waits for it to exit.
func (c *Command) Run() error {
	return c.Exec().Run()
}

// CombinedOutput runs the command and returns its combined stdout and stderr.
func (c *Command) CombinedOutput() ([]byte, error) {
	return c.Exec().CombinedOutput()
}
