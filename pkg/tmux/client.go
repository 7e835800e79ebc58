// Package tmux issues control invocations against the tmux binary.
package tmux

import (
	"context"
	"fmt"
	"strings"

	"github.com/grovetools/restart-controller/command"
	rcerrors "github.com/grovetools/restart-controller/errors"
)

// Binary is the tmux control binary looked up on PATH.
const Binary = "tmux"

type Client struct {
	builder *command.Builder
	socket  string // Socket name for dedicated tmux server (uses -L flag)
}

// NewClientWithSocket creates a tmux client that uses a dedicated server socket.
// This provides isolation from the default tmux server.
func NewClientWithSocket(socket string) *Client {
	return NewClientWithBuilder(command.NewBuilder(), socket)
}

// NewClientWithBuilder creates a client whose invocations are built by builder.
func NewClientWithBuilder(builder *command.Builder, socket string) *Client {
	if builder == nil {
		builder = command.NewBuilder()
	}
	return &Client{
		builder: builder,
		socket:  socket,
	}
}

// Socket returns the socket name this client uses, or empty string for default.
func (c *Client) Socket() string {
	return c.socket
}

// KillServer kills the tmux server for this client's socket.
// If the client uses the default socket, this will kill the default tmux server (use with caution!).
func (c *Client) KillServer(ctx context.Context) error {
	_, err := c.run(ctx, "kill-server")
	// Ignore "no server running" errors - server is already gone
	if err != nil && strings.Contains(err.Error(), "no server running") {
		return nil
	}
	return err
}

func (c *Client) run(ctx context.Context, args ...string) (string, error) {
	// Prepend socket flag if using a dedicated server
	if c.socket != "" {
		args = append([]string{"-L", c.socket}, args...)
	}

	cmd, err := c.builder.Build(ctx, Binary, args...)
	if err != nil {
		return "", fmt.Errorf("failed to build command: %w", err)
	}

	output, err := cmd.CombinedOutput()
	if err != nil {
		return string(output), rcerrors.FromExec(Binary, args, err).
			WithDetail("output", strings.TrimSpace(string(output)))
	}

	return string(output), nil
}
