package tmux

import (
	"context"
	"strings"
)

// NewSession creates a detached session: new-session -d -s <name>.
// An existing session with the same name is not checked for; tmux reports the
// conflict through the returned error.
func (c *Client) NewSession(ctx context.Context, sessionName string) error {
	_, err := c.run(ctx, "new-session", "-d", "-s", sessionName)
	return err
}

// SendKeys sends keys to target: send-keys -t <target> <keys...>.
func (c *Client) SendKeys(ctx context.Context, target string, keys ...string) error {
	args := []string{"send-keys", "-t", target}
	args = append(args, keys...)
	_, err := c.run(ctx, args...)
	return err
}

// SendLine types text into target and presses Enter (C-m).
func (c *Client) SendLine(ctx context.Context, target, text string) error {
	return c.SendKeys(ctx, target, text, "C-m")
}

// Detach detaches every client attached to the session: detach -s <name>.
func (c *Client) Detach(ctx context.Context, sessionName string) error {
	_, err := c.run(ctx, "detach", "-s", sessionName)
	return err
}

func (c *Client) SessionExists(ctx context.Context, sessionName string) (bool, error) {
	_, err := c.run(ctx, "has-session", "-t", "="+sessionName)
	if err == nil {
		return true, nil
	}

	if strings.Contains(err.Error(), "exit status 1") {
		return false, nil
	}

	return false, err
}

func (c *Client) KillSession(ctx context.Context, sessionName string) error {
	_, err := c.run(ctx, "kill-session", "-t", "="+sessionName)
	return err
}
