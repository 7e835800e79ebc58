package runner

import (
	"context"
	"time"

	"github.com/grovetools/restart-controller/config"
	"github.com/grovetools/restart-controller/logging"
	"github.com/grovetools/restart-controller/pkg/tmux"
	"github.com/sirupsen/logrus"
)

// Sleeper blocks the calling goroutine for d.
type Sleeper func(d time.Duration)

// Controller issues the tmux control invocations a session entry needs.
// *tmux.Client satisfies it.
type Controller interface {
	NewSession(ctx context.Context, sessionName string) error
	SendLine(ctx context.Context, target, text string) error
	Detach(ctx context.Context, sessionName string) error
}

var _ Controller = (*tmux.Client)(nil)

// SessionRunner drives one tmux session per entry:
// create, then (sleep, send) per command, one more sleep, then detach.
type SessionRunner struct {
	ctrl  Controller
	sleep Sleeper
	log   *logrus.Entry
}

// NewSessionRunner creates a SessionRunner. A nil sleep uses time.Sleep.
func NewSessionRunner(ctrl Controller, sleep Sleeper) *SessionRunner {
	if sleep == nil {
		sleep = time.Sleep
	}
	return &SessionRunner{
		ctrl:  ctrl,
		sleep: sleep,
		log:   logging.NewLogger("session-runner"),
	}
}

// Run executes every phase regardless of earlier failures. Failures are only
// logged at debug level; there is nothing to report to the caller.
func (r *SessionRunner) Run(ctx context.Context, entry *config.SessionEntry) {
	r.run(ctx, r.log, entry)
}

func (r *SessionRunner) run(ctx context.Context, log *logrus.Entry, entry *config.SessionEntry) {
	log = log.WithField("session", entry.Name)
	delay := entry.DelayDuration()

	if err := r.ctrl.NewSession(ctx, entry.Name); err != nil {
		log.WithError(err).Debug("new-session failed")
	}

	for i, cmd := range entry.Commands {
		r.sleep(delay)
		if err := r.ctrl.SendLine(ctx, entry.Name, cmd); err != nil {
			log.WithError(err).WithField("command_index", i).Debug("send-keys failed")
		}
	}

	r.sleep(delay)

	if err := r.ctrl.Detach(ctx, entry.Name); err != nil {
		log.WithError(err).Debug("detach failed")
	}

	log.WithField("commands", len(entry.Commands)).Debug("session entry finished")
}
