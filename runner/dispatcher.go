// Package runner executes configuration entries: tmux session entries through
// SessionRunner and one-shot process entries through ProcessRunner.
package runner

import (
	"context"

	"github.com/google/uuid"
	"github.com/grovetools/restart-controller/command"
	"github.com/grovetools/restart-controller/config"
	"github.com/grovetools/restart-controller/logging"
	"github.com/grovetools/restart-controller/pkg/tmux"
	"github.com/sirupsen/logrus"
)

// Dispatcher runs entries in order, one at a time.
type Dispatcher struct {
	session *SessionRunner
	process *ProcessRunner
	log     *logrus.Entry
}

// NewDispatcher creates a Dispatcher from the two runners.
func NewDispatcher(session *SessionRunner, process *ProcessRunner) *Dispatcher {
	return &Dispatcher{
		session: session,
		process: process,
		log:     logging.NewLogger("dispatcher"),
	}
}

// NewDefault wires a Dispatcher to the real tmux binary and real processes,
// with blocking sleeps between tmux invocations.
func NewDefault() *Dispatcher {
	builder := command.NewBuilder()
	return NewDispatcher(
		NewSessionRunner(tmux.NewClientWithBuilder(builder, ""), nil),
		NewProcessRunner(builder),
	)
}

// Run invokes the matching runner for each entry exactly once, in order. Each
// runner returns only after its entry is finished; no entry stops the ones
// after it.
func (d *Dispatcher) Run(ctx context.Context, entries []config.Entry) {
	log := d.log.WithField("run_id", uuid.NewString())
	log.WithField("entries", len(entries)).Debug("starting run")

	for i := range entries {
		entry := &entries[i]
		entryLog := log.WithFields(logrus.Fields{"entry": i, "kind": entry.Kind})
		entryLog.Debug("dispatching entry")

		switch entry.Kind {
		case config.KindSession:
			d.session.run(ctx, entryLog, entry.Session)
		case config.KindProcess:
			d.process.run(ctx, entryLog, entry.Process)
		default:
			entryLog.Debug("skipping entry of unknown kind")
		}
	}

	log.Debug("run finished")
}
