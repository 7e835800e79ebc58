package runner

import (
	"context"

	"github.com/grovetools/restart-controller/command"
	"github.com/grovetools/restart-controller/config"
	rcerrors "github.com/grovetools/restart-controller/errors"
	"github.com/grovetools/restart-controller/logging"
	"github.com/sirupsen/logrus"
)

// ProcessRunner spawns a process entry's program and waits for it to exit.
type ProcessRunner struct {
	builder *command.Builder
	log     *logrus.Entry
}

// NewProcessRunner creates a ProcessRunner. A nil builder spawns real processes.
func NewProcessRunner(builder *command.Builder) *ProcessRunner {
	if builder == nil {
		builder = command.NewBuilder()
	}
	return &ProcessRunner{
		builder: builder,
		log:     logging.NewLogger("process-runner"),
	}
}

// Run splits the command on whitespace, spawns the first token with the rest
// as arguments, and blocks until it exits. The child inherits stdio. Spawn
// failures and exit status are only logged at debug level. A blank command
// has no program to spawn and is skipped.
func (r *ProcessRunner) Run(ctx context.Context, entry *config.ProcessEntry) {
	r.run(ctx, r.log, entry)
}

func (r *ProcessRunner) run(ctx context.Context, log *logrus.Entry, entry *config.ProcessEntry) {
	argv := entry.Argv()
	if len(argv) == 0 {
		log.Debug("skipping process entry with blank command")
		return
	}

	cmd, err := r.builder.Build(ctx, argv[0], argv[1:]...)
	if err != nil {
		log.WithError(err).Debug("failed to build command")
		return
	}
	log = log.WithField("command", cmd.String())

	if err := cmd.WithInheritedStdio().Run(); err != nil {
		log.WithError(rcerrors.FromExec(argv[0], argv[1:], err)).Debug("process entry failed")
		return
	}
	log.Debug("process entry exited")
}
