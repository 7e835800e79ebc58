package config

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DefaultPath is the configuration file every run reads.
const DefaultPath = "/etc/restart-controller/config.json"

// EntryKind identifies which variant an Entry holds.
type EntryKind string

const (
	KindSession EntryKind = "session"
	KindProcess EntryKind = "process"
)

// SessionEntry drives a named tmux session through a fixed
// create, send, detach sequence.
type SessionEntry struct {
	// Name identifies the tmux session.
	Name string `json:"name" yaml:"name" toml:"name" jsonschema:"minLength=1,description=tmux session name"`
	// Commands are typed into the session in order, each followed by Enter.
	Commands []string `json:"commands" yaml:"commands" toml:"commands" jsonschema:"description=Commands sent to the session in order"`
	// Delay in milliseconds slept before every command and once more before detaching.
	Delay *uint32 `json:"delay,omitempty" yaml:"delay,omitempty" toml:"delay,omitempty" jsonschema:"nullable,minimum=0,maximum=4294967295,description=Milliseconds to wait before each command and before detaching"`
}

// DelayDuration returns the configured delay, or zero when absent.
func (s *SessionEntry) DelayDuration() time.Duration {
	if s.Delay == nil {
		return 0
	}
	return time.Duration(*s.Delay) * time.Millisecond
}

// ProcessEntry spawns a single program and waits for it to exit.
type ProcessEntry struct {
	// Command is the program followed by its whitespace-separated arguments.
	Command string `json:"command" yaml:"command" toml:"command" jsonschema:"description=Program and arguments separated by whitespace"`
}

// Argv splits Command on whitespace. The result is empty for a blank command.
func (p *ProcessEntry) Argv() []string {
	return strings.Fields(p.Command)
}

// Entry is one unit of work from the configuration file. Exactly one of
// Session or Process is set, as indicated by Kind.
type Entry struct {
	Kind    EntryKind
	Session *SessionEntry
	Process *ProcessEntry
}

// NewSessionEntry wraps s in an Entry.
func NewSessionEntry(s SessionEntry) Entry {
	return Entry{Kind: KindSession, Session: &s}
}

// NewProcessEntry wraps p in an Entry.
func NewProcessEntry(p ProcessEntry) Entry {
	return Entry{Kind: KindProcess, Process: &p}
}

// String summarises the entry for logs and the validate command.
func (e Entry) String() string {
	switch e.Kind {
	case KindSession:
		return fmt.Sprintf("session %q (%d commands, delay %s)",
			e.Session.Name, len(e.Session.Commands), e.Session.DelayDuration())
	case KindProcess:
		return fmt.Sprintf("process %q", e.Process.Command)
	default:
		return fmt.Sprintf("unknown entry kind %q", e.Kind)
	}
}

// MarshalJSON renders the entry in its configuration-file shape.
func (e Entry) MarshalJSON() ([]byte, error) {
	switch e.Kind {
	case KindSession:
		return json.Marshal(e.Session)
	case KindProcess:
		return json.Marshal(e.Process)
	default:
		return nil, fmt.Errorf("cannot marshal entry of kind %q", e.Kind)
	}
}
