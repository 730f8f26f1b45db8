package logger

// LogType is implemented by every event that can be recorded.
type LogType interface {
	isLogType()
}

// LogEntry is a single line of the event log. Exactly one event field is set.
type LogEntry struct {
	TimestampMicros int64  `json:"timestamp_micros"`
	SessionID       string `json:"session_id,omitempty"`

	SessionStart      *SessionStart      `json:"session_start,omitempty"`
	SessionEnd        *SessionEnd        `json:"session_end,omitempty"`
	RunCommand        *RunCommand        `json:"run_command,omitempty"`
	RunBuiltin        *RunBuiltin        `json:"run_builtin,omitempty"`
	UnknownCommand    *UnknownCommand    `json:"unknown_command,omitempty"`
	InvalidInvocation *InvalidInvocation `json:"invalid_invocation,omitempty"`
}

// GetLogType returns the event held by the entry, or nil.
func (le *LogEntry) GetLogType() LogType {
	switch {
	case le.SessionStart != nil:
		return le.SessionStart
	case le.SessionEnd != nil:
		return le.SessionEnd
	case le.RunCommand != nil:
		return le.RunCommand
	case le.RunBuiltin != nil:
		return le.RunBuiltin
	case le.UnknownCommand != nil:
		return le.UnknownCommand
	case le.InvalidInvocation != nil:
		return le.InvalidInvocation
	}
	return nil
}

func (le *LogEntry) setLogType(event LogType) {
	switch event := event.(type) {
	case *SessionStart:
		le.SessionStart = event
	case *SessionEnd:
		le.SessionEnd = event
	case *RunCommand:
		le.RunCommand = event
	case *RunBuiltin:
		le.RunBuiltin = event
	case *UnknownCommand:
		le.UnknownCommand = event
	case *InvalidInvocation:
		le.InvalidInvocation = event
	}
}

// SessionStart is logged when a shell session begins.
type SessionStart struct {
	Argv        []string `json:"argv"`
	Interactive bool     `json:"interactive"`
}

// SessionEnd is logged when a shell session terminates.
type SessionEnd struct {
	Status int `json:"status"`
	Lines  int `json:"lines"`
}

// RunCommand is logged after an external program finishes.
type RunCommand struct {
	Command             []string `json:"command"`
	ResolvedCommandPath string   `json:"resolved_command_path"`
	Status              int      `json:"status"`
	ErrorMessage        string   `json:"error_message,omitempty"`
}

// RunBuiltin is logged after a builtin finishes.
type RunBuiltin struct {
	Command []string `json:"command"`
	Status  int      `json:"status"`
}

// UnknownCommand is logged when a command can't be resolved.
type UnknownCommand struct {
	Command []string `json:"command"`
	Line    int      `json:"line"`
}

// InvalidInvocation is logged when a builtin is called incorrectly.
type InvalidInvocation struct {
	Command []string `json:"command"`
	Error   string   `json:"error"`
}

func (*SessionStart) isLogType()      {}
func (*SessionEnd) isLogType()        {}
func (*RunCommand) isLogType()        {}
func (*RunBuiltin) isLogType()        {}
func (*UnknownCommand) isLogType()    {}
func (*InvalidInvocation) isLogType() {}
