package ioc

import (
	"encoding/json"
	"fmt"
)

// Logger is the structured event sink a Container accepts via WithLogger.
// Its sole method mirrors the source's Logger.Infor rather than the
// stdlib's *log.Logger, since every ambient log call in this module is a
// named event plus structured fields, never a freeform message.
type Logger interface {
	Event(name string, data map[string]any)
}

// nopLogger is the Container default: registration and resolution proceed
// silently unless a caller opts in with WithLogger.
type nopLogger struct{}

func (nopLogger) Event(string, map[string]any) {}

// stdoutLogger reproduces the source's DefaultLogger: newline-delimited,
// human-readable, written straight to stdout. It is not the default
// because a library should not write to stdout unasked, but it is
// available for callers that want the same texture as the source's
// out-of-the-box behavior.
type stdoutLogger struct{}

// NewStdoutLogger returns a Logger that prints every event to stdout as a
// "[ioc-event]::name::[data]----->" line followed by the data as indented
// JSON on the lines after it, grounded on the source's
// "[Doff-Event]::%s::[Message]::::%s:::[Data]----->" format.
func NewStdoutLogger() Logger {
	return stdoutLogger{}
}

func (stdoutLogger) Event(name string, data map[string]any) {
	b, _ := json.MarshalIndent(data, "", " ")
	fmt.Printf("[ioc-event]::%s::[data]----->\n%s\n", name, string(b))
}
