package logging

import "context"

// LogEntry is a structured key-value pair attached to a log record.
type LogEntry struct {
	Key   string
	Value any
}

// Entry is a shorthand constructor for call sites.
func Entry(k string, v any) LogEntry {
	return LogEntry{Key: k, Value: v}
}

// Logger is the logging port used by services. Credentials must never
// be logged, call sites pass user IDs and emails only.
type Logger interface {
	Debug(ctx context.Context, msg string, entries ...LogEntry)
	Info(ctx context.Context, msg string, entries ...LogEntry)
	Warning(ctx context.Context, msg string, entries ...LogEntry)
	Error(ctx context.Context, msg string, entries ...LogEntry)
}
