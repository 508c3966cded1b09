package testutil

import "sync"

// RecordingLogger captures diagnostic output for assertions.
type RecordingLogger struct {
	mu       sync.Mutex
	Warnings []string
	Errors   []string
}

func (l *RecordingLogger) Debug(string) {}
func (l *RecordingLogger) Info(string)  {}

func (l *RecordingLogger) Warn(message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Warnings = append(l.Warnings, message)
}

func (l *RecordingLogger) Error(message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Errors = append(l.Errors, message)
}
