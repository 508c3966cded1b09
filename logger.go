package nylas

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
)

// Logger receives diagnostic output from the SDK, such as API version
// compatibility warnings. Implementations must be safe for concurrent
// use.
type Logger interface {
	Debug(message string)
	Info(message string)
	Warn(message string)
	Error(message string)
}

// NopLogger discards all diagnostic output.
type NopLogger struct{}

func (NopLogger) Debug(string) {}
func (NopLogger) Info(string)  {}
func (NopLogger) Warn(string)  {}
func (NopLogger) Error(string) {}

// ColorLogger writes timestamped, level-colored lines to a writer. It
// is the default logger for new clients, writing to stderr.
type ColorLogger struct {
	out io.Writer
}

// NewColorLogger creates a ColorLogger writing to out. A nil out
// defaults to stderr.
func NewColorLogger(out io.Writer) *ColorLogger {
	if out == nil {
		out = os.Stderr
	}
	return &ColorLogger{out: out}
}

func (l *ColorLogger) log(level, message string, colorize func(...interface{}) string) {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	fmt.Fprintf(l.out, "%s %s %s\n", timestamp, colorize(level), message)
}

func (l *ColorLogger) Debug(message string) {
	l.log("DEBUG", message, color.New(color.FgCyan).SprintFunc())
}

func (l *ColorLogger) Info(message string) {
	l.log("INFO", message, color.New(color.FgGreen).SprintFunc())
}

func (l *ColorLogger) Warn(message string) {
	l.log("WARN", message, color.New(color.FgYellow).SprintFunc())
}

func (l *ColorLogger) Error(message string) {
	l.log("ERROR", message, color.New(color.FgRed).SprintFunc())
}
