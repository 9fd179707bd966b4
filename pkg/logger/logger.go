// Package logger provides per-file debug loggers gated by the DEBUG
// environment variable.
//
// Loggers are named "package:file" and stay silent unless DEBUG matches the
// name. DEBUG accepts a comma-separated list of patterns where a trailing
// "*" matches any suffix:
//
//	DEBUG=cli:resolver fig preview slant
//	DEBUG=cli:*,figlet:* fig generate out.png
//	DEBUG=* fig list
package logger

import (
	"log"
	"os"
	"strings"
)

// Logger writes debug lines to stderr when enabled.
type Logger struct {
	name    string
	enabled bool
	out     *log.Logger
}

// New returns a logger for the given "package:file" name. Enablement is
// decided once from DEBUG at construction time.
func New(name string) *Logger {
	return &Logger{
		name:    name,
		enabled: matches(os.Getenv("DEBUG"), name),
		out:     log.New(os.Stderr, name+" ", log.Ltime|log.Lmicroseconds),
	}
}

// Enabled reports whether the logger writes anything.
func (l *Logger) Enabled() bool {
	return l.enabled
}

// Print logs its arguments in fmt.Sprint style when enabled.
func (l *Logger) Print(v ...any) {
	if l.enabled {
		l.out.Print(v...)
	}
}

// Printf logs a formatted line when enabled.
func (l *Logger) Printf(format string, v ...any) {
	if l.enabled {
		l.out.Printf(format, v...)
	}
}

func matches(spec, name string) bool {
	for _, pat := range strings.Split(spec, ",") {
		pat = strings.TrimSpace(pat)
		if pat == "" {
			continue
		}
		if pat == "*" || pat == name {
			return true
		}
		if prefix, ok := strings.CutSuffix(pat, "*"); ok && strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}
