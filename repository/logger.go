package repository

import (
	"io"
	"log"
	"os"
)

// Logger receives one line per rendered statement.
type Logger interface {
	Printf(format string, args ...any)
}

type NopLogger struct{}

func (NopLogger) Printf(format string, args ...any) {}

// StdLogger returns a standard library logger writing to w, or to stderr
// when w is nil.
func StdLogger(w io.Writer) Logger {
	if w == nil {
		w = os.Stderr
	}
	return log.New(w, "[ormsql] ", log.LstdFlags)
}
