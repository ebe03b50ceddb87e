package extract

import (
	"fmt"
	"io"
	"os"
)

// Logger prints recoverable-anomaly messages with the teacher's
// "[WARN] .../[INFO] ..." prefix convention (pkg/kicad/pcb/parser.go's
// fmt.Printf("[WARN] ...") calls), but gated behind Verbose so the CLI can
// stay quiet unless asked for detail. A nil *Logger discards everything,
// matching extract.go's previous unconditional log.Printf behavior being
// opt-in rather than always-on.
type Logger struct {
	Out     io.Writer
	Verbose bool
}

// NewLogger returns a Logger writing to os.Stderr, the teacher's own
// destination for [WARN]/[INFO] lines.
func NewLogger(verbose bool) *Logger {
	return &Logger{Out: os.Stderr, Verbose: verbose}
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	l.logf("[WARN] ", format, args...)
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.logf("[INFO] ", format, args...)
}

func (l *Logger) logf(prefix, format string, args ...interface{}) {
	if l == nil || !l.Verbose {
		return
	}
	fmt.Fprintf(l.Out, prefix+format+"\n", args...)
}
