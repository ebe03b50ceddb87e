package extract

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerSilentUnlessVerbose(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{Out: &buf, Verbose: false}
	l.Warnf("zone %d unparsed", 3)
	if buf.Len() != 0 {
		t.Fatalf("got %q, want no output when not verbose", buf.String())
	}
}

func TestLoggerVerbosePrefixesMessages(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{Out: &buf, Verbose: true}
	l.Warnf("zone %d unparsed", 3)
	l.Infof("loaded %s", "board.kicad_pcb")
	out := buf.String()
	if !strings.Contains(out, "[WARN] zone 3 unparsed\n") {
		t.Fatalf("warnf output = %q, want [WARN]-prefixed line", out)
	}
	if !strings.Contains(out, "[INFO] loaded board.kicad_pcb\n") {
		t.Fatalf("infof output = %q, want [INFO]-prefixed line", out)
	}
}

func TestNilLoggerDiscardsWithoutPanic(t *testing.T) {
	var l *Logger
	l.Warnf("unreachable board section")
}
