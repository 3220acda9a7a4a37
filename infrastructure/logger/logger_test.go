package logger

import (
	"bytes"
	"strings"
	"testing"
)

type bufferCloser struct {
	bytes.Buffer
	closed bool
}

func (b *bufferCloser) Close() error {
	b.closed = true
	return nil
}

func TestBackendLevels(t *testing.T) {
	backend := NewBackendWithFlags(0)
	all := &bufferCloser{}
	warnings := &bufferCloser{}
	if err := backend.AddLogWriter(all, LevelTrace); err != nil {
		t.Fatalf("TestBackendLevels: AddLogWriter: %s", err)
	}
	if err := backend.AddLogWriter(warnings, LevelWarn); err != nil {
		t.Fatalf("TestBackendLevels: AddLogWriter: %s", err)
	}
	if err := backend.Run(); err != nil {
		t.Fatalf("TestBackendLevels: Run: %s", err)
	}
	if err := backend.AddLogWriter(&bufferCloser{}, LevelTrace); err == nil {
		t.Fatalf("TestBackendLevels: AddLogWriter unexpectedly succeeded on a running backend")
	}

	log := backend.Logger("TEST")
	log.Infof("dropped while the logger is off")
	log.SetLevel(LevelDebug)
	log.Tracef("dropped below the logger level")
	log.Debugf("debug %d", 1)
	log.Warnf("warn %d", 2)
	backend.Close()

	if !all.closed || !warnings.closed {
		t.Fatalf("TestBackendLevels: Close did not close the writers")
	}
	lines := strings.Split(strings.TrimSpace(all.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("TestBackendLevels: expected 2 lines, got %d: %q", len(lines), all.String())
	}
	if !strings.Contains(lines[0], "[DBG] TEST: debug 1") {
		t.Errorf("TestBackendLevels: unexpected first line %q", lines[0])
	}
	if !strings.Contains(lines[1], "[WRN] TEST: warn 2") {
		t.Errorf("TestBackendLevels: unexpected second line %q", lines[1])
	}
	if strings.Contains(warnings.String(), "debug 1") || !strings.Contains(warnings.String(), "warn 2") {
		t.Errorf("TestBackendLevels: warn writer got %q", warnings.String())
	}
}

func TestLevelFromString(t *testing.T) {
	tests := []struct {
		in       string
		expected Level
		ok       bool
	}{
		{"trace", LevelTrace, true},
		{"DBG", LevelDebug, true},
		{" info ", LevelInfo, true},
		{"wrn", LevelWarn, true},
		{"error", LevelError, true},
		{"critical", LevelCritical, true},
		{"off", LevelOff, true},
		{"verbose", LevelInfo, false},
	}
	for _, test := range tests {
		level, ok := LevelFromString(test.in)
		if level != test.expected || ok != test.ok {
			t.Errorf("TestLevelFromString: %q: expected (%s, %t), got (%s, %t)",
				test.in, test.expected, test.ok, level, ok)
		}
	}
}

func TestParseAndSetLogLevels(t *testing.T) {
	first := RegisterSubSystem("TSTA")
	second := RegisterSubSystem("TSTB")
	if RegisterSubSystem("TSTA") != first {
		t.Fatalf("TestParseAndSetLogLevels: RegisterSubSystem returned a different logger for the same tag")
	}

	if err := ParseAndSetLogLevels("TSTA=trace,TSTB=error"); err != nil {
		t.Fatalf("TestParseAndSetLogLevels: %s", err)
	}
	if first.Level() != LevelTrace || second.Level() != LevelError {
		t.Fatalf("TestParseAndSetLogLevels: got levels %s and %s", first.Level(), second.Level())
	}

	if err := ParseAndSetLogLevels("warn"); err != nil {
		t.Fatalf("TestParseAndSetLogLevels: %s", err)
	}
	if first.Level() != LevelWarn || second.Level() != LevelWarn {
		t.Fatalf("TestParseAndSetLogLevels: got levels %s and %s", first.Level(), second.Level())
	}

	for _, invalid := range []string{"TSTA=loud", "NOPE=info", "TSTA=info=x", "loud"} {
		if err := ParseAndSetLogLevels(invalid); err == nil {
			t.Errorf("TestParseAndSetLogLevels: %q: expected an error", invalid)
		}
	}
}
