package logger

import (
	"strings"

	"github.com/pkg/errors"
)

// Level is the minimum severity a logger or writer lets through.
type Level uint32

// Level constants, in increasing severity.
const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelCritical
	LevelOff
)

var levelTags = [...]string{"TRC", "DBG", "INF", "WRN", "ERR", "CRT", "OFF"}

var levelsByName = map[string]Level{
	"trace": LevelTrace, "trc": LevelTrace,
	"debug": LevelDebug, "dbg": LevelDebug,
	"info": LevelInfo, "inf": LevelInfo,
	"warn": LevelWarn, "wrn": LevelWarn,
	"error": LevelError, "err": LevelError,
	"critical": LevelCritical, "crt": LevelCritical,
	"off": LevelOff,
}

// LevelFromString returns the level named by s. Unknown names return
// LevelInfo and false.
func LevelFromString(s string) (l Level, ok bool) {
	l, ok = levelsByName[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return LevelInfo, false
	}
	return l, true
}

// ParseLevel is LevelFromString returning an error for unknown names.
func ParseLevel(s string) (Level, error) {
	l, ok := LevelFromString(s)
	if !ok {
		return LevelInfo, errors.Errorf("invalid log level %q", s)
	}
	return l, nil
}

// String returns the three letter tag used in log lines.
func (l Level) String() string {
	if l >= LevelOff {
		return "OFF"
	}
	return levelTags[l]
}
