package logger

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// BackendLog is the logging backend used to create all subsystem loggers.
var BackendLog = NewBackend()

var (
	subsystemLoggersMutex sync.Mutex
	subsystemLoggers      = make(map[string]*Logger)
)

// RegisterSubSystem returns the logger for subsystem, creating it on first
// use. Packages call it from their log.go:
//
//	var log = logger.RegisterSubSystem("TAG")
func RegisterSubSystem(subsystem string) *Logger {
	subsystemLoggersMutex.Lock()
	defer subsystemLoggersMutex.Unlock()

	if existing, ok := subsystemLoggers[subsystem]; ok {
		return existing
	}
	logger := BackendLog.Logger(subsystem)
	subsystemLoggers[subsystem] = logger
	return logger
}

// InitLog attaches log file and error log file to the backend log and starts
// it. Failures are fatal since nothing can be reported without a log.
func InitLog(logFile, errLogFile string) {
	err := BackendLog.AddLogFile(logFile, LevelTrace)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding log file %s as log rotator for level %s: %s\n", logFile, LevelTrace, err)
		os.Exit(1)
	}
	err = BackendLog.AddLogFile(errLogFile, LevelWarn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding log file %s as log rotator for level %s: %s\n", errLogFile, LevelWarn, err)
		os.Exit(1)
	}
	err = BackendLog.AddLogWriter(os.Stdout, LevelInfo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding stdout to the log writers: %s\n", err)
		os.Exit(1)
	}
	err = BackendLog.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting the logger: %s\n", err)
		os.Exit(1)
	}
}

// SupportedSubsystems returns a sorted slice of the registered subsystems.
func SupportedSubsystems() []string {
	subsystemLoggersMutex.Lock()
	defer subsystemLoggersMutex.Unlock()

	subsystems := make([]string, 0, len(subsystemLoggers))
	for subsystem := range subsystemLoggers {
		subsystems = append(subsystems, subsystem)
	}
	sort.Strings(subsystems)
	return subsystems
}

// SetLogLevel sets the level of a single registered subsystem.
func SetLogLevel(subsystem string, level Level) error {
	subsystemLoggersMutex.Lock()
	defer subsystemLoggersMutex.Unlock()

	logger, ok := subsystemLoggers[subsystem]
	if !ok {
		return errors.Errorf("unknown subsystem %q", subsystem)
	}
	logger.SetLevel(level)
	return nil
}

// SetLogLevels sets the logging level for all of the registered subsystems.
func SetLogLevels(level string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	subsystemLoggersMutex.Lock()
	defer subsystemLoggersMutex.Unlock()
	for _, logger := range subsystemLoggers {
		logger.SetLevel(lvl)
	}
	return nil
}

// ParseAndSetLogLevels accepts either a single level applied to every
// subsystem ("debug") or a comma separated list of subsystem=level pairs
// ("VBIT=trace,CCFG=info").
func ParseAndSetLogLevels(debugLevel string) error {
	if !strings.Contains(debugLevel, "=") {
		return SetLogLevels(debugLevel)
	}

	for _, pair := range strings.Split(debugLevel, ",") {
		fields := strings.Split(pair, "=")
		if len(fields) != 2 {
			return errors.Errorf("the specified debug level contains an invalid "+
				"subsystem/level pair [%s]", pair)
		}
		level, err := ParseLevel(fields[1])
		if err != nil {
			return err
		}
		err = SetLogLevel(strings.TrimSpace(fields[0]), level)
		if err != nil {
			return err
		}
	}
	return nil
}
