package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/btcsuite/btcutil"
	"github.com/cashnode/cashd/domain/chaincfg"
	"github.com/cashnode/cashd/infrastructure/logger"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

const (
	defaultLogDirname        = "logs"
	defaultLogFilename       = "cashd.log"
	defaultErrLogFilename    = "cashd_err.log"
	defaultLogLevel          = "info"
	defaultStateCacheDirname = "statecache"

	// DefaultStateCacheSize is the default number of deployment states
	// kept in memory in front of the state cache database.
	DefaultStateCacheSize = 1000
)

var (
	// DefaultAppDir is the default home directory for cashd.
	DefaultAppDir = btcutil.AppDataDir("cashd", false)
)

// Flags defines the configuration options for cashd tools.
//
// See LoadConfig for details on the configuration load process.
type Flags struct {
	AppDir         string `short:"b" long:"appdir" description:"Directory to store data"`
	LogDir         string `long:"logdir" description:"Directory to log output."`
	DebugLevel     string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`
	StateCacheDir  string `long:"statecachedir" description:"Directory of the versionbits state cache. Defaults to a subdirectory of the network's data directory"`
	StateCacheSize int    `long:"statecachesize" description:"Number of versionbits states kept in memory"`
	NetworkFlags
}

// Config defines the resolved configuration options for cashd tools.
type Config struct {
	*Flags
}

// DefaultFlags returns the flags with their default values
func DefaultFlags() *Flags {
	return &Flags{
		AppDir:         DefaultAppDir,
		DebugLevel:     defaultLogLevel,
		StateCacheSize: DefaultStateCacheSize,
	}
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		homeDir := filepath.Dir(DefaultAppDir)
		path = strings.Replace(path, "~", homeDir, 1)
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but the variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}

// Resolve selects the network, fills the directories left empty with
// per-network defaults under AppDir, and applies the debug level.
// registry may be nil to resolve against the default registry.
func (cfgFlags *Flags) Resolve(parser *flags.Parser, registry *chaincfg.Registry) (*Config, error) {
	// Show the subsystems if debug level is "show".
	if cfgFlags.DebugLevel == "show" {
		fmt.Println("Supported subsystems", logger.SupportedSubsystems())
		os.Exit(0)
	}

	err := cfgFlags.ResolveNetwork(parser, registry)
	if err != nil {
		return nil, err
	}
	netName := string(cfgFlags.NetParams().Type)

	if cfgFlags.AppDir == "" {
		cfgFlags.AppDir = DefaultAppDir
	}
	cfgFlags.AppDir = cleanAndExpandPath(cfgFlags.AppDir)

	if cfgFlags.LogDir == "" {
		cfgFlags.LogDir = filepath.Join(cfgFlags.AppDir, defaultLogDirname)
	}
	cfgFlags.LogDir = filepath.Join(cleanAndExpandPath(cfgFlags.LogDir), netName)

	if cfgFlags.StateCacheDir == "" {
		cfgFlags.StateCacheDir = filepath.Join(cfgFlags.AppDir, netName, defaultStateCacheDirname)
	}
	cfgFlags.StateCacheDir = cleanAndExpandPath(cfgFlags.StateCacheDir)

	if cfgFlags.StateCacheSize <= 0 {
		return nil, errors.Errorf("the state cache size must be positive, got %d", cfgFlags.StateCacheSize)
	}

	if cfgFlags.DebugLevel == "" {
		cfgFlags.DebugLevel = defaultLogLevel
	}
	err = logger.ParseAndSetLogLevels(cfgFlags.DebugLevel)
	if err != nil {
		if parser != nil {
			fmt.Fprintln(os.Stderr, err)
			parser.WriteHelp(os.Stderr)
		}
		return nil, err
	}

	return &Config{Flags: cfgFlags}, nil
}

// LoadConfig initializes and parses the config using command line options.
//
// The configuration proceeds as follows:
// 	1) Start with a default config with sane settings
// 	2) Parse args, overriding the defaults
// 	3) Resolve the network and the per-network directories
//
// The above results in cashd tools functioning properly without any config
// settings while still allowing the user to override settings with command
// line options. The arguments left after parsing are returned.
func LoadConfig(args []string) (*Config, []string, error) {
	cfgFlags := DefaultFlags()
	parser := flags.NewParser(cfgFlags, flags.HelpFlag)
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := cfgFlags.Resolve(parser, nil)
	if err != nil {
		return nil, nil, err
	}
	return cfg, remainingArgs, nil
}

// LogFile returns the path of the log file
func (cfg *Config) LogFile() string {
	return filepath.Join(cfg.LogDir, defaultLogFilename)
}

// ErrLogFile returns the path of the error log file
func (cfg *Config) ErrLogFile() string {
	return filepath.Join(cfg.LogDir, defaultErrLogFilename)
}
