package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cashnode/cashd/infrastructure/config"
	"github.com/cashnode/cashd/version"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

const (
	showSubCmd          = "show"
	compactSubCmd       = "compact"
	checkpointSubCmd    = "checkpoint"
	forksSubCmd         = "forks"
	versionbitsSubCmd   = "versionbits"
	verifyGenesisSubCmd = "verifygenesis"
)

type configFlags struct {
	ShowVersion bool `short:"V" long:"version" description:"Display version information and exit"`
	config.Flags
}

type showConfig struct{}

type compactConfig struct {
	Decode    string `long:"decode" description:"Compact bits to decode (e.g. 0x1d00ffff)"`
	Encode    string `long:"encode" description:"Target to encode, in hex"`
	ChainWork string `long:"chainwork" description:"Cumulative chain work, in hex, to check against the network minimum"`
}

type checkpointConfig struct {
	Height uint32 `long:"height" description:"Height of the block" required:"true"`
	Hash   string `long:"hash" description:"Hash of the block, as shown by block explorers" required:"true"`
}

type forksConfig struct {
	Height         uint32 `long:"height" description:"Height of the block" required:"true"`
	MedianTimePast uint32 `long:"mtp" description:"Median time past of the block, in Unix seconds"`
}

type versionbitsConfig struct {
	ChainFile string `long:"chain" description:"File of 'height mtp version hash' lines, one per block from genesis" required:"true"`
	CacheDir  string `long:"cache-dir" description:"Directory of the state cache database. Defaults to the state cache directory of the network"`
	NoCache   bool   `long:"nocache" description:"Keep computed states in memory only"`
}

type verifyGenesisConfig struct{}

func parseCommandLine() (subCommand string, cfg *config.Config, subConfig interface{}) {
	cfgFlags := &configFlags{Flags: *config.DefaultFlags()}
	parser := flags.NewParser(cfgFlags, flags.PrintErrors|flags.HelpFlag)
	parser.SubcommandsOptional = true

	showConf := &showConfig{}
	parser.AddCommand(showSubCmd, "Dumps the network parameters",
		"Dumps every parameter of the selected network", showConf)

	compactConf := &compactConfig{}
	parser.AddCommand(compactSubCmd, "Decodes or encodes compact targets",
		"Decodes compact bits into a target, or encodes a target into compact bits", compactConf)

	checkpointConf := &checkpointConfig{}
	parser.AddCommand(checkpointSubCmd, "Checks a block against the checkpoints",
		"Checks a block against the checkpoints of the selected network", checkpointConf)

	forksConf := &forksConfig{}
	parser.AddCommand(forksSubCmd, "Lists the forks active at a chain position",
		"Lists every fork of the selected network and whether it is active at a chain position", forksConf)

	versionbitsConf := &versionbitsConfig{}
	parser.AddCommand(versionbitsSubCmd, "Computes deployment states of a chain",
		"Computes the state of every deployment for the block following a chain, and its block version",
		versionbitsConf)

	verifyGenesisConf := &verifyGenesisConfig{}
	parser.AddCommand(verifyGenesisSubCmd, "Verifies the genesis blocks",
		"Recomputes the genesis block hash of every registered network", verifyGenesisConf)

	_, err := parser.Parse()

	// Show the version and exit if the version flag was specified.
	if cfgFlags.ShowVersion {
		appName := filepath.Base(os.Args[0])
		appName = strings.TrimSuffix(appName, filepath.Ext(appName))
		fmt.Println(appName, "version", version.Version())
		os.Exit(0)
	}

	if err != nil {
		var flagsErr *flags.Error
		if ok := errors.As(err, &flagsErr); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if parser.Active == nil {
		parser.WriteHelp(os.Stderr)
		printErrorAndExit(errors.New("a command must be specified"))
	}

	cfg, err = cfgFlags.Resolve(parser, nil)
	if err != nil {
		printErrorAndExit(err)
	}

	switch parser.Active.Name {
	case showSubCmd:
		subConfig = showConf
	case compactSubCmd:
		subConfig = compactConf
	case checkpointSubCmd:
		subConfig = checkpointConf
	case forksSubCmd:
		subConfig = forksConf
	case versionbitsSubCmd:
		subConfig = versionbitsConf
	case verifyGenesisSubCmd:
		subConfig = verifyGenesisConf
	}

	return parser.Active.Name, cfg, subConfig
}
