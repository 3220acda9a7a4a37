package main

import (
	"fmt"
	"os"

	"github.com/cashnode/cashd/infrastructure/logger"
	"github.com/cashnode/cashd/version"
	"github.com/pkg/errors"
)

func main() {
	subCmd, cfg, subConfig := parseCommandLine()

	logger.InitLog(cfg.LogFile(), cfg.ErrLogFile())
	defer logger.BackendLog.Close()
	log.Debugf("chainparams version %s on %s", version.Version(), cfg.NetParams().Type)

	out := os.Stdout
	var err error
	switch subCmd {
	case showSubCmd:
		err = show(cfg, out)
	case compactSubCmd:
		err = compact(cfg, subConfig.(*compactConfig), out)
	case checkpointSubCmd:
		err = checkpoint(cfg, subConfig.(*checkpointConfig), out)
	case forksSubCmd:
		err = forks(cfg, subConfig.(*forksConfig), out)
	case versionbitsSubCmd:
		err = versionbits(cfg, subConfig.(*versionbitsConfig), out)
	case verifyGenesisSubCmd:
		err = verifyGenesis(out)
	default:
		err = errors.Errorf("Unknown sub-command '%s'", subCmd)
	}

	if err != nil {
		logger.BackendLog.Close()
		printErrorAndExit(err)
	}
}

func printErrorAndExit(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}
