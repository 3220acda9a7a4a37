package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cashnode/cashd/domain/consensus/database"
	"github.com/cashnode/cashd/domain/consensus/datastructures/deploymentstatestore"
	"github.com/cashnode/cashd/domain/consensus/model"
	"github.com/cashnode/cashd/domain/consensus/model/externalapi"
	"github.com/cashnode/cashd/domain/consensus/processes/versionbitsengine"
	"github.com/cashnode/cashd/infrastructure/config"
	"github.com/cashnode/cashd/infrastructure/db/database/ldb"
	"github.com/pkg/errors"
)

const stateCacheSizeMiB = 8

func versionbits(cfg *config.Config, conf *versionbitsConfig, out io.Writer) error {
	chainFile, err := os.Open(conf.ChainFile)
	if err != nil {
		return err
	}
	defer chainFile.Close()

	chain, err := parseChain(chainFile)
	if err != nil {
		return errors.Wrapf(err, "couldn't read chain file %s", conf.ChainFile)
	}
	if len(chain) == 0 {
		return errors.Errorf("chain file %s has no blocks", conf.ChainFile)
	}

	var db model.DBManager
	if !conf.NoCache {
		cacheDir := conf.CacheDir
		if cacheDir == "" {
			cacheDir = cfg.StateCacheDir
		}
		levelDB, err := ldb.NewLevelDB(cacheDir, stateCacheSizeMiB)
		if err != nil {
			return err
		}
		defer levelDB.Close()
		db = database.New(levelDB)
	}
	store := deploymentstatestore.New(db, string(cfg.NetParams().Type), cfg.StateCacheSize)

	return printDeploymentStates(cfg, store, chain, out)
}

func printDeploymentStates(cfg *config.Config, store model.DeploymentStateStore,
	chain externalapi.BlockInfos, out io.Writer) error {

	params := cfg.NetParams()
	engine := versionbitsengine.New(params, store)
	tip := chain.Tip()
	next := tip.Position()
	next.Height++

	fmt.Fprintf(out, "Deployment states at height %d:\n", next.Height)
	for _, deployment := range params.Deploys {
		state, err := engine.StateAt(deployment.Name, next, chain)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%-12s bit %-2d %-9s active: %t (threshold %d of %d)\n", deployment.Name,
			deployment.Bit, state.State, state.Active, state.ResolvedThreshold, state.ResolvedWindow)
	}

	nextVersion, err := engine.NextBlockVersion(tip.Height, chain)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Next block version: 0x%08x\n", nextVersion)

	stats := store.Stats()
	log.Infof("State cache: %d hits, %d misses, %d writes, %d ignored",
		stats.Hits, stats.Misses, stats.Writes, stats.Ignored)
	return nil
}

// parseChain reads blocks from lines of the form
// "height medianTimePast version hash". Heights must start at 0 and be
// consecutive. Empty lines and lines starting with # are skipped.
func parseChain(reader io.Reader) (externalapi.BlockInfos, error) {
	var chain externalapi.BlockInfos
	scanner := bufio.NewScanner(reader)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		block, err := parseBlockLine(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		if uint64(block.Height) != uint64(len(chain)) {
			return nil, errors.Errorf("line %d: expected height %d, got %d", lineNumber, len(chain), block.Height)
		}
		chain = append(chain, block)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return chain, nil
}

func parseBlockLine(line string) (*externalapi.BlockInfo, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return nil, errors.Errorf("expected 4 fields, got %d", len(fields))
	}

	numbers := make([]uint32, 3)
	for i, field := range fields[:3] {
		number, err := strconv.ParseUint(field, 0, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "couldn't parse %s", field)
		}
		numbers[i] = uint32(number)
	}

	blockHash, err := externalapi.NewDomainHashFromReversedString(fields[3])
	if err != nil {
		return nil, err
	}

	return &externalapi.BlockInfo{
		Hash:           blockHash,
		Height:         numbers[0],
		MedianTimePast: numbers[1],
		Version:        numbers[2],
	}, nil
}
