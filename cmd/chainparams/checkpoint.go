package main

import (
	"fmt"
	"io"

	"github.com/cashnode/cashd/domain/consensus/model/externalapi"
	"github.com/cashnode/cashd/domain/consensus/processes/checkpointverifier"
	"github.com/cashnode/cashd/infrastructure/config"
	"github.com/pkg/errors"
)

func checkpoint(cfg *config.Config, conf *checkpointConfig, out io.Writer) error {
	blockHash, err := externalapi.NewDomainHashFromReversedString(conf.Hash)
	if err != nil {
		return errors.Wrapf(err, "couldn't parse block hash %s", conf.Hash)
	}

	verifier := checkpointverifier.New(cfg.NetParams())
	fmt.Fprintf(out, "Result: %s\n", verifier.Verify(conf.Height, blockHash))
	fmt.Fprintf(out, "Checkpointed: %t\n", verifier.IsCheckpointed(conf.Height))
	lastHeight, lastHash := verifier.LastCheckpoint()
	if lastHash != nil {
		fmt.Fprintf(out, "Last checkpoint: %d %s\n", lastHeight, lastHash.ReversedString())
	}
	return verifier.ValidateBlock(conf.Height, blockHash)
}
