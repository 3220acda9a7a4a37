package main

import (
	"fmt"
	"io"

	"github.com/cashnode/cashd/domain/consensus/model/externalapi"
	"github.com/cashnode/cashd/domain/consensus/processes/forktracker"
	"github.com/cashnode/cashd/infrastructure/config"
)

func forks(cfg *config.Config, conf *forksConfig, out io.Writer) error {
	params := cfg.NetParams()
	tracker := forktracker.New(params)
	position := externalapi.ChainPosition{Height: conf.Height, MedianTimePast: conf.MedianTimePast}

	for _, fork := range params.Block.Forks {
		active, err := tracker.IsActive(fork.Name, position)
		if err != nil {
			return err
		}
		var gate string
		if fork.IsHeightGated() {
			gate = fmt.Sprintf("height %d", *fork.Height)
		} else {
			gate = fmt.Sprintf("time %d", *fork.ActivationTime)
		}
		fmt.Fprintf(out, "%-16s %-18s active: %t\n", fork.Name, gate, active)
	}
	return nil
}
