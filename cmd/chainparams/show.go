package main

import (
	"fmt"
	"io"

	"github.com/cashnode/cashd/infrastructure/config"
	"github.com/davecgh/go-spew/spew"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func show(cfg *config.Config, out io.Writer) error {
	params := cfg.NetParams()
	fmt.Fprintf(out, "Network: %s\n", params.Type)
	fmt.Fprintf(out, "Genesis: %s\n", params.Genesis.Hash.ReversedString())
	fmt.Fprintf(out, "Last checkpoint: %d\n\n", params.LastCheckpoint)
	dumpConfig.Fdump(out, params)
	return nil
}
