package main

import (
	"fmt"
	"io"

	"github.com/cashnode/cashd/domain/chaincfg"
	"github.com/pkg/errors"
)

func verifyGenesis(out io.Writer) error {
	failed := 0
	for _, networkType := range chaincfg.ListTypes() {
		params, err := chaincfg.Get(string(networkType))
		if err != nil {
			return err
		}
		err = params.Genesis.Verify()
		if err != nil {
			failed++
			fmt.Fprintf(out, "%-8s FAILED: %s\n", networkType, err)
			continue
		}
		fmt.Fprintf(out, "%-8s %s OK\n", networkType, params.Genesis.Hash.ReversedString())
	}
	if failed > 0 {
		return errors.Errorf("%d genesis blocks failed verification", failed)
	}
	return nil
}
