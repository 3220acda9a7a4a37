package main

import (
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/cashnode/cashd/domain/consensus/utils/math"
	"github.com/cashnode/cashd/infrastructure/config"
	"github.com/pkg/errors"
)

func compact(cfg *config.Config, conf *compactConfig, out io.Writer) error {
	if (conf.Decode == "") == (conf.Encode == "") {
		return errors.New("exactly one of --decode and --encode must be specified")
	}

	var bits uint32
	if conf.Decode != "" {
		parsed, err := strconv.ParseUint(conf.Decode, 0, 32)
		if err != nil {
			return errors.Wrapf(err, "couldn't parse compact bits %s", conf.Decode)
		}
		bits = uint32(parsed)
	} else {
		target, ok := new(big.Int).SetString(strings.TrimPrefix(conf.Encode, "0x"), 16)
		if !ok || target.Sign() < 0 {
			return errors.Errorf("couldn't parse target %s", conf.Encode)
		}
		bits = math.BigToCompact(target)
	}

	target, err := math.CompactToBig(bits)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Bits:   0x%08x\n", bits)
	fmt.Fprintf(out, "Target: %064x\n", target)
	fmt.Fprintf(out, "Work:   %s\n", math.CalcWork(bits))

	params := cfg.NetParams()
	if err := params.Pow.CheckTargetRange(bits); err != nil {
		fmt.Fprintf(out, "Not a valid %s target: %s\n", params.Type, err)
	} else {
		fmt.Fprintf(out, "Within the %s proof of work limit\n", params.Type)
	}

	if conf.ChainWork != "" {
		work, ok := new(big.Int).SetString(strings.TrimPrefix(conf.ChainWork, "0x"), 16)
		if !ok || work.Sign() < 0 {
			return errors.Errorf("couldn't parse chain work %s", conf.ChainWork)
		}
		if params.Pow.HasMinimumChainWork(work) {
			fmt.Fprintf(out, "Chain work %x meets the %s minimum of %x\n", work, params.Type, params.Pow.ChainWork)
		} else {
			fmt.Fprintf(out, "Chain work %x is below the %s minimum of %x\n", work, params.Type, params.Pow.ChainWork)
		}
	}
	return nil
}
