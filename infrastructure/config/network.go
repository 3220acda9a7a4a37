package config

import (
	"fmt"
	"os"

	"github.com/cashnode/cashd/domain/chaincfg"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

// NetworkFlags holds the network configuration, that is which network is selected.
type NetworkFlags struct {
	Testnet bool `long:"testnet" description:"Use the test network"`
	Regtest bool `long:"regtest" description:"Use the regression test network"`
	Simnet  bool `long:"simnet" description:"Use the simulation test network"`

	ActiveNetParams *chaincfg.Params
}

// selectedNetwork returns the network the flags select, and how many
// networks were selected. Mainnet is selected when no flag is set.
func (networkFlags *NetworkFlags) selectedNetwork() (chaincfg.NetworkType, int) {
	selected := chaincfg.Mainnet
	numNets := 0
	if networkFlags.Testnet {
		numNets++
		selected = chaincfg.Testnet
	}
	if networkFlags.Regtest {
		numNets++
		selected = chaincfg.Regtest
	}
	if networkFlags.Simnet {
		numNets++
		selected = chaincfg.Simnet
	}
	return selected, numNets
}

// ResolveNetwork parses the network command line argument and sets
// ActiveNetParams to the matching parameters of registry, or of the default
// registry if registry is nil. It returns an error if more than one network
// was selected or if the registry does not hold the selected network.
func (networkFlags *NetworkFlags) ResolveNetwork(parser *flags.Parser, registry *chaincfg.Registry) error {
	if registry == nil {
		registry = chaincfg.DefaultRegistry()
	}

	selected, numNets := networkFlags.selectedNetwork()
	if numNets > 1 {
		message := "Multiple networks parameters (testnet, regtest, simnet) cannot be used " +
			"together. Please choose only one network"
		err := errors.New(message)
		if parser != nil {
			fmt.Fprintln(os.Stderr, err)
			parser.WriteHelp(os.Stderr)
		}
		return err
	}

	params, err := registry.Get(string(selected))
	if err != nil {
		return err
	}
	networkFlags.ActiveNetParams = params
	log.Debugf("Selected network %s", params.Type)
	return nil
}

// NetParams returns the ActiveNetParams
func (networkFlags *NetworkFlags) NetParams() *chaincfg.Params {
	return networkFlags.ActiveNetParams
}
