// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"
	"time"

	"github.com/cashnode/cashd/domain/consensus/model/externalapi"
	"github.com/cashnode/cashd/domain/consensus/ruleerrors"
	"github.com/cashnode/cashd/domain/consensus/utils/math"
	"github.com/pkg/errors"
)

// NetworkType is the symbolic name of a network. It is the identity of a
// Params record.
type NetworkType string

// The supported networks.
const (
	Mainnet NetworkType = "main"
	Testnet NetworkType = "testnet"
	Regtest NetworkType = "regtest"
	Simnet  NetworkType = "simnet"
)

// PowParams holds the proof-of-work policy of a network.
type PowParams struct {
	// Limit is the highest (easiest) target a block can have.
	Limit *big.Int

	// Bits is Limit in compact form.
	Bits uint32

	// ChainWork is the minimum cumulative work the best chain must exceed.
	ChainWork *big.Int

	// HalfLife is the ASERT difficulty averaging window.
	HalfLife time.Duration

	// TargetTimespan is the desired duration of a retarget period.
	TargetTimespan time.Duration

	// TargetSpacing is the desired time between blocks.
	TargetSpacing time.Duration

	// RetargetInterval is the number of blocks between retargets.
	RetargetInterval uint32

	// TargetReset allows minimum difficulty blocks when no block was mined
	// for a while.
	TargetReset bool

	// NoRetargeting disables retargeting entirely.
	NoRetargeting bool
}

// CheckTargetRange decodes bits and returns ErrUnexpectedDifficulty when the
// target is not positive or is above Limit.
func (p *PowParams) CheckTargetRange(bits uint32) error {
	target, err := math.CompactToBig(bits)
	if err != nil {
		return errors.Wrapf(ruleerrors.ErrInvalidBits, "%s", err)
	}
	if target.Sign() <= 0 {
		return errors.Wrapf(ruleerrors.ErrUnexpectedDifficulty,
			"block target difficulty of %064x is too low", target)
	}
	if target.Cmp(p.Limit) > 0 {
		return errors.Wrapf(ruleerrors.ErrUnexpectedDifficulty,
			"block target difficulty of %064x is higher than max of %064x", target, p.Limit)
	}
	return nil
}

// HasMinimumChainWork returns whether work is at least ChainWork.
func (p *PowParams) HasMinimumChainWork(work *big.Int) bool {
	return work.Cmp(p.ChainWork) >= 0
}

// BlockParams holds the hard fork activations of a network and the block
// processing knobs that go with them.
type BlockParams struct {
	// Forks are the historical protocol upgrades in activation order.
	Forks []*ForkActivation

	// PruneAfterHeight is the height after which pruning is safe.
	PruneAfterHeight uint32

	// KeepBlocks is the number of recent blocks a pruned node keeps.
	KeepBlocks uint32

	// MaxTipAge is the tip age under which the chain is considered synced.
	MaxTipAge time.Duration

	// SlowHeight is the height from which block processing is slow enough
	// to log every block.
	SlowHeight uint32
}

// KeyPrefix holds the serialization prefixes of keys.
type KeyPrefix struct {
	PrivKey    byte
	XPubKey    uint32
	XPrivKey   uint32
	XPubKey58  string
	XPrivKey58 string
	CoinType   uint32
}

// AddressPrefix holds the serialization prefixes of addresses.
type AddressPrefix struct {
	PubKeyHash byte
	ScriptHash byte
	CashAddr   string
}

// Params defines a network by its parameters. These parameters may be
// used by applications to differentiate networks as well as addresses
// and keys for one network from those intended for use on another network.
//
// A Params is never modified once built, so it is safe to share between
// goroutines without locking.
type Params struct {
	// Type is the symbolic name of the network.
	Type NetworkType

	// Seeds is a list of DNS seeds used to discover peers.
	Seeds []string

	// Magic identifies messages of this network on the wire.
	Magic uint32

	// Port is the default peer-to-peer port.
	Port uint16

	// RPCPort is the default RPC server port.
	RPCPort uint16

	// WalletPort is the default wallet server port.
	WalletPort uint16

	// Genesis is the first block of the chain.
	Genesis *Genesis

	// Pow is the proof-of-work policy.
	Pow PowParams

	// Checkpoints maps heights to the block hash expected there.
	Checkpoints map[uint32]*externalapi.DomainHash

	// LastCheckpoint is the height below which reorgs into checkpointed
	// history are rejected.
	LastCheckpoint uint32

	// HalvingInterval is the number of blocks between subsidy halvings.
	HalvingInterval uint32

	// Block holds the hard fork activations.
	Block BlockParams

	// BIP30 maps heights to the historical blocks that created duplicate
	// transaction hashes.
	BIP30 map[uint32]*externalapi.DomainHash

	// These fields are related to voting on consensus rule changes as
	// defined by BIP0009.
	//
	// ActivationThreshold is the number of blocks in a threshold state
	// retarget window for which a positive vote for a rule change must
	// be cast in order to lock in a rule change. It should typically be
	// 95% for the main network and 75% for test networks.
	//
	// MinerWindow is the number of blocks in each threshold state
	// retarget window.
	//
	// Deploys define the specific consensus rule changes to be voted on,
	// in order. Deployments indexes the same specs by name.
	ActivationThreshold uint32
	MinerWindow         uint32
	Deploys             []*DeploymentSpec
	Deployments         map[string]*DeploymentSpec

	// Key and address encoding magics
	KeyPrefix     KeyPrefix
	AddressPrefix AddressPrefix

	// Policy defaults. These are read by the mempool and peer layers and
	// are not consensus rules.
	RequireStandard bool
	MinRelay        int64
	FeeRate         int64
	MaxFeeRate      int64
	SelfConnect     bool
	RequestMempool  bool
}

// Fork returns the named fork activation, if this network defines it.
func (p *Params) Fork(name string) (*ForkActivation, bool) {
	for _, fork := range p.Block.Forks {
		if fork.Name == name {
			return fork, true
		}
	}
	return nil, false
}

// Deployment returns the named deployment, if this network defines it.
func (p *Params) Deployment(name string) (*DeploymentSpec, bool) {
	deployment, ok := p.Deployments[name]
	return deployment, ok
}

// IsBIP30Exception returns whether the block at height with hash is one of
// the historical blocks allowed to overwrite unspent transactions.
func (p *Params) IsBIP30Exception(height uint32, hash *externalapi.DomainHash) bool {
	expected, ok := p.BIP30[height]
	return ok && expected.Equal(hash)
}

// newHashFromStr converts the passed hex string in internal byte order into
// a DomainHash. It only differs from the one available in externalapi in that
// it panics on an error since it will only (and must only) be called with
// hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) *externalapi.DomainHash {
	hash, err := externalapi.NewDomainHashFromString(hexStr)
	if err != nil {
		panic(err)
	}
	return hash
}

// newBigFromHex is newHashFromStr for hard-coded big integers.
func newBigFromHex(hexStr string) *big.Int {
	n, ok := new(big.Int).SetString(hexStr, 16)
	if !ok {
		panic("invalid hard-coded big integer " + hexStr)
	}
	return n
}

func uint32Ptr(n uint32) *uint32 {
	return &n
}
