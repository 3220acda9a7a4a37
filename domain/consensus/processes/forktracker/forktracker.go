package forktracker

import (
	"github.com/cashnode/cashd/domain/chaincfg"
	"github.com/cashnode/cashd/domain/consensus/model"
	"github.com/cashnode/cashd/domain/consensus/model/externalapi"
	"github.com/cashnode/cashd/domain/consensus/ruleerrors"
	"github.com/pkg/errors"
)

// ErrUnknownFork indicates a lookup of a fork name the network does not
// define. Callers that expect a fork to be absent on some networks should
// check IsDefined instead.
var ErrUnknownFork = errors.New("unknown fork")

// forkTracker resolves the hard fork activations of a single network. It
// holds no state besides the immutable fork table, so it never caches.
type forkTracker struct {
	networkType chaincfg.NetworkType
	forks       []*chaincfg.ForkActivation
	forksByName map[string]*chaincfg.ForkActivation
}

// New instantiates a new ForkTracker for the network defined by params
func New(params *chaincfg.Params) model.ForkTracker {
	forksByName := make(map[string]*chaincfg.ForkActivation, len(params.Block.Forks))
	for _, fork := range params.Block.Forks {
		forksByName[fork.Name] = fork
	}
	return &forkTracker{
		networkType: params.Type,
		forks:       params.Block.Forks,
		forksByName: forksByName,
	}
}

// IsActive returns whether the named fork's rules apply at position
func (ft *forkTracker) IsActive(forkName string, position externalapi.ChainPosition) (bool, error) {
	fork, ok := ft.forksByName[forkName]
	if !ok {
		return false, errors.Wrapf(ErrUnknownFork, "%s has no fork %q", ft.networkType, forkName)
	}
	return fork.IsActiveAt(position), nil
}

// IsDefined returns whether the network defines the named fork
func (ft *forkTracker) IsDefined(forkName string) bool {
	_, ok := ft.forksByName[forkName]
	return ok
}

// ActiveForks returns the names of the forks active at position, in
// activation table order
func (ft *forkTracker) ActiveForks(position externalapi.ChainPosition) []string {
	active := make([]string, 0, len(ft.forks))
	for _, fork := range ft.forks {
		if fork.IsActiveAt(position) {
			active = append(active, fork.Name)
		}
	}
	return active
}

// ValidatePinnedBlock returns ErrForkBlockMismatch if the network pins the
// activation block of the named fork at height and blockHash is a different
// block. Forks without a pinned block accept any block.
func (ft *forkTracker) ValidatePinnedBlock(forkName string, height uint32, blockHash *externalapi.DomainHash) error {
	fork, ok := ft.forksByName[forkName]
	if !ok {
		return errors.Wrapf(ErrUnknownFork, "%s has no fork %q", ft.networkType, forkName)
	}
	pinnedHeight, pinned := fork.PinnedHeight()
	if !pinned || pinnedHeight != height || fork.Hash.Equal(blockHash) {
		return nil
	}
	log.Warnf("Rejecting block %s at height %d: fork %s activated at %s",
		blockHash, height, forkName, fork.Hash)
	return ruleerrors.NewErrForkBlockMismatch(forkName, height, fork.Hash, blockHash)
}
