package model

import "github.com/cashnode/cashd/domain/consensus/model/externalapi"

// ForkTracker resolves whether the hard forks of a network apply at a chain
// position
type ForkTracker interface {
	IsActive(forkName string, position externalapi.ChainPosition) (bool, error)
	IsDefined(forkName string) bool
	ActiveForks(position externalapi.ChainPosition) []string
	ValidatePinnedBlock(forkName string, height uint32, blockHash *externalapi.DomainHash) error
}
