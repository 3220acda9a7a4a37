package model

import "github.com/cashnode/cashd/domain/consensus/model/externalapi"

// DeploymentStateStore represents a store of versionbits states keyed by
// deployment and deciding block
type DeploymentStateStore interface {
	Get(deploymentName string, blockHash *externalapi.DomainHash) (ThresholdState, bool, error)
	Stage(deploymentName string, blockHash *externalapi.DomainHash, state ThresholdState) (bool, error)
	Stats() DeploymentStateStoreStats
}

// DeploymentStateStoreStats counts the lookups and writes a
// DeploymentStateStore served
type DeploymentStateStoreStats struct {
	Hits    uint64
	Misses  uint64
	Writes  uint64
	Ignored uint64
}
