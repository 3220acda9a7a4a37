package model

import "github.com/cashnode/cashd/domain/consensus/model/externalapi"

// CheckpointVerifier compares blocks against the checkpointed history of a
// network
type CheckpointVerifier interface {
	Verify(height uint32, blockHash *externalapi.DomainHash) CheckpointResult
	IsCheckpointed(height uint32) bool
	ValidateBlock(height uint32, blockHash *externalapi.DomainHash) error
	LastCheckpoint() (uint32, *externalapi.DomainHash)
}
