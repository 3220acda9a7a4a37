package checkpointverifier

import (
	"github.com/cashnode/cashd/domain/chaincfg"
	"github.com/cashnode/cashd/domain/consensus/model"
	"github.com/cashnode/cashd/domain/consensus/model/externalapi"
	"github.com/cashnode/cashd/domain/consensus/ruleerrors"
)

// checkpointVerifier compares blocks against the checkpointed history of a
// single network
type checkpointVerifier struct {
	checkpoints    map[uint32]*externalapi.DomainHash
	lastCheckpoint uint32
}

// New instantiates a new CheckpointVerifier for the network defined by params
func New(params *chaincfg.Params) model.CheckpointVerifier {
	return &checkpointVerifier{
		checkpoints:    params.Checkpoints,
		lastCheckpoint: params.LastCheckpoint,
	}
}

// Verify compares blockHash against the checkpoint at height, if any
func (cv *checkpointVerifier) Verify(height uint32, blockHash *externalapi.DomainHash) model.CheckpointResult {
	expected, ok := cv.checkpoints[height]
	if !ok {
		return model.NoCheckpoint
	}
	if !expected.Equal(blockHash) {
		return model.CheckpointMismatch
	}
	return model.CheckpointMatch
}

// IsCheckpointed returns whether height is at or below the last checkpoint,
// where history is known to be good and expensive historical checks may be
// skipped.
func (cv *checkpointVerifier) IsCheckpointed(height uint32) bool {
	return height <= cv.lastCheckpoint
}

// ValidateBlock returns ErrCheckpointMismatch if the block conflicts with
// the checkpoint at its height.
func (cv *checkpointVerifier) ValidateBlock(height uint32, blockHash *externalapi.DomainHash) error {
	if cv.Verify(height, blockHash) != model.CheckpointMismatch {
		return nil
	}
	expected := cv.checkpoints[height]
	log.Warnf("Rejecting block %s at height %d: checkpoint is %s", blockHash, height, expected)
	return ruleerrors.NewErrCheckpointMismatch(height, expected, blockHash)
}

// LastCheckpoint returns the height of the last checkpoint and the hash
// recorded there. The hash is nil on networks without checkpoints.
func (cv *checkpointVerifier) LastCheckpoint() (uint32, *externalapi.DomainHash) {
	return cv.lastCheckpoint, cv.checkpoints[cv.lastCheckpoint]
}
