package model

// CheckpointResult is the outcome of comparing a block against the
// checkpoint at its height.
type CheckpointResult byte

// The possible outcomes of a checkpoint lookup.
const (
	// NoCheckpoint means there is no checkpoint at the height and the
	// normal validation rules alone govern the block.
	NoCheckpoint CheckpointResult = iota

	// CheckpointMatch means the block is the checkpointed block.
	CheckpointMatch

	// CheckpointMismatch means the block conflicts with the checkpoint and
	// must be rejected.
	CheckpointMismatch
)

func (r CheckpointResult) String() string {
	switch r {
	case NoCheckpoint:
		return "NoCheckpoint"
	case CheckpointMatch:
		return "Match"
	case CheckpointMismatch:
		return "Mismatch"
	}
	return "Unknown"
}
