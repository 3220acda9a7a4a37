package versionbitsengine

import (
	"github.com/cashnode/cashd/domain/chaincfg"
	"github.com/cashnode/cashd/domain/consensus/model"
)

const (
	// VersionBitsTopMask selects the bits of a block version that mark it as
	// a versionbits version.
	VersionBitsTopMask = 0xe0000000

	// VersionBitsTopBits is the value of the masked bits of a versionbits
	// version.
	VersionBitsTopBits = 0x20000000
)

// IsSignaling returns whether a block of the given version signals the given
// deployment bit.
func IsSignaling(version uint32, bit uint8) bool {
	return version&VersionBitsTopMask == VersionBitsTopBits && version&(uint32(1)<<bit) != 0
}

// Transition returns the state a deployment moves to at a window boundary,
// given the state of the previous window and what the state machine sees of
// the window that just completed. The signal count only matters from
// ThresholdStarted.
func Transition(deployment *chaincfg.DeploymentSpec, threshold uint32, prev model.ThresholdState,
	sample model.WindowSample) model.ThresholdState {

	if prev.IsTerminal() {
		return prev
	}

	switch prev {
	case model.ThresholdDefined:
		if sample.MedianTimePast >= deployment.Timeout {
			return model.ThresholdFailed
		}
		if sample.MedianTimePast >= deployment.StartTime {
			return model.ThresholdStarted
		}
		return model.ThresholdDefined

	case model.ThresholdStarted:
		if sample.MedianTimePast >= deployment.Timeout {
			return model.ThresholdFailed
		}
		if sample.SignalCount >= threshold {
			return model.ThresholdLockedIn
		}
		return model.ThresholdStarted

	case model.ThresholdLockedIn:
		return model.ThresholdActive
	}
	return prev
}

// Replay runs the state machine from genesis over the given window samples
// and returns the state after each of them.
func Replay(deployment *chaincfg.DeploymentSpec, threshold uint32, samples []model.WindowSample) []model.ThresholdState {
	states := make([]model.ThresholdState, len(samples))
	state := model.ThresholdDefined
	for i, sample := range samples {
		state = Transition(deployment, threshold, state, sample)
		states[i] = state
	}
	return states
}
