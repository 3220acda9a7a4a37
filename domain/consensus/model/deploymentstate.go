package model

// DeploymentState is the versionbits state of one deployment for one block.
type DeploymentState struct {
	// State is the nominal state the signaling history puts the deployment in.
	State ThresholdState

	// Active reports whether the deployment's rules apply to the block. It is
	// true when State is ThresholdActive and for forced deployments.
	Active bool

	// Forced reports whether the deployment bypasses signaling.
	Forced bool

	ResolvedThreshold uint32
	ResolvedWindow    uint32
}

// WindowSample is what the state machine sees of a completed signaling
// window: the median time past of its last block and how many of its blocks
// signaled the deployment.
type WindowSample struct {
	MedianTimePast uint32
	SignalCount    uint32
}
