package chaincfg

import (
	"github.com/pkg/errors"
)

// Names of the versionbits deployments known to the networks of this package.
const (
	DeploymentCSV       = "csv"
	DeploymentTestDummy = "testdummy"
)

// MaxDeploymentBit is the highest version bit a deployment may signal on.
// The top three bits of the version are the versionbits marker.
const MaxDeploymentBit = 28

// useNetworkDefault in Threshold or Window selects the network's
// ActivationThreshold or MinerWindow.
const useNetworkDefault = -1

// DeploymentSpec defines details related to a specific consensus rule
// change that is voted in. This is part of BIP0009.
type DeploymentSpec struct {
	// Name uniquely identifies the deployment within a network.
	Name string

	// Bit defines the specific bit number within the block version
	// this particular soft-fork deployment refers to.
	Bit uint8

	// StartTime is the median block time after which voting on the
	// deployment starts.
	StartTime uint32

	// Timeout is the median block time after which the attempted
	// deployment expires.
	Timeout uint32

	// Threshold and Window override the network's ActivationThreshold
	// and MinerWindow. -1 selects the network default.
	Threshold int32
	Window    int32

	// Required means blocks not satisfying the deployment are rejected once
	// it is active.
	Required bool

	// Force means the deployment's rules are in force from genesis,
	// regardless of the state signaling puts it in.
	Force bool
}

// ResolvedThreshold returns the signaling count needed to lock in.
func (d *DeploymentSpec) ResolvedThreshold(params *Params) uint32 {
	if d.Threshold == useNetworkDefault {
		return params.ActivationThreshold
	}
	return uint32(d.Threshold)
}

// ResolvedWindow returns the number of blocks in a signaling window.
func (d *DeploymentSpec) ResolvedWindow(params *Params) uint32 {
	if d.Window == useNetworkDefault {
		return params.MinerWindow
	}
	return uint32(d.Window)
}

// Overlaps returns whether both deployments could be signaling at the same
// time on the same bit.
func (d *DeploymentSpec) Overlaps(other *DeploymentSpec) bool {
	return d.Bit == other.Bit && d.StartTime < other.Timeout && other.StartTime < d.Timeout
}

func (d *DeploymentSpec) validate(params *Params) error {
	if d.Name == "" {
		return errors.New("deployment has no name")
	}
	if d.Bit > MaxDeploymentBit {
		return errors.Errorf("deployment %s signals on bit %d, above the maximum of %d",
			d.Name, d.Bit, MaxDeploymentBit)
	}
	if d.StartTime > d.Timeout {
		return errors.Errorf("deployment %s starts at %d, after its timeout %d", d.Name, d.StartTime, d.Timeout)
	}
	if d.Threshold < useNetworkDefault || d.Window < useNetworkDefault {
		return errors.Errorf("deployment %s has a negative threshold or window", d.Name)
	}
	window := d.ResolvedWindow(params)
	if window == 0 {
		return errors.Errorf("deployment %s has an empty signaling window", d.Name)
	}
	if threshold := d.ResolvedThreshold(params); threshold == 0 || threshold > window {
		return errors.Errorf("deployment %s needs %d signals in a window of %d", d.Name, threshold, window)
	}
	return nil
}

// deploymentMap indexes deploys by name. Duplicates are reported by
// Params.Validate, which compares the map against the slice.
func deploymentMap(deploys []*DeploymentSpec) map[string]*DeploymentSpec {
	deployments := make(map[string]*DeploymentSpec, len(deploys))
	for _, deployment := range deploys {
		deployments[deployment.Name] = deployment
	}
	return deployments
}
