package model

import "github.com/cashnode/cashd/domain/consensus/model/externalapi"

// VersionbitsEngine computes the BIP9 state of a network's deployments
type VersionbitsEngine interface {
	StateAt(deploymentName string, position externalapi.ChainPosition,
		ancestors AncestorSource) (*DeploymentState, error)
	ReplayStates(deploymentName string, samples []WindowSample) ([]ThresholdState, error)
	NextBlockVersion(tipHeight uint32, ancestors AncestorSource) (uint32, error)
}
