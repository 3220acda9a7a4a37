package versionbitsengine

import (
	"fmt"
	"math"

	"github.com/cashnode/cashd/domain/chaincfg"
	"github.com/cashnode/cashd/domain/consensus/model"
	"github.com/cashnode/cashd/domain/consensus/model/externalapi"
	"github.com/cashnode/cashd/infrastructure/logger"
	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"
)

// ErrUnknownDeployment indicates a state query for a deployment the network
// does not define.
var ErrUnknownDeployment = errors.New("unknown deployment")

// versionbitsEngine computes deployment states by replaying window
// boundaries from the nearest known state. Every state it computes is
// staged in the deployment state store, keyed by the block that decided it.
type versionbitsEngine struct {
	params *chaincfg.Params
	store  model.DeploymentStateStore

	// computations collapses concurrent computations of the state decided
	// by the same block.
	computations singleflight.Group
}

// New instantiates a new VersionbitsEngine for the network defined by
// params. store must not be nil.
func New(params *chaincfg.Params, store model.DeploymentStateStore) model.VersionbitsEngine {
	return &versionbitsEngine{
		params: params,
		store:  store,
	}
}

func (vbe *versionbitsEngine) deployment(deploymentName string) (*chaincfg.DeploymentSpec, error) {
	deployment, ok := vbe.params.Deployment(deploymentName)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownDeployment, "%s has no deployment %q", vbe.params.Type, deploymentName)
	}
	return deployment, nil
}

// StateAt returns the state of the given deployment for the block at
// position. ancestors must provide every block below position.Height.
func (vbe *versionbitsEngine) StateAt(deploymentName string, position externalapi.ChainPosition,
	ancestors model.AncestorSource) (*model.DeploymentState, error) {

	deployment, err := vbe.deployment(deploymentName)
	if err != nil {
		return nil, err
	}
	window := deployment.ResolvedWindow(vbe.params)
	threshold := deployment.ResolvedThreshold(vbe.params)

	state := model.ThresholdDefined
	if position.Height >= window {
		decidingHeight := position.Height - position.Height%window - 1
		state, err = vbe.stateDecidedBy(deployment, window, threshold, decidingHeight, ancestors)
		if err != nil {
			return nil, err
		}
	}

	return &model.DeploymentState{
		State:             state,
		Active:            state == model.ThresholdActive || deployment.Force,
		Forced:            deployment.Force,
		ResolvedThreshold: threshold,
		ResolvedWindow:    window,
	}, nil
}

// stateDecidedBy returns the state decided by the last block of a window,
// which is the state of every block of the following window.
func (vbe *versionbitsEngine) stateDecidedBy(deployment *chaincfg.DeploymentSpec, window, threshold uint32,
	decidingHeight uint32, ancestors model.AncestorSource) (model.ThresholdState, error) {

	decidingBlock, err := ancestors.BlockAt(decidingHeight)
	if err != nil {
		return 0, err
	}

	computationKey := fmt.Sprintf("%s:%s", deployment.Name, decidingBlock.Hash)
	result, err, _ := vbe.computations.Do(computationKey, func() (interface{}, error) {
		return vbe.computeState(deployment, window, threshold, decidingBlock, ancestors)
	})
	if err != nil {
		return 0, err
	}
	return result.(model.ThresholdState), nil
}

func (vbe *versionbitsEngine) computeState(deployment *chaincfg.DeploymentSpec, window, threshold uint32,
	decidingBlock *externalapi.BlockInfo, ancestors model.AncestorSource) (model.ThresholdState, error) {

	onEnd := logger.LogAndMeasureExecutionTime(log, "computeState")
	defer onEnd()

	// Walk back one window at a time until reaching a known state. The
	// deciding blocks walked over are stacked newest first.
	var pending []*externalapi.BlockInfo
	state := model.ThresholdDefined
	block := decidingBlock
	for {
		cachedState, found, err := vbe.store.Get(deployment.Name, block.Hash)
		if err != nil {
			return 0, err
		}
		if found {
			state = cachedState
			break
		}

		// Median time past only grows, so nothing before this block
		// could have started the deployment.
		if block.MedianTimePast < deployment.StartTime {
			state = model.ThresholdDefined
			_, err := vbe.store.Stage(deployment.Name, block.Hash, state)
			if err != nil {
				return 0, err
			}
			break
		}

		pending = append(pending, block)
		if block.Height < window {
			break
		}
		block, err = ancestors.BlockAt(block.Height - window)
		if err != nil {
			return 0, err
		}
	}

	// Replay the walked boundaries oldest first
	for i := len(pending) - 1; i >= 0; i-- {
		block := pending[i]
		sample := model.WindowSample{MedianTimePast: block.MedianTimePast}
		if state == model.ThresholdStarted {
			signalCount, err := countSignals(deployment.Bit, window, block.Height, ancestors)
			if err != nil {
				return 0, err
			}
			sample.SignalCount = signalCount
		}

		nextState := Transition(deployment, threshold, state, sample)
		if nextState != state {
			log.Debugf("Deployment %s moves from %s to %s at block %s (height %d)",
				deployment.Name, state, nextState, block.Hash, block.Height)
		}
		state = nextState

		_, err := vbe.store.Stage(deployment.Name, block.Hash, state)
		if err != nil {
			return 0, err
		}
	}
	return state, nil
}

// countSignals counts the blocks of the window ending at lastHeight that
// signal bit.
func countSignals(bit uint8, window uint32, lastHeight uint32, ancestors model.AncestorSource) (uint32, error) {
	signalCount := uint32(0)
	for height := lastHeight - window + 1; height <= lastHeight; height++ {
		block, err := ancestors.BlockAt(height)
		if err != nil {
			return 0, err
		}
		if IsSignaling(block.Version, bit) {
			signalCount++
		}
	}
	return signalCount, nil
}

// ReplayStates runs the state machine of the given deployment from genesis
// over the given window samples and returns the state after each of them.
func (vbe *versionbitsEngine) ReplayStates(deploymentName string, samples []model.WindowSample) (
	[]model.ThresholdState, error) {

	deployment, err := vbe.deployment(deploymentName)
	if err != nil {
		return nil, err
	}
	return Replay(deployment, deployment.ResolvedThreshold(vbe.params), samples), nil
}

// NextBlockVersion returns the block version a miner building on the block
// at tipHeight should use: the versionbits marker and the bit of every
// deployment that is started or locked in for the next block.
func (vbe *versionbitsEngine) NextBlockVersion(tipHeight uint32, ancestors model.AncestorSource) (uint32, error) {
	if tipHeight == math.MaxUint32 {
		return 0, errors.Errorf("no block can follow height %d", tipHeight)
	}
	position := externalapi.ChainPosition{Height: tipHeight + 1}

	version := uint32(VersionBitsTopBits)
	for _, deployment := range vbe.params.Deploys {
		deploymentState, err := vbe.StateAt(deployment.Name, position, ancestors)
		if err != nil {
			return 0, err
		}
		if deploymentState.State == model.ThresholdStarted || deploymentState.State == model.ThresholdLockedIn {
			version |= uint32(1) << deployment.Bit
		}
	}
	return version, nil
}
