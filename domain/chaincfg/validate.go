package chaincfg

import (
	"github.com/cashnode/cashd/domain/consensus/utils/math"
	"github.com/pkg/errors"
)

var (
	// ErrInvalidParams describes a parameter table that is internally
	// inconsistent.
	ErrInvalidParams = errors.New("invalid network parameters")

	// ErrDeploymentConfigConflict describes two deployments of one network
	// that signal on the same bit during overlapping time windows.
	ErrDeploymentConfigConflict = errors.New("deployment configuration conflict")
)

// Validate checks the invariants of a parameter table. Tables are checked
// once when they are registered; a process must refuse to start with an
// invalid table.
func (p *Params) Validate() error {
	validators := []func() error{
		p.validateIdentity,
		p.validateGenesis,
		p.validatePow,
		p.validateCheckpoints,
		p.validateForks,
		p.validateDeployments,
		p.validateKeyPrefix,
	}
	for _, validate := range validators {
		if err := validate(); err != nil {
			return err
		}
	}
	return nil
}

func (p *Params) invalid(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidParams, "%s: "+format, append([]interface{}{p.Type}, args...)...)
}

func (p *Params) validateIdentity() error {
	if p.Type == "" {
		return errors.Wrapf(ErrInvalidParams, "network has no type")
	}
	if p.Magic == 0 {
		return p.invalid("magic is zero")
	}
	return nil
}

func (p *Params) validateGenesis() error {
	if p.Genesis == nil {
		return p.invalid("no genesis block")
	}
	if err := p.Genesis.Verify(); err != nil {
		return errors.Wrapf(err, "%s", p.Type)
	}
	if err := p.Pow.CheckTargetRange(p.Genesis.Header.Bits); err != nil {
		return errors.Wrapf(err, "%s: genesis bits", p.Type)
	}
	return nil
}

func (p *Params) validatePow() error {
	if p.Pow.Limit == nil || p.Pow.Limit.Sign() <= 0 {
		return p.invalid("proof of work limit must be positive")
	}
	if p.Pow.ChainWork == nil || p.Pow.ChainWork.Sign() < 0 {
		return p.invalid("minimum chain work must not be negative")
	}
	if bits := math.BigToCompact(p.Pow.Limit); bits != p.Pow.Bits {
		return p.invalid("proof of work limit encodes to %08x, but bits are %08x", bits, p.Pow.Bits)
	}
	if p.Pow.RetargetInterval == 0 {
		return p.invalid("retarget interval is zero")
	}
	return nil
}

func (p *Params) validateCheckpoints() error {
	if len(p.Checkpoints) == 0 {
		if p.LastCheckpoint != 0 {
			return p.invalid("last checkpoint %d without checkpoints", p.LastCheckpoint)
		}
		return nil
	}
	if _, ok := p.Checkpoints[p.LastCheckpoint]; !ok {
		return p.invalid("last checkpoint %d is not a checkpoint", p.LastCheckpoint)
	}
	for height, hash := range p.Checkpoints {
		if hash == nil {
			return p.invalid("checkpoint at height %d has no hash", height)
		}
	}
	if genesisCheckpoint, ok := p.Checkpoints[0]; ok && !genesisCheckpoint.Equal(p.Genesis.Hash) {
		return p.invalid("checkpoint at height 0 is not the genesis block")
	}
	return nil
}

func (p *Params) validateForks() error {
	seen := make(map[string]struct{}, len(p.Block.Forks))
	for _, fork := range p.Block.Forks {
		if err := fork.validate(); err != nil {
			return errors.Wrapf(ErrInvalidParams, "%s: %s", p.Type, err)
		}
		if _, ok := seen[fork.Name]; ok {
			return p.invalid("fork %s is defined twice", fork.Name)
		}
		seen[fork.Name] = struct{}{}

		height, pinned := fork.PinnedHeight()
		if !pinned {
			continue
		}
		if height == 0 && !fork.Hash.Equal(p.Genesis.Hash) {
			return p.invalid("fork %s pins height 0 to a block that is not the genesis block", fork.Name)
		}
		if checkpoint, ok := p.Checkpoints[height]; ok && !checkpoint.Equal(fork.Hash) {
			return p.invalid("fork %s pins height %d to %s, but the checkpoint is %s",
				fork.Name, height, fork.Hash, checkpoint)
		}
	}
	return nil
}

func (p *Params) validateDeployments() error {
	if p.MinerWindow == 0 || p.ActivationThreshold == 0 || p.ActivationThreshold > p.MinerWindow {
		return p.invalid("activation threshold %d does not fit the miner window %d",
			p.ActivationThreshold, p.MinerWindow)
	}
	if len(p.Deployments) != len(p.Deploys) {
		return p.invalid("%d deployments are indexed but %d are listed", len(p.Deployments), len(p.Deploys))
	}
	for i, deployment := range p.Deploys {
		if err := deployment.validate(p); err != nil {
			return errors.Wrapf(ErrInvalidParams, "%s: %s", p.Type, err)
		}
		if indexed, ok := p.Deployments[deployment.Name]; !ok || indexed != deployment {
			return p.invalid("deployment %s is not indexed by its name", deployment.Name)
		}
		for _, previous := range p.Deploys[:i] {
			if previous.Overlaps(deployment) {
				return errors.Wrapf(ErrDeploymentConfigConflict,
					"%s: deployments %s and %s both signal on bit %d during overlapping windows",
					p.Type, previous.Name, deployment.Name, deployment.Bit)
			}
		}
	}
	return nil
}
