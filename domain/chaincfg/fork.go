package chaincfg

import (
	"github.com/cashnode/cashd/domain/consensus/model/externalapi"
	"github.com/pkg/errors"
)

// Names of the hard forks known to the networks of this package. Not every
// network defines every fork.
const (
	ForkBIP34           = "bip34"
	ForkBIP65           = "bip65"
	ForkBIP66           = "bip66"
	ForkUAHF            = "uahf"
	ForkDAA             = "daa"
	ForkMagneticAnomaly = "magneticAnomaly"
	ForkGreatWall       = "greatWall"
	ForkGraviton        = "graviton"
	ForkPhonon          = "phonon"
	ForkASERT           = "asert"
	ForkAxion           = "axion"
	ForkTachyon         = "tachyon"
	ForkSelectron       = "selectron"
	ForkGluon           = "gluon"
	ForkJefferson       = "jefferson"
	ForkWellington      = "wellington"
)

// ForkActivation is an irreversible consensus rule change gated either by
// block height or by median-time-past. Exactly one of Height and
// ActivationTime is set.
type ForkActivation struct {
	Name string

	// Height gates the fork by block height.
	Height *uint32

	// ActivationTime gates the fork by median-time-past, in Unix seconds.
	ActivationTime *uint32

	// Hash is the block the fork activated at on this network, when pinned.
	// A nil Hash means the activation block is not pinned.
	Hash *externalapi.DomainHash

	// ObservedHeight is the height a time-gated fork actually activated at
	// on this network. It is informational and never gates the fork.
	ObservedHeight *uint32
}

// IsHeightGated returns whether the fork is gated by block height.
func (f *ForkActivation) IsHeightGated() bool {
	return f.Height != nil
}

// IsActiveAt returns whether the fork's rules apply to a block at position.
// Activation is monotonic: once true for a position it is true for every
// later height or median-time-past.
func (f *ForkActivation) IsActiveAt(position externalapi.ChainPosition) bool {
	if f.Height != nil {
		return position.Height >= *f.Height
	}
	return position.MedianTimePast >= *f.ActivationTime
}

// PinnedHeight returns the height Hash refers to, if the fork pins a block.
func (f *ForkActivation) PinnedHeight() (uint32, bool) {
	if f.Hash == nil {
		return 0, false
	}
	if f.Height != nil {
		return *f.Height, true
	}
	if f.ObservedHeight != nil {
		return *f.ObservedHeight, true
	}
	return 0, false
}

func (f *ForkActivation) validate() error {
	if f.Name == "" {
		return errors.New("fork activation has no name")
	}
	if (f.Height == nil) == (f.ActivationTime == nil) {
		return errors.Errorf("fork %s must be gated by exactly one of height and activation time", f.Name)
	}
	if f.Height != nil && f.ObservedHeight != nil {
		return errors.Errorf("fork %s is height gated and cannot have an observed height", f.Name)
	}
	if f.Hash != nil && f.Height == nil && f.ObservedHeight == nil {
		return errors.Errorf("fork %s pins a hash without a height", f.Name)
	}
	return nil
}

// atHeight builds a height gated fork.
func atHeight(name string, height uint32, hash *externalapi.DomainHash) *ForkActivation {
	return &ForkActivation{Name: name, Height: uint32Ptr(height), Hash: hash}
}

// atTime builds a time gated fork with no recorded activation block.
func atTime(name string, activationTime uint32) *ForkActivation {
	return &ForkActivation{Name: name, ActivationTime: uint32Ptr(activationTime)}
}

// atTimeObserved builds a time gated fork whose activation block on this
// network is known.
func atTimeObserved(name string, activationTime uint32, observedHeight uint32,
	hash *externalapi.DomainHash) *ForkActivation {

	return &ForkActivation{
		Name:           name,
		ActivationTime: uint32Ptr(activationTime),
		ObservedHeight: uint32Ptr(observedHeight),
		Hash:           hash,
	}
}
