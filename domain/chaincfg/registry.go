package chaincfg

import (
	"sync"

	"github.com/pkg/errors"
)

var (
	// ErrDuplicateNet describes an error where the parameters for a network
	// could not be set due to the network already being a standard network
	// or previously-registered into a registry.
	ErrDuplicateNet = errors.New("duplicate network")

	// ErrUnknownNetwork describes a lookup of a network no registry entry
	// exists for.
	ErrUnknownNetwork = errors.New("unknown network")

	// ErrRegistrySealed describes an attempt to register a network into a
	// registry that is read-only, such as the default registry.
	ErrRegistrySealed = errors.New("registry is read-only")
)

// Registry maps network types to their validated parameter tables.
type Registry struct {
	mtx    sync.RWMutex
	nets   map[NetworkType]*Params
	order  []NetworkType
	sealed bool
}

// NewRegistry returns a registry holding params, in the given order.
func NewRegistry(params ...*Params) (*Registry, error) {
	registry := &Registry{nets: make(map[NetworkType]*Params, len(params))}
	for _, p := range params {
		if err := registry.Register(p); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

// Register validates params and adds them to the registry. This may error
// with ErrDuplicateNet if the network is already registered, with
// ErrRegistrySealed if the registry is read-only, or with the validation
// error of the table.
func (r *Registry) Register(params *Params) error {
	r.mtx.RLock()
	sealed := r.sealed
	r.mtx.RUnlock()
	if sealed {
		return errors.Wrapf(ErrRegistrySealed, "cannot register %s", params.Type)
	}
	return r.register(params)
}

func (r *Registry) register(params *Params) error {
	if err := params.Validate(); err != nil {
		return err
	}

	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.nets[params.Type]; ok {
		return errors.Wrapf(ErrDuplicateNet, "%s", params.Type)
	}
	r.nets[params.Type] = params
	r.order = append(r.order, params.Type)
	log.Debugf("Registered network %s", params.Type)
	return nil
}

// Get returns the parameter table of the named network.
func (r *Registry) Get(networkType string) (*Params, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	params, ok := r.nets[NetworkType(networkType)]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownNetwork, "%q", networkType)
	}
	return params, nil
}

// ListTypes returns the registered network types in registration order.
func (r *Registry) ListTypes() []NetworkType {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	types := make([]NetworkType, len(r.order))
	copy(types, r.order)
	return types
}

var defaultRegistry = &Registry{nets: make(map[NetworkType]*Params)}

// Get returns the parameter table of the named network from the default
// registry.
func Get(networkType string) (*Params, error) {
	return defaultRegistry.Get(networkType)
}

// ListTypes returns the network types of the default registry.
func ListTypes() []NetworkType {
	return defaultRegistry.ListTypes()
}

// DefaultRegistry returns the read-only registry holding the standard
// networks main, testnet, regtest and simnet.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// mustRegister adds params to the default registry and panics if there is an
// error. This should only be called from package init functions.
func mustRegister(params *Params) {
	if err := defaultRegistry.register(params); err != nil {
		panic("failed to register network: " + err.Error())
	}
}

func init() {
	// Register all default networks when the package is initialized.
	mustRegister(&MainnetParams)
	mustRegister(&TestnetParams)
	mustRegister(&RegtestParams)
	mustRegister(&SimnetParams)

	defaultRegistry.sealed = true
}
