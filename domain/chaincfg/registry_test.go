package chaincfg

import (
	"reflect"
	"testing"

	"github.com/pkg/errors"
)

func TestDefaultRegistry(t *testing.T) {
	expectedTypes := []NetworkType{Mainnet, Testnet, Regtest, Simnet}
	if types := ListTypes(); !reflect.DeepEqual(types, expectedTypes) {
		t.Fatalf("TestDefaultRegistry: expected types %v, got %v", expectedTypes, types)
	}

	for _, expected := range allParams {
		params, err := Get(string(expected.Type))
		if err != nil {
			t.Fatalf("TestDefaultRegistry: Get(%s): %s", expected.Type, err)
		}
		if params != expected {
			t.Fatalf("TestDefaultRegistry: Get(%s) returned the %s table", expected.Type, params.Type)
		}
	}

	for _, name := range []string{"", "mainnet", "testnet3", "MAIN", "devnet"} {
		_, err := Get(name)
		if !errors.Is(err, ErrUnknownNetwork) {
			t.Errorf("TestDefaultRegistry: Get(%q): expected ErrUnknownNetwork, got %v", name, err)
		}
	}

	if DefaultRegistry() != defaultRegistry {
		t.Fatalf("TestDefaultRegistry: DefaultRegistry does not return the default registry")
	}
}

func TestNewRegistry(t *testing.T) {
	registry, err := NewRegistry(&SimnetParams, &RegtestParams)
	if err != nil {
		t.Fatalf("TestNewRegistry: NewRegistry: %s", err)
	}
	expectedTypes := []NetworkType{Simnet, Regtest}
	if types := registry.ListTypes(); !reflect.DeepEqual(types, expectedTypes) {
		t.Fatalf("TestNewRegistry: expected types %v, got %v", expectedTypes, types)
	}
	if _, err := registry.Get(string(Mainnet)); !errors.Is(err, ErrUnknownNetwork) {
		t.Fatalf("TestNewRegistry: expected ErrUnknownNetwork for a network outside the registry, got %v", err)
	}

	err = registry.Register(&RegtestParams)
	if !errors.Is(err, ErrDuplicateNet) {
		t.Fatalf("TestNewRegistry: expected ErrDuplicateNet, got %v", err)
	}

	_, err = NewRegistry(&MainnetParams, &MainnetParams)
	if !errors.Is(err, ErrDuplicateNet) {
		t.Fatalf("TestNewRegistry: expected ErrDuplicateNet from NewRegistry, got %v", err)
	}
}

func TestRegisterRejectsInvalidParams(t *testing.T) {
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("TestRegisterRejectsInvalidParams: NewRegistry: %s", err)
	}

	params := cloneParams(&RegtestParams)
	params.Type = "badnet"
	params.LastCheckpoint = 10
	err = registry.Register(params)
	if !errors.Is(err, ErrInvalidParams) {
		t.Fatalf("TestRegisterRejectsInvalidParams: expected ErrInvalidParams, got %v", err)
	}
	if len(registry.ListTypes()) != 0 {
		t.Fatalf("TestRegisterRejectsInvalidParams: an invalid table was registered")
	}
}

func TestDefaultRegistryIsReadOnly(t *testing.T) {
	devnet := cloneParams(&RegtestParams)
	devnet.Type = "devnet"
	if err := devnet.Validate(); err != nil {
		t.Fatalf("TestDefaultRegistryIsReadOnly: devnet table is invalid: %s", err)
	}

	err := DefaultRegistry().Register(devnet)
	if !errors.Is(err, ErrRegistrySealed) {
		t.Fatalf("TestDefaultRegistryIsReadOnly: expected ErrRegistrySealed, got %v", err)
	}
	if _, err := Get("devnet"); !errors.Is(err, ErrUnknownNetwork) {
		t.Fatalf("TestDefaultRegistryIsReadOnly: expected ErrUnknownNetwork for devnet, got %v", err)
	}
	expectedTypes := []NetworkType{Mainnet, Testnet, Regtest, Simnet}
	if types := ListTypes(); !reflect.DeepEqual(types, expectedTypes) {
		t.Fatalf("TestDefaultRegistryIsReadOnly: expected types %v, got %v", expectedTypes, types)
	}

	// Custom registries stay writable
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("TestDefaultRegistryIsReadOnly: NewRegistry: %s", err)
	}
	if err := registry.Register(devnet); err != nil {
		t.Fatalf("TestDefaultRegistryIsReadOnly: Register into a custom registry: %s", err)
	}
}
