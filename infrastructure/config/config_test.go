package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/cashnode/cashd/domain/chaincfg"
	"github.com/pkg/errors"
)

func TestResolveNetwork(t *testing.T) {
	tests := []struct {
		name         string
		networkFlags NetworkFlags
		expected     *chaincfg.Params
		expectErr    bool
	}{
		{name: "default", networkFlags: NetworkFlags{}, expected: &chaincfg.MainnetParams},
		{name: "testnet", networkFlags: NetworkFlags{Testnet: true}, expected: &chaincfg.TestnetParams},
		{name: "regtest", networkFlags: NetworkFlags{Regtest: true}, expected: &chaincfg.RegtestParams},
		{name: "simnet", networkFlags: NetworkFlags{Simnet: true}, expected: &chaincfg.SimnetParams},
		{name: "two networks", networkFlags: NetworkFlags{Testnet: true, Simnet: true}, expectErr: true},
	}

	for _, test := range tests {
		networkFlags := test.networkFlags
		err := networkFlags.ResolveNetwork(nil, nil)
		if test.expectErr {
			if err == nil {
				t.Errorf("TestResolveNetwork: %s: expected an error", test.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("TestResolveNetwork: %s: unexpected error: %s", test.name, err)
			continue
		}
		if networkFlags.NetParams() != test.expected {
			t.Errorf("TestResolveNetwork: %s: expected %s, got %s",
				test.name, test.expected.Type, networkFlags.NetParams().Type)
		}
	}
}

func TestResolveNetworkWithRegistry(t *testing.T) {
	registry, err := chaincfg.NewRegistry(&chaincfg.RegtestParams)
	if err != nil {
		t.Fatalf("TestResolveNetworkWithRegistry: NewRegistry: %s", err)
	}

	networkFlags := NetworkFlags{Regtest: true}
	err = networkFlags.ResolveNetwork(nil, registry)
	if err != nil {
		t.Fatalf("TestResolveNetworkWithRegistry: unexpected error: %s", err)
	}
	if networkFlags.NetParams() != &chaincfg.RegtestParams {
		t.Fatalf("TestResolveNetworkWithRegistry: expected regtest, got %s", networkFlags.NetParams().Type)
	}

	networkFlags = NetworkFlags{}
	err = networkFlags.ResolveNetwork(nil, registry)
	if !errors.Is(err, chaincfg.ErrUnknownNetwork) {
		t.Fatalf("TestResolveNetworkWithRegistry: expected ErrUnknownNetwork for mainnet, got %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	appDir, err := ioutil.TempDir("", "TestLoadConfig")
	if err != nil {
		t.Fatalf("TestLoadConfig: TempDir: %s", err)
	}
	defer os.RemoveAll(appDir)

	cfg, remainingArgs, err := LoadConfig([]string{"--simnet", "--appdir", appDir, "extra"})
	if err != nil {
		t.Fatalf("TestLoadConfig: LoadConfig: %s", err)
	}
	if cfg.NetParams() != &chaincfg.SimnetParams {
		t.Fatalf("TestLoadConfig: expected simnet, got %s", cfg.NetParams().Type)
	}
	if len(remainingArgs) != 1 || remainingArgs[0] != "extra" {
		t.Fatalf("TestLoadConfig: unexpected remaining args %v", remainingArgs)
	}

	expectedLogDir := filepath.Join(appDir, "logs", "simnet")
	if cfg.LogDir != expectedLogDir {
		t.Fatalf("TestLoadConfig: expected log dir %s, got %s", expectedLogDir, cfg.LogDir)
	}
	if cfg.LogFile() != filepath.Join(expectedLogDir, defaultLogFilename) {
		t.Fatalf("TestLoadConfig: unexpected log file %s", cfg.LogFile())
	}
	expectedStateCacheDir := filepath.Join(appDir, "simnet", "statecache")
	if cfg.StateCacheDir != expectedStateCacheDir {
		t.Fatalf("TestLoadConfig: expected state cache dir %s, got %s", expectedStateCacheDir, cfg.StateCacheDir)
	}
	if cfg.StateCacheSize != DefaultStateCacheSize {
		t.Fatalf("TestLoadConfig: expected state cache size %d, got %d", DefaultStateCacheSize, cfg.StateCacheSize)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"two networks", []string{"--testnet", "--regtest"}},
		{"bad debug level", []string{"--debuglevel", "loud"}},
		{"bad subsystem", []string{"--debuglevel", "NOPE=debug"}},
		{"empty state cache", []string{"--statecachesize", "0"}},
		{"unknown flag", []string{"--devnet"}},
	}

	for _, test := range tests {
		_, _, err := LoadConfig(test.args)
		if err == nil {
			t.Errorf("TestLoadConfigErrors: %s: expected an error", test.name)
		}
	}
}

func TestCleanAndExpandPath(t *testing.T) {
	homeDir := filepath.Dir(DefaultAppDir)
	os.Setenv("CASHD_TEST_DIR", "/tmp/cashd-test")
	defer os.Unsetenv("CASHD_TEST_DIR")

	tests := []struct {
		path     string
		expected string
	}{
		{"~/data", filepath.Join(homeDir, "data")},
		{"$CASHD_TEST_DIR/logs", "/tmp/cashd-test/logs"},
		{"/var/lib/../lib/cashd/", "/var/lib/cashd"},
	}

	for _, test := range tests {
		if result := cleanAndExpandPath(test.path); result != test.expected {
			t.Errorf("TestCleanAndExpandPath: %s: expected %s, got %s", test.path, test.expected, result)
		}
	}
}
