package checkpointverifier

import (
	"testing"

	"github.com/cashnode/cashd/domain/chaincfg"
	"github.com/cashnode/cashd/domain/consensus/model"
	"github.com/cashnode/cashd/domain/consensus/model/externalapi"
	"github.com/cashnode/cashd/domain/consensus/ruleerrors"
	"github.com/pkg/errors"
)

func hashFromString(t *testing.T, hashString string) *externalapi.DomainHash {
	hash, err := externalapi.NewDomainHashFromString(hashString)
	if err != nil {
		t.Fatalf("NewDomainHashFromString: %s", err)
	}
	return hash
}

func TestVerify(t *testing.T) {
	testnet546 := hashFromString(t, "70cb6af7ebbcb1315d3414029c556c55f3e2fc353c4c9063a76c932a00000000")
	other := hashFromString(t, "0000000000000000000000000000000000000000000000000000000000000546")

	tests := []struct {
		name     string
		params   *chaincfg.Params
		height   uint32
		hash     *externalapi.DomainHash
		expected model.CheckpointResult
	}{
		{"testnet checkpoint", &chaincfg.TestnetParams, 546, testnet546, model.CheckpointMatch},
		{"testnet wrong hash", &chaincfg.TestnetParams, 546, other, model.CheckpointMismatch},
		{"testnet zero hash", &chaincfg.TestnetParams, 546, &externalapi.DomainHash{}, model.CheckpointMismatch},
		{"testnet no checkpoint", &chaincfg.TestnetParams, 547, testnet546, model.NoCheckpoint},
		{"mainnet has no checkpoint at 546", &chaincfg.MainnetParams, 546, testnet546, model.NoCheckpoint},
		{"regtest has no checkpoints", &chaincfg.RegtestParams, 546, testnet546, model.NoCheckpoint},
	}

	for _, test := range tests {
		verifier := New(test.params)
		result := verifier.Verify(test.height, test.hash)
		if result != test.expected {
			t.Errorf("TestVerify: %s: expected %s, got %s", test.name, test.expected, result)
		}
	}
}

func TestVerifyEveryCheckpoint(t *testing.T) {
	for _, params := range []*chaincfg.Params{&chaincfg.MainnetParams, &chaincfg.TestnetParams} {
		verifier := New(params)
		for height, hash := range params.Checkpoints {
			if result := verifier.Verify(height, hash); result != model.CheckpointMatch {
				t.Errorf("TestVerifyEveryCheckpoint: %s: height %d: expected Match, got %s",
					params.Type, height, result)
			}
			if !verifier.IsCheckpointed(height) && height <= params.LastCheckpoint {
				t.Errorf("TestVerifyEveryCheckpoint: %s: height %d is not checkpointed", params.Type, height)
			}
		}
	}
}

func TestIsCheckpointed(t *testing.T) {
	tests := []struct {
		params   *chaincfg.Params
		height   uint32
		expected bool
	}{
		{&chaincfg.MainnetParams, 0, true},
		{&chaincfg.MainnetParams, 525000, true},
		{&chaincfg.MainnetParams, 525001, false},
		{&chaincfg.MainnetParams, 766195, false},
		{&chaincfg.TestnetParams, 1341712, true},
		{&chaincfg.TestnetParams, 1378461, false},
		{&chaincfg.RegtestParams, 0, true},
		{&chaincfg.RegtestParams, 1, false},
	}

	for _, test := range tests {
		result := New(test.params).IsCheckpointed(test.height)
		if result != test.expected {
			t.Errorf("TestIsCheckpointed: %s: height %d: expected %t, got %t",
				test.params.Type, test.height, test.expected, result)
		}
	}
}

func TestValidateBlock(t *testing.T) {
	verifier := New(&chaincfg.TestnetParams)
	testnet546 := hashFromString(t, "70cb6af7ebbcb1315d3414029c556c55f3e2fc353c4c9063a76c932a00000000")
	other := hashFromString(t, "0000000000000000000000000000000000000000000000000000000000000546")

	if err := verifier.ValidateBlock(546, testnet546); err != nil {
		t.Fatalf("TestValidateBlock: checkpointed block rejected: %s", err)
	}
	if err := verifier.ValidateBlock(547, other); err != nil {
		t.Fatalf("TestValidateBlock: block without checkpoint rejected: %s", err)
	}

	err := verifier.ValidateBlock(546, other)
	if !errors.Is(err, ruleerrors.ErrCheckpointMismatch) {
		t.Fatalf("TestValidateBlock: expected ErrCheckpointMismatch, got %v", err)
	}
	var ruleErr ruleerrors.RuleError
	if !errors.As(err, &ruleErr) {
		t.Fatalf("TestValidateBlock: mismatch is not a RuleError: %v", err)
	}
	var hashErr ruleerrors.ErrUnexpectedBlockHash
	if !errors.As(err, &hashErr) {
		t.Fatalf("TestValidateBlock: mismatch does not carry the hashes: %v", err)
	}
	if hashErr.Height != 546 || !hashErr.Expected.Equal(testnet546) || !hashErr.Actual.Equal(other) {
		t.Fatalf("TestValidateBlock: unexpected mismatch details %+v", hashErr)
	}
}

func TestLastCheckpoint(t *testing.T) {
	height, hash := New(&chaincfg.MainnetParams).LastCheckpoint()
	expected := hashFromString(t, "c994fba2bf168333fd969bcfa64f03ca1b62074f9a8f1b010000000000000000")
	if height != 525000 || !hash.Equal(expected) {
		t.Fatalf("TestLastCheckpoint: unexpected mainnet last checkpoint %d %s", height, hash)
	}

	height, hash = New(&chaincfg.SimnetParams).LastCheckpoint()
	if height != 0 || hash != nil {
		t.Fatalf("TestLastCheckpoint: unexpected simnet last checkpoint %d %s", height, hash)
	}
}
