package serialization

import (
	"testing"

	"github.com/cashnode/cashd/domain/consensus/model"
	"github.com/cashnode/cashd/domain/consensus/model/externalapi"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestDeploymentStateRecord(t *testing.T) {
	hash := externalapi.NewDomainHashFromByteArray(&[externalapi.DomainHashSize]byte{1, 2, 3})
	otherHash := externalapi.NewDomainHashFromByteArray(&[externalapi.DomainHashSize]byte{4})

	record := DeploymentStateToDBDeploymentState("csv", hash, model.ThresholdLockedIn)
	var decoded DbDeploymentState
	err := decoded.Unmarshal(record.Marshal())
	if err != nil {
		t.Fatalf("TestDeploymentStateRecord: Unmarshal: %s", err)
	}
	state, err := DBDeploymentStateToDeploymentState(&decoded, "csv", hash)
	if err != nil {
		t.Fatalf("TestDeploymentStateRecord: DBDeploymentStateToDeploymentState: %s", err)
	}
	if state != model.ThresholdLockedIn {
		t.Fatalf("TestDeploymentStateRecord: expected %s, got %s", model.ThresholdLockedIn, state)
	}

	if _, err := DBDeploymentStateToDeploymentState(&decoded, "testdummy", hash); err == nil {
		t.Fatalf("TestDeploymentStateRecord: a record of another deployment was accepted")
	}
	if _, err := DBDeploymentStateToDeploymentState(&decoded, "csv", otherHash); err == nil {
		t.Fatalf("TestDeploymentStateRecord: a record of another block was accepted")
	}

	decoded.State = 17
	if _, err := DBDeploymentStateToDeploymentState(&decoded, "csv", hash); err == nil {
		t.Fatalf("TestDeploymentStateRecord: an invalid state was accepted")
	}
}

func TestDeploymentStateRecordUnknownFields(t *testing.T) {
	hash := externalapi.NewDomainHashFromByteArray(&[externalapi.DomainHashSize]byte{9})
	encoded := DeploymentStateToDBDeploymentState("csv", hash, model.ThresholdActive).Marshal()
	encoded = protowire.AppendTag(encoded, 15, protowire.VarintType)
	encoded = protowire.AppendVarint(encoded, 300)

	var decoded DbDeploymentState
	if err := decoded.Unmarshal(encoded); err != nil {
		t.Fatalf("TestDeploymentStateRecordUnknownFields: Unmarshal: %s", err)
	}
	if decoded.State != uint32(model.ThresholdActive) || decoded.DeploymentName != "csv" {
		t.Fatalf("TestDeploymentStateRecordUnknownFields: unexpected record %+v", decoded)
	}

	if err := decoded.Unmarshal(encoded[:len(encoded)-1]); err == nil {
		t.Fatalf("TestDeploymentStateRecordUnknownFields: a truncated record was accepted")
	}
}
