package serialization

import (
	"github.com/cashnode/cashd/domain/consensus/database/binaryserialization"
	"github.com/cashnode/cashd/domain/consensus/model"
	"github.com/cashnode/cashd/domain/consensus/model/externalapi"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers of DbDeploymentState in the protobuf wire format.
const (
	deploymentNameField protowire.Number = 1
	blockHashField      protowire.Number = 2
	stateField          protowire.Number = 3
)

// DbDeploymentState is the stored form of a versionbits state. The
// deployment name and deciding block are kept alongside the state so a
// record can be checked against the key it was read from.
type DbDeploymentState struct {
	DeploymentName string
	BlockHash      []byte
	State          uint32
}

// DeploymentStateToDBDeploymentState converts a state and the key it is
// stored under to DbDeploymentState
func DeploymentStateToDBDeploymentState(deploymentName string, blockHash *externalapi.DomainHash,
	state model.ThresholdState) *DbDeploymentState {

	return &DbDeploymentState{
		DeploymentName: deploymentName,
		BlockHash:      binaryserialization.SerializeHash(blockHash),
		State:          uint32(state),
	}
}

// DBDeploymentStateToDeploymentState converts DbDeploymentState to a
// ThresholdState, checking it belongs to the given deployment and block
func DBDeploymentStateToDeploymentState(dbState *DbDeploymentState, deploymentName string,
	blockHash *externalapi.DomainHash) (model.ThresholdState, error) {

	if dbState.DeploymentName != deploymentName {
		return 0, errors.Errorf("stored state belongs to deployment %s, not %s",
			dbState.DeploymentName, deploymentName)
	}
	storedHash, err := binaryserialization.DeserializeHash(dbState.BlockHash)
	if err != nil {
		return 0, err
	}
	if !storedHash.Equal(blockHash) {
		return 0, errors.Errorf("stored state belongs to block %s, not %s", storedHash, blockHash)
	}
	if dbState.State > 0xff || !model.ThresholdState(dbState.State).IsValid() {
		return 0, errors.Errorf("stored state %d is not a threshold state", dbState.State)
	}
	return model.ThresholdState(dbState.State), nil
}

// Marshal encodes the record in the protobuf wire format.
func (x *DbDeploymentState) Marshal() []byte {
	var b []byte
	b = protowire.AppendTag(b, deploymentNameField, protowire.BytesType)
	b = protowire.AppendString(b, x.DeploymentName)
	b = protowire.AppendTag(b, blockHashField, protowire.BytesType)
	b = protowire.AppendBytes(b, x.BlockHash)
	b = protowire.AppendTag(b, stateField, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(x.State))
	return b
}

// Unmarshal decodes a record in the protobuf wire format. Unknown fields are
// skipped.
func (x *DbDeploymentState) Unmarshal(b []byte) error {
	*x = DbDeploymentState{}
	for len(b) > 0 {
		number, wireType, n := protowire.ConsumeTag(b)
		if n < 0 {
			return errors.Wrap(protowire.ParseError(n), "malformed deployment state tag")
		}
		b = b[n:]

		switch {
		case number == deploymentNameField && wireType == protowire.BytesType:
			value, n := protowire.ConsumeString(b)
			if n < 0 {
				return errors.Wrap(protowire.ParseError(n), "malformed deployment name")
			}
			x.DeploymentName = value
			b = b[n:]
		case number == blockHashField && wireType == protowire.BytesType:
			value, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return errors.Wrap(protowire.ParseError(n), "malformed block hash")
			}
			x.BlockHash = append([]byte(nil), value...)
			b = b[n:]
		case number == stateField && wireType == protowire.VarintType:
			value, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return errors.Wrap(protowire.ParseError(n), "malformed state")
			}
			if value > 0xffffffff {
				return errors.Errorf("state %d overflows", value)
			}
			x.State = uint32(value)
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(number, wireType, b)
			if n < 0 {
				return errors.Wrapf(protowire.ParseError(n), "malformed field %d", number)
			}
			b = b[n:]
		}
	}
	return nil
}
