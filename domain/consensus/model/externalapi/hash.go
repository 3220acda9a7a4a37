package externalapi

import (
	"encoding/hex"

	"github.com/pkg/errors"
)

// DomainHashSize of array used to store hashes.
const DomainHashSize = 32

// DomainHash is a 256-bit block hash kept in internal byte order, which is
// the order the double-SHA256 digest comes out in. Block explorers show the
// byte-reversed form, see ReversedString.
type DomainHash struct {
	hashArray [DomainHashSize]byte
}

// NewDomainHashFromByteArray creates a DomainHash from a byte array
func NewDomainHashFromByteArray(hashBytes *[DomainHashSize]byte) *DomainHash {
	return &DomainHash{
		hashArray: *hashBytes,
	}
}

// NewDomainHashFromByteSlice creates a DomainHash from a byte slice in
// internal byte order
func NewDomainHashFromByteSlice(hashBytes []byte) (*DomainHash, error) {
	if len(hashBytes) != DomainHashSize {
		return nil, errors.Errorf("invalid hash size. Want: %d, got: %d",
			DomainHashSize, len(hashBytes))
	}
	domainHash := DomainHash{}
	copy(domainHash.hashArray[:], hashBytes)
	return &domainHash, nil
}

// NewDomainHashFromString parses a hex string in internal byte order
func NewDomainHashFromString(hashString string) (*DomainHash, error) {
	hashBytes, err := decodeHashString(hashString)
	if err != nil {
		return nil, err
	}
	return NewDomainHashFromByteSlice(hashBytes)
}

// NewDomainHashFromReversedString parses a hex string in display byte order,
// as printed by block explorers and RPC interfaces
func NewDomainHashFromReversedString(hashString string) (*DomainHash, error) {
	hashBytes, err := decodeHashString(hashString)
	if err != nil {
		return nil, err
	}
	reverse(hashBytes)
	return NewDomainHashFromByteSlice(hashBytes)
}

func decodeHashString(hashString string) ([]byte, error) {
	expectedLength := DomainHashSize * 2
	if len(hashString) != expectedLength {
		return nil, errors.Errorf("hash string length is %d, while it should be be %d",
			len(hashString), expectedLength)
	}
	hashBytes, err := hex.DecodeString(hashString)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return hashBytes, nil
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// String returns the hash as hex in internal byte order.
func (hash DomainHash) String() string {
	return hex.EncodeToString(hash.hashArray[:])
}

// ReversedString returns the hash as hex in display byte order.
func (hash DomainHash) ReversedString() string {
	reversed := hash.hashArray
	reverse(reversed[:])
	return hex.EncodeToString(reversed[:])
}

// BytesArray returns the bytes in this hash represented as a bytes array.
// The hash bytes are cloned, therefore it is safe to modify the resulting array.
func (hash *DomainHash) BytesArray() *[DomainHashSize]byte {
	arrayClone := hash.hashArray
	return &arrayClone
}

// BytesSlice returns the bytes in this hash represented as a bytes slice.
// The hash bytes are cloned, therefore it is safe to modify the resulting slice.
func (hash *DomainHash) BytesSlice() []byte {
	return hash.BytesArray()[:]
}

// IsZero returns whether every byte of the hash is zero
func (hash *DomainHash) IsZero() bool {
	return hash.hashArray == [DomainHashSize]byte{}
}

// If this doesn't compile, it means the type definition has been changed, so it's
// an indication to update Equal accordingly.
var _ DomainHash = DomainHash{hashArray: [DomainHashSize]byte{}}

// Equal returns whether hash equals to other
func (hash *DomainHash) Equal(other *DomainHash) bool {
	if hash == nil || other == nil {
		return hash == other
	}

	return hash.hashArray == other.hashArray
}
