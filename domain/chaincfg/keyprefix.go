package chaincfg

import (
	"encoding/binary"

	"github.com/btcsuite/btcutil/base58"
	"github.com/cashnode/cashd/domain/consensus/utils/hashes"
)

// extendedKeyPayloadSize is the size of a serialized extended key without
// its version: depth, parent fingerprint, child number, chain code and key.
const extendedKeyPayloadSize = 74

// extendedKeyPrefix returns the leading four characters every base58check
// encoded extended key with the given version starts with.
func extendedKeyPrefix(version uint32) string {
	serialized := make([]byte, 4, 4+extendedKeyPayloadSize+4)
	binary.BigEndian.PutUint32(serialized, version)
	for i := 0; i < extendedKeyPayloadSize; i++ {
		serialized = append(serialized, 0x80)
	}
	checksum := hashes.DoubleSHA256(serialized).BytesSlice()[:4]
	return base58.Encode(append(serialized, checksum...))[:4]
}

// XPubPrefix returns the human readable prefix of extended public keys
// as derived from XPubKey.
func (k *KeyPrefix) XPubPrefix() string {
	return extendedKeyPrefix(k.XPubKey)
}

// XPrivPrefix returns the human readable prefix of extended private keys
// as derived from XPrivKey.
func (k *KeyPrefix) XPrivPrefix() string {
	return extendedKeyPrefix(k.XPrivKey)
}

func (p *Params) validateKeyPrefix() error {
	if prefix := p.KeyPrefix.XPubPrefix(); prefix != p.KeyPrefix.XPubKey58 {
		return p.invalid("extended public keys encode with prefix %s, not %s", prefix, p.KeyPrefix.XPubKey58)
	}
	if prefix := p.KeyPrefix.XPrivPrefix(); prefix != p.KeyPrefix.XPrivKey58 {
		return p.invalid("extended private keys encode with prefix %s, not %s", prefix, p.KeyPrefix.XPrivKey58)
	}
	return nil
}
