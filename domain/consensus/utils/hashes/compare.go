package hashes

import (
	"math/big"

	"github.com/cashnode/cashd/domain/consensus/model/externalapi"
)

// ToBig converts a hash into a big.Int that can be compared against a proof
// of work target. Hashes are stored little endian.
func ToBig(hash *externalapi.DomainHash) *big.Int {
	buf := hash.BytesSlice()
	blen := len(buf)
	for i := 0; i < blen/2; i++ {
		buf[i], buf[blen-1-i] = buf[blen-1-i], buf[i]
	}
	return new(big.Int).SetBytes(buf)
}
