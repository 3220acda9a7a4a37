// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"

	"github.com/cashnode/cashd/domain/consensus/model/externalapi"
	"github.com/cashnode/cashd/domain/consensus/ruleerrors"
	"github.com/cashnode/cashd/domain/consensus/utils/hashes"
	"github.com/cashnode/cashd/domain/consensus/utils/math"
	"github.com/pkg/errors"
)

// HeaderSize is the size of a serialized block header.
const HeaderSize = 80

// genesisMerkleRoot is the merkle root of the genesis coinbase transaction,
// shared by every network of this package.
var genesisMerkleRoot = newHashFromStr("3ba3edfd7a7b12b27ac72c3e67768f617fc81bc3888a51323a9fb8aa4b1e5e4a")

// zeroHash is the previous block hash of every genesis block.
var zeroHash = &externalapi.DomainHash{}

// genesisBlockTail is the serialized genesis block after its header: the
// transaction count and the coinbase transaction. It is identical on every
// network of this package.
const genesisBlockTail = "01010000000100000000000000000000000000000000000000" +
	"00000000000000000000000000ffffffff4d04ffff001d0104455468652054696d6573" +
	"2030332f4a616e2f32303039204368616e63656c6c6f72206f6e206272696e6b206f66" +
	"207365636f6e64206261696c6f757420666f722062616e6b73ffffffff0100f2052a01" +
	"000000434104678afdb0fe5548271967f1a67130b7105cd6a828e03909a67962e0ea1f" +
	"61deb649f6bc3f4cef38c4f35504e51ec112de5c384df7ba0b8d578a4c702b6bf11d5f" +
	"ac00000000"

// BlockHeader holds the fields of a block header in the order they are
// serialized.
type BlockHeader struct {
	Version    uint32
	PrevBlock  *externalapi.DomainHash
	MerkleRoot *externalapi.DomainHash
	Time       uint32
	Bits       uint32
	Nonce      uint32
}

// Serialize returns the 80-byte little-endian encoding of the header.
func (h *BlockHeader) Serialize() []byte {
	buf := make([]byte, 0, HeaderSize)
	var scratch [4]byte

	putUint32 := func(n uint32) {
		binary.LittleEndian.PutUint32(scratch[:], n)
		buf = append(buf, scratch[:]...)
	}
	putUint32(h.Version)
	buf = append(buf, h.PrevBlock.BytesSlice()...)
	buf = append(buf, h.MerkleRoot.BytesSlice()...)
	putUint32(h.Time)
	putUint32(h.Bits)
	putUint32(h.Nonce)
	return buf
}

// BlockHash returns the double-SHA256 hash of the serialized header.
func (h *BlockHeader) BlockHash() *externalapi.DomainHash {
	return hashes.DoubleSHA256(h.Serialize())
}

// DeserializeBlockHeader decodes the first 80 bytes of raw as a header.
func DeserializeBlockHeader(raw []byte) (*BlockHeader, error) {
	if len(raw) < HeaderSize {
		return nil, errors.Errorf("block header needs %d bytes, got %d", HeaderSize, len(raw))
	}
	prevBlock, err := externalapi.NewDomainHashFromByteSlice(raw[4:36])
	if err != nil {
		return nil, err
	}
	merkleRoot, err := externalapi.NewDomainHashFromByteSlice(raw[36:68])
	if err != nil {
		return nil, err
	}
	return &BlockHeader{
		Version:    binary.LittleEndian.Uint32(raw[0:4]),
		PrevBlock:  prevBlock,
		MerkleRoot: merkleRoot,
		Time:       binary.LittleEndian.Uint32(raw[68:72]),
		Bits:       binary.LittleEndian.Uint32(raw[72:76]),
		Nonce:      binary.LittleEndian.Uint32(raw[76:80]),
	}, nil
}

// Genesis is the root of trust of a network: its first block.
type Genesis struct {
	Header BlockHeader
	Height uint32
	Hash   *externalapi.DomainHash

	// Block is the fully serialized genesis block.
	Block []byte
}

// Verify checks that the header hashes to Hash, that Hash satisfies the
// header's proof of work and that the serialized block starts with the
// serialized header.
func (g *Genesis) Verify() error {
	if !g.Header.PrevBlock.IsZero() {
		return errors.Wrapf(ruleerrors.ErrBadGenesis, "genesis previous block is %s", g.Header.PrevBlock)
	}
	if g.Height != 0 {
		return errors.Wrapf(ruleerrors.ErrBadGenesis, "genesis height is %d", g.Height)
	}
	hash := g.Header.BlockHash()
	if !hash.Equal(g.Hash) {
		return errors.Wrapf(ruleerrors.ErrBadGenesis, "genesis header hashes to %s, expected %s", hash, g.Hash)
	}
	target, err := math.CompactToBig(g.Header.Bits)
	if err != nil {
		return errors.Wrapf(ruleerrors.ErrBadGenesis, "genesis bits %08x: %s", g.Header.Bits, err)
	}
	if hashes.ToBig(hash).Cmp(target) > 0 {
		return errors.Wrapf(ruleerrors.ErrBadGenesis, "genesis hash %s is above its target %064x", hash, target)
	}
	if !bytes.HasPrefix(g.Block, g.Header.Serialize()) {
		return errors.Wrapf(ruleerrors.ErrBadGenesis, "serialized genesis block does not start with its header")
	}
	return nil
}

// newGenesis builds the genesis record of a network from its header fields,
// its hash and the hex of its serialized header as published for the network.
// The serialized block is that header followed by the shared coinbase.
func newGenesis(timestamp, bits, nonce uint32, hash string, serializedHeader string) *Genesis {
	block, err := hex.DecodeString(serializedHeader + genesisBlockTail)
	if err != nil {
		panic(err)
	}
	return &Genesis{
		Header: BlockHeader{
			Version:    1,
			PrevBlock:  zeroHash,
			MerkleRoot: genesisMerkleRoot,
			Time:       timestamp,
			Bits:       bits,
			Nonce:      nonce,
		},
		Height: 0,
		Hash:   newHashFromStr(hash),
		Block:  block,
	}
}
