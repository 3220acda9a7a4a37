package externalapi

import "github.com/pkg/errors"

// BlockInfo is the part of a block header and its chain index entry that
// versionbits evaluation needs.
type BlockInfo struct {
	Hash           *DomainHash
	Height         uint32
	MedianTimePast uint32
	Version        uint32
}

// Position returns the ChainPosition of the block
func (info *BlockInfo) Position() ChainPosition {
	return ChainPosition{Height: info.Height, MedianTimePast: info.MedianTimePast}
}

// BlockInfos is a chain of blocks indexed by height, starting at genesis.
// It can serve as the ancestor source of any block above its last element.
type BlockInfos []*BlockInfo

// BlockAt returns the block at height, or an error if the chain is shorter.
func (infos BlockInfos) BlockAt(height uint32) (*BlockInfo, error) {
	if uint64(height) >= uint64(len(infos)) {
		return nil, errors.Errorf("no block at height %d, chain has %d blocks", height, len(infos))
	}
	return infos[height], nil
}

// Tip returns the last block of the chain, or nil if it is empty.
func (infos BlockInfos) Tip() *BlockInfo {
	if len(infos) == 0 {
		return nil
	}
	return infos[len(infos)-1]
}
