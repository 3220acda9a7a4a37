package model

import "github.com/cashnode/cashd/domain/consensus/model/externalapi"

// AncestorSource gives access to the blocks of a single chain by height. It is
// supplied by the chain index and must serve every height below the block
// being evaluated.
type AncestorSource interface {
	BlockAt(height uint32) (*externalapi.BlockInfo, error)
}
