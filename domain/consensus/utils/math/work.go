package math

import "math/big"

var (
	// bigOne is 1 represented as a big.Int. It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)

	// oneLsh256 is 1 shifted left 256 bits. It is defined here to avoid
	// the overhead of creating it multiple times.
	oneLsh256 = new(big.Int).Lsh(bigOne, 256)
)

// CalcWork calculates a work value from difficulty bits. A lower target
// means more expected hashes, so the work is the inverse of the target:
// 2^256 / (target+1). The +1 avoids a division by zero.
//
// Invalid or zero targets have no work.
func CalcWork(bits uint32) *big.Int {
	target, err := CompactToBig(bits)
	if err != nil || target.Sign() <= 0 {
		return big.NewInt(0)
	}
	denominator := new(big.Int).Add(target, bigOne)
	return new(big.Int).Div(oneLsh256, denominator)
}
