package math

import (
	"math/big"

	"github.com/pkg/errors"
)

// ErrInvalidCompactTarget indicates a compact value that decodes to a negative
// or larger than 256-bit target. Neither is ever a valid proof-of-work target.
var ErrInvalidCompactTarget = errors.New("invalid compact target")

const (
	compactSignBit      = 0x00800000
	compactMantissaMask = 0x007fffff
	maxTargetBits       = 256
)

// CompactToBig converts a compact representation of a whole number N to a
// big integer. The representation is similar to IEEE754 floating point
// numbers.
//
// Like IEEE754 floating point, there are three basic components: the sign,
// the exponent, and the mantissa. They are broken out as follows:
//
//	* the most significant 8 bits represent the unsigned base 256 exponent
//	* bit 23 (the 24th bit) represents the sign bit
//	* the least significant 23 bits represent the mantissa
//
//	-------------------------------------------------
//	|   Exponent     |    Sign    |    Mantissa     |
//	-------------------------------------------------
//	| 8 bits [31-24] | 1 bit [23] | 23 bits [22-00] |
//	-------------------------------------------------
//
// The formula to calculate N is:
//
//	N = (-1^sign) * mantissa * 256^(exponent-3)
//
// A set sign bit and results wider than 256 bits are rejected with
// ErrInvalidCompactTarget, whatever the magnitude.
func CompactToBig(compact uint32) (*big.Int, error) {
	if compact&compactSignBit != 0 {
		return nil, errors.Wrapf(ErrInvalidCompactTarget, "compact %08x is negative", compact)
	}
	mantissa := compact & compactMantissaMask
	exponent := uint(compact >> 24)

	// Since the base for the exponent is 256, the exponent can be treated
	// as the number of bytes to represent the full 256-bit number. So,
	// treat the exponent as the number of bytes and shift the mantissa
	// right or left accordingly.
	var target *big.Int
	if exponent <= 3 {
		mantissa >>= 8 * (3 - exponent)
		target = new(big.Int).SetUint64(uint64(mantissa))
	} else {
		target = new(big.Int).SetUint64(uint64(mantissa))
		target.Lsh(target, 8*(exponent-3))
	}

	if target.BitLen() > maxTargetBits {
		return nil, errors.Wrapf(ErrInvalidCompactTarget, "compact %08x overflows %d bits",
			compact, maxTargetBits)
	}
	return target, nil
}

// BigToCompact converts a whole number N to a compact representation using
// an unsigned 32-bit number. The compact representation only provides 23 bits
// of precision, so values larger than (2^23 - 1) only encode the most
// significant digits of the number. See CompactToBig for details.
//
// The exponent is the smallest one whose mantissa fits in 23 bits, so the
// result never collides with the sign bit. Zero encodes to zero.
func BigToCompact(n *big.Int) uint32 {
	if n.Sign() == 0 {
		return 0
	}

	magnitude := new(big.Int).Abs(n)

	// Since the base for the exponent is 256, the exponent can be treated
	// as the number of bytes. So, shift the number right or left
	// accordingly. This is equivalent to:
	// mantissa = mantissa / 256^(exponent-3)
	var mantissa uint32
	exponent := uint(len(magnitude.Bytes()))
	if exponent <= 3 {
		mantissa = uint32(magnitude.Uint64())
		mantissa <<= 8 * (3 - exponent)
	} else {
		mantissa = uint32(new(big.Int).Rsh(magnitude, 8*(exponent-3)).Uint64())
	}

	// When the mantissa already has the sign bit set, the number is too
	// large to fit into the available 23-bits, so divide the number by 256
	// and increment the exponent accordingly.
	if mantissa&compactSignBit != 0 {
		mantissa >>= 8
		exponent++
	}

	// Pack the exponent, sign bit, and mantissa into an unsigned 32-bit
	// int and return it.
	compact := uint32(exponent<<24) | mantissa
	if n.Sign() < 0 {
		compact |= compactSignBit
	}
	return compact
}
