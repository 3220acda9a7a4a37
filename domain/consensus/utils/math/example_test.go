package math_test

import (
	"fmt"
	"math/big"

	"github.com/cashnode/cashd/domain/consensus/utils/math"
)

// This example demonstrates how to convert the compact "bits" in a block header
// which represent the target difficulty to a big integer and display it using
// the typical hex notation.
func ExampleCompactToBig() {
	// Convert the bits from block 300000 in the main block chain.
	bits := uint32(419465580)
	targetDifficulty, err := math.CompactToBig(bits)
	if err != nil {
		fmt.Println(err)
		return
	}

	// Display it in hex.
	fmt.Printf("%064x\n", targetDifficulty)

	// Output:
	// 0000000000000000896c00000000000000000000000000000000000000000000
}

// This example demonstrates how to convert a target difficulty into the compact
// "bits" in a block header which represent that target difficulty.
func ExampleBigToCompact() {
	// Convert the target difficulty from block 300000 in the main block
	// chain to compact form.
	t := "0000000000000000896c00000000000000000000000000000000000000000000"
	targetDifficulty, success := new(big.Int).SetString(t, 16)
	if !success {
		fmt.Println("invalid target difficulty")
		return
	}
	bits := math.BigToCompact(targetDifficulty)

	fmt.Println(bits)

	// Output:
	// 419465580
}
