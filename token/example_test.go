package token_test

import (
	"fmt"

	"github.com/arcosphere-go/catalyst/token"
)

// ExampleMultiset_Sub shows applying a recipe's input requirement to a
// running multiset: consume EP, producing the remainder.
func ExampleMultiset_Sub() {
	running, _ := token.Parse("EEPL")
	inputs, _ := token.Parse("EP")

	remainder, err := running.Sub(inputs)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(remainder.String())
	// Output:
	// EL
}

// ExampleMultiset_PolarityCounts shows the negative/positive split used
// to compute a problem's polarity delta.
func ExampleMultiset_PolarityCounts() {
	target, _ := token.Parse("LX")
	neg, pos := target.PolarityCounts()
	fmt.Println(neg, pos)
	// Output:
	// 2 0
}
