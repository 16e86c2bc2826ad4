package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/vogel/matrix"
)

// ExampleDense_WithZeroCol pads a 2×2 cost table with a dummy destination
// and prints the margins of an allocation table.
func ExampleDense_WithZeroCol() {
	costs, err := matrix.NewDenseFromRows([][]float64{{4, 6}, {5, 3}})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(costs.WithZeroCol())

	alloc, _ := matrix.NewDenseFromRows([][]float64{{8, 0, 2}, {0, 6, 0}})
	fmt.Println("shipped:", alloc.RowSums())
	fmt.Println("received:", alloc.ColSums())
	// Output:
	// [4, 6, 0]
	// [5, 3, 0]
	// shipped: [10 6]
	// received: [8 6 2]
}
