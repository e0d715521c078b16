// SPDX-License-Identifier: MIT
package mtx_test

import (
	"fmt"
	"strings"

	"github.com/sparseruntime/spla/mtx"
)

// ExampleLoad demonstrates loading a 3x3 coordinate file with self-loops
// dropped.
func ExampleLoad() {
	input := "3 3 4\n1 1 1\n1 2 2\n2 3 3\n3 3 4\n"

	rows, cols, _, nrows, ncols, err := mtx.Load(strings.NewReader(input), mtx.WithoutSelfLoops())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(nrows, ncols, len(rows))
	for i := range rows {
		fmt.Println(rows[i], cols[i])
	}
	// Output:
	// 3 3 2
	// 0 1
	// 1 2
}
