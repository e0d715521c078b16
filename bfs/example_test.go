// SPDX-License-Identifier: MIT
package bfs_test

import (
	"context"
	"fmt"

	"github.com/sparseruntime/spla/bfs"
	"github.com/sparseruntime/spla/engine"
)

// ExampleLevel demonstrates one BFS step over a 4-node path.
func ExampleLevel() {
	lib := engine.NewLibrary()
	std := lib.StdBool()
	lib.RegisterType(std.Type, 0)

	adjacency := lib.NewMatrix(std.Type, 4, 4, uint32(0), nil, nil)
	_, err := adjacency.Build(
		[]uint32{0, 1, 2}, []uint32{1, 2, 3}, []any{uint32(1), uint32(1), uint32(1)},
		nil, false, false,
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	frontier := lib.NewVector(std.Type, 4, uint32(0), nil)
	_ = frontier.SetDense([]any{uint32(1), uint32(0), uint32(0), uint32(0)})
	mask := lib.NewVector(std.Type, 4, uint32(0), nil)
	_ = mask.SetDense([]any{uint32(0), uint32(1), uint32(1), uint32(1)})

	result, _, err := bfs.Level(context.Background(), lib, std, adjacency, frontier, mask)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	got, _ := result.Slice()
	fmt.Println(got)
	// Output: [0 1 0 0]
}
