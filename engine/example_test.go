// SPDX-License-Identifier: MIT
package engine_test

import (
	"context"
	"fmt"

	"github.com/sparseruntime/spla/engine"
)

// ExampleExpression_EWiseAdd demonstrates element-wise add of two sparse
// vectors.
func ExampleExpression_EWiseAdd() {
	lib := engine.NewLibrary()
	f64 := lib.StdFloat64()
	lib.RegisterType(f64.Type, 0)

	a := lib.NewVector(f64.Type, 3, float64(0), nil)
	_ = a.SetDense([]any{float64(1), float64(0), float64(3)})
	b := lib.NewVector(f64.Type, 3, float64(0), nil)
	_ = b.SetDense([]any{float64(0), float64(2), float64(5)})
	w := lib.NewVector(f64.Type, 3, float64(0), nil)

	e := lib.NewExpression()
	if _, err := e.EWiseAdd(w, a, b, nil, f64.Plus, nil); err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := e.Wait(context.Background()); err != nil {
		fmt.Println("error:", err)
		return
	}

	got, _ := w.Slice()
	fmt.Println(got)
	// Output: [1 2 8]
}
