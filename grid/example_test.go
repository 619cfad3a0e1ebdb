// SPDX-License-Identifier: MIT

package grid_test

import (
	"fmt"

	"github.com/katalvlaran/qtensor/grid"
)

// ExampleDirection_Reflect bounces a rightward beam off mirrors at 45° steps.
func ExampleDirection_Reflect() {
	for _, angle := range []int{0, 45, 90, 135} {
		d, _ := grid.Right.Reflect(angle)
		fmt.Printf("%3d° -> %s %s\n", angle, d.Label(), d)
	}
	// Output:
	//   0° -> > right
	//  45° -> ^ up
	//  90° -> < left
	// 135° -> v down
}
