// SPDX-License-Identifier: MIT

package frame_test

import (
	"fmt"

	"github.com/katalvlaran/lvmath/frame"
	"github.com/katalvlaran/lvmath/vec"
)

func ExampleMarshal() {
	b, err := frame.Marshal(frame.ForVec3(vec.New3[float32](1, 2, 3)))
	if err != nil {
		panic(err)
	}
	f, err := frame.Unmarshal(b)
	if err != nil {
		panic(err)
	}
	v, err := frame.DecodeVec3[float32](f)
	fmt.Println(f.Kind, f.Shape, v, err)
	// Output: f32 [3] [1, 2, 3] <nil>
}
