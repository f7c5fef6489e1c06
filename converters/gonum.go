// SPDX-License-Identifier: MIT

package converters

import (
	gmat "gonum.org/v1/gonum/mat"
	gquat "gonum.org/v1/gonum/num/quat"

	"github.com/katalvlaran/lvmath/mat"
	"github.com/katalvlaran/lvmath/quat"
	"github.com/katalvlaran/lvmath/scalar"
	"github.com/katalvlaran/lvmath/vec"
)

// ToGonumDense copies m into a new row-major gonum Dense.
func ToGonumDense[T scalar.Number](m *mat.Mat[T]) (*gmat.Dense, error) {
	if m == nil {
		return nil, convErrorf("ToGonumDense", mat.ErrNilMatrix)
	}
	rows, cols := m.Shape()
	src := m.Data()
	data := make([]float64, rows*cols)
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			data[r*cols+c] = float64(src[c*rows+r])
		}
	}
	return gmat.NewDense(rows, cols, data), nil
}

// FromGonumDense copies any gonum Matrix into a new Mat, converting each
// element with T(x).
func FromGonumDense[T scalar.Number](a gmat.Matrix) (*mat.Mat[T], error) {
	if a == nil {
		return nil, convErrorf("FromGonumDense", ErrNilInput)
	}
	rows, cols := a.Dims()
	data := make([]T, rows*cols)
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			data[c*rows+r] = T(a.At(r, c))
		}
	}
	m, err := mat.FromColumnMajor(rows, cols, data)
	if err != nil {
		return nil, convErrorf("FromGonumDense", err)
	}
	return m, nil
}

// Mat4ToGonum copies a Mat4 into a 4×4 gonum Dense.
func Mat4ToGonum[T scalar.Number](m mat.Mat4[T]) *gmat.Dense {
	d, _ := ToGonumDense(m.Mat())
	return d
}

// Mat4FromGonum reads a 4×4 gonum Matrix.
func Mat4FromGonum[T scalar.Number](a gmat.Matrix) (mat.Mat4[T], error) {
	m, err := FromGonumDense[T](a)
	if err != nil {
		return mat.Mat4[T]{}, convErrorf("Mat4FromGonum", err)
	}
	m4, err := mat.Mat4From(m)
	if err != nil {
		return mat.Mat4[T]{}, convErrorf("Mat4FromGonum", err)
	}
	return m4, nil
}

// ToGonumVec copies the components of v into a gonum VecDense.
func ToGonumVec[T scalar.Number](v vec.PolyVec3[T]) *gmat.VecDense {
	return gmat.NewVecDense(3, []float64{float64(v.X), float64(v.Y), float64(v.Z)})
}

// ToGonumVec2 is ToGonumVec for two components.
func ToGonumVec2[T scalar.Number](v vec.PolyVec2[T]) *gmat.VecDense {
	return gmat.NewVecDense(2, []float64{float64(v.X), float64(v.Y)})
}

// ToGonumVec4 is ToGonumVec for four components.
func ToGonumVec4[T scalar.Number](v vec.PolyVec4[T]) *gmat.VecDense {
	return gmat.NewVecDense(4, []float64{float64(v.X), float64(v.Y), float64(v.Z), float64(v.W)})
}

func gonumComponents(op string, v gmat.Vector, n int) ([]float64, error) {
	if v == nil {
		return nil, convErrorf(op, ErrNilInput)
	}
	if v.Len() != n {
		return nil, convErrorf(op, ErrLength)
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = v.AtVec(i)
	}
	return out, nil
}

// FromGonumVec reads a three-element gonum Vector.
func FromGonumVec[T scalar.Number](v gmat.Vector) (vec.PolyVec3[T], error) {
	c, err := gonumComponents("FromGonumVec", v, 3)
	if err != nil {
		return vec.PolyVec3[T]{}, err
	}
	return vec.New3(T(c[0]), T(c[1]), T(c[2])), nil
}

// FromGonumVec2 reads a two-element gonum Vector.
func FromGonumVec2[T scalar.Number](v gmat.Vector) (vec.PolyVec2[T], error) {
	c, err := gonumComponents("FromGonumVec2", v, 2)
	if err != nil {
		return vec.PolyVec2[T]{}, err
	}
	return vec.New2(T(c[0]), T(c[1])), nil
}

// FromGonumVec4 reads a four-element gonum Vector.
func FromGonumVec4[T scalar.Number](v gmat.Vector) (vec.PolyVec4[T], error) {
	c, err := gonumComponents("FromGonumVec4", v, 4)
	if err != nil {
		return vec.PolyVec4[T]{}, err
	}
	return vec.New4(T(c[0]), T(c[1]), T(c[2]), T(c[3])), nil
}

// ToGonumQuat maps w, x, y, z onto Real, Imag, Jmag, Kmag.
func ToGonumQuat[T scalar.Float](q quat.Quaternion[T]) gquat.Number {
	return gquat.Number{Real: float64(q.W), Imag: float64(q.X), Jmag: float64(q.Y), Kmag: float64(q.Z)}
}

// FromGonumQuat is the inverse of ToGonumQuat.
func FromGonumQuat[T scalar.Float](n gquat.Number) quat.Quaternion[T] {
	return quat.New(T(n.Real), T(n.Imag), T(n.Jmag), T(n.Kmag))
}
