// SPDX-License-Identifier: MIT

package frame

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvmath/bin"
	"github.com/katalvlaran/lvmath/mat"
	"github.com/katalvlaran/lvmath/quat"
	"github.com/katalvlaran/lvmath/scalar"
	"github.com/katalvlaran/lvmath/vec"
)

// ForVec2 frames v with shape [2].
func ForVec2[T scalar.Number](v vec.PolyVec2[T]) Frame {
	return Frame{Kind: scalar.KindOf[T](), Shape: []int{2}, Payload: bin.Encode(vec.Codec2(bin.For[T]()), v)}
}

// ForVec3 frames v with shape [3].
func ForVec3[T scalar.Number](v vec.PolyVec3[T]) Frame {
	return Frame{Kind: scalar.KindOf[T](), Shape: []int{3}, Payload: bin.Encode(vec.Codec3(bin.For[T]()), v)}
}

// ForVec4 frames v with shape [4].
func ForVec4[T scalar.Number](v vec.PolyVec4[T]) Frame {
	return Frame{Kind: scalar.KindOf[T](), Shape: []int{4}, Payload: bin.Encode(vec.Codec4(bin.For[T]()), v)}
}

// ForQuat frames q with shape [4] in w, x, y, z order.
func ForQuat[T scalar.Float](q quat.Quaternion[T]) Frame {
	return Frame{Kind: scalar.KindOf[T](), Shape: []int{4}, Payload: bin.Encode(quat.Codec(bin.For[T]()), q)}
}

// ForMat frames m with shape [rows, cols]; the payload is column-major.
func ForMat[T scalar.Number](m *mat.Mat[T]) (Frame, error) {
	if m == nil {
		return Frame{}, frameErrorf("ForMat", mat.ErrNilMatrix)
	}
	b, err := m.MarshalBinary()
	if err != nil {
		return Frame{}, frameErrorf("ForMat", err)
	}
	return Frame{Kind: scalar.KindOf[T](), Shape: []int{m.Rows(), m.Cols()}, Payload: b}, nil
}

// ForMat4 frames m with shape [4, 4].
func ForMat4[T scalar.Number](m mat.Mat4[T]) Frame {
	return Frame{Kind: scalar.KindOf[T](), Shape: []int{4, 4}, Payload: bin.Encode(mat.Codec4(bin.For[T]()), m)}
}

// ForValues frames a flat run of values with shape [len(vals)]. It covers
// kinds without a generic vector type, such as u128 with bin.Uint128Codec.
func ForValues[T any](kind scalar.Kind, elem bin.Codec[T], vals []T) (Frame, error) {
	if kind.Width() != elem.Width() {
		return Frame{}, badFramef("ForValues", "codec width %d does not match kind %s", elem.Width(), kind)
	}
	return New(kind, []int{len(vals)}, bin.Encode(bin.Array(elem, len(vals)), vals))
}

// expect checks kind and shape before a typed decode.
func (f Frame) expect(op string, kind scalar.Kind, shape ...int) error {
	if err := f.Validate(); err != nil {
		return frameErrorf(op, err)
	}
	if f.Kind != kind {
		return fmt.Errorf("%s: %w: frame holds %s, want %s", op, ErrKindMismatch, f.Kind, kind)
	}
	if shape != nil && !slices.Equal(f.Shape, shape) {
		return fmt.Errorf("%s: %w: frame shape %v, want %v", op, ErrShapeMismatch, f.Shape, shape)
	}
	return nil
}

// DecodeVec2 extracts a PolyVec2 from a [2] frame of T's kind.
func DecodeVec2[T scalar.Number](f Frame) (vec.PolyVec2[T], error) {
	if err := f.expect("DecodeVec2", scalar.KindOf[T](), 2); err != nil {
		return vec.PolyVec2[T]{}, err
	}
	return bin.Decode(vec.Codec2(bin.For[T]()), f.Payload), nil
}

// DecodeVec3 extracts a PolyVec3 from a [3] frame of T's kind.
func DecodeVec3[T scalar.Number](f Frame) (vec.PolyVec3[T], error) {
	if err := f.expect("DecodeVec3", scalar.KindOf[T](), 3); err != nil {
		return vec.PolyVec3[T]{}, err
	}
	return bin.Decode(vec.Codec3(bin.For[T]()), f.Payload), nil
}

// DecodeVec4 extracts a PolyVec4 from a [4] frame of T's kind.
func DecodeVec4[T scalar.Number](f Frame) (vec.PolyVec4[T], error) {
	if err := f.expect("DecodeVec4", scalar.KindOf[T](), 4); err != nil {
		return vec.PolyVec4[T]{}, err
	}
	return bin.Decode(vec.Codec4(bin.For[T]()), f.Payload), nil
}

// DecodeQuat extracts a quaternion from a [4] frame of T's kind.
func DecodeQuat[T scalar.Float](f Frame) (quat.Quaternion[T], error) {
	if err := f.expect("DecodeQuat", scalar.KindOf[T](), 4); err != nil {
		return quat.Quaternion[T]{}, err
	}
	return bin.Decode(quat.Codec(bin.For[T]()), f.Payload), nil
}

// DecodeMat extracts a matrix from a [rows, cols] frame of T's kind.
func DecodeMat[T scalar.Number](f Frame) (*mat.Mat[T], error) {
	if err := f.expect("DecodeMat", scalar.KindOf[T]()); err != nil {
		return nil, err
	}
	if len(f.Shape) != 2 {
		return nil, fmt.Errorf("DecodeMat: %w: frame shape %v is not two-dimensional", ErrShapeMismatch, f.Shape)
	}
	m, err := mat.Decode[T](f.Payload, f.Shape[0], f.Shape[1])
	if err != nil {
		return nil, frameErrorf("DecodeMat", err)
	}
	return m, nil
}

// DecodeMat4 extracts a Mat4 from a [4, 4] frame of T's kind.
func DecodeMat4[T scalar.Number](f Frame) (mat.Mat4[T], error) {
	if err := f.expect("DecodeMat4", scalar.KindOf[T](), 4, 4); err != nil {
		return mat.Mat4[T]{}, err
	}
	return bin.Decode(mat.Codec4(bin.For[T]()), f.Payload), nil
}

// DecodeValues extracts every element of f with elem, whatever its shape.
func DecodeValues[T any](f Frame, kind scalar.Kind, elem bin.Codec[T]) ([]T, error) {
	if err := f.expect("DecodeValues", kind); err != nil {
		return nil, err
	}
	if kind.Width() != elem.Width() {
		return nil, badFramef("DecodeValues", "codec width %d does not match kind %s", elem.Width(), kind)
	}
	return bin.Decode(bin.Array(elem, f.Len()), f.Payload), nil
}
