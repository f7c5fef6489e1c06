// SPDX-License-Identifier: MIT

package frame

import (
	"fmt"
	"slices"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/lvmath/scalar"
)

// Version is the envelope format written by Marshal.
const Version = 1

// Frame is a codec payload tagged with its element kind and shape.
type Frame struct {
	Kind    scalar.Kind
	Shape   []int
	Payload []byte
}

// wire is the MessagePack form of a Frame; the kind travels by name.
type wire struct {
	Version uint8  `msgpack:"v"`
	Kind    string `msgpack:"kind"`
	Shape   []int  `msgpack:"shape"`
	Payload []byte `msgpack:"payload"`
}

// New builds a frame and validates it.
func New(kind scalar.Kind, shape []int, payload []byte) (Frame, error) {
	f := Frame{Kind: kind, Shape: slices.Clone(shape), Payload: payload}
	if err := f.Validate(); err != nil {
		return Frame{}, frameErrorf("New", err)
	}
	return f, nil
}

// Len is the number of elements described by the shape.
func (f Frame) Len() int {
	n := 1
	for _, d := range f.Shape {
		n *= d
	}
	return n
}

// Validate checks that the kind is known, the shape is non-empty with
// positive dimensions, and the payload holds exactly Len elements.
func (f Frame) Validate() error {
	if !f.Kind.Valid() {
		return badFramef("Validate", "unknown kind %d", uint8(f.Kind))
	}
	if len(f.Shape) == 0 {
		return badFramef("Validate", "empty shape")
	}
	n := 1
	for _, d := range f.Shape {
		if d <= 0 {
			return badFramef("Validate", "non-positive dimension in %v", f.Shape)
		}
		if d > len(f.Payload)/n {
			return badFramef("Validate", "payload is %d bytes, too short for shape %v", len(f.Payload), f.Shape)
		}
		n *= d
	}
	if want := n * f.Kind.Width(); len(f.Payload) != want {
		return badFramef("Validate", "payload is %d bytes, %v %s needs %d", len(f.Payload), f.Shape, f.Kind, want)
	}
	return nil
}

// Marshal validates f and encodes it as MessagePack.
func Marshal(f Frame) ([]byte, error) {
	if err := f.Validate(); err != nil {
		return nil, frameErrorf("Marshal", err)
	}
	b, err := msgpack.Marshal(f.wire())
	if err != nil {
		return nil, frameErrorf("Marshal", err)
	}
	return b, nil
}

// Unmarshal decodes and validates one MessagePack frame.
func Unmarshal(b []byte) (Frame, error) {
	var w wire
	if err := msgpack.Unmarshal(b, &w); err != nil {
		return Frame{}, frameErrorf("Unmarshal", err)
	}
	f, err := w.frame()
	if err != nil {
		return Frame{}, frameErrorf("Unmarshal", err)
	}
	return f, nil
}

func (f Frame) wire() wire {
	return wire{Version: Version, Kind: f.Kind.String(), Shape: f.Shape, Payload: f.Payload}
}

func (w wire) frame() (Frame, error) {
	if w.Version != Version {
		return Frame{}, ErrVersion
	}
	k, err := scalar.ParseKind(w.Kind)
	if err != nil {
		return Frame{}, fmt.Errorf("%w: %w", ErrBadFrame, err)
	}
	f := Frame{Kind: k, Shape: w.Shape, Payload: w.Payload}
	if err = f.Validate(); err != nil {
		return Frame{}, err
	}
	return f, nil
}
