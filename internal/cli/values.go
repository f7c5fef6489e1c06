// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvmath/bin"
	"github.com/katalvlaran/lvmath/frame"
	"github.com/katalvlaran/lvmath/scalar"
)

// valueCodec converts between command-line text and frames of one kind.
type valueCodec interface {
	encode(args []string) (frame.Frame, error)
	format(f frame.Frame) ([]string, error)
}

type typedCodec[T any] struct {
	kind  scalar.Kind
	elem  bin.Codec[T]
	parse func(string) (T, error)
}

func (c typedCodec[T]) encode(args []string) (frame.Frame, error) {
	vals := make([]T, len(args))
	for i, s := range args {
		v, err := c.parse(s)
		if err != nil {
			return frame.Frame{}, fmt.Errorf("%w: value %d: %w", ErrUsage, i, err)
		}
		vals[i] = v
	}
	return frame.ForValues(c.kind, c.elem, vals)
}

func (c typedCodec[T]) format(f frame.Frame) ([]string, error) {
	vals, err := frame.DecodeValues(f, c.kind, c.elem)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = fmt.Sprint(v)
	}
	return out, nil
}

// Integers are parsed in base 10 only, so "010" is ten for every kind.

func parseSigned[T scalar.Signed](bits int) func(string) (T, error) {
	return func(s string) (T, error) {
		v, err := strconv.ParseInt(s, 10, bits)
		return T(v), err
	}
}

func parseUnsigned[T scalar.Unsigned](bits int) func(string) (T, error) {
	return func(s string) (T, error) {
		v, err := strconv.ParseUint(s, 10, bits)
		return T(v), err
	}
}

func parseFloat[T scalar.Float](bits int) func(string) (T, error) {
	return func(s string) (T, error) {
		v, err := strconv.ParseFloat(s, bits)
		return T(v), err
	}
}

func signedCodec[T scalar.Signed](k scalar.Kind) valueCodec {
	return typedCodec[T]{kind: k, elem: bin.For[T](), parse: parseSigned[T](8 * k.Width())}
}

func unsignedCodec[T scalar.Unsigned](k scalar.Kind) valueCodec {
	return typedCodec[T]{kind: k, elem: bin.For[T](), parse: parseUnsigned[T](8 * k.Width())}
}

func floatCodec[T scalar.Float](k scalar.Kind) valueCodec {
	return typedCodec[T]{kind: k, elem: bin.For[T](), parse: parseFloat[T](8 * k.Width())}
}

func codecFor(k scalar.Kind) (valueCodec, error) {
	switch k {
	case scalar.I8:
		return signedCodec[int8](k), nil
	case scalar.I16:
		return signedCodec[int16](k), nil
	case scalar.I32:
		return signedCodec[int32](k), nil
	case scalar.I64:
		return signedCodec[int64](k), nil
	case scalar.I128:
		return typedCodec[scalar.Int128]{kind: k, elem: bin.Int128Codec, parse: scalar.ParseInt128}, nil
	case scalar.U8:
		return unsignedCodec[uint8](k), nil
	case scalar.U16:
		return unsignedCodec[uint16](k), nil
	case scalar.U32:
		return unsignedCodec[uint32](k), nil
	case scalar.U64:
		return unsignedCodec[uint64](k), nil
	case scalar.U128:
		return typedCodec[scalar.Uint128]{kind: k, elem: bin.Uint128Codec, parse: scalar.ParseUint128}, nil
	case scalar.F32:
		return floatCodec[float32](k), nil
	case scalar.F64:
		return floatCodec[float64](k), nil
	}
	return nil, fmt.Errorf("%w: %s", scalar.ErrUnknownKind, k)
}

// render lays values out by shape: one bracketed vector for [n], arity-sized
// vectors per line when arity > 0, and one row per line for [rows, cols]
// (values are column-major).
func render(vals []string, shape []int, arity int) string {
	var b strings.Builder
	line := func(xs []string) {
		b.WriteString("[")
		b.WriteString(strings.Join(xs, ", "))
		b.WriteString("]\n")
	}

	if len(shape) == 2 {
		rows, cols := shape[0], shape[1]
		row := make([]string, cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				row[c] = vals[c*rows+r]
			}
			line(row)
		}
		return b.String()
	}

	if arity <= 0 {
		arity = len(vals)
	}
	for i := 0; i < len(vals); i += arity {
		line(vals[i : i+arity])
	}
	return b.String()
}

// parseFloats reads exactly n comma-separated float64 values.
func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("%w: %q has %d components, want %d", ErrUsage, s, len(parts), n)
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUsage, err)
		}
		out[i] = v
	}
	return out, nil
}
