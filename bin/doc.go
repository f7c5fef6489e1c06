// SPDX-License-Identifier: MIT

// Package bin is the byte codec of lvmath: an exact, fixed-width,
// big-endian wire form for every numeric kind and for composites of them.
//
// Encoding rules:
//
//	integers   most-significant byte first; signed kinds are written as their
//	           two's-complement bit pattern
//	f32 / f64  IEEE-754 bit pattern, then the 32/64-bit integer rule
//	           (NaN payloads, signed zero and infinities survive bit-exact)
//	i128/u128  the 16-byte integer rule (Hi word first)
//	arrays     concatenation of the element encodings in index order
//
// Every codec has a fixed Width known from its type alone, so the format
// carries no length prefix, version or type tag. Pairing a payload with its
// type is the caller's job (see package frame for a self-describing wrapper).
//
// Contract on malformed input: Get/Decode panic when handed fewer than Width
// bytes; that is a programmer error. Use Check or DecodeExact at trust
// boundaries where the length is not already known to be right.
//
// Usage:
//
//	c := bin.For[int16]()
//	b := bin.Encode(c, -2)       // []byte{0xFF, 0xFE}
//	v := bin.Decode(c, b)        // -2
package bin
