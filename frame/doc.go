// SPDX-License-Identifier: MIT

// Package frame wraps raw codec payloads in a self-describing envelope.
//
// The bin codecs write bare big-endian components: a 12-byte payload may be
// a Vec3 of float32 or a Vec3 of int32 and nothing in the bytes says which.
// A Frame carries the scalar Kind and the Shape next to the Payload and is
// serialized with MessagePack (github.com/vmihailenco/msgpack/v5):
//
//	{"v": 1, "kind": "f32", "shape": [3], "payload": <12 bytes>}
//
// Shapes are [n] for vectors and quaternions and [rows, cols] for matrices.
// Constructors (ForVec3, ForMat, ...) build frames from values; the Decode*
// helpers check kind and shape before decoding the payload.
//
// Writer and Reader stream frames back to back over an io.Writer/io.Reader.
package frame
