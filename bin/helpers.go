// SPDX-License-Identifier: MIT

package bin

// Encode returns the Width()-byte encoding of v.
func Encode[T any](c Codec[T], v T) []byte {
	b := make([]byte, c.Width())
	c.Put(b, v)
	return b
}

// Append appends the encoding of v to dst and returns the extended slice.
func Append[T any](dst []byte, c Codec[T], v T) []byte {
	n := len(dst)
	dst = append(dst, make([]byte, c.Width())...)
	c.Put(dst[n:], v)
	return dst
}

// Decode reads one value from the front of b. It panics when b is short.
func Decode[T any](c Codec[T], b []byte) T {
	return c.Get(b)
}

// Check reports ErrShortInput when b cannot hold one value of c.
func Check[T any](c Codec[T], b []byte) error {
	if len(b) < c.Width() {
		return lengthErrorf("Check", c.Width(), len(b), ErrShortInput)
	}
	return nil
}

// DecodeExact decodes b, which must be exactly one encoded value long.
func DecodeExact[T any](c Codec[T], b []byte) (T, error) {
	var zero T
	switch w := c.Width(); {
	case len(b) < w:
		return zero, lengthErrorf("DecodeExact", w, len(b), ErrShortInput)
	case len(b) > w:
		return zero, lengthErrorf("DecodeExact", w, len(b), ErrTrailingInput)
	}
	return c.Get(b), nil
}
