// SPDX-License-Identifier: MIT

package frame

import (
	"errors"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// Writer streams frames to an io.Writer, one MessagePack value each.
type Writer struct {
	enc *msgpack.Encoder
}

// NewWriter returns a Writer that encodes onto w. It does not buffer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{enc: msgpack.NewEncoder(w)}
}

// Write validates f and appends it to the stream.
func (w *Writer) Write(f Frame) error {
	if err := f.Validate(); err != nil {
		return frameErrorf("Writer.Write", err)
	}
	if err := w.enc.Encode(f.wire()); err != nil {
		return frameErrorf("Writer.Write", err)
	}
	return nil
}

// Reader reads frames written by Writer.
type Reader struct {
	dec *msgpack.Decoder
}

// NewReader returns a Reader decoding from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{dec: msgpack.NewDecoder(r)}
}

// Read returns the next frame, or io.EOF once the stream is exhausted.
func (r *Reader) Read() (Frame, error) {
	var w wire
	if err := r.dec.Decode(&w); err != nil {
		if errors.Is(err, io.EOF) {
			return Frame{}, io.EOF
		}
		return Frame{}, frameErrorf("Reader.Read", err)
	}
	f, err := w.frame()
	if err != nil {
		return Frame{}, frameErrorf("Reader.Read", err)
	}
	return f, nil
}
