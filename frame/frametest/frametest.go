// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package frametest writes synthetic frame-structured logs for tests.
package frametest

import (
	"encoding/binary"
	"io"
	"time"

	"github.com/grailbio/logsearch/frame"
)

// Writer appends frames to an underlying writer. Each frame body holds
// a counter, a timestamp, the payload fields and optional padding.
// Writer remembers the end offset of every complete frame it writes,
// which is exactly what an offset index over the output must contain.
type Writer struct {
	// Clock returns the timestamp stored in each frame header. It
	// defaults to microseconds since the Unix epoch.
	Clock func() uint64
	// Step is added to the counter after every frame.
	Step uint64

	w       io.Writer
	counter uint64
	off     uint64
	ends    []frame.ByteOffset
}

// NewWriter returns a Writer that appends to w, which is assumed to be
// empty.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		Clock: func() uint64 { return uint64(time.Now().UnixNano() / 1000) },
		Step:  1,
		w:     w,
	}
}

// Write appends one frame carrying the given payload fields.
func (w *Writer) Write(payload ...uint64) error {
	return w.WritePadded(0, payload...)
}

// WritePadded appends one frame carrying the given payload fields
// followed by pad filler bytes.
func (w *Writer) WritePadded(pad int, payload ...uint64) error {
	p := w.encode(pad, payload)
	if _, err := w.w.Write(p); err != nil {
		return err
	}
	w.off += uint64(len(p))
	w.ends = append(w.ends, frame.ByteOffset(w.off))
	return nil
}

// WriteTruncated appends only the first keep bytes of the frame that
// Write(payload...) would produce, leaving an incomplete frame at the
// tail. It returns the bytes that were withheld, so the frame can be
// completed later with Complete.
func (w *Writer) WriteTruncated(keep int, payload ...uint64) ([]byte, error) {
	p := w.encode(0, payload)
	if keep > len(p) {
		keep = len(p)
	}
	if _, err := w.w.Write(p[:keep]); err != nil {
		return nil, err
	}
	w.off += uint64(keep)
	return p[keep:], nil
}

// Complete appends the remainder of a frame started by WriteTruncated.
func (w *Writer) Complete(rest []byte) error {
	if _, err := w.w.Write(rest); err != nil {
		return err
	}
	w.off += uint64(len(rest))
	w.ends = append(w.ends, frame.ByteOffset(w.off))
	return nil
}

// Ends returns the end offset of every complete frame written so far.
func (w *Writer) Ends() []frame.ByteOffset {
	return append(make([]frame.ByteOffset, 0, len(w.ends)), w.ends...)
}

func (w *Writer) encode(pad int, payload []uint64) []byte {
	n := frame.LengthSize + frame.HeaderSize + frame.FieldSize*len(payload) + pad
	p := make([]byte, n)
	frame.PutLength(p, uint64(n))
	b := p[frame.LengthSize:]
	binary.BigEndian.PutUint64(b[0:], w.counter)
	binary.BigEndian.PutUint64(b[8:], w.Clock())
	for i, v := range payload {
		binary.BigEndian.PutUint64(b[frame.HeaderSize+frame.FieldSize*i:], v)
	}
	for i := frame.HeaderSize + frame.FieldSize*len(payload); i < len(b); i++ {
		b[i] = 0xff
	}
	w.counter += w.Step
	return p
}
