// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package frame defines the on-disk layout of length-prefixed log
// frames and the value types shared by the offset index and the field
// search.
//
// A log file is a sequence of frames. Each frame starts with an 8-byte
// big-endian length that counts the whole frame, including the length
// itself; the next frame begins exactly that many bytes later. The
// remaining bytes form the body. By convention the body starts with a
// 16-byte header (a producer counter and a timestamp) followed by an
// application payload, which may hold further 8-byte big-endian fields
// at fixed offsets.
package frame

import (
	"encoding/binary"
	"fmt"
)

const (
	// LengthSize is the size of the length prefix of every frame.
	LengthSize = 8
	// HeaderSize is the size of the conventional counter and timestamp
	// at the start of a frame body.
	HeaderSize = 16
	// FieldSize is the size of a searchable body field.
	FieldSize = 8
	// EntrySize is the size of a single offset index entry.
	EntrySize = 8
)

// SeqNum is the 0-based ordinal of a frame among the frames seen by
// index construction.
type SeqNum int64

// NoSeq is the SeqNum reported when there is no valid sequence number,
// for example the last sequence number of an empty index.
const NoSeq = SeqNum(-1)

// ByteOffset is a position in the log file.
type ByteOffset uint64

// Target names a body field and the value searched for in it. Field is
// measured in bytes from the start of the frame body, that is,
// LengthSize bytes past the start of the frame.
type Target struct {
	Field uint64
	Value uint64
}

// String returns a description of the target in terms of body bytes.
func (t Target) String() string {
	return fmt.Sprintf("body[%d..%d] = %d", t.Field, t.Field+FieldSize, t.Value)
}

// Length decodes a frame length prefix from the first LengthSize bytes
// of p.
func Length(p []byte) uint64 {
	return binary.BigEndian.Uint64(p[:LengthSize])
}

// PutLength encodes n as a frame length prefix into p.
func PutLength(p []byte, n uint64) {
	binary.BigEndian.PutUint64(p[:LengthSize], n)
}
