// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package frame_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/grailbio/logsearch/frame"
	"github.com/grailbio/logsearch/frame/frametest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLength(t *testing.T) {
	var p [frame.LengthSize]byte
	frame.PutLength(p[:], 0x0102)
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 1, 2}, p[:])
	assert.Equal(t, uint64(0x0102), frame.Length(p[:]))
}

func TestTargetString(t *testing.T) {
	assert.Equal(t, "body[16..24] = 30", frame.Target{Field: 16, Value: 30}.String())
}

func TestWriterLayout(t *testing.T) {
	var buf bytes.Buffer
	w := frametest.NewWriter(&buf)
	w.Clock = func() uint64 { return 1234 }
	require.NoError(t, w.Write(10))
	require.NoError(t, w.WritePadded(3, 20, 21))
	rest, err := w.WriteTruncated(5, 30)
	require.NoError(t, err)
	assert.Equal(t, []frame.ByteOffset{32, 75}, w.Ends())

	p := buf.Bytes()
	require.Len(t, p, 80)
	assert.Equal(t, uint64(32), frame.Length(p))
	body := p[frame.LengthSize:32]
	assert.Equal(t, uint64(0), binary.BigEndian.Uint64(body[0:]))
	assert.Equal(t, uint64(1234), binary.BigEndian.Uint64(body[8:]))
	assert.Equal(t, uint64(10), binary.BigEndian.Uint64(body[frame.HeaderSize:]))

	assert.Equal(t, uint64(43), frame.Length(p[32:]))
	body = p[32+frame.LengthSize : 75]
	assert.Equal(t, uint64(1), binary.BigEndian.Uint64(body[0:]))
	assert.Equal(t, uint64(21), binary.BigEndian.Uint64(body[frame.HeaderSize+frame.FieldSize:]))
	assert.Equal(t, []byte{0xff, 0xff, 0xff}, body[len(body)-3:])

	require.NoError(t, w.Complete(rest))
	assert.Equal(t, []frame.ByteOffset{32, 75, 107}, w.Ends())
	assert.Equal(t, uint64(32), frame.Length(buf.Bytes()[75:]))
}
