// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package fileio

import (
	"encoding/binary"
	"io"
)

// ReadFullAt reads exactly len(p) bytes at off into p. It returns
// io.EOF if no bytes are available at off and io.ErrUnexpectedEOF if
// only some of them are; both mean that the data has not been written
// (yet).
func ReadFullAt(r io.ReaderAt, p []byte, off int64) error {
	n, err := r.ReadAt(p, off)
	if n == len(p) {
		// ReaderAt may return io.EOF along with a full read at the end
		// of the file.
		return nil
	}
	switch {
	case err == io.EOF && n > 0:
		return io.ErrUnexpectedEOF
	case err != nil:
		return err
	}
	return io.ErrUnexpectedEOF
}

// ReadUint64At reads the 8-byte big-endian integer at off, with the
// end-of-data errors of ReadFullAt.
func ReadUint64At(r io.ReaderAt, off int64) (uint64, error) {
	var buf [8]byte
	if err := ReadFullAt(r, buf[:], off); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(buf[:]), nil
}
