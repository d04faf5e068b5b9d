// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package fieldsearch finds a message in an indexed log by binary
// searching an 8-byte big-endian field in message bodies. The field's
// values must be non-decreasing in sequence order.
//
// Probes are made through the offset index, whose entries are end
// offsets: probing sequence number s reads the message that starts at
// the end of message s, that is, message s+1. A search result s thus
// resolves, through offsetindex.Index.Lookup, to the start of the
// matching message; Locate performs that final step.
package fieldsearch

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/grailbio/logsearch/errors"
	"github.com/grailbio/logsearch/fileio"
	"github.com/grailbio/logsearch/frame"
	"github.com/grailbio/logsearch/log"
	"github.com/grailbio/logsearch/offsetindex"
)

// ReadField reads the field at byte offset field of the body of the
// message that begins at idx.Lookup(seq). It fails if seq is not in the
// index or the field lies past the end of r.
func ReadField(r io.ReaderAt, idx *offsetindex.Index, seq frame.SeqNum, field uint64) (uint64, error) {
	off, ok := idx.Lookup(seq)
	if !ok {
		return 0, errors.E(errors.NotExist, fmt.Sprintf("lookup message offset %d (last %d)", seq, idx.Last()))
	}
	pos := uint64(off) + frame.LengthSize + field
	if pos < uint64(off) || pos > math.MaxInt64-frame.FieldSize {
		return 0, errors.E(errors.Invalid, fmt.Sprintf("field offset %d out of range", field))
	}
	v, err := fileio.ReadUint64At(r, int64(pos))
	switch {
	case err == io.EOF || err == io.ErrUnexpectedEOF:
		return 0, errors.E(errors.Integrity, fmt.Sprintf("read value of field at offset %d", pos), err)
	case err != nil:
		return 0, errors.E(fmt.Sprintf("read value of field at offset %d", pos), err)
	}
	return v, nil
}

// Search opens the log at logPath and runs SearchAt on it.
func Search(logPath string, idx *offsetindex.Index, target frame.Target) (seq frame.SeqNum, found bool, err error) {
	f, err := os.Open(logPath)
	if err != nil {
		return frame.NoSeq, false, errors.E("open log", logPath, err)
	}
	defer fileio.CloseAndReport(f, &err)
	return SearchAt(f, idx, target)
}

// SearchAt binary searches the messages of the log r for target. It
// returns false if target is greater than the last indexed value, or
// if the index has fewer than two entries, so that there is nothing to
// probe.
//
// Otherwise the returned sequence number is where the search
// converged: an exact match if one was probed, else the first probe
// whose value is greater than target. It is an exact match when values
// are strictly increasing and target is present; callers that need
// certainty must check the value themselves. The message with sequence
// number 0 is never probed.
func SearchAt(r io.ReaderAt, idx *offsetindex.Index, target frame.Target) (frame.SeqNum, bool, error) {
	last := idx.Last()
	if last < 1 {
		log.Info.Printf("%d messages indexed; too few to search", idx.Len())
		return frame.NoSeq, false, nil
	}
	// First check whether target is in the file yet.
	c, err := compare(r, idx, last-1, target)
	if err != nil {
		return frame.NoSeq, false, err
	}
	switch {
	case c < 0:
		return frame.NoSeq, false, nil
	case c == 0:
		return last, true, nil
	}
	low, high := frame.SeqNum(0), last
	for high-low > 1 {
		mid := (low + high) / 2
		c, err := compare(r, idx, mid, target)
		if err != nil {
			return frame.NoSeq, false, err
		}
		switch {
		case c < 0:
			low = mid
		case c == 0:
			low, high = mid, mid
		default:
			high = mid
		}
	}
	return high, true, nil
}

// Locate runs Search and resolves the result to a byte offset in the
// log through the index.
func Locate(logPath string, idx *offsetindex.Index, target frame.Target) (frame.ByteOffset, bool, error) {
	seq, found, err := Search(logPath, idx, target)
	if err != nil || !found {
		return 0, false, err
	}
	off, ok := idx.Lookup(seq)
	log.Info.Printf("%s: %v => %d => %d", logPath, target, seq, off)
	return off, ok, nil
}

// compare returns the sign of the probed value minus target.Value.
func compare(r io.ReaderAt, idx *offsetindex.Index, seq frame.SeqNum, target frame.Target) (int, error) {
	v, err := ReadField(r, idx, seq, target.Field)
	if err != nil {
		return 0, err
	}
	log.Debug.Printf("binary search: %d[%d] => %d", seq, target.Field, v)
	switch {
	case v < target.Value:
		return -1, nil
	case v > target.Value:
		return 1, nil
	}
	return 0, nil
}
