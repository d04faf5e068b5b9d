// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package offsetindex maintains a persistent index from frame sequence
// numbers to byte offsets in an append-only log file.
//
// The index file is a flat array of 8-byte big-endian integers with no
// header. Entry i is the end offset of frame i: the offset at which
// frame i+1 starts, or the end of the data if frame i is the last one.
// Recording end offsets makes the last entry the cursor at which
// indexing resumes, so extending the index for a grown log only ever
// appends. Entries are never rewritten.
//
// The index file must live on a filesystem that supports shared
// memory maps (most network filesystems do not).
package offsetindex

import (
	"context"
	"encoding/binary"
	"sync"

	"github.com/grailbio/logsearch/frame"
	"github.com/grailbio/logsearch/log"
)

// Suffix is appended to a log path to derive its default index path.
const Suffix = ".idx"

// DefaultPath returns the default index path for the log at logPath.
func DefaultPath(logPath string) string {
	return logPath + Suffix
}

// Index is a read-only, memory-mapped view of an index file. The view
// is a snapshot taken by Load (or Reload): entries appended to the
// file afterwards, by this or another process, are not observed.
//
// Index is safe for concurrent use.
type Index struct {
	logPath, indexPath string

	mu sync.RWMutex
	// data is the mapped index file. It is nil for an empty index and
	// after Close.
	data []byte
}

// Load opens the index at indexPath, creating it if necessary, brings
// it up to date with the log at logPath, and maps it. The index file is
// exclusively locked while it is extended; the lock is released once
// the mapping is established. Load blocks until the lock is granted or
// ctx is done.
//
// Frames that are not yet completely written to the log are left out
// of the index; a later Load picks them up.
func Load(ctx context.Context, logPath, indexPath string) (*Index, error) {
	data, err := load(ctx, logPath, indexPath)
	if err != nil {
		return nil, err
	}
	x := &Index{logPath: logPath, indexPath: indexPath, data: data}
	log.Info.Printf("done loading msg offsets from %s (last message: %d)", indexPath, x.Last())
	return x, nil
}

// Reload brings the index file up to date with the log again and
// replaces the mapped view. On error the previous view is retained.
func (x *Index) Reload(ctx context.Context) error {
	data, err := load(ctx, x.logPath, x.indexPath)
	if err != nil {
		return err
	}
	x.mu.Lock()
	old := x.data
	x.data = data
	x.mu.Unlock()
	return munmap(old)
}

// Close unmaps the index. Lookups after Close find nothing.
func (x *Index) Close() error {
	x.mu.Lock()
	defer x.mu.Unlock()
	err := munmap(x.data)
	x.data = nil
	return err
}

// Path returns the path of the index file.
func (x *Index) Path() string { return x.indexPath }

// LogPath returns the path of the indexed log file.
func (x *Index) LogPath() string { return x.logPath }

// Len returns the number of entries in the index.
func (x *Index) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.data) / frame.EntrySize
}

// Last returns the greatest valid sequence number, or frame.NoSeq if
// the index is empty.
func (x *Index) Last() frame.SeqNum {
	return frame.SeqNum(x.Len() - 1)
}

// Lookup returns the end offset recorded for frame seq, that is, the
// offset at which frame seq+1 starts. It returns false if seq is not
// in the index.
//
// The mapping aliases the index file. A writer that bypasses the lock
// taken by Load and rewrites the file changes what Lookup returns.
func (x *Index) Lookup(seq frame.SeqNum) (frame.ByteOffset, bool) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	if seq < 0 || int64(seq) >= int64(len(x.data)/frame.EntrySize) {
		return 0, false
	}
	i := int(seq) * frame.EntrySize
	return frame.ByteOffset(binary.BigEndian.Uint64(x.data[i : i+frame.EntrySize])), true
}

// Entries returns a copy of every entry in the index.
func (x *Index) Entries() []frame.ByteOffset {
	x.mu.RLock()
	defer x.mu.RUnlock()
	entries := make([]frame.ByteOffset, len(x.data)/frame.EntrySize)
	for i := range entries {
		entries[i] = frame.ByteOffset(binary.BigEndian.Uint64(x.data[i*frame.EntrySize:]))
	}
	return entries
}
