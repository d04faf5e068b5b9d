// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package offsetindex

import (
	"bufio"
	"context"
	"encoding/binary"
	"io"
	"os"

	"github.com/grailbio/logsearch/errors"
	"github.com/grailbio/logsearch/fileio"
	"github.com/grailbio/logsearch/flock"
	"github.com/grailbio/logsearch/frame"
	"github.com/grailbio/logsearch/log"
)

// load extends the index file and maps it. The lock is held from
// before the last entry is read until after the map is established.
func load(ctx context.Context, logPath, indexPath string) (data []byte, err error) {
	defer func() {
		if err != nil && data != nil {
			if err := munmap(data); err != nil {
				log.Error.Printf("unmap %s: %v", indexPath, err)
			}
			data = nil
		}
	}()
	f, err := os.OpenFile(indexPath, os.O_RDWR|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		return nil, errors.E("open index", indexPath, err)
	}
	defer fileio.CloseAndReport(f, &err)
	lock := flock.New(f)
	if err = lock.Lock(ctx); err != nil {
		return nil, err
	}
	defer errors.CleanUp(lock.Unlock, &err)
	if err = update(logPath, f); err != nil {
		return nil, err
	}
	return mmap(f)
}

// update appends an entry to idx for every complete frame in the log
// past the last indexed one. It stops silently at the first frame
// whose length prefix or body has not been completely written.
func update(logPath string, idx *os.File) (err error) {
	info, err := idx.Stat()
	if err != nil {
		return errors.E("stat index", idx.Name(), err)
	}
	size := info.Size()
	if torn := size % frame.EntrySize; torn != 0 {
		log.Warn.Printf("%s: dropping %d bytes of a torn trailing entry", idx.Name(), torn)
		size -= torn
		if err := idx.Truncate(size); err != nil {
			return errors.E("truncate index", idx.Name(), err)
		}
	}
	var cursor uint64
	if size > 0 {
		if cursor, err = fileio.ReadUint64At(idx, size-frame.EntrySize); err != nil {
			return errors.E("read last entry in index", idx.Name(), err)
		}
	}

	lf, err := os.Open(logPath)
	if err != nil {
		return errors.E("open log", logPath, err)
	}
	defer fileio.CloseAndReport(lf, &err)
	linfo, err := lf.Stat()
	if err != nil {
		return errors.E("stat log", logPath, err)
	}
	// Frames are indexed only if they end within the size observed
	// here; bytes appended while the update runs wait for the next one.
	logSize := uint64(linfo.Size())
	if cursor > logSize {
		log.Warn.Printf("%s is %d bytes, shorter than its index says (%d); not updating", logPath, logSize, cursor)
		return nil
	}
	newData := logSize - cursor
	if newData < frame.LengthSize {
		log.Info.Printf("the index file %s is already up-to-date", idx.Name())
		return nil
	}
	log.Info.Printf("the log file has grown by %d bytes since the index was last written; updating", newData)

	var (
		w      = bufio.NewWriter(idx)
		prefix [frame.LengthSize]byte
		entry  [frame.EntrySize]byte
		n      int
	)
	for {
		err := fileio.ReadFullAt(lf, prefix[:], int64(cursor))
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			return errors.E("read frame length", logPath, err)
		}
		length := frame.Length(prefix[:])
		if length < frame.LengthSize {
			log.Warn.Printf("%s: invalid frame length %d at offset %d; not indexing past it", logPath, length, cursor)
			break
		}
		if length > logSize-cursor {
			log.Debug.Printf("%s: frame at offset %d is incomplete (%d of %d bytes)", logPath, cursor, logSize-cursor, length)
			break
		}
		cursor += length
		binary.BigEndian.PutUint64(entry[:], cursor)
		if _, err := w.Write(entry[:]); err != nil {
			return errors.E("write entry to index", idx.Name(), err)
		}
		n++
	}
	if err := w.Flush(); err != nil {
		return errors.E("write entry to index", idx.Name(), err)
	}
	log.Info.Printf("appended %d entries to %s", n, idx.Name())
	return nil
}
