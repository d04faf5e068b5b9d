// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

//go:build !windows
// +build !windows

package offsetindex

import (
	"os"

	"github.com/grailbio/logsearch/errors"
	"golang.org/x/sys/unix"
)

// mmap maps the whole of f read-only. An empty file maps to nil.
func mmap(f *os.File) ([]byte, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, errors.E("stat index", f.Name(), err)
	}
	size := info.Size()
	if size == 0 {
		return nil, nil
	}
	if int64(int(size)) != size {
		return nil, errors.E(errors.NotSupported, "map index", f.Name(), "too large for the address space")
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, errors.E("map index", f.Name(), err)
	}
	return data, nil
}

func munmap(data []byte) error {
	if data == nil {
		return nil
	}
	if err := unix.Munmap(data); err != nil {
		return errors.E("unmap index", err)
	}
	return nil
}
