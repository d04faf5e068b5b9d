// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

//go:build windows
// +build windows

package offsetindex

import (
	"os"

	"github.com/grailbio/logsearch/errors"
)

func mmap(f *os.File) ([]byte, error) {
	return nil, errors.E(errors.NotSupported, "map index", f.Name())
}

func munmap(data []byte) error {
	return nil
}
