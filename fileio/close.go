// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package fileio provides small helpers for reading and closing local
// files.
package fileio

import (
	"fmt"
	"io"

	"github.com/grailbio/logsearch/errors"
)

type named interface {
	// Name returns the path name.
	Name() string
}

// CloseAndReport returns a defer-able helper that calls f.Close and reports errors, if any,
// to *err. Pass your function's named return error. Example usage:
//
//	func search(path string) (_ frame.SeqNum, err error) {
//	  f, err := os.Open(path)
//	  if err != nil { ... }
//	  defer fileio.CloseAndReport(f, &err)
//	  ...
//	}
//
// If your function returns with an error, any f.Close error is appended to it.
func CloseAndReport(f io.Closer, err *error) {
	err2 := f.Close()
	if err2 == nil {
		return
	}
	if *err != nil {
		var message string
		if namer, ok := f.(named); ok {
			message = fmt.Sprintf("second error on Close %s: %v", namer.Name(), err2)
		} else {
			message = fmt.Sprintf("second error on Close: %v", err2)
		}
		*err = errors.E(*err, message)
		return
	}
	*err = err2
}
