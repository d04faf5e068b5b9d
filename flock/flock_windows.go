// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

//go:build windows
// +build windows

package flock

import (
	"context"
	"os"

	"github.com/grailbio/logsearch/errors"
)

type unsupported struct{ name string }

func newPlatformLock(f *os.File) FileLock {
	return unsupported{f.Name()}
}

func (u unsupported) Lock(context.Context) error {
	return errors.E(errors.NotSupported, "lock", u.name)
}

func (u unsupported) Unlock() error {
	return errors.E(errors.NotSupported, "unlock", u.name)
}
