// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package flock implements an exclusive advisory lock on an open file.
// Locks are associated with the file's open file description, so two
// independent opens of the same path contend for the lock even within
// one process. The lock is advisory: processes that do not take it are
// not excluded.
package flock

import (
	"context"
	"os"
)

// FileLock is an exclusive lock on a file.
type FileLock interface {
	// Lock blocks until the lock is acquired or ctx is done. Iff Lock
	// returns nil, the caller must call Unlock later.
	Lock(ctx context.Context) error
	// Unlock releases the lock.
	Unlock() error
}

// New returns a lock on the open file f. The caller may close f while
// the lock is held; the lock keeps its own reference to the file.
func New(f *os.File) FileLock {
	return newPlatformLock(f)
}
