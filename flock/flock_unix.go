// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

//go:build !windows
// +build !windows

package flock

import (
	"context"
	"os"
	"sync"

	"github.com/grailbio/logsearch/errors"
	"github.com/grailbio/logsearch/log"
	"golang.org/x/sys/unix"
)

type unixlock struct {
	name string
	file *os.File
	fd   int
	mu   sync.Mutex
}

func newPlatformLock(f *os.File) FileLock {
	return &unixlock{name: f.Name(), file: f, fd: -1}
}

// Lock locks the file. The blocking flock runs in a separate
// goroutine so that ctx can abandon the wait; a lock granted after
// ctx is done is released immediately.
func (f *unixlock) Lock(ctx context.Context) (err error) {
	reqCh := make(chan func() error, 2)
	doneCh := make(chan error, 2)
	go func() {
		var err error
		for req := range reqCh {
			if err == nil {
				err = req()
			}
			doneCh <- err
		}
	}()
	reqCh <- f.doLock
	select {
	case <-ctx.Done():
		reqCh <- f.doUnlock
		err = errors.E("lock", f.name, ctx.Err())
	case err = <-doneCh:
	}
	close(reqCh)
	return err
}

// Unlock unlocks the file.
func (f *unixlock) Unlock() error {
	return f.doUnlock()
}

func (f *unixlock) doLock() error {
	f.mu.Lock() // Serialize the lock within one lock object.

	// The duplicate shares the open file description, and hence the
	// lock, but outlives a Close of the caller's *os.File.
	fd, err := unix.Dup(int(f.file.Fd()))
	if err != nil {
		f.mu.Unlock()
		return errors.E(errors.Unavailable, "lock", f.name, err)
	}
	err = unix.Flock(fd, unix.LOCK_EX|unix.LOCK_NB)
	if err == unix.EWOULDBLOCK || err == unix.EAGAIN {
		log.Info.Printf("waiting for lock %s", f.name)
		err = unix.EINTR
		for err == unix.EINTR {
			err = unix.Flock(fd, unix.LOCK_EX)
		}
	}
	if err != nil {
		unix.Close(fd)
		f.mu.Unlock()
		return errors.E(errors.Unavailable, "lock", f.name, err)
	}
	f.fd = fd
	return nil
}

func (f *unixlock) doUnlock() error {
	err := unix.Flock(f.fd, unix.LOCK_UN)
	if err := unix.Close(f.fd); err != nil {
		log.Error.Printf("close %s: %v", f.name, err)
	}
	f.fd = -1
	f.mu.Unlock()
	if err != nil {
		return errors.E("unlock", f.name, err)
	}
	return nil
}
