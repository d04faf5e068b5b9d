// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package errors

import "fmt"

// CleanUp is defer-able syntactic sugar that calls f and reports an error, if any,
// to *dst. Pass the caller's named return error. Example usage:
//
//	func load(path string) (err error) {
//	  lock := flock.New(f)
//	  if err := lock.Lock(ctx); err != nil { ... }
//	  defer errors.CleanUp(lock.Unlock, &err)
//	  ...
//	}
//
// If the caller returns with its own error, any error from cleanUp is
// appended to its message rather than replacing it.
func CleanUp(cleanUp func() error, dst *error) {
	err := cleanUp()
	if err == nil {
		return
	}
	if *dst == nil {
		*dst = err
		return
	}
	// err is not chained as *dst's cause: *dst may already have a
	// meaningful cause, and the two failures are usually unrelated.
	*dst = E(*dst, fmt.Sprintf("second error in clean up: %v", err))
}
