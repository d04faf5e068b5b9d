// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package errors_test

import (
	"context"
	goerrors "errors"
	"fmt"
	"os"
	"testing"

	"github.com/grailbio/logsearch/errors"
)

func TestError(t *testing.T) {
	_, err := os.Open("/dev/notexist")
	e1 := errors.E(errors.NotExist, "open log", err)
	if got, want := e1.Error(), "open log: resource does not exist: open /dev/notexist: no such file or directory"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	e2 := errors.E(err)
	if got, want := e2.Error(), "resource does not exist: open /dev/notexist: no such file or directory"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	for _, e := range []error{e1, e2} {
		if !errors.Is(errors.NotExist, e) {
			t.Errorf("error %v should be NotExist", e)
		}
		if !goerrors.Is(e, os.ErrNotExist) {
			t.Errorf("error %v should unwrap to os.ErrNotExist", e)
		}
	}
}

func TestErrorChaining(t *testing.T) {
	_, err := os.Open("/dev/notexist")
	err = errors.E("open index", err)
	err = errors.E(errors.Unavailable, "load offsets", err)
	if got, want := err.Error(), "load offsets: resource unavailable:\n\topen index: resource does not exist: open /dev/notexist: no such file or directory"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if !errors.Is(errors.Unavailable, err) {
		t.Errorf("error %v should be Unavailable", err)
	}
}

func TestKindInheritance(t *testing.T) {
	inner := errors.E(errors.Integrity, "entry 3 past end of log")
	outer := errors.E("search", inner)
	if !errors.Is(errors.Integrity, outer) {
		t.Errorf("error %v should be Integrity", outer)
	}
	if errors.Is(errors.NotExist, outer) {
		t.Errorf("error %v should not be NotExist", outer)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := errors.E("lock index", ctx.Err()); !errors.Is(errors.Canceled, err) {
		t.Errorf("error %v should be Canceled", err)
	}
}

func TestMessage(t *testing.T) {
	for _, c := range []struct {
		err     error
		message string
	}{
		{errors.E("hello"), "hello"},
		{errors.E("hello", "world"), "hello world"},
		{errors.E(errors.Invalid, "bad field"), "bad field: invalid argument"},
	} {
		if got, want := c.err.Error(), c.message; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestMatch(t *testing.T) {
	err := errors.E(errors.Integrity, "short read", fmt.Errorf("unexpected EOF"))
	if !errors.Match(errors.E(errors.Integrity), err) {
		t.Errorf("kind should match %v", err)
	}
	if errors.Match(errors.E(errors.NotExist), err) {
		t.Errorf("kind should not match %v", err)
	}
	if !errors.Match(errors.E("short read"), err) {
		t.Errorf("message should match %v", err)
	}
}
