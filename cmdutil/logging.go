// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package cmdutil provides utility routines for implementing command line
// tools.
package cmdutil

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/grailbio/logsearch/log"
	"v.io/x/lib/cmdline"
)

// Fail writes err to env.Stderr with no prefix and no timestamp, so
// that it is seen regardless of the log level, and returns an error
// that makes cmdline.Main exit with the given code without printing
// anything further.
func Fail(env *cmdline.Env, code int, err error) error {
	m := fmt.Sprint(err)
	fmt.Fprint(env.Stderr, strings.TrimSuffix(m, "\n")+"\n")
	return cmdline.ErrExitCode(code)
}

// Verbosity is a flag.Value that counts how many times it is given,
// so that "-v -v -v" selects log.Info. It also accepts an explicit
// count ("-v=4") or a level name ("-v=debug").
type Verbosity int

// String implements flag.Value.
func (v *Verbosity) String() string {
	if v == nil {
		return "0"
	}
	return strconv.Itoa(int(*v))
}

// Set implements flag.Value.
func (v *Verbosity) Set(s string) error {
	if n, err := strconv.Atoi(s); err == nil && n >= 0 {
		*v = Verbosity(n)
		return nil
	}
	if b, err := strconv.ParseBool(s); err == nil {
		if b {
			*v++
		} else {
			*v = 0
		}
		return nil
	}
	l, err := log.ParseLevel(s)
	if err != nil {
		return err
	}
	*v = Verbosity(l - log.Off)
	return nil
}

// IsBoolFlag lets the flag be given without a value.
func (*Verbosity) IsBoolFlag() bool { return true }

// Level returns the log level selected by v.
func (v Verbosity) Level() log.Level {
	return log.FromVerbosity(int(v))
}
