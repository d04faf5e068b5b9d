// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package cmdutil

import (
	"github.com/grailbio/logsearch/log"
	"v.io/x/lib/cmdline"
)

// RunnerFunc is an adapter that turns regular functions into cmdline.Runners.
type RunnerFunc func(*cmdline.Env, []string) error

// Run implements the cmdline.Runner interface method by calling f(env, args).
func (f RunnerFunc) Run(env *cmdline.Env, args []string) error {
	return f(env, args)
}

// WithLogging returns a runner that directs the log package to
// env.Stderr at the level selected by v, which is read after flags
// are parsed, and then runs r. Messages carry microsecond timestamps.
func WithLogging(v *Verbosity, r cmdline.Runner) cmdline.Runner {
	return RunnerFunc(func(env *cmdline.Env, args []string) error {
		log.SetOutput(env.Stderr)
		log.SetFlags(log.LstdFlags | log.Lmicroseconds)
		log.SetLevel(v.Level())
		log.Debug.Printf("done parsing command line (log level %v)", v.Level())
		return r.Run(env, args)
	})
}
