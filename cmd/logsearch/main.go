// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Command logsearch finds a message in a frame-structured log file and
// prints its byte offset. See newCmdRoot for usage.
package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/grailbio/logsearch/cmdutil"
	"github.com/grailbio/logsearch/errors"
	"github.com/grailbio/logsearch/fieldsearch"
	"github.com/grailbio/logsearch/frame"
	"github.com/grailbio/logsearch/log"
	"github.com/grailbio/logsearch/offsetindex"
	"v.io/x/lib/cmdline"
)

const (
	exitNotFound = 1
	exitFailure  = 2
)

type options struct {
	field, target, indexFile string
	verbosity                cmdutil.Verbosity
}

func newCmdRoot() *cmdline.Command {
	opts := new(options)
	cmd := &cmdline.Command{
		Runner: cmdutil.WithLogging(&opts.verbosity, cmdutil.RunnerFunc(func(env *cmdline.Env, args []string) error {
			return run(env, args, opts)
		})),
		Name:  "logsearch",
		Short: "Search a log file for a value",
		Long: `
Command logsearch takes a log-formatted file and searches for a particular
message. If the target message is found, the byte offset of that message
within the log file is printed and logsearch exits with status 0. If it is
not found, nothing is printed and the exit status is 1. Other failures exit
with status 2.

A log file is a sequence of frames, each prefixed by its own length as an
8-byte big-endian integer. logsearch maintains an index of frame offsets
next to the log (by default <file>.idx) and extends it on every run, so
repeated searches of a growing log only read what was appended.

With -field and -target, logsearch binary searches for the frame whose
8-byte big-endian field at byte offset -field of the body equals -target;
field values must not decrease along the log. With -target alone, -target
is a sequence number and its offset is looked up directly. With neither,
only the index is updated.

Example:

  logsearch -f 16 -t 1500000000 -v -v -v events.log
`,
		ArgsName: "<file>",
		ArgsLong: "<file> is the log file to search.",
	}
	for _, name := range []string{"field", "f"} {
		cmd.Flags.StringVar(&opts.field, name, "", "A byte offset into message bodies, to identify a field.")
	}
	for _, name := range []string{"target", "t"} {
		cmd.Flags.StringVar(&opts.target, name, "", "The target field value to search for, or a sequence number without -field.")
	}
	cmd.Flags.StringVar(&opts.indexFile, "index-file", "", "Where to cache the index; defaults to <file>"+offsetindex.Suffix+".")
	cmd.Flags.Var(&opts.verbosity, "v", "Sets the level of verbosity; repeat for more (error, warn, info, debug, trace).")
	return cmd
}

func main() {
	cmdline.Main(newCmdRoot())
}

func run(env *cmdline.Env, args []string, opts *options) error {
	if len(args) != 1 {
		return env.UsageErrorf("exactly one <file> is required, got %d arguments", len(args))
	}
	logPath := args[0]
	indexPath := opts.indexFile
	if indexPath == "" {
		indexPath = offsetindex.DefaultPath(logPath)
	}
	idx, err := offsetindex.Load(context.Background(), logPath, indexPath)
	if err != nil {
		return cmdutil.Fail(env, exitFailure, err)
	}
	defer func() {
		if err := idx.Close(); err != nil {
			log.Error.Printf("close index %s: %v", idx.Path(), err)
		}
	}()

	switch {
	case opts.target != "" && opts.field != "":
		target, err := parseTarget(opts.field, opts.target)
		if err != nil {
			return env.UsageErrorf("%v", err)
		}
		log.Info.Printf("searching for the message such that %v in %s", target, logPath)
		off, found, err := fieldsearch.Locate(logPath, idx, target)
		if err != nil {
			return cmdutil.Fail(env, exitFailure, err)
		}
		return report(env, off, found)
	case opts.target != "":
		n, err := strconv.ParseInt(opts.target, 10, 64)
		if err != nil || n < 0 {
			return env.UsageErrorf("%v", errors.E(errors.Invalid, "parse sequence number", opts.target))
		}
		seq := frame.SeqNum(n)
		log.Info.Printf("searching for message no %d in %s", seq, logPath)
		off, found := idx.Lookup(seq)
		log.Info.Printf("%s: %d => %d (found: %v)", logPath, seq, off, found)
		return report(env, off, found)
	default:
		log.Info.Print("no target specified, skipping search (the index was updated though)")
		return nil
	}
}

func parseTarget(field, value string) (frame.Target, error) {
	var (
		t   frame.Target
		err error
	)
	if t.Field, err = strconv.ParseUint(field, 10, 64); err != nil {
		return t, errors.E(errors.Invalid, "parse field", err)
	}
	if t.Value, err = strconv.ParseUint(value, 10, 64); err != nil {
		return t, errors.E(errors.Invalid, "parse target", err)
	}
	return t, nil
}

func report(env *cmdline.Env, off frame.ByteOffset, found bool) error {
	if !found {
		return cmdline.ErrExitCode(exitNotFound)
	}
	fmt.Fprintln(env.Stdout, off)
	return nil
}
