// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package log

import (
	"io"
	golog "log"
	"sync/atomic"
)

var golevel = int32(Info)

const (
	Lmicroseconds = golog.Lmicroseconds // microsecond resolution: 01:23:23.123123.  assumes Ltime.
	LstdFlags     = golog.LstdFlags     // initial values for the standard logger
)

// SetFlags sets the output flags for the Go standard logger.
func SetFlags(flag int) {
	golog.SetFlags(flag)
}

// SetOutput sets the output destination for the Go standard logger.
func SetOutput(w io.Writer) {
	golog.SetOutput(w)
}

// SetLevel sets the log level for the Go standard logger.
// It should be called once at the beginning of a program's main.
func SetLevel(level Level) {
	atomic.StoreInt32(&golevel, int32(level))
}

func level() Level {
	return Level(atomic.LoadInt32(&golevel))
}

type gologOutputter struct{}

func (gologOutputter) Level() Level { return level() }

func (gologOutputter) Output(calldepth int, l Level, s string) error {
	if level() < l {
		return nil
	}
	return golog.Output(calldepth+1, l.String()+": "+s)
}
