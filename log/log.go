// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package log provides simple level logging. Log output is
// implemented by an outputter, which by default outputs to Go's
// logging package (and thus to standard error).
//
// Logging is a side channel: nothing in this module changes its
// behavior based on whether a message was output. Binaries set the
// level once, typically with SetLevel(FromVerbosity(n)) for a repeated
// -v flag.
package log

import "fmt"

// An Outputter provides a destination for leveled log output.
type Outputter interface {
	// Level returns the level at which the outputter is accepting
	// messages.
	Level() Level

	// Output writes the provided message to the outputter at the
	// provided calldepth and level. The message is dropped by
	// the outputter if it is not logging at the desired level.
	Output(calldepth int, level Level, s string) error
}

var out Outputter = gologOutputter{}

// SetOutputter provides a new outputter for use in the log package.
// SetOutputter should not be called concurrently with any log
// output, and is thus suitable to be called only upon program
// initialization. SetOutputter returns the old outputter.
func SetOutputter(newOut Outputter) Outputter {
	old := out
	out = newOut
	return old
}

// At returns whether the logger is currently logging at the provided level.
func At(level Level) bool {
	return level <= out.Level()
}

// Output outputs a log message to the current outputter at the provided
// level and call depth.
func Output(calldepth int, level Level, s string) error {
	return out.Output(calldepth+1, level, s)
}

// A Level is a log verbosity level. Increasing levels decrease in
// priority and increase in verbosity: if the outputter is logging at
// level L, then all messages with level M <= L are outputted.
type Level int

const (
	// Off never outputs messages.
	Off = Level(-3)
	// Error outputs error messages.
	Error = Level(-2)
	// Warn outputs warnings: conditions that are tolerated, such as a
	// torn index entry that is repaired.
	Warn = Level(-1)
	// Info outputs informational messages. This is the standard
	// logging level.
	Info = Level(0)
	// Debug outputs messages intended for debugging and development,
	// not for regular users.
	Debug = Level(1)
	// Trace outputs everything.
	Trace = Level(2)
)

// FromVerbosity maps the number of times a -v flag was given to a
// level: none is Off, then Error, Warn, Info, Debug, and Trace for five
// or more.
func FromVerbosity(n int) Level {
	switch {
	case n <= 0:
		return Off
	case n >= 5:
		return Trace
	}
	return Off + Level(n)
}

// String returns the string representation of the level l.
func (l Level) String() string {
	switch l {
	case Off:
		return "off"
	case Error:
		return "error"
	case Warn:
		return "warn"
	case Info:
		return "info"
	case Debug:
		return "debug"
	case Trace:
		return "trace"
	default:
		if l < Off {
			panic("invalid log level")
		}
		return fmt.Sprintf("trace%d", l-Trace)
	}
}

// ParseLevel returns the level named by s, as printed by Level.String.
func ParseLevel(s string) (Level, error) {
	for l := Off; l <= Trace; l++ {
		if l.String() == s {
			return l, nil
		}
	}
	return Off, fmt.Errorf("invalid log level %q", s)
}

// Print formats a message in the manner of fmt.Sprint and outputs it
// at level l to the current outputter.
func (l Level) Print(v ...interface{}) {
	if At(l) {
		out.Output(2, l, fmt.Sprint(v...))
	}
}

// Printf formats a message in the manner of fmt.Sprintf and outputs
// it at level l to the current outputter.
func (l Level) Printf(format string, v ...interface{}) {
	if At(l) {
		out.Output(2, l, fmt.Sprintf(format, v...))
	}
}

// Print formats a message in the manner of fmt.Sprint
// and outputs it at the Info level to the current outputter.
func Print(v ...interface{}) {
	if At(Info) {
		out.Output(2, Info, fmt.Sprint(v...))
	}
}

// Printf formats a message in the manner of fmt.Sprintf
// and outputs it at the Info level to the current outputter.
func Printf(format string, v ...interface{}) {
	if At(Info) {
		out.Output(2, Info, fmt.Sprintf(format, v...))
	}
}
