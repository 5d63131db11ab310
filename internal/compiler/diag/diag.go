// Copyright 2025 The scc Authors. All Rights Reserved.
// This file is available under the Apache license.

// Package diag carries fatal diagnostics out of the compiler front end.
// Everything the symbol table reports is unrecoverable for the current
// translation unit: the reporter either unwinds to the driver boundary or
// terminates the process.
package diag

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Error is a fatal compile diagnostic.
type Error struct {
	err error
}

func (e *Error) Error() string {
	return e.err.Error()
}

func (e *Error) Unwrap() error {
	return e.err
}

// Errorf constructs a compile diagnostic, capturing a stack trace at the
// point of creation.
func Errorf(format string, args ...interface{}) error {
	return &Error{err: errors.Errorf(format, args...)}
}

// Reporter receives fatal diagnostics.  Fatalf must not return to the
// caller.
type Reporter interface {
	Fatalf(format string, args ...interface{})
}

// PanicReporter unwinds the calling goroutine with a *Error.  Pair it with
// Recover at the compile driver boundary to turn the diagnostic back into
// an ordinary error return.
type PanicReporter struct{}

func (PanicReporter) Fatalf(format string, args ...interface{}) {
	err := Errorf(format, args...)
	glog.V(1).Info(err)
	panic(err)
}

// ExitReporter logs the diagnostic and terminates the process, the behavior
// of a standalone compiler driver.
type ExitReporter struct{}

func (ExitReporter) Fatalf(format string, args ...interface{}) {
	glog.Exitf(format, args...)
}

// Recover captures a *Error unwind into errRet.  Any other panic value is
// re-raised.
//
//	func compile(...) (errRet error) {
//		defer diag.Recover(&errRet)
//		...
//	}
func Recover(errRet *error) {
	if e := recover(); e != nil {
		*errRet = e.(*Error) // Re-panics if not a compile diagnostic.
	}
}
