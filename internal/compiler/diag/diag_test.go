// Copyright 2025 The scc Authors. All Rights Reserved.
// This file is available under the Apache license.

package diag

import (
	"errors"
	"testing"
)

func TestRecoverConvertsDiagnostic(t *testing.T) {
	f := func() (errRet error) {
		defer Recover(&errRet)
		PanicReporter{}.Fatalf("Conflicting types for %s.", "a")
		return nil
	}
	err := f()
	if err == nil {
		t.Fatal("expected an error")
	}
	if got, want := err.Error(), "Conflicting types for a."; got != want {
		t.Errorf("error text: got %q, want %q", got, want)
	}
	var diagErr *Error
	if !errors.As(err, &diagErr) {
		t.Errorf("error %v is not a *diag.Error", err)
	}
}

func TestRecoverRepanicsForeignValues(t *testing.T) {
	defer func() {
		if e := recover(); e == nil {
			t.Error("foreign panic was swallowed")
		}
	}()
	var errRet error
	defer Recover(&errRet)
	panic("not a diagnostic")
}

func TestRecoverNoPanic(t *testing.T) {
	f := func() (errRet error) {
		defer Recover(&errRet)
		return nil
	}
	if err := f(); err != nil {
		t.Errorf("got unexpected error %v", err)
	}
}

func TestErrorfFormats(t *testing.T) {
	err := Errorf("Undefined label '%s'.", "fail")
	if got, want := err.Error(), "Undefined label 'fail'."; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
