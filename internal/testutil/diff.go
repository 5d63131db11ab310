// Copyright 2025 The scc Authors. All Rights Reserved.
// This file is available under the Apache license.

package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func Diff(a, b interface{}, opts ...cmp.Option) string {
	return cmp.Diff(a, b, opts...)
}

// ExpectNoDiff fails the test when the two values differ, logging the
// diff.  It reports whether they were equal.
func ExpectNoDiff(tb testing.TB, a, b interface{}, opts ...cmp.Option) bool {
	tb.Helper()
	if diff := Diff(a, b, opts...); diff != "" {
		tb.Errorf("Unexpected diff, -expected +received:\n%s", diff)
		return false
	}
	return true
}
