// Copyright 2025 The scc Authors. All Rights Reserved.
// This file is available under the Apache license.

package symbol

import (
	"testing"
)

func TestGotoBeforeLabelStatement(t *testing.T) {
	tab := mustNew(t)
	tab.Labels.PushScope()

	// goto retry; ... retry:
	ref := tab.DeclareLabel("retry")
	if ref.Kind != Tentative {
		t.Errorf("kind after goto: want tentative, got %v", ref.Kind)
	}
	if ref.Linkage != LinkIntern {
		t.Errorf("linkage: want intern, got %v", ref.Linkage)
	}
	if again := tab.DeclareLabel("retry"); again != ref {
		t.Error("second goto created a second symbol")
	}

	def := tab.DefineLabel("retry")
	if def != ref {
		t.Error("label statement did not complete the goto's symbol")
	}
	if def.Kind != Label {
		t.Errorf("kind after definition: want label, got %v", def.Kind)
	}

	tab.Labels.PopScope() // every label defined, pops cleanly
}

func TestLabelStatementBeforeGoto(t *testing.T) {
	tab := mustNew(t)
	tab.Labels.PushScope()

	def := tab.DefineLabel("out")
	if def.Kind != Label {
		t.Errorf("kind: want label, got %v", def.Kind)
	}
	if ref := tab.DeclareLabel("out"); ref != def {
		t.Error("goto after definition created a second symbol")
	}
	tab.Labels.PopScope()
}

func TestDuplicateLabelDefinitionIsFatal(t *testing.T) {
	tab := mustNew(t)
	tab.Labels.PushScope()
	tab.DefineLabel("twice")
	expectFatal(t, "Duplicate definition of label 'twice'.", func() {
		tab.DefineLabel("twice")
	})
}

func TestUndefinedLabelIsFatalAtScopePop(t *testing.T) {
	tab := mustNew(t)
	tab.Labels.PushScope()
	tab.DeclareLabel("missing")
	expectFatal(t, "Undefined label 'missing'.", func() {
		tab.Labels.PopScope()
	})
}

// The label namespace is per function: names are free for reuse in the
// next function body.
func TestLabelsResetBetweenFunctions(t *testing.T) {
	tab := mustNew(t)

	tab.Labels.PushScope()
	tab.DefineLabel("done")
	tab.Labels.PopScope()

	tab.Labels.PushScope()
	ref := tab.DeclareLabel("done")
	if ref.Kind != Tentative {
		t.Errorf("kind in second function: want tentative, got %v", ref.Kind)
	}
	tab.DefineLabel("done")
	tab.Labels.PopScope()
}

func TestDeclareLabelWithoutScopePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("DeclareLabel without scope did not panic")
		}
	}()
	tab := mustNew(t)
	tab.DeclareLabel("nowhere")
}
