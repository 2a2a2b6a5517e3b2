//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package viz

import (
	"testing"
)

func TestScopeVisibility(t *testing.T) {
	tests := []struct {
		Scope        Scope
		DoPorts      bool
		DoComponents bool
	}{
		{Scope{Elapsed: 0, Max: -1}, true, true},
		{Scope{Elapsed: 7, Max: -1}, true, true},
		{Scope{Elapsed: 0, Max: 0}, true, false},
		{Scope{Elapsed: 1, Max: 0}, false, false},
		{Scope{Elapsed: 0, Max: 2}, true, true},
		{Scope{Elapsed: 2, Max: 2}, true, false},
		{Scope{Elapsed: 3, Max: 2}, false, false},
	}
	for _, test := range tests {
		if test.Scope.DoPorts() != test.DoPorts {
			t.Errorf("%s: DoPorts=%v, expected %v",
				test.Scope, test.Scope.DoPorts(), test.DoPorts)
		}
		if test.Scope.DoComponents() != test.DoComponents {
			t.Errorf("%s: DoComponents=%v, expected %v",
				test.Scope, test.Scope.DoComponents(), test.DoComponents)
		}
	}
}

func TestScopeDescend(t *testing.T) {
	s := Scope{Elapsed: 0, Max: 2}
	s = s.Descend()
	if s.Elapsed != 1 || s.Max != 2 {
		t.Errorf("unexpected descended scope %s", s)
	}
}

func TestChildScope(t *testing.T) {
	directives := []Directive{
		{Module: "Core", Depth: 2},
		{Circuit: true, Depth: 0},
	}

	// Module-specific directive resets the scope.
	s := ChildScope(directives, "Core", Scope{Elapsed: 5, Max: 1})
	if s.Elapsed != 0 || s.Max != 2 {
		t.Errorf("module directive: got %s", s)
	}

	// Circuit-wide fallback applies while the parent still renders
	// ports.
	s = ChildScope(directives, "Other", Scope{Elapsed: 0, Max: 3})
	if s.Elapsed != 0 || s.Max != 0 {
		t.Errorf("circuit directive: got %s", s)
	}

	// Once the parent is past its depth, the circuit-wide directive
	// is no longer eligible and the parent scope advances.
	s = ChildScope(directives, "Other", Scope{Elapsed: 3, Max: 2})
	if s.Elapsed != 4 || s.Max != 2 {
		t.Errorf("descend: got %s", s)
	}
}

func TestChildScopeOrder(t *testing.T) {
	// First match wins over the ordered directive list.
	directives := []Directive{
		{Circuit: true, Depth: 1},
		{Module: "Core", Depth: 5},
	}
	s := ChildScope(directives, "Core", Scope{Elapsed: 0, Max: -1})
	if s.Max != 1 {
		t.Errorf("directive order: got %s, expected max 1", s)
	}
}

func TestRootScope(t *testing.T) {
	s := RootScope(nil, "Top")
	if s.Elapsed != 0 || s.Max != -1 {
		t.Errorf("default root scope: got %s", s)
	}

	s = RootScope([]Directive{{Module: "Top", Depth: 3}}, "Top")
	if s.Elapsed != 0 || s.Max != 3 {
		t.Errorf("module root scope: got %s", s)
	}

	s = RootScope([]Directive{{Circuit: true, Depth: 2}}, "Top")
	if s.Elapsed != 0 || s.Max != 2 {
		t.Errorf("circuit root scope: got %s", s)
	}
}
