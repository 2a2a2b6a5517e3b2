//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package config

import (
	"testing"
)

func TestParse(t *testing.T) {
	cfg, err := Parse("test.hcl", []byte(`
draw = "neato"
view = "xdg-open"

scope {
  module = "Core"
  depth  = 2
}

scope {
  circuit = true
  depth   = -1
}
`))
	if err != nil {
		t.Fatalf("Parse failed: %s", err)
	}
	if cfg.Draw != "neato" || cfg.View != "xdg-open" {
		t.Errorf("programs: draw=%s view=%s", cfg.Draw, cfg.View)
	}

	directives := cfg.Directives()
	if len(directives) != 2 {
		t.Fatalf("got %d directives, expected 2", len(directives))
	}
	// Block order defines directive order.
	if directives[0].Module != "Core" || directives[0].Depth != 2 {
		t.Errorf("directive 0: %s", directives[0])
	}
	if !directives[1].Circuit || directives[1].Depth != -1 {
		t.Errorf("directive 1: %s", directives[1])
	}
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse("test.hcl", []byte(``))
	if err != nil {
		t.Fatalf("Parse failed: %s", err)
	}
	if cfg.Draw != "dot" {
		t.Errorf("default draw: %s", cfg.Draw)
	}
	if cfg.View != "none" {
		t.Errorf("default view: %s", cfg.View)
	}
	if len(cfg.Directives()) != 0 {
		t.Errorf("unexpected directives: %v", cfg.Directives())
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		`scope {`,
		`scope { depth = 1 }`,
		`scope { module = "Core" }`,
	}
	for _, data := range tests {
		if _, err := Parse("test.hcl", []byte(data)); err == nil {
			t.Errorf("parse succeeded for %q", data)
		}
	}
}
