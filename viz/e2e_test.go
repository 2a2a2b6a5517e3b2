//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package viz_test

import (
	"io"
	"strings"
	"testing"

	"github.com/markkurossi/rtlgraph/parser"
	"github.com/markkurossi/rtlgraph/utils"
	"github.com/markkurossi/rtlgraph/viz"
)

type output struct {
	strings.Builder
}

func (o *output) Close() error {
	return nil
}

func TestVisualize(t *testing.T) {
	logger := utils.NewLogger(io.Discard)
	circ, err := parser.NewParser("{data}", logger, strings.NewReader(`
circuit Top :
  module Top :
    input a : UInt<8>
    input b : UInt<8>
    output c : UInt<8>
    inst sub of Gate
    sub.x <= a
    c <= add(sub.y, b)
  module Gate :
    input x : UInt<8>
    output y : UInt<8>
    y <= not(x)
`)).Parse()
	if err != nil {
		t.Fatalf("Parse failed: %s", err)
	}

	params := utils.NewParams()
	out := &output{}
	params.DotOut = out

	err = viz.Visualize(circ, "", nil, params, logger)
	if err != nil {
		t.Fatalf("Visualize failed: %s", err)
	}
	dot := out.String()

	for _, want := range []string{
		"digraph Top {\n",
		"  a\t[shape=rect,label=\"a\"];\n",
		"  subgraph cluster_sub {\n",
		"    label=\"sub\";\n",
		"    sub_x\t[shape=rect,label=\"x\"];\n",
		"    sub_x -> sub_not0:in1;\n",
		"    sub_not0 -> sub_y;\n",
		"  a -> sub_x;\n",
		"  sub_y -> add0:in1;\n",
		"  b -> add0:in2;\n",
		"  add0 -> c;\n",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("dot output missing %q:\n%s", want, dot)
		}
	}
}
