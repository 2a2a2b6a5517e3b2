//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package utils

import (
	"io"
)

// ProgNone is the reserved program name that disables the
// corresponding post-processing step.
const ProgNone = "none"

// Params specify translator parameters.
type Params struct {
	Verbose bool

	// Strict promotes unrecognized connection targets from warnings
	// to translation errors.
	Strict bool

	// Draw is the drawing program run over the dot output, View the
	// viewer run over the drawing program's image output. ProgNone
	// disables the step.
	Draw string
	View string

	DotOut io.WriteCloser
}

// NewParams returns new translator params object, initialized with
// the default values.
func NewParams() *Params {
	return &Params{
		Draw: "dot",
		View: ProgNone,
	}
}

// Close closes all open resources.
func (p *Params) Close() {
	if p.DotOut != nil {
		p.DotOut.Close()
		p.DotOut = nil
	}
}
