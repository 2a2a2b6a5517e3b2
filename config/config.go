//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

// Package config reads the HCL configuration that selects rendering
// depths per module and the post-processing programs.
package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/markkurossi/rtlgraph/utils"
	"github.com/markkurossi/rtlgraph/viz"
)

// Config is the decoded configuration file.
type Config struct {
	Draw   string   `hcl:"draw,optional"`
	View   string   `hcl:"view,optional"`
	Scopes []*Scope `hcl:"scope,block"`
}

// Scope is one scoping directive. Block order in the file defines
// directive order.
type Scope struct {
	Module  string `hcl:"module,optional"`
	Circuit bool   `hcl:"circuit,optional"`
	Depth   int    `hcl:"depth"`
}

// ParseFile parses and decodes the named configuration file.
func ParseFile(path string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config %s: %s",
			path, diags.Error())
	}
	return decode(path, file.Body)
}

// Parse parses and decodes configuration data.
func Parse(name string, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, name)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config %s: %s",
			name, diags.Error())
	}
	return decode(name, file.Body)
}

func decode(name string, body hcl.Body) (*Config, error) {
	config := &Config{
		Draw: "dot",
		View: utils.ProgNone,
	}
	diags := gohcl.DecodeBody(body, nil, config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config %s: %s",
			name, diags.Error())
	}
	for _, s := range config.Scopes {
		if len(s.Module) == 0 && !s.Circuit {
			return nil, fmt.Errorf("%s: scope block needs module or circuit",
				name)
		}
	}
	return config, nil
}

// Directives returns the configured scoping directives in file
// order.
func (c *Config) Directives() []viz.Directive {
	var result []viz.Directive
	for _, s := range c.Scopes {
		result = append(result, viz.Directive{
			Module:  s.Module,
			Circuit: s.Circuit,
			Depth:   s.Depth,
		})
	}
	return result
}
