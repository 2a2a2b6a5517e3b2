//
// main.go
//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/markkurossi/rtlgraph/config"
	"github.com/markkurossi/rtlgraph/parser"
	"github.com/markkurossi/rtlgraph/utils"
	"github.com/markkurossi/rtlgraph/viz"
)

func main() {
	top := flag.String("top", "", "Top module name override")
	conf := flag.String("c", "", "Configuration file")
	depth := flag.Int("depth", -1, "Default circuit-wide descent depth")
	draw := flag.String("draw", "", "Drawing program ('none' disables)")
	view := flag.String("view", "", "Viewer program ('none' disables)")
	output := flag.String("o", "", "Output file name override")
	verbose := flag.Bool("v", false, "Verbose output")
	strict := flag.Bool("strict", false,
		"Fail on unrecognized connection targets")
	flag.Parse()

	var depthSet bool
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "depth" {
			depthSet = true
		}
	})

	logger := utils.NewLogger(os.Stderr)

	if len(flag.Args()) == 0 {
		fmt.Fprintf(os.Stderr, "no input files\n")
		os.Exit(1)
	}

	params := utils.NewParams()
	params.Verbose = *verbose
	params.Strict = *strict

	var directives []viz.Directive

	if len(*conf) > 0 {
		cfg, err := config.ParseFile(*conf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			os.Exit(1)
		}
		directives = cfg.Directives()
		params.Draw = cfg.Draw
		params.View = cfg.View
	}
	directives = defaultDirectives(directives, *depth, depthSet)

	// Command line program selections override the configuration.
	if len(*draw) > 0 {
		params.Draw = *draw
	}
	if len(*view) > 0 {
		params.View = *view
	}

	for _, file := range flag.Args() {
		if err := translateFile(file, *top, *output, directives, params,
			logger); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", file, err)
			os.Exit(1)
		}
	}
}

// defaultDirectives adds the circuit-wide fallback directive. An
// explicit -depth always applies; otherwise the fallback is added
// only when the configuration defined no scopes, so configured depth
// limits are not reset by the unlimited default.
func defaultDirectives(directives []viz.Directive, depth int,
	explicit bool) []viz.Directive {

	if explicit || len(directives) == 0 {
		return append(directives, viz.Directive{
			Circuit: true,
			Depth:   depth,
		})
	}
	return directives
}

func translateFile(file, top, output string, directives []viz.Directive,
	params *utils.Params, logger *utils.Logger) error {

	circ, err := parser.ParseFile(file, logger)
	if err != nil {
		return err
	}
	if len(top) == 0 {
		top = circ.Name
	}
	if len(output) == 0 {
		output = top + ".dot"
	}

	params.DotOut, err = makeOutput(output)
	if err != nil {
		return err
	}
	err = viz.Visualize(circ, top, directives, params, logger)
	params.Close()
	if err != nil {
		return err
	}
	if params.Verbose {
		fmt.Printf("wrote %s\n", output)
		if n := logger.Warnings(); n > 0 {
			fmt.Printf("%d warnings\n", n)
		}
	}
	return postProcess(params, output)
}

// postProcess runs the drawing program over the dot output and the
// viewer over the drawing's image output. The reserved program name
// 'none' disables the respective step.
func postProcess(params *utils.Params, file string) error {
	if params.Draw == utils.ProgNone {
		return nil
	}
	cmd := exec.Command(params.Draw, "-Tpng", "-O", file)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %s", params.Draw, err)
	}

	if params.View == utils.ProgNone {
		return nil
	}
	cmd = exec.Command(params.View, file+".png")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %s", params.View, err)
	}
	return nil
}

func makeOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &OutputFile{
		File:     f,
		Buffered: bufio.NewWriter(f),
	}, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}

// OutputFile implements a buffered output file.
type OutputFile struct {
	File     *os.File
	Buffered *bufio.Writer
}

func (out *OutputFile) Write(p []byte) (nn int, err error) {
	return out.Buffered.Write(p)
}

// Close implements io.Closer.Close for the buffered output file.
func (out *OutputFile) Close() error {
	if err := out.Buffered.Flush(); err != nil {
		return err
	}
	return out.File.Close()
}
