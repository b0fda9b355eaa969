// Package config loads HCL run files for the pathgrid CLI.
//
// A run file holds one run block:
//
//	run {
//	  grid      = "boards/maze.grid"
//	  algorithm = "astar"
//	  delay_ms  = delays.normal
//	  all_goals = true
//	}
//
// Only grid is required; algorithm defaults to breadth-first,
// delay_ms to the normal (50 ms) preset, all_goals to false. The
// delays object exposes the four playback presets (off, fast, normal,
// slow) as expression variables.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/pathgrid/search"
	"github.com/katalvlaran/pathgrid/viz"
)

// Sentinel errors for run-file loading.
var (
	// ErrNoRun indicates the file holds no run block.
	ErrNoRun = errors.New("config: no run block found")
	// ErrInvalid wraps HCL parse/decode diagnostics and field
	// validation failures.
	ErrInvalid = errors.New("config: invalid run file")
)

// Run is a validated run configuration.
type Run struct {
	GridPath  string
	Algorithm search.Algorithm
	Delay     viz.Delay
	AllGoals  bool
}

// runBlock is the raw HCL shape of a run block.
type runBlock struct {
	GridPath  string `hcl:"grid"`
	Algorithm string `hcl:"algorithm,optional"`
	DelayMS   *int   `hcl:"delay_ms,optional"`
	AllGoals  bool   `hcl:"all_goals,optional"`
}

// fileBlock is the raw HCL shape of a run file.
type fileBlock struct {
	Run *runBlock `hcl:"run,block"`
}

// evalContext exposes the playback presets to run-file expressions.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"delays": cty.ObjectVal(map[string]cty.Value{
				"off":    cty.NumberIntVal(int64(viz.Delay0)),
				"fast":   cty.NumberIntVal(int64(viz.Delay15)),
				"normal": cty.NumberIntVal(int64(viz.Delay50)),
				"slow":   cty.NumberIntVal(int64(viz.Delay100)),
			}),
		},
	}
}

// Load reads and validates the run file at path.
func Load(path string) (*Run, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return Decode(path, src)
}

// Decode parses and validates an in-memory run file. filename is used
// in diagnostics only.
func Decode(filename string, src []byte) (*Run, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrInvalid, diags.Error())
	}

	var raw fileBlock
	if diags := gohcl.DecodeBody(file.Body, evalContext(), &raw); diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrInvalid, diags.Error())
	}
	if raw.Run == nil {
		return nil, ErrNoRun
	}
	if raw.Run.GridPath == "" {
		return nil, fmt.Errorf("%w: grid path is empty", ErrInvalid)
	}

	run := &Run{
		GridPath:  raw.Run.GridPath,
		Algorithm: search.BreadthFirst,
		Delay:     viz.Delay50,
		AllGoals:  raw.Run.AllGoals,
	}
	if raw.Run.Algorithm != "" {
		algo, err := search.ParseAlgorithm(raw.Run.Algorithm)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		run.Algorithm = algo
	}
	if raw.Run.DelayMS != nil {
		delay, err := viz.ParseDelay(*raw.Run.DelayMS)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		run.Delay = delay
	}

	return run, nil
}
