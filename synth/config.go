// Package synth implements the driver that orchestrates bottom-up
// enumeration (package enumerate) and top-down witness learning (package
// learn) into end-to-end program synthesis from examples (spec §4.7).
//
// Example:
//
//	examples := []synth.Example{
//	    {Input: dsl.StringConst("John Smith"), Output: dsl.StringConst("Smith")},
//	    {Input: dsl.StringConst("Jane Doe"), Output: dsl.StringConst("Doe")},
//	}
//	result := synth.Synthesize(examples)
//	if result.Program != nil {
//	    fmt.Println(result.Program.String())
//	}
package synth

import (
	"github.com/hashicorp/go-hclog"

	"github.com/vsalang/pbe/dsl"
	"github.com/vsalang/pbe/vsa"
)

// Example is one (input, output) pair a synthesized program must satisfy.
type Example struct {
	Input  dsl.Lit
	Output dsl.Lit
}

// Config controls the driver's enumeration/learning loop.
//
// Example:
//
//	config := synth.DefaultConfig()
//	config.MaxSize = 8 // search deeper before giving up
//	result := synth.SynthesizeWithConfig(examples, config)
type Config struct {
	// MaxSize is the largest bottom-up enumeration round attempted
	// before giving up and returning the best VSA found so far without
	// a witness program (spec §4.7 — the original's hard-coded size<=6
	// loop bound).
	// Default: 6
	MaxSize int

	// RegexCacheCapacity sizes the process-wide regex LRU (spec §4.2)
	// via regexcache.SetCapacity before the run starts. Zero leaves the
	// existing shared cache as-is.
	// Default: 0 (the shared cache keeps its current size, which is
	// regexcache.DefaultCapacity unless changed)
	RegexCacheCapacity int

	// BoundedDepth, when positive, makes the driver learn each
	// example's per-round VSA with learn.LearnToDepth instead of
	// learn.Learn, bounding witness-rule recursion to this many levels
	// (spec §6 "learn_to_depth ... interactive partial expansion").
	// Subgoals beyond the bound surface as Unlearned placeholders
	// rather than being fully expanded, trading completeness for a
	// bounded-cost VSA.
	// Default: 0 (unbounded — use learn.Learn)
	BoundedDepth int

	// EnableBools overrides whether the enumerator generates boolean
	// (loc_eqs) candidates. nil auto-detects from whether any example's
	// output is a bool (spec §4.7 step 2); a non-nil value forces the
	// enumerator's boolean-candidate generation on or off regardless of
	// the examples given.
	// Default: nil (auto-detect)
	EnableBools *bool

	// Logger receives leveled trace output for each enumeration round,
	// mirroring the original's liberal dbg!() calls around the size
	// loop.
	// Default: a no-op logger
	Logger hclog.Logger
}

// DefaultConfig returns the driver's default tuning.
func DefaultConfig() Config {
	return Config{
		MaxSize: 6,
		Logger:  hclog.NewNullLogger(),
	}
}

// Result is the outcome of a Synthesize call (spec §4.7, §7).
type Result struct {
	// VSA denotes every program consistent with every example found by
	// the time the driver stopped — non-nil even when Program isn't.
	VSA *vsa.VSA
	// Program is the lowest-cost program in VSA consistent with every
	// example, or nil if none was found within Config.MaxSize (spec §7:
	// "no program found" is data, not a panic or error).
	Program *dsl.AST
}
