// Package pbe provides a programming-by-example synthesizer for a small
// string/location/boolean DSL (package dsl): given a handful of
// (input, output) examples, it searches for the lowest-cost program
// consistent with all of them, combining bottom-up enumeration (package
// enumerate) with top-down witness-function learning (package learn) over
// a version-space algebra (package vsa) — mirroring the teacher's own
// regex.go wrapping of its internal meta engine.
//
// Basic usage:
//
//	result := pbe.Synthesize([]pbe.Example{
//	    pbe.StringExample("John Smith", "Smith"),
//	    pbe.StringExample("Jane Doe", "Doe"),
//	})
//	if result.Program != nil {
//	    fmt.Println(result.Program.String())
//	}
//
// Advanced usage:
//
//	config := pbe.DefaultConfig()
//	config.MaxSize = 8
//	result := pbe.SynthesizeWithConfig(examples, config)
package pbe

import (
	"github.com/vsalang/pbe/dsl"
	"github.com/vsalang/pbe/synth"
)

// Example re-exports synth.Example so callers never need to import the
// synth package directly.
type Example = synth.Example

// Config re-exports synth.Config.
type Config = synth.Config

// DefaultConfig re-exports synth.DefaultConfig.
func DefaultConfig() Config { return synth.DefaultConfig() }

// Result re-exports synth.Result.
type Result = synth.Result

// Synthesize finds the lowest-cost program consistent with every example,
// using DefaultConfig.
func Synthesize(examples []Example) Result {
	return synth.Synthesize(examples)
}

// SynthesizeWithConfig is Synthesize with an explicit Config.
func SynthesizeWithConfig(examples []Example, cfg Config) Result {
	return synth.SynthesizeWithConfig(examples, cfg)
}

// StringExample builds an Example whose input and output are both plain
// strings — the common case.
func StringExample(input, output string) Example {
	return Example{Input: dsl.StringConst(input), Output: dsl.StringConst(output)}
}

// BoolExample builds an Example with a string input and a boolean output,
// for synthesizing predicates (spec §4.6 rule 5).
func BoolExample(input string, output bool) Example {
	return Example{Input: dsl.StringConst(input), Output: dsl.BoolConst(output)}
}

// Run evaluates prog — typically a Result.Program — against input.
func Run(prog dsl.AST, input string) dsl.Lit {
	return dsl.Eval(prog, dsl.StringConst(input))
}
