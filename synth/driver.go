package synth

import (
	"github.com/hashicorp/go-hclog"

	"github.com/vsalang/pbe/bank"
	"github.com/vsalang/pbe/dsl"
	"github.com/vsalang/pbe/enumerate"
	"github.com/vsalang/pbe/learn"
	"github.com/vsalang/pbe/regexcache"
	"github.com/vsalang/pbe/vsa"
)

// Synthesize finds the lowest-cost DSL program consistent with every
// example, using DefaultConfig.
func Synthesize(examples []Example) Result {
	return SynthesizeWithConfig(examples, DefaultConfig())
}

// SynthesizeWithConfig runs the bottom-up/top-down loop (spec §4.7): at
// each size from 1 to cfg.MaxSize, it grows the enumerator's bank by one
// round, learns a per-example VSA against that round's bank for every
// example, and intersects them pairwise — stopping early the moment the
// running intersection's best program already satisfies every example,
// exactly as the original's own early-exit optimization does. If no size
// up to cfg.MaxSize yields a witness program, Result.Program is nil and
// Result.VSA is the last (non-witnessing) intersection computed.
func SynthesizeWithConfig(examples []Example, cfg Config) Result {
	logger := cfg.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	if cfg.RegexCacheCapacity > 0 {
		regexcache.SetCapacity(cfg.RegexCacheCapacity)
	}

	inputs := make([]dsl.Lit, len(examples))
	outputs := make([]dsl.Lit, len(examples))
	for i, ex := range examples {
		inputs[i] = ex.Input
		outputs[i] = ex.Output
	}

	enableBools := anyBoolOutput(outputs)
	if cfg.EnableBools != nil {
		enableBools = *cfg.EnableBools
	}

	enum := enumerate.New(inputs, enableBools)
	enum.SeedPrimitives(outputs)

	var lastVSA *vsa.VSA
	maxSize := cfg.MaxSize
	if maxSize <= 0 {
		maxSize = DefaultConfig().MaxSize
	}

	learnExample := learnFunc(cfg.BoundedDepth)

	for size := 1; size <= maxSize; size++ {
		logger.Trace("bottom-up round", "size", size)
		enum.GrowTo(size)
		logger.Trace("bank grown", "size", size, "total_entries", enum.Bank.TotalEntries())

		exampleVSAs := make([]*vsa.VSA, len(examples))
		for i, ex := range examples {
			exampleVSAs[i] = learnExample(ex.Input, ex.Output, enum.PerExampleCache(i), enum.Bank)
		}

		res := exampleVSAs[0]
		for i := 1; i < len(exampleVSAs); i++ {
			if prog, ok := res.PickBest(dsl.AST.Cost); ok && consistentWithAll(prog, examples) {
				break
			}
			res = res.Intersect(exampleVSAs[i])
		}

		if prog, ok := res.PickBest(dsl.AST.Cost); ok {
			logger.Trace("witness found", "size", size, "cost", prog.Cost())
			p := prog
			return Result{VSA: res, Program: &p}
		}
		lastVSA = res
	}

	return Result{VSA: lastVSA}
}

// learnFunc selects between learn.Learn and a depth-bounded learn.LearnToDepth
// per Config.BoundedDepth (spec §6 "learn_to_depth ... interactive partial
// expansion"): a positive depth caps witness-rule recursion so a caller can
// trade completeness for a bounded-cost per-round VSA instead of the
// unbounded recursion learn.Learn performs.
func learnFunc(boundedDepth int) func(dsl.Lit, dsl.Lit, map[dsl.Lit]*vsa.VSA, *bank.Bank) *vsa.VSA {
	if boundedDepth <= 0 {
		return learn.Learn
	}
	return func(inp, out dsl.Lit, cache map[dsl.Lit]*vsa.VSA, bnk *bank.Bank) *vsa.VSA {
		return learn.LearnToDepth(inp, out, cache, bnk, boundedDepth)
	}
}

func anyBoolOutput(outputs []dsl.Lit) bool {
	for _, out := range outputs {
		if _, ok := out.IsBoolConst(); ok {
			return true
		}
	}
	return false
}

func consistentWithAll(prog dsl.AST, examples []Example) bool {
	for _, ex := range examples {
		if dsl.Eval(prog, ex.Input) != ex.Output {
			return false
		}
	}
	return true
}
