package dtree

import "github.com/glyph-lang/patternc/internal/pattern"

// patternAt finds the (path, pattern) entry for path within branch,
// returning its index so callers can remove/replace it.
func patternAt(branch pattern.Branch, path pattern.Path) (pattern.PatternAtPath, int, bool) {
	for i, pp := range branch.Patterns {
		if pattern.PathEqual(pp.Path, path) {
			return pp, i, true
		}
	}
	return pattern.PatternAtPath{}, -1, false
}

// isIrrelevantTo reports whether branch is unaffected by any test at
// path: either it has no pattern there (the path was introduced by a
// sibling branch's deeper pattern) or the pattern there is irrefutable.
func isIrrelevantTo(path pattern.Path, branch pattern.Branch) bool {
	pp, _, found := patternAt(branch, path)
	if !found {
		return true
	}
	return !pp.Pattern.NeedsTest()
}

// patternToTest converts a refutable pattern into the Test it implies.
// Irrefutable patterns have no test and return ok=false.
func patternToTest(p pattern.Pattern) (pattern.Test, bool) {
	switch v := p.(type) {
	case pattern.AppliedTag:
		return pattern.IsCtor{TagID: v.TagID, TagName: v.TagName, Union: v.Union, Arguments: v.Arguments}, true
	case pattern.BitLiteral:
		return pattern.IsBit{Value: v.Value}, true
	case pattern.EnumLiteral:
		return pattern.IsByte{TagID: v.TagID, NumAlts: v.EnumSize}, true
	case pattern.IntLiteral:
		return pattern.IsInt{Value: v.Value}, true
	case pattern.FloatLiteral:
		return pattern.IsFloat{Bits: v.Bits}, true
	case pattern.StrLiteral:
		return pattern.IsStr{Value: v.Value}, true
	default:
		return nil, false
	}
}

// testsAtPath returns the deduplicated, order-preserving list of tests
// that appear at path across branches (spec.md §4.3). Order is the order
// of first appearance and determines case ordering in the emitted
// switch, even though it is not needed for matching correctness.
func testsAtPath(path pattern.Path, branches []pattern.Branch) []pattern.Test {
	seen := make(map[string]bool)
	var out []pattern.Test
	for _, b := range branches {
		pp, _, found := patternAt(b, path)
		if !found {
			continue
		}
		test, ok := patternToTest(pp.Pattern)
		if !ok {
			continue
		}
		key := test.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, test)
	}
	return out
}

// toRelevantBranch computes the branch as it looks on the edge for test
// at path, or reports keep=false if the branch is eliminated on this
// edge entirely.
func toRelevantBranch(test pattern.Test, path pattern.Path, branch pattern.Branch) (pattern.Branch, bool) {
	pp, idx, found := patternAt(branch, path)
	if !found {
		return branch, true
	}
	if !pp.Pattern.NeedsTest() {
		return branch, true
	}

	withoutMatched := make([]pattern.PatternAtPath, 0, len(branch.Patterns))
	withoutMatched = append(withoutMatched, branch.Patterns[:idx]...)
	withoutMatched = append(withoutMatched, branch.Patterns[idx+1:]...)

	switch p := pp.Pattern.(type) {
	case pattern.AppliedTag:
		t, ok := test.(pattern.IsCtor)
		if !ok || t.TagName != p.TagName {
			return pattern.Branch{}, false
		}
		var extra []pattern.PatternAtPath
		if len(p.Arguments) == 1 && p.Union.IsSingle() {
			extra = append(extra, pattern.PatternAtPath{Path: pattern.Unbox(path), Pattern: p.Arguments[0].Pattern})
		} else {
			for i, arg := range p.Arguments {
				extra = append(extra, pattern.PatternAtPath{Path: pattern.Index(uint64(i), path), Pattern: arg.Pattern})
			}
		}
		// new positional patterns take the place the matched pattern
		// held, ahead of whatever came after it.
		newPatterns := make([]pattern.PatternAtPath, 0, len(branch.Patterns)-1+len(extra))
		newPatterns = append(newPatterns, branch.Patterns[:idx]...)
		newPatterns = append(newPatterns, extra...)
		newPatterns = append(newPatterns, branch.Patterns[idx+1:]...)
		return pattern.Branch{Goal: branch.Goal, Patterns: newPatterns}, true

	case pattern.BitLiteral:
		t, ok := test.(pattern.IsBit)
		if !ok || t.Value != p.Value {
			return pattern.Branch{}, false
		}
		return pattern.Branch{Goal: branch.Goal, Patterns: withoutMatched}, true

	case pattern.EnumLiteral:
		t, ok := test.(pattern.IsByte)
		if !ok || t.TagID != p.TagID {
			return pattern.Branch{}, false
		}
		return pattern.Branch{Goal: branch.Goal, Patterns: withoutMatched}, true

	case pattern.IntLiteral:
		t, ok := test.(pattern.IsInt)
		if !ok || t.Value != p.Value {
			return pattern.Branch{}, false
		}
		return pattern.Branch{Goal: branch.Goal, Patterns: withoutMatched}, true

	case pattern.FloatLiteral:
		t, ok := test.(pattern.IsFloat)
		if !ok || t.Bits != p.Bits {
			return pattern.Branch{}, false
		}
		return pattern.Branch{Goal: branch.Goal, Patterns: withoutMatched}, true

	case pattern.StrLiteral:
		t, ok := test.(pattern.IsStr)
		if !ok || t.Value != p.Value {
			return pattern.Branch{}, false
		}
		return pattern.Branch{Goal: branch.Goal, Patterns: withoutMatched}, true

	default:
		return pattern.Branch{}, false
	}
}

// edgeBranches is one (test, specialized branches) pair produced by
// gatherEdges.
type edgeBranches struct {
	Test     pattern.Test
	Branches []pattern.Branch
}

// gatherEdges computes the outgoing edges at path and the fallback set
// (spec.md §4.3). The fallback is empty when the edge tests are already
// exhaustive.
func gatherEdges(path pattern.Path, branches []pattern.Branch) ([]edgeBranches, []pattern.Branch) {
	tests := testsAtPath(path, branches)
	complete := pattern.IsComplete(tests)

	edges := make([]edgeBranches, 0, len(tests))
	for _, test := range tests {
		var kept []pattern.Branch
		for _, b := range branches {
			if nb, ok := toRelevantBranch(test, path, b); ok {
				kept = append(kept, nb)
			}
		}
		edges = append(edges, edgeBranches{Test: test, Branches: kept})
	}

	var fallback []pattern.Branch
	if !complete {
		for _, b := range branches {
			if isIrrelevantTo(path, b) {
				fallback = append(fallback, b)
			}
		}
	}

	return edges, fallback
}
