package pattern

// FlattenBranch rewrites a branch so single-constructor wrappers become
// Unbox steps on the path rather than tests: flatten_patterns from
// spec.md §4.1. The rewrite is applied recursively, so a newtype wrapped
// in another newtype collapses all the way down to its real payload
// before any decision is made on the branch.
func FlattenBranch(b Branch) Branch {
	out := make([]PatternAtPath, 0, len(b.Patterns))
	for _, pp := range b.Patterns {
		out = flattenOne(pp, out)
	}
	return Branch{Goal: b.Goal, Patterns: out}
}

func flattenOne(pp PatternAtPath, out []PatternAtPath) []PatternAtPath {
	tag, ok := pp.Pattern.(AppliedTag)
	if !ok || !tag.Union.IsSingle() {
		return append(out, pp)
	}

	// Single-alternative constructor: it carries no runtime
	// discriminant, so its arguments are promoted in place instead of
	// being guarded by a test.
	if len(tag.Arguments) == 1 {
		unboxed := PatternAtPath{Path: Unbox(pp.Path), Pattern: tag.Arguments[0].Pattern}
		return flattenOne(unboxed, out)
	}

	for i, arg := range tag.Arguments {
		indexed := PatternAtPath{Path: Index(uint64(i), pp.Path), Pattern: arg.Pattern}
		out = flattenOne(indexed, out)
	}
	return out
}
