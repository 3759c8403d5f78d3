package dtree

import "github.com/glyph-lang/patternc/internal/pattern"

// allPaths collects every path with a refutable pattern across every
// branch, in branch/pattern iteration order, duplicates included. The
// duplicates matter: they carry weight into the "last candidate
// encountered" tie-break in pickPath.
func allPaths(branches []pattern.Branch) []pattern.Path {
	var out []pattern.Path
	for _, b := range branches {
		for _, pp := range b.Patterns {
			if pp.Pattern.NeedsTest() {
				out = append(out, pp.Path)
			}
		}
	}
	return out
}

// smallDefaults is the number of branches a test at path would NOT split
// out of the default/fallback arm.
func smallDefaults(branches []pattern.Branch, path pattern.Path) int {
	count := 0
	for _, b := range branches {
		if isIrrelevantTo(path, b) {
			count++
		}
	}
	return count
}

// smallBranchingFactor is the number of edges a test at path would
// produce, plus one if a non-empty fallback remains.
func smallBranchingFactor(branches []pattern.Branch, path pattern.Path) int {
	edges, fallback := gatherEdges(path, branches)
	n := len(edges)
	if len(fallback) > 0 {
		n++
	}
	return n
}

// bestsBy returns the subsequence of paths achieving the minimal weight,
// in iteration order, so later callers can take the last one as the
// stable tie-break.
func bestsBy(paths []pattern.Path, weight func(pattern.Path) int) []pattern.Path {
	if len(paths) == 0 {
		panic("dtree: cannot choose the best of zero paths")
	}
	minWeight := weight(paths[0])
	best := []pattern.Path{paths[0]}
	for _, p := range paths[1:] {
		w := weight(p)
		switch {
		case w == minWeight:
			best = append(best, p)
		case w < minWeight:
			minWeight = w
			best = []pattern.Path{p}
		}
	}
	return best
}

// pickPath selects the path to test next (spec.md §4.4): minimize the
// fallback set first, then minimize the branching factor, then take the
// last candidate encountered as a deliberate, stable final tie-break.
// Both metrics are computed relative to the branch set passed in, not to
// some global branch set.
func pickPath(branches []pattern.Branch) pattern.Path {
	candidates := allPaths(branches)
	if len(candidates) == 0 {
		panic("dtree: pickPath called with zero candidate paths")
	}

	bySmallDefaults := bestsBy(candidates, func(p pattern.Path) int {
		return smallDefaults(branches, p)
	})
	if len(bySmallDefaults) == 1 {
		return bySmallDefaults[0]
	}

	byBranchingFactor := bestsBy(bySmallDefaults, func(p pattern.Path) int {
		return smallBranchingFactor(branches, p)
	})
	return byBranchingFactor[len(byBranchingFactor)-1]
}
