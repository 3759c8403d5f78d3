package decider

// CountTargets walks a Decider and counts how many Leaf occurrences each
// distinct leaf value has. It is generic so internal/choice can reuse it
// both for the initial Label-keyed count (spec.md §4.6) and, if ever
// needed, to re-verify counts after Choice insertion (spec.md §8
// property 6: counts keyed by label are unchanged by choice wrapping).
func CountTargets[T comparable](d Decider[T]) map[T]int {
	counts := make(map[T]int)
	countTargetsInto(d, counts)
	return counts
}

func countTargetsInto[T comparable](d Decider[T], counts map[T]int) {
	switch v := d.(type) {
	case Leaf[T]:
		counts[v.Value]++
	case Chain[T]:
		countTargetsInto(v.Success, counts)
		countTargetsInto(v.Failure, counts)
	case FanOut[T]:
		countTargetsInto(v.Fallback, counts)
		for _, e := range v.Tests {
			countTargetsInto(e.Decider, counts)
		}
	default:
		panic("decider: unknown Decider node in CountTargets")
	}
}

// InsertChoices rewrites each Leaf(label) into Leaf(mapped), preserving
// Chain/FanOut structure. U is typically choice.Choice.
func InsertChoices[T comparable, U any](d Decider[T], mapped map[T]U) Decider[U] {
	switch v := d.(type) {
	case Leaf[T]:
		val, ok := mapped[v.Value]
		if !ok {
			panic("decider: InsertChoices given a label absent from the choice map")
		}
		return Leaf[U]{Value: val}
	case Chain[T]:
		return Chain[U]{
			TestChain: v.TestChain,
			Success:   InsertChoices[T, U](v.Success, mapped),
			Failure:   InsertChoices[T, U](v.Failure, mapped),
		}
	case FanOut[T]:
		tests := make([]FanOutEdge[U], len(v.Tests))
		for i, e := range v.Tests {
			tests[i] = FanOutEdge[U]{Test: e.Test, Decider: InsertChoices[T, U](e.Decider, mapped)}
		}
		return FanOut[U]{Path: v.Path, Tests: tests, Fallback: InsertChoices[T, U](v.Fallback, mapped)}
	default:
		panic("decider: unknown Decider node in InsertChoices")
	}
}
