package reactor

// Coalesce collapses a batch of keyed events down to one per key,
// keeping the last occurrence of each — useful for something like
// repeated BlockBreak on the same cell within a single tick, where only
// the final state matters and dispatching every intermediate one would
// just mean redundant mesh/light rebuilds downstream.
//
// Order of the returned slice follows each key's first appearance in
// events, not its last, so coalescing doesn't reorder otherwise-unrelated
// keys relative to each other.
func Coalesce[K comparable, V any](events []V, keyOf func(V) K) []V {
	last := make(map[K]V, len(events))
	order := make([]K, 0, len(events))
	for _, e := range events {
		k := keyOf(e)
		if _, seen := last[k]; !seen {
			order = append(order, k)
		}
		last[k] = e
	}
	out := make([]V, 0, len(order))
	for _, k := range order {
		out = append(out, last[k])
	}
	return out
}
