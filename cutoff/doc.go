// Package cutoff computes the beam / min-active / max-active pruning
// cutoff and the adaptive beam width for one decode step, given the
// previous step's active token set (spec §4.C).
//
// Complexity:
//
//   - Time:  O(n log n) where n = len(toks), dominated by sorting costs to
//     find the k-th smallest when max_active/min_active trigger (the
//     original numpy implementation uses argpartition for O(n) average;
//     Go's standard sort is used here instead since decode frontiers are
//     bounded by max_active and typically number in the low hundreds —
//     see lvlath/dijkstra's own preference for straightforward heap/sort
//     use over hand-rolled selection algorithms).
//   - Space: O(n)
package cutoff
