// Package route plans shortest-delta-v routes over the atlas tables and
// turns them into the hop sequences schedules are built from.
//
// Overview:
//
//   - NewPlanner compiles a set of atlas.Tables into an immutable Planner:
//     the adjacency graph, a dense place index for the heap, and the
//     (place, place) → link-identifier reverse index are all built once.
//   - Planner.ShortestPaths runs Dijkstra's algorithm from a source place,
//     returning the distance and predecessor maps.
//   - Planner.TraceRoute reconstructs the place sequence between two places
//     by walking predecessors backwards.
//   - Planner.FindRoute decomposes a traced route into hops — one
//     (link-identifier, destination) pair per edge traversed.
//
// The planner holds no mutable state: every method is a pure function of
// the tables it was built from, so one Planner may serve any number of
// goroutines concurrently without locks.
//
// Dijkstra implementation notes:
//
//   - The priority queue is a keyed min-heap (yagh.IntMap), so a relaxation
//     that improves a queued place updates it in place instead of pushing a
//     duplicate entry.
//   - Settled places are tracked in a sparse set and the extraction loop is
//     additionally bounded by the place count, so malformed input can never
//     make it spin.
//   - Edge weights are validated non-negative at table construction, which
//     is what makes the greedy settlement order correct.
//
// Complexity: O((P + L) log P) time per planning call for P places and L
// edges, O(P + L) space.
//
// Error handling (sentinel errors, branch with errors.Is):
//
//   - ErrNilTables          — NewPlanner was given nil tables.
//   - ErrUnknownPlace       — a start or end place is not in the tables.
//   - ErrNoRoute            — the destination is unreachable from the start.
//   - ErrInconsistentTables — a traced edge has no link identifier; this
//     means the tables and graph disagree and the planning request aborts.
//
// ErrNoRoute and ErrInconsistentTables are deliberately distinct: the first
// is an answer ("these places are not connected"), the second is a
// configuration bug that should be surfaced, never swallowed. Nothing in
// this package retries — the tables are static, so retrying cannot change
// the outcome.
package route
