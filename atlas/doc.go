// Package atlas defines the static tables a logistics network is described
// by — places, numbered route links, and space elevators — and the weighted
// adjacency graph built from them.
//
// Overview:
//
//   - Place: a named location the game addresses by an integer automation ID.
//   - Link: an undirected edge between two places, identified by its route
//     number and weighted by the delta-v cost of traversing it.
//   - Elevator: a fixed-cost edge between a bottom and a top place,
//     identified by its name rather than a route number.
//   - Tables: the validated, immutable collection of the three tables above.
//   - Graph: the adjacency view (place → neighbor → delta-v) that the route
//     planner searches over.
//
// Tables are constructed once with NewTables, which rejects malformed input
// (duplicate IDs, unknown endpoints, negative delta-v, doubled-up pairs)
// with sentinel errors, and are never mutated afterwards. Graph construction
// is a pure function of the tables: two calls yield identical graphs, and
// every inserted edge is symmetric.
//
// Error handling (sentinel errors, branch with errors.Is):
//
//   - ErrDuplicatePlace  — two places share an ID.
//   - ErrDuplicateRoute  — two links share a route number.
//   - ErrBadRoute        — a route number is not positive.
//   - ErrUnknownEndpoint — a link or elevator references an undeclared place.
//   - ErrSelfLink        — an edge connects a place to itself.
//   - ErrDuplicatePair   — two edges cover the same pair of places.
//   - ErrNegativeDeltaV  — a link carries a negative delta-v cost.
//   - ErrEmptyElevatorName — an elevator has no name.
package atlas
