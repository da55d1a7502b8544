// graph.go — the adjacency view of a set of Tables.

package atlas

// Graph is the weighted adjacency structure the route planner searches:
// place → neighbor → delta-v. Every declared place is present (isolated
// places map to an empty neighbor set), and adjacency is symmetric: if A→B
// exists with weight W, so does B→A.
//
// A Graph is built by Tables.Graph and never mutated afterwards.
type Graph struct {
	adj map[PlaceID]map[PlaceID]int64
}

// Graph builds the adjacency structure from the tables: both directions of
// every link at its delta-v cost, and both directions of every elevator at
// the fixed ElevatorDeltaV cost. Construction is total over validated
// tables and pure — two calls yield identical graphs.
//
// Complexity: O(P + L + E) for P places, L links, E elevators.
func (t *Tables) Graph() *Graph {
	g := &Graph{adj: make(map[PlaceID]map[PlaceID]int64, len(t.names))}
	for id := range t.names {
		g.adj[id] = make(map[PlaceID]int64)
	}

	for _, l := range t.links {
		g.insert(l.A, l.B, l.DeltaV)
	}
	for _, e := range t.elevators {
		g.insert(e.Bottom, e.Top, ElevatorDeltaV)
	}

	return g
}

// insert adds one undirected edge, keeping the symmetry invariant.
func (g *Graph) insert(a, b PlaceID, deltaV int64) {
	g.adj[a][b] = deltaV
	g.adj[b][a] = deltaV
}

// Order returns the number of places in the graph.
func (g *Graph) Order() int { return len(g.adj) }

// HasPlace reports whether the graph contains id.
func (g *Graph) HasPlace(id PlaceID) bool {
	_, ok := g.adj[id]

	return ok
}

// Places returns every place in the graph as a fresh slice, in no
// particular order.
func (g *Graph) Places() []PlaceID {
	ids := make([]PlaceID, 0, len(g.adj))
	for id := range g.adj {
		ids = append(ids, id)
	}

	return ids
}

// Neighbors returns a copy of id's neighbor→delta-v mapping. The copy is
// empty (not nil) for isolated places and nil for undeclared ones.
func (g *Graph) Neighbors(id PlaceID) map[PlaceID]int64 {
	src, ok := g.adj[id]
	if !ok {
		return nil
	}

	out := make(map[PlaceID]int64, len(src))
	for n, w := range src {
		out[n] = w
	}

	return out
}

// Weight returns the delta-v cost of the edge between a and b, and whether
// such an edge exists.
func (g *Graph) Weight(a, b PlaceID) (int64, bool) {
	w, ok := g.adj[a][b]

	return w, ok
}
