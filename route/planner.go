// planner.go — Planner construction, route tracing, and hop emission.

package route

import (
	"fmt"
	"sort"

	"github.com/astermore/mktrain/atlas"
)

// Planner answers shortest-route queries over one set of atlas tables.
// Everything it needs — the adjacency lists, the dense place index, and the
// pair→link reverse index — is compiled once by NewPlanner and never
// mutated, so a single Planner is safe for concurrent use.
type Planner struct {
	tables    *atlas.Tables
	maxDeltaV int64

	ids   []atlas.PlaceID       // dense index → place ID, ascending
	index map[atlas.PlaceID]int // place ID → dense index
	nexts [][]arc               // dense adjacency lists
	links map[edge]atlas.LinkID // ordered place pair → link identifier
}

// arc is one outgoing adjacency entry in dense-index space.
type arc struct {
	to     int
	deltaV int64
}

// edge is an ordered (from, to) place pair; the reverse index stores both
// orientations of every link and elevator.
type edge struct{ from, to atlas.PlaceID }

// NewPlanner compiles tables into a Planner. The only failure condition is
// nil tables: table contents were already validated by atlas.NewTables.
func NewPlanner(t *atlas.Tables, opts ...Option) (*Planner, error) {
	if t == nil {
		return nil, ErrNilTables
	}

	p := &Planner{tables: t, maxDeltaV: Unreachable}
	for _, opt := range opts {
		opt(p)
	}

	g := t.Graph()
	p.ids = g.Places()
	sort.Slice(p.ids, func(i, j int) bool { return p.ids[i] < p.ids[j] })

	p.index = make(map[atlas.PlaceID]int, len(p.ids))
	for i, id := range p.ids {
		p.index[id] = i
	}

	// Dense adjacency. Arcs are sorted by destination so relaxation order,
	// and therefore tie-breaking, is deterministic for fixed tables.
	p.nexts = make([][]arc, len(p.ids))
	for i, id := range p.ids {
		for nb, w := range g.Neighbors(id) {
			p.nexts[i] = append(p.nexts[i], arc{to: p.index[nb], deltaV: w})
		}
		sort.Slice(p.nexts[i], func(a, b int) bool { return p.nexts[i][a].to < p.nexts[i][b].to })
	}

	p.links = make(map[edge]atlas.LinkID, 2*(len(t.Links())+len(t.Elevators())))
	for _, l := range t.Links() {
		id := atlas.LinkID{Route: l.Route}
		p.links[edge{l.A, l.B}] = id
		p.links[edge{l.B, l.A}] = id
	}
	for _, e := range t.Elevators() {
		id := atlas.LinkID{Elevator: e.Name}
		p.links[edge{e.Bottom, e.Top}] = id
		p.links[edge{e.Top, e.Bottom}] = id
	}

	return p, nil
}

// Tables returns the tables the planner was built from.
func (p *Planner) Tables() *atlas.Tables { return p.tables }

// TraceRoute returns the shortest sequence of places from start to end,
// inclusive of both. A route from a place to itself is the one-element
// sequence. Returns ErrUnknownPlace if either endpoint is undeclared and
// ErrNoRoute if end cannot be reached from start.
func (p *Planner) TraceRoute(start, end atlas.PlaceID) ([]atlas.PlaceID, error) {
	s, ok := p.index[start]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPlace, start)
	}
	e, ok := p.index[end]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPlace, end)
	}

	_, prev := p.run(s)

	// Walk predecessors backwards from end. The walk is bounded by the
	// place count: a chain longer than that means the predecessor mapping
	// has a cycle, which the relaxation rule rules out.
	seq := make([]atlas.PlaceID, 0, 8)
	for cur := e; ; cur = prev[cur] {
		seq = append(seq, p.ids[cur])
		if cur == s {
			break
		}
		if prev[cur] < 0 {
			return nil, fmt.Errorf("%w: %d to %d", ErrNoRoute, start, end)
		}
		if len(seq) > len(p.ids) {
			return nil, fmt.Errorf("%w: predecessor cycle at place %d", ErrInconsistentTables, p.ids[cur])
		}
	}

	for i, j := 0, len(seq)-1; i < j; i, j = i+1, j-1 {
		seq[i], seq[j] = seq[j], seq[i]
	}

	return seq, nil
}

// FindRoute plans the shortest route from start to end and decomposes it
// into hops: one (link identifier, destination place) pair per edge
// traversed. Elevator edges carry the elevator identifier, numbered links
// their route number.
//
// Returns ErrUnknownPlace or ErrNoRoute as TraceRoute does, and
// ErrInconsistentTables if a traced edge has no entry in the link tables —
// that case is never skipped silently.
func (p *Planner) FindRoute(start, end atlas.PlaceID) ([]Hop, error) {
	seq, err := p.TraceRoute(start, end)
	if err != nil {
		return nil, err
	}

	hops := make([]Hop, 0, len(seq)-1)
	for i := 1; i < len(seq); i++ {
		id, ok := p.links[edge{seq[i-1], seq[i]}]
		if !ok {
			return nil, fmt.Errorf("%w: %d to %d", ErrInconsistentTables, seq[i-1], seq[i])
		}
		hops = append(hops, Hop{Link: id, To: seq[i]})
	}

	return hops, nil
}
