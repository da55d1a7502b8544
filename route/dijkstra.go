// dijkstra.go — single-source shortest paths over the compiled graph.

package route

import (
	"fmt"

	"github.com/rhartert/sparsesets"
	"github.com/rhartert/yagh"

	"github.com/astermore/mktrain/atlas"
)

// ShortestPaths runs Dijkstra's algorithm from source and returns:
//
//   - dist: place → shortest delta-v cost from source; Unreachable for
//     places no path reaches (or none within the planner's delta-v budget).
//   - prev: place → predecessor on a shortest path. Places with no
//     predecessor (the source itself and unreachable places) are absent.
//
// Following prev links from any reachable place back to source reconstructs
// a shortest path; dist[source] is always 0.
//
// Returns ErrUnknownPlace if source is not declared in the tables.
func (p *Planner) ShortestPaths(source atlas.PlaceID) (map[atlas.PlaceID]int64, map[atlas.PlaceID]atlas.PlaceID, error) {
	src, ok := p.index[source]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %d", ErrUnknownPlace, source)
	}

	dist, prev := p.run(src)

	distByID := make(map[atlas.PlaceID]int64, len(p.ids))
	prevByID := make(map[atlas.PlaceID]atlas.PlaceID, len(p.ids))
	for i, id := range p.ids {
		distByID[id] = dist[i]
		if prev[i] >= 0 {
			prevByID[id] = p.ids[prev[i]]
		}
	}

	return distByID, prevByID, nil
}

// run is the dense-index Dijkstra core shared by ShortestPaths and
// TraceRoute. prev[i] == -1 means place i has no predecessor.
//
// The heap is keyed: relaxing a queued place updates its cost in place, so
// every place is extracted at most once. The settled set and the extraction
// bound are defensive on top of that — even malformed state cannot keep the
// loop alive past one extraction per place.
func (p *Planner) run(src int) (dist []int64, prev []int) {
	n := len(p.ids)
	dist = make([]int64, n)
	prev = make([]int, n)
	for i := range dist {
		dist[i] = Unreachable
		prev[i] = -1
	}
	dist[src] = 0

	heap := yagh.New[int64](n)
	heap.Put(src, 0)
	settled := sparsesets.New(n)

	for pops := 0; heap.Size() > 0 && pops < n; pops++ {
		entry := heap.Pop()
		u, d := entry.Elem, entry.Cost
		if settled.Contains(u) {
			continue
		}
		settled.Insert(u)

		for _, a := range p.nexts[u] {
			if settled.Contains(a.to) {
				continue
			}

			next := d + a.deltaV
			if next > p.maxDeltaV {
				continue
			}
			// Strictly shorter only: on ties the first settled predecessor
			// wins, which keeps results stable for fixed tables.
			if next >= dist[a.to] {
				continue
			}

			dist[a.to] = next
			prev[a.to] = u
			heap.Put(a.to, next)
		}
	}

	return dist, prev
}
