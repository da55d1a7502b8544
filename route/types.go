// types.go — Hop, sentinel errors, and functional options for the planner.

package route

import (
	"errors"
	"math"

	"github.com/astermore/mktrain/atlas"
)

// Unreachable is the distance reported for places that cannot be reached
// from the source.
const Unreachable int64 = math.MaxInt64

// Hop is one step of a planned route: the link to ride and the place it
// arrives at. A route of N places decomposes into N-1 hops.
type Hop struct {
	Link atlas.LinkID
	To   atlas.PlaceID
}

// Sentinel errors returned by the planner.
var (
	// ErrNilTables indicates that NewPlanner was given nil tables.
	ErrNilTables = errors.New("route: tables are nil")

	// ErrUnknownPlace indicates that a requested start or end place is not
	// declared in the place table. Validated before any search begins.
	ErrUnknownPlace = errors.New("route: place not in tables")

	// ErrNoRoute indicates that no sequence of links or elevators connects
	// the start place to the end place.
	ErrNoRoute = errors.New("route: no route between places")

	// ErrInconsistentTables indicates that a traced route crossed an edge
	// with no corresponding link identifier. The graph and the link tables
	// disagree, which is a configuration bug; the planning request aborts.
	ErrInconsistentTables = errors.New("route: traced edge missing from link tables")

	// ErrBadMaxDeltaV indicates a negative delta-v budget passed to
	// WithMaxDeltaV.
	ErrBadMaxDeltaV = errors.New("route: max delta-v must be non-negative")
)

// Option customizes a Planner at construction time.
type Option func(*Planner)

// WithMaxDeltaV caps the total delta-v the planner will explore. Places
// whose shortest path costs more than budget are treated as unreachable.
// Panics with ErrBadMaxDeltaV if budget is negative.
func WithMaxDeltaV(budget int64) Option {
	if budget < 0 {
		panic(ErrBadMaxDeltaV)
	}

	return func(p *Planner) { p.maxDeltaV = budget }
}
