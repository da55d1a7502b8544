// types.go — Place, Link, Elevator, LinkID, and the validated Tables
// collection. See doc.go for the package overview.

package atlas

import "fmt"

// PlaceID is the integer automation ID the game assigns to a place.
type PlaceID int

// RouteID is the clamp/route number of an ordinary link. Always positive.
type RouteID int

// ElevatorDeltaV is the fixed traversal cost of every space elevator.
const ElevatorDeltaV int64 = 50

// Place is one row of the place table: an automation ID and a human name.
type Place struct {
	ID   PlaceID
	Name string
}

// Link is one row of the link table: an undirected edge between places A
// and B, traversable in both directions at the same delta-v cost, and
// identified by its route number.
type Link struct {
	Route  RouteID
	A, B   PlaceID
	DeltaV int64
}

// Elevator is one row of the elevator table: a fixed-cost edge between a
// bottom place and a top place, identified by its name. The name doubles as
// the schedule-stop station text.
type Elevator struct {
	Name        string
	Bottom, Top PlaceID
}

// LinkID identifies the edge a planned hop traverses. Ordinary links carry
// their route number; elevators carry the elevator name instead, keeping the
// two identifier schemes distinct. Exactly one of the fields is set.
type LinkID struct {
	Route    RouteID // positive route number; zero for elevators
	Elevator string  // elevator name; empty for ordinary links
}

// IsElevator reports whether the identifier names an elevator edge.
func (id LinkID) IsElevator() bool { return id.Elevator != "" }

// String renders the identifier the way schedules name it: "Rt111" for an
// ordinary link, "elevator(Name)" for an elevator.
func (id LinkID) String() string {
	if id.IsElevator() {
		return fmt.Sprintf("elevator(%s)", id.Elevator)
	}

	return fmt.Sprintf("Rt%d", id.Route)
}

// Tables is the validated, immutable collection of the three static tables.
// Construct with NewTables; accessors return copies, so a Tables value can
// be shared freely across goroutines.
type Tables struct {
	places    []Place
	links     []Link
	elevators []Elevator
	names     map[PlaceID]string
}

// pair is an unordered place pair used for duplicate-edge detection.
type pair struct{ lo, hi PlaceID }

func orderedPair(a, b PlaceID) pair {
	if a > b {
		a, b = b, a
	}

	return pair{lo: a, hi: b}
}

// NewTables validates the three static tables and returns the immutable
// collection. Validation order: places first (duplicate IDs), then links
// (route numbers, endpoints, weights), then elevators (names, endpoints),
// with pair uniqueness enforced across links and elevators together.
func NewTables(places []Place, links []Link, elevators []Elevator) (*Tables, error) {
	t := &Tables{
		places:    append([]Place(nil), places...),
		links:     append([]Link(nil), links...),
		elevators: append([]Elevator(nil), elevators...),
		names:     make(map[PlaceID]string, len(places)),
	}

	for _, p := range t.places {
		if _, ok := t.names[p.ID]; ok {
			return nil, fmt.Errorf("%w: place %d", ErrDuplicatePlace, p.ID)
		}
		t.names[p.ID] = p.Name
	}

	seenRoutes := make(map[RouteID]struct{}, len(t.links))
	seenPairs := make(map[pair]struct{}, len(t.links)+len(t.elevators))
	for _, l := range t.links {
		if l.Route <= 0 {
			return nil, fmt.Errorf("%w: route %d", ErrBadRoute, l.Route)
		}
		if _, ok := seenRoutes[l.Route]; ok {
			return nil, fmt.Errorf("%w: route %d", ErrDuplicateRoute, l.Route)
		}
		seenRoutes[l.Route] = struct{}{}

		if err := t.checkEdge(l.A, l.B, seenPairs); err != nil {
			return nil, fmt.Errorf("route %d: %w", l.Route, err)
		}
		if l.DeltaV < 0 {
			return nil, fmt.Errorf("%w: route %d delta-v %d", ErrNegativeDeltaV, l.Route, l.DeltaV)
		}
	}

	for _, e := range t.elevators {
		if e.Name == "" {
			return nil, fmt.Errorf("%w: bottom %d top %d", ErrEmptyElevatorName, e.Bottom, e.Top)
		}
		if err := t.checkEdge(e.Bottom, e.Top, seenPairs); err != nil {
			return nil, fmt.Errorf("elevator %q: %w", e.Name, err)
		}
	}

	return t, nil
}

// checkEdge validates one edge's endpoints against the place table and
// records its unordered pair, rejecting doubled-up pairs.
func (t *Tables) checkEdge(a, b PlaceID, seen map[pair]struct{}) error {
	if a == b {
		return fmt.Errorf("%w: place %d", ErrSelfLink, a)
	}
	for _, id := range [2]PlaceID{a, b} {
		if _, ok := t.names[id]; !ok {
			return fmt.Errorf("%w: place %d", ErrUnknownEndpoint, id)
		}
	}

	p := orderedPair(a, b)
	if _, ok := seen[p]; ok {
		return fmt.Errorf("%w: places %d and %d", ErrDuplicatePair, a, b)
	}
	seen[p] = struct{}{}

	return nil
}

// HasPlace reports whether the place table declares id.
func (t *Tables) HasPlace(id PlaceID) bool {
	_, ok := t.names[id]

	return ok
}

// PlaceName returns the human name of a place, and whether it is declared.
func (t *Tables) PlaceName(id PlaceID) (string, bool) {
	name, ok := t.names[id]

	return name, ok
}

// Places returns a copy of the place table in declaration order.
func (t *Tables) Places() []Place {
	return append([]Place(nil), t.places...)
}

// Links returns a copy of the link table in declaration order.
func (t *Tables) Links() []Link {
	return append([]Link(nil), t.links...)
}

// Elevators returns a copy of the elevator table in declaration order.
func (t *Tables) Elevators() []Elevator {
	return append([]Elevator(nil), t.elevators...)
}

// ElevatorBetween returns the elevator spanning places a and b, in either
// orientation, and whether one exists.
func (t *Tables) ElevatorBetween(a, b PlaceID) (Elevator, bool) {
	for _, e := range t.elevators {
		if (e.Bottom == a && e.Top == b) || (e.Bottom == b && e.Top == a) {
			return e, true
		}
	}

	return Elevator{}, false
}
