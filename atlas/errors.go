// errors.go — sentinel errors for the atlas package.
//
// Error policy:
//   - Only package-level sentinel variables are exposed.
//   - Callers branch with errors.Is(err, ErrX), never by string comparison.
//   - Context (the offending ID, pair, or weight) is attached at the call
//     site with %w wrapping; sentinels themselves stay parameter-free.

package atlas

import "errors"

// ErrDuplicatePlace indicates that two entries in the place table share the
// same automation ID.
var ErrDuplicatePlace = errors.New("atlas: duplicate place ID")

// ErrDuplicateRoute indicates that two links share the same route number.
var ErrDuplicateRoute = errors.New("atlas: duplicate route number")

// ErrBadRoute indicates a route number that is not positive. Route numbers
// are clamp numbers assigned by the game and start at 1.
var ErrBadRoute = errors.New("atlas: route number must be positive")

// ErrUnknownEndpoint indicates that a link or elevator references a place ID
// absent from the place table.
var ErrUnknownEndpoint = errors.New("atlas: edge endpoint not in place table")

// ErrSelfLink indicates an edge whose two endpoints are the same place.
var ErrSelfLink = errors.New("atlas: edge connects a place to itself")

// ErrDuplicatePair indicates two edges (links or elevators) covering the
// same unordered pair of places. Tables keep exactly one edge per pair so
// that every traversal maps back to a unique link identifier.
var ErrDuplicatePair = errors.New("atlas: multiple edges between the same places")

// ErrNegativeDeltaV indicates a link with a negative delta-v cost. Negative
// weights would break the planner's shortest-path guarantees, so they are
// rejected at table construction.
var ErrNegativeDeltaV = errors.New("atlas: negative delta-v")

// ErrEmptyElevatorName indicates an elevator with an empty name. The name is
// the schedule-stop station text, so it must be present.
var ErrEmptyElevatorName = errors.New("atlas: elevator name is empty")
