package schedule

import (
	"fmt"

	"github.com/astermore/mktrain/atlas"
	"github.com/astermore/mktrain/route"
)

// LobbyStation is the station every train idles at between hops.
const LobbyStation = "-Lobby"

// lobbyWaitTicks is how long a train pauses at a lobby (one second).
const lobbyWaitTicks = 60

// Signal is a circuit-network signal reference.
type Signal struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// CircuitCondition compares a circuit signal against a constant.
type CircuitCondition struct {
	Comparator  string `json:"comparator"`
	Constant    int    `json:"constant"`
	FirstSignal Signal `json:"first_signal"`
}

// WaitCondition is one condition a train waits on at a stop.
type WaitCondition struct {
	CompareType string            `json:"compare_type"`
	Type        string            `json:"type"`
	Ticks       int               `json:"ticks,omitempty"`
	Condition   *CircuitCondition `json:"condition,omitempty"`
}

// Stop is one schedule entry: a station name and the conditions to wait on
// before departing. A stop with no wait conditions departs as soon as the
// path clears.
type Stop struct {
	Station        string          `json:"station"`
	WaitConditions []WaitCondition `json:"wait_conditions,omitempty"`
}

// Endpoint names one end of a delivery: the station the train loads or
// unloads at, and the place that station is in.
type Endpoint struct {
	Station string
	Place   atlas.PlaceID
}

// Pickup returns the stop where the train loads: wait until full.
func Pickup(station string) Stop {
	return Stop{
		Station: station,
		WaitConditions: []WaitCondition{
			{CompareType: "or", Type: "full"},
		},
	}
}

// Dropoff returns the stop where the train unloads: wait until empty.
func Dropoff(station string) Stop {
	return Stop{
		Station: station,
		WaitConditions: []WaitCondition{
			{CompareType: "or", Type: "empty"},
		},
	}
}

// Lobby returns the holding stop trains pause at between hops.
func Lobby() Stop {
	return Stop{
		Station: LobbyStation,
		WaitConditions: []WaitCondition{
			{CompareType: "or", Type: "time", Ticks: lobbyWaitTicks},
		},
	}
}

// HopStops returns the stops for a single hop. A numbered route produces a
// boarding stop followed by the route stop, which waits until the circuit
// network confirms the ship is bound for the hop's destination. An elevator
// produces a single stop at the elevator's station with a short time wait.
func HopStops(h route.Hop) []Stop {
	if h.Link.IsElevator() {
		return []Stop{{
			Station: h.Link.Elevator,
			WaitConditions: []WaitCondition{
				{CompareType: "or", Type: "time", Ticks: lobbyWaitTicks},
			},
		}}
	}

	return []Stop{
		{Station: fmt.Sprintf("Boarding Rt%d", h.Link.Route)},
		{
			Station: fmt.Sprintf("Rt%d", h.Link.Route),
			WaitConditions: []WaitCondition{
				{
					CompareType: "or",
					Type:        "circuit",
					Condition: &CircuitCondition{
						Comparator:  "=",
						Constant:    int(h.To),
						FirstSignal: Signal{Name: "signal-A", Type: "virtual"},
					},
				},
			},
		},
	}
}

// RouteStops returns the stops for a sequence of hops, bookended and
// separated by lobby stops: lobby, hop, lobby, hop, ..., lobby.
func RouteStops(hops []route.Hop) []Stop {
	stops := []Stop{Lobby()}
	for _, h := range hops {
		stops = append(stops, HopStops(h)...)
		stops = append(stops, Lobby())
	}

	return stops
}

// Build plans both legs of a delivery and assembles the complete schedule:
// pickup at from, the outbound hops, dropoff at to, and the return hops.
// Planning errors (route.ErrUnknownPlace, route.ErrNoRoute,
// route.ErrInconsistentTables) propagate unchanged.
func Build(p *route.Planner, from, to Endpoint) ([]Stop, error) {
	there, err := p.FindRoute(from.Place, to.Place)
	if err != nil {
		return nil, fmt.Errorf("outbound leg: %w", err)
	}
	back, err := p.FindRoute(to.Place, from.Place)
	if err != nil {
		return nil, fmt.Errorf("return leg: %w", err)
	}

	stops := []Stop{Pickup(from.Station)}
	stops = append(stops, RouteStops(there)...)
	stops = append(stops, Dropoff(to.Station))
	stops = append(stops, RouteStops(back)...)

	return stops, nil
}
