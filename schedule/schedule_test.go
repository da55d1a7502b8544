package schedule_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astermore/mktrain/atlas"
	"github.com/astermore/mktrain/route"
	"github.com/astermore/mktrain/schedule"
)

func linePlanner(t *testing.T) *route.Planner {
	t.Helper()
	tab, err := atlas.NewTables(
		[]atlas.Place{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}, {ID: 3, Name: "C"}, {ID: 4, Name: "D"}},
		[]atlas.Link{
			{Route: 10, A: 1, B: 2, DeltaV: 5},
			{Route: 20, A: 2, B: 3, DeltaV: 3},
		},
		nil,
	)
	require.NoError(t, err)
	p, err := route.NewPlanner(tab)
	require.NoError(t, err)

	return p
}

func TestPickupAndDropoff(t *testing.T) {
	pickup := schedule.Pickup("Iron Pickup")
	assert.Equal(t, "Iron Pickup", pickup.Station)
	require.Len(t, pickup.WaitConditions, 1)
	assert.Equal(t, "full", pickup.WaitConditions[0].Type)
	assert.Equal(t, "or", pickup.WaitConditions[0].CompareType)

	dropoff := schedule.Dropoff("Iron Drop")
	require.Len(t, dropoff.WaitConditions, 1)
	assert.Equal(t, "empty", dropoff.WaitConditions[0].Type)
}

func TestLobby(t *testing.T) {
	lobby := schedule.Lobby()
	assert.Equal(t, schedule.LobbyStation, lobby.Station)
	require.Len(t, lobby.WaitConditions, 1)
	assert.Equal(t, "time", lobby.WaitConditions[0].Type)
	assert.Equal(t, 60, lobby.WaitConditions[0].Ticks)
}

func TestHopStops_NumberedRoute(t *testing.T) {
	stops := schedule.HopStops(route.Hop{Link: atlas.LinkID{Route: 111}, To: 1151})
	require.Len(t, stops, 2)

	assert.Equal(t, "Boarding Rt111", stops[0].Station)
	assert.Empty(t, stops[0].WaitConditions)

	assert.Equal(t, "Rt111", stops[1].Station)
	require.Len(t, stops[1].WaitConditions, 1)
	wc := stops[1].WaitConditions[0]
	assert.Equal(t, "circuit", wc.Type)
	require.NotNil(t, wc.Condition)
	assert.Equal(t, "=", wc.Condition.Comparator)
	assert.Equal(t, 1151, wc.Condition.Constant)
	assert.Equal(t, schedule.Signal{Name: "signal-A", Type: "virtual"}, wc.Condition.FirstSignal)
}

func TestHopStops_Elevator(t *testing.T) {
	stops := schedule.HopStops(route.Hop{Link: atlas.LinkID{Elevator: "Foenestra Lift"}, To: 1})
	require.Len(t, stops, 1)
	assert.Equal(t, "Foenestra Lift", stops[0].Station)
	require.Len(t, stops[0].WaitConditions, 1)
	assert.Equal(t, "time", stops[0].WaitConditions[0].Type)
}

func TestRouteStops_LobbyBookends(t *testing.T) {
	hops := []route.Hop{
		{Link: atlas.LinkID{Route: 10}, To: 2},
		{Link: atlas.LinkID{Route: 20}, To: 3},
	}
	stops := schedule.RouteStops(hops)

	// lobby, (boarding, route), lobby, (boarding, route), lobby
	require.Len(t, stops, 7)
	assert.Equal(t, schedule.LobbyStation, stops[0].Station)
	assert.Equal(t, schedule.LobbyStation, stops[3].Station)
	assert.Equal(t, schedule.LobbyStation, stops[6].Station)
	assert.Equal(t, "Boarding Rt10", stops[1].Station)
	assert.Equal(t, "Rt20", stops[5].Station)
}

func TestRouteStops_NoHops(t *testing.T) {
	stops := schedule.RouteStops(nil)
	require.Len(t, stops, 1)
	assert.Equal(t, schedule.LobbyStation, stops[0].Station)
}

func TestBuild_RoundTrip(t *testing.T) {
	p := linePlanner(t)

	stops, err := schedule.Build(p,
		schedule.Endpoint{Station: "Iron Pickup", Place: 1},
		schedule.Endpoint{Station: "Iron Drop", Place: 3},
	)
	require.NoError(t, err)

	// pickup + 7 outbound + dropoff + 7 return
	require.Len(t, stops, 16)
	assert.Equal(t, "Iron Pickup", stops[0].Station)
	assert.Equal(t, "Iron Drop", stops[8].Station)

	// Outbound rides Rt10 then Rt20; the return leg rides them in reverse.
	assert.Equal(t, "Boarding Rt10", stops[2].Station)
	assert.Equal(t, "Boarding Rt20", stops[5].Station)
	assert.Equal(t, "Boarding Rt20", stops[10].Station)
	assert.Equal(t, "Boarding Rt10", stops[13].Station)

	// The schedule ends back in a lobby, ready to loop.
	assert.Equal(t, schedule.LobbyStation, stops[15].Station)
}

func TestBuild_Unreachable(t *testing.T) {
	p := linePlanner(t)

	_, err := schedule.Build(p,
		schedule.Endpoint{Station: "Pickup", Place: 1},
		schedule.Endpoint{Station: "Drop", Place: 4},
	)
	assert.ErrorIs(t, err, route.ErrNoRoute)
}

func TestStop_JSONShape(t *testing.T) {
	stops := schedule.HopStops(route.Hop{Link: atlas.LinkID{Route: 111}, To: 1151})
	raw, err := json.Marshal(stops[1])
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"station": "Rt111",
		"wait_conditions": [
			{
				"compare_type": "or",
				"type": "circuit",
				"condition": {
					"comparator": "=",
					"constant": 1151,
					"first_signal": {"name": "signal-A", "type": "virtual"}
				}
			}
		]
	}`, string(raw))
}

func TestStop_JSONOmitsEmptyWaits(t *testing.T) {
	raw, err := json.Marshal(schedule.Stop{Station: "Boarding Rt111"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"station": "Boarding Rt111"}`, string(raw))
}
