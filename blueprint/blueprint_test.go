package blueprint_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astermore/mktrain/blueprint"
	"github.com/astermore/mktrain/schedule"
)

func TestNewTrain_Cargo(t *testing.T) {
	stops := []schedule.Stop{schedule.Pickup("Iron Pickup"), schedule.Lobby()}
	bp, err := blueprint.NewTrain(blueprint.KindCargo, "TRAIN!", "from A to B\n", stops)
	require.NoError(t, err)

	b := bp.Blueprint
	assert.Equal(t, "blueprint", b.Item)
	assert.Equal(t, "TRAIN!", b.Label)
	assert.Equal(t, "from A to B\n", b.Description)
	assert.Equal(t, blueprint.Version, b.Version)

	// Two locomotives bookending four wagons.
	require.Len(t, b.Entities, 6)
	assert.Equal(t, "locomotive", b.Entities[0].Name)
	assert.Equal(t, "locomotive", b.Entities[5].Name)
	for i := 1; i <= 4; i++ {
		assert.Equal(t, "cargo-wagon", b.Entities[i].Name, "entity %d", i)
	}

	// Entity numbers are 1-based and sequential; stock sits in one column.
	for i, e := range b.Entities {
		assert.Equal(t, i+1, e.EntityNumber)
		assert.Equal(t, float64(-93), e.Position.X)
	}
	assert.Equal(t, float64(180), b.Entities[0].Position.Y)
	assert.Equal(t, float64(215), b.Entities[5].Position.Y)

	// The schedule rides on both locomotives.
	require.Len(t, b.Schedules, 1)
	assert.Equal(t, []int{1, 6}, b.Schedules[0].Locomotives)
	assert.Equal(t, stops, b.Schedules[0].Schedule)
}

func TestNewTrain_Fluid(t *testing.T) {
	bp, err := blueprint.NewTrain(blueprint.KindFluid, "TRAIN!", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "fluid-wagon", bp.Blueprint.Entities[1].Name)
}

func TestNewTrain_BadKind(t *testing.T) {
	_, err := blueprint.NewTrain("plasma", "TRAIN!", "", nil)
	assert.ErrorIs(t, err, blueprint.ErrBadKind)
}

func TestNewTrain_JSONWrapper(t *testing.T) {
	bp, err := blueprint.NewTrain(blueprint.KindCargo, "TRAIN!", "", nil)
	require.NoError(t, err)

	raw, err := json.Marshal(bp)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Contains(t, decoded, "blueprint")

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(decoded["blueprint"], &body))
	for _, key := range []string{"description", "entities", "icons", "item", "label", "schedules", "version"} {
		assert.Contains(t, body, key)
	}

	// Icons must marshal as an empty array, not null.
	assert.Equal(t, "[]", string(body["icons"]))
}

func TestDescription(t *testing.T) {
	assert.Equal(t, "from Auberge Orbit to Astermore Orbit\n",
		blueprint.Description("Auberge Orbit", "Astermore Orbit"))
}
