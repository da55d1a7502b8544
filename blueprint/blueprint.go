package blueprint

import (
	"errors"
	"fmt"

	"github.com/astermore/mktrain/schedule"
)

// Version is the game version stamp every blueprint carries.
const Version uint64 = 281479274823680

// Kind selects the wagon type of the consist.
type Kind string

// Wagon kinds the game knows about.
const (
	KindCargo Kind = "cargo"
	KindFluid Kind = "fluid"
)

// ErrBadKind indicates a wagon kind other than cargo or fluid.
var ErrBadKind = errors.New("blueprint: kind must be cargo or fluid")

// Position is a blueprint-grid coordinate.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Entity is one placed entity: a locomotive or a wagon.
type Entity struct {
	EntityNumber int      `json:"entity_number"`
	Name         string   `json:"name"`
	Orientation  float64  `json:"orientation"`
	Position     Position `json:"position"`
}

// Icon is one of the blueprint's toolbar icons.
type Icon struct {
	Signal schedule.Signal `json:"signal"`
	Index  int             `json:"index"`
}

// TrainSchedule binds a stop list to the locomotives that follow it.
type TrainSchedule struct {
	Locomotives []int           `json:"locomotives"`
	Schedule    []schedule.Stop `json:"schedule"`
}

// Blueprint is the importable blueprint body.
type Blueprint struct {
	Description string          `json:"description"`
	Entities    []Entity        `json:"entities"`
	Icons       []Icon          `json:"icons"`
	Item        string          `json:"item"`
	Label       string          `json:"label"`
	Schedules   []TrainSchedule `json:"schedules"`
	Version     uint64          `json:"version"`
}

// Wrapper is the top-level object the game expects around a blueprint.
type Wrapper struct {
	Blueprint Blueprint `json:"blueprint"`
}

// consist layout constants: one column of rolling stock, seven tiles apart,
// locomotives at both ends so the train can run either direction.
const (
	consistX   = -93
	consistY   = 180
	stockPitch = 7
	wagonCount = 4
)

// NewTrain builds the blueprint for a shuttle train of the given wagon
// kind, carrying the given schedule on both locomotives. Returns ErrBadKind
// for any kind other than KindCargo or KindFluid.
func NewTrain(kind Kind, label, description string, stops []schedule.Stop) (*Wrapper, error) {
	if kind != KindCargo && kind != KindFluid {
		return nil, fmt.Errorf("%w: %q", ErrBadKind, kind)
	}

	entities := make([]Entity, 0, wagonCount+2)
	entities = append(entities, Entity{
		EntityNumber: 1,
		Name:         "locomotive",
		Orientation:  0,
		Position:     Position{X: consistX, Y: consistY},
	})
	for i := 0; i < wagonCount; i++ {
		entities = append(entities, Entity{
			EntityNumber: i + 2,
			Name:         fmt.Sprintf("%s-wagon", kind),
			Orientation:  0.5,
			Position:     Position{X: consistX, Y: float64(consistY + (i+1)*stockPitch)},
		})
	}
	entities = append(entities, Entity{
		EntityNumber: wagonCount + 2,
		Name:         "locomotive",
		Orientation:  0.5,
		Position:     Position{X: consistX, Y: float64(consistY + (wagonCount+1)*stockPitch)},
	})

	return &Wrapper{Blueprint: Blueprint{
		Description: description,
		Entities:    entities,
		Icons:       []Icon{},
		Item:        "blueprint",
		Label:       label,
		Schedules: []TrainSchedule{
			{
				Locomotives: []int{1, wagonCount + 2},
				Schedule:    stops,
			},
		},
		Version: Version,
	}}, nil
}

// Description renders the blueprint description text for a delivery
// between two named places.
func Description(fromName, toName string) string {
	return fmt.Sprintf("from %s to %s\n", fromName, toName)
}
