package tables

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/astermore/mktrain/atlas"
)

// hclFile is the top-level shape of a tables file for decoding.
type hclFile struct {
	Places    []hclPlace    `hcl:"place,block"`
	Links     []hclLink     `hcl:"link,block"`
	Elevators []hclElevator `hcl:"elevator,block"`
}

type hclPlace struct {
	ID   int    `hcl:"id"`
	Name string `hcl:"name"`
}

type hclLink struct {
	Route  int   `hcl:"route"`
	From   int   `hcl:"from"`
	To     int   `hcl:"to"`
	DeltaV int64 `hcl:"delta_v"`
}

type hclElevator struct {
	Name   string `hcl:"name"`
	Bottom int    `hcl:"bottom"`
	Top    int    `hcl:"top"`
}

// Load reads and parses the tables file at path and returns the validated
// table set.
func Load(path string) (*atlas.Tables, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("tables: parse %s: %w", path, diags)
	}

	return decode(path, file)
}

// Parse parses tables from an in-memory buffer. The filename is only used
// in diagnostics.
func Parse(filename string, src []byte) (*atlas.Tables, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("tables: parse %s: %w", filename, diags)
	}

	return decode(filename, file)
}

func decode(filename string, file *hcl.File) (*atlas.Tables, error) {
	var raw hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("tables: decode %s: %w", filename, diags)
	}

	places := make([]atlas.Place, 0, len(raw.Places))
	for _, p := range raw.Places {
		places = append(places, atlas.Place{ID: atlas.PlaceID(p.ID), Name: p.Name})
	}

	links := make([]atlas.Link, 0, len(raw.Links))
	for _, l := range raw.Links {
		links = append(links, atlas.Link{
			Route:  atlas.RouteID(l.Route),
			A:      atlas.PlaceID(l.From),
			B:      atlas.PlaceID(l.To),
			DeltaV: l.DeltaV,
		})
	}

	elevators := make([]atlas.Elevator, 0, len(raw.Elevators))
	for _, e := range raw.Elevators {
		elevators = append(elevators, atlas.Elevator{
			Name:   e.Name,
			Bottom: atlas.PlaceID(e.Bottom),
			Top:    atlas.PlaceID(e.Top),
		})
	}

	t, err := atlas.NewTables(places, links, elevators)
	if err != nil {
		return nil, fmt.Errorf("tables: %s: %w", filename, err)
	}

	return t, nil
}
