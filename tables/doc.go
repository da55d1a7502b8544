// Package tables loads the static atlas tables from HCL configuration.
//
// A tables file declares places, links, and elevators as blocks:
//
//	place {
//	  id   = 588
//	  name = "Auberge Orbit"
//	}
//
//	link {
//	  route   = 111
//	  from    = 588
//	  to      = 1151
//	  delta_v = 2606
//	}
//
//	elevator {
//	  name   = "Foenestra Lift"
//	  bottom = 1151
//	  top    = 1
//	}
//
// Everything decoded here is funneled through atlas.NewTables, so a loader
// result is always a validated table set: parse and decode failures surface
// as wrapped HCL diagnostics, semantic failures as atlas sentinel errors.
package tables
