// Package blueprint assembles the train blueprint structure the game
// imports: a fixed two-locomotive, four-wagon consist with a schedule
// attached to both locomotives.
//
// The structure marshals to the engine's blueprint JSON with
// encoding/json. Compressing that JSON into a pasteable blueprint string
// is a separate concern handled outside this module.
package blueprint
