// Package schedule turns planned routes into the ordered stop lists a
// train schedule is made of.
//
// Stops are materialized, finite sequences — callers can inspect, reorder,
// or reuse them — and marshal directly to the engine's JSON shape. Build
// assembles a full round trip: pickup (wait until full), the outbound hops
// with lobby stops between them, dropoff (wait until empty), and the
// return hops.
package schedule
