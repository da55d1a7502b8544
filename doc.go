// Package mktrain turns a static map of places, numbered route links, and
// space elevators into ready-to-paste logistics-train blueprints.
//
// 🚂 What is mktrain?
//
//	A small planning toolkit that brings together:
//		• atlas     — the static tables (places, links, elevators) and the
//		              weighted adjacency graph built from them
//		• route     — Dijkstra shortest-path planning, route tracing, and
//		              hop emission over those tables
//		• schedule  — schedule-stop records (pickup, lobby, boarding,
//		              elevator, dropoff) assembled into full round trips
//		• blueprint — the train blueprint structure the game imports
//		• tables    — HCL loader for the static tables
//		• cmd/mkschedule — the command-line front end
//
// The planner is a pure function of its tables: build the tables once,
// construct a Planner, and call it from as many goroutines as you like.
//
// Quick ASCII example — three places, two numbered routes:
//
//	Auberge ──Rt111── Calidus ──Rt100── Astermore
//
// Planning Auberge→Astermore yields the hops (Rt111, Calidus),
// (Rt100, Astermore), which schedule turns into lobby-bookended boarding
// stops and blueprint wraps into an importable train.
package mktrain
