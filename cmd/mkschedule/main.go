// Command mkschedule plans a multi-hop train route between two places and
// prints the resulting train blueprint as JSON.
//
// Usage:
//
//	mkschedule -tables tables.hcl -kind cargo \
//	    -from-station "Iron Pickup" -from 588 \
//	    -to-station "Iron Drop" -to 148
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/astermore/mktrain/atlas"
	"github.com/astermore/mktrain/blueprint"
	"github.com/astermore/mktrain/route"
	"github.com/astermore/mktrain/schedule"
	"github.com/astermore/mktrain/tables"
)

// newLogger builds the CLI logger. Logs go to stderr so stdout stays clean
// for the blueprint JSON.
func newLogger(levelStr string) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

type options struct {
	tablesPath  string
	fromPlace   int
	toPlace     int
	fromStation string
	toStation   string
	kind        string
	label       string
}

func main() {
	var opts options
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, or error")
	flag.StringVar(&opts.tablesPath, "tables", "tables.hcl", "path to the HCL tables file")
	flag.IntVar(&opts.fromPlace, "from", 0, "pickup place ID")
	flag.IntVar(&opts.toPlace, "to", 0, "dropoff place ID")
	flag.StringVar(&opts.fromStation, "from-station", "", "pickup station name")
	flag.StringVar(&opts.toStation, "to-station", "", "dropoff station name")
	flag.StringVar(&opts.kind, "kind", "cargo", "wagon kind: cargo or fluid")
	flag.StringVar(&opts.label, "label", "TRAIN!", "blueprint label")
	flag.Parse()

	logger := newLogger(*logLevel)
	if err := run(logger, opts); err != nil {
		logger.Error("mkschedule failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, opts options) error {
	t, err := tables.Load(opts.tablesPath)
	if err != nil {
		return err
	}
	logger.Debug("tables loaded",
		"places", len(t.Places()),
		"links", len(t.Links()),
		"elevators", len(t.Elevators()))

	planner, err := route.NewPlanner(t)
	if err != nil {
		return err
	}

	from := atlas.PlaceID(opts.fromPlace)
	to := atlas.PlaceID(opts.toPlace)

	trace, err := planner.TraceRoute(from, to)
	if err != nil {
		return err
	}
	logger.Info("route found", "route", routeLine(t, trace))

	stops, err := schedule.Build(planner,
		schedule.Endpoint{Station: opts.fromStation, Place: from},
		schedule.Endpoint{Station: opts.toStation, Place: to},
	)
	if err != nil {
		return err
	}

	fromName, _ := t.PlaceName(from)
	toName, _ := t.PlaceName(to)
	bp, err := blueprint.NewTrain(blueprint.Kind(opts.kind), opts.label,
		blueprint.Description(fromName, toName), stops)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	if err := enc.Encode(bp); err != nil {
		return fmt.Errorf("encode blueprint: %w", err)
	}

	return nil
}

// routeLine renders a traced route as "Auberge Orbit -> Calidus Outer Belt".
func routeLine(t *atlas.Tables, trace []atlas.PlaceID) string {
	names := make([]string, 0, len(trace))
	for _, id := range trace {
		name, ok := t.PlaceName(id)
		if !ok {
			name = fmt.Sprintf("place %d", id)
		}
		names = append(names, name)
	}

	return strings.Join(names, " -> ")
}
