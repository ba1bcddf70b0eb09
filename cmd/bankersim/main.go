// Command bankersim replays a YAML scenario through the Banker's-algorithm
// request protocol and logs every decision.
//
// Usage:
//
//	bankersim -f scenario.yaml [-v]
//
// The initial state's safety verdict (and witness sequence) is logged
// first; each scripted step then reports its outcome and the resulting
// Available vector. Exits non-zero on hard errors (malformed scenario,
// malformed state, over-demand, over-release).
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"github.com/katalvlaran/banker/arbiter"
	"github.com/katalvlaran/banker/safety"
	"github.com/katalvlaran/banker/scenario"
)

func main() {
	var (
		file    = flag.String("f", "", "path to the YAML scenario file")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))

	if *file == "" {
		log.Error("missing -f scenario file")
		flag.Usage()
		os.Exit(2)
	}
	if err := run(log, *file); err != nil {
		log.Error("simulation failed", "err", err)
		os.Exit(1)
	}
}

// run loads the scenario, reports the initial safety verdict, and replays
// the scripted steps through an arbiter.
func run(log *slog.Logger, path string) error {
	sc, err := scenario.LoadFile(path)
	if err != nil {
		return err
	}
	initial, err := sc.Build()
	if err != nil {
		return err
	}
	log.Debug("scenario loaded",
		"processes", initial.NumProcesses(),
		"resources", initial.NumResources(),
		"total", initial.Total(),
	)

	verdict, err := safety.Evaluate(initial)
	if err != nil {
		return err
	}
	if !verdict.Safe {
		log.Error("initial state is unsafe", "finishable", verdict.Sequence)

		return arbiter.ErrUnsafeState
	}
	log.Info("initial state is safe",
		"sequence", verdict.Sequence,
		"available", initial.Available(),
	)

	arb, err := arbiter.New(initial)
	if err != nil {
		return err
	}
	for i, step := range sc.Steps {
		if err = replay(log, arb, i, step); err != nil {
			return err
		}
	}
	log.Info("scenario complete", "available", arb.Snapshot().Available())

	return nil
}

// replay executes one scripted step and logs its result.
func replay(log *slog.Logger, arb *arbiter.Arbiter, i int, step scenario.Step) error {
	log = log.With("step", i, "process", step.Process, "vector", step.Vector)
	switch step.Op {
	case scenario.OpRelease:
		if err := arb.Release(step.Process, step.Vector); err != nil {
			return err
		}
		log.Info("released", "available", arb.Snapshot().Available())
	case scenario.OpRequest:
		d, err := arb.Request(step.Process, step.Vector)
		if err != nil {
			return err
		}
		switch d.Outcome {
		case arbiter.Granted:
			log.Info("granted",
				"sequence", d.SafeSequence,
				"available", arb.Snapshot().Available(),
			)
		case arbiter.Waiting:
			log.Warn("waiting: insufficient available resources")
		case arbiter.Denied:
			log.Warn("denied: grant would risk deadlock")
		}
	}

	return nil
}
