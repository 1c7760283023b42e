package driver

import (
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/pkg/errors"

	"github.com/katalvlaran/bmatch/graph"
)

// Run reads cfg's graph file, builds every configured algorithm, and runs
// each of them once per requested b value, printing a fixed-width progress
// table to out and appending one row per run to the results file (if any).
func Run(cfg Config, out io.Writer) error {
	f, err := os.Open(cfg.GraphFile)
	if err != nil {
		return errors.Wrapf(err, "driver: open graph file %s", cfg.GraphFile)
	}
	defer f.Close()

	snap, err := graph.ReadKonect(f)
	if err != nil {
		return errors.Wrapf(err, "driver: read graph file %s", cfg.GraphFile)
	}
	fmt.Fprintf(out, "graph: %s n=%d m=%d\n", cfg.GraphFile, snap.NumVertices(), snap.NumArcs())
	log.WithFields(log.Fields{
		"vertices": snap.NumVertices(),
		"arcs":     snap.NumArcs(),
	}).Debug("graph loaded")

	algos, err := BuildAlgorithms(cfg)
	if err != nil {
		return errors.Wrap(err, "driver: build algorithms")
	}
	if len(algos) == 0 {
		return errors.New("driver: no algorithms selected")
	}

	results, err := newResultWriter(cfg.ResultsOutput)
	if err != nil {
		return err
	}
	defer results.Close()

	for _, b := range cfg.Bs {
		fmt.Fprintf(out, "Running with b=%d:\n", b)
		fmt.Fprintf(out, "| %-40s | %20s | %12s |\n", "Algorithm", "Weight", "Time (s)")

		for _, algo := range algos {
			fmt.Fprintf(out, "| %-40s", algo.Name())

			if !algo.Prepare(snap, b) {
				fmt.Fprintf(out, " | %35s |\n", "FAILED TO PREPARE")
				log.WithFields(log.Fields{"algorithm": algo.Name(), "b": b}).Warn("prepare failed, skipping")
				continue
			}

			start := time.Now()
			algo.Run()
			elapsed := time.Since(start)
			weight := algo.Deliver()

			if cfg.SanityCheck {
				if violations := algo.SanityCheck(); len(violations) > 0 {
					for _, v := range violations {
						log.WithFields(log.Fields{"algorithm": algo.Name(), "b": b}).Error(v)
					}
				}
			}

			if err := results.writeRow(cfg, b, algoResult{
				shortName: algo.ShortName(),
				threshold: algo.Threshold(),
				seconds:   elapsed.Seconds(),
				weight:    weight,
			}); err != nil {
				log.WithError(err).Warn("failed to write result row")
			}

			fmt.Fprintf(out, " | %20d | %12.6f |\n", weight, elapsed.Seconds())
		}
	}

	return nil
}
