package driver

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// resultWriter appends one CSV row per algorithm run to the configured
// results file, writing the header only the first time the file is
// created. The format is hand-written with fmt.Fprintf rather than
// encoding/csv to keep the exact row layout downstream analysis scripts
// already parse.
type resultWriter struct {
	f *os.File
}

func newResultWriter(path string) (*resultWriter, error) {
	if path == "" {
		return &resultWriter{}, nil
	}

	_, statErr := os.Stat(path)
	isNew := os.IsNotExist(statErr)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "driver: open results file %s", path)
	}

	if isNew {
		if _, err := fmt.Fprint(f, "graph,b,seed,l,threshold_global,algorithm,time,weight\n"); err != nil {
			f.Close()
			return nil, errors.Wrap(err, "driver: write results header")
		}
	}
	return &resultWriter{f: f}, nil
}

func (w *resultWriter) writeRow(cfg Config, b int, algo algoResult) error {
	if w.f == nil {
		return nil
	}
	_, err := fmt.Fprintf(w.f, "%s,%d,%d,%d,%g,%s,%f,%d\n",
		cfg.GraphFile, b, cfg.Seed, cfg.ROMACount, algo.threshold, algo.shortName, algo.seconds, algo.weight)
	return errors.Wrap(err, "driver: write result row")
}

func (w *resultWriter) Close() error {
	if w.f == nil {
		return nil
	}
	return w.f.Close()
}

type algoResult struct {
	shortName string
	threshold float64
	seconds   float64
	weight    uint64
}
