package sweep

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/onetree-sim/onetree-sim/sampler"
)

// Row is the sweep result for one grid point: the smallest node counts
// whose cumulative probability reaches 1/8, 1/4 and 1/2. CSP and Tau are
// the values as given, before the grind offset is applied.
type Row struct {
	CSP          int
	Tau          int
	TOpenEighth  int
	TOpenQuarter int
	TOpenHalf    int
}

// header matches the CSV layout the downstream parameter-search tooling
// consumes.
var header = []string{"lambda", "tau", "t_open_1_8", "t_open_1_4", "t_open_1_2"}

// Run evaluates every grid point of the spec and returns the rows in grid
// order. Each pipeline invocation owns its memo cache, so grid points run
// concurrently on up to spec.Workers goroutines.
func Run(spec *Spec) ([]Row, error) {
	pairs := spec.Grid()
	rows := make([]Row, len(pairs))

	var g errgroup.Group
	g.SetLimit(spec.Workers)
	for i, pair := range pairs {
		i, pair := i, pair
		g.Go(func() error {
			start := time.Now()
			hist, err := sampler.NodeCountHistogram(pair.CSP-spec.Grind, pair.Tau)
			if err != nil {
				return fmt.Errorf("csp=%d tau=%d: %w", pair.CSP, pair.Tau, err)
			}
			rows[i] = Row{
				CSP:          pair.CSP,
				Tau:          pair.Tau,
				TOpenEighth:  hist.CumulativeThreshold(0.125),
				TOpenQuarter: hist.CumulativeThreshold(0.25),
				TOpenHalf:    hist.CumulativeThreshold(0.5),
			}
			logrus.Infof("csp=%d tau=%d done in %s", pair.CSP, pair.Tau, time.Since(start))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

// WriteCSV writes the header and rows to w.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			strconv.Itoa(row.CSP),
			strconv.Itoa(row.Tau),
			strconv.Itoa(row.TOpenEighth),
			strconv.Itoa(row.TOpenQuarter),
			strconv.Itoa(row.TOpenHalf),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the rows to the named file, creating or truncating
// it.
func WriteCSVFile(path string, rows []Row) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			logrus.Errorf("closing %s: %v", path, closeErr)
		}
	}()
	return WriteCSV(file, rows)
}
