package roadfile

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/triroute/core"
	"github.com/katalvlaran/triroute/solver"
)

// CompromiseLabel heads the fourth line of every result block.
const CompromiseLabel = "COMPROMISE"

// Write renders results to w in request order.
func Write(w io.Writer, results []solver.Result) error {
	bw := bufio.NewWriter(w)
	for i, res := range results {
		if i > 0 {
			if _, err := bw.WriteString("\n"); err != nil {
				return fmt.Errorf("roadfile: write: %w", err)
			}
		}
		if err := writeResult(bw, res); err != nil {
			return fmt.Errorf("roadfile: write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("roadfile: write: %w", err)
	}

	return nil
}

// WriteFile creates (or truncates) path and writes results into it.
func WriteFile(path string, results []solver.Result) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("roadfile: create: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("roadfile: close: %w", cerr)
		}
	}()

	return Write(f, results)
}

// writeResult emits the four labelled lines of one result.
func writeResult(w io.Writer, res solver.Result) error {
	for _, c := range core.Criteria {
		if err := writeLine(w, c.String(), res.Optimal.Get(c)); err != nil {
			return err
		}
	}

	return writeLine(w, CompromiseLabel, res.Compromise)
}

func writeLine(w io.Writer, label string, r core.Route) error {
	_, err := fmt.Fprintf(w, "%s: %s\n", label, r)
	return err
}
