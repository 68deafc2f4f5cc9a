package netio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ergmgo/ergmnet/effect"
)

// WriteTheta writes the bound-effect name and current parameter value one
// per line: "<name>\t<theta>".
func WriteTheta(w io.Writer, effects []effect.Effect, theta []float64) error {
	bw := bufio.NewWriter(w)
	for i, e := range effects {
		if _, err := fmt.Fprintf(bw, "%s\t%.10g\n", e.Kind, theta[i]); err != nil {
			return ErrIO(err)
		}
	}
	return ErrIO(bw.Flush())
}

// WriteObservedStatistics writes a named vector of observed sufficient
// statistics, one per line: "<name>\t<value>". Used both for the
// initially-observed network's z vector and for a simulation run's
// per-draw statistics record.
func WriteObservedStatistics(w io.Writer, names []string, values []float64) error {
	if len(names) != len(values) {
		return ErrMalformed("names and values length mismatch")
	}
	bw := bufio.NewWriter(w)
	for i, name := range names {
		if _, err := fmt.Fprintf(bw, "%s\t%.10g\n", name, values[i]); err != nil {
			return ErrIO(err)
		}
	}
	return ErrIO(bw.Flush())
}

// WriteDzA writes the dzA matrix produced by a Robbins-Monro estimation
// step: one row per MCMC draw, tab-separated per-effect change-statistic
// values, used downstream for the covariance estimate of theta-hat.
func WriteDzA(w io.Writer, rows [][]float64) error {
	bw := bufio.NewWriter(w)
	for _, row := range rows {
		for i, v := range row {
			if i > 0 {
				if _, err := bw.WriteByte('\t'); err != nil {
					return ErrIO(err)
				}
			}
			if _, err := fmt.Fprintf(bw, "%.10g", v); err != nil {
				return ErrIO(err)
			}
		}
		if _, err := bw.WriteByte('\n'); err != nil {
			return ErrIO(err)
		}
	}
	return ErrIO(bw.Flush())
}
