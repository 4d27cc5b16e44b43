package export

import (
	"bufio"
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// CSVWriter streams points as "x,y" rows under a header.
type CSVWriter struct {
	w      *csv.Writer
	header bool
	rec    []string
}

func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: csv.NewWriter(w), rec: make([]string, 2)}
}

// Write appends one row per point. It matches the emit signature of
// fern.Stream so it can be passed straight in.
func (cw *CSVWriter) Write(xs, ys []float64) error {
	if !cw.header {
		if err := cw.w.Write([]string{"x", "y"}); err != nil {
			return errors.Wrap(err, "csv header")
		}
		cw.header = true
	}
	for i := range xs {
		cw.rec[0] = strconv.FormatFloat(xs[i], 'g', -1, 64)
		cw.rec[1] = strconv.FormatFloat(ys[i], 'g', -1, 64)
		if err := cw.w.Write(cw.rec); err != nil {
			return errors.Wrap(err, "csv row")
		}
	}
	return nil
}

// Flush writes any buffered rows.
func (cw *CSVWriter) Flush() error {
	cw.w.Flush()
	return errors.Wrap(cw.w.Error(), "csv flush")
}

// ReadDraws parses recorded draws, one number per line. Blank lines and
// lines starting with '#' are skipped.
func ReadDraws(r io.Reader) ([]float64, error) {
	var draws []float64
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		d, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "draws line %d", line)
		}
		draws = append(draws, d)
	}
	return draws, errors.Wrap(sc.Err(), "read draws")
}
