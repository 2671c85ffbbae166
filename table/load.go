package table

import (
	"bufio"
	"encoding/csv"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrFileAccess is matched by errors returned when the input cannot be opened or read.
	ErrFileAccess = stderrors.New("file access")
	// ErrParse is matched by errors returned for non-numeric tokens or ragged rows.
	ErrParse = stderrors.New("parse")
)

type kindError struct {
	kind error
	err  error
}

func (e *kindError) Error() string   { return e.kind.Error() + ": " + e.err.Error() }
func (e *kindError) Unwrap() []error { return []error{e.kind, e.err} }

func fieldCountError(line, got, want int) error {
	return fmt.Errorf("line %d: %d fields, want %d", line, got, want)
}

// Load reads the table stored at path.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(&kindError{kind: ErrFileAccess, err: err})
	}
	defer f.Close()

	t, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "table: load %s", path)
	}
	return t, nil
}

// Read parses comma-separated rows of numbers from r. Blank or whitespace-only
// lines and lines starting with '#' are skipped. Every row must have as many fields as the first.
func Read(r io.Reader) (*Table, error) {
	cr := csv.NewReader(bufio.NewReader(r))
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true
	cr.FieldsPerRecord = -1

	var (
		data []float64
		rows int
		cols int
	)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if stderrors.As(err, &perr) {
				return nil, errors.WithStack(&kindError{kind: ErrParse, err: perr})
			}
			return nil, errors.WithStack(&kindError{kind: ErrFileAccess, err: err})
		}
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}
		if rows > 0 && len(rec) != cols {
			line, _ := cr.FieldPos(0)
			return nil, errors.WithStack(&kindError{kind: ErrParse, err: fieldCountError(line, len(rec), cols)})
		}
		if rows == 0 {
			cols = len(rec)
			data = make([]float64, 0, cols*16)
		}
		for j, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				line, _ := cr.FieldPos(j)
				return nil, errors.WithStack(&kindError{
					kind: ErrParse,
					err:  fmt.Errorf("line %d, field %d: %w", line, j+1, err),
				})
			}
			data = append(data, v)
		}
		rows++
	}

	if rows == 0 || cols == 0 {
		return &Table{}, nil
	}
	return New(reshape(data, rows, cols))
}

func reshape(data []float64, rows, cols int) [][]float64 {
	out := make([][]float64, rows)
	for i := range out {
		out[i] = data[i*cols : (i+1)*cols : (i+1)*cols]
	}
	return out
}
