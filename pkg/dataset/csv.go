package dataset

import (
	"bufio"
	"context"
	"encoding/csv"
	"io"
	"os"

	"github.com/matzehuels/stackchart/pkg/errors"
)

// LoadCSV reads a comma separated file.
func LoadCSV(ctx context.Context, path string) (t *Table, err error) {
	done := observeLoad(ctx, path)
	defer func() { done(t, err) }()

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()
	return ReadCSV(ctx, path, f)
}

// ReadCSV parses CSV from r. Rows may have differing lengths; missing
// cells read as NaN.
func ReadCSV(ctx context.Context, source string, r io.Reader) (*Table, error) {
	cr := csv.NewReader(bufio.NewReader(r))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var rows [][]string
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidData, err, "parse %s", source)
		}
		rows = append(rows, row)
	}
	return fromRows(source, rows)
}
