// Package dataset loads tabular chart data from CSV and XLSX files.
//
// The first row names the columns; every later row is a [Record] of
// float64 values. Cells that parse as numbers keep their value, RFC 3339
// timestamps and dates become unix seconds, and anything else (including
// empty cells) becomes NaN so that it shows up as a gap in a line.
package dataset

import (
	"context"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/stackchart/pkg/errors"
	"github.com/matzehuels/stackchart/pkg/observability"
)

// Record is one data row, indexed like Table.Columns.
type Record []float64

// Table is a loaded data set.
type Table struct {
	Source  string
	Columns []string
	Records []Record
}

// Column returns the index of the named column. Names match ignoring case
// and surrounding space.
func (t *Table) Column(name string) (int, error) {
	want := strings.TrimSpace(name)
	for i, c := range t.Columns {
		if strings.EqualFold(strings.TrimSpace(c), want) {
			return i, nil
		}
	}
	return -1, errors.New(errors.ErrCodeColumnNotFound, "column %q not found in %s (have %s)", name, t.Source, strings.Join(t.Columns, ", "))
}

// Accessor returns a function reading the named column from a record.
func (t *Table) Accessor(name string) (func(Record) float64, error) {
	i, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	return func(r Record) float64 {
		if i >= len(r) {
			return math.NaN()
		}
		return r[i]
	}, nil
}

// Options selects what to read.
type Options struct {
	// Sheet names the XLSX worksheet. Empty means the first sheet.
	Sheet string
}

// Load reads path, choosing the format from its extension.
func Load(ctx context.Context, path string, opts Options) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return LoadCSV(ctx, path)
	case ".xlsx", ".xlsm":
		return LoadXLSX(ctx, path, opts.Sheet)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported data file %q (want .csv or .xlsx)", path)
}

// fromRows builds a table from string cells; rows[0] is the header.
func fromRows(source string, rows [][]string) (*Table, error) {
	if len(rows) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidData, "%s: no header row", source)
	}
	t := &Table{Source: source}
	for _, c := range rows[0] {
		t.Columns = append(t.Columns, strings.TrimSpace(c))
	}
	for _, row := range rows[1:] {
		if blank(row) {
			continue
		}
		rec := make(Record, len(t.Columns))
		for i := range rec {
			rec[i] = math.NaN()
			if i < len(row) {
				rec[i] = ParseValue(row[i])
			}
		}
		t.Records = append(t.Records, rec)
	}
	return t, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

var timeLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"}

// ParseValue converts one cell. Finite numbers parse as floats, timestamps
// as unix seconds, everything else (infinities included) as NaN.
func ParseValue(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN()
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsInf(v, 0) {
			return math.NaN()
		}
		return v
	}
	for _, l := range timeLayouts {
		if ts, err := time.Parse(l, s); err == nil {
			return float64(ts.UnixNano()) / 1e9
		}
	}
	return math.NaN()
}

// observeLoad reports a load to the pipeline hooks and returns the
// function that completes the report.
func observeLoad(ctx context.Context, source string) func(*Table, error) {
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, source)
	start := time.Now()
	return func(t *Table, err error) {
		rows := 0
		if t != nil {
			rows = len(t.Records)
		}
		hooks.OnLoadComplete(ctx, source, rows, time.Since(start), err)
	}
}
