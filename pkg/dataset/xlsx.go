package dataset

import (
	"context"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/matzehuels/stackchart/pkg/errors"
)

// LoadXLSX reads one worksheet of an Excel workbook. An empty sheet name
// reads the first sheet.
func LoadXLSX(ctx context.Context, path, sheet string) (t *Table, err error) {
	done := observeLoad(ctx, path)
	defer func() { done(t, err) }()

	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidData, err, "open workbook %s", path)
	}
	defer f.Close()

	return ReadSheet(ctx, path, f, sheet)
}

// ReadSheet reads one worksheet of an open workbook.
func ReadSheet(ctx context.Context, source string, f *excelize.File, sheet string) (*Table, error) {
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New(errors.ErrCodeInvalidData, "%s: workbook has no sheets", source)
		}
		sheet = sheets[0]
	}
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, errors.New(errors.ErrCodeNotFound, "%s: sheet %q not found", source, sheet)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidData, err, "read sheet %q of %s", sheet, source)
	}
	return fromRows(source+"#"+sheet, rows)
}
