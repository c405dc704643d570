// Package export writes derived collection views as spreadsheets.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/servidz/console/internal/domain/booking"
	"github.com/servidz/console/internal/domain/collection"
	"github.com/servidz/console/internal/domain/tasker"
	"github.com/servidz/console/internal/domain/user"
)

// Pseudo-fields resolved from the item itself rather than Item.Fields.
const (
	FieldID     = "@id"
	FieldStatus = "@status"
)

// Column maps an item field to a spreadsheet column.
type Column struct {
	Header string
	Field  string
}

// ColumnsFor returns the default columns for an entity.
func ColumnsFor(entity string) ([]Column, error) {
	switch entity {
	case user.Entity:
		return []Column{
			{"ID", FieldID},
			{"Name", user.FieldName},
			{"Email", user.FieldEmail},
			{"Phone", user.FieldPhone},
			{"Joined", user.FieldJoinDate},
			{"Status", FieldStatus},
		}, nil
	case tasker.Entity:
		return []Column{
			{"ID", FieldID},
			{"Name", tasker.FieldName},
			{"Email", tasker.FieldEmail},
			{"Profession", tasker.FieldProfession},
			{"Rating", tasker.FieldRating},
			{"Completed Tasks", tasker.FieldCompletedTasks},
			{"Joined", tasker.FieldJoinDate},
			{"Status", FieldStatus},
		}, nil
	case booking.Entity:
		return []Column{
			{"ID", FieldID},
			{"Tasker", booking.FieldTaskerName},
			{"Task", booking.FieldTask},
			{"Date", booking.FieldDate},
			{"Price", booking.FieldPrice},
			{"Status", FieldStatus},
		}, nil
	default:
		return nil, fmt.Errorf("no export columns for %q", entity)
	}
}

// WriteXLSX writes items, in order, as one sheet with a bold header row.
func WriteXLSX(w io.Writer, sheet string, columns []Column, items []collection.Item) error {
	if len(columns) == 0 {
		return fmt.Errorf("export needs at least one column")
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet = sheetName(sheet)
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return fmt.Errorf("opening sheet writer: %w", err)
	}

	header := make([]any, len(columns))
	for i, col := range columns {
		header[i] = excelize.Cell{StyleID: bold, Value: col.Header}
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for r, item := range items {
		row := make([]any, len(columns))
		for i, col := range columns {
			row[i] = col.Value(item)
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("writing row %d: %w", r+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flushing sheet: %w", err)
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// Value returns the column's text for item.
func (c Column) Value(item collection.Item) string {
	switch c.Field {
	case FieldID:
		return item.ID
	case FieldStatus:
		return string(item.Status)
	default:
		return item.Field(c.Field)
	}
}

// sheetName makes s a valid worksheet name.
func sheetName(s string) string {
	s = strings.Map(func(r rune) rune {
		if strings.ContainsRune(`[]:*?/\`, r) {
			return '_'
		}
		return r
	}, strings.TrimSpace(s))
	if s == "" {
		return "Sheet1"
	}
	if r := []rune(s); len(r) > 31 {
		s = string(r[:31])
	}
	return s
}
