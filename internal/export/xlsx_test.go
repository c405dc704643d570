package export_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/servidz/console/internal/domain/booking"
	"github.com/servidz/console/internal/domain/collection"
	"github.com/servidz/console/internal/domain/user"
	"github.com/servidz/console/internal/export"
)

func TestWriteXLSX(t *testing.T) {
	items := []collection.Item{
		user.Schema.Normalize(collection.Record{"id": "u2", "name": "Brian", "email": "b@example.com", "status": "Suspended"}),
		user.Schema.Normalize(collection.Record{"id": "u1", "name": "Amina", "email": "a@example.com", "phone": "+254"}),
	}
	columns, err := export.ColumnsFor(user.Entity)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, export.WriteXLSX(&buf, "Users: active/all", columns, items))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	require.Equal(t, "Users_ active_all", sheet)

	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, []string{"ID", "Name", "Email", "Phone", "Joined", "Status"}, rows[0])
	require.Equal(t, []string{"u2", "Brian", "b@example.com", "N/A", "N/A", "suspended"}, rows[1])
	require.Equal(t, "u1", rows[2][0])
	require.Equal(t, "+254", rows[2][3])
}

func TestWriteXLSX_EmptyViewHasHeaderOnly(t *testing.T) {
	columns, err := export.ColumnsFor(booking.Entity)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, export.WriteXLSX(&buf, "", columns, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Tasker", rows[0][1])
}

func TestColumnsFor_UnknownEntity(t *testing.T) {
	_, err := export.ColumnsFor("invoices")
	require.Error(t, err)

	require.Error(t, export.WriteXLSX(&bytes.Buffer{}, "x", nil, nil))
}
