package roster

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestValueString(t *testing.T) {
	assert.Equal(t, "", Value{}.String())
	assert.Equal(t, "06:00", Value{Kind: KindText, Text: "  06:00  "}.String())
	assert.Equal(t, "5", Value{Kind: KindNumber, Text: "5", Serial: 5}.String())
}

func TestValueDate(t *testing.T) {
	d, ok := Value{Kind: KindNumber, Text: "45599", Serial: 45599}.Date()
	require.True(t, ok)
	assert.Equal(t, "2024-11-03", d.Format("2006-01-02"))

	_, ok = Value{Kind: KindText, Text: "45599"}.Date()
	assert.False(t, ok)

	_, ok = Value{}.Date()
	assert.False(t, ok)
}

func TestWorkbookCellKinds(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", " padded text "))
	require.NoError(t, f.SetCellValue("Sheet1", "B1", 45599))
	require.NoError(t, f.SetCellValue("Sheet1", "C1", true))

	path := filepath.Join(t.TempDir(), "cells.xlsx")
	require.NoError(t, f.SaveAs(path))

	w, err := Open(path)
	require.NoError(t, err)
	defer w.Close()

	assert.Equal(t, "padded text", w.Cell("Sheet1", 1, 1).String())

	num := w.Cell("Sheet1", 1, 2)
	assert.Equal(t, "45599", num.String())
	d, ok := num.Date()
	require.True(t, ok)
	assert.Equal(t, "2024-11-03", d.Format("2006-01-02"))

	// Absent cells degrade to the empty value.
	missing := w.Cell("Sheet1", 9, 9)
	assert.True(t, missing.IsEmpty())
	_, ok = missing.Date()
	assert.False(t, ok)
}

func TestWorkbookFindSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", "Roster"))
	_, err := f.NewSheet("LINK 2 Rota")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "sheets.xlsx")
	require.NoError(t, f.SaveAs(path))

	w, err := Open(path)
	require.NoError(t, err)
	defer w.Close()

	name, ok := w.FindSheet("link 2")
	require.True(t, ok)
	assert.Equal(t, "LINK 2 Rota", name)

	_, ok = w.FindSheet("link 9")
	assert.False(t, ok)

	assert.True(t, w.HasSheet("Roster"))
	assert.False(t, w.HasSheet("Nope"))
}
