package service

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleTable() Table {
	return Table{
		Headers: []string{"name", "notes"},
		Rows: [][]string{
			{"Dr. Rao, Sr.", `said "hello"`},
			{"Dr. Iyer", "line one\nline two"},
		},
	}
}

func TestExportCSV_QuotesEmbeddedSeparators(t *testing.T) {
	out, err := NewExportService("").CSV(sampleTable())
	require.NoError(t, err)

	assert.Contains(t, string(out), `"Dr. Rao, Sr.","said ""hello"""`)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"name", "notes"}, records[0])
	assert.Equal(t, "line one\nline two", records[2][1])
}

func TestExportCSV_HeaderOnlyWhenEmpty(t *testing.T) {
	out, err := NewExportService("").CSV(Table{Headers: []string{"id", "name"}})
	require.NoError(t, err)
	assert.Equal(t, "id,name\n", string(out))
}

func TestExportXLSX_RoundTrip(t *testing.T) {
	out, err := NewExportService("Doctors").XLSX(sampleTable())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Doctors"}, f.GetSheetList())

	rows, err := f.GetRows("Doctors")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"name", "notes"}, rows[0])
	assert.Equal(t, "Dr. Rao, Sr.", rows[1][0])
}
