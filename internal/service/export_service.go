package service

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Table is a header row plus data rows, the common shape of every export.
type Table struct {
	Headers []string
	Rows    [][]string
}

type ExportService interface {
	CSV(table Table) ([]byte, error)
	XLSX(table Table) ([]byte, error)
}

type exportService struct {
	sheetName string
}

func NewExportService(sheetName string) ExportService {
	if sheetName == "" {
		sheetName = "Data"
	}
	return &exportService{sheetName: sheetName}
}

// CSV renders table with RFC 4180 quoting.
func (s *exportService) CSV(table Table) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(table.Headers); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	if err := w.WriteAll(table.Rows); err != nil {
		return nil, fmt.Errorf("write csv rows: %w", err)
	}

	return buf.Bytes(), nil
}

// XLSX renders table on a single sheet with a bold header row.
func (s *exportService) XLSX(table Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(s.sheetName)
	if err != nil {
		return nil, fmt.Errorf("error creating sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if s.sheetName != "Sheet1" {
		_ = f.DeleteSheet("Sheet1")
	}

	header := make([]interface{}, len(table.Headers))
	for i, h := range table.Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(s.sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("error writing header: %w", err)
	}

	for i, row := range table.Rows {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(s.sheetName, cell, &cells); err != nil {
			return nil, fmt.Errorf("error writing row %d: %w", i+2, err)
		}
	}

	if len(table.Headers) > 0 {
		style, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
			Font: &excelize.Font{Bold: true},
		})
		if err != nil {
			return nil, fmt.Errorf("error creating header style: %w", err)
		}
		last, _ := excelize.CoordinatesToCellName(len(table.Headers), 1)
		_ = f.SetCellStyle(s.sheetName, "A1", last, style)
		lastCol, _, _ := excelize.SplitCellName(last)
		_ = f.SetColWidth(s.sheetName, "A", lastCol, 20)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("error saving workbook: %w", err)
	}
	return buf.Bytes(), nil
}
