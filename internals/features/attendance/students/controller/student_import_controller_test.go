package controller

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, val := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf
}

func TestParseStudentsWorkbook(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{"roll", "name", "class"}, // header, dilewati
		{"S101", "Budi", "XII-A"},
		{"S102", "Sari", "XII-B"},
		{"", "Tanpa Roll", "XII-C"}, // roll kosong, dilewati
		{"S104", "", "XII-C"},       // nama kosong, dilewati
		{"S105", "Tono"},            // class boleh kosong
	})

	students, err := parseStudentsWorkbook(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if len(students) != 3 {
		t.Fatalf("jumlah = %d, want 3 (%+v)", len(students), students)
	}
	if students[0].StudentRoll != "S101" || students[0].StudentClass != "XII-A" {
		t.Fatalf("baris pertama: %+v", students[0])
	}
	if students[2].StudentRoll != "S105" || students[2].StudentClass != "" {
		t.Fatalf("baris tanpa class: %+v", students[2])
	}
}

func TestParseStudentsWorkbookRejectsGarbage(t *testing.T) {
	if _, err := parseStudentsWorkbook(bytes.NewReader([]byte("bukan xlsx"))); err == nil {
		t.Fatalf("expected error untuk file non-xlsx")
	}
}
