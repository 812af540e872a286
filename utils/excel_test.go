package utils

import (
	"bytes"
	"testing"
	"time"

	"calllog-backend/models"

	"github.com/xuri/excelize/v2"
)

// buildImportWorkbook assembles a workbook in the legacy master layout:
// contact rows on "Master" below two header rows, dropdown columns on
// "Sheet1" below three.
func buildImportWorkbook(t *testing.T, masterRows [][]interface{}, withDropdowns bool) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Master"); err != nil {
		t.Fatal(err)
	}
	title := []interface{}{"Master Data"}
	header := []interface{}{
		"Sr No", "Mobile No", "Project", "Town Type", "Requester", "RD Code",
		"RD Name", "Town", "State", "Designation", "Name", "GST No", "Email ID",
	}
	if err := f.SetSheetRow("Master", "A1", &title); err != nil {
		t.Fatal(err)
	}
	if err := f.SetSheetRow("Master", "A2", &header); err != nil {
		t.Fatal(err)
	}
	for i, row := range masterRows {
		cell, _ := excelize.CoordinatesToCellName(1, i+3)
		if err := f.SetSheetRow("Master", cell, &row); err != nil {
			t.Fatal(err)
		}
	}

	if withDropdowns {
		if _, err := f.NewSheet("Sheet1"); err != nil {
			t.Fatal(err)
		}
		rows := [][]interface{}{
			{"Dropdowns"},
			{},
			{"PROJECT", "TOWN TYPE", "REQUSETER", "", "", "", "", "DESIGNATION", "", "MODULE", "ISSUE", "SOLUTION", "SOLVED ON", "CALL ON", "TYPE"},
			{"Retail", "Urban", "Dealer", "", "", "", "", "Manager", "", "Billing", "Login", "Patched", "Phone", "Mobile", "Complaint"},
			{"Wholesale", "Rural", "Dealer", "", "", "", "", "Clerk", "", "Reports", "Crash", "Reinstalled", "Email", "Landline", "Query"},
		}
		for i, row := range rows {
			cell, _ := excelize.CoordinatesToCellName(1, i+1)
			if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
				t.Fatal(err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}
	return buf
}

func TestParseMasterImport(t *testing.T) {
	buf := buildImportWorkbook(t, [][]interface{}{
		{1, "9876543210", "Retail", "Urban", "Dealer", "RD1", "North Traders", "Pune", "MH", "Manager", "Asha", "GST1", "asha@example.com"},
		{2, "9876543211", "Wholesale", "Rural", "Dealer", "RD2", "South Traders", "Nashik", "MH", "Clerk", "Ravi", "", ""},
		{3, "", "ignored row without mobile"},
		{"", "Mobile No", "stray repeated header"},
		{4, "9876543210", "duplicate of the first row"},
	}, true)

	res, err := ParseMasterImport(buf)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(res.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(res.Records))
	}
	first := res.Records[0]
	if first.MobileNo != "9876543210" || first.Name != "Asha" || first.EmailID != "asha@example.com" {
		t.Fatalf("unexpected first record %+v", first)
	}
	if len(res.Duplicates) != 1 || res.Duplicates[0] != "9876543210" {
		t.Fatalf("unexpected duplicates %v", res.Duplicates)
	}

	if res.Dropdowns == nil {
		t.Fatalf("expected dropdowns, warning: %s", res.DropdownWarning)
	}
	if got := res.Dropdowns.Projects; len(got) != 2 || got[0] != "Retail" || got[1] != "Wholesale" {
		t.Fatalf("unexpected projects %v", got)
	}
	// "Dealer" appears twice in the requester column but must survive once
	if got := res.Dropdowns.Requesters; len(got) != 1 || got[0] != "Dealer" {
		t.Fatalf("unexpected requesters %v", got)
	}
	if got := res.Dropdowns.Types; len(got) != 2 {
		t.Fatalf("unexpected types %v", got)
	}
}

func TestParseMasterImportMissingDropdownSheet(t *testing.T) {
	buf := buildImportWorkbook(t, [][]interface{}{
		{1, "9000000001", "Retail"},
	}, false)

	res, err := ParseMasterImport(buf)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(res.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(res.Records))
	}
	if res.Dropdowns != nil {
		t.Fatal("expected no dropdowns without Sheet1")
	}
	if res.DropdownWarning == "" {
		t.Fatal("expected a dropdown warning")
	}
}

func TestParseMasterImportNotAWorkbook(t *testing.T) {
	if _, err := ParseMasterImport(bytes.NewReader([]byte("not an xlsx"))); err == nil {
		t.Fatal("expected error for garbage input")
	}
}

func TestBuildCallLogWorkbook(t *testing.T) {
	entries := []models.CallLogEntry{
		{
			Date:     time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
			MobileNo: "9876543210",
			Name:     "Asha",
			Module:   "Billing",
			Issue:    "Login",
			CallType: "Complaint",
		},
	}
	buf, err := BuildCallLogWorkbook(entries)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("CallLogEntries")
	if err != nil {
		t.Fatalf("sheet: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header + 1 row, got %d rows", len(rows))
	}
	if rows[0][0] != "Date" || rows[0][1] != "Mobile No" {
		t.Fatalf("unexpected header %v", rows[0])
	}
	if rows[1][0] != "2026-03-14" || rows[1][1] != "9876543210" {
		t.Fatalf("unexpected data row %v", rows[1])
	}
}
