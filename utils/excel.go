package utils

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"calllog-backend/models"

	"github.com/xuri/excelize/v2"
)

// Workbook layout of the master import file. The "Master" sheet carries the
// contact table with its header on row 2; "Sheet1" carries the dropdown value
// columns with headers on row 3. Both offsets come from the legacy workbook
// format and are fixed.
const (
	masterSheet       = "Master"
	masterHeaderRows  = 2
	dropdownSheet     = "Sheet1"
	dropdownSkipRows  = 3
	exportSheet       = "CallLogEntries"
	ExportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ImportResult is what a parsed master workbook yields: the deduplicated
// records, the mobile numbers that were skipped as duplicates, and the
// dropdown lists when Sheet1 was readable.
type ImportResult struct {
	Records    []models.Master
	Duplicates []string

	Dropdowns       *models.MiscData
	DropdownWarning string
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// ParseMasterImport reads a master workbook. Rows without a mobile number and
// stray repeated header rows are skipped; duplicate mobile numbers keep the
// first occurrence and are reported back as import warnings. A missing or
// malformed dropdown sheet degrades to a warning, never an error.
func ParseMasterImport(r io.Reader) (*ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(masterSheet)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", masterSheet, err)
	}

	res := &ImportResult{}
	seen := make(map[string]bool)
	for i, row := range rows {
		if i < masterHeaderRows {
			continue
		}
		mobile := cell(row, 1)
		if mobile == "" || mobile == "Mobile No" {
			continue
		}
		if seen[mobile] {
			res.Duplicates = append(res.Duplicates, mobile)
			continue
		}
		seen[mobile] = true
		res.Records = append(res.Records, models.Master{
			MobileNo:    mobile,
			Project:     cell(row, 2),
			TownType:    cell(row, 3),
			Requester:   cell(row, 4),
			RDCode:      cell(row, 5),
			RDName:      cell(row, 6),
			Town:        cell(row, 7),
			State:       cell(row, 8),
			Designation: cell(row, 9),
			Name:        cell(row, 10),
			GSTNo:       cell(row, 11),
			EmailID:     cell(row, 12),
		})
	}

	if dropdowns, err := parseDropdownSheet(f); err != nil {
		res.DropdownWarning = fmt.Sprintf("dropdown import skipped: %v", err)
	} else {
		res.Dropdowns = dropdowns
	}
	return res, nil
}

// dropdownColumns maps each list to its fixed column index in Sheet1, with
// the header label that sometimes repeats inside the data and must be
// filtered out (REQUSETER is misspelled in the source workbook).
var dropdownColumns = []struct {
	col    int
	label  string
	assign func(*models.MiscData, []string)
}{
	{0, "PROJECT", func(m *models.MiscData, v []string) { m.Projects = v }},
	{1, "TOWN TYPE", func(m *models.MiscData, v []string) { m.TownTypes = v }},
	{2, "REQUSETER", func(m *models.MiscData, v []string) { m.Requesters = v }},
	{7, "DESIGNATION", func(m *models.MiscData, v []string) { m.Designations = v }},
	{9, "MODULE", func(m *models.MiscData, v []string) { m.Modules = v }},
	{10, "ISSUE", func(m *models.MiscData, v []string) { m.Issues = v }},
	{11, "SOLUTION", func(m *models.MiscData, v []string) { m.Solutions = v }},
	{12, "SOLVED ON", func(m *models.MiscData, v []string) { m.SolvedOn = v }},
	{13, "CALL ON", func(m *models.MiscData, v []string) { m.CallOn = v }},
	{14, "TYPE", func(m *models.MiscData, v []string) { m.Types = v }},
}

func parseDropdownSheet(f *excelize.File) (*models.MiscData, error) {
	rows, err := f.GetRows(dropdownSheet)
	if err != nil {
		return nil, err
	}

	data := &models.MiscData{}
	for _, dc := range dropdownColumns {
		seen := make(map[string]bool)
		var values []string
		for i, row := range rows {
			if i < dropdownSkipRows {
				continue
			}
			v := cell(row, dc.col)
			if v == "" || v == dc.label || seen[v] {
				continue
			}
			seen[v] = true
			values = append(values, v)
		}
		sort.Strings(values)
		dc.assign(data, values)
	}
	data.EnsureLists()
	return data, nil
}

var exportHeader = []interface{}{
	"Date", "Mobile No", "Project", "Town", "Requester", "RD Code", "RD Name",
	"State", "Designation", "Name", "Module", "Issue", "Solution",
	"Solved On", "Call On", "Type",
}

// BuildCallLogWorkbook renders call log entries into an xlsx workbook with a
// single CallLogEntries sheet, ready to stream as a download or attach to a
// report mail.
func BuildCallLogWorkbook(entries []models.CallLogEntry) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return nil, err
	}
	for i, e := range entries {
		row := []interface{}{
			e.Date.Format("2006-01-02"), e.MobileNo, e.Project, e.Town,
			e.Requester, e.RDCode, e.RDName, e.State, e.Designation, e.Name,
			e.Module, e.Issue, e.Solution, e.SolvedOn, e.CallOn, e.CallType,
		}
		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(exportSheet, cellRef, &row); err != nil {
			return nil, err
		}
	}
	return f.WriteToBuffer()
}
