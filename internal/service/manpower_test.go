package service

import (
	"testing"

	"github.com/gudangops/whmonitor/internal/domain"
	"github.com/gudangops/whmonitor/internal/report"
)

func TestBuildManpowerSummary(t *testing.T) {
	employees := []domain.Employee{
		{Nik: "E1", Status: "Reguler", Jobdesc: "Receive"},
		{Nik: "E2", Status: "Reguler", Jobdesc: "Cycle Count"},
		{Nik: "E3", Status: "Tambahan", Jobdesc: "Receive"},
		{Nik: "E4", Status: "Honorer", Jobdesc: "Receive"},
	}
	attendances := []domain.Attendance{
		{Nik: "E1", Jobdesc: "Receive", Date: "2026-07-01"},
		{Nik: "E1", Jobdesc: "Receive", Date: "2026-07-02"},
		// E2 counted, then loaned to putaway for a day; the attendance
		// jobdesc decides the division per row.
		{Nik: "E2", Jobdesc: "Cycle Count", Date: "2026-07-01"},
		{Nik: "E2", Jobdesc: "Putaway", Date: "2026-07-02"},
		{Nik: "E3", Jobdesc: "Bongkaran", Date: "2026-07-01"},
		// Master status Honorer overrides the row's Reguler claim.
		{Nik: "E4", Status: "Reguler", Jobdesc: "Receive", Date: "2026-07-01"},
		{Nik: "E1", Jobdesc: "Receive", Date: "2026-08-03"},
		{Nik: "E3", Jobdesc: "Bongkaran", Date: "2026-08-03"},
		// No master record; the attendance row's own status decides.
		{Nik: "E9", Status: "Reguler", Jobdesc: "Return", Date: "2026-08-03"},
		{Nik: "E9", Status: "Reguler", Jobdesc: "Return", Date: "garbage"},
	}

	got := BuildManpowerSummary(attendances, employees)

	// Every attendance row is a man-day: E1 twice plus E2's loan day.
	if v := pivotCell(got.ByMonth, "2026-07", "Inbound"); v != 3 {
		t.Errorf("2026-07 Inbound = %d, want 3", v)
	}
	if v := pivotCell(got.ByMonth, "2026-07", "Inventory"); v != 1 {
		t.Errorf("2026-07 Inventory = %d, want 1", v)
	}
	if v := pivotCell(got.ByMonth, "2026-07", report.DivisionTambahan); v != 1 {
		t.Errorf("2026-07 catch-all = %d, want 1", v)
	}
	if v := pivotCell(got.ByMonth, "2026-08", "Return"); v != 1 {
		t.Errorf("2026-08 Return = %d, want 1", v)
	}

	// E4's master status is not Reguler, so the row stays out.
	julyRow := got.ByMonth.Rows[0]
	if julyRow.Label != "2026-07" || julyRow.Total != 5 {
		t.Errorf("july row = %+v, want total 5", julyRow)
	}
	summary := got.ByMonth.Rows[len(got.ByMonth.Rows)-1]
	if summary.Label != "Actual" {
		t.Errorf("summary row label = %q, want Actual", summary.Label)
	}

	if got.MonthDiff == nil {
		t.Fatal("expected month diff with two observed months")
	}
	if got.MonthDiff.PrevPeriod != "2026-07" || got.MonthDiff.CurrPeriod != "2026-08" {
		t.Errorf("diff periods = %q -> %q", got.MonthDiff.PrevPeriod, got.MonthDiff.CurrPeriod)
	}
	for _, row := range got.MonthDiff.Rows {
		if row.Label == "Inventory" {
			if row.Prev["Headcount"] != 1 || row.Curr["Headcount"] != 0 || row.Diff["Headcount"] != -1 {
				t.Errorf("Inventory diff row = %+v", row)
			}
		}
	}
}

func TestBuildManpowerSummarySingleMonth(t *testing.T) {
	got := BuildManpowerSummary([]domain.Attendance{
		{Nik: "E1", Status: "Reguler", Jobdesc: "Receive", Date: "2026-08-01"},
	}, nil)
	if got.MonthDiff != nil {
		t.Error("single observed month must omit the diff table")
	}
}
