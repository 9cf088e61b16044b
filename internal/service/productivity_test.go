package service

import (
	"testing"

	"github.com/gudangops/whmonitor/internal/domain"
)

func findBoard(t *testing.T, s domain.ProductivitySummary, category string) domain.Leaderboard {
	t.Helper()
	for _, b := range s.Boards {
		if b.Category == category {
			return b
		}
	}
	t.Fatalf("board %q not found", category)

	return domain.Leaderboard{}
}

func TestBuildProductivitySummary(t *testing.T) {
	arrivals := []domain.Arrival{
		{Operator: "Andi", PoQty: 40},
		{Operator: "Budi", PoQty: 30},
		// Sloppy spelling of the same operator folds into one entry.
		{Operator: " budi ", PoQty: 25},
	}
	transactions := []domain.Transaction{
		{Operator: "Andi", OperateType: "Receiving", Qty: 100},
		{Operator: "Citra", OperateType: "Putaway", Qty: 90},
		{Operator: "Citra", OperateType: "Receive", Qty: 20},
		{Operator: "Budi", OperateType: "Inspect", Qty: 55},
	}
	vas := []domain.Vas{
		{Operator: "Dewi", Qty: 30},
	}
	dcc := []domain.Dcc{
		{Operator: "Eka", Location: "A-01", SysQty: 10, PhyQty: 10},
		{Operator: "Eka", Location: "A-01", SysQty: 5, PhyQty: 4},
		{Operator: "Eka", Location: "A-02", SysQty: 8, PhyQty: 8},
	}
	damages := []domain.Damage{
		{Operator: "Fajar", Qty: 4},
	}
	qcReturns := []domain.QcReturn{
		{Operator: "Fajar", Qty: 6},
		{Operator: "Gita", Qty: 0},
	}
	projects := []domain.ProjectProductivity{
		{Name: "Hana", Qty: 12},
	}
	employees := []domain.Employee{
		{Nik: "E1", Name: "Budi", Divisi: "Inbound", Jobdesc: "Inspect"},
		{Nik: "E2", Name: "EKA", Divisi: "Inventory", Jobdesc: "Cycle Count"},
	}

	got := BuildProductivitySummary(arrivals, transactions, vas, dcc, damages, qcReturns, projects, employees)
	if len(got.Boards) != 6 {
		t.Fatalf("got %d boards, want 6", len(got.Boards))
	}

	// Inspection credit comes from arrival PO quantities, with Budi's two
	// spellings folded: 30 + 25.
	inspection := findBoard(t, got, CategoryInspection)
	if len(inspection.Podium) != 2 {
		t.Fatalf("inspection podium = %+v", inspection.Podium)
	}
	if inspection.Podium[0].Name != "Budi" || inspection.Podium[0].Score != 55 {
		t.Errorf("inspection top = %+v", inspection.Podium[0])
	}
	if inspection.Podium[0].Divisi != "Inbound" || inspection.Podium[0].Jobdesc != "Inspect" {
		t.Errorf("inspection top metadata = %+v", inspection.Podium[0])
	}
	if inspection.Podium[0].Label != "55 qty" {
		t.Errorf("inspection top label = %q", inspection.Podium[0].Label)
	}

	rp := findBoard(t, got, CategoryReceivePutaway)
	if rp.Podium[0].Name != "Citra" || rp.Podium[0].Score != 110 {
		t.Errorf("receive/putaway top = %+v", rp.Podium[0])
	}
	// Inspect transactions must not leak into the receive/putaway board.
	for _, item := range rp.Podium {
		if item.Name == "Budi" {
			t.Error("Budi has no receive/putaway score and must not appear")
		}
	}

	// System plus physical quantity: (10+10)+(5+4)+(8+8) = 45. The two
	// distinct locations decorate the label without inflating the score.
	cc := findBoard(t, got, CategoryCycleCount)
	if cc.Podium[0].Name != "Eka" || cc.Podium[0].Score != 45 {
		t.Errorf("cycle count top = %+v", cc.Podium[0])
	}
	if cc.Podium[0].Label != "45 qty • 2 loc" {
		t.Errorf("cycle count label = %q", cc.Podium[0].Label)
	}
	// The master is matched case-insensitively.
	if cc.Podium[0].Divisi != "Inventory" {
		t.Errorf("cycle count metadata = %+v", cc.Podium[0])
	}

	dq := findBoard(t, got, CategoryDamageQc)
	if dq.Podium[0].Name != "Fajar" || dq.Podium[0].Score != 10 {
		t.Errorf("damage/qc top = %+v", dq.Podium[0])
	}
	// Zero aggregate score is excluded, not shown as 0.
	for _, item := range append(dq.Podium, dq.Others...) {
		if item.Name == "Gita" {
			t.Error("zero-score operator must be excluded")
		}
	}

	project := findBoard(t, got, CategoryProject)
	if project.Podium[0].Name != "Hana" || project.Podium[0].Score != 12 {
		t.Errorf("project top = %+v", project.Podium[0])
	}
}
