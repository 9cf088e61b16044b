package report

import (
	"reflect"
	"testing"

	"github.com/gudangops/whmonitor/internal/domain"
)

type batch struct {
	brand  string
	expiry string
	qty    int
}

var batches = []batch{
	{"Acme", "NED 1 Month", 10},
	{"Acme", "Expired", 4},
	{"Bolt", "NED 1 Month", 6},
	{"Bolt", "1yr++", 20},
	{"Acme", "NED 1 Month", 5},
	{"Cask", NoDate, 99},
	{"", "Expired", 3},
}

func accumulateBatches(records []batch) Table {
	return Accumulate(records,
		func(b batch) string { return b.brand },
		func(b batch) string { return b.expiry },
		func(b batch) int { return b.qty })
}

func TestBuildPivotTotals(t *testing.T) {
	p := BuildPivot(accumulateBatches(batches), EDCategories, nil)

	if len(p.Rows) != 3 {
		t.Fatalf("got %d rows, want 2 data rows + total", len(p.Rows))
	}
	total := p.Rows[len(p.Rows)-1]
	if total.Label != TotalLabel {
		t.Fatalf("last row is %q, want %q", total.Label, TotalLabel)
	}
	for _, c := range p.Columns {
		sum := 0
		for _, row := range p.Rows[:len(p.Rows)-1] {
			sum += row.Cells[c]
		}
		if total.Cells[c] != sum {
			t.Errorf("total[%s] = %d, want %d", c, total.Cells[c], sum)
		}
	}
	if total.Total != 45 {
		t.Errorf("grand total = %d, want 45", total.Total)
	}
}

func TestBuildPivotRowOrderAndCells(t *testing.T) {
	p := BuildPivot(accumulateBatches(batches), EDCategories, nil)

	if p.Rows[0].Label != "Acme" || p.Rows[1].Label != "Bolt" {
		t.Fatalf("rows = %q, %q; want alphabetical Acme, Bolt", p.Rows[0].Label, p.Rows[1].Label)
	}
	acme := p.Rows[0]
	if acme.Cells["NED 1 Month"] != 15 || acme.Cells["Expired"] != 4 {
		t.Errorf("Acme cells = %v", acme.Cells)
	}
	// Absent categories are explicit zeroes, not missing keys.
	if v, ok := acme.Cells["1yr++"]; !ok || v != 0 {
		t.Errorf("Acme[1yr++] = (%d, %v), want explicit 0", v, ok)
	}
}

func TestAccumulateSkipsSentinelAndEmpty(t *testing.T) {
	tab := accumulateBatches(batches)
	if _, ok := tab["Cask"]; ok {
		t.Error("rows classified to the sentinel must be excluded")
	}
	if _, ok := tab[""]; ok {
		t.Error("rows with an empty group label must be excluded")
	}
}

func TestBuildPivotDeterministic(t *testing.T) {
	a := BuildPivot(accumulateBatches(batches), EDCategories, nil)
	b := BuildPivot(accumulateBatches(batches), EDCategories, nil)
	if !reflect.DeepEqual(a, b) {
		t.Error("rebuilding from unchanged records must yield identical output")
	}
}

func TestTableObservedColumns(t *testing.T) {
	tab := make(Table)
	tab.Add("Acme", "Q2 2025", 1)
	tab.Add("Bolt", "Under 2025", 2)
	tab.Add("Acme", "Q1 2026", 3)

	got := tab.Columns(AgingLess)
	want := []string{"Under 2025", "Q2 2025", "Q1 2026"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Columns = %v, want %v", got, want)
	}
}

func TestBuildDelta(t *testing.T) {
	w1 := make(Table)
	w1.Add("Acme", "Expired", 5)
	w1.Add("Bolt", "Expired", 2)
	w2 := make(Table)
	w2.Add("Acme", "Expired", 3)
	w2.Add("Cask", "Expired", 7)
	w0 := make(Table)
	w0.Add("Acme", "Expired", 100)

	byPeriod := map[string]Table{"W1 Aug": w1, "W2 Aug": w2, "W4 Jul": w0}
	d := BuildDelta(byPeriod, WeekLess, []string{"Expired"})
	if d == nil {
		t.Fatal("expected delta table")
	}
	if d.PrevPeriod != "W1 Aug" || d.CurrPeriod != "W2 Aug" {
		t.Fatalf("periods = %q -> %q, want W1 Aug -> W2 Aug", d.PrevPeriod, d.CurrPeriod)
	}

	rows := map[string]domain.DeltaRow{}
	for _, r := range d.Rows {
		rows[r.Label] = r
	}
	if r := rows["Acme"]; r.Prev["Expired"] != 5 || r.Curr["Expired"] != 3 || r.Diff["Expired"] != -2 {
		t.Errorf("Acme = %+v", r)
	}
	// Bolt only in the earlier week, Cask only in the later one.
	if r := rows["Bolt"]; r.Curr["Expired"] != 0 || r.Diff["Expired"] != -2 {
		t.Errorf("Bolt = %+v", r)
	}
	if r := rows["Cask"]; r.Prev["Expired"] != 0 || r.Diff["Expired"] != 7 {
		t.Errorf("Cask = %+v", r)
	}
	if d.Total.Prev["Expired"] != 7 || d.Total.Curr["Expired"] != 10 || d.Total.Diff["Expired"] != 3 {
		t.Errorf("total = %+v", d.Total)
	}
}

func TestBuildDeltaNeedsTwoPeriods(t *testing.T) {
	w := make(Table)
	w.Add("Acme", "Expired", 5)
	if d := BuildDelta(map[string]Table{"W1 Aug": w}, WeekLess, []string{"Expired"}); d != nil {
		t.Error("single period must yield no delta table")
	}
	if d := BuildDelta(map[string]Table{}, WeekLess, nil); d != nil {
		t.Error("no periods must yield no delta table")
	}
}
