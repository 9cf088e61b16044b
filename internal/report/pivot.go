package report

import (
	"sort"

	"github.com/gudangops/whmonitor/internal/domain"
)

// TotalLabel names the synthetic summary row appended to every pivot.
const TotalLabel = "Total"

// Table accumulates pivot cells as row label x column label sums.
type Table map[string]map[string]int

// Add increments one cell.
func (t Table) Add(row, col string, v int) {
	cells, ok := t[row]
	if !ok {
		cells = make(map[string]int)
		t[row] = cells
	}
	cells[col] += v
}

// Accumulate folds records into a fresh table. Records whose row or column
// classifier yields the "-" sentinel or an empty label are skipped for this
// pivot but remain visible to other aggregates.
func Accumulate[T any](records []T, row, col func(T) string, val func(T) int) Table {
	t := make(Table)
	for _, rec := range records {
		r, c := row(rec), col(rec)
		if r == "" || c == "" || r == NoDate || c == NoDate {
			continue
		}
		t.Add(r, c, val(rec))
	}

	return t
}

// Columns returns the de-duplicated set of observed column labels, ordered
// by less. Pass a canonical list to BuildPivot instead when the vocabulary
// is fixed.
func (t Table) Columns(less func(a, b string) bool) []string {
	seen := make(map[string]struct{})
	var cols []string
	for _, cells := range t {
		for c := range cells {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			cols = append(cols, c)
		}
	}
	sort.Slice(cols, func(i, j int) bool { return less(cols[i], cols[j]) })

	return cols
}

// BuildPivot renders the table with the given column order, rows ordered by
// rowLess (alphabetical when nil), and a Total row appended whose cells are
// the column-wise sums over all data rows.
func BuildPivot(t Table, cols []string, rowLess func(a, b string) bool) domain.Pivot {
	return BuildPivotTotal(t, cols, rowLess, TotalLabel)
}

// BuildPivotTotal is BuildPivot with a view-specific summary row label.
func BuildPivotTotal(t Table, cols []string, rowLess func(a, b string) bool, totalLabel string) domain.Pivot {
	labels := make([]string, 0, len(t))
	for r := range t {
		labels = append(labels, r)
	}
	if rowLess == nil {
		sort.Strings(labels)
	} else {
		sort.Slice(labels, func(i, j int) bool { return rowLess(labels[i], labels[j]) })
	}

	rows := make([]domain.PivotRow, 0, len(labels)+1)
	totals := make(map[string]int, len(cols))
	grand := 0
	for _, label := range labels {
		cells := make(map[string]int, len(cols))
		sum := 0
		for _, c := range cols {
			v := t[label][c]
			cells[c] = v
			totals[c] += v
			sum += v
		}
		grand += sum
		rows = append(rows, domain.PivotRow{Label: label, Cells: cells, Total: sum})
	}
	rows = append(rows, domain.PivotRow{Label: totalLabel, Cells: totals, Total: grand})

	return domain.Pivot{Columns: cols, Rows: rows}
}

// BuildDelta compares the two most recent periods of a per-period table set
// cell by cell. Returns nil when fewer than two distinct periods exist; the
// caller renders that as an empty state.
func BuildDelta(byPeriod map[string]Table, periodLess func(a, b string) bool, cols []string) *domain.DeltaTable {
	if len(byPeriod) < 2 {
		return nil
	}

	periods := make([]string, 0, len(byPeriod))
	for p := range byPeriod {
		periods = append(periods, p)
	}
	sort.Slice(periods, func(i, j int) bool { return periodLess(periods[i], periods[j]) })
	prev, curr := periods[len(periods)-2], periods[len(periods)-1]
	prevT, currT := byPeriod[prev], byPeriod[curr]

	labelSet := make(map[string]struct{}, len(prevT)+len(currT))
	for r := range prevT {
		labelSet[r] = struct{}{}
	}
	for r := range currT {
		labelSet[r] = struct{}{}
	}
	labels := make([]string, 0, len(labelSet))
	for r := range labelSet {
		labels = append(labels, r)
	}
	sort.Strings(labels)

	rows := make([]domain.DeltaRow, 0, len(labels))
	total := domain.DeltaRow{
		Label: TotalLabel,
		Prev:  make(map[string]int, len(cols)),
		Curr:  make(map[string]int, len(cols)),
		Diff:  make(map[string]int, len(cols)),
	}
	for _, label := range labels {
		row := domain.DeltaRow{
			Label: label,
			Prev:  make(map[string]int, len(cols)),
			Curr:  make(map[string]int, len(cols)),
			Diff:  make(map[string]int, len(cols)),
		}
		for _, c := range cols {
			p, q := prevT[label][c], currT[label][c]
			row.Prev[c], row.Curr[c], row.Diff[c] = p, q, q-p
			total.Prev[c] += p
			total.Curr[c] += q
			total.Diff[c] += q - p
		}
		rows = append(rows, row)
	}

	return &domain.DeltaTable{
		PrevPeriod: prev,
		CurrPeriod: curr,
		Columns:    cols,
		Rows:       rows,
		Total:      total,
	}
}
