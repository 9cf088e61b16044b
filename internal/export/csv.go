package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/gudangops/whmonitor/internal/domain"
)

// utf8BOM prefixes every export so spreadsheet tools pick up the encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteLeaderboard serializes a leaderboard, podium first, as CSV.
func WriteLeaderboard(w io.Writer, b domain.Leaderboard) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Rank", "Name", "Score"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, item := range append(append([]domain.RankItem{}, b.Podium...), b.Others...) {
		row := []string{fmt.Sprintf("%d", item.Rank), item.Name, fmt.Sprintf("%d", item.Score)}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// WritePivot serializes a pivot table, total row included, as CSV.
func WritePivot(w io.Writer, label string, p domain.Pivot) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	header := append([]string{label}, p.Columns...)
	header = append(header, "Total")
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range p.Rows {
		record := make([]string, 0, len(p.Columns)+2)
		record = append(record, row.Label)
		for _, c := range p.Columns {
			record = append(record, fmt.Sprintf("%d", row.Cells[c]))
		}
		record = append(record, fmt.Sprintf("%d", row.Total))
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}
