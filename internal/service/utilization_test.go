package service

import (
	"testing"

	"github.com/gudangops/whmonitor/internal/domain"
)

func TestBuildUtilizationSummary(t *testing.T) {
	soh := []domain.Soh{
		{Location: "A-01", Zone: "A", Brand: "Acme", Qty: 10},
		{Location: "A-01", Zone: "A", Brand: "Bolt", Qty: 3},
		{Location: "A-02", Zone: "A", Brand: "Bolt", Qty: 8},
		{Location: "B-01", Zone: "B", Brand: "Acme", Qty: 5},
		// Empty location does not count as occupied.
		{Location: "B-02", Zone: "B", Brand: "Acme", Qty: 0},
	}
	locations := []domain.Location{
		{Location: "A-01", Zone: "A", LocationType: "Picking Area"},
		{Location: "A-02", Zone: "A", LocationType: "Storage Area"},
		{Location: "B-01", Zone: "B", LocationType: "Storage Area"},
		{Location: "B-02", Zone: "B", LocationType: "Storage Area"},
		{Location: "B-03", Zone: "B", LocationType: "Storage Area"},
	}

	got := BuildUtilizationSummary(soh, locations)

	if got.OccupiedLocations != 3 || got.TotalLocations != 5 {
		t.Errorf("occupied/total = %d/%d, want 3/5", got.OccupiedLocations, got.TotalLocations)
	}
	if got.OccupancyPct != 60 {
		t.Errorf("OccupancyPct = %v, want 60", got.OccupancyPct)
	}

	// Picking Area: zone A row plus its subtotal. Storage Area: zones A and
	// B plus its subtotal. Then the grand total.
	want := []domain.ZoneUtilization{
		{LocationType: "Picking Area", Zone: "A", TotalLocs: 1, OccupiedLocs: 1, EmptyLocs: 0, OccupancyPct: 100},
		{LocationType: "Picking Area", Zone: "Subtotal", TotalLocs: 1, OccupiedLocs: 1, EmptyLocs: 0, OccupancyPct: 100},
		{LocationType: "Storage Area", Zone: "A", TotalLocs: 1, OccupiedLocs: 1, EmptyLocs: 0, OccupancyPct: 100},
		{LocationType: "Storage Area", Zone: "B", TotalLocs: 3, OccupiedLocs: 1, EmptyLocs: 2},
		{LocationType: "Storage Area", Zone: "Subtotal", TotalLocs: 4, OccupiedLocs: 2, EmptyLocs: 2, OccupancyPct: 50},
		{LocationType: "Total", Zone: "", TotalLocs: 5, OccupiedLocs: 3, EmptyLocs: 2, OccupancyPct: 60},
	}
	if len(got.Zones) != len(want) {
		t.Fatalf("got %d zone rows, want %d: %+v", len(got.Zones), len(want), got.Zones)
	}
	for i, w := range want {
		g := got.Zones[i]
		if g.LocationType != w.LocationType || g.Zone != w.Zone ||
			g.TotalLocs != w.TotalLocs || g.OccupiedLocs != w.OccupiedLocs || g.EmptyLocs != w.EmptyLocs {
			t.Errorf("zone row %d = %+v, want %+v", i, g, w)
		}
	}

	// A-01 belongs to the picking area and is dominated by Acme (10 vs 3);
	// the storage area splits between Bolt (A-02) and Acme (B-01).
	if len(got.TopBrands) != 2 {
		t.Fatalf("TopBrands = %+v", got.TopBrands)
	}
	picking := got.TopBrands[0]
	if picking.AreaType != "Picking Area" || len(picking.Brands) != 1 || picking.Brands[0].Name != "Acme" {
		t.Errorf("picking board = %+v", picking)
	}
	storage := got.TopBrands[1]
	if storage.AreaType != "Storage Area" || len(storage.Brands) != 2 {
		t.Fatalf("storage board = %+v", storage)
	}
	if storage.Brands[0].Name != "Bolt" || storage.Brands[0].Score != 1 {
		t.Errorf("storage top = %+v", storage.Brands[0])
	}
}

func TestBuildUtilizationSummaryEmptyMaster(t *testing.T) {
	got := BuildUtilizationSummary(nil, nil)
	if got.TotalLocations != 0 || got.OccupancyPct != 0 {
		t.Errorf("empty summary = %+v", got)
	}
	if len(got.Zones) != 0 {
		t.Errorf("expected no zone rows, got %+v", got.Zones)
	}
}

func TestDominantBrandTieBreaksAlphabetically(t *testing.T) {
	if got := dominantBrand(map[string]int{"Zeta": 5, "Acme": 5}); got != "Acme" {
		t.Errorf("dominantBrand = %q, want Acme", got)
	}
	if got := dominantBrand(nil); got != "" {
		t.Errorf("dominantBrand(nil) = %q, want empty", got)
	}
}
