package domain

// Pivot is a generic two-dimensional summary table: one row per group, one
// numeric cell per column, plus a Total row appended by the builder.
type Pivot struct {
	Columns []string   `json:"columns"`
	Rows    []PivotRow `json:"rows"`
}

// PivotRow is one line of a pivot. Cells is keyed by column name; Total is
// the row sum over all columns.
type PivotRow struct {
	Label string         `json:"label"`
	Cells map[string]int `json:"cells"`
	Total int            `json:"total"`
}

// DeltaTable compares the two most recent periods of a pivot, cell by cell.
type DeltaTable struct {
	PrevPeriod string     `json:"prev_period"`
	CurrPeriod string     `json:"curr_period"`
	Columns    []string   `json:"columns"`
	Rows       []DeltaRow `json:"rows"`
	Total      DeltaRow   `json:"total"`
}

// DeltaRow carries previous, current and difference per column for one group.
type DeltaRow struct {
	Label string         `json:"label"`
	Prev  map[string]int `json:"prev"`
	Curr  map[string]int `json:"curr"`
	Diff  map[string]int `json:"diff"`
}

// RankItem is one scored entry of a leaderboard. Divisi and Jobdesc come
// from the employee master when the identity resolves to a known employee;
// Label is the pre-formatted score text shown on the board.
type RankItem struct {
	Rank    int    `json:"rank"`
	Name    string `json:"name"`
	Divisi  string `json:"divisi,omitempty"`
	Jobdesc string `json:"jobdesc,omitempty"`
	Score   int    `json:"score"`
	Label   string `json:"label,omitempty"`
}

// Leaderboard splits a ranked list into the podium (top three) and the rest.
type Leaderboard struct {
	Category string     `json:"category"`
	Podium   []RankItem `json:"podium"`
	Others   []RankItem `json:"others"`
}

// InboundSummary is the inbound tab payload.
type InboundSummary struct {
	TotalArrivals     int               `json:"total_arrivals"`
	TotalPOs          int               `json:"total_pos"`
	TotalBrands       int               `json:"total_brands"`
	TotalPoQty        int               `json:"total_po_qty"`
	ReceiveQty        int               `json:"receive_qty"`
	PutawayQty        int               `json:"putaway_qty"`
	PendingPutawayQty int               `json:"pending_putaway_qty"`
	CompletedPct      float64           `json:"completed_pct"`
	AvgDockToStock    string            `json:"avg_dock_to_stock"`
	AvgReceiveToStock string            `json:"avg_receive_to_stock"`
	ByBrand           Pivot             `json:"by_brand"`
	ByItemType        Pivot             `json:"by_item_type"`
	VasByType         Pivot             `json:"vas_by_type"`
	VasByBrand        Pivot             `json:"vas_by_brand"`
	PendingReceipts   []PendingReceipt  `json:"pending_receipts"`
	Unloadings        []UnloadingDetail `json:"unloadings"`
}

// PendingReceipt is an arrival whose putaway has not caught up with the PO.
type PendingReceipt struct {
	ReceiptNo  string `json:"receipt_no"`
	PoNo       string `json:"po_no"`
	Brand      string `json:"brand"`
	Date       string `json:"date"`
	PoQty      int    `json:"po_qty"`
	ReceiveQty int    `json:"receive_qty"`
	PutawayQty int    `json:"putaway_qty"`
	Status     string `json:"status"`
}

// UnloadingDetail is one brand's vehicle count for a day.
type UnloadingDetail struct {
	Date          string `json:"date"`
	Brand         string `json:"brand"`
	TotalVehicles int    `json:"total_vehicles"`
}

// InventorySummary is the inventory-accuracy tab payload.
type InventorySummary struct {
	QtyAccuracy      float64          `json:"qty_accuracy"`
	SkuAccuracy      float64          `json:"sku_accuracy"`
	LocationAccuracy float64          `json:"location_accuracy"`
	CountedLocations int              `json:"counted_locations"`
	CountedSkus      int              `json:"counted_skus"`
	Shortages        []VarianceItem   `json:"shortages"`
	Gains            []VarianceItem   `json:"gains"`
	ZoneCoverage     []ZoneCoverage   `json:"zone_coverage"`
	DamageBreakdown  []DamageCategory `json:"damage_breakdown"`
	TotalDamageQty   int              `json:"total_damage_qty"`
	TotalDamageSkus  int              `json:"total_damage_skus"`
	QcReturns        []QcReturnBrand  `json:"qc_returns"`
}

// QcReturnBrand splits one brand's returned quantity into good and damaged
// stock.
type QcReturnBrand struct {
	Brand     string `json:"brand"`
	GoodQty   int    `json:"good_qty"`
	DamageQty int    `json:"damage_qty"`
}

// VarianceItem is a per-SKU cycle-count discrepancy.
type VarianceItem struct {
	Sku         string `json:"sku"`
	Brand       string `json:"brand"`
	Description string `json:"description"`
	Variance    int    `json:"variance"`
}

// ZoneCoverage reports cycle-count progress for one zone.
type ZoneCoverage struct {
	Zone        string  `json:"zone"`
	CountedLocs int     `json:"counted_locs"`
	TotalLocs   int     `json:"total_locs"`
	CoveragePct float64 `json:"coverage_pct"`
}

// DamageCategory groups damage findings by reason.
type DamageCategory struct {
	Reason   string `json:"reason"`
	Qty      int    `json:"qty"`
	SkuCount int    `json:"sku_count"`
}

// UtilizationSummary is the warehouse-utilization tab payload.
type UtilizationSummary struct {
	OccupiedLocations int               `json:"occupied_locations"`
	TotalLocations    int               `json:"total_locations"`
	OccupancyPct      float64           `json:"occupancy_pct"`
	Zones             []ZoneUtilization `json:"zones"`
	TopBrands         []AreaBrands      `json:"top_brands"`
}

// ZoneUtilization is one row of the per-zone occupancy table. Subtotal rows
// carry the zone label "Subtotal"; the closing row carries the location
// type "Total".
type ZoneUtilization struct {
	LocationType string  `json:"location_type"`
	Zone         string  `json:"zone"`
	TotalLocs    int     `json:"total_locs"`
	OccupiedLocs int     `json:"occupied_locs"`
	EmptyLocs    int     `json:"empty_locs"`
	OccupancyPct float64 `json:"occupancy_pct"`
}

// AreaBrands ranks the brands dominating the most locations of one area
// type.
type AreaBrands struct {
	AreaType string     `json:"area_type"`
	Brands   []RankItem `json:"brands"`
}

// AgingSummary is the stock-aging tab payload. Movement is omitted from the
// JSON body when fewer than two weekly periods exist.
type AgingSummary struct {
	ByExpiry      Pivot           `json:"by_expiry"`
	ByQuarter     Pivot           `json:"by_quarter"`
	CriticalQty   int             `json:"critical_qty"`
	CriticalItems []CriticalStock `json:"critical_items"`
	LastUpdated   string          `json:"last_updated"`
	Movement      *DeltaTable     `json:"movement,omitempty"`
}

// CriticalStock is one batch sitting in an expired or near-expiry bucket.
type CriticalStock struct {
	Brand    string `json:"brand"`
	Sku      string `json:"sku"`
	BatchNo  string `json:"batch_no"`
	ExpDate  string `json:"exp_date"`
	Qty      int    `json:"qty"`
	Category string `json:"category"`
}

// ManpowerSummary is the manpower tab payload.
type ManpowerSummary struct {
	ByMonth   Pivot       `json:"by_month"`
	MonthDiff *DeltaTable `json:"month_diff,omitempty"`
}

// ProductivitySummary is the productivity page payload: one leaderboard per
// scoring category.
type ProductivitySummary struct {
	Boards []Leaderboard `json:"boards"`
}
