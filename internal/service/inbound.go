package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/gudangops/whmonitor/internal/cache"
	"github.com/gudangops/whmonitor/internal/domain"
	"github.com/gudangops/whmonitor/internal/report"
	"github.com/gudangops/whmonitor/internal/repository"
)

// Pivot columns of the inbound brand breakdown.
var inboundColumns = []string{"PO Qty", "Receive", "Putaway"}

// Item type recorded on arrivals and VAS tasks when the field is blank.
const defaultItemType = "Barang Jual"

// Columns of the VAS brand split.
var vasSplitColumns = []string{defaultItemType, "Gimmick"}

type InboundService struct {
	repo  repository.InboundRepository
	cache cache.ReportCache
}

func NewInboundService(repo repository.InboundRepository, c cache.ReportCache) *InboundService {
	return &InboundService{repo: repo, cache: c}
}

func (s *InboundService) Summary(ctx context.Context, from, to string) (*domain.InboundSummary, error) {
	filter := cache.Filter{From: from, To: to}
	var out domain.InboundSummary
	if hit, err := s.cache.Get(ctx, "inbound", filter, &out); err != nil {
		log.Warn().Err(err).Msg("inbound cache read failed")
	} else if hit {
		return &out, nil
	}

	arrivals, err := s.repo.ListArrivals(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load arrivals: %w", err)
	}
	transactions, err := s.repo.ListTransactions(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	vas, err := s.repo.ListVas(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load vas tasks: %w", err)
	}
	unloadings, err := s.repo.ListUnloadings(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load unloadings: %w", err)
	}

	out = BuildInboundSummary(arrivals, transactions, vas, unloadings)
	if err := s.cache.Set(ctx, "inbound", filter, &out); err != nil {
		log.Warn().Err(err).Msg("inbound cache write failed")
	}

	return &out, nil
}

func normalizeOp(op string) string {
	op = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(op), " ", ""))
	if op == "receiving" {
		return "receive"
	}
	return op
}

// Receipt numbers arrive with inconsistent casing between the arrival and
// transaction feeds; join on a folded key.
func receiptKey(no string) string {
	return strings.ToLower(strings.TrimSpace(no))
}

func itemTypeOrDefault(itemType string) string {
	itemType = strings.TrimSpace(itemType)
	if itemType == "" {
		return defaultItemType
	}
	return itemType
}

// BuildInboundSummary aggregates the inbound tab from arrivals, warehouse
// transactions, VAS tasks and unloading records.
func BuildInboundSummary(arrivals []domain.Arrival, transactions []domain.Transaction, vas []domain.Vas, unloadings []domain.Unloading) domain.InboundSummary {
	totalPoQty := 0
	for _, a := range arrivals {
		totalPoQty += a.PoQty
	}

	// One receipt can span multiple arrival lines; fold them first.
	type receiptAgg struct {
		receiptNo  string
		poNo       string
		brand      string
		date       string
		poQty      int
		arrivalMin int
		hasArrival bool
	}
	receipts := make(map[string]*receiptAgg)
	var receiptOrder []string
	for _, a := range arrivals {
		key := receiptKey(a.ReceiptNo)
		if key == "" {
			continue
		}
		agg, ok := receipts[key]
		if !ok {
			agg = &receiptAgg{receiptNo: strings.TrimSpace(a.ReceiptNo), poNo: a.PoNo, brand: a.Brand, date: a.Date}
			receipts[key] = agg
			receiptOrder = append(receiptOrder, key)
		}
		agg.poQty += a.PoQty
		if min, ok := report.ParseClock(a.ArrivalTime); ok {
			if !agg.hasArrival || min < agg.arrivalMin {
				agg.arrivalMin = min
				agg.hasArrival = true
			}
		}
	}

	receiveQty := 0
	putawayQty := 0
	receiveByReceipt := make(map[string]int)
	putawayByReceipt := make(map[string]int)
	receiveMin := make(map[string]int)
	putawayMax := make(map[string]int)
	for _, t := range transactions {
		key := receiptKey(t.ReceiptNo)
		switch normalizeOp(t.OperateType) {
		case "receive":
			receiveQty += t.Qty
			if key != "" {
				receiveByReceipt[key] += t.Qty
				if min, ok := report.ParseClock(t.TimeTransaction); ok {
					if cur, seen := receiveMin[key]; !seen || min < cur {
						receiveMin[key] = min
					}
				}
			}
		case "putaway":
			putawayQty += t.Qty
			if key != "" {
				putawayByReceipt[key] += t.Qty
				if min, ok := report.ParseClock(t.TimeTransaction); ok {
					if cur, seen := putawayMax[key]; !seen || min > cur {
						putawayMax[key] = min
					}
				}
			}
		}
	}

	// Dock-to-stock: per receipt, max putaway time minus min arrival time,
	// averaged over receipts where both sides parsed.
	durSum, durCount := 0, 0
	for key, agg := range receipts {
		end, ok := putawayMax[key]
		if !ok || !agg.hasArrival || end < agg.arrivalMin {
			continue
		}
		durSum += end - agg.arrivalMin
		durCount++
	}
	avgDockToStock := report.FormatDuration(0)
	if durCount > 0 {
		avgDockToStock = report.FormatDuration(durSum / durCount)
	}

	// Receive-to-stock: same averaging, but from the first receive scan
	// instead of the dock arrival.
	recvSum, recvCount := 0, 0
	for key, start := range receiveMin {
		end, ok := putawayMax[key]
		if !ok || end < start {
			continue
		}
		recvSum += end - start
		recvCount++
	}
	avgReceiveToStock := report.FormatDuration(0)
	if recvCount > 0 {
		avgReceiveToStock = report.FormatDuration(recvSum / recvCount)
	}

	pending := make([]domain.PendingReceipt, 0)
	for _, key := range receiptOrder {
		agg := receipts[key]
		rq, pq := receiveByReceipt[key], putawayByReceipt[key]
		status := domain.ReceiptStatus(agg.poQty, rq, pq)
		if status == domain.ReceiptStatusCompleted {
			continue
		}
		pending = append(pending, domain.PendingReceipt{
			ReceiptNo:  agg.receiptNo,
			PoNo:       agg.poNo,
			Brand:      agg.brand,
			Date:       agg.date,
			PoQty:      agg.poQty,
			ReceiveQty: rq,
			PutawayQty: pq,
			Status:     status,
		})
	}
	sort.Slice(pending, func(i, j int) bool {
		if pending[i].Date != pending[j].Date {
			return pending[i].Date < pending[j].Date
		}
		return pending[i].ReceiptNo < pending[j].ReceiptNo
	})

	byBrand := make(report.Table)
	for _, a := range arrivals {
		if a.Brand == "" {
			continue
		}
		byBrand.Add(a.Brand, "PO Qty", a.PoQty)
	}
	brandByReceipt := make(map[string]string, len(receipts))
	for key, agg := range receipts {
		brandByReceipt[key] = agg.brand
	}
	for _, t := range transactions {
		brand := brandByReceipt[receiptKey(t.ReceiptNo)]
		if brand == "" {
			continue
		}
		switch normalizeOp(t.OperateType) {
		case "receive":
			byBrand.Add(brand, "Receive", t.Qty)
		case "putaway":
			byBrand.Add(brand, "Putaway", t.Qty)
		}
	}

	byItemType := make(report.Table)
	for _, a := range arrivals {
		if a.Brand == "" {
			continue
		}
		byItemType.Add(a.Brand, itemTypeOrDefault(a.ItemType), a.PoQty)
	}

	vasByType := make(report.Table)
	vasByBrand := make(report.Table)
	for _, v := range vas {
		if v.Brand == "" {
			continue
		}
		if v.VasType != "" {
			vasByType.Add(v.VasType, v.Brand, v.Qty)
		}
		split := defaultItemType
		if strings.EqualFold(strings.TrimSpace(v.ItemType), "Gimmick") {
			split = "Gimmick"
		}
		vasByBrand.Add(v.Brand, split, v.Qty)
	}

	details := make([]domain.UnloadingDetail, 0, len(unloadings))
	for _, u := range unloadings {
		details = append(details, domain.UnloadingDetail{
			Date:          u.Date,
			Brand:         u.Brand,
			TotalVehicles: u.TotalVehicles,
		})
	}

	pendingPutaway := receiveQty - putawayQty
	if pendingPutaway < 0 {
		pendingPutaway = 0
	}

	return domain.InboundSummary{
		TotalArrivals: report.CountDistinct(arrivals, func(a domain.Arrival) string {
			return a.Brand + "|" + a.Date + "|" + a.ArrivalTime
		}),
		TotalPOs:          report.CountDistinct(arrivals, func(a domain.Arrival) string { return a.PoNo }),
		TotalBrands:       report.CountDistinct(arrivals, func(a domain.Arrival) string { return a.Brand }),
		TotalPoQty:        totalPoQty,
		ReceiveQty:        receiveQty,
		PutawayQty:        putawayQty,
		PendingPutawayQty: pendingPutaway,
		CompletedPct:      ratioPct(putawayQty, totalPoQty),
		AvgDockToStock:    avgDockToStock,
		AvgReceiveToStock: avgReceiveToStock,
		ByBrand:           report.BuildPivot(byBrand, inboundColumns, nil),
		ByItemType:        report.BuildPivot(byItemType, byItemType.Columns(func(a, b string) bool { return a < b }), nil),
		VasByType:         report.BuildPivot(vasByType, vasByType.Columns(func(a, b string) bool { return a < b }), nil),
		VasByBrand:        report.BuildPivot(vasByBrand, vasSplitColumns, nil),
		PendingReceipts:   pending,
		Unloadings:        details,
	}
}
