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

type InventoryService struct {
	repo  repository.StockRepository
	cache cache.ReportCache
}

func NewInventoryService(repo repository.StockRepository, c cache.ReportCache) *InventoryService {
	return &InventoryService{repo: repo, cache: c}
}

func (s *InventoryService) Summary(ctx context.Context, from, to string) (*domain.InventorySummary, error) {
	filter := cache.Filter{From: from, To: to}
	var out domain.InventorySummary
	if hit, err := s.cache.Get(ctx, "inventory", filter, &out); err != nil {
		log.Warn().Err(err).Msg("inventory cache read failed")
	} else if hit {
		return &out, nil
	}

	dcc, err := s.repo.ListDcc(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load cycle counts: %w", err)
	}
	damages, err := s.repo.ListDamages(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load damages: %w", err)
	}
	qcReturns, err := s.repo.ListQcReturns(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load qc returns: %w", err)
	}
	locations, err := s.repo.ListLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load locations: %w", err)
	}

	out = BuildInventorySummary(dcc, damages, qcReturns, locations)
	if err := s.cache.Set(ctx, "inventory", filter, &out); err != nil {
		log.Warn().Err(err).Msg("inventory cache write failed")
	}

	return &out, nil
}

// effectiveVariance prefers the reconciled recount over the first-pass
// variance.
func effectiveVariance(d domain.Dcc) int {
	if d.ReconcileVariance != nil {
		return *d.ReconcileVariance
	}

	return d.Variance
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// BuildInventorySummary aggregates cycle-count accuracy, discrepancy tables,
// zone coverage, the damage breakdown and the QC-return split.
func BuildInventorySummary(dcc []domain.Dcc, damages []domain.Damage, qcReturns []domain.QcReturn, locations []domain.Location) domain.InventorySummary {
	totalSys, totalAbsVar := 0, 0
	for _, d := range dcc {
		totalSys += d.SysQty
		totalAbsVar += abs(effectiveVariance(d))
	}
	qtyAccuracy := 100.0
	if totalSys > 0 {
		qtyAccuracy = (1 - float64(totalAbsVar)/float64(totalSys)) * 100
		if qtyAccuracy < 0 {
			qtyAccuracy = 0
		}
	} else if totalAbsVar > 0 {
		qtyAccuracy = 0
	}

	// A SKU or location is accurate only when every one of its count lines
	// reconciled to zero.
	skuClean := make(map[string]bool)
	locClean := make(map[string]bool)
	for _, d := range dcc {
		ev := effectiveVariance(d)
		if sku := strings.TrimSpace(d.Sku); sku != "" {
			if _, seen := skuClean[sku]; !seen {
				skuClean[sku] = true
			}
			if ev != 0 {
				skuClean[sku] = false
			}
		}
		if loc := strings.TrimSpace(d.Location); loc != "" {
			if _, seen := locClean[loc]; !seen {
				locClean[loc] = true
			}
			if ev != 0 {
				locClean[loc] = false
			}
		}
	}
	skuAccuracy := ratioPct(countTrue(skuClean), len(skuClean))
	locAccuracy := ratioPct(countTrue(locClean), len(locClean))

	// Per-SKU net variance feeds the shortage and gain tables.
	type skuVar struct {
		brand, description string
		variance           int
	}
	bySku := make(map[string]*skuVar)
	for _, d := range dcc {
		sku := strings.TrimSpace(d.Sku)
		if sku == "" {
			continue
		}
		v, ok := bySku[sku]
		if !ok {
			v = &skuVar{brand: d.Brand, description: d.Description}
			bySku[sku] = v
		}
		v.variance += effectiveVariance(d)
	}
	var shortages, gains []domain.VarianceItem
	for sku, v := range bySku {
		item := domain.VarianceItem{Sku: sku, Brand: v.brand, Description: v.description, Variance: v.variance}
		switch {
		case v.variance < 0:
			shortages = append(shortages, item)
		case v.variance > 0:
			gains = append(gains, item)
		}
	}
	sort.Slice(shortages, func(i, j int) bool {
		if shortages[i].Variance != shortages[j].Variance {
			return shortages[i].Variance < shortages[j].Variance
		}
		return shortages[i].Sku < shortages[j].Sku
	})
	sort.Slice(gains, func(i, j int) bool {
		if gains[i].Variance != gains[j].Variance {
			return gains[i].Variance > gains[j].Variance
		}
		return gains[i].Sku < gains[j].Sku
	})

	countedByZone := report.GroupReduce(dcc,
		func(d domain.Dcc) string { return strings.TrimSpace(d.Zone) },
		func() map[string]struct{} { return make(map[string]struct{}) },
		func(set map[string]struct{}, d domain.Dcc) map[string]struct{} {
			if loc := strings.TrimSpace(d.Location); loc != "" {
				set[loc] = struct{}{}
			}
			return set
		})
	totalByZone := report.GroupReduce(locations,
		func(l domain.Location) string { return strings.TrimSpace(l.Zone) },
		func() int { return 0 },
		func(n int, l domain.Location) int { return n + 1 })
	zones := make([]string, 0, len(totalByZone))
	for z := range totalByZone {
		zones = append(zones, z)
	}
	sort.Strings(zones)
	coverage := make([]domain.ZoneCoverage, 0, len(zones))
	for _, z := range zones {
		counted := len(countedByZone[z])
		total := totalByZone[z]
		coverage = append(coverage, domain.ZoneCoverage{
			Zone:        z,
			CountedLocs: counted,
			TotalLocs:   total,
			CoveragePct: ratioPct(counted, total),
		})
	}

	type damageAgg struct {
		qty  int
		skus map[string]struct{}
	}
	byReason := report.GroupReduce(damages,
		func(d domain.Damage) string { return strings.TrimSpace(d.DamageReason) },
		func() *damageAgg { return &damageAgg{skus: make(map[string]struct{})} },
		func(a *damageAgg, d domain.Damage) *damageAgg {
			a.qty += d.Qty
			if sku := strings.TrimSpace(d.Sku); sku != "" {
				a.skus[sku] = struct{}{}
			}
			return a
		})
	reasons := make([]string, 0, len(byReason))
	for r := range byReason {
		reasons = append(reasons, r)
	}
	sort.Strings(reasons)
	breakdown := make([]domain.DamageCategory, 0, len(reasons))
	totalDamageQty := 0
	for _, r := range reasons {
		a := byReason[r]
		totalDamageQty += a.qty
		breakdown = append(breakdown, domain.DamageCategory{
			Reason:   r,
			Qty:      a.qty,
			SkuCount: len(a.skus),
		})
	}

	type qcAgg struct {
		good, damage int
	}
	qcByBrand := report.GroupReduce(qcReturns,
		func(q domain.QcReturn) string { return strings.TrimSpace(q.Brand) },
		func() *qcAgg { return &qcAgg{} },
		func(a *qcAgg, q domain.QcReturn) *qcAgg {
			if strings.Contains(strings.ToLower(q.Status), "damage") {
				a.damage += q.Qty
			} else {
				a.good += q.Qty
			}
			return a
		})
	qcBrands := make([]string, 0, len(qcByBrand))
	for b := range qcByBrand {
		qcBrands = append(qcBrands, b)
	}
	sort.Strings(qcBrands)
	qcSummary := make([]domain.QcReturnBrand, 0, len(qcBrands))
	for _, b := range qcBrands {
		a := qcByBrand[b]
		qcSummary = append(qcSummary, domain.QcReturnBrand{
			Brand:     b,
			GoodQty:   a.good,
			DamageQty: a.damage,
		})
	}

	return domain.InventorySummary{
		QtyAccuracy:      qtyAccuracy,
		SkuAccuracy:      skuAccuracy,
		LocationAccuracy: locAccuracy,
		CountedLocations: report.CountDistinct(dcc, func(d domain.Dcc) string { return d.Location }),
		CountedSkus:      report.CountDistinct(dcc, func(d domain.Dcc) string { return d.Sku }),
		Shortages:        shortages,
		Gains:            gains,
		ZoneCoverage:     coverage,
		DamageBreakdown:  breakdown,
		TotalDamageQty:   totalDamageQty,
		TotalDamageSkus:  report.CountDistinct(damages, func(d domain.Damage) string { return d.Sku }),
		QcReturns:        qcSummary,
	}
}

func countTrue(m map[string]bool) int {
	n := 0
	for _, ok := range m {
		if ok {
			n++
		}
	}

	return n
}

func ratioPct(num, den int) float64 {
	if den == 0 {
		return 0
	}

	return float64(num) / float64(den) * 100
}
