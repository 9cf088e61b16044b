package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/gudangops/whmonitor/internal/cache"
	"github.com/gudangops/whmonitor/internal/config"
	"github.com/gudangops/whmonitor/internal/domain"
	"github.com/gudangops/whmonitor/internal/report"
	"github.com/gudangops/whmonitor/internal/repository"
)

// AgingService builds the stock-aging views: the internal dashboard tab and
// the public aging page shared with brand owners.
type AgingService struct {
	repo  repository.StockRepository
	cache cache.ReportCache
	cfg   config.ReportConfig
}

func NewAgingService(repo repository.StockRepository, c cache.ReportCache, cfg config.ReportConfig) *AgingService {
	return &AgingService{repo: repo, cache: c, cfg: cfg}
}

// Dashboard returns the internal aging tab: expiry and arrival-quarter
// pivots over the sellable stock snapshot, bucketed against each batch's
// own warehouse arrival date.
func (s *AgingService) Dashboard(ctx context.Context) (*domain.AgingSummary, error) {
	var out domain.AgingSummary
	if hit, err := s.cache.Get(ctx, "aging", cache.Filter{}, &out); err != nil {
		log.Warn().Err(err).Msg("aging cache read failed")
	} else if hit {
		return &out, nil
	}

	soh, err := s.repo.ListSoh(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load stock snapshot: %w", err)
	}
	locations, err := s.repo.ListLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load locations: %w", err)
	}

	out = BuildAgingSummary(soh, locations, s.cfg.AgingBaseYear)
	if err := s.cache.Set(ctx, "aging", cache.Filter{}, &out); err != nil {
		log.Warn().Err(err).Msg("aging cache write failed")
	}

	return &out, nil
}

// Public returns the brand-facing aging page: sellable stock of the
// configured owner only, bucketed against each batch's last update date and
// extended with week-over-week movement.
func (s *AgingService) Public(ctx context.Context) (*domain.AgingSummary, error) {
	var out domain.AgingSummary
	if hit, err := s.cache.Get(ctx, "aging-public", cache.Filter{}, &out); err != nil {
		log.Warn().Err(err).Msg("public aging cache read failed")
	} else if hit {
		return &out, nil
	}

	soh, err := s.repo.ListSoh(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load stock snapshot: %w", err)
	}
	locations, err := s.repo.ListLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load locations: %w", err)
	}

	out = BuildPublicAgingSummary(soh, locations, s.cfg.SellableOwner, s.cfg.AgingBaseYear, time.Now())
	if err := s.cache.Set(ctx, "aging-public", cache.Filter{}, &out); err != nil {
		log.Warn().Err(err).Msg("public aging cache write failed")
	}

	return &out, nil
}

// BuildAgingSummary aggregates the dashboard aging tab from a stock
// snapshot. Only sellable stock ages: batches parked in damage or staging
// locations stay out of every view. Batches whose arrival date cannot be
// parsed fall out of the expiry pivot (sentinel) but still land in other
// views.
func BuildAgingSummary(soh []domain.Soh, locations []domain.Location, baseYear int) domain.AgingSummary {
	stocked := filterSellable(soh, locations)

	edNote := func(r domain.Soh) string { return report.EDNote(r.ExpDate, r.WhArrivalDate) }
	byExpiry := report.Accumulate(stocked,
		func(r domain.Soh) string { return r.Brand },
		edNote,
		func(r domain.Soh) int { return r.Qty })

	byQuarter := report.Accumulate(stocked,
		func(r domain.Soh) string { return r.Brand },
		func(r domain.Soh) string { return report.AgingNote(r.WhArrivalDate, baseYear) },
		func(r domain.Soh) int { return r.Qty })

	items, qty := criticalItems(stocked, edNote)

	return domain.AgingSummary{
		ByExpiry:      report.BuildPivot(byExpiry, report.EDCategories, nil),
		ByQuarter:     report.BuildPivot(byQuarter, byQuarter.Columns(report.AgingLess), nil),
		CriticalQty:   qty,
		CriticalItems: items,
		LastUpdated:   lastUpdated(stocked),
	}
}

// BuildPublicAgingSummary aggregates the public aging page. The reference
// date falls back to now so every sellable batch lands in a bucket, and the
// two most recent update weeks feed the movement table.
func BuildPublicAgingSummary(soh []domain.Soh, locations []domain.Location, owner string, baseYear int, now time.Time) domain.AgingSummary {
	sellable := make([]domain.Soh, 0, len(soh))
	for _, r := range filterSellable(soh, locations) {
		if owner != "" && !strings.EqualFold(strings.TrimSpace(r.Owner), owner) {
			continue
		}
		sellable = append(sellable, r)
	}

	edNote := func(r domain.Soh) string { return report.EDNoteOrNow(r.ExpDate, r.UpdateDate, now) }
	byExpiry := report.Accumulate(sellable,
		func(r domain.Soh) string { return r.Brand },
		edNote,
		func(r domain.Soh) int { return r.Qty })

	byQuarter := report.Accumulate(sellable,
		func(r domain.Soh) string { return r.Brand },
		func(r domain.Soh) string { return report.AgingNote(r.WhArrivalDate, baseYear) },
		func(r domain.Soh) int { return r.Qty })

	byWeek := make(map[string]report.Table)
	for _, r := range sellable {
		t, ok := report.ParseDate(r.UpdateDate)
		if !ok {
			continue
		}
		week := report.WeekKey(t)
		tab, ok := byWeek[week]
		if !ok {
			tab = make(report.Table)
			byWeek[week] = tab
		}
		if cat := edNote(r); cat != report.NoDate && r.Brand != "" {
			tab.Add(r.Brand, cat, r.Qty)
		}
	}

	items, qty := criticalItems(sellable, edNote)

	return domain.AgingSummary{
		ByExpiry:      report.BuildPivot(byExpiry, report.EDCategories, nil),
		ByQuarter:     report.BuildPivot(byQuarter, byQuarter.Columns(report.AgingLess), nil),
		CriticalQty:   qty,
		CriticalItems: items,
		LastUpdated:   lastUpdated(sellable),
		Movement:      report.BuildDelta(byWeek, report.WeekLess, report.EDCategories),
	}
}

// filterSellable keeps stocked batches sitting in sellable locations. The
// location master decides each location's category; the snapshot's own copy
// is a fallback for locations missing from the master.
func filterSellable(soh []domain.Soh, locations []domain.Location) []domain.Soh {
	categories := make(map[string]string, len(locations))
	for _, l := range locations {
		key := foldLocation(l.Location)
		if key == "" {
			continue
		}
		if _, ok := categories[key]; !ok {
			categories[key] = l.LocationCategory
		}
	}

	out := make([]domain.Soh, 0, len(soh))
	for _, r := range soh {
		if r.Qty <= 0 {
			continue
		}
		category, ok := categories[foldLocation(r.Location)]
		if !ok {
			category = r.LocationCategory
		}
		if !strings.EqualFold(strings.TrimSpace(category), "Sellable") {
			continue
		}
		out = append(out, r)
	}

	return out
}

// criticalItems collects the batches sitting in the expired and near-expiry
// buckets, most urgent first.
func criticalItems(soh []domain.Soh, edNote func(domain.Soh) string) ([]domain.CriticalStock, int) {
	critical := make(map[string]struct{}, len(report.CriticalEDCategories))
	for _, c := range report.CriticalEDCategories {
		critical[c] = struct{}{}
	}

	items := make([]domain.CriticalStock, 0)
	total := 0
	for _, r := range soh {
		cat := edNote(r)
		if _, ok := critical[cat]; !ok {
			continue
		}
		total += r.Qty
		items = append(items, domain.CriticalStock{
			Brand:    r.Brand,
			Sku:      r.Sku,
			BatchNo:  r.BatchNo,
			ExpDate:  r.ExpDate,
			Qty:      r.Qty,
			Category: cat,
		})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Category != items[j].Category {
			return report.EDCategoryLess(items[i].Category, items[j].Category)
		}
		if items[i].Qty != items[j].Qty {
			return items[i].Qty > items[j].Qty
		}
		return items[i].Sku < items[j].Sku
	})

	return items, total
}

// lastUpdated is the most recent parseable snapshot update date.
func lastUpdated(soh []domain.Soh) string {
	var latest time.Time
	found := false
	for _, r := range soh {
		t, ok := report.ParseDate(r.UpdateDate)
		if !ok {
			continue
		}
		if !found || t.After(latest) {
			latest = t
			found = true
		}
	}
	if !found {
		return ""
	}

	return latest.Format("2006-01-02")
}
