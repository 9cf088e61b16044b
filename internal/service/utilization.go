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

const topBrandCount = 5

type UtilizationService struct {
	repo  repository.StockRepository
	cache cache.ReportCache
}

func NewUtilizationService(repo repository.StockRepository, c cache.ReportCache) *UtilizationService {
	return &UtilizationService{repo: repo, cache: c}
}

func (s *UtilizationService) Summary(ctx context.Context) (*domain.UtilizationSummary, error) {
	var out domain.UtilizationSummary
	if hit, err := s.cache.Get(ctx, "utilization", cache.Filter{}, &out); err != nil {
		log.Warn().Err(err).Msg("utilization cache read failed")
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

	out = BuildUtilizationSummary(soh, locations)
	if err := s.cache.Set(ctx, "utilization", cache.Filter{}, &out); err != nil {
		log.Warn().Err(err).Msg("utilization cache write failed")
	}

	return &out, nil
}

func foldLocation(loc string) string {
	return strings.ToLower(strings.TrimSpace(loc))
}

// BuildUtilizationSummary aggregates warehouse occupancy. The location
// master drives the zone table: every master location counts toward its
// zone's capacity whether or not stock sits in it, with a subtotal per
// location type and a closing grand total. Brands are ranked per area type
// by the number of locations they dominate.
func BuildUtilizationSummary(soh []domain.Soh, locations []domain.Location) domain.UtilizationSummary {
	// Fold the snapshot per occupied location: the per-brand quantity living
	// there, plus the row's own location type as a fallback for locations
	// missing from the master.
	type locAgg struct {
		locType string
		byBrand map[string]int
	}
	occupied := make(map[string]*locAgg)
	var occupiedOrder []string
	for _, r := range soh {
		if r.Qty <= 0 {
			continue
		}
		key := foldLocation(r.Location)
		if key == "" {
			continue
		}
		agg, ok := occupied[key]
		if !ok {
			agg = &locAgg{locType: strings.TrimSpace(r.LocationType), byBrand: make(map[string]int)}
			occupied[key] = agg
			occupiedOrder = append(occupiedOrder, key)
		}
		if r.Brand != "" {
			agg.byBrand[r.Brand] += r.Qty
		}
	}

	// Walk the master once: capacity and occupancy per location type and
	// zone.
	type zoneAgg struct {
		total int
		occ   int
	}
	masterSeen := make(map[string]struct{}, len(locations))
	byType := make(map[string]map[string]*zoneAgg)
	for _, l := range locations {
		key := foldLocation(l.Location)
		if key == "" {
			continue
		}
		if _, dup := masterSeen[key]; dup {
			continue
		}
		masterSeen[key] = struct{}{}

		locType := strings.TrimSpace(l.LocationType)
		zone := strings.TrimSpace(l.Zone)
		zonesOf, ok := byType[locType]
		if !ok {
			zonesOf = make(map[string]*zoneAgg)
			byType[locType] = zonesOf
		}
		agg, ok := zonesOf[zone]
		if !ok {
			agg = &zoneAgg{}
			zonesOf[zone] = agg
		}
		agg.total++
		if occ, ok := occupied[key]; ok {
			agg.occ++
			occ.locType = locType
		}
	}

	zoneRow := func(locType, zone string, total, occ int) domain.ZoneUtilization {
		return domain.ZoneUtilization{
			LocationType: locType,
			Zone:         zone,
			TotalLocs:    total,
			OccupiedLocs: occ,
			EmptyLocs:    total - occ,
			OccupancyPct: ratioPct(occ, total),
		}
	}

	locTypes := make([]string, 0, len(byType))
	for locType := range byType {
		locTypes = append(locTypes, locType)
	}
	sort.Strings(locTypes)

	rows := make([]domain.ZoneUtilization, 0)
	grandTotal, grandOcc := 0, 0
	for _, locType := range locTypes {
		zonesOf := byType[locType]
		zones := make([]string, 0, len(zonesOf))
		for zone := range zonesOf {
			zones = append(zones, zone)
		}
		sort.Strings(zones)

		subTotal, subOcc := 0, 0
		for _, zone := range zones {
			agg := zonesOf[zone]
			rows = append(rows, zoneRow(locType, zone, agg.total, agg.occ))
			subTotal += agg.total
			subOcc += agg.occ
		}
		rows = append(rows, zoneRow(locType, "Subtotal", subTotal, subOcc))
		grandTotal += subTotal
		grandOcc += subOcc
	}
	if len(rows) > 0 {
		rows = append(rows, zoneRow("Total", "", grandTotal, grandOcc))
	}

	// Rank brands by dominated locations, one board per area type.
	boards := make(map[string]*report.Scoreboard)
	for _, key := range occupiedOrder {
		agg := occupied[key]
		brand := dominantBrand(agg.byBrand)
		if brand == "" || agg.locType == "" {
			continue
		}
		sb, ok := boards[agg.locType]
		if !ok {
			sb = report.NewScoreboard()
			boards[agg.locType] = sb
		}
		sb.Add(brand, 1)
	}
	areaTypes := make([]string, 0, len(boards))
	for areaType := range boards {
		areaTypes = append(areaTypes, areaType)
	}
	sort.Strings(areaTypes)
	topBrands := make([]domain.AreaBrands, 0, len(areaTypes))
	for _, areaType := range areaTypes {
		ranking := boards[areaType].Ranking()
		if len(ranking) > topBrandCount {
			ranking = ranking[:topBrandCount]
		}
		topBrands = append(topBrands, domain.AreaBrands{AreaType: areaType, Brands: ranking})
	}

	return domain.UtilizationSummary{
		OccupiedLocations: len(occupied),
		TotalLocations:    len(masterSeen),
		OccupancyPct:      ratioPct(len(occupied), len(masterSeen)),
		Zones:             rows,
		TopBrands:         topBrands,
	}
}

// dominantBrand picks the brand holding the most quantity in one location;
// ties break alphabetically so reruns stay deterministic.
func dominantBrand(byBrand map[string]int) string {
	best, bestQty := "", 0
	for brand, qty := range byBrand {
		if qty > bestQty || (qty == bestQty && bestQty > 0 && brand < best) {
			best, bestQty = brand, qty
		}
	}

	return best
}
