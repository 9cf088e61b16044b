package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/gudangops/whmonitor/internal/cache"
	"github.com/gudangops/whmonitor/internal/domain"
	"github.com/gudangops/whmonitor/internal/report"
	"github.com/gudangops/whmonitor/internal/repository"
)

// Label of the manpower summary row.
const actualLabel = "Actual"

type ManpowerService struct {
	repo  repository.ManpowerRepository
	cache cache.ReportCache
}

func NewManpowerService(repo repository.ManpowerRepository, c cache.ReportCache) *ManpowerService {
	return &ManpowerService{repo: repo, cache: c}
}

func (s *ManpowerService) Summary(ctx context.Context) (*domain.ManpowerSummary, error) {
	var out domain.ManpowerSummary
	if hit, err := s.cache.Get(ctx, "manpower", cache.Filter{}, &out); err != nil {
		log.Warn().Err(err).Msg("manpower cache read failed")
	} else if hit {
		return &out, nil
	}

	attendances, err := s.repo.ListAttendances(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendances: %w", err)
	}
	employees, err := s.repo.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load employees: %w", err)
	}

	out = BuildManpowerSummary(attendances, employees)
	if err := s.cache.Set(ctx, "manpower", cache.Filter{}, &out); err != nil {
		log.Warn().Err(err).Msg("manpower cache write failed")
	}

	return &out, nil
}

// BuildManpowerSummary pivots attendance man-days per month and division.
// Every attendance row counts: the table measures worked days, not distinct
// staff. The employee master is authoritative for employment status only;
// the job description comes from the attendance row, which tracks what the
// person actually worked that day. Staff with an unmapped job description
// stay out of the breakdown; temporary staff all land in the catch-all
// division.
func BuildManpowerSummary(attendances []domain.Attendance, employees []domain.Employee) domain.ManpowerSummary {
	byNik := make(map[string]domain.Employee, len(employees))
	for _, e := range employees {
		if nik := strings.TrimSpace(e.Nik); nik != "" {
			byNik[nik] = e
		}
	}

	byMonth := make(report.Table)
	perMonth := make(map[string]report.Table)
	for _, a := range attendances {
		t, ok := report.ParseDate(a.Date)
		if !ok {
			continue
		}
		status := a.Status
		if emp, found := byNik[strings.TrimSpace(a.Nik)]; found {
			status = emp.Status
		}
		div, ok := report.Division(status, a.Jobdesc)
		if !ok {
			continue
		}
		month := report.MonthKey(t)

		byMonth.Add(month, div, 1)
		tab, ok := perMonth[month]
		if !ok {
			tab = make(report.Table)
			perMonth[month] = tab
		}
		tab.Add(div, "Headcount", 1)
	}

	return domain.ManpowerSummary{
		ByMonth: report.BuildPivotTotal(byMonth, report.Divisions, nil, actualLabel),
		MonthDiff: report.BuildDelta(perMonth,
			func(a, b string) bool { return a < b },
			[]string{"Headcount"}),
	}
}
