package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/gudangops/whmonitor/internal/cache"
	"github.com/gudangops/whmonitor/internal/domain"
	"github.com/gudangops/whmonitor/internal/report"
	"github.com/gudangops/whmonitor/internal/repository"
)

// Leaderboard categories in display order.
const (
	CategoryInspection     = "inspection"
	CategoryReceivePutaway = "receive_putaway"
	CategoryVas            = "vas"
	CategoryCycleCount     = "cycle_count"
	CategoryDamageQc       = "damage_qc"
	CategoryProject        = "project"
)

type ProductivityService struct {
	inbound repository.InboundRepository
	stock   repository.StockRepository
	tasks   repository.ProductivityRepository
	people  repository.ManpowerRepository
	cache   cache.ReportCache
}

func NewProductivityService(inbound repository.InboundRepository, stock repository.StockRepository, tasks repository.ProductivityRepository, people repository.ManpowerRepository, c cache.ReportCache) *ProductivityService {
	return &ProductivityService{inbound: inbound, stock: stock, tasks: tasks, people: people, cache: c}
}

func (s *ProductivityService) Summary(ctx context.Context, from, to string) (*domain.ProductivitySummary, error) {
	filter := cache.Filter{From: from, To: to}
	var out domain.ProductivitySummary
	if hit, err := s.cache.Get(ctx, "productivity", filter, &out); err != nil {
		log.Warn().Err(err).Msg("productivity cache read failed")
	} else if hit {
		return &out, nil
	}

	arrivals, err := s.inbound.ListArrivals(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load arrivals: %w", err)
	}
	transactions, err := s.inbound.ListTransactions(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	vas, err := s.tasks.ListVas(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load vas: %w", err)
	}
	dcc, err := s.stock.ListDcc(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load cycle counts: %w", err)
	}
	damages, err := s.stock.ListDamages(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load damages: %w", err)
	}
	qcReturns, err := s.stock.ListQcReturns(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load qc returns: %w", err)
	}
	projects, err := s.tasks.ListProjects(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}
	employees, err := s.people.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load employees: %w", err)
	}

	out = BuildProductivitySummary(arrivals, transactions, vas, dcc, damages, qcReturns, projects, employees)
	if err := s.cache.Set(ctx, "productivity", filter, &out); err != nil {
		log.Warn().Err(err).Msg("productivity cache write failed")
	}

	return &out, nil
}

func qtyLabel(score, _ int) string {
	return fmt.Sprintf("%d qty", score)
}

// BuildProductivitySummary scores operators per category and packages the
// rankings as podium leaderboards. Operator names are matched against the
// employee master to decorate entries with division and jobdesc; an
// operator with no score in a category simply does not appear on that
// board.
func BuildProductivitySummary(
	arrivals []domain.Arrival,
	transactions []domain.Transaction,
	vas []domain.Vas,
	dcc []domain.Dcc,
	damages []domain.Damage,
	qcReturns []domain.QcReturn,
	projects []domain.ProjectProductivity,
	employees []domain.Employee,
) domain.ProductivitySummary {
	// Inspection credit is the PO quantity checked in, recorded per
	// arrival.
	inspection := report.NewScoreboard()
	for _, a := range arrivals {
		inspection.Add(a.Operator, a.PoQty)
	}

	receivePutaway := report.NewScoreboard()
	for _, t := range transactions {
		switch normalizeOp(t.OperateType) {
		case "receive", "putaway":
			receivePutaway.Add(t.Operator, t.Qty)
		}
	}

	vasBoard := report.NewScoreboard()
	for _, v := range vas {
		vasBoard.Add(v.Operator, v.Qty)
	}

	// Cycle-count credit is system plus physical quantity; the distinct
	// locations visited show up in the label only.
	cycleCount := report.NewScoreboard()
	cycleCount.Label = func(score, distinct int) string {
		return fmt.Sprintf("%d qty • %d loc", score, distinct)
	}
	for _, d := range dcc {
		cycleCount.Add(d.Operator, d.SysQty+d.PhyQty)
		cycleCount.AddKey(d.Operator, d.Location)
	}

	damageQc := report.NewScoreboard()
	for _, d := range damages {
		damageQc.Add(d.Operator, d.Qty)
	}
	for _, q := range qcReturns {
		damageQc.Add(q.Operator, q.Qty)
	}

	project := report.NewScoreboard()
	for _, p := range projects {
		project.Add(p.Name, p.Qty)
	}

	boards := []*report.Scoreboard{inspection, receivePutaway, vasBoard, cycleCount, damageQc, project}
	for _, sb := range boards {
		if sb.Label == nil {
			sb.Label = qtyLabel
		}
		for _, e := range employees {
			sb.Describe(e.Name, e.Divisi, e.Jobdesc)
		}
	}

	return domain.ProductivitySummary{
		Boards: []domain.Leaderboard{
			report.SplitPodium(CategoryInspection, inspection.Ranking()),
			report.SplitPodium(CategoryReceivePutaway, receivePutaway.Ranking()),
			report.SplitPodium(CategoryVas, vasBoard.Ranking()),
			report.SplitPodium(CategoryCycleCount, cycleCount.Ranking()),
			report.SplitPodium(CategoryDamageQc, damageQc.Ranking()),
			report.SplitPodium(CategoryProject, project.Ranking()),
		},
	}
}
