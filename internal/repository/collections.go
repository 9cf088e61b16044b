package repository

import (
	"context"

	"github.com/gudangops/whmonitor/internal/domain"
)

// InboundRepository serves the inbound tab's source collections.
type InboundRepository interface {
	ListArrivals(ctx context.Context, from, to string) ([]domain.Arrival, error)
	ListTransactions(ctx context.Context, from, to string) ([]domain.Transaction, error)
	ListVas(ctx context.Context, from, to string) ([]domain.Vas, error)
	ListUnloadings(ctx context.Context, from, to string) ([]domain.Unloading, error)
}

// StockRepository serves inventory, utilization and aging.
type StockRepository interface {
	ListSoh(ctx context.Context) ([]domain.Soh, error)
	ListLocations(ctx context.Context) ([]domain.Location, error)
	ListDcc(ctx context.Context, from, to string) ([]domain.Dcc, error)
	ListDamages(ctx context.Context, from, to string) ([]domain.Damage, error)
	ListQcReturns(ctx context.Context, from, to string) ([]domain.QcReturn, error)
}

// ManpowerRepository serves the manpower headcount view.
type ManpowerRepository interface {
	ListAttendances(ctx context.Context) ([]domain.Attendance, error)
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
}

// ProductivityRepository serves the operator leaderboards.
type ProductivityRepository interface {
	ListVas(ctx context.Context, from, to string) ([]domain.Vas, error)
	ListProjects(ctx context.Context, from, to string) ([]domain.ProjectProductivity, error)
}

// ImportRepository is used by the CSV importer to load snapshot tables.
// Replace methods swap the whole table inside one transaction; Insert methods
// append.
type ImportRepository interface {
	ReplaceSoh(ctx context.Context, rows []domain.Soh) error
	ReplaceLocations(ctx context.Context, rows []domain.Location) error
	ReplaceEmployees(ctx context.Context, rows []domain.Employee) error
	InsertArrivals(ctx context.Context, rows []domain.Arrival) error
	InsertTransactions(ctx context.Context, rows []domain.Transaction) error
	InsertVas(ctx context.Context, rows []domain.Vas) error
	InsertDcc(ctx context.Context, rows []domain.Dcc) error
	InsertDamages(ctx context.Context, rows []domain.Damage) error
	InsertQcReturns(ctx context.Context, rows []domain.QcReturn) error
	InsertAttendances(ctx context.Context, rows []domain.Attendance) error
	InsertUnloadings(ctx context.Context, rows []domain.Unloading) error
	InsertProjects(ctx context.Context, rows []domain.ProjectProductivity) error
}

// CollectionRepository is the full data access surface backing the dashboard.
type CollectionRepository interface {
	InboundRepository
	StockRepository
	ManpowerRepository
	ProductivityRepository
	ImportRepository
}
