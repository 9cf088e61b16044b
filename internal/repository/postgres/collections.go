package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gudangops/whmonitor/internal/domain"
)

// collectionRepository loads whole source collections for the report
// services and bulk-loads CSV imports. Date columns hold ISO (YYYY-MM-DD)
// strings when the importer could parse the source value, the raw text
// otherwise, so range filters compare lexically.
type collectionRepository struct {
	db *DB
}

func NewCollectionRepository(db *DB) *collectionRepository {
	return &collectionRepository{db: db}
}

const insertChunk = 500

func insertBatch[T any](ctx context.Context, tx *sqlx.Tx, query string, rows []T) error {
	for start := 0; start < len(rows); start += insertChunk {
		end := start + insertChunk
		if end > len(rows) {
			end = len(rows)
		}
		if _, err := tx.NamedExecContext(ctx, query, rows[start:end]); err != nil {
			return err
		}
	}

	return nil
}

func listRange[T any](ctx context.Context, db *DB, query, from, to string) ([]T, error) {
	var rows []T
	if err := sqlx.SelectContext(ctx, db, &rows, query, from, to); err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *collectionRepository) ListArrivals(ctx context.Context, from, to string) ([]domain.Arrival, error) {
	query := `
		SELECT id, date, arrival_time, receipt_no, po_no, brand, po_qty,
		       item_type, operator, note, created_at, updated_at
		FROM arrivals
		WHERE ($1 = '' OR date >= $1) AND ($2 = '' OR date <= $2)
		ORDER BY date, arrival_time
	`
	rows, err := listRange[domain.Arrival](ctx, r.db, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list arrivals: %w", err)
	}

	return rows, nil
}

func (r *collectionRepository) ListTransactions(ctx context.Context, from, to string) ([]domain.Transaction, error) {
	query := `
		SELECT id, date, time_transaction, receipt_no, sku, operate_type,
		       qty, operator, created_at, updated_at
		FROM transactions
		WHERE ($1 = '' OR date >= $1) AND ($2 = '' OR date <= $2)
		ORDER BY date, time_transaction
	`
	rows, err := listRange[domain.Transaction](ctx, r.db, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return rows, nil
}

func (r *collectionRepository) ListUnloadings(ctx context.Context, from, to string) ([]domain.Unloading, error) {
	query := `
		SELECT id, date, brand, total_vehicles, created_at, updated_at
		FROM unloadings
		WHERE ($1 = '' OR date >= $1) AND ($2 = '' OR date <= $2)
		ORDER BY date, brand
	`
	rows, err := listRange[domain.Unloading](ctx, r.db, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list unloadings: %w", err)
	}

	return rows, nil
}

func (r *collectionRepository) ListSoh(ctx context.Context) ([]domain.Soh, error) {
	query := `
		SELECT id, date, location, location_category, sku, sku_category, brand,
		       zone, location_type, owner, status, qty, wh_arrival_date,
		       receipt_no, mfg_date, exp_date, batch_no, update_date,
		       created_at, updated_at
		FROM soh
	`
	var rows []domain.Soh
	if err := sqlx.SelectContext(ctx, r.db, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list soh: %w", err)
	}

	return rows, nil
}

func (r *collectionRepository) ListLocations(ctx context.Context) ([]domain.Location, error) {
	query := `
		SELECT id, location, location_category, zone, location_type, status,
		       created_at, updated_at
		FROM locations
		ORDER BY location
	`
	var rows []domain.Location
	if err := sqlx.SelectContext(ctx, r.db, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	return rows, nil
}

func (r *collectionRepository) ListDcc(ctx context.Context, from, to string) ([]domain.Dcc, error) {
	query := `
		SELECT id, date, phy_inv, zone, location, owner, sku, brand,
		       description, sys_qty, phy_qty, variance, reconcile_variance,
		       operator, created_at, updated_at
		FROM dcc
		WHERE ($1 = '' OR date >= $1) AND ($2 = '' OR date <= $2)
		ORDER BY date, location
	`
	rows, err := listRange[domain.Dcc](ctx, r.db, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list dcc: %w", err)
	}

	return rows, nil
}

func (r *collectionRepository) ListDamages(ctx context.Context, from, to string) ([]domain.Damage, error) {
	query := `
		SELECT id, date, brand, sku, description, qty, damage_note,
		       damage_reason, operator, qc_by, created_at, updated_at
		FROM damages
		WHERE ($1 = '' OR date >= $1) AND ($2 = '' OR date <= $2)
		ORDER BY date
	`
	rows, err := listRange[domain.Damage](ctx, r.db, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list damages: %w", err)
	}

	return rows, nil
}

func (r *collectionRepository) ListQcReturns(ctx context.Context, from, to string) ([]domain.QcReturn, error) {
	query := `
		SELECT id, date, receipt, return_date, brand, owner, sku, qty,
		       from_loc, to_loc, operator, status, created_at, updated_at
		FROM qc_returns
		WHERE ($1 = '' OR date >= $1) AND ($2 = '' OR date <= $2)
		ORDER BY date
	`
	rows, err := listRange[domain.QcReturn](ctx, r.db, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list qc returns: %w", err)
	}

	return rows, nil
}

func (r *collectionRepository) ListAttendances(ctx context.Context) ([]domain.Attendance, error) {
	query := `
		SELECT id, nik, name, status, jobdesc, divisi, date, clock_in,
		       clock_out, created_at, updated_at
		FROM attendances
		ORDER BY date, nik
	`
	var rows []domain.Attendance
	if err := sqlx.SelectContext(ctx, r.db, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}

	return rows, nil
}

func (r *collectionRepository) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	query := `
		SELECT id, nik, name, status, jobdesc, divisi, created_at, updated_at
		FROM employees
		ORDER BY nik
	`
	var rows []domain.Employee
	if err := sqlx.SelectContext(ctx, r.db, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	return rows, nil
}

func (r *collectionRepository) ListVas(ctx context.Context, from, to string) ([]domain.Vas, error) {
	query := `
		SELECT id, date, start_time, end_time, brand, sku, item_type,
		       vas_type, qty, operator, created_at, updated_at
		FROM vas
		WHERE ($1 = '' OR date >= $1) AND ($2 = '' OR date <= $2)
		ORDER BY date, start_time
	`
	rows, err := listRange[domain.Vas](ctx, r.db, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list vas: %w", err)
	}

	return rows, nil
}

func (r *collectionRepository) ListProjects(ctx context.Context, from, to string) ([]domain.ProjectProductivity, error) {
	query := `
		SELECT id, name, task, qty, date, created_at, updated_at
		FROM project_productivity
		WHERE ($1 = '' OR date >= $1) AND ($2 = '' OR date <= $2)
		ORDER BY date, name
	`
	rows, err := listRange[domain.ProjectProductivity](ctx, r.db, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	return rows, nil
}

func (r *collectionRepository) ReplaceSoh(ctx context.Context, rows []domain.Soh) error {
	return r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `TRUNCATE soh`); err != nil {
			return fmt.Errorf("failed to truncate soh: %w", err)
		}
		query := `
			INSERT INTO soh (
				date, location, location_category, sku, sku_category, brand,
				zone, location_type, owner, status, qty, wh_arrival_date,
				receipt_no, mfg_date, exp_date, batch_no, update_date
			) VALUES (
				:date, :location, :location_category, :sku, :sku_category, :brand,
				:zone, :location_type, :owner, :status, :qty, :wh_arrival_date,
				:receipt_no, :mfg_date, :exp_date, :batch_no, :update_date
			)
		`
		if err := insertBatch(ctx, tx, query, rows); err != nil {
			return fmt.Errorf("failed to insert soh: %w", err)
		}

		return nil
	})
}

func (r *collectionRepository) ReplaceLocations(ctx context.Context, rows []domain.Location) error {
	return r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `TRUNCATE locations`); err != nil {
			return fmt.Errorf("failed to truncate locations: %w", err)
		}
		query := `
			INSERT INTO locations (location, location_category, zone, location_type, status)
			VALUES (:location, :location_category, :zone, :location_type, :status)
		`
		if err := insertBatch(ctx, tx, query, rows); err != nil {
			return fmt.Errorf("failed to insert locations: %w", err)
		}

		return nil
	})
}

func (r *collectionRepository) ReplaceEmployees(ctx context.Context, rows []domain.Employee) error {
	return r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `TRUNCATE employees`); err != nil {
			return fmt.Errorf("failed to truncate employees: %w", err)
		}
		query := `
			INSERT INTO employees (nik, name, status, jobdesc, divisi)
			VALUES (:nik, :name, :status, :jobdesc, :divisi)
		`
		if err := insertBatch(ctx, tx, query, rows); err != nil {
			return fmt.Errorf("failed to insert employees: %w", err)
		}

		return nil
	})
}

func (r *collectionRepository) InsertArrivals(ctx context.Context, rows []domain.Arrival) error {
	return r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO arrivals (date, arrival_time, receipt_no, po_no, brand,
			                      po_qty, item_type, operator, note)
			VALUES (:date, :arrival_time, :receipt_no, :po_no, :brand,
			        :po_qty, :item_type, :operator, :note)
		`
		if err := insertBatch(ctx, tx, query, rows); err != nil {
			return fmt.Errorf("failed to insert arrivals: %w", err)
		}

		return nil
	})
}

func (r *collectionRepository) InsertTransactions(ctx context.Context, rows []domain.Transaction) error {
	return r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO transactions (date, time_transaction, receipt_no, sku,
			                          operate_type, qty, operator)
			VALUES (:date, :time_transaction, :receipt_no, :sku,
			        :operate_type, :qty, :operator)
		`
		if err := insertBatch(ctx, tx, query, rows); err != nil {
			return fmt.Errorf("failed to insert transactions: %w", err)
		}

		return nil
	})
}

func (r *collectionRepository) InsertVas(ctx context.Context, rows []domain.Vas) error {
	return r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO vas (date, start_time, end_time, brand, sku, item_type,
			                 vas_type, qty, operator)
			VALUES (:date, :start_time, :end_time, :brand, :sku, :item_type,
			        :vas_type, :qty, :operator)
		`
		if err := insertBatch(ctx, tx, query, rows); err != nil {
			return fmt.Errorf("failed to insert vas: %w", err)
		}

		return nil
	})
}

func (r *collectionRepository) InsertDcc(ctx context.Context, rows []domain.Dcc) error {
	return r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO dcc (date, phy_inv, zone, location, owner, sku, brand,
			                 description, sys_qty, phy_qty, variance,
			                 reconcile_variance, operator)
			VALUES (:date, :phy_inv, :zone, :location, :owner, :sku, :brand,
			        :description, :sys_qty, :phy_qty, :variance,
			        :reconcile_variance, :operator)
		`
		if err := insertBatch(ctx, tx, query, rows); err != nil {
			return fmt.Errorf("failed to insert dcc: %w", err)
		}

		return nil
	})
}

func (r *collectionRepository) InsertDamages(ctx context.Context, rows []domain.Damage) error {
	return r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO damages (date, brand, sku, description, qty,
			                     damage_note, damage_reason, operator, qc_by)
			VALUES (:date, :brand, :sku, :description, :qty,
			        :damage_note, :damage_reason, :operator, :qc_by)
		`
		if err := insertBatch(ctx, tx, query, rows); err != nil {
			return fmt.Errorf("failed to insert damages: %w", err)
		}

		return nil
	})
}

func (r *collectionRepository) InsertQcReturns(ctx context.Context, rows []domain.QcReturn) error {
	return r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO qc_returns (date, receipt, return_date, brand, owner,
			                        sku, qty, from_loc, to_loc, operator, status)
			VALUES (:date, :receipt, :return_date, :brand, :owner,
			        :sku, :qty, :from_loc, :to_loc, :operator, :status)
		`
		if err := insertBatch(ctx, tx, query, rows); err != nil {
			return fmt.Errorf("failed to insert qc returns: %w", err)
		}

		return nil
	})
}

func (r *collectionRepository) InsertAttendances(ctx context.Context, rows []domain.Attendance) error {
	return r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO attendances (nik, name, status, jobdesc, divisi, date,
			                         clock_in, clock_out)
			VALUES (:nik, :name, :status, :jobdesc, :divisi, :date,
			        :clock_in, :clock_out)
		`
		if err := insertBatch(ctx, tx, query, rows); err != nil {
			return fmt.Errorf("failed to insert attendances: %w", err)
		}

		return nil
	})
}

func (r *collectionRepository) InsertUnloadings(ctx context.Context, rows []domain.Unloading) error {
	return r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO unloadings (date, brand, total_vehicles)
			VALUES (:date, :brand, :total_vehicles)
		`
		if err := insertBatch(ctx, tx, query, rows); err != nil {
			return fmt.Errorf("failed to insert unloadings: %w", err)
		}

		return nil
	})
}

func (r *collectionRepository) InsertProjects(ctx context.Context, rows []domain.ProjectProductivity) error {
	return r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO project_productivity (name, task, qty, date)
			VALUES (:name, :task, :qty, :date)
		`
		if err := insertBatch(ctx, tx, query, rows); err != nil {
			return fmt.Errorf("failed to insert projects: %w", err)
		}

		return nil
	})
}
