package main

// Table definitions for the warehouse source collections. Date and time
// columns stay text: upstream exports are not consistently formatted and
// normalization happens at import time.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS arrivals (
		id BIGSERIAL PRIMARY KEY,
		date TEXT NOT NULL DEFAULT '',
		arrival_time TEXT NOT NULL DEFAULT '',
		receipt_no TEXT NOT NULL DEFAULT '',
		po_no TEXT NOT NULL DEFAULT '',
		brand TEXT NOT NULL DEFAULT '',
		po_qty INTEGER NOT NULL DEFAULT 0,
		item_type TEXT NOT NULL DEFAULT '',
		operator TEXT NOT NULL DEFAULT '',
		note TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		id BIGSERIAL PRIMARY KEY,
		date TEXT NOT NULL DEFAULT '',
		time_transaction TEXT NOT NULL DEFAULT '',
		receipt_no TEXT NOT NULL DEFAULT '',
		sku TEXT NOT NULL DEFAULT '',
		operate_type TEXT NOT NULL DEFAULT '',
		qty INTEGER NOT NULL DEFAULT 0,
		operator TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS vas (
		id BIGSERIAL PRIMARY KEY,
		date TEXT NOT NULL DEFAULT '',
		start_time TEXT NOT NULL DEFAULT '',
		end_time TEXT NOT NULL DEFAULT '',
		brand TEXT NOT NULL DEFAULT '',
		sku TEXT NOT NULL DEFAULT '',
		item_type TEXT NOT NULL DEFAULT '',
		vas_type TEXT NOT NULL DEFAULT '',
		qty INTEGER NOT NULL DEFAULT 0,
		operator TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS dcc (
		id BIGSERIAL PRIMARY KEY,
		date TEXT NOT NULL DEFAULT '',
		phy_inv TEXT NOT NULL DEFAULT '',
		zone TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		owner TEXT NOT NULL DEFAULT '',
		sku TEXT NOT NULL DEFAULT '',
		brand TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		sys_qty INTEGER NOT NULL DEFAULT 0,
		phy_qty INTEGER NOT NULL DEFAULT 0,
		variance INTEGER NOT NULL DEFAULT 0,
		reconcile_variance INTEGER,
		operator TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS damages (
		id BIGSERIAL PRIMARY KEY,
		date TEXT NOT NULL DEFAULT '',
		brand TEXT NOT NULL DEFAULT '',
		sku TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		qty INTEGER NOT NULL DEFAULT 0,
		damage_note TEXT NOT NULL DEFAULT '',
		damage_reason TEXT NOT NULL DEFAULT '',
		operator TEXT NOT NULL DEFAULT '',
		qc_by TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS soh (
		id BIGSERIAL PRIMARY KEY,
		date TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		location_category TEXT NOT NULL DEFAULT '',
		sku TEXT NOT NULL DEFAULT '',
		sku_category TEXT NOT NULL DEFAULT '',
		brand TEXT NOT NULL DEFAULT '',
		zone TEXT NOT NULL DEFAULT '',
		location_type TEXT NOT NULL DEFAULT '',
		owner TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT '',
		qty INTEGER NOT NULL DEFAULT 0,
		wh_arrival_date TEXT NOT NULL DEFAULT '',
		receipt_no TEXT NOT NULL DEFAULT '',
		mfg_date TEXT NOT NULL DEFAULT '',
		exp_date TEXT NOT NULL DEFAULT '',
		batch_no TEXT NOT NULL DEFAULT '',
		update_date TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS qc_returns (
		id BIGSERIAL PRIMARY KEY,
		date TEXT NOT NULL DEFAULT '',
		receipt TEXT NOT NULL DEFAULT '',
		return_date TEXT NOT NULL DEFAULT '',
		brand TEXT NOT NULL DEFAULT '',
		owner TEXT NOT NULL DEFAULT '',
		sku TEXT NOT NULL DEFAULT '',
		qty INTEGER NOT NULL DEFAULT 0,
		from_loc TEXT NOT NULL DEFAULT '',
		to_loc TEXT NOT NULL DEFAULT '',
		operator TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS locations (
		id BIGSERIAL PRIMARY KEY,
		location TEXT NOT NULL DEFAULT '',
		location_category TEXT NOT NULL DEFAULT '',
		zone TEXT NOT NULL DEFAULT '',
		location_type TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS attendances (
		id BIGSERIAL PRIMARY KEY,
		nik TEXT NOT NULL DEFAULT '',
		name TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT '',
		jobdesc TEXT NOT NULL DEFAULT '',
		divisi TEXT NOT NULL DEFAULT '',
		date TEXT NOT NULL DEFAULT '',
		clock_in TEXT NOT NULL DEFAULT '',
		clock_out TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS employees (
		id BIGSERIAL PRIMARY KEY,
		nik TEXT NOT NULL DEFAULT '',
		name TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT '',
		jobdesc TEXT NOT NULL DEFAULT '',
		divisi TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS unloadings (
		id BIGSERIAL PRIMARY KEY,
		date TEXT NOT NULL DEFAULT '',
		brand TEXT NOT NULL DEFAULT '',
		total_vehicles INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS project_productivity (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		task TEXT NOT NULL DEFAULT '',
		qty INTEGER NOT NULL DEFAULT 0,
		date TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}
