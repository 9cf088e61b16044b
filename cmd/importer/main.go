package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/gudangops/whmonitor/internal/config"
	"github.com/gudangops/whmonitor/internal/domain"
	"github.com/gudangops/whmonitor/internal/repository"
	"github.com/gudangops/whmonitor/internal/repository/postgres"
	"github.com/gudangops/whmonitor/pkg/logger"
)

func newFileFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "file",
		Usage:    "CSV file exported from the WMS",
		Required: true,
	}
}

func openRepo() (repository.CollectionRepository, *postgres.DB, error) {
	cfg := config.Load()
	db, err := postgres.NewDB(&cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return postgres.NewCollectionRepository(db), db, nil
}

func runImport(c *cli.Context, collection string, load func(ctx context.Context, repo repository.CollectionRepository, path string) (int, error)) error {
	repo, db, err := openRepo()
	if err != nil {
		return err
	}
	defer db.Close()

	path := c.String("file")
	count, err := load(c.Context, repo, path)
	if err != nil {
		return fmt.Errorf("failed to import %s: %w", collection, err)
	}

	logger.Log.Info().
		Str("collection", collection).
		Str("file", path).
		Int("rows", count).
		Msg("Import completed")

	return nil
}

func main() {
	logger.SetLevel("info")

	app := &cli.App{
		Name:  "importer",
		Usage: "Load WMS CSV exports into the monitoring database",
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Create the source collection tables",
				Action: func(c *cli.Context) error {
					_, db, err := openRepo()
					if err != nil {
						return err
					}
					defer db.Close()
					for _, stmt := range schemaStatements {
						if _, err := db.ExecContext(c.Context, stmt); err != nil {
							return fmt.Errorf("failed to run migration: %w", err)
						}
					}
					logger.Log.Info().Msg("Migrations completed")
					return nil
				},
			},
			{
				Name:  "soh",
				Usage: "Replace the stock-on-hand snapshot",
				Flags: []cli.Flag{newFileFlag()},
				Action: func(c *cli.Context) error {
					return runImport(c, "soh", func(ctx context.Context, repo repository.CollectionRepository, path string) (int, error) {
						var rows []domain.Soh
						count, err := readCSV(path, func(r rowReader) error {
							rows = append(rows, domain.Soh{
								Date:             r.Date("date"),
								Location:         r.Get("location"),
								LocationCategory: r.Get("location_category"),
								Sku:              r.Get("sku"),
								SkuCategory:      r.Get("sku_category"),
								Brand:            r.Get("brand"),
								Zone:             r.Get("zone"),
								LocationType:     r.Get("location_type"),
								Owner:            r.Get("owner"),
								Status:           r.Get("status"),
								Qty:              r.Int("qty"),
								WhArrivalDate:    r.Date("wh_arrival_date"),
								ReceiptNo:        r.Get("receipt_no"),
								MfgDate:          r.Date("mfg_date"),
								ExpDate:          r.Date("exp_date"),
								BatchNo:          r.Get("batch_no"),
								UpdateDate:       r.Date("update_date"),
							})
							return nil
						})
						if err != nil {
							return count, err
						}
						return count, repo.ReplaceSoh(ctx, rows)
					})
				},
			},
			{
				Name:  "locations",
				Usage: "Replace the location master",
				Flags: []cli.Flag{newFileFlag()},
				Action: func(c *cli.Context) error {
					return runImport(c, "locations", func(ctx context.Context, repo repository.CollectionRepository, path string) (int, error) {
						var rows []domain.Location
						count, err := readCSV(path, func(r rowReader) error {
							rows = append(rows, domain.Location{
								Location:         r.Get("location"),
								LocationCategory: r.Get("location_category"),
								Zone:             r.Get("zone"),
								LocationType:     r.Get("location_type"),
								Status:           r.Get("status"),
							})
							return nil
						})
						if err != nil {
							return count, err
						}
						return count, repo.ReplaceLocations(ctx, rows)
					})
				},
			},
			{
				Name:  "employees",
				Usage: "Replace the employee master",
				Flags: []cli.Flag{newFileFlag()},
				Action: func(c *cli.Context) error {
					return runImport(c, "employees", func(ctx context.Context, repo repository.CollectionRepository, path string) (int, error) {
						var rows []domain.Employee
						count, err := readCSV(path, func(r rowReader) error {
							rows = append(rows, domain.Employee{
								Nik:     r.Get("nik"),
								Name:    r.Get("name"),
								Status:  r.Get("status"),
								Jobdesc: r.Get("jobdesc"),
								Divisi:  r.Get("divisi"),
							})
							return nil
						})
						if err != nil {
							return count, err
						}
						return count, repo.ReplaceEmployees(ctx, rows)
					})
				},
			},
			{
				Name:  "arrivals",
				Usage: "Append inbound arrival records",
				Flags: []cli.Flag{newFileFlag()},
				Action: func(c *cli.Context) error {
					return runImport(c, "arrivals", func(ctx context.Context, repo repository.CollectionRepository, path string) (int, error) {
						var rows []domain.Arrival
						count, err := readCSV(path, func(r rowReader) error {
							rows = append(rows, domain.Arrival{
								Date:        r.Date("date"),
								ArrivalTime: r.Get("arrival_time"),
								ReceiptNo:   r.Get("receipt_no"),
								PoNo:        r.Get("po_no"),
								Brand:       r.Get("brand"),
								PoQty:       r.Int("po_qty"),
								ItemType:    r.Get("item_type"),
								Operator:    r.Get("operator"),
								Note:        r.Get("note"),
							})
							return nil
						})
						if err != nil {
							return count, err
						}
						return count, repo.InsertArrivals(ctx, rows)
					})
				},
			},
			{
				Name:  "transactions",
				Usage: "Append warehouse transaction records",
				Flags: []cli.Flag{newFileFlag()},
				Action: func(c *cli.Context) error {
					return runImport(c, "transactions", func(ctx context.Context, repo repository.CollectionRepository, path string) (int, error) {
						var rows []domain.Transaction
						count, err := readCSV(path, func(r rowReader) error {
							rows = append(rows, domain.Transaction{
								Date:            r.Date("date"),
								TimeTransaction: r.Get("time_transaction"),
								ReceiptNo:       r.Get("receipt_no"),
								Sku:             r.Get("sku"),
								OperateType:     r.Get("operate_type"),
								Qty:             r.Int("qty"),
								Operator:        r.Get("operator"),
							})
							return nil
						})
						if err != nil {
							return count, err
						}
						return count, repo.InsertTransactions(ctx, rows)
					})
				},
			},
			{
				Name:  "vas",
				Usage: "Append VAS task records",
				Flags: []cli.Flag{newFileFlag()},
				Action: func(c *cli.Context) error {
					return runImport(c, "vas", func(ctx context.Context, repo repository.CollectionRepository, path string) (int, error) {
						var rows []domain.Vas
						count, err := readCSV(path, func(r rowReader) error {
							rows = append(rows, domain.Vas{
								Date:      r.Date("date"),
								StartTime: r.Get("start_time"),
								EndTime:   r.Get("end_time"),
								Brand:     r.Get("brand"),
								Sku:       r.Get("sku"),
								ItemType:  r.Get("item_type"),
								VasType:   r.Get("vas_type"),
								Qty:       r.Int("qty"),
								Operator:  r.Get("operator"),
							})
							return nil
						})
						if err != nil {
							return count, err
						}
						return count, repo.InsertVas(ctx, rows)
					})
				},
			},
			{
				Name:  "dcc",
				Usage: "Append daily cycle count records",
				Flags: []cli.Flag{newFileFlag()},
				Action: func(c *cli.Context) error {
					return runImport(c, "dcc", func(ctx context.Context, repo repository.CollectionRepository, path string) (int, error) {
						var rows []domain.Dcc
						count, err := readCSV(path, func(r rowReader) error {
							rows = append(rows, domain.Dcc{
								Date:              r.Date("date"),
								PhyInv:            r.Get("phy_inv"),
								Zone:              r.Get("zone"),
								Location:          r.Get("location"),
								Owner:             r.Get("owner"),
								Sku:               r.Get("sku"),
								Brand:             r.Get("brand"),
								Description:       r.Get("description"),
								SysQty:            r.Int("sys_qty"),
								PhyQty:            r.Int("phy_qty"),
								Variance:          r.Int("variance"),
								ReconcileVariance: r.IntPtr("reconcile_variance"),
								Operator:          r.Get("operator"),
							})
							return nil
						})
						if err != nil {
							return count, err
						}
						return count, repo.InsertDcc(ctx, rows)
					})
				},
			},
			{
				Name:  "damages",
				Usage: "Append damage findings",
				Flags: []cli.Flag{newFileFlag()},
				Action: func(c *cli.Context) error {
					return runImport(c, "damages", func(ctx context.Context, repo repository.CollectionRepository, path string) (int, error) {
						var rows []domain.Damage
						count, err := readCSV(path, func(r rowReader) error {
							rows = append(rows, domain.Damage{
								Date:         r.Date("date"),
								Brand:        r.Get("brand"),
								Sku:          r.Get("sku"),
								Description:  r.Get("description"),
								Qty:          r.Int("qty"),
								DamageNote:   r.Get("damage_note"),
								DamageReason: r.Get("damage_reason"),
								Operator:     r.Get("operator"),
								QcBy:         r.Get("qc_by"),
							})
							return nil
						})
						if err != nil {
							return count, err
						}
						return count, repo.InsertDamages(ctx, rows)
					})
				},
			},
			{
				Name:  "qc-returns",
				Usage: "Append QC return records",
				Flags: []cli.Flag{newFileFlag()},
				Action: func(c *cli.Context) error {
					return runImport(c, "qc-returns", func(ctx context.Context, repo repository.CollectionRepository, path string) (int, error) {
						var rows []domain.QcReturn
						count, err := readCSV(path, func(r rowReader) error {
							rows = append(rows, domain.QcReturn{
								Date:       r.Date("date"),
								Receipt:    r.Get("receipt"),
								ReturnDate: r.Date("return_date"),
								Brand:      r.Get("brand"),
								Owner:      r.Get("owner"),
								Sku:        r.Get("sku"),
								Qty:        r.Int("qty"),
								FromLoc:    r.Get("from_loc"),
								ToLoc:      r.Get("to_loc"),
								Operator:   r.Get("operator"),
								Status:     r.Get("status"),
							})
							return nil
						})
						if err != nil {
							return count, err
						}
						return count, repo.InsertQcReturns(ctx, rows)
					})
				},
			},
			{
				Name:  "attendances",
				Usage: "Append attendance records",
				Flags: []cli.Flag{newFileFlag()},
				Action: func(c *cli.Context) error {
					return runImport(c, "attendances", func(ctx context.Context, repo repository.CollectionRepository, path string) (int, error) {
						var rows []domain.Attendance
						count, err := readCSV(path, func(r rowReader) error {
							rows = append(rows, domain.Attendance{
								Nik:      r.Get("nik"),
								Name:     r.Get("name"),
								Status:   r.Get("status"),
								Jobdesc:  r.Get("jobdesc"),
								Divisi:   r.Get("divisi"),
								Date:     r.Date("date"),
								ClockIn:  r.Get("clock_in"),
								ClockOut: r.Get("clock_out"),
							})
							return nil
						})
						if err != nil {
							return count, err
						}
						return count, repo.InsertAttendances(ctx, rows)
					})
				},
			},
			{
				Name:  "unloadings",
				Usage: "Append unloading records",
				Flags: []cli.Flag{newFileFlag()},
				Action: func(c *cli.Context) error {
					return runImport(c, "unloadings", func(ctx context.Context, repo repository.CollectionRepository, path string) (int, error) {
						var rows []domain.Unloading
						count, err := readCSV(path, func(r rowReader) error {
							rows = append(rows, domain.Unloading{
								Date:          r.Date("date"),
								Brand:         r.Get("brand"),
								TotalVehicles: r.Int("total_vehicles"),
							})
							return nil
						})
						if err != nil {
							return count, err
						}
						return count, repo.InsertUnloadings(ctx, rows)
					})
				},
			},
			{
				Name:  "projects",
				Usage: "Append project productivity records",
				Flags: []cli.Flag{newFileFlag()},
				Action: func(c *cli.Context) error {
					return runImport(c, "projects", func(ctx context.Context, repo repository.CollectionRepository, path string) (int, error) {
						var rows []domain.ProjectProductivity
						count, err := readCSV(path, func(r rowReader) error {
							rows = append(rows, domain.ProjectProductivity{
								Name: r.Get("name"),
								Task: r.Get("task"),
								Qty:  r.Int("qty"),
								Date: r.Date("date"),
							})
							return nil
						})
						if err != nil {
							return count, err
						}
						return count, repo.InsertProjects(ctx, rows)
					})
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Log.Fatal().Err(err).Msg("Importer failed")
	}
}
