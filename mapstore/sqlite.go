package mapstore

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/shoproute/floorplan"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SQLite is a Store backed by a SQLite database file.
type SQLite struct {
	db  *sql.DB
	log *slog.Logger
}

// OpenSQLite opens (or creates) the database at path and applies pending
// migrations. ":memory:" gives a private in-memory database.
func OpenSQLite(ctx context.Context, path string, log *slog.Logger) (*SQLite, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("mapstore: open %s: %w", path, err)
	}
	// One connection: SQLite serializes writers anyway and ":memory:" is
	// per-connection.
	db.SetMaxOpenConns(1)

	if _, err = db.ExecContext(ctx, "PRAGMA foreign_keys = ON; PRAGMA busy_timeout = 5000;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("mapstore: pragmas: %w", err)
	}
	s := &SQLite{db: db, log: log}
	if err = s.migrateUp(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// migrateUp applies every embedded migration not yet recorded.
func (s *SQLite) migrateUp() error {
	m, err := s.newMigrate()
	if err != nil {
		return err
	}
	// m is not closed: that would close s.db.
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("mapstore: migration up failed: %w", err)
	}

	return nil
}

// SchemaVersion returns the applied migration version and dirty flag.
func (s *SQLite) SchemaVersion() (version uint, dirty bool, err error) {
	m, err := s.newMigrate()
	if err != nil {
		return 0, false, err
	}
	version, dirty, err = m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}

	return version, dirty, err
}

func (s *SQLite) newMigrate() (*migrate.Migrate, error) {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("mapstore: migrations source: %w", err)
	}
	driver, err := sqlite.WithInstance(s.db, &sqlite.Config{})
	if err != nil {
		return nil, fmt.Errorf("mapstore: sqlite migrate driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return nil, fmt.Errorf("mapstore: migrate instance: %w", err)
	}
	m.Log = migrateLogger{log: s.log}

	return m, nil
}

// migrateLogger implements migrate.Logger on top of slog.
type migrateLogger struct {
	log *slog.Logger
}

func (l migrateLogger) Printf(format string, v ...interface{}) {
	l.log.Debug(fmt.Sprintf("migrate: "+format, v...))
}

func (l migrateLogger) Verbose() bool {
	return false
}

// FloorPlan reads the plan and its cells in saved order.
func (s *SQLite) FloorPlan(ctx context.Context, storeID string) (*floorplan.FloorPlan, error) {
	fp := &floorplan.FloorPlan{StoreID: storeID}
	err := s.db.QueryRowContext(ctx,
		"SELECT width, height FROM floor_plans WHERE store_id = ?", storeID,
	).Scan(&fp.Width, &fp.Height)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(storeID)
	}
	if err != nil {
		return nil, fmt.Errorf("mapstore: read plan %q: %w", storeID, err)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT x, y, cell_type FROM floor_plan_cells WHERE store_id = ? ORDER BY position", storeID)
	if err != nil {
		return nil, fmt.Errorf("mapstore: read cells %q: %w", storeID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			c     floorplan.Cell
			label string
		)
		if err := rows.Scan(&c.X, &c.Y, &label); err != nil {
			return nil, fmt.Errorf("mapstore: scan cell: %w", err)
		}
		if c.Type, err = floorplan.ParseCellType(label); err != nil {
			return nil, err
		}
		fp.Cells = append(fp.Cells, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("mapstore: read cells %q: %w", storeID, err)
	}

	return fp, nil
}

// SaveFloorPlan replaces the plan and all its cells in one transaction.
func (s *SQLite) SaveFloorPlan(ctx context.Context, plan *floorplan.FloorPlan) (err error) {
	if err = checkPlan(plan); err != nil {
		return err
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("mapstore: begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `
		INSERT INTO floor_plans (store_id, width, height) VALUES (?, ?, ?)
		ON CONFLICT(store_id) DO UPDATE SET
			width = excluded.width,
			height = excluded.height,
			updated_at = CURRENT_TIMESTAMP`,
		plan.StoreID, plan.Width, plan.Height); err != nil {
		return fmt.Errorf("mapstore: upsert plan %q: %w", plan.StoreID, err)
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM floor_plan_cells WHERE store_id = ?", plan.StoreID); err != nil {
		return fmt.Errorf("mapstore: clear cells %q: %w", plan.StoreID, err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO floor_plan_cells (store_id, position, x, y, cell_type) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("mapstore: prepare: %w", err)
	}
	defer stmt.Close()
	for i, c := range plan.Cells {
		if _, err = stmt.ExecContext(ctx, plan.StoreID, i, c.X, c.Y, string(c.Type)); err != nil {
			return fmt.Errorf("mapstore: insert cell %d: %w", i, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("mapstore: commit: %w", err)
	}
	s.log.DebugContext(ctx, "floor plan saved",
		slog.String("store_id", plan.StoreID), slog.Int("cells", len(plan.Cells)))

	return nil
}

// StoreIDs lists every store with a saved plan.
func (s *SQLite) StoreIDs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT store_id FROM floor_plans ORDER BY store_id")
	if err != nil {
		return nil, fmt.Errorf("mapstore: list stores: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("mapstore: scan store id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// Close closes the database.
func (s *SQLite) Close() error {
	return s.db.Close()
}
