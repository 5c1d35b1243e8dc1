package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/riskibarqy/fifa-roster/db/migrations"
)

// Migrator wraps a golang-migrate instance bound to the gateway's file.
type Migrator struct {
	m *migrate.Migrate
}

// NewMigrator opens a dedicated handle for schema changes. Callers must Close it.
func (g *Gateway) NewMigrator() (*Migrator, error) {
	db, err := g.open()
	if err != nil {
		return nil, fmt.Errorf("open migration db: %w", err)
	}

	driver, err := sqlite3.WithInstance(db.DB, &sqlite3.Config{})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create migration driver: %w", err)
	}

	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create migrator: %w", err)
	}

	return &Migrator{m: m}, nil
}

// Up applies every pending migration. An up-to-date schema is not an error.
func (m *Migrator) Up() error {
	if err := m.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// Down rolls back the given number of migrations.
func (m *Migrator) Down(steps int) error {
	if steps <= 0 {
		return fmt.Errorf("down steps must be > 0")
	}
	if err := m.m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// Version reports the applied version; ok is false when nothing was applied yet.
func (m *Migrator) Version() (version uint, dirty bool, ok bool, err error) {
	version, dirty, err = m.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, false, nil
	}
	if err != nil {
		return 0, false, false, err
	}
	return version, dirty, true, nil
}

// Goto migrates up or down to the given version.
func (m *Migrator) Goto(version uint) error {
	if err := m.m.Migrate(version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func (m *Migrator) Force(version int) error {
	return m.m.Force(version)
}

func (m *Migrator) Close() error {
	srcErr, dbErr := m.m.Close()
	if srcErr != nil {
		return fmt.Errorf("close migration source: %w", srcErr)
	}
	if dbErr != nil {
		return fmt.Errorf("close migration db: %w", dbErr)
	}
	return nil
}

// Migrate brings the schema up to date using a short-lived handle.
func (g *Gateway) Migrate(ctx context.Context) error {
	m, err := g.NewMigrator()
	if err != nil {
		return g.fail(ctx, "migrate", "", err)
	}
	defer func() {
		if err := m.Close(); err != nil {
			g.logger.WarnContext(ctx, "close migrator failed", "error", err)
		}
	}()

	if err := m.Up(); err != nil {
		return g.fail(ctx, "migrate", "", err)
	}

	g.logger.InfoContext(ctx, "schema up to date", "path", g.path)
	return nil
}
