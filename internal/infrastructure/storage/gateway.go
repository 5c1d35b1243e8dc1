// Package storage is the gateway to the roster's SQLite file. Every call opens
// its own handle on the file and closes it before returning. Failures are
// marked with player.ErrStorage.
package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/fifa-roster/internal/domain/player"
	"github.com/riskibarqy/fifa-roster/internal/platform/logging"
)

const (
	driverName = "sqlite3"

	defaultBusyTimeout = 5 * time.Second

	maxLoggedStatementLength = 512
)

// Config locates the roster file.
type Config struct {
	Path        string
	BusyTimeout time.Duration
}

type Gateway struct {
	path   string
	dsn    string
	logger *logging.Logger
}

func NewGateway(cfg Config, logger *logging.Logger) (*Gateway, error) {
	path := strings.TrimSpace(cfg.Path)
	if path == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	if logger == nil {
		logger = logging.Default()
	}

	busyTimeout := cfg.BusyTimeout
	if busyTimeout <= 0 {
		busyTimeout = defaultBusyTimeout
	}

	path = filepath.Clean(path)
	return &Gateway{
		path:   path,
		dsn:    fmt.Sprintf("file:%s?_busy_timeout=%d", path, busyTimeout.Milliseconds()),
		logger: logger.Named("storage"),
	}, nil
}

// Path returns the file the gateway operates on.
func (g *Gateway) Path() string {
	return g.path
}

// Exec runs a single statement in its own transaction and returns the number
// of rows it affected.
func (g *Gateway) Exec(ctx context.Context, stmt string, args ...any) (int64, error) {
	var affected int64
	err := g.transaction(ctx, "exec", stmt, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, stmt, args...)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, err
	}

	g.logger.DebugContext(ctx, "statement executed", "statement", formatStatement(stmt), "rows_affected", affected)
	return affected, nil
}

// ExecMany runs stmt once per record inside one transaction. Either every
// record is applied or none is.
func (g *Gateway) ExecMany(ctx context.Context, stmt string, records [][]any) error {
	err := g.transaction(ctx, "exec many", stmt, func(tx *sqlx.Tx) error {
		prepared, err := tx.PreparexContext(ctx, stmt)
		if err != nil {
			return err
		}
		defer prepared.Close()

		for i, record := range records {
			if _, err := prepared.ExecContext(ctx, record...); err != nil {
				return fmt.Errorf("record %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	g.logger.DebugContext(ctx, "statement executed", "statement", formatStatement(stmt), "records", len(records))
	return nil
}

// Query scans every row returned by stmt into dest, a pointer to a slice.
func (g *Gateway) Query(ctx context.Context, dest any, stmt string, args ...any) error {
	db, err := g.open()
	if err != nil {
		return g.fail(ctx, "query", stmt, err)
	}
	defer g.release(ctx, db)

	if err := db.SelectContext(ctx, dest, stmt, args...); err != nil {
		return g.fail(ctx, "query", stmt, err)
	}

	return nil
}

type txCallback func(*sqlx.Tx) error

func (g *Gateway) transaction(ctx context.Context, op, stmt string, cb txCallback) error {
	db, err := g.open()
	if err != nil {
		return g.fail(ctx, op, stmt, err)
	}
	defer g.release(ctx, db)

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return g.fail(ctx, op, stmt, err)
	}

	if err := cb(tx); err != nil {
		if err2 := tx.Rollback(); err2 != nil {
			err = fmt.Errorf("rollback error: %s\noriginal error: %w", err2, err)
		}
		return g.fail(ctx, op, stmt, err)
	}

	if err := tx.Commit(); err != nil {
		return g.fail(ctx, op, stmt, err)
	}

	return nil
}

func (g *Gateway) open() (*sqlx.DB, error) {
	db, err := otelsqlx.Open(driverName, g.dsn,
		otelsql.WithAttributes(attribute.String("db.system", "sqlite")),
		otelsql.WithDBName(filepath.Base(g.path)),
		otelsql.WithQueryFormatter(formatStatement),
	)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	return db, nil
}

func (g *Gateway) release(ctx context.Context, db *sqlx.DB) {
	if err := db.Close(); err != nil {
		g.logger.WarnContext(ctx, "close storage handle failed", "path", g.path, "error", err)
	}
}

func (g *Gateway) fail(ctx context.Context, op, stmt string, err error) error {
	g.logger.ErrorContext(ctx, "storage operation failed",
		"op", op,
		"path", g.path,
		"statement", formatStatement(stmt),
		"error", err,
	)
	return errors.Mark(errors.Wrapf(err, "storage %s", op), player.ErrStorage)
}

var statementWhitespace = regexp.MustCompile(`\s+`)

// formatStatement collapses whitespace and truncates long statements for logs and spans.
func formatStatement(stmt string) string {
	stmt = strings.TrimSpace(stmt)
	if stmt == "" {
		return stmt
	}

	normalized := statementWhitespace.ReplaceAllString(stmt, " ")
	if len(normalized) <= maxLoggedStatementLength {
		return normalized
	}

	return normalized[:maxLoggedStatementLength] + "..."
}
