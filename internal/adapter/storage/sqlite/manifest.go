// Package sqlite records batch runs in a local manifest database for
// later auditing. Recording is opt-in and best-effort; the conversion
// pipeline never depends on it.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"golang.org/x/crypto/blake2b"
	"modernc.org/sqlite"

	"github.com/bnema/pdfbatch/internal/domain"
	"github.com/bnema/pdfbatch/internal/port"
)

//go:embed migrations/*.sql
var migrations embed.FS

type Manifest struct {
	db *sql.DB
}

var hookOnce sync.Once

func registerHook() {
	hookOnce.Do(func() {
		sqlite.RegisterConnectionHook(func(conn sqlite.ExecQuerierContext, dsn string) error {
			pragmas := []string{
				"PRAGMA journal_mode = WAL",
				"PRAGMA busy_timeout = 5000",
				"PRAGMA synchronous = NORMAL",
				"PRAGMA foreign_keys = ON",
			}
			for _, p := range pragmas {
				if _, err := conn.ExecContext(context.Background(), p, nil); err != nil {
					return fmt.Errorf("execute %s: %w", p, err)
				}
			}
			return nil
		})
	})
}

func NewManifest(dbPath string) (port.Manifest, error) {
	registerHook()

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open manifest database: %w", err)
	}

	// Single connection: WAL allows concurrent reads but only one writer.
	db.SetMaxOpenConns(1)

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Manifest{db: db}, nil
}

func (m *Manifest) Close() error {
	return m.db.Close()
}

// RecordRun writes one runs row and one run_jobs row per job, with a
// BLAKE2b digest of each produced PDF so outputs can be audited against
// the manifest later.
func (m *Manifest) RecordRun(batch *domain.Batch, report *domain.Report) error {
	ctx := context.Background()

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin manifest transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	runID := uuid.NewString()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, input_root, output_root, flatten, image_dpi, total, succeeded, failed)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, batch.InputRoot, batch.OutputRoot, boolToInt(batch.Flatten), batch.ImageDPI,
		report.Total, report.Succeeded, report.Failed)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, job := range batch.Jobs {
		var kind, message, digest string
		if job.Err != nil {
			kind = string(job.Err.Kind)
			message = job.Err.Message
		}
		if job.Status == domain.JobStatusSucceeded {
			digest, _ = digestFile(job.DestPath)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO run_jobs (run_id, rel_path, category, dest_path, status, error_kind, error_message, output_digest)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			runID, job.RelPath, string(job.Category), job.DestPath, string(job.Status), kind, message, digest)
		if err != nil {
			return fmt.Errorf("insert run job: %w", err)
		}
	}

	return tx.Commit()
}

func digestFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h, err := blake2b.New256(nil)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
