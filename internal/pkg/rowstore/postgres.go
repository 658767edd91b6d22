package rowstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fieldworks/attendance-bot-go/internal/pkg/database"
)

// PostgresStore keeps sheets as insertion-ordered positional rows in a
// single table. It is the self-hosted alternative to the Sheets backend
// and preserves the same semantics: append, full scan, single-cell update.
type PostgresStore struct {
	db *database.DB
}

func NewPostgresStore(db *database.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate creates the backing table. Safe to call on every startup.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS sheet_rows (
			ordinal BIGSERIAL PRIMARY KEY,
			sheet   TEXT NOT NULL,
			cells   TEXT[] NOT NULL
		)`)
	if err != nil {
		return classifyPgError(fmt.Errorf("failed to migrate sheet_rows: %w", err))
	}
	_, err = s.db.Exec(ctx, `CREATE INDEX IF NOT EXISTS idx_sheet_rows_sheet ON sheet_rows (sheet, ordinal)`)
	if err != nil {
		return classifyPgError(fmt.Errorf("failed to index sheet_rows: %w", err))
	}
	return nil
}

// AppendRow implements Store.
func (s *PostgresStore) AppendRow(ctx context.Context, sheet string, row Row) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO sheet_rows (sheet, cells) VALUES ($1, $2)`,
		sheet, []string(row),
	)
	if err != nil {
		return classifyPgError(fmt.Errorf("failed to append row to %s: %w", sheet, err))
	}
	return nil
}

// ReadAllRows implements Store.
func (s *PostgresStore) ReadAllRows(ctx context.Context, sheet string) ([]Row, error) {
	rows, err := s.db.Query(ctx,
		`SELECT cells FROM sheet_rows WHERE sheet = $1 ORDER BY ordinal`,
		sheet,
	)
	if err != nil {
		return nil, classifyPgError(fmt.Errorf("failed to read rows of %s: %w", sheet, err))
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var cells []string
		if err := rows.Scan(&cells); err != nil {
			return nil, fmt.Errorf("failed to scan row of %s: %w", sheet, err)
		}
		out = append(out, Row(cells))
	}
	if err := rows.Err(); err != nil {
		return nil, classifyPgError(fmt.Errorf("failed to iterate rows of %s: %w", sheet, err))
	}
	return out, nil
}

// UpdateCell implements Store. Row numbers are 1-based sheet positions,
// header row included, matching the Sheets backend.
func (s *PostgresStore) UpdateCell(ctx context.Context, sheet string, cellRef string, value string) error {
	col, rowNum, err := ParseCellRef(cellRef)
	if err != nil {
		return err
	}

	var ordinal int64
	var cells []string
	err = s.db.QueryRow(ctx, `
		SELECT ordinal, cells FROM sheet_rows
		WHERE sheet = $1
		ORDER BY ordinal
		OFFSET $2 LIMIT 1`,
		sheet, rowNum-1,
	).Scan(&ordinal, &cells)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("row %d of %s does not exist", rowNum, sheet)
		}
		return classifyPgError(fmt.Errorf("failed to locate row %d of %s: %w", rowNum, sheet, err))
	}

	for len(cells) < col {
		cells = append(cells, "")
	}
	cells[col-1] = value

	_, err = s.db.Exec(ctx,
		`UPDATE sheet_rows SET cells = $1 WHERE ordinal = $2`,
		cells, ordinal,
	)
	if err != nil {
		return classifyPgError(fmt.Errorf("failed to update cell %s of %s: %w", cellRef, sheet, err))
	}
	return nil
}

// classifyPgError wraps connection-level failures as transient so the retry
// policy picks them up; constraint and syntax errors stay definitive.
func classifyPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// class 08 = connection exception, 53 = insufficient resources,
		// 57 = operator intervention (shutdown), 58 = system error
		switch pgErr.Code[:2] {
		case "08", "53", "57", "58":
			return &TransientError{Err: err}
		}
		return err
	}
	if pgconn.SafeToRetry(err) {
		return &TransientError{Err: err}
	}
	return err
}
