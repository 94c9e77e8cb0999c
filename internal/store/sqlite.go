package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/vanshikakhator/civic-pulse-72cbea05/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS complaints (
	id          TEXT PRIMARY KEY,
	title       TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	location    TEXT NOT NULL,
	latitude    REAL,
	longitude   REAL,
	category    TEXT NOT NULL,
	priority    TEXT NOT NULL,
	status      TEXT NOT NULL DEFAULT 'Pending',
	created_at  DATETIME NOT NULL DEFAULT (datetime('now')),
	updated_at  DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_complaints_status ON complaints(status);
CREATE INDEX IF NOT EXISTS idx_complaints_priority ON complaints(priority);
CREATE INDEX IF NOT EXISTS idx_complaints_category ON complaints(category);
CREATE INDEX IF NOT EXISTS idx_complaints_location ON complaints(location);
CREATE INDEX IF NOT EXISTS idx_complaints_created_at ON complaints(created_at);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) CreateComplaint(ctx context.Context, c model.Complaint) (*model.Complaint, error) {
	c.ID = uuid.New().String()
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	if c.Status == "" {
		c.Status = model.StatusPending
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO complaints (id, title, description, location, latitude, longitude, category, priority, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Title, c.Description, c.Location,
		nullFloat(c.Latitude), nullFloat(c.Longitude),
		c.Category, string(c.Priority), string(c.Status), c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: insert complaint")
	}
	return &c, nil
}

func (s *SQLiteStore) GetComplaint(ctx context.Context, id string) (*model.Complaint, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, description, location, latitude, longitude, category, priority, status, created_at, updated_at
		 FROM complaints WHERE id = ?`,
		id,
	)
	c, err := scanComplaint(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: get complaint %s", id)
	}
	return c, nil
}

func (s *SQLiteStore) ListComplaints(ctx context.Context) ([]model.Complaint, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, description, location, latitude, longitude, category, priority, status, created_at, updated_at
		 FROM complaints ORDER BY created_at DESC, id`,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list complaints")
	}
	defer rows.Close()

	var out []model.Complaint
	for rows.Next() {
		c, err := scanComplaint(rows)
		if err != nil {
			return nil, eris.Wrap(err, "sqlite: scan complaint row")
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "sqlite: iterate complaint rows")
	}
	return out, nil
}

func (s *SQLiteStore) UpdateStatus(ctx context.Context, id string, status model.Status) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE complaints SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), time.Now().UTC(), id,
	)
	if err != nil {
		return eris.Wrapf(err, "sqlite: update status %s", id)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return eris.Wrap(err, "sqlite: rows affected")
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) CountComplaints(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM complaints`).Scan(&n); err != nil {
		return 0, eris.Wrap(err, "sqlite: count complaints")
	}
	return n, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for scanComplaint.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanComplaint(row rowScanner) (*model.Complaint, error) {
	var (
		c        model.Complaint
		lat, lng sql.NullFloat64
		priority string
		status   string
	)
	if err := row.Scan(
		&c.ID, &c.Title, &c.Description, &c.Location,
		&lat, &lng, &c.Category, &priority, &status,
		&c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	c.Latitude = floatPtr(lat)
	c.Longitude = floatPtr(lng)
	c.Priority = model.Priority(priority)
	c.Status = model.Status(status)
	return &c, nil
}
