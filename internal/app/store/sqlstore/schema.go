package sqlstore

import (
	"context"
	"fmt"
)

// schema creates the tables the reads expect. Every statement is idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS instructors (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT,
	subject TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	`CREATE TABLE IF NOT EXISTS participants (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT,
	phone TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	`CREATE TABLE IF NOT EXISTS rooms (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	building TEXT,
	capacity INTEGER,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	`CREATE TABLE IF NOT EXISTS courses (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT,
	start_date DATE,
	end_date DATE,
	price NUMERIC(10,2),
	instructor_ref TEXT,
	room_ref TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	`CREATE TABLE IF NOT EXISTS enrollments (
	id TEXT PRIMARY KEY,
	course_ref TEXT NOT NULL,
	participant_ref TEXT,
	paid BOOLEAN NOT NULL DEFAULT FALSE,
	enrolled_on DATE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	`CREATE INDEX IF NOT EXISTS idx_courses_start ON courses (start_date, id)`,
	`CREATE INDEX IF NOT EXISTS idx_enrollments_course ON enrollments (course_ref)`,
}

// EnsureSchema creates the tables and indexes if they do not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	for i, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i+1, err)
		}
	}
	return nil
}
