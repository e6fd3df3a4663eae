// internal/app/store/sqlstore/sqlstore.go

// Package sqlstore reads the course collections from PostgreSQL.
package sqlstore

import (
	"context"
	"fmt"

	"github.com/dalemusser/kursmanager/internal/domain/models"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // postgres driver
)

// Store reads the five collections from PostgreSQL.
type Store struct {
	db *sqlx.DB
}

// New wraps an open database handle.
func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// Open connects to PostgreSQL with the given DSN and verifies the connection.
func Open(ctx context.Context, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return db, nil
}

const (
	courseColumns      = `id, title, COALESCE(description, '') AS description, start_date, end_date, price,
COALESCE(instructor_ref, '') AS instructor_ref, COALESCE(room_ref, '') AS room_ref, created_at`
	enrollmentColumns  = `id, course_ref, COALESCE(participant_ref, '') AS participant_ref, paid, enrolled_on, created_at`
	instructorColumns  = `id, name, COALESCE(email, '') AS email, COALESCE(subject, '') AS subject, created_at`
	participantColumns = `id, name, COALESCE(email, '') AS email, COALESCE(phone, '') AS phone, created_at`
	roomColumns        = `id, name, COALESCE(building, '') AS building, COALESCE(capacity, 0) AS capacity, created_at`
)

// Courses returns all courses ordered by start date, unscheduled first.
func (s *Store) Courses(ctx context.Context) ([]models.Course, error) {
	var out []models.Course
	query := `SELECT ` + courseColumns + ` FROM courses ORDER BY start_date ASC NULLS FIRST, id ASC`
	if err := s.db.SelectContext(ctx, &out, query); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return out, nil
}

// Enrollments returns all enrollments in insertion order.
func (s *Store) Enrollments(ctx context.Context) ([]models.Enrollment, error) {
	var out []models.Enrollment
	query := `SELECT ` + enrollmentColumns + ` FROM enrollments ORDER BY created_at ASC, id ASC`
	if err := s.db.SelectContext(ctx, &out, query); err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	return out, nil
}

// Instructors returns all instructors ordered by name.
func (s *Store) Instructors(ctx context.Context) ([]models.Instructor, error) {
	var out []models.Instructor
	query := `SELECT ` + instructorColumns + ` FROM instructors ORDER BY name ASC, id ASC`
	if err := s.db.SelectContext(ctx, &out, query); err != nil {
		return nil, fmt.Errorf("list instructors: %w", err)
	}
	return out, nil
}

// Participants returns all participants ordered by name.
func (s *Store) Participants(ctx context.Context) ([]models.Participant, error) {
	var out []models.Participant
	query := `SELECT ` + participantColumns + ` FROM participants ORDER BY name ASC, id ASC`
	if err := s.db.SelectContext(ctx, &out, query); err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	return out, nil
}

// Rooms returns all rooms ordered by name.
func (s *Store) Rooms(ctx context.Context) ([]models.Room, error) {
	var out []models.Room
	query := `SELECT ` + roomColumns + ` FROM rooms ORDER BY name ASC, id ASC`
	if err := s.db.SelectContext(ctx, &out, query); err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	return out, nil
}

// Ping verifies the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}
