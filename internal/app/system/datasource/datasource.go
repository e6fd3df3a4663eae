// Package datasource defines the read interface the dashboard and section
// pages consume, and the MongoDB implementation of it.
package datasource

import (
	"context"
	"fmt"

	"github.com/dalemusser/kursmanager/internal/domain/models"
)

// Backend names accepted by the data_source setting.
const (
	BackendMongo    = "mongo"
	BackendPostgres = "postgres"
)

// Collection identifies one of the five record collections.
type Collection string

const (
	Courses      Collection = "courses"
	Enrollments  Collection = "enrollments"
	Instructors  Collection = "instructors"
	Participants Collection = "participants"
	Rooms        Collection = "rooms"
)

// All lists the collections in dashboard load order.
var All = []Collection{Courses, Enrollments, Instructors, Participants, Rooms}

// Label returns the German display name used in page titles and banners.
func (c Collection) Label() string {
	switch c {
	case Courses:
		return "Kurse"
	case Enrollments:
		return "Anmeldungen"
	case Instructors:
		return "Dozenten"
	case Participants:
		return "Teilnehmer"
	case Rooms:
		return "Räume"
	}
	return string(c)
}

// Source reads the five collections. Implementations must be safe for
// concurrent use; the dashboard issues all five reads at once.
type Source interface {
	Courses(ctx context.Context) ([]models.Course, error)
	Enrollments(ctx context.Context) ([]models.Enrollment, error)
	Instructors(ctx context.Context) ([]models.Instructor, error)
	Participants(ctx context.Context) ([]models.Participant, error)
	Rooms(ctx context.Context) ([]models.Room, error)
	Ping(ctx context.Context) error
}

// ValidateBackend reports whether name is a supported backend.
func ValidateBackend(name string) error {
	switch name {
	case BackendMongo, BackendPostgres:
		return nil
	}
	return fmt.Errorf("unknown data source %q (want %q or %q)", name, BackendMongo, BackendPostgres)
}
