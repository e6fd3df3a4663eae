// internal/app/bootstrap/seed.go
package bootstrap

import (
	"context"
	"fmt"
	"time"

	coursestore "github.com/dalemusser/kursmanager/internal/app/store/courses"
	enrollmentstore "github.com/dalemusser/kursmanager/internal/app/store/enrollments"
	instructorstore "github.com/dalemusser/kursmanager/internal/app/store/instructors"
	participantstore "github.com/dalemusser/kursmanager/internal/app/store/participants"
	roomstore "github.com/dalemusser/kursmanager/internal/app/store/rooms"
	"github.com/dalemusser/kursmanager/internal/domain/models"
	"go.uber.org/zap"
)

// seedDemoData fills an empty database with a small set of related records
// whose course dates are relative to today. Nothing is written when any
// course already exists.
func seedDemoData(ctx context.Context, deps DBDeps, loc *time.Location, logger *zap.Logger) error {
	courses := coursestore.New(deps.MongoDatabase)
	n, err := courses.Count(ctx)
	if err != nil {
		return fmt.Errorf("count courses: %w", err)
	}
	if n > 0 {
		logger.Info("demo data skipped, courses already present", zap.Int64("courses", n))
		return nil
	}
	if loc == nil {
		loc = time.Local
	}

	now := time.Now().In(loc)
	// Calendar dates relative to today in loc, in their stored form.
	day := func(offset int) *time.Time {
		t := time.Date(now.Year(), now.Month(), now.Day()+offset, 0, 0, 0, 0, time.UTC)
		return &t
	}
	price := func(p float64) *float64 { return &p }

	instructors := instructorstore.New(deps.MongoDatabase)
	rooms := roomstore.New(deps.MongoDatabase)
	participants := participantstore.New(deps.MongoDatabase)
	enrollments := enrollmentstore.New(deps.MongoDatabase)

	anna, err := instructors.Create(ctx, models.Instructor{Name: "Anna Becker", Email: "anna.becker@example.org", Subject: "Sprachen"})
	if err != nil {
		return fmt.Errorf("seed instructor: %w", err)
	}
	jonas, err := instructors.Create(ctx, models.Instructor{Name: "Jonas Weber", Email: "jonas.weber@example.org", Subject: "Informatik"})
	if err != nil {
		return fmt.Errorf("seed instructor: %w", err)
	}

	r1, err := rooms.Create(ctx, models.Room{Name: "Raum 101", Building: "Hauptgebäude", Capacity: 20})
	if err != nil {
		return fmt.Errorf("seed room: %w", err)
	}
	r2, err := rooms.Create(ctx, models.Room{Name: "Seminarraum B", Building: "Nebengebäude", Capacity: 12})
	if err != nil {
		return fmt.Errorf("seed room: %w", err)
	}

	seedCourses := []models.Course{
		{Title: "Deutsch A1", StartDate: day(-14), EndDate: day(30), Price: price(240), InstructorRef: models.Ref(anna.ID), RoomRef: models.Ref(r1.ID)},
		{Title: "Python Grundlagen", StartDate: day(-3), EndDate: day(4), Price: price(390), InstructorRef: models.Ref(jonas.ID), RoomRef: models.Ref(r2.ID)},
		{Title: "Englisch B2", StartDate: day(10), EndDate: day(60), Price: price(280), InstructorRef: models.Ref(anna.ID), RoomRef: models.Ref(r1.ID)},
		{Title: "Webentwicklung", StartDate: day(40), Price: price(450), InstructorRef: models.Ref(jonas.ID), RoomRef: models.Ref(r2.ID)},
		{Title: "Französisch A2", StartDate: day(75), EndDate: day(120), Price: price(260), InstructorRef: models.Ref(anna.ID)},
		{Title: "Offene Sprechstunde"},
	}
	created := make([]models.Course, 0, len(seedCourses))
	for _, c := range seedCourses {
		out, err := courses.Create(ctx, c)
		if err != nil {
			return fmt.Errorf("seed course %q: %w", c.Title, err)
		}
		created = append(created, out)
	}

	people := []string{"Lena Schmidt", "Max Müller", "Sophie Wagner", "Paul Fischer"}
	for i, name := range people {
		p, err := participants.Create(ctx, models.Participant{Name: name})
		if err != nil {
			return fmt.Errorf("seed participant: %w", err)
		}
		course := created[i%3]
		if _, err := enrollments.Create(ctx, models.Enrollment{
			CourseRef:      models.Ref(course.ID),
			ParticipantRef: models.Ref(p.ID),
			Paid:           i%2 == 0,
			EnrolledOn:     day(-20 + i),
		}); err != nil {
			return fmt.Errorf("seed enrollment: %w", err)
		}
	}

	logger.Info("demo data seeded",
		zap.Int("courses", len(created)),
		zap.Int("participants", len(people)))
	return nil
}
