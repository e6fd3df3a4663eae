package coursestore_test

import (
	"errors"
	"testing"
	"time"

	coursestore "github.com/dalemusser/kursmanager/internal/app/store/courses"
	"github.com/dalemusser/kursmanager/internal/domain/models"
	"github.com/dalemusser/kursmanager/internal/testutil"
)

func TestStore_CreateAndList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := coursestore.New(db)
	late := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
	early := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
	price := 80.0

	if _, err := store.Create(ctx, models.Course{Title: "Spät", StartDate: &late}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	created, err := store.Create(ctx, models.Course{Title: "Früh", StartDate: &early, Price: &price})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == "" {
		t.Error("expected generated ID")
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}

	list, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("List: got %d courses, want 2", len(list))
	}
	if list[0].Title != "Früh" {
		t.Errorf("List[0].Title: got %q, want %q", list[0].Title, "Früh")
	}
	if list[0].PriceOrZero() != 80 {
		t.Errorf("List[0].Price: got %v, want 80", list[0].PriceOrZero())
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Title != "Früh" {
		t.Errorf("GetByID: got %q, want %q", got.Title, "Früh")
	}

	n, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Count: got %d, want 2", n)
	}
}

func TestStore_CreateValidation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := coursestore.New(db)

	if _, err := store.Create(ctx, models.Course{Title: "  "}); !errors.Is(err, coursestore.ErrTitleRequired) {
		t.Errorf("blank title: got %v, want ErrTitleRequired", err)
	}

	start := time.Date(2026, 11, 10, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -1)
	if _, err := store.Create(ctx, models.Course{Title: "Rückwärts", StartDate: &start, EndDate: &end}); !errors.Is(err, coursestore.ErrEndBeforeStart) {
		t.Errorf("end before start: got %v, want ErrEndBeforeStart", err)
	}
}

func TestStore_EnsureIndexes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := coursestore.New(db)
	if err := store.EnsureIndexes(ctx); err != nil {
		t.Fatalf("EnsureIndexes failed: %v", err)
	}
	// second call must be a no-op
	if err := store.EnsureIndexes(ctx); err != nil {
		t.Fatalf("EnsureIndexes (repeat) failed: %v", err)
	}
}

func TestStore_CreateStoresCalendarDates(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := coursestore.New(db)
	start := time.Date(2026, 10, 17, 0, 0, 0, 0, testutil.Berlin)
	end := time.Date(2026, 11, 1, 0, 0, 0, 0, testutil.Berlin)
	if _, err := store.Create(ctx, models.Course{Title: "Morgen", StartDate: &start, EndDate: &end}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	list, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 course, got %d", len(list))
	}
	got := list[0]
	wantStart := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
	if got.StartDate == nil || !got.StartDate.Equal(wantStart) {
		t.Errorf("StartDate = %v, want %v", got.StartDate, wantStart)
	}
	if got.EndDate == nil || !got.EndDate.Equal(wantEnd) {
		t.Errorf("EndDate = %v, want %v", got.EndDate, wantEnd)
	}
}
