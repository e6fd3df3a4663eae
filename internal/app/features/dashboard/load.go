// internal/app/features/dashboard/load.go
package dashboard

import (
	"context"
	"time"

	"github.com/dalemusser/kursmanager/internal/app/system/coursestats"
	"github.com/dalemusser/kursmanager/internal/app/system/datasource"
	"github.com/dalemusser/kursmanager/internal/app/system/metrics"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// LoadFailure records one collection that could not be read.
type LoadFailure struct {
	Collection datasource.Collection
	Err        error
}

// LoadReport describes one load of the five collections.
type LoadReport struct {
	ID       string
	Took     time.Duration
	Failures []LoadFailure
}

// Failed reports whether the named collection failed to load.
func (r LoadReport) Failed(c datasource.Collection) bool {
	for _, f := range r.Failures {
		if f.Collection == c {
			return true
		}
	}
	return false
}

// FailedLabels returns the display names of the failed collections in load order.
func (r LoadReport) FailedLabels() []string {
	out := make([]string, 0, len(r.Failures))
	for _, f := range r.Failures {
		out = append(out, f.Collection.Label())
	}
	return out
}

// FailedNames returns the machine names of the failed collections in load order.
func (r LoadReport) FailedNames() []string {
	out := make([]string, 0, len(r.Failures))
	for _, f := range r.Failures {
		out = append(out, string(f.Collection))
	}
	return out
}

// Load reads all five collections concurrently. A failed read leaves its
// collection empty and is recorded in the report; the other reads are not
// affected. Load returns once every read has settled.
func Load(ctx context.Context, src datasource.Source, logger *zap.Logger, m *metrics.Metrics) (coursestats.Snapshot, LoadReport) {
	if logger == nil {
		logger = zap.NewNop()
	}
	start := time.Now()
	rep := LoadReport{ID: uuid.NewString()}

	var snap coursestats.Snapshot
	errs := make([]error, len(datasource.All))

	// Each goroutine writes only its own slot. The group's functions never
	// return an error so one failure cannot cancel the others.
	var g errgroup.Group
	g.Go(func() error {
		snap.Courses, errs[0] = src.Courses(ctx)
		return nil
	})
	g.Go(func() error {
		snap.Enrollments, errs[1] = src.Enrollments(ctx)
		return nil
	})
	g.Go(func() error {
		snap.Instructors, errs[2] = src.Instructors(ctx)
		return nil
	})
	g.Go(func() error {
		snap.Participants, errs[3] = src.Participants(ctx)
		return nil
	})
	g.Go(func() error {
		snap.Rooms, errs[4] = src.Rooms(ctx)
		return nil
	})
	_ = g.Wait()

	for i, err := range errs {
		if err == nil {
			continue
		}
		c := datasource.All[i]
		rep.Failures = append(rep.Failures, LoadFailure{Collection: c, Err: err})
		m.FetchFailed(string(c))
		logger.Warn("dashboard collection load failed",
			zap.String("load_id", rep.ID),
			zap.String("collection", string(c)),
			zap.Error(err))
	}
	clearFailed(&snap, rep)

	rep.Took = time.Since(start)
	m.ObserveLoad(rep.Took)
	logger.Debug("dashboard data loaded",
		zap.String("load_id", rep.ID),
		zap.Duration("took", rep.Took),
		zap.Int("courses", len(snap.Courses)),
		zap.Int("enrollments", len(snap.Enrollments)),
		zap.Int("instructors", len(snap.Instructors)),
		zap.Int("participants", len(snap.Participants)),
		zap.Int("rooms", len(snap.Rooms)),
		zap.Strings("failed", rep.FailedNames()))

	return snap, rep
}

// clearFailed drops any partial result a failed read may have returned.
func clearFailed(snap *coursestats.Snapshot, rep LoadReport) {
	for _, f := range rep.Failures {
		switch f.Collection {
		case datasource.Courses:
			snap.Courses = nil
		case datasource.Enrollments:
			snap.Enrollments = nil
		case datasource.Instructors:
			snap.Instructors = nil
		case datasource.Participants:
			snap.Participants = nil
		case datasource.Rooms:
			snap.Rooms = nil
		}
	}
}
