package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/starrtours/pricingcal/core/model"
)

func testRows() []model.CalendarRow {
	return []model.CalendarRow{
		{
			Date: time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), Season: model.Winter,
			Weekday: "Sunday", CoachPressure: 1, TripsCount: 0, AvgComplexity: 0,
			Band: "C (40%)", Reason: "Healthy demand with multiple trip drivers",
		},
		{
			Date: time.Date(2023, time.January, 2, 0, 0, 0, 0, time.UTC), Season: model.Winter,
			Weekday: "Monday", CoachPressure: 1, TripsCount: 0, AvgComplexity: 0,
			Band: "D+ (35%)", Reason: "Mid-level day with moderate complexity",
		},
	}
}

func TestSaveRunAndQuery(t *testing.T) {
	st, err := NewSQLiteStore(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = st.Close() }()

	ctx := context.Background()
	generated := time.Date(2026, time.August, 27, 12, 0, 0, 0, time.UTC)
	if err := st.SaveRun(ctx, "run-1", 2023, generated, testRows()); err != nil {
		t.Fatalf("save: %v", err)
	}

	runs, err := st.Runs(ctx)
	if err != nil {
		t.Fatalf("runs: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	r := runs[0]
	if r.RunID != "run-1" || r.Year != 2023 || r.Rows != 2 {
		t.Fatalf("bad summary %+v", r)
	}
	if !r.GeneratedAt.Equal(generated) {
		t.Fatalf("generated_at %v != %v", r.GeneratedAt, generated)
	}

	counts, err := st.BandCounts(ctx, "run-1")
	if err != nil {
		t.Fatalf("band counts: %v", err)
	}
	if counts["C (40%)"] != 1 || counts["D+ (35%)"] != 1 {
		t.Fatalf("bad counts %v", counts)
	}
}

func TestSaveRunDuplicateID(t *testing.T) {
	st, err := NewSQLiteStore(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = st.Close() }()

	ctx := context.Background()
	if err := st.SaveRun(ctx, "run-1", 2023, time.Now(), testRows()); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := st.SaveRun(ctx, "run-1", 2023, time.Now(), testRows()); err == nil {
		t.Fatalf("duplicate run ID should fail")
	}
	runs, err := st.Runs(ctx)
	if err != nil {
		t.Fatalf("runs: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("failed save must not leave partial rows, got %d runs", len(runs))
	}
}

func TestRunsOrderedNewestFirst(t *testing.T) {
	st, err := NewSQLiteStore(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = st.Close() }()

	ctx := context.Background()
	base := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	if err := st.SaveRun(ctx, "old", 2023, base, nil); err != nil {
		t.Fatalf("save old: %v", err)
	}
	if err := st.SaveRun(ctx, "new", 2024, base.Add(time.Hour), nil); err != nil {
		t.Fatalf("save new: %v", err)
	}
	runs, err := st.Runs(ctx)
	if err != nil {
		t.Fatalf("runs: %v", err)
	}
	if runs[0].RunID != "new" || runs[1].RunID != "old" {
		t.Fatalf("bad order %+v", runs)
	}
}
