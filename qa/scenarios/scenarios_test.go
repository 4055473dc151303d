package scenarios

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/starrtours/pricingcal/core/model"
)

func TestScenarios(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "*.yaml"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(paths) == 0 {
		t.Fatalf("no scenario fixtures found")
	}
	for _, path := range paths {
		sc, err := Load(path)
		if err != nil {
			t.Fatalf("%s: load: %v", path, err)
		}
		t.Run(sc.Name, func(t *testing.T) {
			rows, err := Run(sc)
			if err != nil {
				t.Fatalf("run: %v", err)
			}
			wantDays := 365
			if sc.Year%4 == 0 && (sc.Year%100 != 0 || sc.Year%400 == 0) {
				wantDays = 366
			}
			if len(rows) != wantDays {
				t.Fatalf("expected %d rows, got %d", wantDays, len(rows))
			}
			byDate := make(map[string]model.CalendarRow, len(rows))
			for _, r := range rows {
				byDate[r.Date.Format(time.DateOnly)] = r
			}
			for _, exp := range sc.Expected {
				row, ok := byDate[exp.Date]
				if !ok {
					t.Fatalf("expected day %s missing", exp.Date)
				}
				if row.Band != exp.Band {
					t.Fatalf("%s: expected band %s, got %s", exp.Date, exp.Band, row.Band)
				}
				if row.TripsCount != exp.Trips {
					t.Fatalf("%s: expected %d trips, got %d", exp.Date, exp.Trips, row.TripsCount)
				}
			}
		})
	}
}
