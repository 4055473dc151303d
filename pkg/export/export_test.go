package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/starrtours/pricingcal/core/model"
)

func sampleRows() []model.CalendarRow {
	return []model.CalendarRow{
		{
			Date:          time.Date(2023, time.January, 6, 0, 0, 0, 0, time.UTC),
			FormattedDate: "January 6",
			Month:         "January",
			Weekday:       "Friday",
			Season:        model.Winter,
			CoachPressure: 1,
			TripsCount:    1,
			AvgComplexity: 1,
			Band:          "C+ (45%)",
			Reason:        "Very active day with high potential",
		},
		{
			Date:          time.Date(2023, time.January, 7, 0, 0, 0, 0, time.UTC),
			FormattedDate: "January 7",
			Month:         "January",
			Weekday:       "Saturday",
			Season:        model.Winter,
			CoachPressure: 0.33,
			TripsCount:    0,
			AvgComplexity: 0,
			Band:          "D (30%)",
			Reason:        "Low trip count but seasonal factors",
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleRows()); err != nil {
		t.Fatalf("write: %v", err)
	}
	recs, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(recs))
	}
	if strings.Join(recs[0], "|") != strings.Join(Header, "|") {
		t.Fatalf("bad header %v", recs[0])
	}
	want := []string{"2023-01-06", "January 6", "January", "Friday", "Winter", "1", "1", "1", "C+ (45%)", "Very active day with high potential"}
	if strings.Join(recs[1], "|") != strings.Join(want, "|") {
		t.Fatalf("bad row %v", recs[1])
	}
	if recs[2][5] != "0.33" {
		t.Fatalf("pressure formatted as %q", recs[2][5])
	}
}

func TestWriteCSVDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	if err := WriteCSV(&a, sampleRows()); err != nil {
		t.Fatalf("write a: %v", err)
	}
	if err := WriteCSV(&b, sampleRows()); err != nil {
		t.Fatalf("write b: %v", err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Fatalf("output differs between writes")
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleRows()); err != nil {
		t.Fatalf("write: %v", err)
	}
	var decoded []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(decoded))
	}
	if decoded[0]["suggested_band"] != "C+ (45%)" {
		t.Fatalf("bad band %v", decoded[0]["suggested_band"])
	}
}
