package homebase

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
)

var testDay = time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

func loadDocument(t *testing.T, path string) *goquery.Document {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to load fixture %s: %v", path, err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(data)))
	if err != nil {
		t.Fatalf("failed to parse fixture %s: %v", path, err)
	}
	return doc
}

func TestParseShifts(t *testing.T) {
	doc := loadDocument(t, "testdata/dashboard.html")

	shifts, err := parseShifts(doc, testDay, time.UTC)
	if err != nil {
		t.Fatalf("parseShifts failed: %v", err)
	}

	if len(shifts) != 2 {
		t.Fatalf("expected 2 shifts, got %d", len(shifts))
	}

	if shifts[0].Name != "Sam Carter" {
		t.Errorf("expected first instructor Sam Carter, got %q", shifts[0].Name)
	}
	if shifts[0].Start.Hour() != 15 || shifts[0].End.Hour() != 19 {
		t.Errorf("Sam Carter shift = %v - %v, expected 15:00 - 19:00", shifts[0].Start, shifts[0].End)
	}

	if shifts[1].Name != "Alex Reyes" {
		t.Errorf("expected second instructor Alex Reyes, got %q", shifts[1].Name)
	}
	if shifts[1].Start.Hour() != 16 || shifts[1].End.Hour() != 18 {
		t.Errorf("Alex Reyes shift = %v - %v, expected 16:00 - 18:00", shifts[1].Start, shifts[1].End)
	}
}

func TestParseShiftsCompactLayout(t *testing.T) {
	doc := loadDocument(t, "testdata/dashboard_compact.html")

	shifts, err := parseShifts(doc, testDay, time.UTC)
	if err != nil {
		t.Fatalf("parseShifts failed on compact layout: %v", err)
	}

	if len(shifts) != 1 {
		t.Fatalf("expected 1 shift, got %d", len(shifts))
	}
	if shifts[0].Name != "Kim Osei" {
		t.Errorf("expected Kim Osei, got %q", shifts[0].Name)
	}
	if shifts[0].Start.Hour() != 9 || shifts[0].End.Hour() != 12 || shifts[0].End.Minute() != 30 {
		t.Errorf("unexpected shift times: %v - %v", shifts[0].Start, shifts[0].End)
	}
}

func TestParseShiftsEmptyPage(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<html><body></body></html>"))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := parseShifts(doc, testDay, time.UTC); err == nil {
		t.Error("expected error when no shift cards are present")
	}
}

func TestParseShiftRange(t *testing.T) {
	tests := []struct {
		raw       string
		startHour int
		startMin  int
		endHour   int
		endMin    int
		wantErr   bool
	}{
		{"7:00 am - 3:00 pm /", 7, 0, 15, 0, false},
		{"3:00 pm - 7:00 pm /", 15, 0, 19, 0, false},
		{"11:30 AM - 12:30 PM", 11, 30, 12, 30, false},
		{"12:00 am - 12:00 pm", 0, 0, 12, 0, false},
		{"9:00 am", 0, 0, 0, 0, true},
		{"open - close", 0, 0, 0, 0, true},
		{"", 0, 0, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			start, end, err := ParseShiftRange(tt.raw, testDay, time.UTC)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseShiftRange(%q) expected error", tt.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseShiftRange(%q) failed: %v", tt.raw, err)
			}
			if start.Hour() != tt.startHour || start.Minute() != tt.startMin {
				t.Errorf("start = %02d:%02d, expected %02d:%02d",
					start.Hour(), start.Minute(), tt.startHour, tt.startMin)
			}
			if end.Hour() != tt.endHour || end.Minute() != tt.endMin {
				t.Errorf("end = %02d:%02d, expected %02d:%02d",
					end.Hour(), end.Minute(), tt.endHour, tt.endMin)
			}
		})
	}
}
