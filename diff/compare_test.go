package diff

import (
	"testing"

	"github.com/tsawler/chartwatch/model"
)

func snap(cycle string, labels []model.TaxiwayLabel, runways []model.RunwayRecord, pathCount int) *model.Snapshot {
	return &model.Snapshot{
		AirportCode:   "JFK",
		Cycle:         cycle,
		TaxiwayLabels: labels,
		Runways:       runways,
		Paths:         paths(pathCount),
	}
}

func TestCompareSelfIsEmpty(t *testing.T) {
	s := snap("2602",
		[]model.TaxiwayLabel{label("A", 100, 100), label("B", 200, 200)},
		[]model.RunwayRecord{runway("4L/22R", 14572, 150)},
		120,
	)

	result := Compare(s, s)

	if result.HasChanges() {
		t.Errorf("self-comparison reported changes: %+v", result)
	}
	if result.Summary.TotalChanges != 0 {
		t.Errorf("summary total = %d, want 0", result.Summary.TotalChanges)
	}
	if len(result.Changes) != 0 {
		t.Errorf("flattened list has %d entries, want 0", len(result.Changes))
	}
}

func TestCompareEndToEnd(t *testing.T) {
	oldSnap := snap("2601",
		[]model.TaxiwayLabel{label("A", 100, 100), label("Z", 50, 50)},
		[]model.RunwayRecord{runway("10/28", 7200, 150)},
		100,
	)
	newSnap := snap("2602",
		[]model.TaxiwayLabel{label("A", 100, 100), label("Y", 100, 200)},
		[]model.RunwayRecord{runway("10/28", 7499, 150)},
		151,
	)

	result := Compare(oldSnap, newSnap)

	if result.AirportCode != "JFK" || result.OldCycle != "2601" || result.NewCycle != "2602" {
		t.Errorf("result key = %s %s->%s, want JFK 2601->2602",
			result.AirportCode, result.OldCycle, result.NewCycle)
	}

	// "Y" added at (100, 200), "Z" removed; no label of a new-only
	// designator is within 15 units of Z's position, so no renames.
	if len(result.TaxiwayChanges) != 2 {
		t.Fatalf("got %d taxiway changes, want 2: %+v", len(result.TaxiwayChanges), result.TaxiwayChanges)
	}
	var sawAdded, sawRemoved bool
	for _, c := range result.TaxiwayChanges {
		switch c.Kind {
		case model.TaxiwayAdded:
			sawAdded = true
			if c.Designator != "Y" || c.X != 100 || c.Y != 200 {
				t.Errorf("ADDED = %+v, want Y at (100, 200)", c)
			}
		case model.TaxiwayRemoved:
			sawRemoved = true
			if c.Designator != "Z" {
				t.Errorf("REMOVED = %+v, want Z", c)
			}
		case model.TaxiwayRenamed:
			t.Errorf("unexpected RENAMED: %+v", c)
		}
	}
	if !sawAdded || !sawRemoved {
		t.Error("expected one ADDED and one REMOVED")
	}

	if len(result.RunwayChanges) != 1 {
		t.Fatalf("got %d runway changes, want 1", len(result.RunwayChanges))
	}
	rc := result.RunwayChanges[0]
	if rc.Kind != model.LengthChanged || rc.Description == "" {
		t.Errorf("runway change = %+v, want LENGTH_CHANGED", rc)
	}

	if len(result.GeometryChanges) != 1 || result.GeometryChanges[0].Kind != model.GeometryAdded {
		t.Fatalf("geometry changes = %+v, want one GEOMETRY_ADDED (delta 51)", result.GeometryChanges)
	}

	s := result.Summary
	if s.TotalChanges != 4 {
		t.Errorf("total changes = %d, want 4", s.TotalChanges)
	}
	if s.TaxiwaysAdded != 1 || s.TaxiwaysRemoved != 1 || s.TaxiwaysRenamed != 0 {
		t.Errorf("taxiway summary = %d/%d/%d, want 1/1/0", s.TaxiwaysAdded, s.TaxiwaysRemoved, s.TaxiwaysRenamed)
	}
	if s.RunwayChanges != 1 || s.RunwayLengthChanges != 1 || s.RunwayWidthChanges != 0 {
		t.Errorf("runway summary = %d/%d/%d, want 1/1/0", s.RunwayChanges, s.RunwayLengthChanges, s.RunwayWidthChanges)
	}
	if s.OldLabelCount != 2 || s.NewLabelCount != 2 {
		t.Errorf("label counts = %d/%d, want 2/2", s.OldLabelCount, s.NewLabelCount)
	}
	if s.OldUniqueDesignators != 2 || s.NewUniqueDesignators != 2 {
		t.Errorf("unique designators = %d/%d, want 2/2", s.OldUniqueDesignators, s.NewUniqueDesignators)
	}
	if s.OldRunwayCount != 1 || s.NewRunwayCount != 1 {
		t.Errorf("runway counts = %d/%d, want 1/1", s.OldRunwayCount, s.NewRunwayCount)
	}
}

func TestCompareFlattenedChanges(t *testing.T) {
	oldSnap := snap("2601",
		[]model.TaxiwayLabel{label("Z", 50, 50)},
		[]model.RunwayRecord{runway("10/28", 7200, 150)},
		0,
	)
	newSnap := snap("2602",
		[]model.TaxiwayLabel{label("Y", 100, 200)},
		[]model.RunwayRecord{runway("10/28", 7499, 150)},
		0,
	)

	result := Compare(oldSnap, newSnap)

	if len(result.Changes) != len(result.TaxiwayChanges)+len(result.RunwayChanges) {
		t.Fatalf("flattened count = %d, want %d",
			len(result.Changes), len(result.TaxiwayChanges)+len(result.RunwayChanges))
	}

	var zero model.Rect
	for _, c := range result.Changes {
		switch c.ChangeType {
		case "ADDED":
			if c.Category != "taxiway" || c.NewText != "Y" {
				t.Errorf("flat ADDED = %+v", c)
			}
			if c.NewPosition == zero {
				t.Error("flat ADDED should carry a new position box")
			}
			if c.OldPosition != zero {
				t.Error("flat ADDED should have a zero old position")
			}
			want := model.Rect{100, 200, 110, 210}
			if c.NewPosition != want {
				t.Errorf("flat ADDED position = %v, want %v", c.NewPosition, want)
			}
		case "REMOVED":
			if c.OldPosition == zero || c.NewPosition != zero {
				t.Errorf("flat REMOVED positions = %v/%v, want old box and zero new", c.OldPosition, c.NewPosition)
			}
		case "LENGTH_CHANGED":
			if c.Category != "runway" {
				t.Errorf("flat runway category = %q", c.Category)
			}
			if c.OldText != "7200 x 150" || c.NewText != "7499 x 150" {
				t.Errorf("flat runway texts = %q / %q", c.OldText, c.NewText)
			}
		default:
			t.Errorf("unexpected flat change type %q", c.ChangeType)
		}
	}
}

func TestCompareDoesNotMutateInputs(t *testing.T) {
	oldSnap := snap("2601", []model.TaxiwayLabel{label("A", 1, 1)}, nil, 10)
	newSnap := snap("2602", []model.TaxiwayLabel{label("B", 500, 500)}, nil, 10)

	Compare(oldSnap, newSnap)

	if len(oldSnap.TaxiwayLabels) != 1 || oldSnap.TaxiwayLabels[0].Designator != "A" {
		t.Error("Compare() mutated the old snapshot")
	}
	if len(newSnap.TaxiwayLabels) != 1 || newSnap.TaxiwayLabels[0].Designator != "B" {
		t.Error("Compare() mutated the new snapshot")
	}
}
