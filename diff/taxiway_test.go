package diff

import (
	"testing"

	"github.com/tsawler/chartwatch/model"
)

func label(designator string, x, y float64) model.TaxiwayLabel {
	return model.TaxiwayLabel{Designator: designator, X: x, Y: y}
}

func countKind(changes []model.TaxiwayChange, kind model.TaxiwayChangeKind) int {
	n := 0
	for _, c := range changes {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

func TestCompareTaxiwaysAdded(t *testing.T) {
	oldLabels := []model.TaxiwayLabel{label("A", 10, 10)}
	newLabels := []model.TaxiwayLabel{label("A", 10, 10), label("Y", 100, 200)}

	changes := CompareTaxiways(oldLabels, newLabels)

	if len(changes) != 1 {
		t.Fatalf("got %d changes, want 1: %+v", len(changes), changes)
	}
	c := changes[0]
	if c.Kind != model.TaxiwayAdded || c.Designator != "Y" {
		t.Errorf("change = %+v, want ADDED Y", c)
	}
	if c.X != 100 || c.Y != 200 {
		t.Errorf("position = (%v, %v), want (100, 200)", c.X, c.Y)
	}
	if c.Description != "New taxiway 'Y' added" {
		t.Errorf("description = %q", c.Description)
	}
}

func TestCompareTaxiwaysAddedFirstOccurrencePosition(t *testing.T) {
	newLabels := []model.TaxiwayLabel{
		label("Q", 300, 400),
		label("Q", 700, 800),
	}

	changes := CompareTaxiways(nil, newLabels)

	if len(changes) != 1 {
		t.Fatalf("got %d changes, want 1 (one ADDED per designator)", len(changes))
	}
	if changes[0].X != 300 || changes[0].Y != 400 {
		t.Errorf("position = (%v, %v), want first occurrence (300, 400)", changes[0].X, changes[0].Y)
	}
}

func TestCompareTaxiwaysRemovedNoNearbyRename(t *testing.T) {
	// "Z" disappears and nothing new sits near its old position: exactly
	// one REMOVED, zero RENAMED.
	oldLabels := []model.TaxiwayLabel{label("Z", 50, 50), label("A", 500, 500)}
	newLabels := []model.TaxiwayLabel{label("A", 500, 500)}

	changes := CompareTaxiways(oldLabels, newLabels)

	if len(changes) != 1 {
		t.Fatalf("got %d changes, want 1: %+v", len(changes), changes)
	}
	c := changes[0]
	if c.Kind != model.TaxiwayRemoved || c.Designator != "Z" || c.OldDesignator != "Z" {
		t.Errorf("change = %+v, want REMOVED Z", c)
	}
	if c.X != 50 || c.Y != 50 {
		t.Errorf("position = (%v, %v), want (50, 50)", c.X, c.Y)
	}
}

func TestCompareTaxiwaysRename(t *testing.T) {
	// A rename shows up three ways: the old designator is REMOVED, the new
	// one is ADDED, and the proximity heuristic reports the RENAMED link.
	oldLabels := []model.TaxiwayLabel{label("A", 100, 100)}
	newLabels := []model.TaxiwayLabel{label("B", 105, 105)}

	changes := CompareTaxiways(oldLabels, newLabels)

	if got := countKind(changes, model.TaxiwayAdded); got != 1 {
		t.Errorf("ADDED count = %d, want 1", got)
	}
	if got := countKind(changes, model.TaxiwayRemoved); got != 1 {
		t.Errorf("REMOVED count = %d, want 1", got)
	}
	if got := countKind(changes, model.TaxiwayRenamed); got != 1 {
		t.Errorf("RENAMED count = %d, want 1", got)
	}

	for _, c := range changes {
		if c.Kind != model.TaxiwayRenamed {
			continue
		}
		if c.OldDesignator != "A" || c.Designator != "B" {
			t.Errorf("rename = %q -> %q, want A -> B", c.OldDesignator, c.Designator)
		}
		if c.X != 105 || c.Y != 105 {
			t.Errorf("rename position = (%v, %v), want new label position (105, 105)", c.X, c.Y)
		}
		if c.Description != "Taxiway renamed from 'A' to 'B'" {
			t.Errorf("description = %q", c.Description)
		}
	}
}

func TestCompareTaxiwaysRenameThresholdStrict(t *testing.T) {
	// Distance exactly at the threshold does not read as a rename.
	oldLabels := []model.TaxiwayLabel{label("A", 0, 0)}
	newLabels := []model.TaxiwayLabel{label("B", 15, 0)}

	changes := CompareTaxiways(oldLabels, newLabels)

	if got := countKind(changes, model.TaxiwayRenamed); got != 0 {
		t.Errorf("RENAMED count = %d, want 0 at distance exactly 15", got)
	}

	// Just inside the threshold it does.
	newLabels = []model.TaxiwayLabel{label("B", 14.9, 0)}
	changes = CompareTaxiways(oldLabels, newLabels)
	if got := countKind(changes, model.TaxiwayRenamed); got != 1 {
		t.Errorf("RENAMED count = %d, want 1 at distance 14.9", got)
	}
}

func TestCompareTaxiwaysRenameNotEmittedForSurvivors(t *testing.T) {
	// "A" still exists elsewhere in the new diagram, so a nearby "B" is
	// not a rename of it.
	oldLabels := []model.TaxiwayLabel{label("A", 100, 100)}
	newLabels := []model.TaxiwayLabel{label("A", 600, 600), label("B", 102, 102)}

	changes := CompareTaxiways(oldLabels, newLabels)

	if got := countKind(changes, model.TaxiwayRenamed); got != 0 {
		t.Errorf("RENAMED count = %d, want 0 when old designator survives", got)
	}
}

func TestCompareTaxiwaysDuplicateRenameEmission(t *testing.T) {
	// Documented property: rename detection is not a one-to-one match.
	// Two old "A" occurrences near two new "B" occurrences produce four
	// RENAMED records for what is physically one rename.
	oldLabels := []model.TaxiwayLabel{label("A", 100, 100), label("A", 105, 105)}
	newLabels := []model.TaxiwayLabel{label("B", 102, 102), label("B", 107, 107)}

	changes := CompareTaxiways(oldLabels, newLabels)

	if got := countKind(changes, model.TaxiwayRenamed); got != 4 {
		t.Errorf("RENAMED count = %d, want 4 (duplicate emission is preserved behavior)", got)
	}
}

func TestCompareTaxiwaysNoChanges(t *testing.T) {
	labels := []model.TaxiwayLabel{label("A", 100, 100), label("B", 200, 200)}

	// Positions moving does not matter as long as designators survive.
	moved := []model.TaxiwayLabel{label("A", 110, 110), label("B", 400, 400)}

	if changes := CompareTaxiways(labels, moved); len(changes) != 0 {
		t.Errorf("got %d changes for cosmetic repositioning, want 0: %+v", len(changes), changes)
	}
}

func TestCompareTaxiwaysPartition(t *testing.T) {
	// Every designator only in new appears exactly once in ADDED and never
	// in REMOVED, and vice versa.
	oldLabels := []model.TaxiwayLabel{
		label("A", 1, 1), label("B", 2, 2), label("C", 3, 3),
	}
	newLabels := []model.TaxiwayLabel{
		label("B", 2, 2), label("C", 3, 3), label("D", 400, 400), label("E", 500, 500),
	}

	changes := CompareTaxiways(oldLabels, newLabels)

	added := map[string]int{}
	removed := map[string]int{}
	for _, c := range changes {
		switch c.Kind {
		case model.TaxiwayAdded:
			added[c.Designator]++
		case model.TaxiwayRemoved:
			removed[c.Designator]++
		}
	}

	if len(added) != 2 || added["D"] != 1 || added["E"] != 1 {
		t.Errorf("added = %v, want exactly D and E once each", added)
	}
	if len(removed) != 1 || removed["A"] != 1 {
		t.Errorf("removed = %v, want exactly A once", removed)
	}
	for designator := range added {
		if removed[designator] > 0 {
			t.Errorf("designator %s in both ADDED and REMOVED", designator)
		}
	}
}
