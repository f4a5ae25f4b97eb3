package diff

import (
	"fmt"

	"github.com/tsawler/chartwatch/model"
)

// Compare diffs two snapshots and aggregates the result. It reads both
// snapshots without mutating them and always produces a (possibly empty)
// result; already-validated snapshot data cannot fail to compare.
func Compare(oldSnap, newSnap *model.Snapshot) *model.ComparisonResult {
	taxiwayChanges := CompareTaxiways(oldSnap.TaxiwayLabels, newSnap.TaxiwayLabels)
	runwayChanges := CompareRunways(oldSnap.Runways, newSnap.Runways)
	geometryChanges := CompareGeometry(oldSnap.Paths, newSnap.Paths)

	result := &model.ComparisonResult{
		AirportCode:     newSnap.AirportCode,
		OldCycle:        oldSnap.Cycle,
		NewCycle:        newSnap.Cycle,
		TaxiwayChanges:  taxiwayChanges,
		RunwayChanges:   runwayChanges,
		GeometryChanges: geometryChanges,
	}
	result.Summary = buildSummary(oldSnap, newSnap, result)
	result.Changes = flatten(result)

	return result
}

func buildSummary(oldSnap, newSnap *model.Snapshot, r *model.ComparisonResult) model.Summary {
	s := model.Summary{
		TotalChanges:         len(r.TaxiwayChanges) + len(r.RunwayChanges) + len(r.GeometryChanges),
		RunwayChanges:        len(r.RunwayChanges),
		GeometryChanges:      len(r.GeometryChanges),
		OldLabelCount:        len(oldSnap.TaxiwayLabels),
		NewLabelCount:        len(newSnap.TaxiwayLabels),
		OldUniqueDesignators: len(oldSnap.UniqueDesignators()),
		NewUniqueDesignators: len(newSnap.UniqueDesignators()),
		OldRunwayCount:       len(oldSnap.Runways),
		NewRunwayCount:       len(newSnap.Runways),
	}

	for _, c := range r.TaxiwayChanges {
		switch c.Kind {
		case model.TaxiwayAdded:
			s.TaxiwaysAdded++
		case model.TaxiwayRemoved:
			s.TaxiwaysRemoved++
		case model.TaxiwayRenamed:
			s.TaxiwaysRenamed++
		}
	}
	for _, c := range r.RunwayChanges {
		switch c.Kind {
		case model.LengthChanged:
			s.RunwayLengthChanges++
		case model.WidthChanged:
			s.RunwayWidthChanges++
		}
	}

	return s
}

// flatten exposes every change through the uniform legacy shape. Taxiway
// entries carry a nominal 10x10 box on the side where the label exists;
// runway and geometry entries never carried positions in the legacy list.
func flatten(r *model.ComparisonResult) []model.FlatChange {
	flat := make([]model.FlatChange, 0,
		len(r.TaxiwayChanges)+len(r.RunwayChanges)+len(r.GeometryChanges))

	for _, c := range r.TaxiwayChanges {
		box := model.Rect{c.X, c.Y, c.X + 10, c.Y + 10}
		entry := model.FlatChange{
			ChangeType:  c.Kind.String(),
			Category:    "taxiway",
			OldText:     c.OldDesignator,
			NewText:     c.Designator,
			Description: c.Description,
		}
		if c.Kind == model.TaxiwayRemoved {
			entry.OldPosition = box
		} else {
			entry.NewPosition = box
		}
		flat = append(flat, entry)
	}

	for _, c := range r.RunwayChanges {
		flat = append(flat, model.FlatChange{
			ChangeType:  c.Kind.String(),
			Category:    "runway",
			OldText:     fmt.Sprintf("%d x %d", c.OldLength, c.OldWidth),
			NewText:     fmt.Sprintf("%d x %d", c.NewLength, c.NewWidth),
			Description: c.Description,
		})
	}

	for _, c := range r.GeometryChanges {
		flat = append(flat, model.FlatChange{
			ChangeType:  c.Kind.String(),
			Category:    "geometry",
			Description: c.Description,
		})
	}

	return flat
}
