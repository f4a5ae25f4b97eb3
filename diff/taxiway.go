package diff

import (
	"fmt"
	"sort"

	"github.com/tsawler/chartwatch/model"
)

// locationThreshold is the distance in page units under which two label
// positions count as "the same location" for rename inference. Fixed, not
// configurable per call.
const locationThreshold = 15.0

// CompareTaxiways diffs the taxiway labels of two snapshots.
//
// A designator present in the new labels but not the old yields one ADDED
// change at its first occurrence, and symmetrically for REMOVED. A rename
// is inferred when an old label and a new label sit within
// locationThreshold of each other and neither designator appears on the
// other side at all; multiple proximate candidates yield multiple RENAMED
// records.
func CompareTaxiways(oldLabels, newLabels []model.TaxiwayLabel) []model.TaxiwayChange {
	var changes []model.TaxiwayChange

	oldDesignators := designatorSet(oldLabels)
	newDesignators := designatorSet(newLabels)

	for _, designator := range sortedDifference(newDesignators, oldDesignators) {
		if label, ok := firstOccurrence(newLabels, designator); ok {
			changes = append(changes, model.TaxiwayChange{
				Kind:        model.TaxiwayAdded,
				Designator:  designator,
				X:           label.X,
				Y:           label.Y,
				Description: fmt.Sprintf("New taxiway '%s' added", designator),
			})
		}
	}

	for _, designator := range sortedDifference(oldDesignators, newDesignators) {
		if label, ok := firstOccurrence(oldLabels, designator); ok {
			changes = append(changes, model.TaxiwayChange{
				Kind:          model.TaxiwayRemoved,
				Designator:    designator,
				OldDesignator: designator,
				X:             label.X,
				Y:             label.Y,
				Description:   fmt.Sprintf("Taxiway '%s' removed", designator),
			})
		}
	}

	for _, oldLabel := range oldLabels {
		for _, newLabel := range newLabels {
			if oldLabel.Position().Distance(newLabel.Position()) >= locationThreshold {
				continue
			}
			if oldLabel.Designator == newLabel.Designator {
				continue
			}
			if newDesignators[oldLabel.Designator] || oldDesignators[newLabel.Designator] {
				continue
			}

			changes = append(changes, model.TaxiwayChange{
				Kind:          model.TaxiwayRenamed,
				Designator:    newLabel.Designator,
				OldDesignator: oldLabel.Designator,
				X:             newLabel.X,
				Y:             newLabel.Y,
				Description: fmt.Sprintf("Taxiway renamed from '%s' to '%s'",
					oldLabel.Designator, newLabel.Designator),
			})
		}
	}

	return changes
}

func designatorSet(labels []model.TaxiwayLabel) map[string]bool {
	set := make(map[string]bool, len(labels))
	for _, l := range labels {
		set[l.Designator] = true
	}
	return set
}

// sortedDifference returns the designators in a but not in b, sorted for
// deterministic output. Only membership is contractual; stable order keeps
// reports and tests reproducible.
func sortedDifference(a, b map[string]bool) []string {
	var out []string
	for designator := range a {
		if !b[designator] {
			out = append(out, designator)
		}
	}
	sort.Strings(out)
	return out
}

// firstOccurrence returns the first label in list order carrying the
// designator.
func firstOccurrence(labels []model.TaxiwayLabel, designator string) (model.TaxiwayLabel, bool) {
	for _, l := range labels {
		if l.Designator == designator {
			return l, true
		}
	}
	return model.TaxiwayLabel{}, false
}
