package diff

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/tsawler/chartwatch/model"
)

// NormalizeDesignator returns the canonical form of a runway designator for
// comparison: dash and slash forms are unified, the end with the lower
// heading number comes first, and suffix letters are preserved. Inputs that
// do not split into exactly two ends are returned uppercased as-is.
//
//	NormalizeDesignator("22R-4L") == NormalizeDesignator("4L/22R") == "4L/22R"
func NormalizeDesignator(designator string) string {
	d := strings.ReplaceAll(designator, "-", "/")

	parts := strings.Split(d, "/")
	if len(parts) != 2 {
		return strings.ToUpper(d)
	}

	if headingNumber(parts[0]) > headingNumber(parts[1]) {
		parts[0], parts[1] = parts[1], parts[0]
	}

	return strings.ToUpper(parts[0]) + "/" + strings.ToUpper(parts[1])
}

// headingNumber extracts the digits of one runway end as a number. Suffix
// letters (L/C/R) are dropped for the comparison key only.
func headingNumber(end string) int {
	var digits strings.Builder
	for _, r := range end {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}
	n, _ := strconv.Atoi(digits.String())
	return n
}

// CompareRunways diffs the runway records of two snapshots.
//
// Records are keyed by canonical designator; entries normalizing to the
// empty string or "UNKNOWN" are excluded from matching. A dimension change
// is reported only when both the old and new values are strictly positive:
// zero means "unknown", never a real change.
func CompareRunways(oldRunways, newRunways []model.RunwayRecord) []model.RunwayChange {
	var changes []model.RunwayChange

	oldByDesignator := runwayIndex(oldRunways)
	newByDesignator := runwayIndex(newRunways)

	for _, designator := range sortedKeys(newByDesignator) {
		if _, ok := oldByDesignator[designator]; ok {
			continue
		}
		rwy := newByDesignator[designator]
		changes = append(changes, model.RunwayChange{
			Kind:       model.RunwayAdded,
			Designator: designator,
			NewLength:  rwy.LengthFt,
			NewWidth:   rwy.WidthFt,
			NewX:       rwy.X,
			NewY:       rwy.Y,
			Description: fmt.Sprintf("New runway %s: %d x %d ft",
				designator, rwy.LengthFt, rwy.WidthFt),
		})
	}

	for _, designator := range sortedKeys(oldByDesignator) {
		if _, ok := newByDesignator[designator]; ok {
			continue
		}
		rwy := oldByDesignator[designator]
		changes = append(changes, model.RunwayChange{
			Kind:       model.RunwayRemoved,
			Designator: designator,
			OldLength:  rwy.LengthFt,
			OldWidth:   rwy.WidthFt,
			OldX:       rwy.X,
			OldY:       rwy.Y,
			Description: fmt.Sprintf("Runway %s removed (was %d x %d ft)",
				designator, rwy.LengthFt, rwy.WidthFt),
		})
	}

	for _, designator := range sortedKeys(newByDesignator) {
		oldRwy, ok := oldByDesignator[designator]
		if !ok {
			continue
		}
		newRwy := newByDesignator[designator]

		if oldRwy.LengthFt != newRwy.LengthFt && oldRwy.LengthFt > 0 && newRwy.LengthFt > 0 {
			delta := newRwy.LengthFt - oldRwy.LengthFt
			direction := "extended"
			if delta < 0 {
				direction = "shortened"
			}
			changes = append(changes, dimensionChange(model.LengthChanged, designator, oldRwy, newRwy,
				fmt.Sprintf("Runway %s %s by %d ft (%d → %d ft)",
					designator, direction, abs(delta), oldRwy.LengthFt, newRwy.LengthFt)))
		}

		if oldRwy.WidthFt != newRwy.WidthFt && oldRwy.WidthFt > 0 && newRwy.WidthFt > 0 {
			delta := newRwy.WidthFt - oldRwy.WidthFt
			direction := "widened"
			if delta < 0 {
				direction = "narrowed"
			}
			changes = append(changes, dimensionChange(model.WidthChanged, designator, oldRwy, newRwy,
				fmt.Sprintf("Runway %s %s by %d ft (%d → %d ft wide)",
					designator, direction, abs(delta), oldRwy.WidthFt, newRwy.WidthFt)))
		}
	}

	return changes
}

// runwayIndex maps canonical designators to records, excluding entries with
// no usable designator. Raw records keep their sentinel designators; only
// the lookup skips them.
func runwayIndex(runways []model.RunwayRecord) map[string]model.RunwayRecord {
	index := make(map[string]model.RunwayRecord, len(runways))
	for _, rwy := range runways {
		norm := NormalizeDesignator(rwy.Designator)
		if norm == "" || norm == "UNKNOWN" {
			continue
		}
		index[norm] = rwy
	}
	return index
}

func dimensionChange(kind model.RunwayChangeKind, designator string, oldRwy, newRwy model.RunwayRecord, description string) model.RunwayChange {
	return model.RunwayChange{
		Kind:        kind,
		Designator:  designator,
		OldLength:   oldRwy.LengthFt,
		NewLength:   newRwy.LengthFt,
		OldWidth:    oldRwy.WidthFt,
		NewWidth:    newRwy.WidthFt,
		OldX:        oldRwy.X,
		OldY:        oldRwy.Y,
		NewX:        newRwy.X,
		NewY:        newRwy.Y,
		Description: description,
	}
}

func sortedKeys(m map[string]model.RunwayRecord) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
