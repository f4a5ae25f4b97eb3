package diff

import (
	"fmt"

	"github.com/tsawler/chartwatch/model"
)

// geometryThreshold is the path-count delta above which a geometry change
// is reported. The comparison is strict: a delta of exactly this many
// segments is not significant.
const geometryThreshold = 50

// CompareGeometry diffs the retained path segments of two snapshots by
// count. Paths are not clustered into shapes; a large count swing is a
// coarse signal that taxiway or runway geometry was added or removed. At
// most one change is emitted per comparison.
func CompareGeometry(oldPaths, newPaths []model.PathSegment) []model.GeometryChange {
	delta := len(newPaths) - len(oldPaths)
	if abs(delta) <= geometryThreshold {
		return nil
	}

	if delta > 0 {
		return []model.GeometryChange{{
			Kind: model.GeometryAdded,
			Description: fmt.Sprintf(
				"Approximately %d new path segments added (possible new taxiway geometry)", delta),
		}}
	}
	return []model.GeometryChange{{
		Kind: model.GeometryRemoved,
		Description: fmt.Sprintf(
			"Approximately %d path segments removed (possible taxiway removal)", -delta),
	}}
}
