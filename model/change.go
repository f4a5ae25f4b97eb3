package model

// TaxiwayChangeKind identifies the kind of a taxiway-level change.
type TaxiwayChangeKind int

const (
	TaxiwayAdded TaxiwayChangeKind = iota
	TaxiwayRemoved
	TaxiwayRenamed
)

func (k TaxiwayChangeKind) String() string {
	switch k {
	case TaxiwayAdded:
		return "ADDED"
	case TaxiwayRemoved:
		return "REMOVED"
	case TaxiwayRenamed:
		return "RENAMED"
	default:
		return "UNKNOWN"
	}
}

// RunwayChangeKind identifies the kind of a runway-level change.
type RunwayChangeKind int

const (
	RunwayAdded RunwayChangeKind = iota
	RunwayRemoved
	LengthChanged
	WidthChanged
)

func (k RunwayChangeKind) String() string {
	switch k {
	case RunwayAdded:
		return "RUNWAY_ADDED"
	case RunwayRemoved:
		return "RUNWAY_REMOVED"
	case LengthChanged:
		return "LENGTH_CHANGED"
	case WidthChanged:
		return "WIDTH_CHANGED"
	default:
		return "UNKNOWN"
	}
}

// GeometryChangeKind identifies the direction of a coarse geometry change.
type GeometryChangeKind int

const (
	GeometryAdded GeometryChangeKind = iota
	GeometryRemoved
)

func (k GeometryChangeKind) String() string {
	switch k {
	case GeometryAdded:
		return "GEOMETRY_ADDED"
	case GeometryRemoved:
		return "GEOMETRY_REMOVED"
	default:
		return "UNKNOWN"
	}
}

// TaxiwayChange is a detected taxiway-level difference between two snapshots.
type TaxiwayChange struct {
	Kind          TaxiwayChangeKind
	Designator    string // The designator after the change
	OldDesignator string // Set for RENAMED and REMOVED
	X             float64
	Y             float64
	Description   string
}

// RunwayChange is a detected runway-level difference between two snapshots.
// Dimension fields are zero when unknown (added/removed runways carry zeros
// on the absent side).
type RunwayChange struct {
	Kind        RunwayChangeKind
	Designator  string // Canonical designator, e.g. "4L/22R"
	OldLength   int
	NewLength   int
	OldWidth    int
	NewWidth    int
	OldX, OldY  float64
	NewX, NewY  float64
	Description string
}

// GeometryChange is a coarse geometry difference. At most one change of each
// kind is emitted per comparison.
type GeometryChange struct {
	Kind        GeometryChangeKind
	X, Y        float64 // Approximate position; zero for count-based changes
	Description string
}

// Summary holds the per-kind counts for one comparison.
type Summary struct {
	TotalChanges         int `json:"total_changes"`
	TaxiwaysAdded        int `json:"taxiways_added"`
	TaxiwaysRemoved      int `json:"taxiways_removed"`
	TaxiwaysRenamed      int `json:"taxiways_renamed"`
	RunwayChanges        int `json:"runway_changes"`
	RunwayLengthChanges  int `json:"runway_length_changes"`
	RunwayWidthChanges   int `json:"runway_width_changes"`
	GeometryChanges      int `json:"geometry_changes"`
	OldLabelCount        int `json:"old_label_count"`
	NewLabelCount        int `json:"new_label_count"`
	OldUniqueDesignators int `json:"old_unique_designators"`
	NewUniqueDesignators int `json:"new_unique_designators"`
	OldRunwayCount       int `json:"old_runway_count"`
	NewRunwayCount       int `json:"new_runway_count"`
}

// Rect is a flat (x0, y0, x1, y1) rectangle used by the legacy change list.
type Rect [4]float64

// FlatChange exposes any change through a uniform shape for consumers that
// predate the typed model.
type FlatChange struct {
	ChangeType  string `json:"change_type"`
	Category    string `json:"category"` // "taxiway", "runway", or "geometry"
	OldText     string `json:"old_text"`
	NewText     string `json:"new_text"`
	OldPosition Rect   `json:"old_position"`
	NewPosition Rect   `json:"new_position"`
	Description string `json:"description"`
}

// ComparisonResult is the complete output of comparing two snapshots.
// It is built fresh per comparison and never mutated afterwards.
type ComparisonResult struct {
	AirportCode     string
	OldCycle        string
	NewCycle        string
	TaxiwayChanges  []TaxiwayChange
	RunwayChanges   []RunwayChange
	GeometryChanges []GeometryChange
	Summary         Summary
	Changes         []FlatChange // Flattened list for legacy consumers
}

// HasChanges reports whether the comparison found any difference.
func (r *ComparisonResult) HasChanges() bool {
	return len(r.TaxiwayChanges)+len(r.RunwayChanges)+len(r.GeometryChanges) > 0
}
