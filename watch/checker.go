package watch

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tsawler/chartwatch/airports"
	"github.com/tsawler/chartwatch/diff"
	"github.com/tsawler/chartwatch/fetch"
	"github.com/tsawler/chartwatch/model"
	"github.com/tsawler/chartwatch/snapshot"
)

// SnapshotSource provides extraction snapshots per airport and cycle. A
// source should return an error wrapping snapshot.ErrNotFound or
// fetch.ErrNotAvailable when the cycle has no snapshot and never will;
// FindLastChange stops its backwards walk on those.
type SnapshotSource interface {
	Snapshot(ctx context.Context, airportCode, cycle string) (*model.Snapshot, error)
}

// SourceFunc adapts a function to the SnapshotSource interface.
type SourceFunc func(ctx context.Context, airportCode, cycle string) (*model.Snapshot, error)

func (f SourceFunc) Snapshot(ctx context.Context, airportCode, cycle string) (*model.Snapshot, error) {
	return f(ctx, airportCode, cycle)
}

// StoreSource serves snapshots straight from an on-disk store.
func StoreSource(store *snapshot.Store) SnapshotSource {
	return SourceFunc(func(_ context.Context, airportCode, cycle string) (*model.Snapshot, error) {
		return store.Load(airportCode, cycle)
	})
}

// Checker runs comparisons for airports using snapshots from Source.
type Checker struct {
	// Source supplies snapshots per airport and cycle.
	Source SnapshotSource

	// Concurrency bounds the parallel airport sweeps in CheckAll.
	Concurrency int

	log *zap.Logger
}

// NewChecker returns a Checker with the default sweep concurrency of 4.
// A nil logger disables logging.
func NewChecker(source SnapshotSource, log *zap.Logger) *Checker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Checker{Source: source, Concurrency: 4, log: log}
}

// Check compares one airport's snapshots between two cycles.
func (c *Checker) Check(ctx context.Context, airportCode, oldCycle, newCycle string) (*model.ComparisonResult, error) {
	oldSnap, err := c.Source.Snapshot(ctx, airportCode, oldCycle)
	if err != nil {
		return nil, fmt.Errorf("%s cycle %s: %w", airportCode, oldCycle, err)
	}
	newSnap, err := c.Source.Snapshot(ctx, airportCode, newCycle)
	if err != nil {
		return nil, fmt.Errorf("%s cycle %s: %w", airportCode, newCycle, err)
	}

	result := diff.Compare(oldSnap, newSnap)
	c.log.Info("compared cycles",
		zap.String("airport", airportCode),
		zap.String("old_cycle", oldCycle),
		zap.String("new_cycle", newCycle),
		zap.Int("total_changes", result.Summary.TotalChanges))
	return result, nil
}

// Outcome is the result of checking one airport in a sweep.
type Outcome struct {
	AirportCode string
	Result      *model.ComparisonResult
	Err         error
}

// CheckAll compares every listed airport between the two cycles,
// running up to Concurrency airports in parallel. Outcomes keep the
// order of codes; per-airport failures land in Outcome.Err rather than
// aborting the sweep.
func (c *Checker) CheckAll(ctx context.Context, codes []string, oldCycle, newCycle string) []Outcome {
	outcomes := make([]Outcome, len(codes))

	g, ctx := errgroup.WithContext(ctx)
	limit := c.Concurrency
	if limit < 1 {
		limit = 1
	}
	g.SetLimit(limit)

	for i, code := range codes {
		i, code := i, code
		g.Go(func() error {
			result, err := c.Check(ctx, code, oldCycle, newCycle)
			if err != nil {
				c.log.Warn("check failed",
					zap.String("airport", code),
					zap.Error(err))
			}
			outcomes[i] = Outcome{AirportCode: code, Result: result, Err: err}
			return nil
		})
	}
	g.Wait()

	return outcomes
}

// LastChange describes the outcome of a backwards search through the
// cycle history.
type LastChange struct {
	Found           bool
	CurrentCycle    string
	LastChangeCycle string
	CyclesSearched  int
	Result          *model.ComparisonResult
}

// FindLastChange walks back from currentCycle one cycle at a time,
// comparing each older snapshot against the current one, until a
// comparison reports changes or maxCycles have been searched. The walk
// also stops quietly when a cycle's snapshot is not available, since
// older history is unreachable past a gap.
func (c *Checker) FindLastChange(ctx context.Context, airportCode, currentCycle string, maxCycles int) (*LastChange, error) {
	current, err := c.Source.Snapshot(ctx, airportCode, currentCycle)
	if err != nil {
		return nil, fmt.Errorf("%s current cycle %s: %w", airportCode, currentCycle, err)
	}

	search := &LastChange{CurrentCycle: currentCycle}
	cycle := currentCycle

	for search.CyclesSearched < maxCycles {
		cycle, err = airports.PreviousCycle(cycle)
		if err != nil {
			return nil, err
		}
		search.CyclesSearched++

		old, err := c.Source.Snapshot(ctx, airportCode, cycle)
		if err != nil {
			if errors.Is(err, snapshot.ErrNotFound) || errors.Is(err, fetch.ErrNotAvailable) {
				c.log.Info("cycle not available, stopping search",
					zap.String("airport", airportCode),
					zap.String("cycle", cycle))
				break
			}
			return nil, fmt.Errorf("%s cycle %s: %w", airportCode, cycle, err)
		}

		result := diff.Compare(old, current)
		if result.HasChanges() {
			c.log.Info("found last change",
				zap.String("airport", airportCode),
				zap.String("cycle", cycle),
				zap.Int("cycles_searched", search.CyclesSearched))
			search.Found = true
			search.LastChangeCycle = cycle
			search.Result = result
			return search, nil
		}
	}

	return search, nil
}
