package watch

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tsawler/chartwatch/model"
	"github.com/tsawler/chartwatch/snapshot"
)

func snapshotWith(code, cycle string, designators ...string) *model.Snapshot {
	labels := make([]model.TaxiwayLabel, len(designators))
	for i, d := range designators {
		labels[i] = model.TaxiwayLabel{Designator: d, X: float64(100 * i), Y: 50}
	}
	return &model.Snapshot{
		AirportCode:   code,
		Cycle:         cycle,
		PageWidth:     612,
		PageHeight:    792,
		TaxiwayLabels: labels,
	}
}

// mapSource serves snapshots from a map keyed "CODE/cycle".
type mapSource map[string]*model.Snapshot

func (m mapSource) Snapshot(_ context.Context, code, cycle string) (*model.Snapshot, error) {
	snap, ok := m[code+"/"+cycle]
	if !ok {
		return nil, fmt.Errorf("%s cycle %s: %w", code, cycle, snapshot.ErrNotFound)
	}
	return snap, nil
}

func TestCheck(t *testing.T) {
	source := mapSource{
		"JFK/2601": snapshotWith("JFK", "2601", "A", "B"),
		"JFK/2602": snapshotWith("JFK", "2602", "A", "B", "Y"),
	}
	c := NewChecker(source, zap.NewNop())

	result, err := c.Check(context.Background(), "JFK", "2601", "2602")
	require.NoError(t, err)
	assert.Equal(t, "JFK", result.AirportCode)
	assert.Equal(t, 1, result.Summary.TaxiwaysAdded)
	assert.True(t, result.HasChanges())
}

func TestCheckMissingSnapshot(t *testing.T) {
	source := mapSource{
		"JFK/2602": snapshotWith("JFK", "2602", "A"),
	}
	c := NewChecker(source, nil)

	_, err := c.Check(context.Background(), "JFK", "2601", "2602")
	require.Error(t, err)
	assert.ErrorIs(t, err, snapshot.ErrNotFound)
	assert.Contains(t, err.Error(), "2601")
}

func TestCheckAll(t *testing.T) {
	source := mapSource{
		"JFK/2601": snapshotWith("JFK", "2601", "A"),
		"JFK/2602": snapshotWith("JFK", "2602", "A", "Y"),
		"LGA/2601": snapshotWith("LGA", "2601", "C"),
		"LGA/2602": snapshotWith("LGA", "2602", "C"),
	}
	c := NewChecker(source, zap.NewNop())

	outcomes := c.CheckAll(context.Background(), []string{"JFK", "LGA", "EWR"}, "2601", "2602")
	require.Len(t, outcomes, 3)

	assert.Equal(t, "JFK", outcomes[0].AirportCode)
	require.NoError(t, outcomes[0].Err)
	assert.True(t, outcomes[0].Result.HasChanges())

	assert.Equal(t, "LGA", outcomes[1].AirportCode)
	require.NoError(t, outcomes[1].Err)
	assert.False(t, outcomes[1].Result.HasChanges())

	assert.Equal(t, "EWR", outcomes[2].AirportCode)
	assert.Error(t, outcomes[2].Err)
	assert.Nil(t, outcomes[2].Result)
}

func TestCheckAllBoundsConcurrency(t *testing.T) {
	var active, peak atomic.Int32

	source := SourceFunc(func(_ context.Context, code, cycle string) (*model.Snapshot, error) {
		n := active.Add(1)
		defer active.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		return snapshotWith(code, cycle, "A"), nil
	})

	c := NewChecker(source, nil)
	c.Concurrency = 1

	codes := []string{"JFK", "LGA", "EWR", "TEB"}
	c.CheckAll(context.Background(), codes, "2601", "2602")
	assert.LessOrEqual(t, peak.Load(), int32(1))
}

func TestFindLastChange(t *testing.T) {
	// Change happened going into 2602: cycles 2602 and 2603 match the
	// current diagram, 2601 does not.
	source := mapSource{
		"JFK/2603": snapshotWith("JFK", "2603", "A", "Y"),
		"JFK/2602": snapshotWith("JFK", "2602", "A", "Y"),
		"JFK/2601": snapshotWith("JFK", "2601", "A"),
	}
	c := NewChecker(source, zap.NewNop())

	search, err := c.FindLastChange(context.Background(), "JFK", "2603", 13)
	require.NoError(t, err)
	assert.True(t, search.Found)
	assert.Equal(t, "2603", search.CurrentCycle)
	assert.Equal(t, "2601", search.LastChangeCycle)
	assert.Equal(t, 2, search.CyclesSearched)
	require.NotNil(t, search.Result)
	assert.Equal(t, 1, search.Result.Summary.TaxiwaysAdded)
}

func TestFindLastChangeNoChanges(t *testing.T) {
	source := mapSource{
		"JFK/2603": snapshotWith("JFK", "2603", "A"),
		"JFK/2602": snapshotWith("JFK", "2602", "A"),
	}
	c := NewChecker(source, nil)

	// 2601 is unavailable, so the walk stops after one comparison.
	search, err := c.FindLastChange(context.Background(), "JFK", "2603", 13)
	require.NoError(t, err)
	assert.False(t, search.Found)
	assert.Empty(t, search.LastChangeCycle)
	assert.Equal(t, 2, search.CyclesSearched)
}

func TestFindLastChangeMaxCycles(t *testing.T) {
	calls := 0
	source := SourceFunc(func(_ context.Context, code, cycle string) (*model.Snapshot, error) {
		calls++
		return snapshotWith(code, cycle, "A"), nil
	})
	c := NewChecker(source, nil)

	search, err := c.FindLastChange(context.Background(), "JFK", "2610", 3)
	require.NoError(t, err)
	assert.False(t, search.Found)
	assert.Equal(t, 3, search.CyclesSearched)
	assert.Equal(t, 4, calls) // current + three historical
}

func TestFindLastChangeMissingCurrent(t *testing.T) {
	c := NewChecker(mapSource{}, nil)
	_, err := c.FindLastChange(context.Background(), "JFK", "2602", 13)
	require.Error(t, err)
	assert.ErrorIs(t, err, snapshot.ErrNotFound)
}
