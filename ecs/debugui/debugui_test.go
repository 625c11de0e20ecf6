package debugui_test

import (
	"testing"

	"github.com/plus3/oxide/ecs"
	"github.com/plus3/oxide/ecs/debugui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type position struct {
	X, Y int
}

type body struct {
	Pos    position
	Tags   []string
	Owner  *position
	hidden int
}

type marker struct{}

func TestDescribeValue(t *testing.T) {
	assert.Equal(t, []string{"X: 1", "Y: 2"}, debugui.DescribeValue(position{X: 1, Y: 2}))
	assert.Equal(t, []string{"X: 3", "Y: 4"}, debugui.DescribeValue(&position{X: 3, Y: 4}))
	assert.Equal(t, []string{"7"}, debugui.DescribeValue(7))
	assert.Equal(t, []string{"(marker)"}, debugui.DescribeValue(marker{}))

	assert.Equal(t, []string{
		"Pos.X: 1",
		"Pos.Y: 0",
		"Tags: [2 items]",
		"Owner: nil",
	}, debugui.DescribeValue(body{Pos: position{X: 1}, Tags: []string{"a", "b"}, hidden: 9}))
}

func TestEntityBrowserFilter(t *testing.T) {
	w := ecs.NewWorld[struct{}]()
	ecs.Register[position](w)
	ecs.Register[marker](w)

	w.Spawn(position{})
	w.Spawn(position{}, marker{})
	w.Spawn()

	eb := debugui.NewEntityBrowser(10)
	eb.Refresh(w)
	require.Len(t, eb.Filtered(), 3)
	assert.Equal(t, []string{"debugui_test.marker", "debugui_test.position"}, eb.Filtered()[1].ComponentTypes)
	assert.Empty(t, eb.Filtered()[2].ComponentTypes)

	eb.SetFilter("MARKER")
	filtered := eb.Filtered()
	require.Len(t, filtered, 1)
	assert.Equal(t, ecs.Entity(1), filtered[0].ID)

	eb.SetFilter("2")
	filtered = eb.Filtered()
	require.Len(t, filtered, 1)
	assert.Equal(t, ecs.Entity(2), filtered[0].ID)

	_, ok := eb.Selected()
	assert.False(t, ok)
	eb.Select(2)
	selected, ok := eb.Selected()
	assert.True(t, ok)
	assert.Equal(t, ecs.Entity(2), selected)
}

func TestPerformanceStatsAverage(t *testing.T) {
	ps := debugui.NewPerformanceStats(4)
	for i := 0; i < 4; i++ {
		ps.Record(0.010)
	}
	assert.InDelta(t, 10.0, ps.AverageFrameTime(), 0.001)

	ps.Record(0.030)
	assert.InDelta(t, 15.0, ps.AverageFrameTime(), 0.001)
}
