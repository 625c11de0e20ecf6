package debugui

import (
	"fmt"
	"sort"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/oxide/ecs"
)

// SystemTimings lists every system with its execution statistics.
type SystemTimings struct {
	sortColumn    int
	sortAscending bool
}

func NewSystemTimings() *SystemTimings {
	return &SystemTimings{sortAscending: true}
}

func (st *SystemTimings) Render(stats *ecs.SchedulerStats) {
	if !imgui.BeginV("Systems", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Systems: %d", stats.SystemCount))
	imgui.Text(fmt.Sprintf("Ticks: %d", stats.Ticks))
	imgui.Text(fmt.Sprintf("Executions: %d", stats.TotalExecutions))
	imgui.Separator()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable
	if imgui.BeginTableV("SystemTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Order")
		imgui.TableSetupColumn("System")
		imgui.TableSetupColumn("Last")
		imgui.TableSetupColumn("Avg")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			st.sortColumn = int(spec.ColumnIndex())
			st.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sortSpecs.SetSpecsDirty(false)
		}

		for _, row := range st.rows(stats) {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", row.order))
			imgui.TableNextColumn()
			imgui.Text(row.Name)
			imgui.TableNextColumn()
			imgui.Text(row.LastDuration.String())
			imgui.TableNextColumn()
			imgui.Text(row.AvgDuration.String())
		}

		imgui.EndTable()
	}

	imgui.End()
}

type systemRow struct {
	ecs.SystemStats
	order int
}

func (st *SystemTimings) rows(stats *ecs.SchedulerStats) []systemRow {
	rows := make([]systemRow, len(stats.Systems))
	for i, s := range stats.Systems {
		rows[i] = systemRow{SystemStats: s, order: i}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		var less bool

		switch st.sortColumn {
		case 1:
			less = a.Name < b.Name
		case 2:
			less = a.LastDuration < b.LastDuration
		case 3:
			less = a.AvgDuration < b.AvgDuration
		default:
			less = a.order < b.order
		}

		if !st.sortAscending {
			return !less
		}
		return less
	})
	return rows
}
