package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/oxide/ecs"
)

type EntityInfo struct {
	ID             ecs.Entity
	ComponentTypes []string
}

// EntityBrowser lists entities with the kinds of the components they hold.
// Entities without any component are the remains of dead ones and are
// listed like every other entity.
type EntityBrowser struct {
	entities           []EntityInfo
	selectedEntity     ecs.Entity
	hasSelection       bool
	filterText         string
	maxEntitiesPerPage int
	currentPage        int
	sortColumn         int
	sortAscending      bool
}

func NewEntityBrowser(maxEntitiesPerPage int) *EntityBrowser {
	return &EntityBrowser{
		maxEntitiesPerPage: maxEntitiesPerPage,
		sortAscending:      true,
	}
}

// Selected returns the entity picked in the table, if any.
func (eb *EntityBrowser) Selected() (ecs.Entity, bool) {
	return eb.selectedEntity, eb.hasSelection
}

// Select picks e as if it were clicked in the table.
func (eb *EntityBrowser) Select(e ecs.Entity) {
	eb.selectedEntity = e
	eb.hasSelection = true
}

// SetFilter sets the search text.
func (eb *EntityBrowser) SetFilter(text string) {
	eb.filterText = text
	eb.currentPage = 0
}

func (eb *EntityBrowser) Render(src Source) {
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	eb.Refresh(src)

	imgui.InputTextWithHint("##search", "Search...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.SetFilter("")
	}

	filteredEntities := eb.Filtered()
	totalPages := (len(filteredEntities) + eb.maxEntitiesPerPage - 1) / eb.maxEntitiesPerPage
	if eb.currentPage >= totalPages {
		eb.currentPage = 0
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 3, tableFlags, imgui.NewVec2(0, -30), 0) {
		imgui.TableSetupColumn("Entity")
		imgui.TableSetupColumn("Components")
		imgui.TableSetupColumn("Count")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			eb.sortColumn = int(spec.ColumnIndex())
			eb.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			eb.sortEntities()
			sortSpecs.SetSpecsDirty(false)
		}

		startIdx := eb.currentPage * eb.maxEntitiesPerPage
		endIdx := min(startIdx+eb.maxEntitiesPerPage, len(filteredEntities))

		for i := startIdx; i < endIdx; i++ {
			entity := filteredEntities[i]
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := eb.hasSelection && eb.selectedEntity == entity.ID
			if imgui.SelectableBoolV(fmt.Sprintf("%d", entity.ID), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.Select(entity.ID)
			}

			imgui.TableNextColumn()
			imgui.Text(strings.Join(entity.ComponentTypes, ", "))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", len(entity.ComponentTypes)))
		}

		imgui.EndTable()
	}

	if totalPages > 1 {
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.currentPage+1, totalPages, len(filteredEntities)))
		imgui.SameLine()
		if imgui.Button("Prev") && eb.currentPage > 0 {
			eb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && eb.currentPage < totalPages-1 {
			eb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d entities", len(filteredEntities)))
	}

	imgui.End()
}

// Refresh rebuilds the entity list from src. Components come and go between
// ticks, so the list is rebuilt every frame.
func (eb *EntityBrowser) Refresh(src Source) {
	eb.entities = eb.entities[:0]

	for i := 0; i < src.Len(); i++ {
		e := ecs.Entity(i)
		components := src.Inspect(e)

		componentTypes := make([]string, 0, len(components))
		for name := range components {
			componentTypes = append(componentTypes, name)
		}
		sort.Strings(componentTypes)

		eb.entities = append(eb.entities, EntityInfo{
			ID:             e,
			ComponentTypes: componentTypes,
		})
	}

	eb.sortEntities()
}

func (eb *EntityBrowser) sortEntities() {
	sort.SliceStable(eb.entities, func(i, j int) bool {
		a, b := eb.entities[i], eb.entities[j]
		var less bool

		switch eb.sortColumn {
		case 1:
			less = strings.Join(a.ComponentTypes, ",") < strings.Join(b.ComponentTypes, ",")
		case 2:
			less = len(a.ComponentTypes) < len(b.ComponentTypes)
		default:
			less = a.ID < b.ID
		}

		if !eb.sortAscending {
			return !less
		}
		return less
	})
}

// Filtered returns the entities matching the search text by index or by
// component kind.
func (eb *EntityBrowser) Filtered() []EntityInfo {
	if eb.filterText == "" {
		return eb.entities
	}

	filtered := make([]EntityInfo, 0, len(eb.entities))
	filterLower := strings.ToLower(eb.filterText)

	for _, entity := range eb.entities {
		idStr := fmt.Sprintf("%d", entity.ID)
		componentsStr := strings.ToLower(strings.Join(entity.ComponentTypes, " "))

		if !strings.Contains(idStr, filterLower) && !strings.Contains(componentsStr, filterLower) {
			continue
		}

		filtered = append(filtered, entity)
	}

	return filtered
}
