package ecs

// StorageStats summarises the contents of a storage.
type StorageStats struct {
	EntityCount int
	ColumnCount int
	LiveBorrows int
	Columns     []ColumnStats
}

// ColumnStats describes one column.
type ColumnStats struct {
	Name    string
	Len     int
	Present int
	Borrow  string
}

// CollectStats gathers statistics about the storage.
func (s *Storage) CollectStats() StorageStats {
	stats := StorageStats{
		EntityCount: s.entities,
		ColumnCount: len(s.ordered),
		LiveBorrows: s.live,
		Columns:     make([]ColumnStats, 0, len(s.ordered)),
	}

	for _, col := range s.ordered {
		stats.Columns = append(stats.Columns, ColumnStats{
			Name:    col.kind().String(),
			Len:     col.len(),
			Present: col.present(),
			Borrow:  col.state().String(),
		})
	}

	return stats
}

// Inspect returns every component of entity e, keyed by kind name. It does
// not borrow any column and must not be called while a column is borrowed
// mutably.
func (s *Storage) Inspect(e Entity) map[string]any {
	components := make(map[string]any)
	for _, col := range s.ordered {
		if col.state().writer {
			panic(wrapf(ErrBorrowConflict, "inspect entity %d while %s is borrowed mutably", e, col.kind()))
		}
		if v, ok := col.value(int(e)); ok {
			components[col.kind().String()] = v
		}
	}
	return components
}
