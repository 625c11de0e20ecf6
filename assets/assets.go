// Package assets embeds the level files and tile maps shipped with the game.
package assets

import (
	"embed"
	"fmt"

	"github.com/plus3/oxide/game"
)

//go:embed levels/*.json levels/*.dat
var files embed.FS

var (
	levelFiles = []string{"levels/level1.json", "levels/level2.json"}
	mapFiles   = []string{"levels/level1.dat", "levels/level2.dat"}
)

// Catalog returns the levels and maps in play order.
func Catalog() game.Catalog {
	return game.Catalog{
		Levels: mustReadAll(levelFiles),
		Maps:   mustReadAll(mapFiles),
	}
}

func mustReadAll(names []string) [][]byte {
	out := make([][]byte, len(names))
	for i, name := range names {
		data, err := files.ReadFile(name)
		if err != nil {
			panic(fmt.Sprintf("embedded asset %s: %v", name, err))
		}
		out[i] = data
	}
	return out
}
