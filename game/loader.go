package game

import (
	"github.com/goccy/go-json"
	"github.com/plus3/oxide/ecs"
	"github.com/rotisserie/eris"
)

// Level is the decoded form of a level file.
type Level struct {
	Map      int                 `json:"map"`
	Entities [][]ComponentRecord `json:"entities"`
}

// ComponentRecord is one component of an entity in a level file. Type picks
// the component; the other fields are read as that component needs them.
type ComponentRecord struct {
	Type string `json:"type"`
	X    int    `json:"x,omitempty"`
	Y    int    `json:"y,omitempty"`
	W    int    `json:"w,omitempty"`
	H    int    `json:"h,omitempty"`
	ID   int    `json:"id,omitempty"`
	Val  int    `json:"val,omitempty"`
}

// Component returns the component value described by r. Unknown types are a
// broken level and panic.
func (r ComponentRecord) Component() any {
	switch r.Type {
	case "pos":
		return Pos{X: r.X, Y: r.Y}
	case "vel":
		return Vel{X: r.X, Y: r.Y}
	case "spr":
		return Spr(r.ID)
	case "player":
		return Player{}
	case "collider":
		return Collider{W: r.W, H: r.H}
	case "health":
		return Health(r.Val)
	case "healthmod":
		return HealthMod{Health: r.Val}
	case "follow":
		return Follow(r.ID)
	case "push":
		return Push{}
	}
	panic(eris.Wrapf(ecs.ErrUnknownComponent, "level component type %q", r.Type))
}

// ParseLevel decodes a level file.
func ParseLevel(data []byte) (*Level, error) {
	var level Level
	if err := json.Unmarshal(data, &level); err != nil {
		return nil, eris.Wrap(err, "failed to decode level")
	}
	return &level, nil
}

// EntitySpawner creates entities from builders.
type EntitySpawner interface {
	Entity(build func(b *ecs.EntityBuilder)) ecs.Entity
}

// Spawn creates the level's entities in file order, so entity indices used
// by follow components match their position in the file.
func (l *Level) Spawn(s EntitySpawner) {
	for _, records := range l.Entities {
		s.Entity(func(b *ecs.EntityBuilder) {
			for _, record := range records {
				b.With(record.Component())
			}
		})
	}
}

// LoadLevel decodes a level file into s and returns the id of its map.
func LoadLevel(s EntitySpawner, data []byte) (int, error) {
	level, err := ParseLevel(data)
	if err != nil {
		return 0, err
	}
	level.Spawn(s)
	return level.Map, nil
}
