package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jakecoffman/cp"
)

//go:embed *.json
var LevelsFS embed.FS

// Level is a tile grid plus entity placements. Tile and entity coordinates
// are in tiles with row 0 at the top; one tile is one world unit.
type Level struct {
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	Layers    [][]int     `json:"layers"`
	LayerMeta []LayerMeta `json:"layer_meta,omitempty"`
	Entities  []Entity    `json:"entities,omitempty"`
}

type LayerMeta struct {
	Physics bool `json:"physics"`
}

type Entity struct {
	Type  string         `json:"type"`
	X     int            `json:"x"`
	Y     int            `json:"y"`
	Props map[string]any `json:"props,omitempty"`
}

const (
	EntityPlayer     = "player"
	EntityEnemy      = "enemy"
	EntityBackground = "background"
)

// Load reads a level by base name, preferring levels/<name>.json on disk over
// the embedded copy.
func Load(name string) (*Level, error) {
	clean := cleanLevelName(name)
	data, err := os.ReadFile(filepath.Join("levels", clean))
	if err != nil {
		data, err = fs.ReadFile(LevelsFS, clean)
		if err != nil {
			return nil, fmt.Errorf("levels: read %s: %w", clean, err)
		}
	}
	return Parse(data)
}

// Parse decodes and checks a level document.
func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal: %w", err)
	}
	if lvl.Width <= 0 || lvl.Height <= 0 {
		return nil, fmt.Errorf("levels: invalid size %dx%d", lvl.Width, lvl.Height)
	}
	for i, layer := range lvl.Layers {
		if len(layer) != lvl.Width*lvl.Height {
			return nil, fmt.Errorf("levels: layer %d has %d tiles, want %d", i, len(layer), lvl.Width*lvl.Height)
		}
	}
	return &lvl, nil
}

func cleanLevelName(name string) string {
	s := filepath.ToSlash(strings.TrimSpace(name))
	s = strings.TrimPrefix(s, "levels/")
	if s == "" {
		s = "level1"
	}
	if !strings.HasSuffix(s, ".json") {
		s += ".json"
	}
	return s
}

// WorldPosition converts an entity's tile cell to the world-space centre of
// that cell.
func (l *Level) WorldPosition(e Entity) cp.Vector {
	return cp.Vector{X: float64(e.X) + 0.5, Y: float64(l.Height-e.Y) - 0.5}
}

// SpawnPosition returns the player placement, or the level centre when none
// exists.
func (l *Level) SpawnPosition() cp.Vector {
	if l == nil {
		return cp.Vector{}
	}
	for _, e := range l.Entities {
		if e.Type == EntityPlayer {
			return l.WorldPosition(e)
		}
	}
	return cp.Vector{X: float64(l.Width) / 2, Y: float64(l.Height) / 2}
}

// Prop reads a numeric property with a fallback.
func (e Entity) Prop(key string, fallback float64) float64 {
	if v, ok := e.Props[key].(float64); ok {
		return v
	}
	return fallback
}
