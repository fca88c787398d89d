package stagedata

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/automoto/streetbrawl/shared/fighterdata"
	"github.com/automoto/streetbrawl/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

// Object group and object names read from stage maps.
const (
	groupStage      = "Stage"
	groupSpawns     = "FighterSpawn"
	groupBackground = "Background"
	groupForeground = "Foreground"

	objectBounds = "bounds"
	objectFloor  = "floor"
)

var (
	ErrNoBounds     = errors.New("stage has no bounds object")
	ErrNoFloor      = errors.New("stage has no floor object")
	ErrMissingSpawn = errors.New("stage is missing a fighter spawn")
)

// Load parses a TMX stage. It takes an fs.FS so callers can pass embed.FS or
// os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Stage, error) {
	stageMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	stage := &Stage{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  float64(stageMap.Width * stageMap.TileWidth),
		Height: float64(stageMap.Height * stageMap.TileHeight),
	}

	var haveBounds, haveFloor bool
	var haveSpawn [2]bool
	for _, og := range stageMap.ObjectGroups {
		switch og.Name {
		case groupStage:
			for _, o := range og.Objects {
				switch o.Name {
				case objectBounds:
					stage.Bounds = gamemath.Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
					haveBounds = true
				case objectFloor:
					stage.Floor = o.Y
					haveFloor = true
				}
			}

		case groupSpawns:
			for _, o := range og.Objects {
				slot := o.Properties.GetInt("slot")
				if slot < 0 || slot > 1 {
					return nil, fmt.Errorf("spawn %q: slot %d out of range", o.Name, slot)
				}
				facing, err := parseFacing(o.Properties.GetString("facing"))
				if err != nil {
					return nil, fmt.Errorf("spawn %q: %w", o.Name, err)
				}
				stage.Spawns[slot] = Spawn{X: o.X, Y: o.Y, Facing: facing}
				haveSpawn[slot] = true
			}

		case groupBackground, groupForeground:
			for _, o := range og.Objects {
				c, err := parseColor(o.Properties.GetString("color"))
				if err != nil {
					return nil, fmt.Errorf("layer %q: %w", o.Name, err)
				}
				parallax := 1.0
				if v := o.Properties.GetString("parallax"); v != "" {
					if parallax, err = strconv.ParseFloat(v, 64); err != nil {
						return nil, fmt.Errorf("layer %q: parallax: %w", o.Name, err)
					}
				}
				stage.Layers = append(stage.Layers, Layer{
					Name:       o.Name,
					Rect:       gamemath.Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
					Color:      c,
					Parallax:   parallax,
					Foreground: og.Name == groupForeground,
				})
			}
		}
	}

	if !haveBounds {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoBounds)
	}
	if !haveFloor {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoFloor)
	}
	for slot, ok := range haveSpawn {
		if !ok {
			return nil, fmt.Errorf("%s: slot %d: %w", tmxPath, slot, ErrMissingSpawn)
		}
	}

	// Background layers draw farthest first
	sort.SliceStable(stage.Layers, func(i, j int) bool {
		a, b := stage.Layers[i], stage.Layers[j]
		if a.Foreground != b.Foreground {
			return !a.Foreground
		}
		return a.Parallax < b.Parallax
	})

	return stage, nil
}

// LoadAll discovers all .tmx files in dir within fsys and returns the stages
// keyed by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, dir string) (map[string]*Stage, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	stages := make(map[string]*Stage, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		s, err := Load(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		stages[s.Name] = s
		names = append(names, s.Name)
	}

	sort.Strings(names)
	return stages, names, nil
}

func parseFacing(s string) (fighterdata.Direction, error) {
	switch s {
	case "left":
		return fighterdata.Left, nil
	case "right", "":
		return fighterdata.Right, nil
	}
	return 0, fmt.Errorf("unknown facing %q", s)
}

// parseColor reads Tiled's #RRGGBB or #AARRGGBB notation.
func parseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("bad color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	c := color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}
	if len(hex) == 8 {
		c.A = uint8(v >> 24)
	}
	return c, nil
}
