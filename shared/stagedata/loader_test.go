package stagedata

import (
	"errors"
	"image/color"
	"os"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/automoto/streetbrawl/shared/fighterdata"
)

const testStage = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="4" tilewidth="8" tileheight="8" infinite="0">
 <objectgroup id="1" name="Stage">
  <object id="1" name="bounds" x="8" y="0" width="64" height="32"/>
  <object id="2" name="floor" x="0" y="24" width="80" height="8"/>
 </objectgroup>
 <objectgroup id="2" name="FighterSpawn">
  <object id="3" name="b" x="50" y="24">
   <properties>
    <property name="slot" type="int" value="1"/>
    <property name="facing" value="left"/>
   </properties>
  </object>
  <object id="4" name="a" x="20" y="24">
   <properties>
    <property name="slot" type="int" value="0"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="3" name="Foreground">
  <object id="5" name="rail" x="0" y="28" width="80" height="4">
   <properties>
    <property name="color" value="#102030"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="4" name="Background">
  <object id="6" name="near" x="0" y="0" width="80" height="24">
   <properties>
    <property name="color" value="#80ff0000"/>
   </properties>
  </object>
  <object id="7" name="far" x="0" y="0" width="80" height="24">
   <properties>
    <property name="color" value="#ff0000ff"/>
    <property name="parallax" type="float" value="0.5"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{"stages/dock.tmx": {Data: []byte(testStage)}}

	s, err := Load(fsys, "stages/dock.tmx")
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != "dock" || s.Width != 80 || s.Height != 32 {
		t.Errorf("stage = %q %vx%v", s.Name, s.Width, s.Height)
	}
	if s.Bounds.X != 8 || s.Bounds.W != 64 || s.Floor != 24 {
		t.Errorf("bounds = %+v floor = %v", s.Bounds, s.Floor)
	}
	if s.Spawns[0] != (Spawn{X: 20, Y: 24, Facing: fighterdata.Right}) {
		t.Errorf("spawn 0 = %+v", s.Spawns[0])
	}
	if s.Spawns[1] != (Spawn{X: 50, Y: 24, Facing: fighterdata.Left}) {
		t.Errorf("spawn 1 = %+v", s.Spawns[1])
	}

	var names []string
	for _, l := range s.Layers {
		names = append(names, l.Name)
	}
	if got := strings.Join(names, ","); got != "far,near,rail" {
		t.Errorf("layer order = %s", got)
	}
	if !s.Layers[2].Foreground || s.Layers[1].Foreground {
		t.Error("foreground flag not set from the object group")
	}
	if s.Layers[1].Parallax != 1 || s.Layers[0].Parallax != 0.5 {
		t.Errorf("parallax = %v, %v", s.Layers[0].Parallax, s.Layers[1].Parallax)
	}
	if s.Layers[2].Color != (color.RGBA{0x10, 0x20, 0x30, 0xff}) {
		t.Errorf("rail color = %v", s.Layers[2].Color)
	}
	if s.Layers[1].Color != (color.RGBA{0xff, 0, 0, 0x80}) {
		t.Errorf("near color = %v", s.Layers[1].Color)
	}
}

func TestLoadRejectsIncompleteStages(t *testing.T) {
	tests := []struct {
		name   string
		remove string
		want   error
	}{
		{"no bounds", `<object id="1" name="bounds" x="8" y="0" width="64" height="32"/>`, ErrNoBounds},
		{"no floor", `<object id="2" name="floor" x="0" y="24" width="80" height="8"/>`, ErrNoFloor},
		{"no spawn", `<property name="slot" type="int" value="1"/>`, ErrMissingSpawn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := strings.Replace(testStage, tt.remove, "", 1)
			if tt.want == ErrMissingSpawn {
				// Without a slot property the spawn falls back to slot 0.
				data = strings.Replace(testStage, tt.remove, `<property name="slot" type="int" value="0"/>`, 1)
			}
			fsys := fstest.MapFS{"s.tmx": {Data: []byte(data)}}
			_, err := Load(fsys, "s.tmx")
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadRejectsBadProperties(t *testing.T) {
	tests := map[string][2]string{
		"slot":     {`value="1"/>`, `value="5"/>`},
		"facing":   {`value="left"`, `value="up"`},
		"color":    {`value="#102030"`, `value="#1020"`},
		"parallax": {`value="0.5"`, `value="far"`},
	}
	for name, swap := range tests {
		t.Run(name, func(t *testing.T) {
			data := strings.Replace(testStage, swap[0], swap[1], 1)
			fsys := fstest.MapFS{"s.tmx": {Data: []byte(data)}}
			if _, err := Load(fsys, "s.tmx"); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestCameraLimits(t *testing.T) {
	s := &Stage{}
	s.Bounds.X, s.Bounds.W = 100, 768
	left, right := s.CameraLimits(384)
	if left != 100 || right != 484 {
		t.Errorf("limits = %v, %v", left, right)
	}
	left, right = s.CameraLimits(1000)
	if left != 100 || right != 100 {
		t.Errorf("wide viewport limits = %v, %v", left, right)
	}
}

func TestShippedStages(t *testing.T) {
	stages, names, err := LoadAll(os.DirFS("../../assets"), "stages")
	if err != nil {
		t.Fatal(err)
	}
	if len(names) == 0 || names[0] != "ken" {
		t.Fatalf("names = %v", names)
	}
	ken := stages["ken"]
	if ken.Floor != fighterdata.StageFloor {
		t.Errorf("floor = %v, want %v", ken.Floor, fighterdata.StageFloor)
	}
	for slot := range 2 {
		x, dir := fighterdata.StartPosition(slot)
		if ken.Spawns[slot].X != x || ken.Spawns[slot].Facing != dir {
			t.Errorf("slot %d spawn = %+v, want x %v facing %s", slot, ken.Spawns[slot], x, dir)
		}
	}
	left, right := ken.CameraLimits(384)
	if left != fighterdata.StagePadding || right != fighterdata.StageWidth+fighterdata.StagePadding-384 {
		t.Errorf("camera limits = %v, %v", left, right)
	}
}
