package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/streetbrawl/config"
	"github.com/automoto/streetbrawl/fighter"
	"github.com/automoto/streetbrawl/fonts"
	"github.com/automoto/streetbrawl/scenes"
	"github.com/automoto/streetbrawl/shared/fighterdata"
	"github.com/automoto/streetbrawl/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(p1, p2 *fighterdata.Character) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewBattleScene(g, p1, p2)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func mustCharacter(name string) *fighterdata.Character {
	c, ok := fighterdata.CharacterByName(name)
	if !ok {
		log.Fatalf("Unknown character %q", name)
	}
	return c
}

func main() {
	debug := flag.Bool("debug", config.Debug.Enabled, "show boxes, states and input methods")
	humanP2 := flag.Bool("p2", config.Debug.HumanP2, "let a second player control the right fighter")
	seed := flag.Uint64("seed", config.Debug.Seed, "seed for hit jitter, 0 picks a random one")
	p1Name := flag.String("p1char", "RYU", "character for player one")
	p2Name := flag.String("p2char", "KEN", "character for player two")
	flag.Parse()

	config.Debug.Enabled = *debug
	config.Debug.HumanP2 = *humanP2
	config.Debug.Seed = *seed

	// Bad frame data would only show up mid fight, so refuse to start
	if err := fighterdata.ValidateAll(); err != nil {
		log.Fatalf("Invalid fighter data: %v", err)
	}
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowTitle("Street Brawl")
	ebiten.SetWindowSize(config.C.Width*config.C.WindowScale, config.C.Height*config.C.WindowScale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}
	fighter.SetVerbose(config.Debug.Enabled)

	if err := ebiten.RunGame(NewGame(mustCharacter(*p1Name), mustCharacter(*p2Name))); err != nil {
		log.Fatal(err)
	}
}
