package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/streetbrawl/assets"
	"github.com/automoto/streetbrawl/components"
	cfg "github.com/automoto/streetbrawl/config"
	"github.com/automoto/streetbrawl/shared/fighterdata"
	"github.com/automoto/streetbrawl/systems"
	"github.com/automoto/streetbrawl/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger is implemented by the game to swap the active scene.
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// BattleScene runs one fight between two characters on the configured stage.
type BattleScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	characters   [2]*fighterdata.Character
	once         sync.Once
}

// NewBattleScene creates a battle between the given characters.
func NewBattleScene(sc SceneChanger, p1, p2 *fighterdata.Character) *BattleScene {
	return &BattleScene{
		sceneChanger: sc,
		characters:   [2]*fighterdata.Character{p1, p2},
	}
}

func (bs *BattleScene) Update() {
	bs.once.Do(bs.configure)
	bs.ecs.Update()

	// After a knockout, Enter starts a fresh fight with the same characters
	if systems.IsBattleOver(bs.ecs) && inpututil.IsKeyJustPressed(cfg.Input.Rematch) {
		bs.sceneChanger.ChangeScene(NewBattleScene(bs.sceneChanger, bs.characters[0], bs.characters[1]))
	}
}

func (bs *BattleScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if bs.ecs == nil {
		return
	}
	bs.ecs.Draw(screen)
}

func (bs *BattleScene) configure() {
	// Render sounds up front so the first hit does not stall
	systems.PreloadAllSFX()

	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateAudio)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateFighters)
	ecs.AddSystem(systems.UpdateHits)
	ecs.AddSystem(systems.UpdateSpace)
	ecs.AddSystem(systems.UpdateShadows)
	ecs.AddSystem(systems.UpdateEffects)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateStatusBar)

	ecs.AddRenderer(cfg.Default, systems.DrawStageBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawShadows)
	ecs.AddRenderer(cfg.Default, systems.DrawFighters)
	ecs.AddRenderer(cfg.Default, systems.DrawEffects)
	ecs.AddRenderer(cfg.Default, systems.DrawStageForeground)
	ecs.AddRenderer(cfg.Default, systems.DrawStatusBar)
	ecs.AddRenderer(cfg.Default, systems.DrawFPS)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	bs.ecs = ecs

	stage := assets.MustLoadStage(cfg.Stage.Path)

	spaceEntry := factory.CreateSpace(bs.ecs, int(stage.Width), int(stage.Height), cfg.Stage.CellSize, cfg.Stage.CellSize)
	space := components.Space.Get(spaceEntry)

	factory.CreateStage(bs.ecs, space, stage)
	factory.CreateCamera(bs.ecs, cfg.Camera.StartX, cfg.Camera.StartY)
	factory.CreateBattle(bs.ecs, space, stage, bs.characters)
}
