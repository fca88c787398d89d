package factory

import (
	"math/rand/v2"

	"github.com/automoto/streetbrawl/archetypes"
	"github.com/automoto/streetbrawl/components"
	cfg "github.com/automoto/streetbrawl/config"
	"github.com/automoto/streetbrawl/fighter"
	"github.com/automoto/streetbrawl/shared/battle"
	"github.com/automoto/streetbrawl/shared/fighterdata"
	"github.com/automoto/streetbrawl/shared/frametime"
	"github.com/automoto/streetbrawl/shared/stagedata"
	"github.com/automoto/streetbrawl/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBattle spawns both fighters on the stage and the battle singleton
// that owns them. Landed attacks are queued on the battle entry.
func CreateBattle(ecs *ecs.ECS, space *resolv.Space, stage *stagedata.Stage, characters [2]*fighterdata.Character) *donburi.Entry {
	entry := archetypes.Battle.Spawn(ecs)

	onHit := func(ev fighter.AttackEvent) {
		b := components.Battle.Get(entry)
		b.PendingHits = append(b.PendingHits, ev)
	}

	var fighters [2]*fighter.Fighter
	for slot, c := range characters {
		f := fighter.New(slot, c, onHit)
		spawn := stage.Spawns[slot]
		f.SetFloor(stage.Floor)
		f.SetPosition(spawn.X, spawn.Y)
		f.SetDirection(spawn.Facing)
		if cfg.Debug.Seed != 0 {
			f.SetRand(rand.New(rand.NewPCG(cfg.Debug.Seed, uint64(slot))))
		}
		fighters[slot] = f
	}
	pair := fighter.NewPair(fighters[0], fighters[1])

	components.Battle.SetValue(entry, components.BattleData{
		Pair:        pair,
		Clock:       frametime.NewClock(cfg.C.TPS),
		Score:       battle.New(characters[0], characters[1]),
		PendingHits: make([]fighter.AttackEvent, 0, 2),
	})

	for _, f := range fighters {
		fe := CreateFighter(ecs, space, f)
		CreateShadow(ecs, fe)
	}
	return entry
}

// CreateFighter wraps a fighter in an entity and mirrors its boxes into the
// space.
func CreateFighter(ecs *ecs.ECS, space *resolv.Space, f *fighter.Fighter) *donburi.Entry {
	entry := archetypes.Fighter.Spawn(ecs)
	components.Fighter.SetValue(entry, components.FighterData{Fighter: f})

	push := f.PushBox()
	obj := resolv.NewObject(push.X, push.Y, push.W, push.H, tags.ResolvPush)
	obj.Data = entry
	space.Add(obj)
	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	var boxes components.BoxObjectsData
	for i, hurt := range f.HurtBoxes() {
		o := resolv.NewObject(hurt.X, hurt.Y, hurt.W, hurt.H, tags.ResolvHurt)
		o.Data = entry
		space.Add(o)
		boxes.Hurt[i] = o
	}
	boxes.Hit = resolv.NewObject(0, 0, 0, 0, tags.ResolvHit)
	boxes.Hit.Data = entry
	components.BoxObjects.SetValue(entry, boxes)

	components.State.SetValue(entry, components.StateData{
		CurrentState:  f.State(),
		PreviousState: fighterdata.StateNone,
	})
	components.HealthBar.SetValue(entry, components.HealthBarData{
		Displayed: battle.MaxHitPoints,
		Target:    battle.MaxHitPoints,
	})

	// Initialize Flash component (permanently attached to avoid archetype thrashing)
	components.Flash.SetValue(entry, components.FlashData{
		Duration: 0,
		R:        1, G: 1, B: 1,
	})

	return entry
}

func CreateShadow(ecs *ecs.ECS, owner *donburi.Entry) *donburi.Entry {
	shadow := archetypes.Shadow.Spawn(ecs)
	f := components.Fighter.Get(owner)
	components.Shadow.SetValue(shadow, components.ShadowData{
		Owner: owner,
		X:     f.Position().X,
		Y:     f.Floor(),
		Scale: 1,
	})
	return shadow
}
