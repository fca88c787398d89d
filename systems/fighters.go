package systems

import (
	"log"

	"github.com/automoto/streetbrawl/components"
	cfg "github.com/automoto/streetbrawl/config"
	"github.com/automoto/streetbrawl/fighter"
	"github.com/automoto/streetbrawl/systems/factory"
	"github.com/automoto/streetbrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFighters advances the battle clock and runs one frame for both
// fighters. Attacks that land are queued on the battle for UpdateHits.
func UpdateFighters(ecs *ecs.ECS) {
	b, ok := getBattle(ecs)
	if !ok {
		return
	}
	input := getOrCreateInput(ecs)

	b.Time = b.Clock.Tick()
	controls := [2]fighter.Controls{&input.Players[0], &input.Players[1]}
	b.Pair.Update(b.Time, controls, cameraView(ecs))

	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		f := components.Fighter.Get(e)
		state := components.State.Get(e)
		if f.State() != state.CurrentState {
			state.PreviousState = state.CurrentState
			state.CurrentState = f.State()
			state.StateTimer = 0
			return
		}
		state.StateTimer++
	})
}

// UpdateHits charges queued attacks to the battle and triggers their
// feedback: hit splash, hurt flash, shake on heavy hits and a sound.
func UpdateHits(ecs *ecs.ECS) {
	b, ok := getBattle(ecs)
	if !ok || len(b.PendingHits) == 0 {
		return
	}
	settings := GetOrCreateSettings(ecs)

	for _, hit := range b.PendingHits {
		damage := b.Score.ApplyHit(hit.AttackerSlot, hit.TargetSlot, hit.Strength)
		if settings.Debug {
			log.Printf("P%d %s %s hit P%d %s for %d", hit.AttackerSlot+1, hit.Strength, hit.Type,
				hit.TargetSlot+1, hit.Location, damage)
		}

		factory.SpawnHitSplash(ecs, hit.Position, hit.Strength)
		if target, ok := fighterEntry(ecs, hit.TargetSlot); ok {
			TriggerHurtFlash(target)
		}
		if hit.Strength == cfg.StrengthHeavy {
			TriggerScreenShake(ecs, cfg.ScreenShake.HeavyIntensity, cfg.ScreenShake.Duration)
		}
		PlaySFX(ecs, cfg.HitSound(hit.Strength))
	}
	b.PendingHits = b.PendingHits[:0]
}
