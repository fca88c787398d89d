package systems

import (
	"log"

	"github.com/automoto/streetbrawl/components"
	"github.com/automoto/streetbrawl/shared/gamemath"
	"github.com/automoto/streetbrawl/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// pushOverlap is set while the space reports overlapping push boxes. The
// constraint pass should never leave one behind.
var pushOverlap bool

// UpdateSpace mirrors the fighters' boxes into the resolv space, then uses it
// to check that no push boxes overlap.
func UpdateSpace(ecs *ecs.ECS) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		f := components.Fighter.Get(e)
		boxes := components.BoxObjects.Get(e)

		syncObject(components.Object.Get(e).Object, f.PushBox())
		for i, hurt := range f.HurtBoxes() {
			syncObject(boxes.Hurt[i], hurt)
		}

		hit, active := f.HitBox()
		switch {
		case active && boxes.Hit.Space == nil:
			space.Add(boxes.Hit)
		case !active && boxes.Hit.Space != nil:
			space.Remove(boxes.Hit)
		}
		if active {
			syncObject(boxes.Hit, hit)
		}
	})

	overlap := false
	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e).Object
		check := obj.Check(0, 0, tags.ResolvPush)
		if check == nil {
			return
		}
		for _, other := range check.ObjectsByTags(tags.ResolvPush) {
			if gamemath.RectsOverlap(objectRect(obj), objectRect(other)) {
				overlap = true
			}
		}
	})
	if overlap && !pushOverlap {
		log.Printf("Warning: fighter push boxes overlap")
	}
	pushOverlap = overlap
}

func syncObject(obj *resolv.Object, r gamemath.Rect) {
	obj.X, obj.Y, obj.W, obj.H = r.X, r.Y, r.W, r.H
	if obj.Space != nil {
		obj.Update()
	}
}

func objectRect(obj *resolv.Object) gamemath.Rect {
	return gamemath.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
}
