package tags

import "github.com/yohamta/donburi"

var (
	Fighter   = donburi.NewTag().SetName("Fighter")
	Shadow    = donburi.NewTag().SetName("Shadow")
	HitSplash = donburi.NewTag().SetName("HitSplash")
	Stage     = donburi.NewTag().SetName("Stage")
)

// Resolv tags for collision box mirroring
const (
	ResolvPush  = "push"
	ResolvHurt  = "hurt"
	ResolvHit   = "hit"
	ResolvStage = "stage"
)
