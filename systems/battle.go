package systems

import (
	"github.com/yohamta/donburi/ecs"
)

// IsBattleOver reports whether either fighter has been knocked out.
func IsBattleOver(e *ecs.ECS) bool {
	b, ok := getBattle(e)
	if !ok {
		return false
	}
	for _, f := range b.Score.Fighters {
		if f.KnockedOut() {
			return true
		}
	}
	return false
}
