package fighter

import (
	"fmt"

	"github.com/automoto/streetbrawl/shared/frametime"
	"github.com/automoto/streetbrawl/shared/gamemath"
)

// Pair holds the two fighters of a battle, indexed by player slot. A fighter
// reaches its opponent through the pair instead of holding it.
type Pair [2]*Fighter

// NewPair joins two fighters. a must be slot 0 and b slot 1.
func NewPair(a, b *Fighter) *Pair {
	if a.slot != 0 || b.slot != 1 {
		panic(fmt.Sprintf("fighter pair needs slots 0 and 1, got %d and %d", a.slot, b.slot))
	}
	p := &Pair{a, b}
	a.pair = p
	b.pair = p
	return p
}

// Update runs one frame for both fighters in slot order.
func (p *Pair) Update(t frametime.FrameTime, controls [2]Controls, camera gamemath.Rect) {
	for i, f := range p {
		f.Update(t, controls[i], camera)
	}
}
