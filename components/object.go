package components

import (
	"github.com/automoto/streetbrawl/shared/fighterdata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()

// BoxObjectsData mirrors a fighter's collision boxes into the resolv space.
// Object holds the push box.
type BoxObjectsData struct {
	Hurt [fighterdata.HurtCount]*resolv.Object
	Hit  *resolv.Object
}

var BoxObjects = donburi.NewComponentType[BoxObjectsData]()
