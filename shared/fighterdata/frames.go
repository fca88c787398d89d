package fighterdata

import (
	"github.com/automoto/streetbrawl/shared/gamemath"
	"github.com/yohamta/donburi/features/math"
)

// FrameBoxes is the geometry of a single animation frame. Boxes are
// fighter-local and stored as if the fighter faces right.
type FrameBoxes struct {
	Sprite gamemath.Rect // source rect on the sprite sheet
	Origin math.Vec2     // sprite pixel drawn at the fighter position
	Push   gamemath.Rect
	Hurt   [HurtCount]gamemath.Rect
	Hit    gamemath.Rect
}

func r(x, y, w, h float64) gamemath.Rect {
	return gamemath.Rect{X: x, Y: y, W: w, H: h}
}

var (
	pushIdle   = r(-16, -80, 32, 78)
	pushJump   = r(-16, -91, 32, 66)
	pushBend   = r(-16, -58, 32, 58)
	pushCrouch = r(-16, -50, 32, 50)

	hurtIdle     = [HurtCount]gamemath.Rect{r(-8, -88, 24, 16), r(-26, -74, 40, 42), r(-26, -31, 40, 32)}
	hurtBackward = [HurtCount]gamemath.Rect{r(-19, -88, 24, 16), r(-26, -74, 40, 42), r(-26, -31, 40, 32)}
	hurtForward  = [HurtCount]gamemath.Rect{r(-3, -88, 24, 16), r(-26, -74, 40, 42), r(-26, -31, 40, 32)}
	hurtJump     = [HurtCount]gamemath.Rect{r(-13, -106, 28, 18), r(-26, -90, 40, 42), r(-22, -66, 38, 18)}
	hurtBend     = [HurtCount]gamemath.Rect{r(-2, -68, 24, 18), r(-16, -53, 44, 24), r(-16, -24, 44, 24)}
	hurtCrouch   = [HurtCount]gamemath.Rect{r(6, -61, 24, 18), r(-16, -46, 44, 24), r(-16, -24, 44, 24)}
	hurtPunch    = [HurtCount]gamemath.Rect{r(11, -94, 24, 18), r(-7, -77, 40, 43), r(-7, -33, 40, 33)}
	hurtKick     = [HurtCount]gamemath.Rect{r(-33, -96, 30, 18), r(-41, -79, 42, 38), r(-32, -52, 44, 50)}
)

func frame(sx, sy, sw, sh, ox, oy float64, push gamemath.Rect, hurt [HurtCount]gamemath.Rect, hit gamemath.Rect) FrameBoxes {
	return FrameBoxes{
		Sprite: r(sx, sy, sw, sh),
		Origin: math.NewVec2(ox, oy),
		Push:   push,
		Hurt:   hurt,
		Hit:    hit,
	}
}

var noHit gamemath.Rect

// shotoFrames is the frame table shared by Ryu and Ken, who use the same
// move set and sprite sheet layout.
var shotoFrames = map[string]FrameBoxes{
	"idle-1": frame(75, 14, 60, 89, 34, 86, pushIdle, hurtIdle, noHit),
	"idle-2": frame(7, 15, 59, 90, 33, 87, pushIdle, hurtIdle, noHit),
	"idle-3": frame(277, 11, 58, 92, 32, 89, pushIdle, hurtIdle, noHit),
	"idle-4": frame(211, 10, 55, 93, 31, 90, pushIdle, hurtIdle, noHit),

	"forwards-1": frame(9, 136, 53, 83, 27, 81, pushIdle, hurtForward, noHit),
	"forwards-2": frame(78, 131, 60, 89, 35, 86, pushIdle, hurtForward, noHit),
	"forwards-3": frame(152, 128, 64, 92, 35, 89, pushIdle, hurtForward, noHit),
	"forwards-4": frame(229, 130, 63, 90, 29, 89, pushIdle, hurtForward, noHit),
	"forwards-5": frame(307, 128, 54, 91, 25, 89, pushIdle, hurtForward, noHit),
	"forwards-6": frame(371, 128, 50, 89, 25, 86, pushIdle, hurtForward, noHit),

	"backwards-1": frame(777, 128, 61, 87, 35, 85, pushIdle, hurtBackward, noHit),
	"backwards-2": frame(430, 124, 59, 90, 36, 87, pushIdle, hurtBackward, noHit),
	"backwards-3": frame(495, 124, 57, 90, 36, 88, pushIdle, hurtBackward, noHit),
	"backwards-4": frame(559, 124, 58, 90, 38, 89, pushIdle, hurtBackward, noHit),
	"backwards-5": frame(631, 125, 58, 91, 36, 88, pushIdle, hurtBackward, noHit),
	"backwards-6": frame(707, 126, 57, 89, 36, 87, pushIdle, hurtBackward, noHit),

	"jump-up-1": frame(67, 244, 56, 104, 32, 107, pushJump, hurtJump, noHit),
	"jump-up-2": frame(138, 233, 50, 89, 25, 103, pushJump, hurtJump, noHit),
	"jump-up-3": frame(197, 233, 54, 77, 25, 103, pushJump, hurtJump, noHit),
	"jump-up-4": frame(259, 240, 48, 70, 28, 101, pushJump, hurtJump, noHit),
	"jump-up-5": frame(319, 234, 48, 89, 25, 106, pushJump, hurtJump, noHit),
	"jump-up-6": frame(375, 244, 55, 109, 31, 113, pushJump, hurtJump, noHit),

	"jump-roll-1": frame(878, 121, 55, 103, 31, 113, pushJump, hurtJump, noHit),
	"jump-roll-2": frame(442, 261, 61, 78, 22, 90, pushJump, hurtJump, noHit),
	"jump-roll-3": frame(507, 259, 104, 42, 61, 76, pushJump, hurtJump, noHit),
	"jump-roll-4": frame(617, 240, 53, 82, 42, 111, pushJump, hurtJump, noHit),
	"jump-roll-5": frame(676, 257, 122, 44, 71, 81, pushJump, hurtJump, noHit),
	"jump-roll-6": frame(804, 258, 71, 87, 53, 98, pushJump, hurtJump, noHit),

	"jump-land": frame(7, 268, 55, 85, 29, 83, pushIdle, hurtIdle, noHit),

	"crouch-1": frame(551, 21, 53, 83, 27, 81, pushIdle, hurtIdle, noHit),
	"crouch-2": frame(611, 36, 57, 69, 25, 66, pushBend, hurtBend, noHit),
	"crouch-3": frame(679, 44, 61, 61, 25, 58, pushCrouch, hurtCrouch, noHit),

	"idle-turn-1": frame(348, 8, 54, 95, 29, 92, pushIdle, hurtIdle, noHit),
	"idle-turn-2": frame(414, 6, 58, 97, 30, 94, pushIdle, hurtIdle, noHit),
	"idle-turn-3": frame(486, 10, 54, 94, 27, 90, pushIdle, hurtIdle, noHit),

	"crouch-turn-1": frame(751, 46, 53, 61, 26, 58, pushCrouch, hurtCrouch, noHit),
	"crouch-turn-2": frame(816, 46, 52, 61, 27, 58, pushCrouch, hurtCrouch, noHit),
	"crouch-turn-3": frame(878, 46, 53, 61, 29, 58, pushCrouch, hurtCrouch, noHit),

	"light-punch-1": frame(9, 365, 64, 91, 23, 88, pushIdle, hurtIdle, noHit),
	"light-punch-2": frame(98, 365, 92, 91, 23, 88, pushIdle, hurtIdle, r(11, -85, 50, 18)),

	"med-punch-1": frame(6, 466, 60, 94, 28, 91, pushIdle, hurtIdle, noHit),
	"med-punch-2": frame(73, 466, 74, 94, 29, 91, pushIdle, hurtPunch, noHit),
	"med-punch-3": frame(155, 466, 108, 94, 24, 91, pushIdle, hurtPunch, r(12, -85, 52, 14)),

	"heavy-punch-1": frame(155, 466, 108, 94, 24, 91, pushIdle, hurtPunch, noHit),
	"heavy-punch-2": frame(272, 466, 67, 94, 29, 91, pushIdle, hurtPunch, noHit),
	"heavy-punch-3": frame(349, 466, 116, 94, 24, 91, pushIdle, hurtPunch, r(17, -85, 68, 14)),

	"light-kick-1": frame(87, 923, 66, 92, 46, 93, pushIdle, hurtIdle, noHit),
	"light-kick-2": frame(162, 922, 114, 94, 68, 95, pushIdle, hurtKick, r(-17, -98, 62, 28)),

	"med-kick-1": frame(162, 922, 114, 94, 68, 95, pushIdle, hurtKick, r(-18, -98, 66, 28)),
	"med-kick-2": frame(8, 922, 66, 94, 49, 96, pushIdle, hurtKick, noHit),

	"heavy-kick-1": frame(5, 1196, 61, 90, 37, 87, pushIdle, hurtKick, noHit),
	"heavy-kick-2": frame(72, 1192, 94, 94, 44, 91, pushIdle, hurtKick, r(15, -99, 40, 32)),
	"heavy-kick-3": frame(176, 1191, 120, 94, 42, 91, pushIdle, hurtKick, r(42, -99, 43, 32)),
	"heavy-kick-4": frame(306, 1208, 101, 77, 39, 78, pushIdle, hurtKick, noHit),
	"heavy-kick-5": frame(418, 1204, 64, 81, 39, 78, pushIdle, hurtKick, noHit),
}
