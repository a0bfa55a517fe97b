package game

import (
	"fmt"
	"math"
)

// Resolve applies the consequences of a frame's collision events to next,
// in place. prev supplies pre-collision reference positions: reflections
// recompute the bounced axis from where the ball was before integration,
// so the already-advanced position never compounds into the bounce.
//
// Events referencing unrelated entities may be resolved in any order.
// A brick slot that detection reported but resolution cannot find is a
// detection/resolution contract violation and panics.
func Resolve(cols []Collision, next *State, prev State) {
	for _, c := range cols {
		switch c.Kind {
		case CollisionBallWall:
			resolveWall(c.Wall, next, prev)
		case CollisionBallBrick:
			resolveBrick(c, next, prev)
		case CollisionBallPaddle:
			resolvePaddle(next, prev)
		case CollisionPowerupPaddle:
			resolveCatch(c.PID, next)
		}
	}
}

// reflectX mirrors the ball horizontally and recomputes x from the
// pre-integration position along the new heading
func reflectX(next *State, prev State) {
	next.Ball.Angle = math.Pi - next.Ball.Angle
	next.Ball.Pos.X = prev.Ball.Pos.X + next.Ball.Speed*math.Cos(next.Ball.Angle)
}

// reflectY mirrors the ball vertically, recomputing y the same way
func reflectY(next *State, prev State) {
	next.Ball.Angle = -next.Ball.Angle
	next.Ball.Pos.Y = prev.Ball.Pos.Y + next.Ball.Speed*math.Sin(next.Ball.Angle)
}

// resolveWall bounces the ball off side and top walls. The bottom wall is
// not a bounce: the ball is lost, the wall side scores, and the game
// re-enters the serving state with the ball back on the paddle.
func resolveWall(w Wall, next *State, prev State) {
	switch w {
	case WallLeft, WallRight:
		reflectX(next, prev)
	case WallTop:
		reflectY(next, prev)
	case WallBottom:
		next.Score.Wall++
		next.Serving = true
		next.Ball = Ball{Pos: ServePos(next.Paddle.Pos)}
	}
}

// resolveBrick reflects the ball off the struck face, removes the brick,
// scores for the player, and releases any embedded powerup at the brick's
// former position so it starts falling next frame.
func resolveBrick(c Collision, next *State, prev State) {
	idx := brickIndex(next.Bricks, c.Slot)
	if idx < 0 {
		panic(fmt.Sprintf("game: collision references missing brick slot %d", c.Slot))
	}
	brick := next.Bricks[idx]

	switch c.Side {
	case SideLeft, SideRight:
		reflectX(next, prev)
	default:
		reflectY(next, prev)
	}

	next.Bricks = append(next.Bricks[:idx], next.Bricks[idx+1:]...)
	next.Score.Player++

	if brick.PowerupID != NoPowerup {
		if pi := powerupIndex(next.Powerups, brick.PowerupID); pi >= 0 {
			next.Powerups[pi].Falling = true
			next.Powerups[pi].Pos = brick.Pos
		}
	}
}

// resolvePaddle bounces the ball off the paddle with a tilt proportional
// to how far off-center it struck, so edge hits rebound at shallower
// angles. The vertical sign always sends the ball away from the face the
// ball arrived at, chosen by the sign of the incoming vertical motion.
func resolvePaddle(next *State, prev State) {
	offset := next.Ball.Pos.X - next.Paddle.Pos.X
	tilt := offset / (next.Paddle.Width + 20) * math.Pi

	if math.Sin(next.Ball.Angle) > 0 {
		next.Ball.Angle = -math.Pi/2 + tilt
	} else {
		next.Ball.Angle = math.Pi/2 - tilt
	}
	next.Ball.Pos.Y = prev.Ball.Pos.Y + next.Ball.Speed*math.Sin(next.Ball.Angle)
}

// resolveCatch marks a falling powerup as caught and applies its reward.
// The powerup stays in the list with its timer running; expiry later
// reverts the effect, making the resize temporary.
func resolveCatch(id int, next *State) {
	pi := powerupIndex(next.Powerups, id)
	if pi < 0 {
		panic(fmt.Sprintf("game: collision references missing powerup %d", id))
	}
	p := &next.Powerups[pi]
	p.Falling = false
	p.Active = true
	applyCaught(next, p.Type)
}
