package game

import "smashout/constants"

// Wall names an arena boundary
type Wall uint8

const (
	WallLeft Wall = iota
	WallRight
	WallTop
	WallBottom
)

// Side names the struck face of a brick
type Side uint8

const (
	SideTop Side = iota
	SideBottom
	SideLeft
	SideRight
)

// CollisionKind discriminates collision event variants
type CollisionKind uint8

const (
	CollisionBallWall CollisionKind = iota
	CollisionBallBrick
	CollisionBallPaddle
	CollisionPowerupPaddle
)

// Collision is one detected event. Only the fields of the tagged kind are
// meaningful. Entity references use stable ids (brick slot, powerup id),
// never slice positions, so resolution order cannot invalidate them.
type Collision struct {
	Kind CollisionKind

	Wall Wall // CollisionBallWall
	Slot int  // CollisionBallBrick
	Side Side // CollisionBallBrick
	PID  int  // CollisionPowerupPaddle
}

// aabb is an axis-aligned box used for all overlap tests
type aabb struct {
	left, right, top, bottom float64
}

func ballBox(b Ball) aabb {
	return aabb{
		left:   b.Pos.X - constants.BallRadius,
		right:  b.Pos.X + constants.BallRadius,
		top:    b.Pos.Y - constants.BallRadius,
		bottom: b.Pos.Y + constants.BallRadius,
	}
}

func brickBox(b Brick) aabb {
	return aabb{
		left:   b.Pos.X - constants.BrickWidth/2,
		right:  b.Pos.X + constants.BrickWidth/2,
		top:    b.Pos.Y - constants.BrickHeight/2,
		bottom: b.Pos.Y + constants.BrickHeight/2,
	}
}

func paddleBox(p Paddle) aabb {
	return aabb{
		left:   p.Pos.X - p.Width/2,
		right:  p.Pos.X + p.Width/2,
		top:    p.Pos.Y - constants.PaddleHeight/2,
		bottom: p.Pos.Y + constants.PaddleHeight/2,
	}
}

func powerupBox(p Powerup) aabb {
	return aabb{
		left:   p.Pos.X - constants.PowerupRadius,
		right:  p.Pos.X + constants.PowerupRadius,
		top:    p.Pos.Y - constants.PowerupRadius,
		bottom: p.Pos.Y + constants.PowerupRadius,
	}
}

// overlaps is a strict (exclusive) AABB intersection test
func (a aabb) overlaps(b aabb) bool {
	return a.left < b.right && a.right > b.left &&
		a.top < b.bottom && a.bottom > b.top
}

// touches is the inclusive variant, counting shared edges as contact
func (a aabb) touches(b aabb) bool {
	return a.left <= b.right && a.right >= b.left &&
		a.top <= b.bottom && a.bottom >= b.top
}

// Detect reports every collision present in the post-transition state.
// Pure: neither state is mutated. Independent detectors are concatenated,
// so one frame can carry simultaneous events of different kinds; each
// detector visits each entity at most once, which makes duplicate reports
// structurally impossible. All tests use next's positions except brick
// side classification, which discriminates by the previous ball position.
func Detect(next, prev State) []Collision {
	var cols []Collision
	cols = appendWallCollisions(cols, next)
	cols = appendBrickCollisions(cols, next, prev)
	cols = appendPaddleCollision(cols, next)
	cols = appendPowerupCollisions(cols, next)
	return cols
}

// appendWallCollisions tests the ball's bounding circle against each wall
// independently; near a corner two walls can trigger in the same frame.
// Crossing is defined by the ball edge nearest each wall.
func appendWallCollisions(cols []Collision, s State) []Collision {
	box := ballBox(s.Ball)
	if box.left < s.Bounds.XMin {
		cols = append(cols, Collision{Kind: CollisionBallWall, Wall: WallLeft})
	}
	if box.right > s.Bounds.XMax {
		cols = append(cols, Collision{Kind: CollisionBallWall, Wall: WallRight})
	}
	if box.top < s.Bounds.YMin {
		cols = append(cols, Collision{Kind: CollisionBallWall, Wall: WallTop})
	}
	if box.bottom > s.Bounds.YMax {
		cols = append(cols, Collision{Kind: CollisionBallWall, Wall: WallBottom})
	}
	return cols
}

// appendBrickCollisions reports every brick the ball overlaps, classifying
// the struck side from where the ball was last frame rather than from its
// velocity: whichever brick edge the old ball had fully cleared picks the
// reflection axis.
func appendBrickCollisions(cols []Collision, next, prev State) []Collision {
	ball := ballBox(next.Ball)
	old := ballBox(prev.Ball)
	for i := range next.Bricks {
		brick := brickBox(next.Bricks[i])
		if !ball.touches(brick) {
			continue
		}
		var side Side
		switch {
		case old.bottom >= brick.bottom:
			side = SideBottom
		case old.top <= brick.top:
			side = SideTop
		case old.left >= brick.right:
			side = SideRight
		default:
			side = SideLeft
		}
		cols = append(cols, Collision{
			Kind: CollisionBallBrick,
			Slot: next.Bricks[i].Slot,
			Side: side,
		})
	}
	return cols
}

func appendPaddleCollision(cols []Collision, s State) []Collision {
	if ballBox(s.Ball).overlaps(paddleBox(s.Paddle)) {
		cols = append(cols, Collision{Kind: CollisionBallPaddle})
	}
	return cols
}

func appendPowerupCollisions(cols []Collision, s State) []Collision {
	paddle := paddleBox(s.Paddle)
	for i := range s.Powerups {
		p := s.Powerups[i]
		if !p.Falling {
			continue
		}
		if powerupBox(p).overlaps(paddle) {
			cols = append(cols, Collision{Kind: CollisionPowerupPaddle, PID: p.ID})
		}
	}
	return cols
}
