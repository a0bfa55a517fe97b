package game

import (
	"math/rand"

	"smashout/constants"
)

// Vec is a point in arena units. x grows rightward, y grows downward.
type Vec struct {
	X, Y float64
}

// Boundaries are the fixed arena walls
type Boundaries struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Ball is the single projectile. Speed 0 is the sentinel for "not yet
// launched": while serving the ball has no motion of its own and its
// position is derived from the paddle every frame.
type Ball struct {
	Pos   Vec
	Speed float64
	Angle float64 // radians; 0 points right, positive turns clockwise
}

// Paddle is the player bat. Pos is the paddle center; Pos.Y never changes.
// Width eases toward DesiredWidth by one unit per frame.
type Paddle struct {
	Pos          Vec
	Width        float64
	DesiredWidth float64
}

// PowerupType discriminates powerup effects
type PowerupType uint8

const (
	// PowerupExpander grows the paddle when caught and shrinks it when
	// missed or when a caught one expires
	PowerupExpander PowerupType = iota
)

// Powerup lifecycle: dormant inside a brick (not falling, not active),
// falling after its brick is destroyed, held after the paddle catches it
// (not falling, active). Timer counts down whenever the powerup is not
// falling; on expiry the paddle shrinks and the powerup is discarded,
// which is both the missed-powerup penalty and the end of a caught
// expander's temporary effect.
type Powerup struct {
	ID     int
	Type   PowerupType
	Active bool
	Timer  int

	// Falling reports whether Pos is meaningful; a powerup without a
	// position is embedded in its brick or held by the paddle
	Falling bool
	Pos     Vec
}

// Brick occupies a fixed arena slot until destroyed. Slot is the stable
// row-major grid index used as collision reference, so resolving hits in
// any order stays unambiguous after removals. PowerupID is the embedded
// powerup's ID, or NoPowerup.
type Brick struct {
	Slot      int
	Pos       Vec // center
	PowerupID int
}

// NoPowerup marks a brick without an embedded powerup
const NoPowerup = -1

// Score is the running points pair: player side and wall side
type Score struct {
	Player int
	Wall   int
}

// State is the authoritative world snapshot for one frame. Transition
// produces a fresh copy every tick; a previous frame's State is never
// mutated, so it remains a valid reference point for collision detection
// and resolution.
type State struct {
	Paused  bool
	Serving bool

	Bounds   Boundaries
	Ball     Ball
	Paddle   Paddle
	Bricks   []Brick
	Powerups []Powerup
	Score    Score
}

// serveOffset is the vertical gap between paddle center and served ball center
const serveOffset = constants.PaddleHeight/2 + constants.BallRadius + 1

// ServePos returns where a served ball rests for the given paddle position
func ServePos(paddle Vec) Vec {
	return Vec{X: paddle.X, Y: paddle.Y - serveOffset}
}

// NewState builds the initial world: default arena, centered paddle,
// serving ball, and a fresh brick grid. rng decides which bricks carry
// an expander.
func NewState(rng *rand.Rand) State {
	bounds := Boundaries{
		XMin: 0, XMax: constants.ArenaWidth,
		YMin: 0, YMax: constants.ArenaHeight,
	}
	paddle := Paddle{
		Pos:          Vec{X: constants.ArenaWidth / 2, Y: constants.ArenaHeight - constants.PaddleMarginY},
		Width:        constants.PaddleWidth,
		DesiredWidth: constants.PaddleWidth,
	}
	s := State{
		Serving: true,
		Bounds:  bounds,
		Paddle:  paddle,
		Ball:    Ball{Pos: ServePos(paddle.Pos)},
	}
	s.Bricks, s.Powerups = BuildGrid(bounds, 0, rng)
	return s
}

// NewRound re-racks the brick grid while keeping paddle, score, serve
// state, and any powerup still falling or held. Called by the frame
// driver once the last brick is gone and the ball is back on the paddle.
// Carried powerups keep their ids; the new grid starts past them.
func NewRound(s State, rng *rand.Rand) State {
	base := 0
	for _, p := range s.Powerups {
		if p.ID >= base {
			base = p.ID + 1
		}
	}
	bricks, powerups := BuildGrid(s.Bounds, base, rng)
	s.Bricks = bricks
	s.Powerups = append(append([]Powerup(nil), s.Powerups...), powerups...)
	return s
}

// BuildGrid lays out the default brick grid (8 columns by 4 rows with
// fixed spacing), centered horizontally, and seeds a fraction of bricks
// with dormant expanders. Powerup ids start at baseID plus the owning
// brick's slot.
func BuildGrid(bounds Boundaries, baseID int, rng *rand.Rand) ([]Brick, []Powerup) {
	gridWidth := constants.BrickColumns*constants.BrickWidth +
		(constants.BrickColumns-1)*constants.BrickSpacing
	x0 := bounds.XMin + (bounds.XMax-bounds.XMin-gridWidth)/2 + constants.BrickWidth/2
	y0 := bounds.YMin + constants.BrickTopMargin + constants.BrickHeight/2

	bricks := make([]Brick, 0, constants.BrickColumns*constants.BrickRows)
	var powerups []Powerup
	for row := 0; row < constants.BrickRows; row++ {
		for col := 0; col < constants.BrickColumns; col++ {
			slot := row*constants.BrickColumns + col
			b := Brick{
				Slot: slot,
				Pos: Vec{
					X: x0 + float64(col)*(constants.BrickWidth+constants.BrickSpacing),
					Y: y0 + float64(row)*(constants.BrickHeight+constants.BrickSpacing),
				},
				PowerupID: NoPowerup,
			}
			if rng != nil && rng.Float64() < constants.PowerupChance {
				b.PowerupID = baseID + slot
				powerups = append(powerups, Powerup{
					ID:    baseID + slot,
					Type:  PowerupExpander,
					Timer: constants.PowerupTimer,
				})
			}
			bricks = append(bricks, b)
		}
	}
	return bricks, powerups
}

// brickIndex locates a brick by its stable slot id, -1 if absent
func brickIndex(bricks []Brick, slot int) int {
	for i := range bricks {
		if bricks[i].Slot == slot {
			return i
		}
	}
	return -1
}

// powerupIndex locates a powerup by id, -1 if absent
func powerupIndex(powerups []Powerup, id int) int {
	for i := range powerups {
		if powerups[i].ID == id {
			return i
		}
	}
	return -1
}
