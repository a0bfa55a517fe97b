package game

import (
	"math"

	"smashout/constants"
	"smashout/input"
)

// testInputs is a deterministic Inputs implementation for tests
type testInputs struct {
	held map[input.Key]bool
}

func inputs(keys ...input.Key) *testInputs {
	t := &testInputs{held: make(map[input.Key]bool)}
	for _, k := range keys {
		t.held[k] = true
	}
	return t
}

func (t *testInputs) Held(k input.Key) bool { return t.held[k] }
func (t *testInputs) Consume(k input.Key)   { delete(t.held, k) }

// testState builds a minimal in-play state: default arena, centered
// paddle, ball mid-field moving straight up, no bricks or powerups
func testState() State {
	paddle := Paddle{
		Pos:          Vec{X: constants.ArenaWidth / 2, Y: constants.ArenaHeight - constants.PaddleMarginY},
		Width:        constants.PaddleWidth,
		DesiredWidth: constants.PaddleWidth,
	}
	return State{
		Bounds: Boundaries{XMin: 0, XMax: constants.ArenaWidth, YMin: 0, YMax: constants.ArenaHeight},
		Paddle: paddle,
		Ball: Ball{
			Pos:   Vec{X: constants.ArenaWidth / 2, Y: constants.ArenaHeight / 2},
			Speed: constants.BallLaunchSpeed,
			Angle: -math.Pi / 2,
		},
	}
}

// brickAt creates a brick centered at (x, y) with the given slot
func brickAt(slot int, x, y float64) Brick {
	return Brick{Slot: slot, Pos: Vec{X: x, Y: y}, PowerupID: NoPowerup}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
