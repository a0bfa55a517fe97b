package game

import (
	"math"

	"smashout/constants"
	"smashout/input"
)

// Inputs is the logical key query the simulation consumes. Consume
// implements edge-triggered controls: the pause key is cleared the frame
// it is read so holding it does not re-toggle.
type Inputs interface {
	Held(k input.Key) bool
	Consume(k input.Key)
}

// Transition advances the world by one frame, ignoring collisions.
// prev is never mutated; the returned state owns fresh entity slices.
// Step order matters: pause toggle, serve release, powerup tick, paddle
// move, ball move. Serve release precedes ball integration so the ball
// covers its first step of motion on the launch frame itself.
func Transition(prev State, in Inputs) State {
	next := prev
	next.Bricks = append([]Brick(nil), prev.Bricks...)
	next.Powerups = append([]Powerup(nil), prev.Powerups...)

	if in.Held(input.KeyPause) {
		in.Consume(input.KeyPause)
		next.Paused = !next.Paused
	}
	if next.Paused {
		return next
	}

	if next.Serving && in.Held(input.KeyLaunch) {
		next.Serving = false
	}

	tickPowerups(&next)
	movePaddle(&next, in)
	moveBall(&next)
	return next
}

// tickPowerups advances falling powerups and counts down the rest.
// A countdown expiry shrinks the paddle and discards the powerup: for a
// dormant one that is the missed penalty, for a held one it ends the
// expander's effect. Falling powerups that drop past the bottom wall are
// discarded without penalty.
func tickPowerups(s *State) {
	kept := s.Powerups[:0]
	for _, p := range s.Powerups {
		if p.Falling {
			p.Pos.Y += constants.PowerupFallSpeed
			if p.Pos.Y-constants.PowerupRadius > s.Bounds.YMax {
				continue
			}
		} else {
			p.Timer--
			if p.Timer <= 0 {
				applyMissed(s, p.Type)
				continue
			}
		}
		kept = append(kept, p)
	}
	s.Powerups = kept
}

// applyMissed is the type-specific penalty for a powerup that ran out
func applyMissed(s *State, t PowerupType) {
	switch t {
	case PowerupExpander:
		s.Paddle.DesiredWidth = math.Max(
			s.Paddle.DesiredWidth-constants.PaddleWidthStep,
			constants.PaddleMinWidth,
		)
	}
}

// applyCaught is the type-specific reward for a powerup the paddle catches
func applyCaught(s *State, t PowerupType) {
	switch t {
	case PowerupExpander:
		s.Paddle.DesiredWidth = math.Min(
			s.Paddle.DesiredWidth+constants.PaddleWidthStep,
			constants.PaddleMaxWidth,
		)
	}
}

// movePaddle shifts the paddle toward the held direction, eases its width
// one unit toward the desired width, and clamps it fully inside the arena
func movePaddle(s *State, in Inputs) {
	switch {
	case in.Held(input.KeyLeft):
		s.Paddle.Pos.X -= constants.PaddleSpeed
	case in.Held(input.KeyRight):
		s.Paddle.Pos.X += constants.PaddleSpeed
	}

	if s.Paddle.Width < s.Paddle.DesiredWidth {
		s.Paddle.Width++
	} else if s.Paddle.Width > s.Paddle.DesiredWidth {
		s.Paddle.Width--
	}

	half := s.Paddle.Width / 2
	s.Paddle.Pos.X = clamp(s.Paddle.Pos.X, s.Bounds.XMin+half, s.Bounds.XMax-half)
}

// moveBall integrates the ball. While serving the ball is fully
// paddle-slaved; the frame after release it picks up the fixed launch
// speed and straight-up angle, then advances like any other frame.
func moveBall(s *State) {
	if s.Serving {
		s.Ball = Ball{Pos: ServePos(s.Paddle.Pos)}
		return
	}
	if s.Ball.Speed == 0 {
		s.Ball.Speed = constants.BallLaunchSpeed
		s.Ball.Angle = -math.Pi / 2
	}
	s.Ball.Pos.X += s.Ball.Speed * math.Cos(s.Ball.Angle)
	s.Ball.Pos.Y += s.Ball.Speed * math.Sin(s.Ball.Angle)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
