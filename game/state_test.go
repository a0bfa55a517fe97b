package game

import (
	"math/rand"
	"testing"

	"smashout/constants"
)

func TestGridLayout(t *testing.T) {
	bounds := Boundaries{XMin: 0, XMax: constants.ArenaWidth, YMin: 0, YMax: constants.ArenaHeight}
	bricks, _ := BuildGrid(bounds, 0, nil)

	if want := constants.BrickColumns * constants.BrickRows; len(bricks) != want {
		t.Fatalf("expected %d bricks, got %d", want, len(bricks))
	}

	for i, b := range bricks {
		if b.Slot != i {
			t.Errorf("brick %d has slot %d; slots must be row-major indices", i, b.Slot)
		}
		if b.Pos.X-constants.BrickWidth/2 < bounds.XMin || b.Pos.X+constants.BrickWidth/2 > bounds.XMax {
			t.Errorf("brick %d spills outside the arena horizontally at %v", i, b.Pos)
		}
		if b.Pos.Y-constants.BrickHeight/2 < bounds.YMin {
			t.Errorf("brick %d spills above the arena at %v", i, b.Pos)
		}
	}

	// Fixed spacing between horizontal neighbors
	pitch := bricks[1].Pos.X - bricks[0].Pos.X
	if want := constants.BrickWidth + constants.BrickSpacing; pitch != want {
		t.Errorf("expected column pitch %f, got %f", want, pitch)
	}
}

func TestGridPowerupSeeding(t *testing.T) {
	bounds := Boundaries{XMin: 0, XMax: constants.ArenaWidth, YMin: 0, YMax: constants.ArenaHeight}
	rng := rand.New(rand.NewSource(1))
	bricks, powerups := BuildGrid(bounds, 0, rng)

	ids := make(map[int]bool)
	for _, p := range powerups {
		if ids[p.ID] {
			t.Errorf("duplicate powerup id %d", p.ID)
		}
		ids[p.ID] = true

		if p.Falling || p.Active {
			t.Errorf("powerup %d not dormant at creation: %+v", p.ID, p)
		}
		if p.Timer != constants.PowerupTimer {
			t.Errorf("powerup %d timer %d, want %d", p.ID, p.Timer, constants.PowerupTimer)
		}
	}

	// Every seeded id belongs to exactly one brick, and vice versa
	owned := 0
	for _, b := range bricks {
		if b.PowerupID == NoPowerup {
			continue
		}
		owned++
		if !ids[b.PowerupID] {
			t.Errorf("brick %d references unknown powerup %d", b.Slot, b.PowerupID)
		}
	}
	if owned != len(powerups) {
		t.Errorf("%d bricks own powerups but %d powerups exist", owned, len(powerups))
	}
}

func TestNewStateServes(t *testing.T) {
	s := NewState(rand.New(rand.NewSource(1)))

	if !s.Serving {
		t.Error("expected initial state serving")
	}
	if s.Ball.Speed != 0 {
		t.Errorf("expected served ball speed 0, got %f", s.Ball.Speed)
	}
	if want := ServePos(s.Paddle.Pos); s.Ball.Pos != want {
		t.Errorf("expected ball at %v, got %v", want, s.Ball.Pos)
	}
	if s.Score != (Score{}) {
		t.Errorf("expected zero score, got %+v", s.Score)
	}
}

func TestNewRoundKeepsCarriedPowerups(t *testing.T) {
	s := NewState(rand.New(rand.NewSource(3)))
	s.Bricks = nil
	s.Powerups = []Powerup{{ID: 2, Type: PowerupExpander, Active: true, Timer: 50}}
	s.Score = Score{Player: 32, Wall: 1}

	next := NewRound(s, rand.New(rand.NewSource(4)))

	if len(next.Bricks) != constants.BrickColumns*constants.BrickRows {
		t.Fatalf("expected fresh grid, got %d bricks", len(next.Bricks))
	}
	if next.Score != s.Score {
		t.Errorf("expected score carried, got %+v", next.Score)
	}

	carried := false
	for _, p := range next.Powerups {
		if p.ID == 2 && p.Active {
			carried = true
		} else if p.ID <= 2 {
			t.Errorf("new powerup id %d collides with carried ids", p.ID)
		}
	}
	if !carried {
		t.Error("held powerup dropped by the new round")
	}
}
