package audio

import "smashout/game"

// React triggers sound effects for one frame. Collision events map
// directly to effects; powerup expiry has no collision event, so it is
// recovered by diffing the powerup lists of the two snapshots. Read-only
// consumer of both states.
func React(p *Player, cols []game.Collision, next, prev *game.State) {
	for _, c := range cols {
		switch c.Kind {
		case game.CollisionBallWall:
			if c.Wall == game.WallBottom {
				p.PlayMiss()
			} else {
				p.PlayWall()
			}
		case game.CollisionBallBrick:
			p.PlayBrick()
		case game.CollisionBallPaddle:
			p.PlayPaddle()
		case game.CollisionPowerupPaddle:
			p.PlayCatch()
		}
	}

	// A powerup present before the transition but gone after it timed out
	// (shrinking the paddle) unless it was falling, in which case it
	// simply dropped out of the arena.
	for _, old := range prev.Powerups {
		if old.Falling {
			continue
		}
		gone := true
		for _, cur := range next.Powerups {
			if cur.ID == old.ID {
				gone = false
				break
			}
		}
		if gone {
			p.PlayMiss()
		}
	}
}
