package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"smashout/constants"
	"smashout/game"
)

// statusRows is the height of the score bar above the play field
const statusRows = 1

// brickRowStyles colors the grid rows top to bottom, classic-breakout style
var brickRowStyles = []tcell.Style{
	tcell.StyleDefault.Foreground(tcell.ColorRed),
	tcell.StyleDefault.Foreground(tcell.ColorOrange),
	tcell.StyleDefault.Foreground(tcell.ColorGreen),
	tcell.StyleDefault.Foreground(tcell.ColorYellow),
}

var (
	statusStyle  = tcell.StyleDefault.Reverse(true)
	paddleStyle  = tcell.StyleDefault.Foreground(tcell.ColorTeal).Bold(true)
	ballStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	powerupStyle = tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true)
	hintStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	overlayStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// Renderer draws game state snapshots onto a terminal screen. It is a
// read-only consumer: it never mutates the state it is handed.
type Renderer struct {
	screen tcell.Screen

	width, height  int
	scaleX, scaleY float64
}

// New creates a renderer sized to the screen's current dimensions
func New(screen tcell.Screen) *Renderer {
	r := &Renderer{screen: screen}
	r.Resize()
	return r
}

// Resize re-reads screen dimensions and recomputes the arena-to-cell scale
func (r *Renderer) Resize() {
	r.width, r.height = r.screen.Size()
	r.scaleX = float64(r.width) / constants.ArenaWidth
	r.scaleY = float64(r.height-statusRows) / constants.ArenaHeight
	r.screen.Sync()
}

// cell maps an arena point to a terminal cell
func (r *Renderer) cell(p game.Vec) (int, int) {
	return int(p.X * r.scaleX), statusRows + int(p.Y*r.scaleY)
}

// Draw renders one frame: status bar, bricks, powerups, paddle, ball, and
// any serve hint or pause overlay, then flips the screen
func (r *Renderer) Draw(s *game.State) {
	r.screen.Clear()

	r.drawStatus(s)
	for i := range s.Bricks {
		r.drawBrick(s.Bricks[i])
	}
	for i := range s.Powerups {
		if s.Powerups[i].Falling {
			x, y := r.cell(s.Powerups[i].Pos)
			r.setCell(x, y, '◆', powerupStyle)
		}
	}
	r.drawPaddle(s.Paddle)

	bx, by := r.cell(s.Ball.Pos)
	r.setCell(bx, by, '●', ballStyle)

	if s.Serving && !s.Paused {
		r.drawCentered(r.height*2/3, "space to launch", hintStyle)
	}
	if s.Paused {
		r.drawCentered(r.height/2, "PAUSED", overlayStyle)
	}

	r.screen.Show()
}

func (r *Renderer) drawStatus(s *game.State) {
	text := fmt.Sprintf(" score %d : %d  |  h/l or arrows move  space launch  p pause  m mute  q quit",
		s.Score.Player, s.Score.Wall)
	for x := 0; x < r.width; x++ {
		ch := ' '
		if x < len(text) {
			ch = rune(text[x])
		}
		r.screen.SetContent(x, 0, ch, nil, statusStyle)
	}
}

func (r *Renderer) drawBrick(b game.Brick) {
	style := brickRowStyles[(b.Slot/constants.BrickColumns)%len(brickRowStyles)]
	glyph := '█'
	if b.PowerupID != game.NoPowerup {
		glyph = '▓'
	}
	left, top := r.cell(game.Vec{X: b.Pos.X - constants.BrickWidth/2, Y: b.Pos.Y - constants.BrickHeight/2})
	right, bottom := r.cell(game.Vec{X: b.Pos.X + constants.BrickWidth/2, Y: b.Pos.Y + constants.BrickHeight/2})
	for y := top; y <= bottom; y++ {
		for x := left; x <= right; x++ {
			r.setCell(x, y, glyph, style)
		}
	}
}

func (r *Renderer) drawPaddle(p game.Paddle) {
	left, y := r.cell(game.Vec{X: p.Pos.X - p.Width/2, Y: p.Pos.Y})
	right, _ := r.cell(game.Vec{X: p.Pos.X + p.Width/2, Y: p.Pos.Y})
	for x := left; x <= right; x++ {
		r.setCell(x, y, '▀', paddleStyle)
	}
}

func (r *Renderer) drawCentered(y int, text string, style tcell.Style) {
	x := (r.width - len(text)) / 2
	for i, ch := range text {
		r.setCell(x+i, y, ch, style)
	}
}

// setCell writes a rune with bounds checking; the simulation can push the
// ball a few units past a wall for one frame before resolution pulls it back
func (r *Renderer) setCell(x, y int, ch rune, style tcell.Style) {
	if x < 0 || x >= r.width || y < statusRows || y >= r.height {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}
