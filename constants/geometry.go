package constants

// All dimensions are in arena units. The arena coordinate plane has x
// growing rightward and y growing downward; angle 0 points right and
// increases clockwise, matching screen coordinates.

// Arena
const (
	// ArenaWidth is the horizontal extent of the play field
	ArenaWidth = 480.0

	// ArenaHeight is the vertical extent of the play field
	ArenaHeight = 360.0
)

// Ball
const (
	// BallRadius is the collision radius of the ball
	BallRadius = 5.0

	// BallLaunchSpeed is the fixed speed applied on the launch frame
	BallLaunchSpeed = 5.0
)

// Paddle
const (
	// PaddleWidth is the starting paddle width
	PaddleWidth = 60.0

	// PaddleHeight is the paddle thickness
	PaddleHeight = 10.0

	// PaddleSpeed is the horizontal paddle movement per frame
	PaddleSpeed = 6.0

	// PaddleMarginY is the distance from the paddle center to the bottom wall
	PaddleMarginY = 20.0

	// PaddleWidthStep is the width change applied by a caught or missed expander
	PaddleWidthStep = 20.0

	// PaddleMinWidth and PaddleMaxWidth bound the animated desired width
	PaddleMinWidth = 20.0
	PaddleMaxWidth = 200.0
)

// Brick Grid
const (
	// BrickColumns and BrickRows define the default grid layout
	BrickColumns = 8
	BrickRows    = 4

	// BrickWidth and BrickHeight are the extents of a single brick
	BrickWidth  = 50.0
	BrickHeight = 25.0

	// BrickSpacing is the fixed gutter between adjacent bricks
	BrickSpacing = 8.0

	// BrickTopMargin is the distance from the top wall to the first brick row
	BrickTopMargin = 40.0
)

// Powerups
const (
	// PowerupFallSpeed is the vertical drop per frame once released
	PowerupFallSpeed = 3.0

	// PowerupRadius is the collision radius of a falling powerup
	PowerupRadius = 6.0

	// PowerupTimer is the countdown, in frames, of a powerup that is not
	// falling (dormant in a brick, or held by the paddle after capture)
	PowerupTimer = 600

	// PowerupChance is the fraction of bricks seeded with an expander
	PowerupChance = 0.25
)
