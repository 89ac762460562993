package turtle

import (
	"errors"
	"math"
)

// ErrInvalidColor is returned by Color when the argument does not have
// exactly three components.
var ErrInvalidColor = errors.New("turtle: color requires exactly three components")

// Turtle is a drawing cursor with a position, a heading in degrees, a pen
// state, a fill state and a color. Every mutating operation appends one
// command to the turtle's log, so that replaying the log from the home
// state reproduces the turtle's current state exactly.
//
// A Turtle is not safe for concurrent mutation; callers sharing one
// instance across goroutines must serialize access themselves. Replaying
// an already recorded log is read-only and needs no coordination.
type Turtle struct {
	x, y     float64
	angle    float64
	pen      bool
	fill     bool
	color    RGB
	commands []Command
}

// Default is the shared process-wide turtle used by the package-level
// operation functions.
var Default = New()

// New returns a turtle at the home position: origin, heading 90 (facing
// up), pen down, not filling, black, with an empty command log.
func New() *Turtle {
	return &Turtle{angle: 90, pen: true}
}

// Snapshot is a point-in-time copy of a turtle's logical state. It is
// also the accumulator type used when replaying a command log.
type Snapshot struct {
	X, Y  float64
	Angle float64
	Pen   bool
	Fill  bool
	Color RGB
}

// Snapshot returns a copy of the turtle's current state.
func (t *Turtle) Snapshot() Snapshot {
	return Snapshot{X: t.x, Y: t.y, Angle: t.angle, Pen: t.pen, Fill: t.fill, Color: t.color}
}

// Commands returns the turtle's command log. The returned slice is the
// live log; it must not be mutated while a replay is in progress.
func (t *Turtle) Commands() []Command {
	return t.commands
}

// Forward moves the turtle dist units along its current heading, drawing
// if the pen is down. The displacement is resolved to Cartesian form
// before it is recorded.
func (t *Turtle) Forward(dist float64) *Turtle {
	rad := t.angle * math.Pi / 180
	d := Tuple{dist * math.Cos(rad), dist * math.Sin(rad)}
	t.x += d[0]
	t.y += d[1]
	t.commands = append(t.commands, Command{Kind: TranslateCommand, P: &d})
	return t
}

// Back moves the turtle dist units opposite to its heading.
func (t *Turtle) Back(dist float64) *Turtle {
	return t.Forward(-dist)
}

// Right turns the turtle clockwise by deg degrees. The resulting heading
// is normalized to [0, 360).
func (t *Turtle) Right(deg float64) *Turtle {
	a := math.Mod(t.angle-deg, 360)
	if a < 0 {
		a += 360
	}
	t.angle = a
	t.commands = append(t.commands, Command{Kind: HeadingCommand, Angle: &a})
	return t
}

// Left turns the turtle counterclockwise by deg degrees.
func (t *Turtle) Left(deg float64) *Turtle {
	return t.Right(-deg)
}

// PenUp lifts the pen so that subsequent movement does not draw.
func (t *Turtle) PenUp() *Turtle {
	return t.setPen(false)
}

// PenDown lowers the pen so that subsequent movement draws.
func (t *Turtle) PenDown() *Turtle {
	return t.setPen(true)
}

func (t *Turtle) setPen(down bool) *Turtle {
	t.pen = down
	t.commands = append(t.commands, Command{Kind: PenCommand, Pen: &down})
	return t
}

// StartFill opens a fill region. The command is recorded even when a
// region is already open; the interpreter ignores the duplicate.
func (t *Turtle) StartFill() *Turtle {
	t.fill = true
	t.commands = append(t.commands, Command{Kind: StartFillCommand})
	return t
}

// EndFill closes the fill region. As with StartFill the command is
// recorded unconditionally.
func (t *Turtle) EndFill() *Turtle {
	t.fill = false
	t.commands = append(t.commands, Command{Kind: EndFillCommand})
	return t
}

// SetXY teleports the turtle to the absolute position (x, y) without
// drawing. The heading is unchanged.
func (t *Turtle) SetXY(x, y float64) *Turtle {
	p := Tuple{x, y}
	t.x = x
	t.y = y
	t.commands = append(t.commands, Command{Kind: PositionCommand, P: &p})
	return t
}

// SetHeading sets the turtle's heading to deg degrees. The value is
// stored as given, without normalization.
func (t *Turtle) SetHeading(deg float64) *Turtle {
	t.angle = deg
	t.commands = append(t.commands, Command{Kind: HeadingCommand, Angle: &deg})
	return t
}

// Home moves the turtle to the origin facing up. Two commands are
// recorded: the position, then the heading.
func (t *Turtle) Home() *Turtle {
	return t.SetXY(0, 0).SetHeading(90)
}

// Clean discards the command log. Position, heading, pen, fill and color
// keep their current values.
func (t *Turtle) Clean() *Turtle {
	t.commands = nil
	return t
}

// Color sets the stroke and fill color. c must have exactly three
// components; otherwise ErrInvalidColor is returned and neither the state
// nor the log is touched. Component values are not range checked.
func (t *Turtle) Color(c []int) (*Turtle, error) {
	if len(c) != 3 {
		return t, ErrInvalidColor
	}
	rgb := RGB{c[0], c[1], c[2]}
	t.color = rgb
	t.commands = append(t.commands, Command{Kind: ColorCommand, Color: &rgb})
	return t, nil
}

// The functions below apply the same operations to the Default turtle.

// Forward moves the default turtle forward.
func Forward(dist float64) *Turtle { return Default.Forward(dist) }

// Back moves the default turtle backward.
func Back(dist float64) *Turtle { return Default.Back(dist) }

// Right turns the default turtle clockwise.
func Right(deg float64) *Turtle { return Default.Right(deg) }

// Left turns the default turtle counterclockwise.
func Left(deg float64) *Turtle { return Default.Left(deg) }

// PenUp lifts the default turtle's pen.
func PenUp() *Turtle { return Default.PenUp() }

// PenDown lowers the default turtle's pen.
func PenDown() *Turtle { return Default.PenDown() }

// StartFill opens a fill region on the default turtle.
func StartFill() *Turtle { return Default.StartFill() }

// EndFill closes the default turtle's fill region.
func EndFill() *Turtle { return Default.EndFill() }

// SetXY teleports the default turtle.
func SetXY(x, y float64) *Turtle { return Default.SetXY(x, y) }

// SetHeading sets the default turtle's heading.
func SetHeading(deg float64) *Turtle { return Default.SetHeading(deg) }

// Home sends the default turtle home.
func Home() *Turtle { return Default.Home() }

// Clean discards the default turtle's command log.
func Clean() *Turtle { return Default.Clean() }

// Color sets the default turtle's color.
func Color(c []int) (*Turtle, error) { return Default.Color(c) }
