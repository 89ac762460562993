package turtle

import "math"

// Sprite triangle dimensions, in world units. The apex sits spriteHeight
// ahead of the turtle along its heading, the base corners sit
// spriteHalfBase to either side of the position.
const (
	spriteHeight   = 10.0
	spriteHalfBase = 4.0
)

// DrawSprite draws the turtle's direction indicator, a small isosceles
// triangle pointing along the current heading. The sprite is not a
// primitive of its own: a second turtle is placed at the current position
// and heading, walked around the triangle, and its log is replayed through
// the ordinary interpreter.
func (t *Turtle) DrawSprite(sink Sink) {
	hyp := math.Hypot(spriteHeight, spriteHalfBase)
	apex := math.Atan2(spriteHalfBase, spriteHeight) * 180 / math.Pi

	s := New().
		SetXY(t.x, t.y).
		SetHeading(t.angle).
		PenUp().
		Forward(spriteHeight).
		PenDown().
		Right(180 - apex).
		Forward(hyp).
		Right(90 + apex).
		Forward(2 * spriteHalfBase).
		Right(90 + apex).
		Forward(hyp)

	Replay(s.commands, sink)
}
