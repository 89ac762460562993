package turtle

// Sink receives the drawing primitives produced by replaying a command
// log. Implementations paint them however they like (SVG elements, pixels,
// a plotter); the interpreter only ever emits, it never queries the sink.
type Sink interface {
	// SetColor sets the stroke and fill color for subsequent primitives.
	SetColor(c RGB)
	// DrawLine draws a straight segment from one point to another.
	DrawLine(from, to Tuple)
	// BeginFill opens a fill region.
	BeginFill()
	// AddFillVertex adds a vertex to the open fill region.
	AddFillVertex(p Tuple)
	// EndFill closes the fill region and paints it.
	EndFill()
}

// Replay folds a command log over a fresh accumulator starting at the
// home state and emits drawing primitives to sink. Commands are processed
// strictly in order. The final accumulator state is returned; for a log
// taken from a turtle it equals that turtle's snapshot.
//
// Position and heading commands are silent teleports. A translate draws a
// line only while the pen is down, and additionally contributes its two
// endpoints as fill vertices while a fill region is open. Fill begin/end
// primitives are emitted only on actual state transitions, so duplicate
// StartFill or EndFill commands cannot unbalance the sink.
func Replay(commands []Command, sink Sink) Snapshot {
	st := Snapshot{Angle: 90, Pen: true}
	for _, c := range commands {
		switch c.Kind {
		case ColorCommand:
			sink.SetColor(*c.Color)
			st.Color = *c.Color
		case HeadingCommand:
			st.Angle = *c.Angle
		case PositionCommand:
			st.X, st.Y = c.P[0], c.P[1]
		case TranslateCommand:
			nx, ny := st.X+c.P[0], st.Y+c.P[1]
			if st.Pen {
				sink.DrawLine(Tuple{st.X, st.Y}, Tuple{nx, ny})
				if st.Fill {
					sink.AddFillVertex(Tuple{st.X, st.Y})
					sink.AddFillVertex(Tuple{nx, ny})
				}
			}
			st.X, st.Y = nx, ny
		case PenCommand:
			st.Pen = *c.Pen
		case StartFillCommand:
			if !st.Fill {
				sink.BeginFill()
			}
			st.Fill = true
		case EndFillCommand:
			if st.Fill {
				sink.EndFill()
			}
			st.Fill = false
		}
	}
	return st
}

// Draw replays the turtle's command log into sink.
func (t *Turtle) Draw(sink Sink) Snapshot {
	return Replay(t.commands, sink)
}
