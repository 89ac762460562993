package turtle

// CommandType tells the interpreter which state transition a logged
// command describes
type CommandType int

// These are the command types recorded in a turtle's log
const (
	ColorCommand CommandType = iota
	HeadingCommand
	TranslateCommand
	PositionCommand
	PenCommand
	StartFillCommand
	EndFillCommand
)

// String returns the lowercase name of the command type.
func (ct CommandType) String() string {
	switch ct {
	case ColorCommand:
		return "color"
	case HeadingCommand:
		return "heading"
	case TranslateCommand:
		return "translate"
	case PositionCommand:
		return "position"
	case PenCommand:
		return "pen"
	case StartFillCommand:
		return "startfill"
	case EndFillCommand:
		return "endfill"
	default:
		return "unknown"
	}
}

// Tuple is an X,Y coordinate
type Tuple [2]float64

// RGB is a red, green, blue color triple with components in 0-255.
type RGB [3]int

// Command is one recorded turtle operation. Kind selects which payload
// fields are set: P holds a displacement for TranslateCommand and an
// absolute position for PositionCommand, Angle holds a heading for
// HeadingCommand, Pen holds the pen state for PenCommand and Color holds
// the color for ColorCommand. StartFillCommand and EndFillCommand carry
// no payload. Commands are immutable once appended to a log.
type Command struct {
	Kind  CommandType
	P     *Tuple
	Angle *float64
	Pen   *bool
	Color *RGB
}
