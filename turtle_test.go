package turtle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewStartsAtHome(t *testing.T) {
	tur := New()
	snap := tur.Snapshot()

	require.Equal(t, Snapshot{Angle: 90, Pen: true}, snap)
	require.Empty(t, tur.Commands())
}

func TestForwardRightScenario(t *testing.T) {
	tur := New()
	tur.Forward(100).Right(90).Forward(100)
	_, err := tur.Color([]int{255, 0, 0})
	require.NoError(t, err)

	snap := tur.Snapshot()
	require.InDelta(t, 100, snap.X, 1e-9)
	require.InDelta(t, 100, snap.Y, 1e-9)
	require.Equal(t, 0.0, snap.Angle)
	require.Equal(t, RGB{255, 0, 0}, snap.Color)

	cmds := tur.Commands()
	require.Len(t, cmds, 4)
	require.Equal(t, TranslateCommand, cmds[0].Kind)
	require.InDelta(t, 0, cmds[0].P[0], 1e-9)
	require.InDelta(t, 100, cmds[0].P[1], 1e-9)
	require.Equal(t, HeadingCommand, cmds[1].Kind)
	require.Equal(t, 0.0, *cmds[1].Angle)
	require.Equal(t, TranslateCommand, cmds[2].Kind)
	require.InDelta(t, 100, cmds[2].P[0], 1e-9)
	require.InDelta(t, 0, cmds[2].P[1], 1e-9)
	require.Equal(t, ColorCommand, cmds[3].Kind)

	sink := &recordSink{}
	tur.Draw(sink)
	require.Equal(t, []string{"line", "line", "color"}, sink.kinds())
}

func TestRightNormalizes(t *testing.T) {
	tests := []struct {
		turn float64
		want float64
	}{
		{360, 90},
		{-90, 180},
		{90, 0},
		{100, 350},
		{-3690, 180},
		{720.5, 89.5},
	}
	for _, test := range tests {
		tur := New()
		tur.Right(test.turn)
		require.InDelta(t, test.want, tur.Snapshot().Angle, 1e-9, "right(%v)", test.turn)
	}
}

func TestAngleStaysInRange(t *testing.T) {
	tur := New()
	for _, turn := range []float64{13, -77, 359, 1234.5, -0.25, 180} {
		tur.Right(turn)
		a := tur.Snapshot().Angle
		require.GreaterOrEqual(t, a, 0.0)
		require.Less(t, a, 360.0)
	}
}

func TestLeftIsNegativeRight(t *testing.T) {
	a := New().Left(90)
	b := New().Right(-90)
	require.Equal(t, b.Snapshot(), a.Snapshot())
	require.Equal(t, 180.0, a.Snapshot().Angle)
}

func TestBackIsNegativeForward(t *testing.T) {
	a := New().SetHeading(0).Back(50)
	snap := a.Snapshot()
	require.InDelta(t, -50, snap.X, 1e-9)
	require.InDelta(t, 0, snap.Y, 1e-9)
}

func TestSetHeadingStoredAsGiven(t *testing.T) {
	tur := New().SetHeading(450)
	require.Equal(t, 450.0, tur.Snapshot().Angle)

	tur.SetHeading(-30)
	require.Equal(t, -30.0, tur.Snapshot().Angle)
}

func TestHomeAppendsPositionThenHeading(t *testing.T) {
	tur := New().SetXY(5, 6).SetHeading(10)
	tur.Home()

	cmds := tur.Commands()
	require.Len(t, cmds, 4)
	require.Equal(t, PositionCommand, cmds[2].Kind)
	require.Equal(t, Tuple{0, 0}, *cmds[2].P)
	require.Equal(t, HeadingCommand, cmds[3].Kind)
	require.Equal(t, 90.0, *cmds[3].Angle)
	require.Equal(t, Snapshot{Angle: 90, Pen: true}, tur.Snapshot())
}

func TestCleanKeepsStateDropsLog(t *testing.T) {
	tur := New()
	tur.Forward(10).Right(45).PenUp().StartFill()
	_, err := tur.Color([]int{1, 2, 3})
	require.NoError(t, err)

	before := tur.Snapshot()
	tur.Clean()
	require.Equal(t, before, tur.Snapshot())
	require.Empty(t, tur.Commands())

	// idempotent
	tur.Clean()
	require.Equal(t, before, tur.Snapshot())
	require.Empty(t, tur.Commands())
}

func TestColorArity(t *testing.T) {
	tur := New()
	tur.Forward(10)
	logLen := len(tur.Commands())

	for _, c := range [][]int{nil, {}, {1}, {1, 2}, {1, 2, 3, 4}} {
		got, err := tur.Color(c)
		require.ErrorIs(t, err, ErrInvalidColor)
		require.Same(t, tur, got)
		require.Len(t, tur.Commands(), logLen)
		require.Equal(t, RGB{}, tur.Snapshot().Color)
	}

	_, err := tur.Color([]int{7, 8, 9})
	require.NoError(t, err)
	require.Equal(t, RGB{7, 8, 9}, tur.Snapshot().Color)
	require.Len(t, tur.Commands(), logLen+1)
}

func TestOperationsReturnSameHandle(t *testing.T) {
	tur := New()
	require.Same(t, tur, tur.Forward(1))
	require.Same(t, tur, tur.Right(1))
	require.Same(t, tur, tur.PenUp())
	require.Same(t, tur, tur.SetXY(0, 0))
	require.Same(t, tur, tur.Home())
	require.Same(t, tur, tur.Clean())
}

func TestNaNPropagates(t *testing.T) {
	tur := New()
	tur.Forward(math.NaN())
	snap := tur.Snapshot()
	require.True(t, math.IsNaN(snap.X))
	require.True(t, math.IsNaN(snap.Y))

	tur.SetXY(1, 2)
	snap = tur.Snapshot()
	require.Equal(t, 1.0, snap.X)
	require.Equal(t, 2.0, snap.Y)
}

func TestDefaultTurtle(t *testing.T) {
	old := Default
	Default = New()
	defer func() { Default = old }()

	Forward(10)
	Right(90)
	require.Same(t, Default, PenUp())
	require.Len(t, Default.Commands(), 3)
	require.Equal(t, 0.0, Default.Snapshot().Angle)
}

func TestCommandTypeString(t *testing.T) {
	require.Equal(t, "translate", TranslateCommand.String())
	require.Equal(t, "startfill", StartFillCommand.String())
	require.Equal(t, "unknown", CommandType(99).String())
}
