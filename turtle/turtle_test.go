package turtle_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/takoeight0821/kame/driver"
	"github.com/takoeight0821/kame/scene"
	"github.com/takoeight0821/kame/turtle"
)

// approx absorbs the float32 noise of degree-to-radian trigonometry.
var approx = cmpopts.EquateApprox(0, 1e-3)

func run(t *testing.T, source string) *turtle.Machine {
	t.Helper()

	program, err := driver.ParseSource(source)
	if err != nil {
		t.Fatalf("ParseSource(%q) returned error: %v", source, err)
	}

	machine := turtle.New()
	machine.Run(program)

	return machine
}

func TestSquare(t *testing.T) {
	t.Parallel()

	machine := run(t, "pendown forward 10 turnright forward 10 turnright forward 10 turnright forward 10 penup")

	want := []scene.Stroke{
		{A: scene.Point{X: 0, Y: 0}, B: scene.Point{X: 10, Y: 0}, Width: 1},
		{A: scene.Point{X: 10, Y: 0}, B: scene.Point{X: 10, Y: 10}, Width: 1},
		{A: scene.Point{X: 10, Y: 10}, B: scene.Point{X: 0, Y: 10}, Width: 1},
		{A: scene.Point{X: 0, Y: 10}, B: scene.Point{X: 0, Y: 0}, Width: 1},
	}
	if diff := cmp.Diff(want, machine.Scene().Strokes, approx); diff != "" {
		t.Errorf("strokes mismatch (-want +got):\n%s", diff)
	}

	wantBounds := scene.Rect{Min: scene.Point{X: -0.5, Y: -0.5}, Max: scene.Point{X: 10.5, Y: 10.5}}
	if diff := cmp.Diff(wantBounds, machine.Scene().Bounds, approx); diff != "" {
		t.Errorf("bounds mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(machine.Scene().Bounds, machine.Scene().ViewBox); diff != "" {
		t.Errorf("view box should track bounds (-bounds +viewbox):\n%s", diff)
	}

	if machine.Flags() != 0 {
		t.Errorf("unexpected flags: %v", machine.Flags())
	}
}

func TestPenUpMovesWithoutDrawing(t *testing.T) {
	t.Parallel()

	machine := run(t, "forward 10")

	if n := len(machine.Scene().Strokes); n != 0 {
		t.Errorf("pen-up move drew %d strokes", n)
	}

	x, y := machine.Position()
	if diff := cmp.Diff([]float32{10, 0}, []float32{x, y}, approx); diff != "" {
		t.Errorf("position mismatch (-want +got):\n%s", diff)
	}

	// Pen-up wandering leaves the frame at the origin.
	if diff := cmp.Diff(scene.Rect{}, machine.Scene().Bounds); diff != "" {
		t.Errorf("bounds mismatch (-want +got):\n%s", diff)
	}
}

func TestHeadingNormalization(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		label string
		input string
		want  float32
	}{
		{"over a full circle", "turn 370", 10},
		{"turnleft wraps negative", "turnleft", 270},
		{"direction wraps negative", "direction -90", 270},
		{"two full circles", "turn 720", 0},
		{"direction over a full circle", "direction 450", 90},
		{"accumulated turns", "turn 100 turn 100 turn 100 turn 100", 40},
	}

	for _, testcase := range testcases {
		t.Run(testcase.label, func(t *testing.T) {
			t.Parallel()

			machine := run(t, testcase.input)
			if diff := cmp.Diff(testcase.want, machine.Heading(), approx); diff != "" {
				t.Errorf("heading mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMoveFollowsHeading(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		label string
		input string
		want  scene.Point
	}{
		{"east by default", "pendown forward 10", scene.Point{X: 10, Y: 0}},
		{"south after turnright", "pendown turnright forward 10", scene.Point{X: 0, Y: 10}},
		{"north after turnleft", "pendown turnleft forward 10", scene.Point{X: 0, Y: -10}},
		{"west at direction 180", "pendown direction 180 forward 10", scene.Point{X: -10, Y: 0}},
		{"backward runs opposite", "pendown backward 2", scene.Point{X: -2, Y: 0}},
		{"diagonal", "pendown turn 45 forward 10", scene.Point{X: 7.0711, Y: 7.0711}},
	}

	for _, testcase := range testcases {
		t.Run(testcase.label, func(t *testing.T) {
			t.Parallel()

			machine := run(t, testcase.input)
			strokes := machine.Scene().Strokes
			if len(strokes) != 1 {
				t.Fatalf("want one stroke, got %d", len(strokes))
			}
			if diff := cmp.Diff(testcase.want, strokes[0].B, approx); diff != "" {
				t.Errorf("endpoint mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTeleportDoesNotDraw(t *testing.T) {
	t.Parallel()

	machine := run(t, "pendown go 5 5 gox 10 goy -3")

	if n := len(machine.Scene().Strokes); n != 0 {
		t.Errorf("teleporting drew %d strokes", n)
	}

	x, y := machine.Position()
	if diff := cmp.Diff([]float32{10, -3}, []float32{x, y}, approx); diff != "" {
		t.Errorf("position mismatch (-want +got):\n%s", diff)
	}

	// Teleport targets still stretch the frame.
	wantBounds := scene.Rect{Min: scene.Point{X: 0, Y: -3}, Max: scene.Point{X: 10, Y: 5}}
	if diff := cmp.Diff(wantBounds, machine.Scene().Bounds, approx); diff != "" {
		t.Errorf("bounds mismatch (-want +got):\n%s", diff)
	}
}

func TestLocationStack(t *testing.T) {
	t.Parallel()

	machine := run(t, "go 3 4 pushloc go 10 10 poploc")

	x, y := machine.Position()
	if diff := cmp.Diff([]float32{3, 4}, []float32{x, y}, approx); diff != "" {
		t.Errorf("position mismatch (-want +got):\n%s", diff)
	}
	if machine.Flags() != 0 {
		t.Errorf("unexpected flags: %v", machine.Flags())
	}
}

func TestLocationStackNests(t *testing.T) {
	t.Parallel()

	machine := run(t, "pushloc go 1 1 pushloc go 2 2 poploc poploc")

	x, y := machine.Position()
	if diff := cmp.Diff([]float32{0, 0}, []float32{x, y}, approx); diff != "" {
		t.Errorf("position mismatch (-want +got):\n%s", diff)
	}
}

func TestRotationStack(t *testing.T) {
	t.Parallel()

	machine := run(t, "direction 45 pushrot turn 90 poprot")

	if diff := cmp.Diff(float32(45), machine.Heading(), approx); diff != "" {
		t.Errorf("heading mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptyStackPopsRaiseFlags(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		label string
		input string
		want  turtle.Flags
	}{
		{"poploc", "poploc", turtle.FlagPopLocEmptyStack},
		{"poprot", "poprot", turtle.FlagPopRotEmptyStack},
		{"both", "poploc poprot", turtle.FlagPopLocEmptyStack | turtle.FlagPopRotEmptyStack},
		{"pop after push is fine", "pushloc poploc pushrot poprot", 0},
	}

	for _, testcase := range testcases {
		t.Run(testcase.label, func(t *testing.T) {
			t.Parallel()

			machine := run(t, testcase.input)
			if machine.Flags() != testcase.want {
				t.Errorf("flags mismatch: want %v, got %v", testcase.want, machine.Flags())
			}

			// The turtle itself must be unaffected.
			x, y := machine.Position()
			if x != 0 || y != 0 || machine.Heading() != 0 {
				t.Errorf("empty pop moved the turtle: (%g, %g) heading %g", x, y, machine.Heading())
			}
		})
	}
}

func TestFlagsString(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		flags turtle.Flags
		want  string
	}{
		{0, ""},
		{turtle.FlagUnhandledCommand, "unhandled command"},
		{turtle.FlagPopLocEmptyStack, "poploc on empty stack"},
		{turtle.FlagPopRotEmptyStack, "poprot on empty stack"},
		{turtle.FlagPopLocEmptyStack | turtle.FlagPopRotEmptyStack, "poploc on empty stack, poprot on empty stack"},
	}

	for _, testcase := range testcases {
		if got := testcase.flags.String(); got != testcase.want {
			t.Errorf("Flags(%b).String() = %q, want %q", uint16(testcase.flags), got, testcase.want)
		}
	}
}

func TestResetClearsEverything(t *testing.T) {
	t.Parallel()

	machine := run(t, "pendown penwidth 3 pencolor 9,9,9 turn 45 forward 5 poploc reset pendown forward 2")

	want := []scene.Stroke{
		{A: scene.Point{X: 0, Y: 0}, B: scene.Point{X: 2, Y: 0}, Width: 1},
	}
	if diff := cmp.Diff(want, machine.Scene().Strokes, approx); diff != "" {
		t.Errorf("strokes after reset mismatch (-want +got):\n%s", diff)
	}

	if machine.Flags() != 0 {
		t.Errorf("reset kept flags: %v", machine.Flags())
	}
	if machine.Heading() != 0 {
		t.Errorf("reset kept heading %g", machine.Heading())
	}
}

func TestHairlineWidth(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		label string
		input string
		want  float32
	}{
		{"zero width is hairline", "penwidth 0 pendown forward 1", 0.0333},
		{"tiny width is hairline", "penwidth 0.01 pendown forward 1", 0.0333},
		{"above hairline kept", "penwidth 0.05 pendown forward 1", 0.05},
	}

	for _, testcase := range testcases {
		t.Run(testcase.label, func(t *testing.T) {
			t.Parallel()

			machine := run(t, testcase.input)
			strokes := machine.Scene().Strokes
			if len(strokes) != 1 {
				t.Fatalf("want one stroke, got %d", len(strokes))
			}
			if diff := cmp.Diff(testcase.want, strokes[0].Width, approx); diff != "" {
				t.Errorf("stroke width mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPenColorApplies(t *testing.T) {
	t.Parallel()

	machine := run(t, "pencolor 12,34,56 pendown forward 1")

	strokes := machine.Scene().Strokes
	if len(strokes) != 1 {
		t.Fatalf("want one stroke, got %d", len(strokes))
	}
	if diff := cmp.Diff(scene.Color{R: 12, G: 34, B: 56}, strokes[0].Color); diff != "" {
		t.Errorf("stroke color mismatch (-want +got):\n%s", diff)
	}
}

func TestRunAccumulates(t *testing.T) {
	t.Parallel()

	machine := turtle.New()
	for _, source := range []string{"pendown forward 5", "forward 5"} {
		program, err := driver.ParseSource(source)
		if err != nil {
			t.Fatalf("ParseSource(%q) returned error: %v", source, err)
		}
		machine.Run(program)
	}

	if n := len(machine.Scene().Strokes); n != 2 {
		t.Fatalf("want 2 strokes across runs, got %d", n)
	}

	x, y := machine.Position()
	if diff := cmp.Diff([]float32{10, 0}, []float32{x, y}, approx); diff != "" {
		t.Errorf("position mismatch (-want +got):\n%s", diff)
	}
}

func TestOriginAlwaysFramed(t *testing.T) {
	t.Parallel()

	machine := run(t, "go 50 50 pendown forward 10")

	bounds := machine.Scene().Bounds
	if bounds.Min.X > 0 || bounds.Min.Y > 0 {
		t.Errorf("bounds %v exclude the origin", bounds)
	}
	if diff := cmp.Diff(scene.Point{X: 60.5, Y: 50.5}, bounds.Max, approx); diff != "" {
		t.Errorf("bounds max mismatch (-want +got):\n%s", diff)
	}
}

func TestRunConvenience(t *testing.T) {
	t.Parallel()

	program, err := driver.ParseSource("pendown forward 1 poploc")
	if err != nil {
		t.Fatalf("ParseSource returned error: %v", err)
	}

	sc, flags := turtle.Run(program)
	if len(sc.Strokes) != 1 {
		t.Errorf("want one stroke, got %d", len(sc.Strokes))
	}
	if flags != turtle.FlagPopLocEmptyStack {
		t.Errorf("want poploc flag, got %v", flags)
	}
}
