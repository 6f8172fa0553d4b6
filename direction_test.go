package soundfield

import (
	"math"
	"testing"
)

func TestAngleToPositionCompassTable(t *testing.T) {
	const distance = 1.0
	const r = distance * PositionScale
	const tolerance = 1e-6

	cases := []struct {
		dir  Direction
		x, z float64
	}{
		{North, 0, r},
		{NorthEast, r * math.Sqrt2 / 2, r * math.Sqrt2 / 2},
		{East, r, 0},
		{SouthEast, r * math.Sqrt2 / 2, -r * math.Sqrt2 / 2},
		{South, 0, -r},
		{SouthWest, -r * math.Sqrt2 / 2, -r * math.Sqrt2 / 2},
		{West, -r, 0},
		{NorthWest, -r * math.Sqrt2 / 2, r * math.Sqrt2 / 2},
	}

	for _, tc := range cases {
		p := DirectionPosition(tc.dir, distance)
		if math.Abs(float64(p.X)-tc.x) > tolerance {
			t.Errorf("%s: x = %v, want %v", tc.dir, p.X, tc.x)
		}
		if math.Abs(float64(p.Z)-tc.z) > tolerance {
			t.Errorf("%s: z = %v, want %v", tc.dir, p.Z, tc.z)
		}
		if p.Y != 0 {
			t.Errorf("%s: y = %v, want 0", tc.dir, p.Y)
		}
	}
}

func TestAngleToPositionScalesWithDistance(t *testing.T) {
	near := AngleToPosition(90, 1.0)
	far := AngleToPosition(90, 3.0)

	if math.Abs(float64(far.X)-3*float64(near.X)) > 1e-6 {
		t.Errorf("tripling distance should triple x: near %v far %v", near.X, far.X)
	}
}

func TestAngleToPositionWrapsTrigonometrically(t *testing.T) {
	a := AngleToPosition(45, 1.0)
	b := AngleToPosition(45+360, 1.0)

	if math.Abs(float64(a.X)-float64(b.X)) > 1e-5 || math.Abs(float64(a.Z)-float64(b.Z)) > 1e-5 {
		t.Errorf("angle+360 should map to same point: %+v vs %+v", a, b)
	}
}

func TestParseDirection(t *testing.T) {
	for d := Direction(0); d < NumDirections; d++ {
		got, err := ParseDirection(d.String())
		if err != nil {
			t.Fatalf("ParseDirection(%q): %v", d.String(), err)
		}
		if got != d {
			t.Errorf("ParseDirection(%q) = %v, want %v", d.String(), got, d)
		}
	}

	if _, err := ParseDirection("up"); err == nil {
		t.Error("expected error for unknown direction")
	}

	// Parsing is case-insensitive
	if got, err := ParseDirection("ne"); err != nil || got != NorthEast {
		t.Errorf("ParseDirection(\"ne\") = %v, %v", got, err)
	}
}

func TestDirectionAngles(t *testing.T) {
	want := map[Direction]float64{
		North: 0, NorthEast: 45, East: 90, SouthEast: 135,
		South: 180, SouthWest: 225, West: 270, NorthWest: 315,
	}
	for d, angle := range want {
		if d.Angle() != angle {
			t.Errorf("%s.Angle() = %v, want %v", d, d.Angle(), angle)
		}
	}
}
