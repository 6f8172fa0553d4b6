package soundfield

import (
	"fmt"
	"math"
	"strings"
)

// Direction is one of the eight cardinal/intercardinal compass points.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// NumDirections is the number of compass points on the rose.
const NumDirections = 8

// directionAngles maps each compass point to its planar angle in degrees,
// 0 = forward (north), increasing clockwise.
var directionAngles = [NumDirections]float64{
	North:     0,
	NorthEast: 45,
	East:      90,
	SouthEast: 135,
	South:     180,
	SouthWest: 225,
	West:      270,
	NorthWest: 315,
}

var directionNames = [NumDirections]string{
	North:     "N",
	NorthEast: "NE",
	East:      "E",
	SouthEast: "SE",
	South:     "S",
	SouthWest: "SW",
	West:      "W",
	NorthWest: "NW",
}

// Angle returns the compass angle in degrees for the direction.
func (d Direction) Angle() float64 {
	if d < 0 || d >= NumDirections {
		return 0
	}
	return directionAngles[d]
}

func (d Direction) String() string {
	if d < 0 || d >= NumDirections {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// ParseDirection maps a compass label ("N", "ne", ...) to its Direction.
func ParseDirection(s string) (Direction, error) {
	label := strings.ToUpper(strings.TrimSpace(s))
	for d, name := range directionNames {
		if name == label {
			return Direction(d), nil
		}
	}
	return 0, fmt.Errorf("unknown compass direction %q", s)
}

// Point3D is a position in the renderer's right-handed coordinate space.
// The listener sits at the origin with no rotation.
type Point3D struct {
	X, Y, Z float32
}

// PositionScale amplifies unit distance into the renderer's effective
// coordinate space so that distance 1.0 lands audibly away from the
// reference distance.
const PositionScale = 2.0

// AngleToPosition maps a planar compass angle (degrees, 0 = forward) and a
// scalar distance to a 3D position on the horizontal plane. Pure and
// deterministic; out-of-range angles wrap trigonometrically.
func AngleToPosition(angleDegrees, distance float64) Point3D {
	radians := angleDegrees * math.Pi / 180.0
	return Point3D{
		X: float32(math.Sin(radians) * distance * PositionScale),
		Y: 0,
		Z: float32(math.Cos(radians) * distance * PositionScale),
	}
}

// DirectionPosition is shorthand for AngleToPosition over a compass point.
func DirectionPosition(d Direction, distance float64) Point3D {
	return AngleToPosition(d.Angle(), distance)
}
