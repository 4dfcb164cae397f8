package projection

import "math"

// WingAngle is the offset of each arrowhead wing from the heading, in degrees.
const WingAngle = 150.0

// HeadingEndpoint returns the tip of a heading indicator of the given length
// starting at origin. Screen Y is inverted, so 90 degrees points up.
func HeadingEndpoint(origin ScreenPoint, headingDeg, length float64) ScreenPoint {
	rad := headingDeg * math.Pi / 180
	return ScreenPoint{
		X: origin.X + int(math.Round(length*math.Cos(rad))),
		Y: origin.Y - int(math.Round(length*math.Sin(rad))),
	}
}

// ArrowWings returns the two arrowhead points drawn back from end.
func ArrowWings(end ScreenPoint, headingDeg, wingLength float64) (ScreenPoint, ScreenPoint) {
	left := HeadingEndpoint(end, headingDeg+WingAngle, wingLength)
	right := HeadingEndpoint(end, headingDeg-WingAngle, wingLength)
	return left, right
}
