package track

// Line is a line segment from P0 to P1.
type Line struct {
	P0 Point
	P1 Point
}

// Ln returns the line segment from p0 to p1.
func Ln(p0, p1 Point) Line {
	return Line{P0: p0, P1: p1}
}

// Eval returns the point at t, with t = 0 at P0 and t = 1 at P1.
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}
