package path

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"github.com/gogpu/vgcore/geom"
)

// DefaultTolerance is the flattening tolerance, in device units, used when
// a non-positive tolerance is requested.
const DefaultTolerance = 0.1

// maxFlattenDepth bounds curve subdivision (2^maxFlattenDepth segments).
const maxFlattenDepth = 16

// InterpretFlat is like Interpret in the Forward direction, except that
// every curve is replaced by line segments that stay within tolerance
// device units of it. The sink's CurveTo is never called.
func (p *Path) InterpretFlat(tolerance float64, s Sink) error {
	if tolerance <= 0 || math.IsNaN(tolerance) {
		tolerance = DefaultTolerance
	}
	f := flattener{sink: s, tolerance: tolerance}
	return p.Interpret(Forward, &f)
}

// flattener forwards straight commands and subdivides curves.
type flattener struct {
	sink      Sink
	tolerance float64
	current   geom.Point
	start     geom.Point
	segments  int
}

func (f *flattener) MoveTo(p geom.Point) error {
	f.current, f.start = p, p
	return f.sink.MoveTo(p)
}

func (f *flattener) LineTo(p geom.Point) error {
	f.current = p
	return f.sink.LineTo(p)
}

func (f *flattener) ClosePath() error {
	f.current = f.start
	return f.sink.ClosePath()
}

func (f *flattener) CurveTo(p1, p2, p3 geom.Point) error {
	f.segments = 0
	err := f.subdivide(toVec(f.current), toVec(p1), toVec(p2), toVec(p3), 0)
	if err != nil {
		return err
	}
	// The subdivision emits rounded points; end exactly on the curve's end.
	// A degenerate curve still yields one segment.
	if f.current != p3 || f.segments == 0 {
		f.current = p3
		return f.sink.LineTo(p3)
	}
	return nil
}

func (f *flattener) subdivide(p0, p1, p2, p3 vec.Vec2, depth int) error {
	dist := max(distanceToLine(p1, p0, p3), distanceToLine(p2, p0, p3))
	if dist < f.tolerance || depth >= maxFlattenDepth {
		end := geom.PtFloat(p3.X, p3.Y)
		if end == f.current {
			return nil
		}
		f.current = end
		f.segments++
		return f.sink.LineTo(end)
	}

	// de Casteljau split at t = 0.5.
	q0 := vec.Middle(p0, p1)
	q1 := vec.Middle(p1, p2)
	q2 := vec.Middle(p2, p3)
	r0 := vec.Middle(q0, q1)
	r1 := vec.Middle(q1, q2)
	s := vec.Middle(r0, r1)

	if err := f.subdivide(p0, q0, r0, s, depth+1); err != nil {
		return err
	}
	return f.subdivide(s, r1, q2, p3, depth+1)
}

func toVec(p geom.Point) vec.Vec2 {
	return vec.Vec2{X: geom.FixedToFloat(p.X), Y: geom.FixedToFloat(p.Y)}
}

// distanceToLine returns the distance from p to the segment ab.
func distanceToLine(p, a, b vec.Vec2) float64 {
	ab := b.Sub(a)
	abLen := ab.Length()
	if abLen < 1e-10 {
		return p.Sub(a).Length()
	}

	t := p.Sub(a).Dot(ab) / (abLen * abLen)
	switch {
	case t < 0:
		return p.Sub(a).Length()
	case t > 1:
		return p.Sub(b).Length()
	}
	return p.Sub(a.Add(ab.Mul(t))).Length()
}
