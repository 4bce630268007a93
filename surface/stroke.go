// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"github.com/gogpu/vgcore/geom"
	"github.com/gogpu/vgcore/path"
)

// circleSegments is the number of edges of the polygon standing in for
// round joins and caps.
const circleSegments = 24

// cross returns the z component of the cross product of v and w.
func cross(v, w vec.Vec2) float64 { return v.X*w.Y - v.Y*w.X }

func toVec(p geom.Point) vec.Vec2 {
	return vec.Vec2{X: geom.FixedToFloat(p.X), Y: geom.FixedToFloat(p.Y)}
}

// polyline is one flattened subpath in device space.
type polyline struct {
	pts    []vec.Vec2
	closed bool
}

// collector gathers the output of InterpretFlat into polylines.
type collector struct {
	lines  []polyline
	cur    *polyline
	resume vec.Vec2
	closed bool
}

func (c *collector) start(p vec.Vec2) {
	c.lines = append(c.lines, polyline{pts: []vec.Vec2{p}})
	c.cur = &c.lines[len(c.lines)-1]
	c.closed = false
}

func (c *collector) MoveTo(p geom.Point) error {
	c.start(toVec(p))
	return nil
}

func (c *collector) LineTo(p geom.Point) error {
	switch {
	case c.cur != nil:
	case c.closed:
		c.start(c.resume)
	default:
		c.start(toVec(p))
		return nil
	}
	c.cur.pts = append(c.cur.pts, toVec(p))
	return nil
}

func (c *collector) CurveTo(_, _, p3 geom.Point) error {
	return c.LineTo(p3)
}

func (c *collector) ClosePath() error {
	if c.cur == nil {
		return nil
	}
	c.cur.closed = true
	c.resume = c.cur.pts[0]
	c.closed = true
	c.cur = nil
	return nil
}

// flattenPolylines flattens p into polylines, dropping subpaths that
// never leave their start point.
func flattenPolylines(p *path.Path, tolerance float64) ([]polyline, error) {
	var c collector
	if err := p.InterpretFlat(tolerance, &c); err != nil {
		return nil, err
	}
	out := c.lines[:0]
	for _, l := range c.lines {
		if len(l.pts) < 2 {
			continue
		}
		if l.closed && l.pts[len(l.pts)-1] != l.pts[0] {
			l.pts = append(l.pts, l.pts[0])
		}
		out = append(out, l)
	}
	return out, nil
}

// dashPolylines splits lines into the "on" parts of the dash pattern.
// Odd-length patterns repeat twice, matching the Dash type of the
// drawing API.
func dashPolylines(lines []polyline, dash []float64, offset float64) []polyline {
	var total float64
	for _, d := range dash {
		total += d
	}
	if total <= 0 {
		return lines
	}

	var out []polyline
	for _, l := range lines {
		pts := l.pts
		idx, remaining := dashStart(dash, offset, total)
		on := idx%2 == 0
		var cur []vec.Vec2
		if on {
			cur = []vec.Vec2{pts[0]}
		}
		for i := 1; i < len(pts); i++ {
			a, b := pts[i-1], pts[i]
			segLen := b.Sub(a).Length()
			pos := 0.0
			for segLen-pos > remaining {
				pos += remaining
				p := a.Add(b.Sub(a).Mul(pos / segLen))
				if on {
					cur = append(cur, p)
					out = append(out, polyline{pts: cur})
					cur = nil
				} else {
					cur = []vec.Vec2{p}
				}
				on = !on
				idx = (idx + 1) % len(dash)
				remaining = dash[idx]
			}
			remaining -= segLen - pos
			if on {
				cur = append(cur, b)
			}
		}
		if on && len(cur) > 1 {
			out = append(out, polyline{pts: cur})
		}
	}
	return out
}

// dashStart returns the pattern index and the length left in that entry
// at the given offset.
func dashStart(dash []float64, offset, total float64) (int, float64) {
	offset = math.Mod(offset, total)
	if offset < 0 {
		offset += total
	}
	for i, d := range dash {
		if offset < d {
			return i, d - offset
		}
		offset -= d
	}
	return 0, dash[0]
}

// stroker turns polylines into filled polygons. Every polygon is wound
// the same way, so overlapping pieces merge under the nonzero rule.
type stroker struct {
	halfWidth  float64
	cap        LineCap
	join       LineJoin
	miterLimit float64
	dash       []float64
	dashOffset float64
}

func newStroker(params *StrokeParams) *stroker {
	scale := 1.0
	if det := params.CTM.Determinant(); det != 0 {
		scale = math.Sqrt(math.Abs(det))
	}
	style := params.Style
	st := &stroker{
		halfWidth:  style.Width / 2 * scale,
		cap:        style.Cap,
		join:       style.Join,
		miterLimit: style.MiterLimit,
	}
	if style.IsDashed() {
		dash := make([]float64, 0, 2*len(style.Dash))
		for _, d := range style.Dash {
			dash = append(dash, math.Abs(d)*scale)
		}
		if len(dash)%2 != 0 {
			dash = append(dash, dash...)
		}
		st.dash = dash
		st.dashOffset = style.DashOffset * scale
	}
	return st
}

// reach is how far, in whole pixels, the outline may extend beyond the
// path extents.
func (st *stroker) reach() int {
	k := math.Sqrt2
	if st.join == LineJoinMiter && st.miterLimit > k {
		k = st.miterLimit
	}
	return int(math.Ceil(st.halfWidth*k)) + 1
}

// normal returns the left normal of a->b scaled to the half width.
func (st *stroker) normal(a, b vec.Vec2) vec.Vec2 {
	d := b.Sub(a)
	l := d.Length()
	if l == 0 {
		return vec.Vec2{}
	}
	return vec.Vec2{X: -d.Y, Y: d.X}.Mul(st.halfWidth / l)
}

func (st *stroker) outline(sink *rasterSink, l polyline) {
	pts := l.pts
	n := len(pts)
	for i := 1; i < n; i++ {
		a, b := pts[i-1], pts[i]
		ln := b.Sub(a).Length()
		if ln == 0 {
			continue
		}
		nv := st.normal(a, b)
		if !l.closed && st.cap == LineCapSquare {
			d := b.Sub(a).Mul(st.halfWidth / ln)
			if i == 1 {
				a = a.Sub(d)
			}
			if i == n-1 {
				b = b.Add(d)
			}
		}
		st.convex(sink, a.Add(nv), b.Add(nv), b.Sub(nv), a.Sub(nv))
	}

	for i := 1; i < n-1; i++ {
		st.joinAt(sink, pts[i-1], pts[i], pts[i+1])
	}
	if l.closed {
		if n > 2 {
			st.joinAt(sink, pts[n-2], pts[0], pts[1])
		}
		return
	}
	if st.cap == LineCapRound {
		st.circle(sink, pts[0])
		st.circle(sink, pts[n-1])
	}
}

// joinAt fills the gap on the outer side of the corner at v.
func (st *stroker) joinAt(sink *rasterSink, prev, v, next vec.Vec2) {
	n1 := st.normal(prev, v)
	n2 := st.normal(v, next)
	turn := cross(v.Sub(prev), next.Sub(v))
	if turn == 0 {
		return
	}
	if turn > 0 {
		n1, n2 = n1.Mul(-1), n2.Mul(-1)
	}

	switch st.join {
	case LineJoinRound:
		st.circle(sink, v)
	case LineJoinMiter:
		sum := n1.Add(n2)
		if ls := sum.Dot(sum); ls > 0 {
			ratio := 2 * st.halfWidth / math.Sqrt(ls)
			if ratio <= st.miterLimit {
				tip := v.Add(sum.Mul(2 * st.halfWidth * st.halfWidth / ls))
				st.convex(sink, v, v.Add(n1), tip, v.Add(n2))
				return
			}
		}
		st.convex(sink, v, v.Add(n1), v.Add(n2))
	default:
		st.convex(sink, v, v.Add(n1), v.Add(n2))
	}
}

func (st *stroker) circle(sink *rasterSink, c vec.Vec2) {
	pts := make([]vec.Vec2, circleSegments)
	for i := range pts {
		s, co := math.Sincos(2 * math.Pi * float64(i) / circleSegments)
		pts[i] = c.Add(vec.Vec2{X: co, Y: s}.Mul(st.halfWidth))
	}
	st.convex(sink, pts...)
}

// convex adds a convex polygon, reversing it when needed so that all
// polygons share one winding.
func (st *stroker) convex(sink *rasterSink, pts ...vec.Vec2) {
	var area float64
	for i := range pts {
		area += cross(pts[i], pts[(i+1)%len(pts)])
	}
	if area == 0 {
		return
	}
	if area > 0 {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	sink.polygon(pts)
}
