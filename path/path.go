package path

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/gogpu/vgcore"
	"github.com/gogpu/vgcore/geom"
)

// Path is a device-space path in fixed-point coordinates.
//
// The zero Path is not ready for use; create paths with New.
// A Path is not safe for concurrent mutation.
type Path struct {
	bufs []*buf

	current  geom.Point
	lastMove geom.Point
	extents  geom.Box

	hasCurrentPoint  bool
	hasLastMovePoint bool
	hasCurveTo       bool
	isRectilinear    bool
	maybeFillRegion  bool
	fillIsEmpty      bool
	hasExtents       bool
}

// New returns an empty path.
func New() *Path {
	p := &Path{bufs: []*buf{{}}}
	p.resetState()
	return p
}

func (p *Path) resetState() {
	p.current = geom.Point{}
	p.lastMove = geom.Point{}
	p.extents = geom.Box{}
	p.hasCurrentPoint = false
	p.hasLastMovePoint = false
	p.hasCurveTo = false
	p.isRectilinear = true
	p.maybeFillRegion = true
	p.fillIsEmpty = true
	p.hasExtents = false
}

// Reset empties the path, keeping its first chunk for reuse.
func (p *Path) Reset() {
	p.bufs[0].reset()
	clear(p.bufs[1:])
	p.bufs = p.bufs[:1]
	p.resetState()
}

// Clone returns a deep copy of p.
func (p *Path) Clone() *Path {
	c := *p
	c.bufs = make([]*buf, len(p.bufs))
	for i, b := range p.bufs {
		cb := *b
		c.bufs[i] = &cb
	}
	return &c
}

func (p *Path) add(op Op, pts ...geom.Point) {
	last := p.bufs[len(p.bufs)-1]
	if !last.hasRoom(len(pts)) {
		last = &buf{}
		p.bufs = append(p.bufs, last)
	}
	last.add(op, pts)

	for _, pt := range pts {
		if !p.hasExtents {
			p.extents = geom.Box{P1: pt, P2: pt}
			p.hasExtents = true
			continue
		}
		p.extents.AddPoint(pt)
	}
}

// closeCheck accounts for the edge that implicitly closes the current
// subpath when it is filled.
func (p *Path) closeCheck() {
	if p.isRectilinear {
		p.isRectilinear = p.current.X == p.lastMove.X || p.current.Y == p.lastMove.Y
		p.maybeFillRegion = p.maybeFillRegion && p.isRectilinear
	}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y geom.Fixed) {
	pt := geom.Pt(x, y)
	if p.hasCurrentPoint {
		p.closeCheck()
	}
	p.add(OpMoveTo, pt)

	if p.maybeFillRegion {
		p.maybeFillRegion = geom.FixedIsInteger(x) && geom.FixedIsInteger(y)
	}
	p.current = pt
	p.lastMove = pt
	p.hasCurrentPoint = true
	p.hasLastMovePoint = true
}

// LineTo adds a straight segment to (x, y). Without a current point it
// behaves as MoveTo.
func (p *Path) LineTo(x, y geom.Fixed) {
	if !p.hasCurrentPoint {
		p.MoveTo(x, y)
		return
	}
	pt := geom.Pt(x, y)
	if p.isRectilinear {
		p.isRectilinear = p.current.X == x || p.current.Y == y
		p.maybeFillRegion = p.maybeFillRegion && p.isRectilinear
	}
	if p.maybeFillRegion {
		p.maybeFillRegion = geom.FixedIsInteger(x) && geom.FixedIsInteger(y)
	}
	if p.fillIsEmpty {
		p.fillIsEmpty = p.current == pt
	}
	p.add(OpLineTo, pt)
	p.current = pt
}

// CurveTo adds a cubic Bézier segment with control points (x1, y1) and
// (x2, y2) ending at (x3, y3). Without a current point the path first moves
// to (x1, y1).
func (p *Path) CurveTo(x1, y1, x2, y2, x3, y3 geom.Fixed) {
	if !p.hasCurrentPoint {
		p.MoveTo(x1, y1)
	}
	end := geom.Pt(x3, y3)
	p.add(OpCurveTo, geom.Pt(x1, y1), geom.Pt(x2, y2), end)

	p.hasCurveTo = true
	p.isRectilinear = false
	p.maybeFillRegion = false
	p.fillIsEmpty = false
	p.current = end
}

// ClosePath closes the current subpath. The current point becomes the
// subpath's start. Without a current point it does nothing.
func (p *Path) ClosePath() {
	if !p.hasCurrentPoint {
		return
	}
	p.closeCheck()
	p.add(OpClosePath)
	p.current = p.lastMove
}

// RelMoveTo starts a new subpath offset from the current point.
func (p *Path) RelMoveTo(dx, dy geom.Fixed) error {
	if !p.hasCurrentPoint {
		return vgcore.NoCurrentPoint
	}
	p.MoveTo(p.current.X+dx, p.current.Y+dy)
	return nil
}

// RelLineTo adds a line offset from the current point.
func (p *Path) RelLineTo(dx, dy geom.Fixed) error {
	if !p.hasCurrentPoint {
		return vgcore.NoCurrentPoint
	}
	p.LineTo(p.current.X+dx, p.current.Y+dy)
	return nil
}

// RelCurveTo adds a curve whose points are offsets from the current point.
func (p *Path) RelCurveTo(dx1, dy1, dx2, dy2, dx3, dy3 geom.Fixed) error {
	if !p.hasCurrentPoint {
		return vgcore.NoCurrentPoint
	}
	c := p.current
	p.CurveTo(c.X+dx1, c.Y+dy1, c.X+dx2, c.Y+dy2, c.X+dx3, c.Y+dy3)
	return nil
}

// CurrentPoint returns the current point, if there is one.
func (p *Path) CurrentPoint() (geom.Point, bool) {
	return p.current, p.hasCurrentPoint
}

// LastMovePoint returns the start of the current subpath, if there is one.
func (p *Path) LastMovePoint() (geom.Point, bool) {
	return p.lastMove, p.hasLastMovePoint
}

// Extents returns the box covering every stored point, control points
// included. It is the zero Box for an empty path.
func (p *Path) Extents() geom.Box {
	return p.extents
}

// IsEmpty reports whether the path holds no commands.
func (p *Path) IsEmpty() bool {
	return p.bufs[0].nOps == 0
}

// HasCurveTo reports whether the path contains a curve.
func (p *Path) HasCurveTo() bool { return p.hasCurveTo }

// IsRectilinear reports whether every segment, including closing segments,
// is horizontal or vertical.
func (p *Path) IsRectilinear() bool { return p.isRectilinear }

// IsRectilinearFill reports whether filling the path only produces
// horizontal and vertical edges, counting the implicit close of the open
// subpath.
func (p *Path) IsRectilinearFill() bool {
	if !p.isRectilinear {
		return false
	}
	if !p.hasCurrentPoint {
		return true
	}
	return p.current.X == p.lastMove.X || p.current.Y == p.lastMove.Y
}

// MaybeFillRegion reports whether the fill could be a union of
// pixel-aligned rectangles.
func (p *Path) MaybeFillRegion() bool { return p.maybeFillRegion }

// FillIsEmpty reports whether filling the path covers no area.
func (p *Path) FillIsEmpty() bool { return p.fillIsEmpty }

// Translate offsets every stored point and the tracked state by (dx, dy).
func (p *Path) Translate(dx, dy geom.Fixed) {
	if dx == 0 && dy == 0 {
		return
	}
	for _, b := range p.bufs {
		for i := range b.points[:b.nPoints] {
			b.points[i].X += dx
			b.points[i].Y += dy
		}
	}
	p.current.X += dx
	p.current.Y += dy
	p.lastMove.X += dx
	p.lastMove.Y += dy
	if p.hasExtents {
		p.extents = p.extents.Translate(dx, dy)
	}
	if p.maybeFillRegion {
		p.maybeFillRegion = geom.FixedIsInteger(dx) && geom.FixedIsInteger(dy)
	}
}

// Append copies the commands of other onto p, offset by (tx, ty), in the
// given direction.
func (p *Path) Append(other *Path, dir Direction, tx, ty geom.Fixed) error {
	if other == p {
		other = p.Clone()
	}
	return other.Interpret(dir, &appender{p: p, tx: tx, ty: ty})
}

type appender struct {
	p      *Path
	tx, ty geom.Fixed
}

func (a *appender) MoveTo(pt geom.Point) error {
	a.p.MoveTo(pt.X+a.tx, pt.Y+a.ty)
	return nil
}

func (a *appender) LineTo(pt geom.Point) error {
	a.p.LineTo(pt.X+a.tx, pt.Y+a.ty)
	return nil
}

func (a *appender) CurveTo(p1, p2, p3 geom.Point) error {
	a.p.CurveTo(p1.X+a.tx, p1.Y+a.ty, p2.X+a.tx, p2.Y+a.ty, p3.X+a.tx, p3.Y+a.ty)
	return nil
}

func (a *appender) ClosePath() error {
	a.p.ClosePath()
	return nil
}

// Size returns the number of stored commands plus stored points.
func (p *Path) Size() int {
	n := 0
	for _, b := range p.bufs {
		n += b.nOps + b.nPoints
	}
	return n
}

// Hash returns an FNV-1a hash of the command stream. Equal paths hash
// equally regardless of how their commands are split across chunks.
func (p *Path) Hash() uint64 {
	h := fnv.New64a()
	var scratch [8]byte
	for op, pts := range p.Commands() {
		_, _ = h.Write([]byte{byte(op)})
		for _, pt := range pts {
			binary.LittleEndian.PutUint32(scratch[0:4], uint32(pt.X))
			binary.LittleEndian.PutUint32(scratch[4:8], uint32(pt.Y))
			_, _ = h.Write(scratch[:])
		}
	}
	return h.Sum64()
}

// Equal reports whether p and other hold the same commands and points and
// share the same summary state.
func (p *Path) Equal(other *Path) bool {
	if p == other {
		return true
	}
	if other == nil {
		return false
	}
	if p.hasCurrentPoint != other.hasCurrentPoint ||
		p.hasCurveTo != other.hasCurveTo ||
		p.isRectilinear != other.isRectilinear ||
		p.maybeFillRegion != other.maybeFillRegion ||
		p.fillIsEmpty != other.fillIsEmpty ||
		p.extents != other.extents {
		return false
	}

	a, b := p.Iter(), other.Iter()
	for {
		opA, okA := a.peek()
		opB, okB := b.peek()
		if okA != okB {
			return false
		}
		if !okA {
			return true
		}
		if opA != opB {
			return false
		}
		ptsA, ptsB := a.points(), b.points()
		for i := range ptsA {
			if ptsA[i] != ptsB[i] {
				return false
			}
		}
		a.advance()
		b.advance()
	}
}
