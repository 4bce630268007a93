package path

import (
	"iter"

	"github.com/gogpu/vgcore/geom"
)

// Sink receives path commands from Interpret and InterpretFlat.
// Returning an error aborts the traversal; the error is passed back to the
// caller unchanged.
type Sink interface {
	MoveTo(p geom.Point) error
	LineTo(p geom.Point) error
	CurveTo(p1, p2, p3 geom.Point) error
	ClosePath() error
}

func emit(s Sink, op Op, pts []geom.Point) error {
	switch op {
	case OpMoveTo:
		return s.MoveTo(pts[0])
	case OpLineTo:
		return s.LineTo(pts[0])
	case OpCurveTo:
		return s.CurveTo(pts[0], pts[1], pts[2])
	default:
		return s.ClosePath()
	}
}

// Interpret feeds every stored command to s, in storage order for Forward
// or in reverse command order for Backward. The first error returned by s
// stops the traversal and is returned; commands already delivered are not
// undone.
func (p *Path) Interpret(dir Direction, s Sink) error {
	if dir == Backward {
		for i := len(p.bufs) - 1; i >= 0; i-- {
			b := p.bufs[i]
			pts := b.points[:b.nPoints]
			for j := b.nOps - 1; j >= 0; j-- {
				op := b.ops[j]
				start := len(pts) - op.NumPoints()
				if err := emit(s, op, pts[start:]); err != nil {
					return err
				}
				pts = pts[:start]
			}
		}
		return nil
	}

	for _, b := range p.bufs {
		pts := b.points[:b.nPoints]
		for _, op := range b.ops[:b.nOps] {
			n := op.NumPoints()
			if err := emit(s, op, pts[:n]); err != nil {
				return err
			}
			pts = pts[n:]
		}
	}
	return nil
}

// Commands returns an iterator over the stored commands in storage order.
// The point slice aliases the path's storage and is only valid until the
// path is next modified.
func (p *Path) Commands() iter.Seq2[Op, []geom.Point] {
	return func(yield func(Op, []geom.Point) bool) {
		for _, b := range p.bufs {
			pts := b.points[:b.nPoints]
			for _, op := range b.ops[:b.nOps] {
				n := op.NumPoints()
				if !yield(op, pts[:n:n]) {
					return
				}
				pts = pts[n:]
			}
		}
	}
}

// Iter is a read-only cursor over a path's commands. It holds no state in
// the path itself; any number of cursors may walk one path.
type Iter struct {
	path  *Path
	buf   int
	op    int
	point int
}

// Iter returns a cursor positioned at the first command of p.
func (p *Path) Iter() Iter {
	it := Iter{path: p}
	it.skipFull()
	return it
}

// skipFull moves past exhausted chunks.
func (it *Iter) skipFull() {
	bufs := it.path.bufs
	for it.buf < len(bufs) && it.op >= bufs[it.buf].nOps {
		it.buf++
		it.op = 0
		it.point = 0
	}
}

func (it *Iter) peek() (Op, bool) {
	if it.buf >= len(it.path.bufs) {
		return 0, false
	}
	return it.path.bufs[it.buf].ops[it.op], true
}

func (it *Iter) points() []geom.Point {
	b := it.path.bufs[it.buf]
	n := b.ops[it.op].NumPoints()
	return b.points[it.point : it.point+n]
}

func (it *Iter) advance() {
	b := it.path.bufs[it.buf]
	it.point += b.ops[it.op].NumPoints()
	it.op++
	it.skipFull()
}

// AtEnd reports whether the cursor has passed the last command.
func (it *Iter) AtEnd() bool {
	return it.buf >= len(it.path.bufs)
}

// PeekFillBox reports whether the commands at the cursor describe a filled
// axis-aligned rectangle, returning it normalized. The cursor does not move.
func (it *Iter) PeekFillBox() (geom.Box, bool) {
	box, _, ok := it.fillBox()
	return box, ok
}

// NextFillBox is like PeekFillBox but advances the cursor past the
// rectangle when one is found.
func (it *Iter) NextFillBox() (geom.Box, bool) {
	box, next, ok := it.fillBox()
	if ok {
		*it = next
	}
	return box, ok
}

// fillBox matches MoveTo followed by three LineTo commands, then an
// optional closing LineTo back to the start, ClosePath, or the start of
// the next subpath. After a closing LineTo only ClosePath, MoveTo or the
// end of the path may follow.
func (it Iter) fillBox() (geom.Box, Iter, bool) {
	var pts [4]geom.Point
	for i, want := range [4]Op{OpMoveTo, OpLineTo, OpLineTo, OpLineTo} {
		op, ok := it.peek()
		if !ok || op != want {
			return geom.Box{}, it, false
		}
		pts[i] = it.points()[0]
		it.advance()
	}

	if op, ok := it.peek(); ok {
		switch op {
		case OpLineTo:
			if it.points()[0] != pts[0] {
				return geom.Box{}, it, false
			}
			it.advance()
			if op, ok := it.peek(); ok && op == OpClosePath {
				it.advance()
			}
			if op, ok := it.peek(); ok && op != OpMoveTo {
				return geom.Box{}, it, false
			}
		case OpClosePath:
			it.advance()
		case OpMoveTo:
			// The next subpath closes this one.
		default:
			return geom.Box{}, it, false
		}
	}

	switch {
	case pts[0].Y == pts[1].Y && pts[1].X == pts[2].X &&
		pts[2].Y == pts[3].Y && pts[3].X == pts[0].X:
		return geom.NewBox(pts[0], pts[2]), it, true
	case pts[0].X == pts[1].X && pts[1].Y == pts[2].Y &&
		pts[2].X == pts[3].X && pts[3].Y == pts[0].Y:
		return geom.NewBox(pts[1], pts[3]), it, true
	}
	return geom.Box{}, it, false
}

// IsBox reports whether p consists of exactly one filled rectangle.
func (p *Path) IsBox() (geom.Box, bool) {
	it := p.Iter()
	box, ok := it.NextFillBox()
	if !ok || !it.AtEnd() {
		return geom.Box{}, false
	}
	return box, true
}

// FillBoxes returns the rectangles making up p when the whole path is a
// sequence of filled rectangles.
func (p *Path) FillBoxes() ([]geom.Box, bool) {
	var boxes []geom.Box
	for it := p.Iter(); !it.AtEnd(); {
		box, ok := it.NextFillBox()
		if !ok {
			return nil, false
		}
		boxes = append(boxes, box)
	}
	return boxes, true
}
