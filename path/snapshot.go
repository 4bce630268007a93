package path

import (
	"errors"
	"fmt"
	"iter"

	"github.com/gogpu/vgcore"
	"github.com/gogpu/vgcore/geom"
)

// Header starts a snapshot record. Length counts the header itself plus
// the points that follow it.
type Header struct {
	Type   Op
	Length int
}

// UserPoint is a user-space point in a snapshot.
type UserPoint struct {
	X, Y float64
}

// Element is one slot of a snapshot: either a record header or a point,
// depending on its position in the data.
type Element struct {
	Header Header
	Point  UserPoint
}

// recordLength returns the minimum length of a record of type op.
func recordLength(op Op) (int, bool) {
	switch op {
	case OpMoveTo, OpLineTo:
		return 2, true
	case OpCurveTo:
		return 4, true
	case OpClosePath:
		return 1, true
	}
	return 0, false
}

// Snapshot is a flat user-space copy of a path. Data holds one record per
// command: a header element followed by Length-1 point elements.
type Snapshot struct {
	Status vgcore.Status
	Data   []Element
}

var nilSnapshot = &Snapshot{Status: vgcore.NoMemory}

// NilSnapshot returns the shared snapshot reporting NoMemory. It has no
// data and must not be modified.
func NilSnapshot() *Snapshot {
	return nilSnapshot
}

// SnapshotInError returns an empty snapshot carrying status. NoMemory
// yields the shared NilSnapshot.
func SnapshotInError(status vgcore.Status) *Snapshot {
	if status == vgcore.NoMemory {
		return nilSnapshot
	}
	return &Snapshot{Status: status}
}

// DefaultMaxElements is the default limit on the number of elements a
// snapshot may allocate.
const DefaultMaxElements = 1 << 24

// CopyOption configures Copy and CopyFlat.
type CopyOption func(*copyConfig)

type copyConfig struct {
	maxElements int
}

// WithMaxElements limits how many elements a snapshot may allocate. A path
// that needs more produces NilSnapshot.
func WithMaxElements(n int) CopyOption {
	return func(c *copyConfig) {
		c.maxElements = n
	}
}

var errTooLarge = errors.New("path: snapshot exceeds element limit")

// Copy exports p as a snapshot, mapping every device-space point through
// toUser.
func Copy(p *Path, toUser geom.Matrix, opts ...CopyOption) *Snapshot {
	return copyPath(p, toUser, false, 0, opts)
}

// CopyFlat is like Copy but replaces curves with line segments within
// tolerance device units.
func CopyFlat(p *Path, toUser geom.Matrix, tolerance float64, opts ...CopyOption) *Snapshot {
	return copyPath(p, toUser, true, tolerance, opts)
}

func interpret(p *Path, flat bool, tolerance float64, s Sink) error {
	if flat {
		return p.InterpretFlat(tolerance, s)
	}
	return p.Interpret(Forward, s)
}

func copyPath(p *Path, toUser geom.Matrix, flat bool, tolerance float64, opts []CopyOption) *Snapshot {
	cfg := copyConfig{maxElements: DefaultMaxElements}
	for _, opt := range opts {
		opt(&cfg)
	}

	c := counter{limit: cfg.maxElements}
	if err := interpret(p, flat, tolerance, &c); err != nil {
		vgcore.Logger().Warn("path: snapshot count failed", "err", err)
		return nilSnapshot
	}
	if c.n == 0 {
		return &Snapshot{Status: vgcore.Success}
	}

	w := populator{data: make([]Element, c.n), toUser: toUser}
	if err := interpret(p, flat, tolerance, &w); err != nil {
		return &Snapshot{Status: vgcore.StatusOf(err), Data: w.data}
	}
	if w.n != len(w.data) {
		panic(fmt.Sprintf("path: snapshot populated %d of %d elements", w.n, len(w.data)))
	}
	return &Snapshot{Status: vgcore.Success, Data: w.data}
}

// counter is the first pass: it sizes the snapshot.
type counter struct {
	n     int
	limit int
}

func (c *counter) add(n int) error {
	if c.n > c.limit-n {
		return errTooLarge
	}
	c.n += n
	return nil
}

func (c *counter) MoveTo(geom.Point) error { return c.add(2) }
func (c *counter) LineTo(geom.Point) error { return c.add(2) }
func (c *counter) CurveTo(_, _, _ geom.Point) error { return c.add(4) }
func (c *counter) ClosePath() error { return c.add(1) }

// populator is the second pass: it fills the exactly sized data.
type populator struct {
	data   []Element
	n      int
	toUser geom.Matrix
}

func (w *populator) record(op Op, pts ...geom.Point) error {
	length := 1 + len(pts)
	if w.n+length > len(w.data) {
		panic(fmt.Sprintf("path: snapshot record overruns %d counted elements", len(w.data)))
	}
	w.data[w.n].Header = Header{Type: op, Length: length}
	for i, pt := range pts {
		x, y := w.toUser.TransformPoint(geom.FixedToFloat(pt.X), geom.FixedToFloat(pt.Y))
		w.data[w.n+1+i].Point = UserPoint{X: x, Y: y}
	}
	w.n += length
	return nil
}

func (w *populator) MoveTo(p geom.Point) error { return w.record(OpMoveTo, p) }
func (w *populator) LineTo(p geom.Point) error { return w.record(OpLineTo, p) }
func (w *populator) CurveTo(p1, p2, p3 geom.Point) error {
	return w.record(OpCurveTo, p1, p2, p3)
}
func (w *populator) ClosePath() error { return w.record(OpClosePath) }

// AppendTo replays the snapshot onto p, mapping every point through
// toDevice. A snapshot with a non-success status returns that status.
// Each record is checked before it is applied; a malformed record stops
// the replay with InvalidPathData, leaving earlier records applied.
func (s *Snapshot) AppendTo(p *Path, toDevice geom.Matrix) error {
	if s.Status != vgcore.Success {
		return s.Status
	}

	dev := func(e Element) (geom.Fixed, geom.Fixed) {
		x, y := toDevice.TransformPoint(e.Point.X, e.Point.Y)
		return geom.FloatToFixed(x), geom.FloatToFixed(y)
	}

	data := s.Data
	for i := 0; i < len(data); {
		h := data[i].Header
		minLen, known := recordLength(h.Type)
		if !known || h.Length < minLen || h.Length > len(data)-i {
			return vgcore.InvalidPathData
		}

		switch h.Type {
		case OpMoveTo:
			p.MoveTo(dev(data[i+1]))
		case OpLineTo:
			p.LineTo(dev(data[i+1]))
		case OpCurveTo:
			x1, y1 := dev(data[i+1])
			x2, y2 := dev(data[i+2])
			x3, y3 := dev(data[i+3])
			p.CurveTo(x1, y1, x2, y2, x3, y3)
		case OpClosePath:
			p.ClosePath()
		}
		i += h.Length
	}
	return nil
}

// NumRecords returns the number of records, stopping at the first
// malformed one.
func (s *Snapshot) NumRecords() int {
	n := 0
	for range s.Records() {
		n++
	}
	return n
}

// Records returns an iterator over the snapshot's records. Iteration stops
// at the first malformed record. The point slice is reused between
// records.
func (s *Snapshot) Records() iter.Seq2[Header, []UserPoint] {
	return func(yield func(Header, []UserPoint) bool) {
		var pts []UserPoint
		data := s.Data
		for i := 0; i < len(data); {
			h := data[i].Header
			minLen, known := recordLength(h.Type)
			if !known || h.Length < minLen || h.Length > len(data)-i {
				return
			}
			pts = pts[:0]
			for _, e := range data[i+1 : i+minLen] {
				pts = append(pts, e.Point)
			}
			if !yield(h, pts) {
				return
			}
			i += h.Length
		}
	}
}
