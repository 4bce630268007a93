package path

import (
	"errors"
	"testing"

	"github.com/gogpu/vgcore"
	"github.com/gogpu/vgcore/geom"
)

func TestCopyEmptyPath(t *testing.T) {
	s := Copy(New(), geom.Identity())
	if s.Status != vgcore.Success {
		t.Errorf("Status = %v, want Success", s.Status)
	}
	if s.Data != nil || s.NumRecords() != 0 {
		t.Errorf("empty path produced %d elements", len(s.Data))
	}
	if s == NilSnapshot() {
		t.Error("empty path returned the shared nil snapshot")
	}
}

func TestCopyLayout(t *testing.T) {
	p := New()
	p.MoveTo(in(1), in(2))
	p.LineTo(in(3), in(4))
	p.CurveTo(in(5), in(6), in(7), in(8), in(9), in(10))
	p.ClosePath()

	s := Copy(p, geom.Scale(0.5, 0.5))
	if s.Status != vgcore.Success {
		t.Fatalf("Status = %v", s.Status)
	}
	if len(s.Data) != 2+2+4+1 {
		t.Fatalf("len(Data) = %d, want 9", len(s.Data))
	}

	wantHeaders := map[int]Header{
		0: {OpMoveTo, 2},
		2: {OpLineTo, 2},
		4: {OpCurveTo, 4},
		8: {OpClosePath, 1},
	}
	for i, h := range wantHeaders {
		if s.Data[i].Header != h {
			t.Errorf("Data[%d].Header = %+v, want %+v", i, s.Data[i].Header, h)
		}
	}
	if got := s.Data[1].Point; got != (UserPoint{0.5, 1}) {
		t.Errorf("MoveTo point = %+v, want {0.5 1}", got)
	}
	if got := s.Data[7].Point; got != (UserPoint{4.5, 5}) {
		t.Errorf("CurveTo end point = %+v, want {4.5 5}", got)
	}
}

func TestSnapshotReplayRoundTrip(t *testing.T) {
	p := buildMixed()
	toUser := geom.Translate(-3, 7).Multiply(geom.Scale(0.5, 2))
	toDevice, ok := toUser.Invert()
	if !ok {
		t.Fatal("matrix not invertible")
	}

	s1 := Copy(p, toUser)
	q := New()
	if err := s1.AppendTo(q, toDevice); err != nil {
		t.Fatalf("AppendTo() error = %v", err)
	}
	if !q.Equal(p) {
		t.Error("replayed path differs from the original")
	}

	s2 := Copy(q, toUser)
	if len(s1.Data) != len(s2.Data) {
		t.Fatalf("re-snapshot has %d elements, want %d", len(s2.Data), len(s1.Data))
	}
	for i := range s1.Data {
		if s1.Data[i] != s2.Data[i] {
			t.Fatalf("element %d: %+v != %+v", i, s1.Data[i], s2.Data[i])
		}
	}
}

func TestCopyFlat(t *testing.T) {
	p := New()
	p.MoveTo(in(0), in(0))
	p.CurveTo(in(0), in(40), in(40), in(40), in(40), in(0))

	s := CopyFlat(p, geom.Identity(), 0.1)
	if s.Status != vgcore.Success {
		t.Fatalf("Status = %v", s.Status)
	}
	n := 0
	for h := range s.Records() {
		if h.Type == OpCurveTo {
			t.Fatal("flat snapshot contains CurveTo")
		}
		n++
	}
	if n < 3 {
		t.Errorf("flat snapshot has %d records, want several", n)
	}
}

func TestCopyFlatDegenerateCurve(t *testing.T) {
	p := New()
	p.MoveTo(in(1), in(1))
	p.CurveTo(in(1), in(1), in(1), in(1), in(1), in(1))

	s := CopyFlat(p, geom.Identity(), 0.1)
	var types []Op
	for h := range s.Records() {
		types = append(types, h.Type)
	}
	if len(types) != 2 || types[0] != OpMoveTo || types[1] != OpLineTo {
		t.Errorf("records = %v, want [MoveTo LineTo]", types)
	}
	if len(s.Data) != 4 {
		t.Errorf("len(Data) = %d, want 4", len(s.Data))
	}
}

func TestCopyLimitReturnsNilSnapshot(t *testing.T) {
	p := buildMixed()
	s := Copy(p, geom.Identity(), WithMaxElements(10))
	if s != NilSnapshot() {
		t.Fatal("over-limit copy did not return the nil snapshot")
	}
	if s.Status != vgcore.NoMemory || s.Data != nil {
		t.Errorf("nil snapshot = %+v", s)
	}
	if err := s.AppendTo(New(), geom.Identity()); !errors.Is(err, vgcore.NoMemory) {
		t.Errorf("AppendTo(nil snapshot) error = %v, want NoMemory", err)
	}
}

func TestSnapshotInError(t *testing.T) {
	if SnapshotInError(vgcore.NoMemory) != NilSnapshot() {
		t.Error("SnapshotInError(NoMemory) is not the shared snapshot")
	}
	s := SnapshotInError(vgcore.InvalidPathData)
	if s.Status != vgcore.InvalidPathData || len(s.Data) != 0 {
		t.Errorf("SnapshotInError() = %+v", s)
	}
}

func TestAppendToValidation(t *testing.T) {
	move := func(x, y float64) []Element {
		return []Element{{Header: Header{OpMoveTo, 2}}, {Point: UserPoint{x, y}}}
	}

	tests := []struct {
		name string
		data []Element
	}{
		{"unknown type", []Element{{Header: Header{Op(9), 1}}}},
		{"short move", []Element{{Header: Header{OpMoveTo, 1}}}},
		{"short curve", []Element{{Header: Header{OpCurveTo, 3}}, {}, {}}},
		{"zero length", []Element{{Header: Header{OpClosePath, 0}}}},
		{"overruns data", []Element{{Header: Header{OpLineTo, 5}}, {}}},
		{"bad record after good", append(move(1, 1), Element{Header: Header{OpLineTo, 1}})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Snapshot{Data: tt.data}
			err := s.AppendTo(New(), geom.Identity())
			if !errors.Is(err, vgcore.InvalidPathData) {
				t.Errorf("AppendTo() error = %v, want InvalidPathData", err)
			}
		})
	}
}

func TestAppendToKeepsEarlierRecords(t *testing.T) {
	s := &Snapshot{Data: []Element{
		{Header: Header{OpMoveTo, 2}}, {Point: UserPoint{1, 1}},
		{Header: Header{OpLineTo, 2}}, {Point: UserPoint{4, 1}},
		{Header: Header{Op(42), 1}},
	}}
	p := New()
	if err := s.AppendTo(p, geom.Identity()); err == nil {
		t.Fatal("AppendTo() succeeded on malformed data")
	}
	n := 0
	for range p.Commands() {
		n++
	}
	if n != 2 {
		t.Errorf("path has %d commands after partial replay, want 2", n)
	}
}

func TestAppendToLongerRecord(t *testing.T) {
	// Records longer than their type requires are allowed; the extra
	// elements are skipped.
	s := &Snapshot{Data: []Element{
		{Header: Header{OpMoveTo, 3}}, {Point: UserPoint{2, 3}}, {},
		{Header: Header{OpClosePath, 1}},
	}}
	p := New()
	if err := s.AppendTo(p, geom.Identity()); err != nil {
		t.Fatalf("AppendTo() error = %v", err)
	}
	cp, ok := p.CurrentPoint()
	if !ok || cp != geom.PtInt(2, 3) {
		t.Errorf("CurrentPoint() = %v, %v, want (2,3)", cp, ok)
	}
}

func TestRecords(t *testing.T) {
	p := New()
	rectPath(p, 0, 0, 1, 1)
	var types []Op
	for h, pts := range Copy(p, geom.Identity()).Records() {
		types = append(types, h.Type)
		if len(pts) != h.Type.NumPoints() {
			t.Errorf("%v record has %d points", h.Type, len(pts))
		}
	}
	want := []Op{OpMoveTo, OpLineTo, OpLineTo, OpLineTo, OpClosePath}
	if len(types) != len(want) {
		t.Fatalf("Records() types = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("record %d = %v, want %v", i, types[i], want[i])
		}
	}
}

func TestOpString(t *testing.T) {
	if OpCurveTo.String() != "CurveTo" {
		t.Errorf("OpCurveTo.String() = %q", OpCurveTo.String())
	}
	if Op(7).String() != "Op(7)" {
		t.Errorf("Op(7).String() = %q", Op(7).String())
	}
}
