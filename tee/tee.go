// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tee

import (
	"image"

	"github.com/gogpu/vgcore"
	"github.com/gogpu/vgcore/geom"
	"github.com/gogpu/vgcore/path"
	"github.com/gogpu/vgcore/surface"
)

// backend fans drawing out to its targets.
type backend struct {
	master *surface.Wrapper
	slaves []*surface.Wrapper
}

// New returns a tee surface with master as its first target. The tee
// takes a reference to master. An errored master yields an error surface
// carrying the master's status.
func New(master *surface.Surface) *surface.Surface {
	if st := master.Status(); st != vgcore.Success {
		return surface.NewInError(st)
	}
	b := &backend{master: surface.NewWrapper(master)}
	return surface.New(b, master.Content())
}

// teeOf returns the tee backend of s, recording the reason on s when s
// cannot be used as a tee.
func teeOf(s *surface.Surface) (*backend, error) {
	if st := s.Status(); st != vgcore.Success {
		return nil, st
	}
	if s.IsFinished() {
		return nil, s.SetError(vgcore.SurfaceFinished)
	}
	b, ok := s.Backend().(*backend)
	if !ok {
		return nil, s.SetError(vgcore.SurfaceTypeMismatch)
	}
	return b, nil
}

// Add appends target to the slaves of the tee s, taking a reference.
// An errored target records its status on s.
func Add(s, target *surface.Surface) error {
	b, err := teeOf(s)
	if err != nil {
		return err
	}
	if st := target.Status(); st != vgcore.Success {
		return s.SetError(st)
	}
	b.slaves = append(b.slaves, surface.NewWrapper(target))
	return nil
}

// Remove detaches the slave target from the tee s. Removing the master or
// a surface that is not a slave records InvalidIndex on s.
func Remove(s, target *surface.Surface) error {
	b, err := teeOf(s)
	if err != nil {
		return err
	}
	if target == b.master.Target() {
		return s.SetError(vgcore.InvalidIndex)
	}
	for i, w := range b.slaves {
		if w.Target() != target {
			continue
		}
		w.Fini()
		b.slaves = append(b.slaves[:i], b.slaves[i+1:]...)
		return nil
	}
	return s.SetError(vgcore.InvalidIndex)
}

// Index returns target i of the tee s: 0 is the master and 1..N the
// slaves. The result is borrowed, not referenced. Failures return an
// error surface and leave s untouched.
func Index(s *surface.Surface, i int) *surface.Surface {
	if st := s.Status(); st != vgcore.Success {
		return surface.NewInError(st)
	}
	if s.IsFinished() {
		return surface.NewInError(vgcore.SurfaceFinished)
	}
	b, ok := s.Backend().(*backend)
	if !ok {
		return surface.NewInError(vgcore.SurfaceTypeMismatch)
	}
	if i == 0 {
		return b.master.Target()
	}
	if i < 0 || i > len(b.slaves) {
		return surface.NewInError(vgcore.InvalidIndex)
	}
	return b.slaves[i-1].Target()
}

// FindMatch returns the first target of the tee s with backend type typ
// and the given content, or failing that the first with type typ.
// Master is checked before slaves at each stage. It returns nil when
// nothing matches or s is not a usable tee.
func FindMatch(s *surface.Surface, typ surface.Type, content surface.Content) *surface.Surface {
	if s.Status() != vgcore.Success || s.IsFinished() {
		return nil
	}
	b, ok := s.Backend().(*backend)
	if !ok {
		return nil
	}
	return b.findMatch(typ, content)
}

func (b *backend) findMatch(typ surface.Type, content surface.Content) *surface.Surface {
	for _, w := range b.targets() {
		if t := w.Target(); t.Type() == typ && t.Content() == content {
			return t
		}
	}
	for _, w := range b.targets() {
		if t := w.Target(); t.Type() == typ {
			return t
		}
	}
	return nil
}

// targets returns master followed by the slaves.
func (b *backend) targets() []*surface.Wrapper {
	all := make([]*surface.Wrapper, 0, 1+len(b.slaves))
	all = append(all, b.master)
	return append(all, b.slaves...)
}

// matchSource rewrites a source sampling a tee so that the destination
// reads the sub-target of its own kind instead. The sub-target at the
// destination's index is used when its type and content both match;
// otherwise FindMatch picks one. The returned pattern is only valid for
// one call.
func matchSource(src surface.Pattern, index int, dest *surface.Wrapper) surface.Pattern {
	sp, ok := src.(*surface.SurfacePattern)
	if !ok || sp == nil || sp.Surface.Type() != surface.TypeTee {
		return src
	}
	target := dest.Target()

	match := Index(sp.Surface, index)
	if match.Status() != vgcore.Success || match.Type() != target.Type() ||
		match.Content() != target.Content() {
		match = FindMatch(sp.Surface, target.Type(), target.Content())
	}
	if match == nil {
		return src
	}
	rewritten := *sp
	rewritten.Surface = match
	return &rewritten
}

// dispatch runs draw on every target, master first, and stops at the
// first failure.
func (b *backend) dispatch(op string, src surface.Pattern, draw func(w *surface.Wrapper, src surface.Pattern) error) error {
	for i, w := range b.targets() {
		if err := draw(w, matchSource(src, i, w)); err != nil {
			vgcore.Logger().Debug("tee: dispatch halted",
				"op", op, "index", i, "type", string(w.Target().Type()), "err", err)
			return err
		}
	}
	return nil
}

func (b *backend) Type() surface.Type { return surface.TypeTee }

// CreateSimilar returns a tee of surfaces similar to each target. Any
// failure discards the partial tee and returns an error surface.
func (b *backend) CreateSimilar(content surface.Content, width, height int) *surface.Surface {
	master := b.master.CreateSimilar(content, width, height)
	t := New(master)
	master.Destroy()

	for _, w := range b.slaves {
		similar := w.CreateSimilar(content, width, height)
		_ = Add(t, similar)
		similar.Destroy()
	}

	if st := t.Status(); st != vgcore.Success {
		t.Destroy()
		return surface.NewInError(st)
	}
	return t
}

func (b *backend) Finish() error {
	for _, w := range b.targets() {
		w.Fini()
	}
	b.slaves = nil
	return nil
}

// acquired remembers which target served AcquireSourceImage.
type acquired struct {
	w     *surface.Wrapper
	extra any
}

// AcquireSourceImage reads from an image target when there is one, the
// master otherwise.
func (b *backend) AcquireSourceImage() (*image.RGBA, any, error) {
	w := b.master
	for _, t := range b.targets() {
		if t.Target().Type() == surface.TypeImage {
			w = t
			break
		}
	}
	img, extra, err := w.AcquireSourceImage()
	if err != nil {
		return nil, nil, err
	}
	return img, &acquired{w: w, extra: extra}, nil
}

func (b *backend) ReleaseSourceImage(img *image.RGBA, extra any) {
	if a, ok := extra.(*acquired); ok {
		a.w.ReleaseSourceImage(img, a.extra)
	}
}

// Snapshot copies a recording target when there is one, the master
// otherwise.
func (b *backend) Snapshot() *surface.Surface {
	for _, w := range b.targets() {
		if w.Target().Type() == surface.TypeRecording {
			return w.Snapshot()
		}
	}
	return b.master.Snapshot()
}

func (b *backend) Extents() (geom.Rectangle, bool) {
	return b.master.Extents()
}

func (b *backend) FontOptions() surface.FontOptions {
	return b.master.FontOptions()
}

func (b *backend) Flush() error {
	for i, w := range b.targets() {
		if err := w.Flush(); err != nil {
			vgcore.Logger().Debug("tee: flush halted", "index", i, "err", err)
			return err
		}
	}
	return nil
}

func (b *backend) Paint(op surface.Operator, src surface.Pattern, clip *surface.Clip) error {
	return b.dispatch("paint", src, func(w *surface.Wrapper, src surface.Pattern) error {
		return w.Paint(op, src, clip)
	})
}

func (b *backend) Mask(op surface.Operator, src, mask surface.Pattern, clip *surface.Clip) error {
	return b.dispatch("mask", src, func(w *surface.Wrapper, src surface.Pattern) error {
		return w.Mask(op, src, mask, clip)
	})
}

func (b *backend) Stroke(op surface.Operator, src surface.Pattern, p *path.Path, params *surface.StrokeParams, clip *surface.Clip) error {
	return b.dispatch("stroke", src, func(w *surface.Wrapper, src surface.Pattern) error {
		return w.Stroke(op, src, p, params, clip)
	})
}

func (b *backend) Fill(op surface.Operator, src surface.Pattern, p *path.Path, params *surface.FillParams, clip *surface.Clip) error {
	return b.dispatch("fill", src, func(w *surface.Wrapper, src surface.Pattern) error {
		return w.Fill(op, src, p, params, clip)
	})
}

// ShowTextGlyphs gives every target its own copy of the glyphs, since a
// target may adjust glyph positions in place.
func (b *backend) ShowTextGlyphs(op surface.Operator, src surface.Pattern, text *surface.Text, font *surface.ScaledFont, clip *surface.Clip) error {
	return b.dispatch("show_text_glyphs", src, func(w *surface.Wrapper, src surface.Pattern) error {
		t := *text
		t.Glyphs = append([]surface.Glyph(nil), text.Glyphs...)
		return w.ShowTextGlyphs(op, src, &t, font, clip)
	})
}

func (b *backend) HasShowTextGlyphs() bool { return true }
