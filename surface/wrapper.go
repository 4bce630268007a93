// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image"

	"github.com/gogpu/vgcore"
	"github.com/gogpu/vgcore/geom"
	"github.com/gogpu/vgcore/path"
)

// Wrapper forwards drawing to a target surface, optionally restricted to
// an extents rectangle. It shares its target: NewWrapper takes a
// reference and Fini drops it.
//
// A Wrapper is not safe for concurrent use.
type Wrapper struct {
	target     *Surface
	extents    geom.Rectangle
	hasExtents bool
}

// NewWrapper returns a wrapper around target.
func NewWrapper(target *Surface) *Wrapper {
	return &Wrapper{target: target.Reference()}
}

// SetExtents restricts every forwarded drawing call to r.
func (w *Wrapper) SetExtents(r geom.Rectangle) {
	w.extents, w.hasExtents = r, true
}

// ClearExtents removes the extents restriction.
func (w *Wrapper) ClearExtents() {
	w.extents, w.hasExtents = geom.Rectangle{}, false
}

// Fini drops the wrapper's reference to its target and detaches it.
func (w *Wrapper) Fini() {
	if w.target != nil {
		w.target.Destroy()
		w.target = nil
	}
}

// IsActive reports whether a target is attached.
func (w *Wrapper) IsActive() bool {
	return w != nil && w.target != nil
}

// Target returns the wrapped surface, or nil after Fini.
func (w *Wrapper) Target() *Surface {
	if w == nil {
		return nil
	}
	return w.target
}

// Status returns the status of the target. A detached wrapper reports
// SurfaceFinished.
func (w *Wrapper) Status() vgcore.Status {
	if !w.IsActive() {
		return vgcore.SurfaceFinished
	}
	return w.target.Status()
}

// clip intersects the caller's clip with the wrapper extents.
func (w *Wrapper) clip(c *Clip) *Clip {
	if !w.hasExtents {
		return c
	}
	return c.IntersectRect(w.extents)
}

// Paint forwards a paint to the target inside the wrapper extents. A
// call that is clipped away entirely succeeds without drawing.
func (w *Wrapper) Paint(op Operator, src Pattern, clip *Clip) error {
	if !w.IsActive() {
		return vgcore.SurfaceFinished
	}
	c := w.clip(clip)
	if c.IsAllClipped() {
		return nil
	}
	return w.target.Paint(op, src, c)
}

// Mask forwards a masked paint to the target, clipped like Paint.
func (w *Wrapper) Mask(op Operator, src, mask Pattern, clip *Clip) error {
	if !w.IsActive() {
		return vgcore.SurfaceFinished
	}
	c := w.clip(clip)
	if c.IsAllClipped() {
		return nil
	}
	return w.target.Mask(op, src, mask, c)
}

// Stroke forwards a stroke to the target, clipped like Paint.
func (w *Wrapper) Stroke(op Operator, src Pattern, p *path.Path, params *StrokeParams, clip *Clip) error {
	if !w.IsActive() {
		return vgcore.SurfaceFinished
	}
	c := w.clip(clip)
	if c.IsAllClipped() {
		return nil
	}
	return w.target.Stroke(op, src, p, params, c)
}

// Fill forwards a fill to the target, clipped like Paint.
func (w *Wrapper) Fill(op Operator, src Pattern, p *path.Path, params *FillParams, clip *Clip) error {
	if !w.IsActive() {
		return vgcore.SurfaceFinished
	}
	c := w.clip(clip)
	if c.IsAllClipped() {
		return nil
	}
	return w.target.Fill(op, src, p, params, c)
}

// ShowTextGlyphs forwards glyphs to the target, clipped like Paint.
func (w *Wrapper) ShowTextGlyphs(op Operator, src Pattern, text *Text, font *ScaledFont, clip *Clip) error {
	if !w.IsActive() {
		return vgcore.SurfaceFinished
	}
	c := w.clip(clip)
	if c.IsAllClipped() {
		return nil
	}
	return w.target.ShowTextGlyphs(op, src, text, font, c)
}

// HasShowTextGlyphs reports whether the target accepts clustered text.
func (w *Wrapper) HasShowTextGlyphs() bool {
	return w.IsActive() && w.target.HasShowTextGlyphs()
}

// CreateSimilar creates a surface similar to the target. A detached
// wrapper returns a SurfaceFinished error surface.
func (w *Wrapper) CreateSimilar(content Content, width, height int) *Surface {
	if !w.IsActive() {
		return NewInError(vgcore.SurfaceFinished)
	}
	return w.target.CreateSimilar(content, width, height)
}

// Extents returns the target extents limited to the wrapper extents.
func (w *Wrapper) Extents() (geom.Rectangle, bool) {
	if !w.IsActive() {
		return geom.Rectangle{}, false
	}
	r, bounded := w.target.Extents()
	if !w.hasExtents {
		return r, bounded
	}
	if !bounded {
		return w.extents, true
	}
	r, _ = r.Intersect(w.extents)
	return r, true
}

// FontOptions returns the target's font options.
func (w *Wrapper) FontOptions() FontOptions {
	if !w.IsActive() {
		return FontOptions{}
	}
	return w.target.FontOptions()
}

// Flush flushes the target.
func (w *Wrapper) Flush() error {
	if !w.IsActive() {
		return vgcore.SurfaceFinished
	}
	return w.target.Flush()
}

// Snapshot returns a snapshot of the target.
func (w *Wrapper) Snapshot() *Surface {
	if !w.IsActive() {
		return NewInError(vgcore.SurfaceFinished)
	}
	return w.target.Snapshot()
}

// AcquireSourceImage reads the target's pixels. The image must be handed
// back to ReleaseSourceImage on the same wrapper.
func (w *Wrapper) AcquireSourceImage() (*image.RGBA, any, error) {
	if !w.IsActive() {
		return nil, nil, vgcore.SurfaceFinished
	}
	return w.target.AcquireSourceImage()
}

// ReleaseSourceImage releases an image from AcquireSourceImage.
func (w *Wrapper) ReleaseSourceImage(img *image.RGBA, extra any) {
	if w.IsActive() {
		w.target.ReleaseSourceImage(img, extra)
	}
}
