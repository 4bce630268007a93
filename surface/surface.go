// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"image"

	"github.com/gogpu/vgcore"
	"github.com/gogpu/vgcore/geom"
	"github.com/gogpu/vgcore/path"
	"github.com/gogpu/vgcore/resource"
)

// Surface is a reference-counted drawing target driven by a Backend.
//
// Every drawing call checks the surface first: an errored surface returns
// its recorded error and a finished surface returns SurfaceFinished. The
// call then goes to the backend capability if there is one, and to the
// generic image-based fallback if the backend lacks it or declines with
// vgcore.Unsupported. Errors other than Unsupported are recorded on the
// surface; the first one sticks.
//
// Surfaces are NOT thread-safe, except for Reference and Destroy.
type Surface struct {
	obj      resource.Object
	backend  Backend
	content  Content
	finished bool
}

// New wraps backend in a surface holding one reference.
func New(backend Backend, content Content) *Surface {
	if backend == nil {
		return NewInError(vgcore.NoMemory)
	}
	if !content.Valid() {
		return NewInError(vgcore.InvalidContent)
	}
	s := &Surface{backend: backend, content: content}
	s.obj.Init()
	return s
}

// errorSurfaces holds one shared sentinel per error status.
var errorSurfaces = func() map[vgcore.Status]*Surface {
	m := make(map[vgcore.Status]*Surface)
	for st := vgcore.NoMemory; st <= vgcore.UserError; st++ {
		s := &Surface{content: ContentColorAlpha}
		s.obj.InitNil(st)
		m[st] = s
	}
	return m
}()

// NewInError returns the shared, inert surface reporting status.
// Success and unknown statuses map to the NoMemory surface.
func NewInError(status vgcore.Status) *Surface {
	if s, ok := errorSurfaces[status]; ok {
		return s
	}
	return errorSurfaces[vgcore.NoMemory]
}

// Reference adds a reference to s and returns it.
func (s *Surface) Reference() *Surface {
	if s != nil {
		s.obj.Reference()
	}
	return s
}

// Destroy drops a reference. The last reference finishes the surface and
// notifies a Destroyer backend, which may resurrect it.
func (s *Surface) Destroy() {
	if s == nil {
		return
	}
	s.obj.Release(func() {
		if !s.finished {
			if err := s.Finish(); err != nil {
				vgcore.Logger().Warn("surface: finish on destroy failed",
					"type", string(s.Type()), "err", err)
			}
		}
		if d, ok := s.backend.(Destroyer); ok {
			d.Destroy(s)
		}
	})
}

// ReferenceCount returns the number of references, or 0 for error
// surfaces.
func (s *Surface) ReferenceCount() int {
	if s == nil {
		return 0
	}
	return s.obj.ReferenceCount()
}

// Status returns the first error recorded on s.
func (s *Surface) Status() vgcore.Status {
	if s == nil {
		return vgcore.NoMemory
	}
	return s.obj.Status()
}

// SetError records err's status on s unless an error is already recorded,
// and returns err. Unsupported is never recorded.
func (s *Surface) SetError(err error) error {
	if err == nil || s == nil {
		return err
	}
	st := vgcore.StatusOf(err)
	if st != vgcore.Unsupported {
		_ = s.obj.SetError(st)
	}
	return err
}

// Backend returns the backend driving s, or nil for error surfaces.
func (s *Surface) Backend() Backend {
	if s == nil {
		return nil
	}
	return s.backend
}

// Type returns the backend type, or TypeNone for error surfaces.
func (s *Surface) Type() Type {
	if s == nil || s.backend == nil {
		return TypeNone
	}
	return s.backend.Type()
}

// Content returns the surface content.
func (s *Surface) Content() Content {
	if s == nil {
		return ContentColorAlpha
	}
	return s.content
}

// UserData returns the value stored under key.
func (s *Surface) UserData(key *resource.UserDataKey) any {
	if s == nil {
		return nil
	}
	return s.obj.UserData(key)
}

// SetUserData stores value under key; see resource.Object.SetUserData.
func (s *Surface) SetUserData(key *resource.UserDataKey, value any, destroy resource.DestroyFunc) error {
	if s == nil {
		return vgcore.NoMemory
	}
	return s.obj.SetUserData(key, value, destroy)
}

// IsFinished reports whether Finish has been called.
func (s *Surface) IsFinished() bool {
	return s != nil && s.finished
}

// Finish flushes s and releases its backend resources. Drawing after
// Finish fails with SurfaceFinished. Finishing twice does nothing.
func (s *Surface) Finish() error {
	if s == nil || s.obj.IsNil() {
		return s.Status().Err()
	}
	if s.finished {
		return nil
	}
	flushErr := s.Flush()
	s.finished = true
	finishErr := s.backend.Finish()
	if flushErr != nil {
		return flushErr
	}
	return s.SetError(finishErr)
}

// check returns the error that prevents drawing on s, if any.
func (s *Surface) check() error {
	if st := s.Status(); st != vgcore.Success {
		return st
	}
	if s.finished {
		return s.SetError(vgcore.SurfaceFinished)
	}
	return nil
}

// declined reports whether a capability call should fall back.
func declined(err error) bool {
	return errors.Is(err, vgcore.Unsupported)
}

// Paint paints src everywhere inside clip.
func (s *Surface) Paint(op Operator, src Pattern, clip *Clip) error {
	if err := s.check(); err != nil {
		return err
	}
	if clip.IsAllClipped() {
		return nil
	}
	if p, ok := s.backend.(Painter); ok {
		if err := p.Paint(op, src, clip); !declined(err) {
			return s.SetError(err)
		}
	}
	return s.SetError(fallbackPaint(s, op, src, clip))
}

// Mask paints src through the alpha channel of mask.
func (s *Surface) Mask(op Operator, src, mask Pattern, clip *Clip) error {
	if err := s.check(); err != nil {
		return err
	}
	if clip.IsAllClipped() {
		return nil
	}
	if m, ok := s.backend.(Masker); ok {
		if err := m.Mask(op, src, mask, clip); !declined(err) {
			return s.SetError(err)
		}
	}
	return s.SetError(fallbackMask(s, op, src, mask, clip))
}

// Stroke strokes p, given in device space.
func (s *Surface) Stroke(op Operator, src Pattern, p *path.Path, params *StrokeParams, clip *Clip) error {
	if err := s.check(); err != nil {
		return err
	}
	if clip.IsAllClipped() || p.IsEmpty() {
		return nil
	}
	if st, ok := s.backend.(Stroker); ok {
		if err := st.Stroke(op, src, p, params, clip); !declined(err) {
			return s.SetError(err)
		}
	}
	return s.SetError(fallbackStroke(s, op, src, p, params, clip))
}

// Fill fills p, given in device space.
func (s *Surface) Fill(op Operator, src Pattern, p *path.Path, params *FillParams, clip *Clip) error {
	if err := s.check(); err != nil {
		return err
	}
	if clip.IsAllClipped() || p.FillIsEmpty() {
		return nil
	}
	if f, ok := s.backend.(Filler); ok {
		if err := f.Fill(op, src, p, params, clip); !declined(err) {
			return s.SetError(err)
		}
	}
	return s.SetError(fallbackFill(s, op, src, p, params, clip))
}

// ShowTextGlyphs draws text. There is no generic fallback: backends
// without GlyphShower return vgcore.Unsupported.
func (s *Surface) ShowTextGlyphs(op Operator, src Pattern, text *Text, font *ScaledFont, clip *Clip) error {
	if err := s.check(); err != nil {
		return err
	}
	if !text.Validate() {
		return vgcore.UserError
	}
	if clip.IsAllClipped() || len(text.Glyphs) == 0 {
		return nil
	}
	if g, ok := s.backend.(GlyphShower); ok {
		return s.SetError(g.ShowTextGlyphs(op, src, text, font, clip))
	}
	return vgcore.Unsupported
}

// HasShowTextGlyphs reports whether the backend keeps text and clusters.
func (s *Surface) HasShowTextGlyphs() bool {
	if s.check() != nil {
		return false
	}
	g, ok := s.backend.(GlyphShower)
	return ok && g.HasShowTextGlyphs()
}

// CreateSimilar returns a new surface compatible with s. Failures return
// an error surface.
func (s *Surface) CreateSimilar(content Content, width, height int) *Surface {
	if err := s.check(); err != nil {
		return NewInError(vgcore.StatusOf(err))
	}
	if !content.Valid() {
		return NewInError(vgcore.InvalidContent)
	}
	if width < 0 || height < 0 {
		return NewInError(vgcore.InvalidSize)
	}
	if similar := s.backend.CreateSimilar(content, width, height); similar != nil {
		return similar
	}
	return NewImage(content, width, height)
}

// Extents returns the bounds of s, reporting false when it is unbounded.
func (s *Surface) Extents() (geom.Rectangle, bool) {
	if s.check() != nil {
		return geom.Rectangle{}, false
	}
	return s.backend.Extents()
}

// FontOptions returns the preferred font options of s.
func (s *Surface) FontOptions() FontOptions {
	if s.check() != nil {
		return FontOptions{}
	}
	if f, ok := s.backend.(FontOptioner); ok {
		return f.FontOptions()
	}
	return FontOptions{}
}

// Flush completes pending drawing.
func (s *Surface) Flush() error {
	if st := s.Status(); st != vgcore.Success {
		return st
	}
	if s.finished {
		return nil
	}
	if f, ok := s.backend.(Flusher); ok {
		return s.SetError(f.Flush())
	}
	return nil
}

// Snapshot returns an independent copy of the current contents. Backends
// without Snapshotter are copied through their source image.
func (s *Surface) Snapshot() *Surface {
	if err := s.check(); err != nil {
		return NewInError(vgcore.StatusOf(err))
	}
	if sn, ok := s.backend.(Snapshotter); ok {
		return sn.Snapshot()
	}

	img, extra, err := s.backend.AcquireSourceImage()
	if err != nil {
		return NewInError(vgcore.StatusOf(s.SetError(err)))
	}
	defer s.backend.ReleaseSourceImage(img, extra)
	return NewImageFromRGBA(cloneRGBA(img), s.content)
}

// AcquireSourceImage returns the contents of s for reading.
func (s *Surface) AcquireSourceImage() (*image.RGBA, any, error) {
	if err := s.check(); err != nil {
		return nil, nil, err
	}
	img, extra, err := s.backend.AcquireSourceImage()
	if err != nil {
		return nil, nil, s.SetError(err)
	}
	return img, extra, nil
}

// ReleaseSourceImage ends a read started by AcquireSourceImage.
func (s *Surface) ReleaseSourceImage(img *image.RGBA, extra any) {
	if s == nil || s.backend == nil {
		return
	}
	s.backend.ReleaseSourceImage(img, extra)
}
