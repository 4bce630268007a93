// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image"

	"github.com/gogpu/vgcore/geom"
	"github.com/gogpu/vgcore/path"
)

// Backend is the set of entry points every surface implementation
// provides. Drawing and the remaining entry points are optional
// capabilities, expressed as the interfaces below; a backend implements
// the ones it supports. A capability method may also return
// vgcore.Unsupported to decline a particular call, in which case the
// Surface falls back to its generic implementation.
type Backend interface {
	// Type names the backend kind.
	Type() Type

	// CreateSimilar returns a new surface compatible with this one, or nil
	// to let the caller create an image surface instead.
	CreateSimilar(content Content, width, height int) *Surface

	// Finish releases the backend's resources. No drawing follows.
	Finish() error

	// AcquireSourceImage returns the surface contents as an image for
	// reading. extra is passed back to ReleaseSourceImage.
	AcquireSourceImage() (img *image.RGBA, extra any, err error)

	// ReleaseSourceImage ends a read started by AcquireSourceImage.
	ReleaseSourceImage(img *image.RGBA, extra any)

	// Extents returns the surface bounds. It reports false for unbounded
	// surfaces.
	Extents() (geom.Rectangle, bool)
}

// Painter paints the source everywhere inside the clip.
type Painter interface {
	Paint(op Operator, src Pattern, clip *Clip) error
}

// Masker paints the source through the alpha of mask.
type Masker interface {
	Mask(op Operator, src, mask Pattern, clip *Clip) error
}

// Stroker strokes a device-space path.
type Stroker interface {
	Stroke(op Operator, src Pattern, p *path.Path, params *StrokeParams, clip *Clip) error
}

// Filler fills a device-space path.
type Filler interface {
	Fill(op Operator, src Pattern, p *path.Path, params *FillParams, clip *Clip) error
}

// GlyphShower draws positioned glyphs, optionally with their source text.
type GlyphShower interface {
	ShowTextGlyphs(op Operator, src Pattern, text *Text, font *ScaledFont, clip *Clip) error

	// HasShowTextGlyphs reports whether the backend keeps the text and
	// cluster mapping, not just the glyphs.
	HasShowTextGlyphs() bool
}

// FontOptioner reports the backend's preferred font options.
type FontOptioner interface {
	FontOptions() FontOptions
}

// Flusher completes pending drawing.
type Flusher interface {
	Flush() error
}

// Snapshotter returns an immutable copy of the current contents.
type Snapshotter interface {
	Snapshot() *Surface
}

// DestImageAcquirer exposes the backend's pixels for writing, which is
// what the generic drawing fallback needs. The returned image's Bounds are
// in device space and cover at least interest.
type DestImageAcquirer interface {
	AcquireDestImage(interest geom.Rectangle) (img *image.RGBA, extra any, err error)
	ReleaseDestImage(img *image.RGBA, extra any)
}

// Destroyer is notified when the last reference to a surface is dropped,
// after the surface has been finished. It may resurrect the surface by
// taking a new reference.
type Destroyer interface {
	Destroy(s *Surface)
}
