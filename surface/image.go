// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image"

	"github.com/gogpu/vgcore"
	"github.com/gogpu/vgcore/geom"
)

// imageBackend keeps its pixels in an *image.RGBA. It implements no
// drawing capability of its own; all drawing goes through the generic
// fallback via DestImageAcquirer.
type imageBackend struct {
	img     *image.RGBA
	content Content
}

// NewImage returns an image surface of the given size, cleared to
// transparent black. A negative size yields an InvalidSize error surface
// and an unknown content an InvalidContent one.
//
// Example:
//
//	s := surface.NewImage(surface.ContentColorAlpha, 800, 600)
//	defer s.Destroy()
func NewImage(content Content, width, height int) *Surface {
	if !content.Valid() {
		return NewInError(vgcore.InvalidContent)
	}
	if width < 0 || height < 0 {
		return NewInError(vgcore.InvalidSize)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	return New(&imageBackend{img: img, content: content}, content)
}

// NewImageFromRGBA returns an image surface drawing directly into img.
// Device space origin is img.Bounds().Min.
func NewImageFromRGBA(img *image.RGBA, content Content) *Surface {
	if img == nil {
		return NewInError(vgcore.NoMemory)
	}
	if !content.Valid() {
		return NewInError(vgcore.InvalidContent)
	}
	return New(&imageBackend{img: img, content: content}, content)
}

// ImageRGBA returns the pixels of an image surface. It reports false for
// other surface types and for finished or errored surfaces.
// The image is shared, not copied.
func ImageRGBA(s *Surface) (*image.RGBA, bool) {
	if s.check() != nil {
		return nil, false
	}
	b, ok := s.backend.(*imageBackend)
	if !ok {
		return nil, false
	}
	return b.img, true
}

func (b *imageBackend) Type() Type { return TypeImage }

func (b *imageBackend) CreateSimilar(Content, int, int) *Surface { return nil }

func (b *imageBackend) Finish() error {
	b.img = nil
	return nil
}

func (b *imageBackend) AcquireSourceImage() (*image.RGBA, any, error) {
	return b.img, nil, nil
}

func (b *imageBackend) ReleaseSourceImage(*image.RGBA, any) {}

func (b *imageBackend) AcquireDestImage(geom.Rectangle) (*image.RGBA, any, error) {
	return b.img, nil, nil
}

func (b *imageBackend) ReleaseDestImage(*image.RGBA, any) {}

func (b *imageBackend) Extents() (geom.Rectangle, bool) {
	return geom.RectangleFromImage(b.img.Bounds()), true
}

func (b *imageBackend) FontOptions() FontOptions {
	return FontOptions{Antialias: AntialiasDefault, HintMetrics: HintMetricsOn}
}

// Snapshot copies the pixels into a new image surface.
func (b *imageBackend) Snapshot() *Surface {
	return NewImageFromRGBA(cloneRGBA(b.img), b.content)
}

// cloneRGBA returns a deep copy of img with the same bounds.
func cloneRGBA(img *image.RGBA) *image.RGBA {
	out := image.NewRGBA(img.Bounds())
	if img.Stride == out.Stride {
		copy(out.Pix, img.Pix)
		return out
	}
	r := img.Bounds()
	n := r.Dx() * 4
	for y := r.Min.Y; y < r.Max.Y; y++ {
		src := img.PixOffset(r.Min.X, y)
		dst := out.PixOffset(r.Min.X, y)
		copy(out.Pix[dst:dst+n], img.Pix[src:src+n])
	}
	return out
}
