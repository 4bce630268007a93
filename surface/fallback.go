// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/vec"

	"github.com/gogpu/vgcore"
	"github.com/gogpu/vgcore/geom"
	"github.com/gogpu/vgcore/path"
)

// The fallback renders on the pixels a backend exposes through
// DestImageAcquirer. Sources and masks are resolved to images aligned with
// device space, so every draw call uses the same point for dst, src and
// mask.

// destination is a locked destination image and the area to touch.
type destination struct {
	acq   DestImageAcquirer
	img   *image.RGBA
	extra any
	rect  image.Rectangle
}

// acquireDest locks the destination pixels covering the surface extents,
// the clip and shape. It returns nil and no error when that area is empty.
func acquireDest(s *Surface, clip *Clip, shape *geom.Rectangle) (*destination, error) {
	acq, ok := s.backend.(DestImageAcquirer)
	if !ok {
		return nil, vgcore.Unsupported
	}

	var area geom.Rectangle
	bounded := false
	narrow := func(r geom.Rectangle) {
		if !bounded {
			area, bounded = r, true
			return
		}
		area, _ = area.Intersect(r)
	}
	if r, ok := s.backend.Extents(); ok {
		narrow(r)
	}
	if r, ok := clip.Extents(); ok {
		narrow(r)
	}
	if shape != nil {
		narrow(*shape)
	}
	if !bounded {
		return nil, vgcore.Unsupported
	}
	if area.IsEmpty() {
		return nil, nil
	}

	img, extra, err := acq.AcquireDestImage(area)
	if err != nil {
		return nil, err
	}
	rect := area.Image().Intersect(img.Bounds())
	if rect.Empty() {
		acq.ReleaseDestImage(img, extra)
		return nil, nil
	}
	vgcore.Logger().Debug("surface: fallback rendering",
		"type", string(s.Type()), "rect", rect)
	return &destination{acq: acq, img: img, extra: extra, rect: rect}, nil
}

func (d *destination) release() {
	d.acq.ReleaseDestImage(d.img, d.extra)
}

// composite draws src through mask onto d. A nil mask means full coverage.
func (d *destination) composite(op Operator, src Pattern, mask image.Image) error {
	var (
		srcImg image.Image
		done   = func() {}
	)
	if op == OperatorClear {
		srcImg = image.Transparent
		op = OperatorSource
	} else {
		var err error
		srcImg, done, err = resolvePattern(src, d.rect)
		if err != nil {
			return err
		}
	}
	defer done()

	r := d.rect
	switch {
	case op == OperatorOver:
		draw.DrawMask(d.img, r, srcImg, r.Min, mask, r.Min, draw.Over)
	case mask == nil:
		draw.Draw(d.img, r, srcImg, r.Min, draw.Src)
	default:
		lerpMask(d.img, r, srcImg, mask)
	}
	return nil
}

// resolvePattern returns an image whose pixel at a device point is the
// color of p there. done releases any borrowed source image.
func resolvePattern(p Pattern, r image.Rectangle) (image.Image, func(), error) {
	switch p := p.(type) {
	case SolidPattern:
		c := p.Color
		if c == nil {
			c = color.Black
		}
		return image.NewUniform(c), func() {}, nil

	case *SurfacePattern:
		if p == nil || p.Surface == nil {
			return nil, nil, vgcore.UserError
		}
		img, extra, err := p.Surface.AcquireSourceImage()
		if err != nil {
			return nil, nil, err
		}
		release := func() { p.Surface.ReleaseSourceImage(img, extra) }

		if tx, ty, ok := p.Matrix.IsIntegerTranslation(); ok {
			view := &image.RGBA{
				Pix:    img.Pix,
				Stride: img.Stride,
				Rect:   img.Rect.Sub(image.Pt(tx, ty)),
			}
			return view, release, nil
		}

		defer release()
		inv, ok := p.Matrix.Invert()
		if !ok {
			return image.Transparent, func() {}, nil
		}
		var interp draw.Interpolator = draw.NearestNeighbor
		if p.Filter == FilterBilinear {
			interp = draw.ApproxBiLinear
		}
		tmp := image.NewRGBA(r)
		interp.Transform(tmp, inv.Aff3(), img, img.Bounds(), draw.Src, nil)
		return tmp, func() {}, nil
	}
	return nil, nil, vgcore.UserError
}

// lerpMask blends src into dst by the mask alpha:
// dst = src*m + dst*(1-m). image/draw has no such operator.
func lerpMask(dst *image.RGBA, r image.Rectangle, src, mask image.Image) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			_, _, _, ma := mask.At(x, y).RGBA()
			if ma == 0 {
				continue
			}
			sr, sg, sb, sa := src.At(x, y).RGBA()
			i := dst.PixOffset(x, y)
			px := dst.Pix[i : i+4 : i+4]
			inv := 0xffff - ma
			px[0] = blend8(sr, px[0], ma, inv)
			px[1] = blend8(sg, px[1], ma, inv)
			px[2] = blend8(sb, px[2], ma, inv)
			px[3] = blend8(sa, px[3], ma, inv)
		}
	}
}

func blend8(s uint32, d uint8, m, inv uint32) uint8 {
	v := (s*m + uint32(d)*0x101*inv) / 0xffff
	return uint8(v >> 8) //nolint:gosec // v <= 0xffff
}

func fallbackPaint(s *Surface, op Operator, src Pattern, clip *Clip) error {
	d, err := acquireDest(s, clip, nil)
	if d == nil {
		return err
	}
	defer d.release()
	return d.composite(op, src, nil)
}

func fallbackMask(s *Surface, op Operator, src, mask Pattern, clip *Clip) error {
	d, err := acquireDest(s, clip, nil)
	if d == nil {
		return err
	}
	defer d.release()

	maskImg, done, err := resolvePattern(mask, d.rect)
	if err != nil {
		return err
	}
	defer done()
	return d.composite(op, src, maskImg)
}

func fallbackFill(s *Surface, op Operator, src Pattern, p *path.Path, params *FillParams, clip *Clip) error {
	aa := AntialiasDefault
	if params != nil {
		if params.Rule == FillRuleEvenOdd {
			return vgcore.Unsupported
		}
		aa = params.Antialias
	}

	shape := p.Extents().RoundOut()
	d, err := acquireDest(s, clip, &shape)
	if d == nil {
		return err
	}
	defer d.release()

	cov, err := rasterize(d.rect, aa, func(sink *rasterSink) error {
		if err := p.Interpret(path.Forward, sink); err != nil {
			return err
		}
		sink.closeOpen()
		return nil
	})
	if err != nil {
		return err
	}
	return d.composite(op, src, cov)
}

func fallbackStroke(s *Surface, op Operator, src Pattern, p *path.Path, params *StrokeParams, clip *Clip) error {
	if params == nil {
		def := DefaultStrokeParams()
		params = &def
	}
	st := newStroker(params)
	if st.halfWidth <= 0 {
		return nil
	}

	shape := p.Extents().RoundOut()
	grow := st.reach()
	shape = geom.Rect(shape.X-grow, shape.Y-grow, shape.Width+2*grow, shape.Height+2*grow)
	d, err := acquireDest(s, clip, &shape)
	if d == nil {
		return err
	}
	defer d.release()

	lines, err := flattenPolylines(p, params.Tolerance)
	if err != nil {
		return err
	}
	if params.Style.IsDashed() {
		lines = dashPolylines(lines, st.dash, st.dashOffset)
	}

	cov, err := rasterize(d.rect, params.Antialias, func(sink *rasterSink) error {
		for _, l := range lines {
			st.outline(sink, l)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return d.composite(op, src, cov)
}

// rasterSink feeds device-space geometry to a vector.Rasterizer whose
// origin is at (ox, oy).
type rasterSink struct {
	z      *vector.Rasterizer
	ox, oy float64
	open   bool
}

func (r *rasterSink) xy(p geom.Point) (float32, float32) {
	return float32(geom.FixedToFloat(p.X) - r.ox), float32(geom.FixedToFloat(p.Y) - r.oy)
}

func (r *rasterSink) closeOpen() {
	if r.open {
		r.z.ClosePath()
		r.open = false
	}
}

func (r *rasterSink) MoveTo(p geom.Point) error {
	r.closeOpen()
	r.z.MoveTo(r.xy(p))
	r.open = true
	return nil
}

func (r *rasterSink) LineTo(p geom.Point) error {
	r.z.LineTo(r.xy(p))
	return nil
}

func (r *rasterSink) CurveTo(p1, p2, p3 geom.Point) error {
	x1, y1 := r.xy(p1)
	x2, y2 := r.xy(p2)
	x3, y3 := r.xy(p3)
	r.z.CubeTo(x1, y1, x2, y2, x3, y3)
	return nil
}

func (r *rasterSink) ClosePath() error {
	r.closeOpen()
	return nil
}

// polygon adds a closed polygon given in device space.
func (r *rasterSink) polygon(pts []vec.Vec2) {
	if len(pts) < 3 {
		return
	}
	r.closeOpen()
	r.z.MoveTo(float32(pts[0].X-r.ox), float32(pts[0].Y-r.oy))
	for _, p := range pts[1:] {
		r.z.LineTo(float32(p.X-r.ox), float32(p.Y-r.oy))
	}
	r.z.ClosePath()
}

// rasterize returns the coverage of the geometry added by build, clipped
// to rect. AntialiasNone thresholds coverage at one half.
func rasterize(rect image.Rectangle, aa Antialias, build func(*rasterSink) error) (*image.Alpha, error) {
	z := vector.NewRasterizer(rect.Dx(), rect.Dy())
	z.DrawOp = draw.Src
	sink := &rasterSink{z: z, ox: float64(rect.Min.X), oy: float64(rect.Min.Y)}
	if err := build(sink); err != nil {
		return nil, err
	}
	sink.closeOpen()

	cov := image.NewAlpha(rect)
	z.Draw(cov, rect, image.Opaque, image.Point{})
	if aa == AntialiasNone {
		for i, a := range cov.Pix {
			if a >= 0x80 {
				cov.Pix[i] = 0xff
			} else {
				cov.Pix[i] = 0
			}
		}
	}
	return cov, nil
}
