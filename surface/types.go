// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image/color"

	"github.com/gogpu/vgcore/font"
	"github.com/gogpu/vgcore/geom"
)

// Type names a surface backend kind. Backends outside this package define
// their own values.
type Type string

// Built-in surface types.
const (
	TypeNone      Type = ""
	TypeImage     Type = "image"
	TypeRecording Type = "recording"
	TypeTee       Type = "tee"
)

// Content describes which channels a surface stores.
type Content uint8

const (
	// ContentColor stores color without alpha.
	ContentColor Content = iota + 1

	// ContentAlpha stores only alpha.
	ContentAlpha

	// ContentColorAlpha stores color and alpha.
	ContentColorAlpha
)

// Valid reports whether c is a known content value.
func (c Content) Valid() bool {
	return c >= ContentColor && c <= ContentColorAlpha
}

func (c Content) String() string {
	switch c {
	case ContentColor:
		return "color"
	case ContentAlpha:
		return "alpha"
	case ContentColorAlpha:
		return "color-alpha"
	}
	return "invalid"
}

// Operator is the compositing operator of a drawing operation.
type Operator uint8

const (
	// OperatorOver draws the source over the destination.
	OperatorOver Operator = iota

	// OperatorSource replaces the destination with the source.
	OperatorSource

	// OperatorClear clears the destination.
	OperatorClear
)

// FillRule specifies how to determine which areas are inside a path.
type FillRule uint8

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota

	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// Antialias selects the antialiasing mode of a drawing operation.
type Antialias uint8

const (
	AntialiasDefault Antialias = iota
	AntialiasNone
	AntialiasGray
)

// LineCap specifies the shape of line endpoints.
type LineCap uint8

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin uint8

const (
	LineJoinMiter LineJoin = iota
	LineJoinRound
	LineJoinBevel
)

// StrokeStyle defines the geometry of a stroke in user space.
type StrokeStyle struct {
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
	Dash       []float64
	DashOffset float64
}

// DefaultStrokeStyle returns a 2 unit wide stroke with butt caps and
// miter joins.
func DefaultStrokeStyle() StrokeStyle {
	return StrokeStyle{
		Width:      2,
		Cap:        LineCapButt,
		Join:       LineJoinMiter,
		MiterLimit: 10,
	}
}

// IsDashed reports whether the style has a dash pattern.
func (s StrokeStyle) IsDashed() bool {
	return len(s.Dash) > 0
}

// StrokeParams carries everything a stroke needs besides the path.
type StrokeParams struct {
	Style      StrokeStyle
	CTM        geom.Matrix
	CTMInverse geom.Matrix
	Tolerance  float64
	Antialias  Antialias
}

// DefaultStrokeParams returns StrokeParams with an identity transform.
func DefaultStrokeParams() StrokeParams {
	return StrokeParams{
		Style:      DefaultStrokeStyle(),
		CTM:        geom.Identity(),
		CTMInverse: geom.Identity(),
		Tolerance:  0.1,
	}
}

// FillParams carries everything a fill needs besides the path.
type FillParams struct {
	Rule      FillRule
	Tolerance float64
	Antialias Antialias
}

// Glyph positions one glyph in device space.
type Glyph struct {
	Index font.GlyphID
	X, Y  float64
}

// TextCluster maps a run of UTF-8 bytes to a run of glyphs.
type TextCluster struct {
	NumBytes  int
	NumGlyphs int
}

// ClusterFlags qualify the cluster mapping of a text run.
type ClusterFlags uint8

const (
	// ClusterBackward means clusters map glyphs in right-to-left order.
	ClusterBackward ClusterFlags = 1 << iota
)

// Text is the input of ShowTextGlyphs: the glyphs to draw plus, for
// backends that can embed it, the source text and its cluster mapping.
type Text struct {
	UTF8     string
	Glyphs   []Glyph
	Clusters []TextCluster
	Flags    ClusterFlags
}

// ScaledFont is a font face at a given size and transform.
type ScaledFont struct {
	Face   *font.Face
	Size   float64
	Matrix geom.Matrix
}

// HintMetrics controls whether glyph metrics are rounded to whole pixels.
type HintMetrics uint8

const (
	HintMetricsDefault HintMetrics = iota
	HintMetricsOff
	HintMetricsOn
)

// FontOptions are the font rendering preferences of a surface.
type FontOptions struct {
	Antialias   Antialias
	HintMetrics HintMetrics
}

// Filter specifies the interpolation used when sampling surface patterns.
type Filter uint8

const (
	// FilterNearest uses nearest-neighbor interpolation.
	FilterNearest Filter = iota

	// FilterBilinear uses bilinear interpolation.
	FilterBilinear
)

// Pattern is a drawing source. The concrete types are SolidPattern and
// *SurfacePattern.
type Pattern interface {
	pattern()
}

// SolidPattern is a single color.
type SolidPattern struct {
	Color color.Color
}

func (SolidPattern) pattern() {}

// SurfacePattern samples another surface. Matrix maps user space to the
// pattern surface's space.
type SurfacePattern struct {
	Surface *Surface
	Matrix  geom.Matrix
	Filter  Filter
}

func (*SurfacePattern) pattern() {}

// NewSurfacePattern returns a pattern sampling s with an identity matrix.
func NewSurfacePattern(s *Surface) *SurfacePattern {
	return &SurfacePattern{Surface: s, Matrix: geom.Identity()}
}

// PatternSurface returns the surface sampled by p, or nil when p does not
// sample a surface.
func PatternSurface(p Pattern) *Surface {
	if sp, ok := p.(*SurfacePattern); ok {
		return sp.Surface
	}
	return nil
}
