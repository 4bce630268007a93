// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the drawing target abstraction of vgcore.
//
// A [Surface] is a reference-counted resource driven by a [Backend]. The
// same drawing calls work with:
//
//   - CPU pixel buffers (NewImage)
//   - Command capture (package recording)
//   - Fan-out to several targets (package tee)
//   - Third-party backends via the registry
//
// # Backends
//
// Backend is the small required set every implementation provides:
// CreateSimilar, Finish, source image access and Extents. Everything else
// is an optional capability interface ([Painter], [Filler], [Stroker],
// [Masker], [GlyphShower], ...). When a backend lacks a drawing capability,
// or declines a call by returning vgcore.Unsupported, the Surface renders
// through a generic fallback on the pixels exposed by [DestImageAcquirer].
// Text has no fallback: ShowTextGlyphs on a backend without GlyphShower
// returns vgcore.Unsupported.
//
// # Errors
//
// Surfaces follow the resource rules of package resource: the first error
// is recorded and later calls return it, and constructors return an error
// surface instead of nil so that accessors stay safe:
//
//	s := surface.NewImage(surface.ContentColorAlpha, -1, 10)
//	s.Status() // vgcore.InvalidSize
//
// # Wrappers
//
// A [Wrapper] forwards calls to a target, intersecting every clip with an
// optional extents rectangle. Composite backends such as tee are built
// from wrappers.
//
// # Registry
//
// Backends can register a factory by name:
//
//	surface.Register("recording", 20, factory, nil)
//
//	// Later:
//	s, err := surface.NewByName("recording", surface.ContentColorAlpha, 800, 600)
//
// # Usage
//
//	s := surface.NewImage(surface.ContentColorAlpha, 800, 600)
//	defer s.Destroy()
//
//	p := path.New()
//	p.MoveTo(geom.IntToFixed(100), geom.IntToFixed(100))
//	p.LineTo(geom.IntToFixed(200), geom.IntToFixed(100))
//	p.LineTo(geom.IntToFixed(150), geom.IntToFixed(200))
//	p.ClosePath()
//
//	red := surface.SolidPattern{Color: color.RGBA{255, 0, 0, 255}}
//	err := s.Fill(surface.OperatorOver, red, p, &surface.FillParams{}, nil)
//
// # References
//
//   - Cairo: https://cairographics.org/manual/cairo-cairo-surface-t.html
package surface
