// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package tee provides a surface that duplicates every drawing operation
// onto a master surface and any number of slave surfaces.
//
// Targets are visited in a fixed order: the master first, then the slaves
// in the order they were added. The first target to fail stops the
// operation and its error is returned; targets that already drew keep
// their output.
//
//	img := surface.NewImage(surface.ContentColorAlpha, 800, 600)
//	rec := recording.New(surface.ContentColorAlpha, nil)
//	t := tee.New(img)
//	tee.Add(t, rec)
//
//	err := t.Fill(surface.OperatorOver, src, p, &surface.FillParams{}, nil)
//
// Index 0 names the master and 1..N the slaves. Removing a slave keeps
// the order of the remaining ones.
package tee
