// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import "github.com/gogpu/vgcore/geom"

// Clip restricts drawing to a rectangle. A nil *Clip is unbounded.
// Clips are immutable; intersection returns a new Clip.
type Clip struct {
	extents    geom.Rectangle
	allClipped bool
}

// NewClip returns a clip limited to r. An empty r clips everything.
func NewClip(r geom.Rectangle) *Clip {
	if r.IsEmpty() {
		return &Clip{allClipped: true}
	}
	return &Clip{extents: r}
}

// IsAllClipped reports whether c excludes every pixel.
func (c *Clip) IsAllClipped() bool {
	return c != nil && c.allClipped
}

// Extents returns the bounding rectangle of c. It reports false for the
// unbounded nil clip.
func (c *Clip) Extents() (geom.Rectangle, bool) {
	if c == nil {
		return geom.Rectangle{}, false
	}
	return c.extents, true
}

// IntersectRect returns c limited to r.
func (c *Clip) IntersectRect(r geom.Rectangle) *Clip {
	if c == nil {
		return NewClip(r)
	}
	if c.allClipped {
		return c
	}
	ext, ok := c.extents.Intersect(r)
	if !ok {
		return &Clip{allClipped: true}
	}
	return &Clip{extents: ext}
}

// Intersect returns the intersection of c and other.
func (c *Clip) Intersect(other *Clip) *Clip {
	switch {
	case other == nil:
		return c
	case other.allClipped:
		return other
	}
	return c.IntersectRect(other.extents)
}

// ContainsRect reports whether r lies entirely inside c.
func (c *Clip) ContainsRect(r geom.Rectangle) bool {
	if c == nil {
		return true
	}
	if c.allClipped {
		return false
	}
	return c.extents.Contains(r)
}
