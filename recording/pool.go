package recording

import (
	"github.com/gogpu/vgcore/path"
	"github.com/gogpu/vgcore/surface"
)

// ResourcePool stores resources referenced by recording commands.
// Resources are stored in slices indexed by their reference types.
// Paths are cloned on Add; surfaces and font faces sampled by patterns and
// fonts are referenced and released by Release.
//
// ResourcePool is not safe for concurrent use.
type ResourcePool struct {
	paths    []*path.Path
	patterns []surface.Pattern
	fonts    []surface.ScaledFont
}

// NewResourcePool creates an empty resource pool with pre-allocated capacity.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		paths:    make([]*path.Path, 0, 64),
		patterns: make([]surface.Pattern, 0, 32),
		fonts:    make([]surface.ScaledFont, 0, 4),
	}
}

// AddPath adds a clone of p to the pool and returns its reference.
func (p *ResourcePool) AddPath(pth *path.Path) PathRef {
	var cloned *path.Path
	if pth != nil {
		cloned = pth.Clone()
	}
	p.paths = append(p.paths, cloned)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return PathRef(uint32(len(p.paths) - 1))
}

// GetPath returns the path for the given reference.
// Returns nil if the reference is invalid.
func (p *ResourcePool) GetPath(ref PathRef) *path.Path {
	if int(ref) >= len(p.paths) {
		return nil
	}
	return p.paths[ref]
}

// PathCount returns the number of paths in the pool.
func (p *ResourcePool) PathCount() int {
	return len(p.paths)
}

// AddPattern adds pat to the pool and returns its reference. A surface
// pattern is copied and its surface referenced.
func (p *ResourcePool) AddPattern(pat surface.Pattern) PatternRef {
	p.patterns = append(p.patterns, retainPattern(pat))
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return PatternRef(uint32(len(p.patterns) - 1))
}

// GetPattern returns the pattern for the given reference.
// Returns nil if the reference is invalid.
func (p *ResourcePool) GetPattern(ref PatternRef) surface.Pattern {
	if int(ref) >= len(p.patterns) {
		return nil
	}
	return p.patterns[ref]
}

// PatternCount returns the number of patterns in the pool.
func (p *ResourcePool) PatternCount() int {
	return len(p.patterns)
}

// AddFont adds a copy of font to the pool, referencing its face.
func (p *ResourcePool) AddFont(font *surface.ScaledFont) FontRef {
	var sf surface.ScaledFont
	if font != nil {
		sf = *font
		sf.Face = sf.Face.Reference()
	}
	p.fonts = append(p.fonts, sf)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return FontRef(uint32(len(p.fonts) - 1))
}

// GetFont returns the scaled font for the given reference.
// Returns nil if the reference is invalid.
func (p *ResourcePool) GetFont(ref FontRef) *surface.ScaledFont {
	if int(ref) >= len(p.fonts) {
		return nil
	}
	return &p.fonts[ref]
}

// FontCount returns the number of fonts in the pool.
func (p *ResourcePool) FontCount() int {
	return len(p.fonts)
}

// Release drops the references held by the pool and empties it.
func (p *ResourcePool) Release() {
	for _, pat := range p.patterns {
		if s := surface.PatternSurface(pat); s != nil {
			s.Destroy()
		}
	}
	for _, f := range p.fonts {
		f.Face.Destroy()
	}
	p.paths = p.paths[:0]
	p.patterns = p.patterns[:0]
	p.fonts = p.fonts[:0]
}

// Clone creates a deep copy of the resource pool. Paths are cloned; the
// clone takes its own references to pattern surfaces and font faces.
func (p *ResourcePool) Clone() *ResourcePool {
	clone := &ResourcePool{
		paths:    make([]*path.Path, len(p.paths)),
		patterns: make([]surface.Pattern, len(p.patterns)),
		fonts:    make([]surface.ScaledFont, len(p.fonts)),
	}
	for i, pth := range p.paths {
		if pth != nil {
			clone.paths[i] = pth.Clone()
		}
	}
	for i, pat := range p.patterns {
		clone.patterns[i] = retainPattern(pat)
	}
	for i, f := range p.fonts {
		clone.fonts[i] = f
		clone.fonts[i].Face = f.Face.Reference()
	}
	return clone
}

func retainPattern(pat surface.Pattern) surface.Pattern {
	sp, ok := pat.(*surface.SurfacePattern)
	if !ok || sp == nil {
		return pat
	}
	c := *sp
	c.Surface = sp.Surface.Reference()
	return &c
}
