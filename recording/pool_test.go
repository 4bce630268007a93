package recording

import (
	"image/color"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/vgcore/font"
	"github.com/gogpu/vgcore/geom"
	"github.com/gogpu/vgcore/path"
	"github.com/gogpu/vgcore/surface"
)

func linePath() *path.Path {
	p := path.New()
	p.MoveTo(geom.IntToFixed(1), geom.IntToFixed(1))
	p.LineTo(geom.IntToFixed(5), geom.IntToFixed(1))
	return p
}

func TestResourcePool_Path(t *testing.T) {
	pool := NewResourcePool()

	p := linePath()
	ref := pool.AddPath(p)
	p.LineTo(geom.IntToFixed(5), geom.IntToFixed(5))

	got := pool.GetPath(ref)
	if got == nil {
		t.Fatal("GetPath() = nil")
	}
	if got.Equal(p) {
		t.Error("pooled path changed with its source")
	}
	if pool.PathCount() != 1 {
		t.Errorf("PathCount() = %d, want 1", pool.PathCount())
	}
	if pool.GetPath(PathRef(5)) != nil {
		t.Error("GetPath(out of range) != nil")
	}

	nilRef := pool.AddPath(nil)
	if pool.GetPath(nilRef) != nil {
		t.Error("GetPath(nil path) != nil")
	}
}

func TestResourcePool_Pattern(t *testing.T) {
	pool := NewResourcePool()
	img := surface.NewImage(surface.ContentColorAlpha, 2, 2)
	defer img.Destroy()

	solid := pool.AddPattern(surface.SolidPattern{Color: color.White})
	sp := surface.NewSurfacePattern(img)
	ref := pool.AddPattern(sp)

	if img.ReferenceCount() != 2 {
		t.Errorf("ReferenceCount() after AddPattern = %d, want 2", img.ReferenceCount())
	}
	if _, ok := pool.GetPattern(solid).(surface.SolidPattern); !ok {
		t.Errorf("GetPattern(solid) = %T", pool.GetPattern(solid))
	}
	got, ok := pool.GetPattern(ref).(*surface.SurfacePattern)
	if !ok || got == sp || got.Surface != img {
		t.Errorf("GetPattern(surface) = %v, want a copy sampling the image", got)
	}
	if pool.GetPattern(PatternRef(9)) != nil {
		t.Error("GetPattern(out of range) != nil")
	}

	pool.Release()
	if img.ReferenceCount() != 1 {
		t.Errorf("ReferenceCount() after Release = %d, want 1", img.ReferenceCount())
	}
	if pool.PatternCount() != 0 {
		t.Errorf("PatternCount() after Release = %d, want 0", pool.PatternCount())
	}
}

func TestResourcePool_Font(t *testing.T) {
	face, err := font.Parse(goregular.TTF)
	if err != nil {
		t.Fatalf("Parse() = %v", err)
	}
	defer face.Destroy()

	pool := NewResourcePool()
	ref := pool.AddFont(&surface.ScaledFont{Face: face, Size: 12, Matrix: geom.Identity()})
	if face.ReferenceCount() != 2 {
		t.Errorf("ReferenceCount() after AddFont = %d, want 2", face.ReferenceCount())
	}
	if got := pool.GetFont(ref); got == nil || got.Face != face || got.Size != 12 {
		t.Errorf("GetFont() = %+v", got)
	}
	if pool.GetFont(FontRef(3)) != nil {
		t.Error("GetFont(out of range) != nil")
	}

	pool.AddFont(nil)
	if pool.FontCount() != 2 {
		t.Errorf("FontCount() = %d, want 2", pool.FontCount())
	}

	pool.Release()
	if face.ReferenceCount() != 1 {
		t.Errorf("ReferenceCount() after Release = %d, want 1", face.ReferenceCount())
	}
}

func TestResourcePool_Clone(t *testing.T) {
	img := surface.NewImage(surface.ContentColorAlpha, 2, 2)
	defer img.Destroy()

	pool := NewResourcePool()
	pref := pool.AddPath(linePath())
	pool.AddPattern(surface.NewSurfacePattern(img))

	clone := pool.Clone()
	if img.ReferenceCount() != 3 {
		t.Errorf("ReferenceCount() after Clone = %d, want 3", img.ReferenceCount())
	}
	if clone.GetPath(pref) == pool.GetPath(pref) {
		t.Error("Clone() shares paths")
	}
	if !clone.GetPath(pref).Equal(pool.GetPath(pref)) {
		t.Error("cloned path differs")
	}

	pool.Release()
	if clone.PatternCount() != 1 || img.ReferenceCount() != 2 {
		t.Errorf("clone lost its pattern: count %d, refs %d", clone.PatternCount(), img.ReferenceCount())
	}
	clone.Release()
	if img.ReferenceCount() != 1 {
		t.Errorf("ReferenceCount() = %d, want 1", img.ReferenceCount())
	}
}
