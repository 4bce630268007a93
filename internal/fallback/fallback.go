// Package fallback provides a surface backend that implements nothing but
// the required entry points and pixel access, so every drawing operation
// goes through the generic fallback of package surface.
//
// The backend never exposes its storage for writing. AcquireDestImage hands
// out a pooled scratch copy of the requested area, which is written back on
// release, so tests can observe exactly which area each operation touched.
package fallback

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/vgcore"
	"github.com/gogpu/vgcore/geom"
	"github.com/gogpu/vgcore/surface"
)

// Type is the surface type of fallback surfaces.
const Type surface.Type = "fallback"

// Backend stores pixels and exposes areas of them on request.
type Backend struct {
	pixels    *image.RGBA
	pool      *Pool
	interests []geom.Rectangle
}

var _ surface.DestImageAcquirer = (*Backend)(nil)

// New returns a fallback surface of the given size.
func New(content surface.Content, width, height int) *surface.Surface {
	if width < 0 || height < 0 {
		return surface.NewInError(vgcore.InvalidSize)
	}
	b := &Backend{
		pixels: image.NewRGBA(image.Rect(0, 0, width, height)),
		pool:   NewPool(4),
	}
	return surface.New(b, content)
}

// Of returns the fallback backend of s.
func Of(s *surface.Surface) (*Backend, bool) {
	if s.IsFinished() {
		return nil, false
	}
	b, ok := s.Backend().(*Backend)
	return b, ok
}

// Pixels returns the stored pixels.
func (b *Backend) Pixels() *image.RGBA { return b.pixels }

// Interests returns the areas requested through AcquireDestImage, in order.
func (b *Backend) Interests() []geom.Rectangle {
	return append([]geom.Rectangle(nil), b.interests...)
}

func (b *Backend) Type() surface.Type { return Type }

func (b *Backend) CreateSimilar(surface.Content, int, int) *surface.Surface { return nil }

func (b *Backend) Finish() error {
	b.pixels = nil
	return nil
}

func (b *Backend) AcquireSourceImage() (*image.RGBA, any, error) {
	return b.pixels, nil, nil
}

func (b *Backend) ReleaseSourceImage(*image.RGBA, any) {}

func (b *Backend) Extents() (geom.Rectangle, bool) {
	return geom.RectangleFromImage(b.pixels.Bounds()), true
}

// AcquireDestImage copies the part of interest inside the surface into a
// scratch image.
func (b *Backend) AcquireDestImage(interest geom.Rectangle) (*image.RGBA, any, error) {
	r := interest.Image().Intersect(b.pixels.Bounds())
	if r.Empty() {
		return nil, nil, vgcore.InvalidSize
	}
	b.interests = append(b.interests, interest)
	scratch := b.pool.Get(r)
	draw.Draw(scratch, r, b.pixels, r.Min, draw.Src)
	return scratch, nil, nil
}

// ReleaseDestImage writes the scratch image back.
func (b *Backend) ReleaseDestImage(img *image.RGBA, _ any) {
	draw.Draw(b.pixels, img.Rect, img, img.Rect.Min, draw.Src)
	b.pool.Put(img)
}

// init registers the fallback backend below every drawing backend, so it
// is only created when asked for by name.
func init() {
	surface.Register(string(Type), 1, func(content surface.Content, width, height int) (*surface.Surface, error) {
		if width < 0 || height < 0 {
			return nil, vgcore.InvalidSize
		}
		s := New(content, width, height)
		return s, s.Status().Err()
	}, nil)
}
