// Package font provides reference-counted font faces backed by
// github.com/go-text/typesetting.
//
// A Face follows the vgcore resource lifecycle: it starts with one
// reference, Reference and Destroy adjust the count, and the face is torn
// down when the last reference goes away. A release hook installed with
// SetReleaseHook runs at that point and may resurrect the face by taking a
// new reference, which lets caches keep faces they still index.
package font

import (
	"bytes"
	"errors"

	gotext "github.com/go-text/typesetting/font"

	"github.com/gogpu/vgcore"
	"github.com/gogpu/vgcore/resource"
)

// GlyphID is a glyph index within a face.
type GlyphID uint32

// Face is a font face resource.
type Face struct {
	obj     resource.Object
	face    *gotext.Face
	family  string
	release func(*Face)
}

var nilFace = func() *Face {
	f := new(Face)
	f.obj.InitNil(vgcore.NoMemory)
	return f
}()

// NilFace returns the shared face reporting NoMemory.
func NilFace() *Face {
	return nilFace
}

// ErrEmptyFontData is returned by Parse when given no data.
var ErrEmptyFontData = errors.New("font: empty font data")

// Parse loads a TrueType or OpenType face. On failure it returns
// NilFace and the parse error.
func Parse(data []byte) (*Face, error) {
	if len(data) == 0 {
		return nilFace, ErrEmptyFontData
	}
	parsed, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		vgcore.Logger().Debug("font: parse failed", "err", err)
		return nilFace, err
	}
	f := &Face{face: parsed, family: parsed.Describe().Family}
	f.obj.Init()
	return f, nil
}

// Reference adds a reference to f and returns it.
func (f *Face) Reference() *Face {
	if f != nil {
		f.obj.Reference()
	}
	return f
}

// Destroy drops a reference. The last reference runs the release hook and,
// unless the hook resurrected the face, releases its user data and the
// parsed font.
func (f *Face) Destroy() {
	if f == nil {
		return
	}
	freed := f.obj.Release(func() {
		if f.release != nil {
			f.release(f)
		}
	})
	if freed {
		f.face = nil
	}
}

// SetReleaseHook installs fn to run when the last reference is dropped.
func (f *Face) SetReleaseHook(fn func(*Face)) {
	if f == nil || f.obj.IsNil() {
		return
	}
	f.release = fn
}

// Status returns the first error recorded on f.
func (f *Face) Status() vgcore.Status {
	if f == nil {
		return vgcore.NoMemory
	}
	return f.obj.Status()
}

// SetError records status on f unless an error is already recorded.
func (f *Face) SetError(status vgcore.Status) error {
	if f == nil {
		return status.Err()
	}
	return f.obj.SetError(status)
}

// ReferenceCount returns the number of references, or 0 for NilFace.
func (f *Face) ReferenceCount() int {
	if f == nil {
		return 0
	}
	return f.obj.ReferenceCount()
}

// UserData returns the value stored under key.
func (f *Face) UserData(key *resource.UserDataKey) any {
	if f == nil {
		return nil
	}
	return f.obj.UserData(key)
}

// SetUserData stores value under key; see resource.Object.SetUserData.
func (f *Face) SetUserData(key *resource.UserDataKey, value any, destroy resource.DestroyFunc) error {
	if f == nil {
		return vgcore.NoMemory
	}
	return f.obj.SetUserData(key, value, destroy)
}

// Family returns the family name recorded in the font.
func (f *Face) Family() string {
	if f == nil {
		return ""
	}
	return f.family
}

// UnitsPerEm returns the design units per em, or 0 when f holds no font.
func (f *Face) UnitsPerEm() int {
	if f == nil || f.face == nil {
		return 0
	}
	return int(f.face.Upem())
}

// GlyphIndex maps r to a glyph through the font's character map.
func (f *Face) GlyphIndex(r rune) (GlyphID, bool) {
	if f == nil || f.face == nil {
		return 0, false
	}
	gid, ok := f.face.NominalGlyph(r)
	return GlyphID(gid), ok
}

// Advance returns the horizontal advance of gid in design units.
func (f *Face) Advance(gid GlyphID) float32 {
	if f == nil || f.face == nil {
		return 0
	}
	return f.face.HorizontalAdvance(gotext.GID(gid))
}
