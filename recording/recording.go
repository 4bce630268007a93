package recording

import (
	"errors"
	"image"

	"github.com/gogpu/vgcore"
	"github.com/gogpu/vgcore/geom"
	"github.com/gogpu/vgcore/path"
	"github.com/gogpu/vgcore/surface"
)

// Target receives replayed commands. Both *surface.Surface and
// *surface.Wrapper implement it.
type Target interface {
	Paint(op surface.Operator, src surface.Pattern, clip *surface.Clip) error
	Mask(op surface.Operator, src, mask surface.Pattern, clip *surface.Clip) error
	Stroke(op surface.Operator, src surface.Pattern, p *path.Path, params *surface.StrokeParams, clip *surface.Clip) error
	Fill(op surface.Operator, src surface.Pattern, p *path.Path, params *surface.FillParams, clip *surface.Clip) error
	ShowTextGlyphs(op surface.Operator, src surface.Pattern, text *surface.Text, font *surface.ScaledFont, clip *surface.Clip) error
}

var (
	_ Target = (*surface.Surface)(nil)
	_ Target = (*surface.Wrapper)(nil)
)

// backend stores commands and the resources they reference.
type backend struct {
	content   surface.Content
	extents   geom.Rectangle
	bounded   bool
	commands  []Command
	resources *ResourcePool
}

// New returns a recording surface. A nil extents makes the recording
// unbounded; an unbounded recording cannot be read back as an image.
func New(content surface.Content, extents *geom.Rectangle) *surface.Surface {
	b := &backend{
		content:   content,
		commands:  make([]Command, 0, 64),
		resources: NewResourcePool(),
	}
	if extents != nil {
		if extents.Width < 0 || extents.Height < 0 {
			return surface.NewInError(vgcore.InvalidSize)
		}
		b.extents = *extents
		b.bounded = true
	}
	return surface.New(b, content)
}

// recordingOf returns the recording backend of s.
func recordingOf(s *surface.Surface) (*backend, error) {
	if st := s.Status(); st != vgcore.Success {
		return nil, st
	}
	if s.IsFinished() {
		return nil, vgcore.SurfaceFinished
	}
	b, ok := s.Backend().(*backend)
	if !ok {
		return nil, vgcore.SurfaceTypeMismatch
	}
	return b, nil
}

// Commands returns a copy of the commands recorded on s, or nil when s is
// not a live recording surface.
func Commands(s *surface.Surface) []Command {
	b, err := recordingOf(s)
	if err != nil {
		return nil
	}
	return append([]Command(nil), b.commands...)
}

// Count returns the number of commands recorded on s.
func Count(s *surface.Surface) int {
	b, err := recordingOf(s)
	if err != nil {
		return 0
	}
	return len(b.commands)
}

// Resources returns the pool holding the paths, patterns and fonts that
// the commands of s refer to.
func Resources(s *surface.Surface) *ResourcePool {
	b, err := recordingOf(s)
	if err != nil {
		return nil
	}
	return b.resources
}

// Replay re-issues the commands recorded on s onto target, in recording
// order. It stops at the first error.
func Replay(s *surface.Surface, target Target) error {
	b, err := recordingOf(s)
	if err != nil {
		return err
	}
	return b.replay(target, false)
}

// replay plays the commands onto target. With skipDeclined, commands the
// target declines with Unsupported are skipped instead of ending the
// replay.
func (b *backend) replay(target Target, skipDeclined bool) error {
	res := b.resources
	for _, cmd := range b.commands {
		var err error
		switch c := cmd.(type) {
		case PaintCommand:
			err = target.Paint(c.Op, res.GetPattern(c.Source), c.Clip)
		case MaskCommand:
			err = target.Mask(c.Op, res.GetPattern(c.Source), res.GetPattern(c.Mask), c.Clip)
		case StrokeCommand:
			params := c.Params
			err = target.Stroke(c.Op, res.GetPattern(c.Source), res.GetPath(c.Path), &params, c.Clip)
		case FillCommand:
			params := c.Params
			err = target.Fill(c.Op, res.GetPattern(c.Source), res.GetPath(c.Path), &params, c.Clip)
		case ShowTextGlyphsCommand:
			text := copyText(&c.Text)
			err = target.ShowTextGlyphs(c.Op, res.GetPattern(c.Source), &text, res.GetFont(c.Font), c.Clip)
		}
		if err == nil {
			continue
		}
		if skipDeclined && errors.Is(err, vgcore.Unsupported) {
			vgcore.Logger().Debug("recording: replay skipped command",
				"command", cmd.Type().String())
			continue
		}
		return err
	}
	return nil
}

func (b *backend) Type() surface.Type { return surface.TypeRecording }

func (b *backend) CreateSimilar(content surface.Content, width, height int) *surface.Surface {
	r := geom.Rect(0, 0, width, height)
	return New(content, &r)
}

func (b *backend) Finish() error {
	b.resources.Release()
	b.commands = nil
	return nil
}

// AcquireSourceImage replays the recording into a fresh image surface
// covering the extents. Glyphs are skipped when the image cannot draw
// them.
func (b *backend) AcquireSourceImage() (*image.RGBA, any, error) {
	if !b.bounded {
		return nil, nil, vgcore.Unsupported
	}
	dst := surface.NewImageFromRGBA(image.NewRGBA(b.extents.Image()), b.content)
	if err := dst.Status().Err(); err != nil {
		return nil, nil, err
	}
	if err := b.replay(dst, true); err != nil {
		dst.Destroy()
		return nil, nil, err
	}
	img, _ := surface.ImageRGBA(dst)
	return img, dst, nil
}

func (b *backend) ReleaseSourceImage(_ *image.RGBA, extra any) {
	if dst, ok := extra.(*surface.Surface); ok {
		dst.Destroy()
	}
}

func (b *backend) Extents() (geom.Rectangle, bool) {
	return b.extents, b.bounded
}

// Snapshot returns an independent recording holding the same commands.
func (b *backend) Snapshot() *surface.Surface {
	c := &backend{
		content:   b.content,
		extents:   b.extents,
		bounded:   b.bounded,
		commands:  append(make([]Command, 0, len(b.commands)), b.commands...),
		resources: b.resources.Clone(),
	}
	return surface.New(c, b.content)
}

func (b *backend) Paint(op surface.Operator, src surface.Pattern, clip *surface.Clip) error {
	b.commands = append(b.commands, PaintCommand{
		Op:     op,
		Source: b.resources.AddPattern(src),
		Clip:   clip,
	})
	return nil
}

func (b *backend) Mask(op surface.Operator, src, mask surface.Pattern, clip *surface.Clip) error {
	b.commands = append(b.commands, MaskCommand{
		Op:     op,
		Source: b.resources.AddPattern(src),
		Mask:   b.resources.AddPattern(mask),
		Clip:   clip,
	})
	return nil
}

func (b *backend) Stroke(op surface.Operator, src surface.Pattern, p *path.Path, params *surface.StrokeParams, clip *surface.Clip) error {
	b.commands = append(b.commands, StrokeCommand{
		Op:     op,
		Source: b.resources.AddPattern(src),
		Path:   b.resources.AddPath(p),
		Params: copyStrokeParams(params),
		Clip:   clip,
	})
	return nil
}

func (b *backend) Fill(op surface.Operator, src surface.Pattern, p *path.Path, params *surface.FillParams, clip *surface.Clip) error {
	var fp surface.FillParams
	if params != nil {
		fp = *params
	}
	b.commands = append(b.commands, FillCommand{
		Op:     op,
		Source: b.resources.AddPattern(src),
		Path:   b.resources.AddPath(p),
		Params: fp,
		Clip:   clip,
	})
	return nil
}

func (b *backend) ShowTextGlyphs(op surface.Operator, src surface.Pattern, text *surface.Text, font *surface.ScaledFont, clip *surface.Clip) error {
	b.commands = append(b.commands, ShowTextGlyphsCommand{
		Op:     op,
		Source: b.resources.AddPattern(src),
		Text:   copyText(text),
		Font:   b.resources.AddFont(font),
		Clip:   clip,
	})
	return nil
}

func (b *backend) HasShowTextGlyphs() bool { return true }

func init() {
	surface.Register(string(surface.TypeRecording), 20, func(content surface.Content, width, height int) (*surface.Surface, error) {
		if width < 0 || height < 0 {
			return nil, vgcore.InvalidSize
		}
		r := geom.Rect(0, 0, width, height)
		s := New(content, &r)
		return s, s.Status().Err()
	}, nil)
}
