package recording

import "github.com/gogpu/vgcore/surface"

// CommandType identifies the type of a recorded drawing command.
type CommandType uint8

const (
	// CmdPaint paints the source inside the clip.
	CmdPaint CommandType = iota

	// CmdMask paints the source through a mask.
	CmdMask

	// CmdStroke strokes a path.
	CmdStroke

	// CmdFill fills a path.
	CmdFill

	// CmdShowTextGlyphs draws positioned glyphs.
	CmdShowTextGlyphs
)

var commandTypeNames = [...]string{
	CmdPaint:          "Paint",
	CmdMask:           "Mask",
	CmdStroke:         "Stroke",
	CmdFill:           "Fill",
	CmdShowTextGlyphs: "ShowTextGlyphs",
}

// String returns the name of the command type.
func (t CommandType) String() string {
	if int(t) < len(commandTypeNames) {
		return commandTypeNames[t]
	}
	return "Unknown"
}

// Command is a recorded drawing operation.
type Command interface {
	// Type returns the command type.
	Type() CommandType
}

// InvalidRef marks a reference that points at nothing.
const InvalidRef = ^uint32(0)

// PathRef is a reference to a pooled path.
type PathRef uint32

// IsValid returns true if the reference is valid (not InvalidRef).
func (r PathRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// PatternRef is a reference to a pooled pattern.
type PatternRef uint32

// IsValid returns true if the reference is valid (not InvalidRef).
func (r PatternRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// FontRef is a reference to a pooled scaled font.
type FontRef uint32

// IsValid returns true if the reference is valid (not InvalidRef).
func (r FontRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// PaintCommand records a Paint call.
type PaintCommand struct {
	Op     surface.Operator
	Source PatternRef
	Clip   *surface.Clip
}

// Type implements Command.
func (PaintCommand) Type() CommandType { return CmdPaint }

// MaskCommand records a Mask call.
type MaskCommand struct {
	Op     surface.Operator
	Source PatternRef
	Mask   PatternRef
	Clip   *surface.Clip
}

// Type implements Command.
func (MaskCommand) Type() CommandType { return CmdMask }

// StrokeCommand records a Stroke call. Params is a private copy.
type StrokeCommand struct {
	Op     surface.Operator
	Source PatternRef
	Path   PathRef
	Params surface.StrokeParams
	Clip   *surface.Clip
}

// Type implements Command.
func (StrokeCommand) Type() CommandType { return CmdStroke }

// FillCommand records a Fill call.
type FillCommand struct {
	Op     surface.Operator
	Source PatternRef
	Path   PathRef
	Params surface.FillParams
	Clip   *surface.Clip
}

// Type implements Command.
func (FillCommand) Type() CommandType { return CmdFill }

// ShowTextGlyphsCommand records a ShowTextGlyphs call. Text is a private
// copy.
type ShowTextGlyphsCommand struct {
	Op     surface.Operator
	Source PatternRef
	Text   surface.Text
	Font   FontRef
	Clip   *surface.Clip
}

// Type implements Command.
func (ShowTextGlyphsCommand) Type() CommandType { return CmdShowTextGlyphs }

func copyStrokeParams(p *surface.StrokeParams) surface.StrokeParams {
	if p == nil {
		return surface.DefaultStrokeParams()
	}
	c := *p
	if p.Style.Dash != nil {
		c.Style.Dash = append([]float64(nil), p.Style.Dash...)
	}
	return c
}

func copyText(t *surface.Text) surface.Text {
	return surface.Text{
		UTF8:     t.UTF8,
		Glyphs:   append([]surface.Glyph(nil), t.Glyphs...),
		Clusters: append([]surface.TextCluster(nil), t.Clusters...),
		Flags:    t.Flags,
	}
}
