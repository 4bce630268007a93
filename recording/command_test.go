package recording

import (
	"testing"

	"github.com/gogpu/vgcore/surface"
)

func TestCommandType_String(t *testing.T) {
	tests := []struct {
		ct   CommandType
		want string
	}{
		{CmdPaint, "Paint"},
		{CmdMask, "Mask"},
		{CmdStroke, "Stroke"},
		{CmdFill, "Fill"},
		{CmdShowTextGlyphs, "ShowTextGlyphs"},
		{CommandType(254), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.ct.String(); got != tt.want {
				t.Errorf("CommandType.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCommandInterface(t *testing.T) {
	commands := []struct {
		cmd  Command
		want CommandType
	}{
		{PaintCommand{}, CmdPaint},
		{MaskCommand{}, CmdMask},
		{StrokeCommand{}, CmdStroke},
		{FillCommand{}, CmdFill},
		{ShowTextGlyphsCommand{}, CmdShowTextGlyphs},
	}

	for _, tt := range commands {
		if got := tt.cmd.Type(); got != tt.want {
			t.Errorf("%T.Type() = %v, want %v", tt.cmd, got, tt.want)
		}
	}
}

func TestRefIsValid(t *testing.T) {
	if !PathRef(0).IsValid() || PathRef(InvalidRef).IsValid() {
		t.Error("PathRef.IsValid() wrong")
	}
	if !PatternRef(3).IsValid() || PatternRef(InvalidRef).IsValid() {
		t.Error("PatternRef.IsValid() wrong")
	}
	if !FontRef(1).IsValid() || FontRef(InvalidRef).IsValid() {
		t.Error("FontRef.IsValid() wrong")
	}
}

func TestCopyStrokeParams(t *testing.T) {
	p := surface.DefaultStrokeParams()
	p.Style.Dash = []float64{4, 2}

	c := copyStrokeParams(&p)
	p.Style.Dash[0] = 100
	if c.Style.Dash[0] != 4 {
		t.Errorf("copied Dash[0] = %v, want 4", c.Style.Dash[0])
	}

	if got := copyStrokeParams(nil); got.Style.Width != surface.DefaultStrokeStyle().Width {
		t.Errorf("copyStrokeParams(nil).Style.Width = %v, want default", got.Style.Width)
	}
}

func TestCopyText(t *testing.T) {
	text := &surface.Text{
		UTF8:     "ab",
		Glyphs:   []surface.Glyph{{Index: 1}, {Index: 2}},
		Clusters: []surface.TextCluster{{NumBytes: 1, NumGlyphs: 1}, {NumBytes: 1, NumGlyphs: 1}},
		Flags:    surface.ClusterBackward,
	}

	c := copyText(text)
	text.Glyphs[0].Index = 9
	text.Clusters[0].NumBytes = 9
	if c.Glyphs[0].Index != 1 || c.Clusters[0].NumBytes != 1 {
		t.Errorf("copyText() shares slices with its input: %+v", c)
	}
	if c.UTF8 != "ab" || c.Flags != surface.ClusterBackward {
		t.Errorf("copyText() = %+v", c)
	}
}
