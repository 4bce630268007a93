// Command teedemo draws one scene through a tee surface whose targets are
// picked by backend name (an image and a recording by default, optionally
// a fallback-only surface), then writes the image and a replay of the
// recording as PNG files.
package main

import (
	"errors"
	"fmt"
	"image/color"
	"image/png"
	"log"
	"log/slog"
	"os"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/vgcore"
	"github.com/gogpu/vgcore/font"
	"github.com/gogpu/vgcore/geom"
	"github.com/gogpu/vgcore/path"
	"github.com/gogpu/vgcore/recording"
	"github.com/gogpu/vgcore/surface"
	"github.com/gogpu/vgcore/tee"
)

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if cfg.Verbose {
		vgcore.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg Config) error {
	fonts := font.NewCache(4)
	defer fonts.Clear()
	face, err := loadFace(fonts, cfg.Font)
	if err != nil {
		return fmt.Errorf("failed to load font: %w", err)
	}
	defer face.Destroy()

	t, err := newTee(cfg)
	if err != nil {
		return err
	}
	defer t.Destroy()
	rec := tee.FindMatch(t, surface.TypeRecording, surface.ContentColorAlpha)

	if err := drawScene(t, cfg.Width, cfg.Height); err != nil {
		return fmt.Errorf("failed to draw: %w", err)
	}
	if cfg.Label != "" {
		if err := drawLabel(t, rec, face, cfg.Label, 24, 40); err != nil {
			return fmt.Errorf("failed to draw text: %w", err)
		}
	}
	if err := t.Flush(); err != nil {
		return fmt.Errorf("failed to flush: %w", err)
	}

	if err := writePNG(cfg.Output, t); err != nil {
		return fmt.Errorf("failed to save: %w", err)
	}
	log.Printf("Image saved to %s (%dx%d)\n", cfg.Output, cfg.Width, cfg.Height)
	if rec != nil {
		log.Printf("%d commands recorded\n", recording.Count(rec))
	}

	if cfg.Replay != "" {
		snap := t.Snapshot()
		defer snap.Destroy()
		if err := writePNG(cfg.Replay, snap); err != nil {
			return fmt.Errorf("failed to save replay: %w", err)
		}
		log.Printf("Replay saved to %s\n", cfg.Replay)
	}
	return nil
}

// newTee creates the configured backends by name and joins them in a tee.
func newTee(cfg Config) (*surface.Surface, error) {
	master, err := surface.NewByName(cfg.Master, surface.ContentColorAlpha, cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("failed to create master: %w", err)
	}
	t := tee.New(master)
	master.Destroy()

	for _, name := range cfg.SlaveNames() {
		s, err := surface.NewByName(name, surface.ContentColorAlpha, cfg.Width, cfg.Height)
		if err != nil {
			t.Destroy()
			return nil, fmt.Errorf("failed to create %s target: %w", name, err)
		}
		err = tee.Add(t, s)
		s.Destroy()
		if err != nil {
			t.Destroy()
			return nil, fmt.Errorf("failed to add %s target: %w", name, err)
		}
	}
	return t, nil
}

func loadFace(fonts *font.Cache, name string) (*font.Face, error) {
	data := goregular.TTF
	if name != "" {
		var err error
		if data, err = os.ReadFile(name); err != nil {
			return nil, err
		}
	}
	return fonts.Load(data)
}

func drawScene(s *surface.Surface, w, h int) error {
	bg := surface.SolidPattern{Color: color.RGBA{30, 40, 70, 255}}
	if err := s.Paint(surface.OperatorSource, bg, nil); err != nil {
		return err
	}

	fx := func(v float64) geom.Fixed { return geom.FloatToFixed(v) }
	fw, fh := float64(w), float64(h)

	tri := path.New()
	tri.MoveTo(fx(fw*0.2), fx(fh*0.8))
	tri.LineTo(fx(fw*0.5), fx(fh*0.25))
	tri.LineTo(fx(fw*0.8), fx(fh*0.8))
	tri.ClosePath()
	fill := surface.SolidPattern{Color: color.RGBA{230, 90, 60, 220}}
	if err := s.Fill(surface.OperatorOver, fill, tri, &surface.FillParams{Tolerance: 0.1}, nil); err != nil {
		return err
	}

	frame := path.New()
	frame.MoveTo(fx(fw*0.1), fx(fh*0.1))
	frame.LineTo(fx(fw*0.9), fx(fh*0.1))
	frame.LineTo(fx(fw*0.9), fx(fh*0.9))
	frame.LineTo(fx(fw*0.1), fx(fh*0.9))
	frame.ClosePath()
	params := surface.DefaultStrokeParams()
	params.Style.Width = 4
	params.Style.Join = surface.LineJoinRound
	params.Style.Dash = []float64{12, 6}
	stroke := surface.SolidPattern{Color: color.RGBA{240, 240, 240, 255}}
	if err := s.Stroke(surface.OperatorOver, stroke, frame, &params, nil); err != nil {
		return err
	}

	spot := surface.NewClip(geom.Rect(w/2-10, h/2-10, 20, 20))
	return s.Paint(surface.OperatorClear, nil, spot)
}

// drawLabel shows text through the tee. Raster targets cannot draw glyphs,
// so when the tee declines the text it is kept on the recording alone, or
// dropped when there is no recording.
func drawLabel(t, rec *surface.Surface, face *font.Face, label string, x, y float64) error {
	const size = 18.0
	scale := size / float64(face.UnitsPerEm())

	text := &surface.Text{UTF8: label}
	for _, r := range label {
		gid, _ := face.GlyphIndex(r)
		text.Glyphs = append(text.Glyphs, surface.Glyph{Index: gid, X: x, Y: y})
		text.Clusters = append(text.Clusters, surface.TextCluster{NumBytes: len(string(r)), NumGlyphs: 1})
		x += float64(face.Advance(gid)) * scale
	}
	text.Flags = surface.ClusterFlagsForText(label)

	sf := &surface.ScaledFont{Face: face, Size: size, Matrix: geom.Identity()}
	src := surface.SolidPattern{Color: color.White}
	err := t.ShowTextGlyphs(surface.OperatorOver, src, text, sf, nil)
	if !errors.Is(err, vgcore.Unsupported) {
		return err
	}
	if rec == nil {
		vgcore.Logger().Debug("teedemo: text dropped, no recording target")
		return nil
	}
	vgcore.Logger().Debug("teedemo: text kept on recording only")
	return rec.ShowTextGlyphs(surface.OperatorOver, src, text, sf, nil)
}

func writePNG(name string, s *surface.Surface) error {
	img, extra, err := s.AcquireSourceImage()
	if err != nil {
		return err
	}
	defer s.ReleaseSourceImage(img, extra)

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
