// Package recording provides a surface backend that records drawing
// operations as commands instead of rendering them.
//
// The recording surface captures Paint, Mask, Stroke, Fill and
// ShowTextGlyphs calls. The commands can be replayed, in order, onto any
// other surface, which makes a recording a resolution-independent copy of
// what was drawn. The tee surface prefers a recording target when it is
// asked for a snapshot.
//
// This design is inspired by Skia's SkPicture and Cairo's recording surface.
//
// # Basic Usage
//
//	rec := recording.New(surface.ContentColorAlpha, nil) // unbounded
//	defer rec.Destroy()
//
//	p := path.New()
//	p.MoveTo(geom.IntToFixed(10), geom.IntToFixed(10))
//	p.LineTo(geom.IntToFixed(90), geom.IntToFixed(10))
//	p.LineTo(geom.IntToFixed(50), geom.IntToFixed(80))
//	p.ClosePath()
//	rec.Fill(surface.OperatorOver, surface.SolidPattern{Color: color.Black},
//	    p, &surface.FillParams{Tolerance: 0.1}, nil)
//
//	img := surface.NewImage(surface.ContentColorAlpha, 100, 100)
//	if err := recording.Replay(rec, img); err != nil {
//	    // ...
//	}
//
// # Resource Management
//
// Commands refer to their resources through a [ResourcePool]:
//
//   - Paths are cloned and stored with PathRef references
//   - Patterns are stored with PatternRef references; sampled surfaces are referenced
//   - Scaled fonts are stored with FontRef references; faces are referenced
//
// This keeps a recording immutable: later changes to a path do not leak
// into it, and sampled surfaces stay alive until the recording is
// finished.
//
// # Thread Safety
//
// A recording surface is NOT safe for concurrent use. Snapshots are
// independent copies and may be replayed from another goroutine.
package recording
