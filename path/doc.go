// Package path stores device-space paths as chunked op and point buffers
// and converts them to and from user-space snapshots.
//
// A [Path] records MoveTo, LineTo, CurveTo and ClosePath commands with
// fixed-point coordinates. Commands are kept in an arena of fixed-size
// chunks; a chunk is never moved or resized once created, and a full chunk
// is followed by a fresh one. While commands are appended the Path keeps a
// running summary (current point, extents, and whether the path is
// rectilinear or could be filled as a pixel-aligned region) so callers can
// pick fast paths without re-walking the data.
//
// Paths are read through a [Sink] ([Path.Interpret], [Path.InterpretFlat]),
// through range-over-func iteration ([Path.Commands]), or with an [Iter]
// cursor that recognizes filled rectangles.
//
// [Copy] exports a path into a flat user-space [Snapshot] using a two-pass
// count-then-populate scheme, and [Snapshot.AppendTo] imports one back,
// validating every record on the way in.
package path
