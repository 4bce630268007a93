// Package vgcore is the geometric and dispatch core of a 2D vector graphics
// library.
//
// # Overview
//
// vgcore stores drawing paths in fixed-point device space, traverses and
// exports them to user space, and routes drawing operations to one or more
// output surfaces through a single API. Concrete output devices plug in as
// surface backends; a tee surface multiplexes every operation to several
// backends at once.
//
// # Architecture
//
// The module is organized into:
//   - geom: fixed-point scalars, 64/128-bit wide products, boxes, rectangles
//   - path: chunked path storage, iteration, flattening, user-space snapshots
//   - resource: shared reference counting with user data and resurrection
//   - font: font faces as reference-counted resources, and a face cache
//   - surface: backend interface, surface wrapper, image backend, registry
//   - tee: fan-out of drawing operations to a master and N slaves
//   - recording: a backend that captures operations for replay
//
// This package holds what every sub-package shares: the Status enumeration
// and the logger.
//
// # Errors
//
// Operations return error values whose dynamic type is Status, so callers
// can test them with errors.Is:
//
//	if errors.Is(err, vgcore.InvalidPathData) {
//	    // malformed snapshot
//	}
//
// Resources (surfaces, font faces) additionally keep the first error they
// encountered; later operations on them short-circuit to it.
//
// # Concurrency
//
// Paths, iterators and surfaces are not safe for concurrent use. Reference
// counts on shared resources are atomic, so a resource may be referenced and
// destroyed from several goroutines.
package vgcore

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
