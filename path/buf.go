package path

import "github.com/gogpu/vgcore/geom"

// bufOps is the command capacity of one chunk.
const bufOps = 50

// buf is a fixed-capacity chunk of parallel op and point arrays.
type buf struct {
	ops     [bufOps]Op
	points  [2 * bufOps]geom.Point
	nOps    int
	nPoints int
}

func (b *buf) hasRoom(nPoints int) bool {
	return b.nOps < len(b.ops) && b.nPoints+nPoints <= len(b.points)
}

func (b *buf) add(op Op, pts []geom.Point) {
	b.ops[b.nOps] = op
	b.nOps++
	b.nPoints += copy(b.points[b.nPoints:], pts)
}

func (b *buf) reset() {
	b.nOps = 0
	b.nPoints = 0
}
