package path

import "strconv"

// Op identifies a path command.
type Op uint8

// Path commands. The values match the record types of a Snapshot.
const (
	OpMoveTo Op = iota
	OpLineTo
	OpCurveTo
	OpClosePath
)

var opNames = [...]string{
	OpMoveTo:    "MoveTo",
	OpLineTo:    "LineTo",
	OpCurveTo:   "CurveTo",
	OpClosePath: "ClosePath",
}

// String returns the command name.
func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "Op(" + strconv.Itoa(int(o)) + ")"
}

// NumPoints returns how many points the command carries.
func (o Op) NumPoints() int {
	switch o {
	case OpMoveTo, OpLineTo:
		return 1
	case OpCurveTo:
		return 3
	}
	return 0
}

// Direction selects the order in which a path is traversed.
type Direction uint8

const (
	// Forward visits commands in storage order.
	Forward Direction = iota
	// Backward visits commands in reverse order. The points of a single
	// command keep their stored order.
	Backward
)
