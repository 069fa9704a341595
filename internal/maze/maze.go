// Package maze models the wall grid of a micromouse maze: cells addressed by (x, y), the tri-state
// walls between them, compass headings and the relative turns of the robot.
//
// Coordinate system:
//
//   - (0, 0) is the south-west (bottom left) cell.
//   - x increases eastward, y increases northward.
//   - The robot starts at (0, 0) facing North.
//
// Horizontal walls separate (x, y) from (x, y+1), vertical walls separate (x, y) from (x+1, y):
//
//	      North
//	4 +---+---+---+---+
//	  |               |
//	3 +   +   +   +   +
//	  |               |
//	2 +   +   +   +   +   East
//	  |               |
//	1 +   +   +   +   +
//	  |               |
//	0 +---+---+---+---+
//	  0   1   2   3   4
package maze

import (
	"fmt"
	"github.com/gomlx/exceptions"
)

// Wall is the state of one edge of the grid. It is not a boolean: an unexplored wall must remain
// distinguishable from one known to be open.
type Wall uint8

const (
	Absent Wall = iota
	Present
	Unexplored
)

//go:generate go tool enumer -type=Wall -values -text -json -yaml maze.go

// WallsString returns the 3 characters used in logs to represent the walls sensed to the left,
// front and right of the robot, e.g. "|-|" for a dead end.
func WallsString(left, front, right Wall) string {
	glyph := func(w Wall, present byte) byte {
		switch w {
		case Absent:
			return ' '
		case Present:
			return present
		default:
			return '?'
		}
	}
	return string([]byte{glyph(left, '|'), glyph(front, '-'), glyph(right, '|')})
}

// Direction is a turn relative to the current heading of the robot.
type Direction uint8

const (
	Forward Direction = iota
	Left
	Right
	Backward
)

//go:generate go tool enumer -type=Direction -values -text -json -yaml maze.go

var (
	directionLogString = [4]string{"F^", "L<", "R>", "Bv"}

	// Directions enumerates all relative turns.
	Directions = [4]Direction{Forward, Left, Right, Backward}
)

// LogString returns the compact 2 characters representation used in logs.
func (d Direction) LogString() string {
	return directionLogString[d.check()]
}

func (d Direction) check() Direction {
	if d > Backward {
		exceptions.Panicf("invalid maze.Direction(%d)", d)
	}
	return d
}

// Compass is an absolute heading.
type Compass uint8

const (
	North Compass = iota
	East
	South
	West
)

//go:generate go tool enumer -type=Compass -values -text -json -yaml maze.go

var (
	compassLetters = [4]string{"N", "E", "S", "W"}

	// Compasses enumerates the 4 headings, in the order used to break ties when choosing a move.
	Compasses = [4]Compass{North, East, South, West}
)

// Letter returns the single letter abbreviation of the heading ("N", "E", "S" or "W").
func (c Compass) Letter() string {
	return compassLetters[c.check()]
}

func (c Compass) check() Compass {
	if c > West {
		exceptions.Panicf("invalid maze.Compass(%d)", c)
	}
	return c
}

// turnTable[heading][direction] is the heading after turning.
var turnTable = [4][4]Compass{
	//        Forward Left   Right  Backward
	North: {North, West, East, South},
	East:  {East, North, South, West},
	South: {South, East, West, North},
	West:  {West, South, North, East},
}

// directionToTable[from][to] is the turn that takes heading `from` to heading `to`.
var directionToTable = [4][4]Direction{
	//        North     East      South     West
	North: {Forward, Right, Backward, Left},
	East:  {Left, Forward, Right, Backward},
	South: {Backward, Left, Forward, Right},
	West:  {Right, Backward, Left, Forward},
}

// Turn returns the heading after turning in the given relative direction.
func (c Compass) Turn(d Direction) Compass {
	return turnTable[c.check()][d.check()]
}

// DirectionTo returns the relative turn needed to face target from the current heading.
// It is the inverse of Turn: c.Turn(c.DirectionTo(target)) == target.
func (c Compass) DirectionTo(target Compass) Direction {
	return directionToTable[c.check()][target.check()]
}

// Delta returns the x, y offsets of one step in this heading.
func (c Compass) Delta() (dx, dy int) {
	switch c.check() {
	case North:
		return 0, 1
	case East:
		return 1, 0
	case South:
		return 0, -1
	default:
		return -1, 0
	}
}

// Position of a cell in the maze.
type Position struct {
	X, Y int
}

// String returns a text representation of Position.
func (pos Position) String() string {
	return fmt.Sprintf("(%d, %d)", pos.X, pos.Y)
}

// Step returns the position one cell away in the given heading. It doesn't check the maze limits,
// see Maze.Neighbor for that.
func (pos Position) Step(c Compass) Position {
	dx, dy := c.Delta()
	return Position{pos.X + dx, pos.Y + dy}
}

// Location is the position and heading of the robot.
type Location struct {
	Pos     Position
	Heading Compass
}

// StartLocation is where every run starts: the south-west cell, facing North.
var StartLocation = Location{Pos: Position{0, 0}, Heading: North}

// Turn the heading of the location in place.
func (loc *Location) Turn(d Direction) {
	loc.Heading = loc.Heading.Turn(d)
}

// Forward moves the location one cell in the direction of its heading.
func (loc *Location) Forward() {
	loc.Pos = loc.Pos.Step(loc.Heading)
}

// String returns the location in the format used in logs.
func (loc Location) String() string {
	return fmt.Sprintf("Y:%2d, X:%2d, Dir:%s", loc.Pos.Y, loc.Pos.X, loc.Heading.Letter())
}
