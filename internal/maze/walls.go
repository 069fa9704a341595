package maze

import (
	"github.com/gomlx/exceptions"
	"k8s.io/klog/v2"
	"slices"
)

// Maze holds the state of every wall of a rectangular grid of cells, and the goal cell.
//
// horizontalWalls has height+1 rows of width walls: row y is the wall south of cells (x, y).
// verticalWalls has height rows of width+1 walls: column x is the wall west of cell (x, y).
// The outer walls are part of both arrays and are always Present.
type Maze struct {
	width, height   int
	horizontalWalls [][]Wall
	verticalWalls   [][]Wall
	goal            Position
}

// New creates a maze with all inner walls Unexplored, see Maze.Init.
//
// It panics if width or height are not positive.
func New(width, height int) *Maze {
	if width <= 0 || height <= 0 {
		exceptions.Panicf("maze.New(%d, %d): dimensions must be positive", width, height)
	}
	m := &Maze{
		width:           width,
		height:          height,
		horizontalWalls: make([][]Wall, height+1),
		verticalWalls:   make([][]Wall, height),
	}
	for y := range m.horizontalWalls {
		m.horizontalWalls[y] = make([]Wall, width)
	}
	for y := range m.verticalWalls {
		m.verticalWalls[y] = make([]Wall, width+1)
	}
	m.Init()
	return m
}

// Init resets the maze to the state of the start of a competition:
//
//   - Inner walls are Unexplored.
//   - Outer walls are Present.
//   - The wall to the right of the start cell (East of (0, 0), since the robot starts facing North) is Present.
//   - The goal is the center cell.
func (m *Maze) Init() {
	for _, row := range m.horizontalWalls {
		for x := range row {
			row[x] = Unexplored
		}
	}
	for _, row := range m.verticalWalls {
		for x := range row {
			row[x] = Unexplored
		}
	}
	for x := 0; x < m.width; x++ {
		m.horizontalWalls[0][x] = Present
		m.horizontalWalls[m.height][x] = Present
	}
	for y := 0; y < m.height; y++ {
		m.verticalWalls[y][0] = Present
		m.verticalWalls[y][m.width] = Present
	}
	m.Set(StartLocation.Pos, StartLocation.Heading.Turn(Right), Present)
	m.goal = Position{m.width / 2, m.height / 2}
}

// Width of the maze in cells.
func (m *Maze) Width() int { return m.width }

// Height of the maze in cells.
func (m *Maze) Height() int { return m.height }

// Goal returns the goal cell.
func (m *Maze) Goal() Position { return m.goal }

// SetGoal changes the goal cell.
func (m *Maze) SetGoal(pos Position) {
	m.checkPosition(pos)
	m.goal = pos
}

// Contains returns whether pos is a cell inside the maze.
func (m *Maze) Contains(pos Position) bool {
	return pos.X >= 0 && pos.X < m.width && pos.Y >= 0 && pos.Y < m.height
}

func (m *Maze) checkPosition(pos Position) {
	if !m.Contains(pos) {
		exceptions.Panicf("position %s outside of %dx%d maze", pos, m.width, m.height)
	}
}

// wallRef returns a pointer to the storage of the wall in the given heading from the cell pos.
func (m *Maze) wallRef(pos Position, c Compass) *Wall {
	m.checkPosition(pos)
	switch c.check() {
	case North:
		return &m.horizontalWalls[pos.Y+1][pos.X]
	case East:
		return &m.verticalWalls[pos.Y][pos.X+1]
	case South:
		return &m.horizontalWalls[pos.Y][pos.X]
	default:
		return &m.verticalWalls[pos.Y][pos.X]
	}
}

// Get returns the wall in the given heading from the cell at pos.
func (m *Maze) Get(pos Position, c Compass) Wall {
	return *m.wallRef(pos, c)
}

// IsBoundary returns whether the wall in the given heading from pos is part of the outer walls.
func (m *Maze) IsBoundary(pos Position, c Compass) bool {
	_, inside := m.Neighbor(pos, c)
	return !inside
}

// Set the wall in the given heading from the cell at pos.
//
// Outer walls are always Present: trying to set them to anything else is logged and ignored.
func (m *Maze) Set(pos Position, c Compass, wall Wall) {
	ref := m.wallRef(pos, c)
	if wall != Present && m.IsBoundary(pos, c) {
		klog.Warningf("Cannot remove the outer wall, operation ignored: pos=%s, compass=%s, wall=%s", pos, c, wall)
		return
	}
	*ref = wall
}

// Neighbor returns the adjacent cell in the given heading, or false if that falls outside the maze.
// It doesn't take walls into account.
func (m *Maze) Neighbor(pos Position, c Compass) (Position, bool) {
	next := pos.Step(c)
	return next, m.Contains(next)
}

// CountUnexplored returns the number of walls still Unexplored.
func (m *Maze) CountUnexplored() (count int) {
	for _, rows := range [][][]Wall{m.horizontalWalls, m.verticalWalls} {
		for _, row := range rows {
			for _, w := range row {
				if w == Unexplored {
					count++
				}
			}
		}
	}
	return
}

// Clone returns a deep copy of the maze.
func (m *Maze) Clone() *Maze {
	newM := &Maze{}
	*newM = *m
	newM.horizontalWalls = make([][]Wall, len(m.horizontalWalls))
	for y, row := range m.horizontalWalls {
		newM.horizontalWalls[y] = slices.Clone(row)
	}
	newM.verticalWalls = make([][]Wall, len(m.verticalWalls))
	for y, row := range m.verticalWalls {
		newM.verticalWalls[y] = slices.Clone(row)
	}
	return newM
}

// Equal returns whether both mazes have the same dimensions, walls and goal.
func (m *Maze) Equal(m2 *Maze) bool {
	if m.width != m2.width || m.height != m2.height || m.goal != m2.goal {
		return false
	}
	for y := range m.horizontalWalls {
		if !slices.Equal(m.horizontalWalls[y], m2.horizontalWalls[y]) {
			return false
		}
	}
	for y := range m.verticalWalls {
		if !slices.Equal(m.verticalWalls[y], m2.verticalWalls[y]) {
			return false
		}
	}
	return true
}

// String renders the maze with DisplayGlyphs.
func (m *Maze) String() string {
	return m.Text(DisplayGlyphs) + "\n"
}
