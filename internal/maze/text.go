package maze

import (
	"bytes"
	"github.com/pkg/errors"
	"io"
	"k8s.io/klog/v2"
	"os"
	"slices"
	"strings"
	"unicode/utf8"
)

// Glyphs used to render each state of a wall in the text format.
//
// Horizontal glyphs should all have the same length, and so should vertical glyphs. The goal glyph
// follows the vertical wall glyph west of the goal cell; every other cell is padded with as many spaces.
type Glyphs struct {
	HorizontalAbsent, HorizontalPresent, HorizontalUnexplored string
	VerticalAbsent, VerticalPresent, VerticalUnexplored       string
	Pillar                                                    string
	Goal                                                      string
}

var (
	// FileGlyphs is the format of maze files, e.g.:
	//
	//	+-+-+-+-+
	//	|     | |
	//	+ +-+ + +
	//	| |G    |
	//	+ + +-+ +
	//	| |   | |
	//	+ +-+ + +
	//	| |     |
	//	+-+-+-+-+
	FileGlyphs = Glyphs{
		HorizontalAbsent: " ", HorizontalPresent: "-", HorizontalUnexplored: "?",
		VerticalAbsent: " ", VerticalPresent: "|", VerticalUnexplored: "?",
		Pillar: "+", Goal: "G",
	}

	// DisplayGlyphs is used by Maze.String: unexplored walls are shown as absent.
	DisplayGlyphs = Glyphs{
		HorizontalAbsent: "  ", HorizontalPresent: "--", HorizontalUnexplored: "  ",
		VerticalAbsent: " ", VerticalPresent: "|", VerticalUnexplored: " ",
		Pillar: "+", Goal: "GL",
	}

	// StepMapGlyphs leaves 3 characters per cell, where the step map values are written.
	StepMapGlyphs = Glyphs{
		HorizontalAbsent: "   ", HorizontalPresent: "---", HorizontalUnexplored: "???",
		VerticalAbsent: " ", VerticalPresent: "|", VerticalUnexplored: "?",
		Pillar: "+", Goal: "   ",
	}
)

func (g *Glyphs) horizontal(w Wall) string {
	switch w {
	case Absent:
		return g.HorizontalAbsent
	case Present:
		return g.HorizontalPresent
	default:
		return g.HorizontalUnexplored
	}
}

func (g *Glyphs) vertical(w Wall) string {
	switch w {
	case Absent:
		return g.VerticalAbsent
	case Present:
		return g.VerticalPresent
	default:
		return g.VerticalUnexplored
	}
}

// Text renders the maze with the given glyphs, the northmost row first. Lines are separated by "\n",
// and there is no trailing new line.
func (m *Maze) Text(g Glyphs) string {
	lines := make([]string, 0, 2*m.height+1)
	goalPadding := strings.Repeat(" ", len(g.Goal))
	var sb strings.Builder
	horizontalLine := func(y int) string {
		sb.Reset()
		for x := 0; x < m.width; x++ {
			sb.WriteString(g.Pillar)
			sb.WriteString(g.horizontal(m.horizontalWalls[y][x]))
		}
		sb.WriteString(g.Pillar)
		return sb.String()
	}
	for y := 0; y < m.height; y++ {
		lines = append(lines, horizontalLine(y))
		sb.Reset()
		for x := 0; x <= m.width; x++ {
			sb.WriteString(g.vertical(m.verticalWalls[y][x]))
			if x == m.goal.X && y == m.goal.Y {
				sb.WriteString(g.Goal)
			} else {
				sb.WriteString(goalPadding)
			}
		}
		lines = append(lines, sb.String())
	}
	lines = append(lines, horizontalLine(m.height))
	slices.Reverse(lines)
	return strings.Join(lines, "\n")
}

// ErrMalformed is returned (wrapped with details) when parsing text that is not a valid maze.
var ErrMalformed = errors.New("malformed maze text")

// textLines splits text into lines, dropping "\r" and trailing empty lines.
func textLines(text string) []string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// DetectSize returns the width and height of the maze in the text format.
func DetectSize(text string) (width, height int, err error) {
	lines := textLines(text)
	if len(lines) < 3 || len(lines)%2 == 0 {
		return 0, 0, errors.Wrapf(ErrMalformed, "a maze needs an odd number of lines (at least 3), got %d", len(lines))
	}
	height = (len(lines) - 1) / 2
	width = utf8.RuneCountInString(strings.ReplaceAll(lines[0], FileGlyphs.Pillar, ""))
	if width == 0 {
		return 0, 0, errors.Wrapf(ErrMalformed, "first line %q has no walls", lines[0])
	}
	return
}

// Parse reads a maze of the given dimensions in the FileGlyphs format.
//
// A space is an Absent wall, "-" (horizontal) or "|" (vertical) a Present wall and anything else an
// Unexplored wall. Pillars ("+") are ignored. A "G" following a vertical wall marks the goal cell,
// otherwise the goal is the center cell.
//
// The text must have exactly the expected number of lines, and each line exactly the expected number
// of glyphs: width for horizontal walls lines (without pillars), 2*width+1 for cell lines, or 2*width+2
// when padded with a trailing space. Outer walls not marked as present are logged and set to Present.
func Parse(r io.Reader, width, height int) (*Maze, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("invalid maze dimensions %dx%d", width, height)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read maze text")
	}
	lines := textLines(string(data))
	if len(lines) != 2*height+1 {
		return nil, errors.Wrapf(ErrMalformed, "expected %d lines for a %dx%d maze, got %d",
			2*height+1, width, height, len(lines))
	}
	slices.Reverse(lines) // Bottom (y=0) first.
	glyphs := make([][]rune, len(lines))
	for ii, line := range lines {
		glyphs[ii] = []rune(strings.ReplaceAll(line, FileGlyphs.Pillar, ""))
	}
	horizontalPresent := []rune(FileGlyphs.HorizontalPresent)[0]
	verticalPresent := []rune(FileGlyphs.VerticalPresent)[0]
	goal := []rune(FileGlyphs.Goal)[0]

	m := New(width, height)
	for y := 0; y <= height; y++ {
		line := glyphs[2*y]
		if len(line) != width {
			return nil, errors.Wrapf(ErrMalformed, "horizontal walls line #%d %q: expected %d walls, got %d",
				2*y, lines[2*y], width, len(line))
		}
		for x := 0; x < width; x++ {
			m.horizontalWalls[y][x] = parseGlyph(line[x], horizontalPresent)
		}
		if y == height {
			break
		}

		line = glyphs[2*y+1]
		if !(len(line) == 2*width+1 || (len(line) == 2*width+2 && line[2*width+1] == ' ')) {
			return nil, errors.Wrapf(ErrMalformed, "vertical walls line #%d %q: expected %d characters, got %d",
				2*y+1, lines[2*y+1], 2*width+1, len(line))
		}
		for x := 0; x <= width; x++ {
			m.verticalWalls[y][x] = parseGlyph(line[2*x], verticalPresent)
			if x < width && line[2*x+1] == goal {
				m.goal = Position{x, y}
			}
		}
	}
	m.fixOuterWalls()
	return m, nil
}

func parseGlyph(c, present rune) Wall {
	switch c {
	case ' ':
		return Absent
	case present:
		return Present
	default:
		return Unexplored
	}
}

// fixOuterWalls sets any outer wall not Present back to Present.
func (m *Maze) fixOuterWalls() {
	fix := func(w *Wall, pos Position, c Compass) {
		if *w != Present {
			klog.Warningf("Outer wall at %s, compass=%s read as %s, setting it to Present", pos, c, *w)
			*w = Present
		}
	}
	for x := 0; x < m.width; x++ {
		fix(&m.horizontalWalls[0][x], Position{x, 0}, South)
		fix(&m.horizontalWalls[m.height][x], Position{x, m.height - 1}, North)
	}
	for y := 0; y < m.height; y++ {
		fix(&m.verticalWalls[y][0], Position{0, y}, West)
		fix(&m.verticalWalls[y][m.width], Position{m.width - 1, y}, East)
	}
}

// ReadFile reads a maze file of the given dimensions. If width or height are 0, they are detected
// from the file contents.
func ReadFile(filename string, width, height int) (*Maze, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read maze file %q", filename)
	}
	if width == 0 || height == 0 {
		width, height, err = DetectSize(string(data))
		if err != nil {
			return nil, errors.WithMessagef(err, "maze file %q", filename)
		}
	}
	m, err := Parse(bytes.NewReader(data), width, height)
	if err != nil {
		return nil, errors.WithMessagef(err, "maze file %q", filename)
	}
	klog.V(1).Infof("Read %dx%d maze from %q, goal at %s", width, height, filename, m.goal)
	return m, nil
}

// WriteFile writes the maze in the FileGlyphs format.
func (m *Maze) WriteFile(filename string) error {
	if err := os.WriteFile(filename, []byte(m.Text(FileGlyphs)), 0644); err != nil {
		return errors.Wrapf(err, "failed to write maze file %q", filename)
	}
	return nil
}
