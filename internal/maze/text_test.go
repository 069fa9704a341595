package maze_test

import (
	. "github.com/janpfeifer/mouseGo/internal/maze"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// twoByTwo returns a 2x2 maze fully explored:
//
//	+-+-+
//	|  G|
//	+ +-+
//	| | |
//	+-+-+
func twoByTwo() *Maze {
	m := New(2, 2)
	m.Set(Position{0, 0}, North, Absent)
	m.Set(Position{1, 0}, North, Present)
	m.Set(Position{0, 1}, East, Absent)
	return m
}

func TestText(t *testing.T) {
	m := twoByTwo()
	want := strings.Join([]string{
		"+-+-+",
		"|  G| ",
		"+ +-+",
		"| | | ",
		"+-+-+",
	}, "\n")
	assert.Equal(t, want, m.Text(FileGlyphs))

	display := m.String()
	assert.True(t, strings.HasSuffix(display, "\n"))
	assert.Equal(t, []string{
		"+--+--+",
		"|   GL|  ",
		"+  +--+",
		"|  |  |  ",
		"+--+--+",
	}, strings.Split(strings.TrimSuffix(display, "\n"), "\n"))
}

func TestTextUnexplored(t *testing.T) {
	m := New(2, 1)
	m.SetGoal(Position{0, 0})
	assert.Equal(t, "+-+-+\n|G| | \n+-+-+", m.Text(FileGlyphs))
	// Start cell East wall is Present from the start: open it to see the unexplored glyph.
	m.Set(Position{0, 0}, East, Unexplored)
	assert.Equal(t, "+-+-+\n|G? | \n+-+-+", m.Text(FileGlyphs))
}

func TestParse(t *testing.T) {
	text := strings.Join([]string{
		"+-+-+",
		"|  G|",
		"+ +-+",
		"| | |",
		"+-+-+",
		"",
	}, "\r\n")
	m, err := Parse(strings.NewReader(text), 2, 2)
	require.NoError(t, err)
	assert.True(t, twoByTwo().Equal(m), "got maze:\n%s", m)

	width, height, err := DetectSize(text)
	require.NoError(t, err)
	assert.Equal(t, 2, width)
	assert.Equal(t, 2, height)
}

func TestParseGoalDefault(t *testing.T) {
	m, err := Parse(strings.NewReader("+-+-+-+\n|     |\n+-+-+-+"), 3, 1)
	require.NoError(t, err)
	assert.Equal(t, Position{1, 0}, m.Goal())
	assert.Equal(t, Absent, m.Get(Position{0, 0}, East))
}

func TestParseErrors(t *testing.T) {
	// Wrong number of lines.
	_, err := Parse(strings.NewReader("+-+-+\n| | |\n"), 2, 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformed), "got %v", err)

	// Vertical walls line too short.
	_, err = Parse(strings.NewReader("+-+-+\n|\n+-+-+"), 2, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformed), "got %v", err)

	// Horizontal walls line too short.
	_, err = Parse(strings.NewReader("+-+\n| | |\n+-+-+"), 2, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformed), "got %v", err)

	// Lines too wide for the expected width.
	_, err = Parse(strings.NewReader("+-+-+-+\n| | | |\n+-+-+-+"), 2, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformed), "got %v", err)
	_, err = Parse(strings.NewReader("+-+-+\n| | | |\n+-+-+"), 2, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformed), "got %v", err)
	_, err = Parse(strings.NewReader("+-+-+\n| | |x\n+-+-+"), 2, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformed), "got %v", err)

	_, err = Parse(strings.NewReader(""), 0, 2)
	require.Error(t, err)

	_, _, err = DetectSize("+-+\n")
	assert.True(t, errors.Is(err, ErrMalformed), "got %v", err)
}

func TestParseNonASCII(t *testing.T) {
	// Any other character, including multi-byte ones, is a single Unexplored wall.
	text := "+-+-+\n|   |\n+・+-+\n|   |\n+-+-+"
	width, height, err := DetectSize(text)
	require.NoError(t, err)
	assert.Equal(t, 2, width)
	assert.Equal(t, 2, height)

	m, err := Parse(strings.NewReader(text), 2, 2)
	require.NoError(t, err)
	assert.Equal(t, Unexplored, m.Get(Position{0, 0}, North))
	assert.Equal(t, Present, m.Get(Position{1, 0}, North))

	m, err = Parse(strings.NewReader("+-+-+\n| ・ |\n+-+-+"), 2, 1)
	require.NoError(t, err)
	assert.Equal(t, Unexplored, m.Get(Position{0, 0}, East))
	assert.Equal(t, Present, m.Get(Position{1, 0}, East))
}

func TestParseFixesOuterWalls(t *testing.T) {
	m, err := Parse(strings.NewReader("+ +\n   \n+-+"), 1, 1)
	require.NoError(t, err)
	for _, c := range Compasses {
		assert.Equal(t, Present, m.Get(Position{0, 0}, c))
	}
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	for _, size := range [][2]int{{1, 1}, {2, 2}, {5, 3}, {16, 16}} {
		m := Generate(size[0], size[1], rng)
		m.SetGoal(Position{rng.IntN(size[0]), rng.IntN(size[1])})
		// Forget some walls.
		for range size[0] * size[1] / 2 {
			pos := Position{rng.IntN(size[0]), rng.IntN(size[1])}
			m.Set(pos, Compasses[rng.IntN(4)], Unexplored)
		}
		m2, err := Parse(strings.NewReader(m.Text(FileGlyphs)), size[0], size[1])
		require.NoError(t, err)
		assert.Truef(t, m.Equal(m2), "round trip failed:\n%s\ngot:\n%s", m.Text(FileGlyphs), m2.Text(FileGlyphs))
	}
}

func TestFiles(t *testing.T) {
	m, err := ReadFile("../../testdata/mazes/classic_16x16.txt", 16, 16)
	require.NoError(t, err)
	assert.Equal(t, Position{7, 8}, m.Goal())
	assert.Zero(t, m.CountUnexplored())
	assert.Equal(t, Present, m.Get(Position{0, 0}, East))

	// Size detection.
	m2, err := ReadFile("../../testdata/mazes/classic_16x16.txt", 0, 0)
	require.NoError(t, err)
	assert.True(t, m.Equal(m2))

	// Writing reproduces the file.
	content, err := os.ReadFile("../../testdata/mazes/classic_16x16.txt")
	require.NoError(t, err)
	fileName := filepath.Join(t.TempDir(), "maze.txt")
	require.NoError(t, m.WriteFile(fileName))
	m3, err := ReadFile(fileName, 16, 16)
	require.NoError(t, err)
	assert.True(t, m.Equal(m3))
	written, err := os.ReadFile(fileName)
	require.NoError(t, err)
	for ii, line := range strings.Split(string(written), "\n") {
		wantLine := strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")[ii]
		assert.Equalf(t, wantLine, strings.TrimRight(line, " "), "line #%d", ii)
	}

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.txt"), 16, 16)
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist), "got %v", err)
}
