// Package cli renders mazes, step maps and mission results for the terminal.
package cli

import (
	"fmt"
	"github.com/charmbracelet/lipgloss"
	"github.com/janpfeifer/mouseGo/internal/maze"
	"github.com/janpfeifer/mouseGo/internal/sim"
	"github.com/janpfeifer/mouseGo/internal/stepmap"
	"golang.org/x/term"
	"os"
	"regexp"
	"strings"
)

var ansiFilter = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// displayWidth of s removes its color/control sequences and returns the length of what is left.
func displayWidth(s string) int {
	return len(ansiFilter.ReplaceAllString(s, ""))
}

// PrintCentered prints the block of lines centered in the terminal. If the output is not a terminal,
// it is printed without indentation.
func PrintCentered(block string) {
	lines := strings.Split(block, "\n")
	terminalWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		terminalWidth = 0
	}
	blockWidth := 0
	for _, line := range lines {
		blockWidth = max(blockWidth, displayWidth(line))
	}
	indent := max((terminalWidth-blockWidth)/2, 0)
	for _, line := range lines {
		if len(line) == 0 {
			fmt.Println()
			continue
		}
		fmt.Printf("%s%s\n", strings.Repeat(" ", indent), line)
	}
}

// UI renders with or without colors.
type UI struct {
	color bool

	goalStyle, robotStyle, bannerStyle, failStyle lipgloss.Style
}

// New creates a UI. If color is false, only plain ASCII is generated.
func New(color bool) *UI {
	return &UI{
		color:      color,
		goalStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		robotStyle: lipgloss.NewStyle().Background(lipgloss.Color("13")).Foreground(lipgloss.Color("0")),
		bannerStyle: lipgloss.NewStyle().
			Background(lipgloss.Color("4")).
			Foreground(lipgloss.Color("15")).
			Padding(1, 2),
		failStyle: lipgloss.NewStyle().
			Background(lipgloss.Color("1")).
			Foreground(lipgloss.Color("15")).
			Padding(1, 2),
	}
}

// MazeString renders the maze with maze.DisplayGlyphs, the goal highlighted if using colors.
func (ui *UI) MazeString(m *maze.Maze) string {
	text := m.String()
	if ui.color {
		text = strings.Replace(text, maze.DisplayGlyphs.Goal, ui.goalStyle.Render(maze.DisplayGlyphs.Goal), 1)
	}
	return text
}

var headingArrows = [4]string{" ^ ", " > ", " v ", " < "}

// StepMapString renders the maze walls with the steps of each cell to the target, blank for cells
// that can't reach it. Rows are labeled with their y coordinate on the right, and columns with their x
// coordinate in an extra line at the bottom.
//
// If robot is not nil, its cell is highlighted: with colors the steps are shown in reverse, otherwise
// an arrow points to its heading.
//
// If the step map was not computed for a maze of the same dimensions as m, all cells are left blank.
func (ui *UI) StepMapString(m *maze.Maze, sm *stepmap.Map, robot *maze.Location) string {
	computed := sm.Width() == m.Width() && sm.Height() == m.Height()
	lines := strings.Split(m.Text(maze.StepMapGlyphs), "\n")
	cellWidth := len(maze.StepMapGlyphs.VerticalPresent) + len(maze.StepMapGlyphs.Goal)
	result := make([]string, 0, len(lines)+1)
	var sb strings.Builder
	for ii, y := 0, m.Height()-1; y >= 0; ii, y = ii+2, y-1 {
		result = append(result, lines[ii])
		walls := lines[ii+1]
		sb.Reset()
		for x := 0; x < m.Width(); x++ {
			pos := maze.Position{X: x, Y: y}
			sb.WriteByte(walls[x*cellWidth])
			stepsStr := "   "
			if computed {
				if steps, reached := sm.At(pos); reached {
					stepsStr = fmt.Sprintf("%3d", steps)
				}
			}
			switch {
			case robot != nil && robot.Pos == pos:
				if ui.color {
					stepsStr = ui.robotStyle.Render(stepsStr)
				} else {
					stepsStr = headingArrows[robot.Heading]
				}
			case ui.color && pos == m.Goal():
				stepsStr = ui.goalStyle.Render(stepsStr)
			}
			sb.WriteString(stepsStr)
		}
		// Outer wall is always present.
		fmt.Fprintf(&sb, "| %d", y)
		result = append(result, sb.String())
	}
	result = append(result, lines[len(lines)-1])
	sb.Reset()
	for x := 0; x < m.Width(); x++ {
		fmt.Fprintf(&sb, " %3d", x)
	}
	result = append(result, sb.String())
	return strings.Join(result, "\n")
}

// ResultString summarizes the legs of a mission.
func (ui *UI) ResultString(name string, mr *sim.MissionResult, err error) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", name)
	leg := func(legName string, r *sim.Result) {
		fmt.Fprintf(&sb, "\n%-7s %4d steps, %4d turns, %4d cells visited", legName+":", r.Steps, r.Turns, r.Visited.Size())
	}
	if mr.Search.Visited.Size() > 0 {
		leg("search", &mr.Search)
	}
	if mr.Return.Visited.Size() > 0 {
		leg("return", &mr.Return)
	}
	if mr.HasFinal && mr.Final.Visited.Size() > 0 {
		leg("final", &mr.Final)
	}
	if err != nil {
		fmt.Fprintf(&sb, "\n\nFailed: %v", err)
	}
	text := sb.String()
	if !ui.color {
		return text
	}
	if err != nil {
		return ui.failStyle.Render(text)
	}
	return ui.bannerStyle.Render(text)
}

// PrintResult prints ResultString centered.
func (ui *UI) PrintResult(name string, mr *sim.MissionResult, err error) {
	fmt.Println()
	PrintCentered(ui.ResultString(name, mr, err))
	fmt.Println()
}
