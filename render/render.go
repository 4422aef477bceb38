// Package render draws grids and search results for the terminal with lipgloss.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/lvsearch/gridgraph"
)

// Theme holds the styles used for each kind of cell.
type Theme struct {
	Wall  lipgloss.Style
	Start lipgloss.Style
	End   lipgloss.Style
	Route lipgloss.Style
	Plain lipgloss.Style
	Frame lipgloss.Style
	Title lipgloss.Style
}

// DefaultTheme returns the colored theme used by the CLI.
func DefaultTheme() Theme {
	return Theme{
		Wall:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Start: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		End:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Route: lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		Plain: lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
		Frame: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1),
		Title: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
	}
}

// PlainTheme returns a theme without any styling; output is the bare runes.
func PlainTheme() Theme {
	s := lipgloss.NewStyle()
	return Theme{Wall: s, Start: s, End: s, Route: s, Plain: s, Frame: s, Title: s}
}

// Grid draws g with overlay runes placed on top. Cells are styled by what
// they show: '#' as wall, 'S' and 'E' as endpoints, overlay cells as route.
// Endpoints keep their own rune even when the overlay covers them.
func Grid(g *gridgraph.Grid, overlay map[gridgraph.Position]rune, theme Theme) string {
	var sb strings.Builder
	for y := 0; y < g.Height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.Width; x++ {
			p := gridgraph.Position{X: x, Y: y}
			r := g.At(p)
			style := theme.Plain
			switch over, ok := overlay[p]; {
			case r == 'S':
				style = theme.Start
			case r == 'E':
				style = theme.End
			case ok:
				r, style = over, theme.Route
			case r == '#':
				style = theme.Wall
			}
			sb.WriteString(style.Render(string(r)))
		}
	}
	return sb.String()
}

// Route turns an ordered path into an overlay of direction arrows; the last
// cell gets mark.
func Route(path []gridgraph.Position, mark rune) map[gridgraph.Position]rune {
	out := make(map[gridgraph.Position]rune, len(path))
	for i, p := range path {
		if i+1 == len(path) {
			out[p] = mark
			break
		}
		out[p] = arrow(path[i+1].Sub(p))
	}
	return out
}

// Cells turns a set of positions into an overlay drawn with mark.
func Cells(set map[gridgraph.Position]struct{}, mark rune) map[gridgraph.Position]rune {
	out := make(map[gridgraph.Position]rune, len(set))
	for p := range set {
		out[p] = mark
	}
	return out
}

func arrow(step gridgraph.Position) rune {
	for _, d := range gridgraph.Compass {
		if d.Offset() == step {
			return d.Rune()
		}
	}
	return '*'
}

// Panel frames body under a title.
func Panel(title, body string, theme Theme) string {
	return theme.Frame.Render(lipgloss.JoinVertical(lipgloss.Left, theme.Title.Render(title), body))
}
