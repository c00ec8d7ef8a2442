package cli

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/floorplan/pkg/dsl"
	"github.com/matzehuels/floorplan/pkg/errors"
)

var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// =============================================================================
// RoomPickerModel - Interactive anchor selection
// =============================================================================

// RoomPickerModel is the bubbletea model for choosing an anchor room.
type RoomPickerModel struct {
	Floor    string
	Rooms    []*dsl.Room
	Cursor   int
	Selected *dsl.Room
	Height   int
	Offset   int
}

// NewRoomPickerModel creates a picker over the top-level rooms of a floor.
func NewRoomPickerModel(floor *dsl.Floor) RoomPickerModel {
	return RoomPickerModel{
		Floor:  floor.Name,
		Rooms:  floor.Rooms,
		Height: 15,
	}
}

func (m RoomPickerModel) Init() tea.Cmd {
	return nil
}

func (m RoomPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Rooms)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			// Only absolutely positioned rooms can anchor a conversion.
			if m.Rooms[m.Cursor].Position == nil {
				return m, nil
			}
			m.Selected = m.Rooms[m.Cursor]
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 5)
	}
	return m, nil
}

func (m RoomPickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Anchor Room"))
	b.WriteString(listDimStyle.Render("  floor " + m.Floor))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Rooms))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		r := m.Rooms[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, r.Name, placementText(r), sizeText(r)})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Room", "Placement", "Size").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			idx := m.Offset + row
			if idx >= len(m.Rooms) {
				return lipgloss.NewStyle()
			}
			eligible := m.Rooms[idx].Position != nil
			style := lipgloss.NewStyle()
			if idx == m.Cursor {
				style = style.Bold(true)
			}
			if !eligible {
				return style.Foreground(colorDim)
			}
			return style.Foreground(colorGreen)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Rooms))))

	return b.String()
}

// pickAnchor runs the picker on a floor. It fails when standard input is
// not a terminal or the user quits without choosing.
func pickAnchor(floor *dsl.Floor) (string, error) {
	if !isTerminal(os.Stdin) {
		return "", errors.New(errors.ErrCodeInvalidInput, "no anchor room given and standard input is not a terminal")
	}
	if len(floor.Rooms) == 0 {
		return "", errors.New(errors.ErrCodeRoomNotFound, "floor %s has no rooms", floor.Name)
	}
	final, err := tea.NewProgram(NewRoomPickerModel(floor), tea.WithOutput(os.Stderr)).Run()
	if err != nil {
		return "", fmt.Errorf("anchor picker: %w", err)
	}
	m := final.(RoomPickerModel)
	if m.Selected == nil {
		return "", errors.New(errors.ErrCodeInvalidInput, "no anchor room selected")
	}
	return m.Selected.Name, nil
}

func isTerminal(f *os.File) bool {
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
