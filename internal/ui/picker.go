// internal/ui/picker.go

package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrPickerAborted is returned when the user leaves the picker without
// choosing an option.
var ErrPickerAborted = errors.New("selection aborted")

// Alternative is a single selectable option shown in the picker.
type Alternative struct {
	Label   string
	Details string
}

type alternativeItem struct {
	index int
	alt   Alternative
}

func (i alternativeItem) Title() string { return fmt.Sprintf("[%d] %s", i.index, i.alt.Label) }
func (i alternativeItem) Description() string {
	if i.alt.Details == "" {
		return "-"
	}
	return i.alt.Details
}
func (i alternativeItem) FilterValue() string { return i.alt.Label }

// pickerKeyMap defines the key bindings for the picker
type pickerKeyMap struct {
	Enter key.Binding
	Quit  key.Binding
}

func defaultPickerKeyMap() pickerKeyMap {
	return pickerKeyMap{
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "cancel"),
		),
	}
}

type pickerModel struct {
	list     list.Model
	keys     pickerKeyMap
	selected int
	aborted  bool
	quitting bool
}

func newPickerModel(title string, alts []Alternative) pickerModel {
	items := make([]list.Item, 0, len(alts))
	for i, alt := range alts {
		items = append(items, alternativeItem{index: i, alt: alt})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	l.SetShowHelp(true)
	l.SetFilteringEnabled(false)
	l.Styles.Title = TitleStyle

	return pickerModel{
		list:     l,
		keys:     defaultPickerKeyMap(),
		selected: -1,
	}
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height - 2)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Enter):
			if item, ok := m.list.SelectedItem().(alternativeItem); ok {
				m.selected = item.index
			}
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Quit):
			m.aborted = true
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickerModel) View() string {
	if m.quitting {
		return ""
	}
	return m.list.View()
}

// PickAlternative shows an interactive list and returns the index of the
// option the user selected. A single option is returned immediately
// without opening the picker.
func PickAlternative(title string, alts []Alternative) (int, error) {
	if len(alts) == 0 {
		return 0, fmt.Errorf("no options to select from")
	}
	if len(alts) == 1 {
		return 0, nil
	}

	program := tea.NewProgram(newPickerModel(title, alts))
	final, err := program.Run()
	if err != nil {
		return 0, fmt.Errorf("failed to run picker: %v", err)
	}

	m, ok := final.(pickerModel)
	if !ok || m.aborted || m.selected < 0 {
		return 0, ErrPickerAborted
	}
	return m.selected, nil
}
