package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/gamepanel/sys"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Panel is the part of an LCD session the monitor polls.
type Panel interface {
	IsConnected() bool
	IsButtonPressed(buttons sys.Button) bool
	Update()
}

type pollMsg time.Time

type buttonKeys struct {
	Reset key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func (k buttonKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Reset, k.Help, k.Quit}
}

func (k buttonKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Reset}, {k.Help, k.Quit}}
}

var defaultButtonKeys = buttonKeys{
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset counters"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ButtonMonitorModel polls an LCD panel once per frame and shows which
// soft buttons are held down.
type ButtonMonitorModel struct {
	panel     Panel
	buttons   sys.Button
	interval  time.Duration
	connected bool
	pressed   sys.Button
	last      sys.Button
	presses   map[sys.Button]int
	frames    int
	keys      buttonKeys
	help      help.Model
	spinner   spinner.Model
	width     int
}

// NewButtonMonitorModel creates a monitor for the given buttons, polled
// at frameRate frames per second.
func NewButtonMonitorModel(panel Panel, buttons sys.Button, frameRate int) *ButtonMonitorModel {
	if frameRate <= 0 {
		frameRate = 30
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	return &ButtonMonitorModel{
		panel:    panel,
		buttons:  buttons,
		interval: time.Second / time.Duration(frameRate),
		presses:  make(map[sys.Button]int),
		keys:     defaultButtonKeys,
		help:     help.New(),
		spinner:  s,
	}
}

func (m *ButtonMonitorModel) poll() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return pollMsg(t)
	})
}

func (m *ButtonMonitorModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.poll())
}

func (m *ButtonMonitorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Reset):
			m.presses = make(map[sys.Button]int)
			m.last = 0
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	case pollMsg:
		m.sample()
		return m, m.poll()
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// sample reads every monitored button and then lets the SDK process
// the frame.
func (m *ButtonMonitorModel) sample() {
	var now sys.Button
	m.buttons.Each(func(b sys.Button) {
		if m.panel.IsButtonPressed(b) {
			now |= b
			if m.pressed&b == 0 {
				m.presses[b]++
				m.last = b
			}
		}
	})
	m.pressed = now
	m.connected = m.panel.IsConnected()
	m.panel.Update()
	m.frames++
}

// Pressed returns the buttons held down at the last poll.
func (m *ButtonMonitorModel) Pressed() sys.Button {
	return m.pressed
}

// Presses returns how many times b went from released to pressed.
func (m *ButtonMonitorModel) Presses(b sys.Button) int {
	return m.presses[b]
}

func (m *ButtonMonitorModel) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("GamePanel Buttons"))
	b.WriteString("\n\n")

	status := "No LCD device detected"
	if m.connected {
		status = "LCD connected"
	}
	b.WriteString(m.spinner.View() + " " + FormatStatus(m.connected, status))
	b.WriteString("\n\n")

	for _, row := range []sys.Button{m.buttons & sys.MonoButtons, m.buttons & sys.ColorButtons} {
		if row == 0 {
			continue
		}
		var cells []string
		row.Each(func(btn sys.Button) {
			cells = append(cells, FormatButton(btn.String(), m.pressed&btn != 0))
		})
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.last != 0 {
		b.WriteString(SubtleStyle.Render(fmt.Sprintf("last: %s (%d presses)", m.last, m.presses[m.last])))
	} else {
		b.WriteString(SubtleStyle.Render("press a button on the panel"))
	}
	b.WriteString("\n")
	b.WriteString(MutedStyle.Render(fmt.Sprintf("frames: %d", m.frames)))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}
