package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func main() {
	story := sampleStory()
	filename := ""
	if len(os.Args) > 1 {
		filename = os.Args[1]
		loaded, err := LoadStory(filename)
		if err != nil {
			log.Fatal(err)
		}
		story = loaded
	}

	p := tea.NewProgram(initialModel(story, filename), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

type model struct {
	width  int
	height int

	story    *Story
	filename string
	config   *Config

	// Per-recomputation inputs the engine never owns: expansion set,
	// hover (= selection) and the gesture state below.
	expanded map[string]bool
	selected string

	mode Mode
	help bool

	// move gesture: a virtual pointer the drop resolver tracks
	moveID             string
	pointerX, pointerY float64

	// connect gesture
	connectFrom string
	connectTo   string

	// file prompt
	fileOp    FileOperation
	inputText string

	confirmAction ConfirmAction
	confirmConnID string

	panX, panY int

	undoStack []Action
	redoStack []Action
	dirty     bool

	errorMessage   string
	successMessage string
}

func initialModel(story *Story, filename string) model {
	m := model{
		story:    story,
		filename: filename,
		config:   loadConfig(),
		expanded: make(map[string]bool),
		mode:     ModeNormal,
	}
	m.ensureSelection()
	return m
}

// sampleStory is the startup document shown when no file is given.
func sampleStory() *Story {
	return &Story{
		Title: "skein demo",
		Eras:  []string{"传说纪元", gregorianEra},
		Storylines: []Storyline{
			{ID: "s1", Name: "主线", Color: "#4285f4"},
			{ID: "s2", Name: "暗线", Color: "#b4533a"},
		},
		Types: []EventType{
			{ID: "t1", Name: "转折", Color: "#d08770"},
			{ID: "t2", Name: "铺垫", Color: "#8fbcbb"},
		},
		Events: []Event{
			{ID: "e1", Title: "创世之战", Date: "传说纪元 3.0100000000", StorylineID: "s1", TypeID: "t1",
				Description: "传说时代的开端。"},
			{ID: "e2", Title: "旧王退位", Date: "2020-01-01", StorylineID: "s1", TypeID: "t2"},
			{ID: "e3", Title: "密谋", Date: "2020-01-01 08:00:00", StorylineID: "s2", TypeID: "t2"},
			{ID: "e4", Title: "新王加冕", Date: "2020-01-05", StorylineID: "s1", TypeID: "t1"},
		},
		Connections: []Connection{
			{ID: "c1", From: "e2", To: "e3", Label: "引发"},
			{ID: "c2", From: "e3", To: "e4", Label: "导致"},
		},
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.help {
			switch msg.String() {
			case "esc", "q", "?":
				m.help = false
			}
			return m, nil
		}
		m.errorMessage = ""
		m.successMessage = ""
		switch m.mode {
		case ModeMove:
			return m.updateMove(msg)
		case ModeConnect:
			return m.updateConnect(msg)
		case ModeFileInput:
			return m.updateFileInput(msg)
		case ModeConfirm:
			return m.updateConfirm(msg)
		default:
			return m.updateNormal(msg)
		}
	}
	return m, nil
}

func (m model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "ctrl+c":
		if m.dirty && m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmQuit
			return m, nil
		}
		return m, tea.Quit
	case "h", "left":
		m.selectStep(-1)
	case "l", "right":
		m.selectStep(1)
	case "j", "down":
		m.selectLane(1)
	case "k", "up":
		m.selectLane(-1)
	case "H", "L", "J", "K", "shift+left", "shift+right", "shift+up", "shift+down":
		m.handlePan(key)
	case "enter", " ":
		if m.selected != "" {
			if m.expanded[m.selected] {
				delete(m.expanded, m.selected)
			} else {
				m.expanded[m.selected] = true
			}
		}
	case "esc":
		m.selected = ""
	case "m":
		m.startMove()
	case "c":
		m.startConnect()
	case "x":
		m.deleteConnection()
	case "u":
		m.undo()
		m.ensureSelection()
	case "r":
		m.redo()
		m.ensureSelection()
	case "y":
		if ev := m.story.Event(m.selected); ev != nil {
			if err := yankEvent(ev, m.story.Eras); err != nil {
				m.errorMessage = fmt.Sprintf("yank failed: %v", err)
			} else {
				m.successMessage = "copied event to clipboard"
			}
		}
	case "s":
		if m.filename == "" {
			m.promptFile(FileOpSave, "story.yaml")
		} else {
			m.saveStory(m.filename)
		}
	case "e":
		m.promptFile(FileOpSaveSVG, m.exportBase()+".svg")
	case "p":
		m.promptFile(FileOpSavePNG, m.exportBase()+".png")
	case "?":
		m.help = true
	}
	return m, nil
}

func (m *model) exportBase() string {
	if m.filename != "" {
		return strings.TrimSuffix(m.filename, ".yaml")
	}
	return "timeline"
}

func (m *model) promptFile(op FileOperation, suggestion string) {
	m.mode = ModeFileInput
	m.fileOp = op
	m.inputText = suggestion
}

func (m *model) startMove() {
	layout := ComputeLayout(m.story, m.expanded)
	rect, ok := layout.Events[m.selected]
	if !ok {
		return
	}
	m.moveID = m.selected
	m.pointerX = rect.X + rect.W/2
	m.pointerY = rect.Y + rect.H/2
	m.mode = ModeMove
}

func (m model) updateMove(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	layout := ComputeLayout(m.story, m.expanded)
	switch msg.String() {
	case "h", "left":
		m.pointerX -= eventWidth + dayGap
		if m.pointerX < 0 {
			m.pointerX = 0
		}
	case "l", "right":
		// May step past the last column; the resolver extrapolates a
		// fresh day there.
		m.pointerX += eventWidth + dayGap
		if m.pointerX > layout.Width+2*(eventWidth+dayGap) {
			m.pointerX = layout.Width + 2*(eventWidth+dayGap)
		}
	case "j", "down":
		m.movePointerLane(layout, 1)
	case "k", "up":
		m.movePointerLane(layout, -1)
	case "enter":
		if target := ResolveDrop(m.pointerX, m.pointerY, m.story, layout); target != nil {
			m.applyCommand(MoveEvent{ID: m.moveID, StorylineID: target.StorylineID, Date: target.Date})
			m.successMessage = fmt.Sprintf("moved to %s", formatDate(target.Date, m.story.Eras))
		}
		m.mode = ModeNormal
	case "esc":
		// Cancelling a drag is just ceasing to resolve; nothing to
		// clean up.
		m.mode = ModeNormal
	}
	return m, nil
}

func (m *model) movePointerLane(layout *Layout, delta int) {
	current := -1
	for i, sl := range m.story.Storylines {
		lane := layout.Lanes[sl.ID]
		if m.pointerY >= lane.Y && m.pointerY < lane.Y+lane.H {
			current = i
			break
		}
	}
	if current < 0 {
		return
	}
	next := clampInt(current+delta, 0, len(m.story.Storylines)-1)
	lane := layout.Lanes[m.story.Storylines[next].ID]
	m.pointerY = lane.Y + lane.H/2
}

func (m *model) startConnect() {
	if m.selected == "" {
		return
	}
	events := m.visibleEvents()
	if len(events) < 2 {
		return
	}
	m.connectFrom = m.selected
	m.connectTo = m.selected
	m.cycleConnectTarget(1)
	m.mode = ModeConnect
}

func (m *model) cycleConnectTarget(delta int) {
	events := m.visibleEvents()
	if len(events) == 0 {
		return
	}
	current := 0
	for i, ev := range events {
		if ev.ID == m.connectTo {
			current = i
			break
		}
	}
	next := (current + delta + len(events)) % len(events)
	m.connectTo = events[next].ID
}

func (m model) updateConnect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "h", "left", "k", "up":
		m.cycleConnectTarget(-1)
	case "l", "right", "j", "down":
		m.cycleConnectTarget(1)
	case "enter":
		m.applyCommand(Connect{Conn: Connection{From: m.connectFrom, To: m.connectTo}})
		m.successMessage = "connected"
		m.mode = ModeNormal
	case "esc":
		m.mode = ModeNormal
	}
	return m, nil
}

// deleteConnection removes the most recent connection touching the
// selected event, confirming first when configured to.
func (m *model) deleteConnection() {
	if m.selected == "" {
		return
	}
	connID := ""
	for _, c := range m.story.Connections {
		if c.From == m.selected || c.To == m.selected {
			connID = c.ID
		}
	}
	if connID == "" {
		return
	}
	if m.config.Confirmations {
		m.mode = ModeConfirm
		m.confirmAction = ConfirmDeleteConnection
		m.confirmConnID = connID
		return
	}
	m.applyCommand(Disconnect{ConnID: connID})
}

func (m model) updateFileInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "enter":
		if m.inputText == "" {
			return m, nil
		}
		path := m.config.GetSavePath(m.inputText)
		if m.config.Confirmations && fileExists(path) && path != m.filename {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmOverwriteFile
			return m, nil
		}
		m.executeFileOp(path)
		m.mode = ModeNormal
	case "esc":
		m.mode = ModeNormal
	case "backspace":
		if len(m.inputText) > 0 {
			runes := []rune(m.inputText)
			m.inputText = string(runes[:len(runes)-1])
		}
	default:
		if len([]rune(key)) == 1 {
			m.inputText += key
		}
	}
	return m, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (m *model) executeFileOp(path string) {
	switch m.fileOp {
	case FileOpSave:
		m.saveStory(path)
		if m.filename == "" {
			m.filename = path
		}
	case FileOpSaveSVG:
		layout := ComputeLayout(m.story, m.expanded)
		routes := RouteConnections(m.story, layout)
		if err := exportSVG(m.story, layout, routes, path); err != nil {
			m.errorMessage = fmt.Sprintf("export failed: %v", err)
		} else {
			m.successMessage = fmt.Sprintf("wrote %s", path)
		}
	case FileOpSavePNG:
		layout := ComputeLayout(m.story, m.expanded)
		routes := RouteConnections(m.story, layout)
		if err := exportPNG(m.story, layout, routes, path, m.config.ExportScale); err != nil {
			m.errorMessage = fmt.Sprintf("export failed: %v", err)
		} else {
			m.successMessage = fmt.Sprintf("wrote %s", path)
		}
	}
}

func (m *model) saveStory(path string) {
	if err := m.story.Save(path); err != nil {
		m.errorMessage = fmt.Sprintf("save failed: %v", err)
		return
	}
	m.dirty = false
	m.successMessage = fmt.Sprintf("saved %s", path)
}

func (m model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		switch m.confirmAction {
		case ConfirmQuit:
			return m, tea.Quit
		case ConfirmDeleteConnection:
			m.applyCommand(Disconnect{ConnID: m.confirmConnID})
			m.successMessage = "connection removed"
		case ConfirmOverwriteFile:
			m.executeFileOp(m.config.GetSavePath(m.inputText))
		}
		m.mode = ModeNormal
	case "n", "esc":
		m.mode = ModeNormal
	}
	return m, nil
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")).Padding(0, 1)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
)

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.help {
		return m.helpView()
	}

	// The whole pipeline reruns on every state change; every step is a
	// pure function of the inputs.
	layout := ComputeLayout(m.story, m.expanded)
	routes := RouteConnections(m.story, layout)
	component := HoverComponent(m.selected, m.story.Connections)
	edgeColors := ColorComponent(component, m.story.Connections)

	selected := m.selected
	if m.mode == ModeConnect {
		selected = m.connectTo
	}

	viewHeight := m.height - 2
	f := renderTimeline(m.story, layout, routes, component, edgeColors,
		selected, m.width, viewHeight, m.panX, m.panY)
	if m.mode == ModeMove {
		f.set(cellX(m.pointerX), cellY(m.pointerY), '✛', 0)
	}

	var b strings.Builder
	b.WriteString(m.titleBar())
	b.WriteString("\n")
	b.WriteString(strings.Join(f.lines(), "\n"))
	b.WriteString("\n")
	b.WriteString(m.statusBar(layout))
	return b.String()
}

func (m model) titleBar() string {
	title := m.story.Title
	if title == "" {
		title = "skein"
	}
	name := m.filename
	if name == "" {
		name = "[no file]"
	}
	if m.dirty {
		name += " *"
	}
	return titleStyle.Render(fmt.Sprintf("%s — %s", title, name))
}

func (m model) statusBar(layout *Layout) string {
	if m.errorMessage != "" {
		return statusStyle.Render(errorStyle.Render(m.errorMessage))
	}
	if m.successMessage != "" {
		return statusStyle.Render(successStyle.Render(m.successMessage))
	}
	switch m.mode {
	case ModeMove:
		if target := ResolveDrop(m.pointerX, m.pointerY, m.story, layout); target != nil {
			sl := m.story.Storyline(target.StorylineID)
			name := target.StorylineID
			if sl != nil {
				name = sl.Name
			}
			return statusStyle.Render(fmt.Sprintf("MOVE → %s @ %s  (enter: drop, esc: cancel)",
				name, formatDate(target.Date, m.story.Eras)))
		}
		return statusStyle.Render("MOVE → no target  (esc: cancel)")
	case ModeConnect:
		from := m.story.Event(m.connectFrom)
		to := m.story.Event(m.connectTo)
		if from != nil && to != nil {
			return statusStyle.Render(fmt.Sprintf("CONNECT %s → %s  (h/l: target, enter: link, esc: cancel)",
				from.Title, to.Title))
		}
		return statusStyle.Render("CONNECT  (esc: cancel)")
	case ModeFileInput:
		return statusStyle.Render(fmt.Sprintf("filename: %s█", m.inputText))
	case ModeConfirm:
		switch m.confirmAction {
		case ConfirmQuit:
			return statusStyle.Render("quit without saving? (y/n)")
		case ConfirmDeleteConnection:
			return statusStyle.Render("delete connection? (y/n)")
		case ConfirmOverwriteFile:
			return statusStyle.Render(fmt.Sprintf("overwrite %s? (y/n)", m.inputText))
		}
		return statusStyle.Render("confirm? (y/n)")
	}
	if ev := m.story.Event(m.selected); ev != nil {
		return statusStyle.Render(fmt.Sprintf("%s @ %s  (enter: expand, m: move, c: connect, ?: help)",
			ev.Title, formatDate(ev.Date, m.story.Eras)))
	}
	return statusStyle.Render("h/l: events, j/k: lanes, ?: help, q: quit")
}

func (m model) helpView() string {
	lines := []string{
		"skein — storyline timeline viewer",
		"",
		"  h/l          previous / next event",
		"  j/k          event in lane below / above",
		"  H/J/K/L      pan the canvas",
		"  enter        expand / collapse event",
		"  esc          clear hover highlight",
		"  m            move event (enter drops, esc cancels)",
		"  c            connect event (h/l picks target)",
		"  x            delete last connection of event",
		"  u / r        undo / redo",
		"  y            copy event summary to clipboard",
		"  s            save story",
		"  e / p        export SVG / PNG",
		"  q            quit",
		"",
		"press esc or ? to close help",
	}
	return strings.Join(lines, "\n")
}
