package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"

	"github.com/katistix/statusicon/pkg/status"
	"github.com/katistix/statusicon/pkg/statusicon"
)

// --- BUBBLE TEA MODEL & ITEMS ---

// item represents a single resource in our list.
type item struct {
	config   ResourceConfig
	spin     bool
	frame    int
	renderer *statusicon.Renderer
}

func newItem(cfg ResourceConfig) item {
	return item{config: cfg, spin: cfg.Spin, renderer: &statusicon.Renderer{}}
}

func (i item) props() statusicon.Props {
	return statusicon.Props{Status: i.config.Status, Spin: i.spin, TestID: i.config.TestID}
}

func (i item) element() statusicon.Element {
	return i.renderer.Render(i.props())
}

// Implement list.Item interface for item.
func (i item) Title() string {
	return fmt.Sprintf("%s %s", i.element().View(i.frame), i.config.Name)
}

func (i item) Description() string {
	desc := i.element().Title
	if i.config.Kind != "" {
		desc = fmt.Sprintf("%s • %s", i.config.Kind, desc)
	}
	return desc
}

func (i item) FilterValue() string { return i.config.Name }

func boardItems(cfg BoardConfig) []list.Item {
	items := make([]list.Item, len(cfg.Resources))
	for i, r := range cfg.Resources {
		items[i] = newItem(r)
	}
	return items
}

func galleryItems() []list.Item {
	all := status.All()
	items := make([]list.Item, len(all))
	for i, st := range all {
		items[i] = newItem(ResourceConfig{
			Name:   st.String(),
			Kind:   "Gallery",
			Status: st.String(),
			TestID: "gallery-" + st.String(),
		})
	}
	return items
}

// --- MAIN MODEL ---
type model struct {
	configPath string
	config     BoardConfig
	watcher    *fsnotify.Watcher

	list     list.Model
	spinner  spinner.Model
	selected statusicon.Props
	state    boardState
	mode     viewMode
	err      error
	quitting bool

	showCopied bool
	copyErr    error
}

func initialModel(configPath string, watcher *fsnotify.Watcher) model {
	delegate := list.NewDefaultDelegate()
	selectedStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(accentColor).
		Foreground(accentColor).
		Padding(0, 0, 0, 1)

	delegate.Styles.SelectedTitle = selectedStyle
	delegate.Styles.SelectedDesc = selectedStyle.Foreground(lipgloss.Color("250")).Faint(true)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Status Board"
	l.Styles.Title = titleStyle
	l.SetShowHelp(false)

	return model{
		configPath: configPath,
		watcher:    watcher,
		list:       l,
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		state:      boardLoading,
	}
}

// --- BUBBLE TEA LOGIC ---
func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{loadConfigCmd(m.configPath), frameTickCmd(), m.spinner.Tick}
	if m.watcher != nil {
		cmds = append(cmds, watchConfigCmd(m.watcher, m.configPath))
	}
	return tea.Batch(cmds...)
}

//nolint:cyclop
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitting {
		if _, ok := msg.(cleanupCompleteMsg); ok {
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		listWidth := int(float32(msg.Width-h) * 0.45)
		m.list.SetSize(listWidth, msg.Height-v-3)

	case configLoadedMsg:
		if msg.err != nil {
			m.state = boardError
			m.err = msg.err
			return m, nil
		}
		m.state = boardWatching
		m.err = nil
		m.config = msg.config
		if m.mode == modeBoard {
			m.list.Title = m.config.Title
			cmd := tea.Batch(m.list.SetItems(boardItems(m.config)), m.syncSpinner())
			return m, cmd
		}
		return m, nil

	case configChangedMsg:
		m.state = boardReloading
		return m, tea.Batch(loadConfigCmd(m.configPath), watchConfigCmd(m.watcher, m.configPath))

	case watcherErrMsg:
		logDebug(fmt.Sprintf("watcher error: %v", msg.err))
		m.state = boardError
		m.err = msg.err
		return m, watchConfigCmd(m.watcher, m.configPath)

	case frameMsg:
		var cmds []tea.Cmd
		for idx, itm := range m.list.Items() {
			it := itm.(item)
			if !it.spin {
				continue
			}
			it.frame++
			cmds = append(cmds, m.list.SetItem(idx, it))
		}
		return m, tea.Batch(append(cmds, frameTickCmd())...)

	case copiedToClipboardMsg:
		m.copyErr = msg.err
		m.showCopied = msg.err == nil
		return m, clearCopiedCmd()

	case clearCopiedMsg:
		m.showCopied = false
		m.copyErr = nil
		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, cleanupCmd(m.watcher)
		case "s":
			selectedItem, ok := m.list.SelectedItem().(item)
			if ok {
				selectedItem.spin = !selectedItem.spin
				selectedItem.frame = 0
				cmd := tea.Batch(m.list.SetItem(m.list.Index(), selectedItem), m.syncSpinnerFor(selectedItem))
				return m, cmd
			}
		case "c":
			selectedItem, ok := m.list.SelectedItem().(item)
			if ok {
				return m, copyToClipboardCmd(string(selectedItem.element().HTML()))
			}
		case "g":
			if m.mode == modeBoard {
				m.mode = modeGallery
				m.list.Title = "All Statuses"
				cmd := tea.Batch(m.list.SetItems(galleryItems()), m.syncSpinner())
				return m, cmd
			}
			m.mode = modeBoard
			m.list.Title = m.config.Title
			cmd := tea.Batch(m.list.SetItems(boardItems(m.config)), m.syncSpinner())
			return m, cmd
		}
	}

	var cmd tea.Cmd
	var cmds []tea.Cmd

	m.spinner, cmd = m.spinner.Update(msg)
	cmds = append(cmds, cmd)
	m.list, cmd = m.list.Update(msg)
	cmds = append(cmds, cmd)
	cmds = append(cmds, m.syncSpinner())

	return m, tea.Batch(cmds...)
}

// syncSpinner points the detail spinner at the selected item's icon.
func (m *model) syncSpinner() tea.Cmd {
	selectedItem, ok := m.list.SelectedItem().(item)
	if !ok {
		return nil
	}
	return m.syncSpinnerFor(selectedItem)
}

func (m *model) syncSpinnerFor(it item) tea.Cmd {
	if it.props() == m.selected {
		return nil
	}
	m.selected = it.props()
	m.spinner = spinner.New(spinner.WithSpinner(it.element().Spinner()), spinner.WithStyle(iconStyle(it.element())))
	return m.spinner.Tick
}

func iconStyle(el statusicon.Element) lipgloss.Style {
	if el.Color == "" {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(el.Color))
}

func (m model) View() string {
	if m.quitting {
		return docStyle.Render("\nBye.\n")
	}

	detailView := m.renderDetailView()
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, m.list.View(), detailPaneStyle.Render(detailView))
	helpView := m.renderHelpView()

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, mainView, helpView))
}

func (m model) renderDetailView() string {
	if m.state == boardError && len(m.list.Items()) == 0 {
		return errorStyle.Render(fmt.Sprintf("Could not load %s:\n%v", m.configPath, m.err))
	}

	selectedItem, ok := m.list.SelectedItem().(item)
	if !ok {
		return "Select a resource to see details."
	}
	el := selectedItem.element()

	var b strings.Builder
	b.WriteString(detailTitleStyle.Render(selectedItem.config.Name))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s: %s\n", detailAttrStyle.Render("Icon"), m.spinner.View()))
	b.WriteString(fmt.Sprintf("%s: %s\n", detailAttrStyle.Render("Status"), detailValStyle.Render(selectedItem.config.Status)))
	b.WriteString(fmt.Sprintf("%s: %s\n", detailAttrStyle.Render("Label"), detailValStyle.Render(el.Title)))
	b.WriteString(fmt.Sprintf("%s: %s\n", detailAttrStyle.Render("Glyph"), detailValStyle.Render(el.Icon.String())))
	if selectedItem.config.Kind != "" {
		b.WriteString(fmt.Sprintf("%s: %s\n", detailAttrStyle.Render("Kind"), detailValStyle.Render(selectedItem.config.Kind)))
	}
	if el.TestID != "" {
		b.WriteString(fmt.Sprintf("%s: %s\n", detailAttrStyle.Render("Test ID"), detailValStyle.Render(el.TestID)))
	}

	copyStatus := ""
	if m.showCopied {
		copyStatus = " " + copySuccessStyle.Render("Copied!")
	} else if m.copyErr != nil {
		copyStatus = " " + errorStyle.Render(m.copyErr.Error())
	}
	b.WriteString(fmt.Sprintf("\n%s:%s\n%s\n", detailAttrStyle.Render("HTML"), copyStatus, detailValStyle.Render(string(el.HTML()))))

	return b.String()
}

func (m model) renderHelpView() string {
	var state string
	switch m.state {
	case boardError:
		state = errorStyle.Render(m.state.String())
	case boardWatching:
		state = watchingStyle.Render(m.state.String())
	default:
		state = pendingStyle.Render(m.state.String())
	}
	helpText := "↑/↓: navigate • q: quit • s: spin • c: copy html • g: gallery"
	return helpStyle.Render("\n"+helpText) + "  " + state
}
