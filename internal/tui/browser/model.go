// ============================================================================
// CCL - Categorized Configuration Language
// ============================================================================
//
// Package:     browser
// Description: Bubbletea model for the CCL document browser TUI
// Author:      Mike Stoffels with Claude
// Created:     2025-08-18
// License:     MIT
// ============================================================================

package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/ccl"
	"github.com/msto63/ccl/ast"
)

// rootSection is the pseudo category shown for root variables
const rootSection = "(root)"

// sectionItem is a list entry for the root section or a category
type sectionItem struct {
	name  string
	count int
	index int // -1 for root, otherwise index into doc.Categories
}

func (s sectionItem) Title() string { return s.name }
func (s sectionItem) Description() string {
	return fmt.Sprintf("%d variables", s.count)
}
func (s sectionItem) FilterValue() string { return s.name }

// reloadMsg carries the result of a file reload
type reloadMsg struct {
	doc *ast.Document
	err error
}

// Model is the Bubbletea model for the document browser
type Model struct {
	path string
	doc  *ast.Document

	list     list.Model
	viewport viewport.Model

	width  int
	height int
	ready  bool
	err    error
}

// New creates a browser model for the given document
func New(path string, doc *ast.Document) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(ColorPrimary).BorderLeftForeground(ColorPrimary)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(ColorSecondary).BorderLeftForeground(ColorPrimary)

	l := list.New(sectionItems(doc), delegate, 0, 0)
	l.Title = "Sections"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)

	return Model{
		path: path,
		doc:  doc,
		list: l,
	}
}

// sectionItems builds the list entries for a document
func sectionItems(doc *ast.Document) []list.Item {
	items := make([]list.Item, 0, len(doc.Categories)+1)
	items = append(items, sectionItem{
		name:  rootSection,
		count: len(doc.RootVariables),
		index: -1,
	})
	for i := range doc.Categories {
		items = append(items, sectionItem{
			name:  doc.Categories[i].Name,
			count: len(doc.Categories[i].Variables),
			index: i,
		})
	}
	return items
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			return m, m.reloadCmd()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.ready = true

	case reloadMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.doc = msg.doc
		m.list.SetItems(sectionItems(msg.doc))
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.list, cmd = m.list.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport.SetContent(m.sectionContent())

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// reloadCmd re-parses the file in the background
func (m Model) reloadCmd() tea.Cmd {
	path := m.path
	return func() tea.Msg {
		doc, err := ccl.ParseFile(path)
		return reloadMsg{doc: doc, err: err}
	}
}

// resize recalculates the component dimensions
func (m *Model) resize() {
	headerHeight := 1
	footerHeight := 1
	contentHeight := m.height - headerHeight - footerHeight - 2

	listWidth := m.width / 3
	if listWidth < 24 {
		listWidth = 24
	}

	m.list.SetSize(listWidth-4, contentHeight)

	viewportWidth := m.width - listWidth - 4
	if viewportWidth < 20 {
		viewportWidth = 20
	}

	if m.viewport.Width == 0 {
		m.viewport = viewport.New(viewportWidth, contentHeight)
	} else {
		m.viewport.Width = viewportWidth
		m.viewport.Height = contentHeight
	}
}

// sectionContent renders the variables of the selected section
func (m Model) sectionContent() string {
	item, ok := m.list.SelectedItem().(sectionItem)
	if !ok || m.doc == nil {
		return ""
	}

	variables := m.doc.RootVariables
	if item.index >= 0 && item.index < len(m.doc.Categories) {
		variables = m.doc.Categories[item.index].Variables
	}

	if len(variables) == 0 {
		return StatusStyle.Render("no variables")
	}

	var sb strings.Builder
	for _, v := range variables {
		sb.WriteString(VariableNameStyle.Render(v.Name))
		sb.WriteString(" = ")
		sb.WriteString(renderValue(v.Value))
		sb.WriteString(" ")
		sb.WriteString(PositionStyle.Render(fmt.Sprintf("(%s)", v.Pos)))
		sb.WriteString("\n")
	}
	return sb.String()
}

// renderValue renders a value with type-specific coloring
func renderValue(v ast.Value) string {
	switch v.Type {
	case ast.ValueTypeBoolean:
		return BooleanStyle.Render(v.String())
	case ast.ValueTypeInteger, ast.ValueTypeFloat:
		return NumberStyle.Render(v.String())
	case ast.ValueTypeString:
		return StringStyle.Render(v.String())
	case ast.ValueTypeArray:
		elements, _ := v.AsArray()
		parts := make([]string, len(elements))
		for i, elem := range elements {
			parts[i] = renderValue(elem)
		}
		return ArrayStyle.Render("[") + strings.Join(parts, ", ") + ArrayStyle.Render("]")
	default:
		return v.String()
	}
}

// View implements tea.Model
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	header := HeaderStyle.Width(m.width).Render(fmt.Sprintf("CCL Browser - %s", m.path))

	status := StatusStyle.Render(fmt.Sprintf("%d root variables, %d categories",
		len(m.doc.RootVariables), len(m.doc.Categories)))
	if m.err != nil {
		status = ErrorStyle.Render(fmt.Sprintf("reload failed: %v", m.err))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		ListStyle.Render(m.list.View()),
		ContentStyle.Render(m.viewport.View()),
	)

	help := HelpStyle.Render("↑/↓ select section • r reload • q quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, body, status+" "+help)
}

// Run parses the file and runs the browser until the user quits
func Run(path string) error {
	doc, err := ccl.ParseFile(path)
	if err != nil {
		return err
	}

	program := tea.NewProgram(New(path, doc), tea.WithAltScreen())
	_, err = program.Run()
	return err
}
