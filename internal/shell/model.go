package shell

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Redwards2/MeijerShoppingList/internal/render"
	"github.com/Redwards2/MeijerShoppingList/internal/shopping"
	"github.com/Redwards2/MeijerShoppingList/pkg/types"
)

type StatusBar struct {
	Text    string
	IsError bool
}

// aisleMsg carries the result of a background aisle lookup.
type aisleMsg struct {
	item  string
	aisle string
	found bool
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Model is the bubbletea model of the shell.
type Model struct {
	session *shopping.Session
	input   textinput.Model

	Current  types.View
	Status   StatusBar
	Detail   string
	Quitting bool

	width         int
	markdownStyle string
}

// NewModel returns a shell over session. markdownStyle names the glamour
// style for detail panes; empty means "dark".
func NewModel(session *shopping.Session, markdownStyle string) Model {
	in := textinput.New()
	in.Placeholder = "add milk, edit pickup 1, help ..."
	in.Prompt = "> "
	in.CharLimit = 512
	in.Focus()

	return Model{
		session:       session,
		input:         in,
		Current:       session.View(),
		Status:        StatusBar{Text: "type help for commands"},
		markdownStyle: markdownStyle,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		switch typed.Type {
		case tea.KeyCtrlC:
			m.Quitting = true
			return m, tea.Quit
		case tea.KeyEsc:
			if m.Current.Editing != nil {
				m.Current = m.session.CancelEdit()
				m.input.SetValue("")
				m.Status = StatusBar{Text: "edit cancelled"}
				return m, nil
			}
		case tea.KeyEnter:
			line := m.input.Value()
			m.input.SetValue("")
			return m.run(line)
		}
	case tea.WindowSizeMsg:
		m.width = typed.Width
		return m, nil
	case aisleMsg:
		m.Current = m.session.View()
		if typed.found {
			m.Status = StatusBar{Text: fmt.Sprintf("%s: aisle %s", typed.item, typed.aisle)}
		} else {
			m.Status = StatusBar{Text: fmt.Sprintf("%s: no aisle info", typed.item)}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// run parses and executes one input line.
func (m Model) run(line string) (tea.Model, tea.Cmd) {
	cmd, err := Parse(line)
	if err != nil {
		var ce *CommandError
		if errors.As(err, &ce) && ce.Code == ErrCodeEmptyInput {
			return m, nil
		}
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}
	return m.execute(cmd)
}

func (m Model) execute(cmd Command) (tea.Model, tea.Cmd) {
	s := m.session
	var (
		v   types.View
		err error
	)
	m.Detail = ""
	status := ""

	switch cmd.Type {
	case TypeQuit:
		m.Quitting = true
		return m, tea.Quit
	case TypeHelp:
		m.Detail = HelpText
		m.Status = StatusBar{}
		return m, nil
	case TypeAdd:
		if cmd.Category == "" {
			v, err = s.AddClassified(cmd.Text)
		} else {
			v, err = s.Add(cmd.Category, cmd.Text)
		}
	case TypeEdit:
		v, err = s.BeginEdit(cmd.Category, cmd.Index)
		if err == nil {
			m.input.SetValue("save " + v.Draft)
			m.input.CursorEnd()
			status = fmt.Sprintf("editing %s %d", cmd.Category.Label(), cmd.Index+1)
		}
	case TypeSave:
		if s.View().Editing != nil {
			v, err = s.CommitEdit(cmd.Text)
			status = "saved"
		} else {
			v, err = s.AddClassified(cmd.Text)
		}
	case TypeCancel:
		v = s.CancelEdit()
	case TypeDelete:
		v, err = s.Delete(cmd.Category, cmd.Index)
	case TypeClear:
		v = s.Clear()
		status = "lists cleared"
	case TypeSample:
		v = s.SampleFill()
		status = "sample items loaded"
	case TypeImport:
		var res shopping.ImportResult
		v, res, err = s.Import(cmd.Text)
		status = fmt.Sprintf("imported %d items (%d pickup, %d in-store)", res.Imported, res.Pickup, res.InStore)
		if errors.Is(err, types.ErrCatalogWrite) {
			m.Current = v
			m.Status = StatusBar{Text: status + "; catalog not updated", IsError: true}
			return m, nil
		}
	case TypeSnap:
		v, status, err = m.snap(cmd)
	case TypeSnaps:
		v = s.View()
		names := s.SnapshotNames()
		if len(names) == 0 {
			status = "no snapshots saved"
		} else {
			status = "snapshots: " + strings.Join(names, ", ")
		}
	case TypeAisle:
		m.Status = StatusBar{Text: "looking up " + cmd.Text + "..."}
		return m, lookupCmd(s, cmd.Text)
	case TypeMealPlan:
		m.Detail = render.Markdown(render.MealPlanMarkdown(s.MealPlan()), m.markdownStyle)
		m.Status = StatusBar{}
		return m, nil
	case TypeMeal:
		v, err = s.AddMeal(cmd.Meal)
		status = "meal added"
	}

	m.Current = v
	if err != nil {
		m.Status = StatusBar{Text: describe(err), IsError: true}
		return m, nil
	}
	m.Status = StatusBar{Text: status}
	return m, nil
}

func (m Model) snap(cmd Command) (types.View, string, error) {
	s := m.session
	switch cmd.SnapOp {
	case "save":
		v, err := s.SaveSnapshot(cmd.Text)
		return v, fmt.Sprintf("saved snapshot %q", strings.TrimSpace(cmd.Text)), err
	case "load":
		v, err := s.LoadSnapshot(cmd.Text)
		return v, fmt.Sprintf("loaded snapshot %q", cmd.Text), err
	default:
		err := s.DeleteSnapshot(cmd.Text)
		return s.View(), fmt.Sprintf("deleted snapshot %q", cmd.Text), err
	}
}

// lookupCmd runs the aisle lookup off the update loop.
func lookupCmd(s *shopping.Session, item string) tea.Cmd {
	return func() tea.Msg {
		aisle, ok := s.Enrich(context.Background(), item)
		return aisleMsg{item: item, aisle: aisle, found: ok}
	}
}

// describe turns engine errors into short status lines.
func describe(err error) string {
	switch {
	case errors.Is(err, types.ErrSnapshotNotFound):
		return "Snapshot not found."
	case errors.Is(err, types.ErrIndexOutOfRange):
		return "That item no longer exists."
	case errors.Is(err, types.ErrEditInProgress):
		return "Finish or cancel the current edit first."
	case errors.Is(err, types.ErrNotEditing):
		return "Nothing is being edited."
	default:
		return err.Error()
	}
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	panel := 0
	if m.width > 8 {
		panel = m.width/2 - 4
	}

	lines := []string{render.View(m.Current, panel)}
	if m.Detail != "" {
		lines = append(lines, m.Detail)
	}
	if m.Status.Text != "" {
		style := statusStyle
		if m.Status.IsError {
			style = errorStyle
		}
		lines = append(lines, style.Render(m.Status.Text))
	}
	lines = append(lines, m.input.View(), footerStyle.Render("enter: run  esc: cancel edit  ctrl+c: quit"))
	return strings.Join(lines, "\n")
}

// Run starts the shell on the terminal and blocks until the user quits.
func Run(session *shopping.Session, markdownStyle string) error {
	_, err := tea.NewProgram(NewModel(session, markdownStyle)).Run()
	return err
}
