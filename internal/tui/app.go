package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/service"
	"github.com/spec-kit/helpdesk/internal/store"
)

type screen int

const (
	screenLogin screen = iota
	screenTabs
)

type tabID int

const (
	tabTickets tabID = iota
	tabTasks
	tabUsers
	tabKB
	tabDashboard
	tabCount
)

var tabTitles = [tabCount]string{"Tickets", "Tasks", "Users", "Knowledge Base", "Dashboard"}

// Deps bundles everything the terminal UI needs.
type Deps struct {
	AppName         string
	Registry        *store.Registry
	Tickets         *store.Store[*domain.Ticket]
	Tasks           *store.Store[*domain.Task]
	TicketClaims    *service.ClaimService[*domain.Ticket]
	TaskClaims      *service.ClaimService[*domain.Task]
	TicketLifecycle *service.LifecycleService[*domain.Ticket]
	TaskLifecycle   *service.LifecycleService[*domain.Task]
	Articles        *service.ArticleService
	Stats           *service.StatsService
	Logger          *zap.Logger
}

// Model is the root TUI model: the login selector followed by the tabbed
// main screens.
type Model struct {
	deps   Deps
	keys   KeyMap
	styles Styles

	screen      screen
	tab         tabID
	current     *domain.User
	loginCursor int

	tickets *itemTab[*domain.Ticket]
	tasks   *itemTab[*domain.Task]
	kb      *kbTab

	status    string
	statusErr bool
	width     int
	height    int
}

// New creates the root model.
func New(deps Deps) *Model {
	keys := DefaultKeyMap()
	styles := DefaultStyles()
	return &Model{
		deps:    deps,
		keys:    keys,
		styles:  styles,
		screen:  screenLogin,
		tickets: newTicketTab(deps, keys, styles),
		tasks:   newTaskTab(deps, keys, styles),
		kb:      newKBTab(deps.Articles, keys, styles),
	}
}

// Run starts the program on the current terminal.
func Run(deps Deps) error {
	_, err := tea.NewProgram(New(deps), tea.WithAltScreen()).Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.screen == screenLogin {
			return m.updateLogin(msg)
		}
		return m.updateTabs(msg)
	}
	return m, nil
}

func (m *Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	roster := m.deps.Registry.ListAgentsFirst()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.loginCursor > 0 {
			m.loginCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.loginCursor < len(roster)-1 {
			m.loginCursor++
		}
	case key.Matches(msg, m.keys.Select):
		if len(roster) == 0 {
			break
		}
		if m.loginCursor >= len(roster) {
			m.loginCursor = len(roster) - 1
		}
		m.current = roster[m.loginCursor]
		m.screen = screenTabs
		m.tab = tabTickets
		m.setStatus(fmt.Sprintf("operating as %s (%s)", m.current.Name, m.current.Role), false)
		if m.deps.Logger != nil {
			m.deps.Logger.Info("user selected",
				zap.Int("user_id", m.current.ID),
				zap.String("name", m.current.Name))
		}
	}
	return m, nil
}

func (m *Model) updateTabs(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.textEntry() {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.SwitchUser):
			m.screen = screenLogin
			m.current = nil
			m.setStatus("", false)
			return m, nil
		}
		switch msg.String() {
		case "1", "2", "3", "4", "5":
			m.tab = tabID(int(msg.String()[0] - '1'))
			m.setStatus("", false)
			return m, nil
		}
	}

	var status string
	var isErr bool
	switch m.tab {
	case tabTickets:
		status, isErr = m.tickets.update(msg, m.current)
	case tabTasks:
		status, isErr = m.tasks.update(msg, m.current)
	case tabKB:
		status, isErr = m.kb.update(msg, m.current)
	}
	if status != "" {
		m.setStatus(status, isErr)
	}
	return m, nil
}

func (m *Model) textEntry() bool {
	switch m.tab {
	case tabTickets:
		return m.tickets.mode == itemModeNote || m.tickets.mode == itemModeCreate
	case tabTasks:
		return m.tasks.mode == itemModeNote || m.tasks.mode == itemModeCreate
	case tabKB:
		return m.kb.textEntry()
	}
	return false
}

func (m *Model) setStatus(status string, isErr bool) {
	m.status = status
	m.statusErr = isErr
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.screen == screenLogin {
		return m.viewLogin()
	}
	return m.viewTabs()
}

func (m *Model) viewLogin() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Login / Switch User"))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("Pick an Agent/Admin to operate as. No password required."))
	b.WriteString("\n\n")
	for i, user := range m.deps.Registry.ListAgentsFirst() {
		line := fmt.Sprintf("%-20s | %-5s | %s", user.Name, user.Role, user.Status)
		if i == m.loginCursor {
			b.WriteString(m.styles.RowCursor.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("enter select · q quit"))
	return b.String()
}

func (m *Model) viewTabs() string {
	var b strings.Builder
	title := fmt.Sprintf("%s — operating as %s (%s)", m.deps.AppName, m.current.Name, m.current.Role)
	b.WriteString(m.styles.Header.Render(title))
	b.WriteString("\n")

	tabs := make([]string, 0, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := fmt.Sprintf("%d:%s", i+1, tabTitles[i])
		if i == m.tab {
			tabs = append(tabs, m.styles.TabActive.Render(label))
		} else {
			tabs = append(tabs, m.styles.TabIdle.Render(label))
		}
	}
	b.WriteString(strings.Join(tabs, "  "))
	b.WriteString("\n\n")

	switch m.tab {
	case tabTickets:
		b.WriteString(m.tickets.view(m.current))
	case tabTasks:
		b.WriteString(m.tasks.view(m.current))
	case tabUsers:
		b.WriteString(m.viewUsers())
	case tabKB:
		b.WriteString(m.kb.view())
	case tabDashboard:
		b.WriteString(m.viewDashboard())
	}

	b.WriteString("\n")
	if m.status != "" {
		if m.statusErr {
			b.WriteString(m.styles.StatusErr.Render("✗ " + m.status))
		} else {
			b.WriteString(m.styles.Status.Render("✓ " + m.status))
		}
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Muted.Render("1-5 tabs · w switch user · q quit"))
	return b.String()
}

func (m *Model) viewUsers() string {
	var b strings.Builder
	b.WriteString(m.styles.ColHeader.Render(fmt.Sprintf("%-4s %-20s %-6s %-9s %-18s %s", "ID", "Name", "Role", "Status", "Claimed Tickets", "Claimed Tasks")))
	b.WriteString("\n")
	for _, user := range m.deps.Registry.ListUsers() {
		fmt.Fprintf(&b, "%-4d %-20s %-6s %-9s %-18s %s\n",
			user.ID, user.Name, user.Role, user.Status,
			formatIDs(user.ClaimedTickets), formatIDs(user.ClaimedTasks))
	}
	return b.String()
}

func (m *Model) viewDashboard() string {
	overview := m.deps.Stats.Overview()
	var b strings.Builder
	b.WriteString(m.styles.ColHeader.Render(fmt.Sprintf("%-10s %8s %8s %8s %8s", "", "Created", "Resolved", "Deleted", "Open")))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%-10s %8d %8d %8d %8d\n", "Tickets",
		overview.Tickets.Created, overview.Tickets.Resolved, overview.Tickets.Deleted, overview.Tickets.Open)
	fmt.Fprintf(&b, "%-10s %8d %8d %8d %8d\n", "Tasks",
		overview.Tasks.Created, overview.Tasks.Resolved, overview.Tasks.Deleted, overview.Tasks.Open)
	return b.String()
}

func formatIDs(ids []int) string {
	if len(ids) == 0 {
		return "-"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprint(id)
	}
	return strings.Join(parts, ",")
}
