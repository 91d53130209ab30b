package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"timekeep/internal/config"
	"timekeep/internal/duration"
	"timekeep/internal/timer"
	"timekeep/internal/tracker"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#4A90E2")).
			Padding(0, 1).
			MarginBottom(1)

	runningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	idleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	clockStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F7DC6F")).
			Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(1, 2).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

type tickMsg time.Time

// Model is the live dashboard: a 1-second tick drives the tracker's timer
// and re-renders the running clock, per-task totals and today's sessions.
type Model struct {
	ctx     context.Context
	tracker *tracker.Tracker
	config  *config.Config
	width   int
	height  int
	err     error
}

// NewModel creates a dashboard model over an initialized tracker.
func NewModel(ctx context.Context, trk *tracker.Tracker, cfg *config.Config) Model {
	return Model{
		ctx:     ctx,
		tracker: trk,
		config:  cfg,
	}
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.config.Timer.TickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tickMsg:
		m.err = m.tracker.Tick(m.ctx)
		return m, m.tickCmd()
	}
	return m, nil
}

// handleKey dispatches dashboard key bindings.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "s":
		if m.tracker.TimerState() == timer.StateRunning {
			m.err = m.tracker.StopTimer(m.ctx)
		} else {
			m.err = m.tracker.StartTimer(m.ctx)
		}
	case "r":
		m.err = m.tracker.ResetTimer(m.ctx)
	default:
		// Digits select the task at that position in the registry.
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			idx := int(key[0] - '1')
			tasks := m.tracker.Tasks()
			if idx < len(tasks) {
				m.err = m.tracker.SelectTask(m.ctx, tasks[idx].ID)
			}
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(headerStyle.Width(m.width).Render(
		fmt.Sprintf("timekeep  %s", time.Now().Format("Mon Jan 2 2006 15:04:05"))))
	b.WriteString("\n")

	b.WriteString(boxStyle.Render(m.timerView()))
	b.WriteString("\n")
	b.WriteString(boxStyle.Render(m.statsView()))
	b.WriteString("\n")
	b.WriteString(boxStyle.Render(m.sessionsView()))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(idleStyle.Render(fmt.Sprintf("error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("[1-9] select task  [s] start/stop  [r] reset  [q] quit"))
	return b.String()
}

// timerView renders the running clock.
func (m Model) timerView() string {
	task := m.tracker.CurrentTask()
	if task == nil {
		return idleStyle.Render("No active task") + "\n" + clockStyle.Render(duration.Clock(0))
	}

	state := idleStyle.Render(m.tracker.TimerState().String())
	if m.tracker.TimerState() == timer.StateRunning {
		state = runningStyle.Render("running")
	}
	return fmt.Sprintf("%s  %s\n%s", task.Name, state, clockStyle.Render(duration.Clock(m.tracker.ElapsedMs())))
}

// statsView renders recomputed per-task totals.
func (m Model) statsView() string {
	totals, err := m.tracker.Stats().PerTaskTotals(m.ctx)
	if err != nil {
		return fmt.Sprintf("stats unavailable: %v", err)
	}

	var b strings.Builder
	b.WriteString("TASK TOTALS\n")
	for i, tt := range totals {
		b.WriteString(fmt.Sprintf("[%d] %-20s %s\n", i+1, tt.Task.Name, duration.ShortHM(tt.TotalMs)))
	}
	return strings.TrimRight(b.String(), "\n")
}

// sessionsView renders today's most recent timer sessions.
func (m Model) sessionsView() string {
	sessions, err := m.tracker.TodaySessions(m.ctx)
	if err != nil {
		return fmt.Sprintf("sessions unavailable: %v", err)
	}
	if len(sessions) == 0 {
		return "No sessions recorded today."
	}

	limit := m.config.Timer.HistoryLimit
	var b strings.Builder
	b.WriteString("TODAY\n")
	for i := len(sessions) - 1; i >= 0 && len(sessions)-i <= limit; i-- {
		s := sessions[i]
		b.WriteString(fmt.Sprintf("%s  %-20s %s\n",
			s.StartedAt.Format("15:04"), s.TaskName, duration.LongHMS(s.DurationMs)))
	}
	return strings.TrimRight(b.String(), "\n")
}

// Run starts the dashboard and blocks until the user quits.
func Run(ctx context.Context, trk *tracker.Tracker, cfg *config.Config) error {
	program := tea.NewProgram(NewModel(ctx, trk, cfg), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}
