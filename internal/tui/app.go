package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"time-commander/internal"
	"time-commander/internal/export"
)

// tickMsg drives the elapsed-time display while the timer runs.
type tickMsg time.Time

// App is the interactive tracker. A single bubbletea event loop drives the
// timer state machine and the history cache synchronously, so neither needs
// locking.
type App struct {
	timer      *internal.Timer
	cache      *internal.HistoryCache
	history    table.Model
	exportFile string
	status     string // transient: export confirmation or save failure
	width      int
	height     int
}

// NewApp wires the tracker screen to an already-initialized timer and cache.
func NewApp(timer *internal.Timer, cache *internal.HistoryCache, exportFile string) *App {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Start", Width: 10},
		{Title: "End", Width: 10},
		{Title: "Total", Width: 10},
		{Title: "Pauses", Width: 8},
	}

	styles := table.DefaultStyles()
	styles.Header = tableHeaderStyle
	styles.Selected = lipgloss.NewStyle()

	history := table.New(
		table.WithColumns(columns),
		table.WithHeight(12),
		table.WithStyles(styles),
	)

	app := &App{
		timer:      timer,
		cache:      cache,
		history:    history,
		exportFile: exportFile,
	}
	app.reloadHistory()
	return app
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tickMsg:
		if a.timer.Running() {
			return a, tick()
		}
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			// Persist a running session before exit so it is not lost.
			a.stopTimer()
			return a, tea.Quit

		case "s":
			a.timer.Start()
			a.status = ""
			return a, tick()

		case "d":
			a.stopTimer()
			return a, nil

		case "e":
			if err := export.WriteFile("csv", a.exportFile, a.cache.Rows()); err != nil {
				internal.LogError("Export failed: %v", err)
				a.status = fmt.Sprintf("Export failed: %v", err)
			} else {
				a.status = fmt.Sprintf("Exported history to %s", a.exportFile)
			}
			return a, nil
		}
	}

	return a, nil
}

// stopTimer ends the running session and rereads the record set. The insert
// is attempted strictly before the cache refresh so the just-stopped
// session is part of the new aggregate.
func (a *App) stopTimer() {
	if !a.timer.Running() {
		return
	}
	if err := a.timer.Stop(); err != nil {
		internal.LogWarn("Record not saved: %v", err)
		a.status = fmt.Sprintf("Record not saved: %v", err)
	}
	a.cache.Refresh()
	a.reloadHistory()
}

func (a *App) reloadHistory() {
	rows := a.cache.Rows()
	tableRows := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		tableRows = append(tableRows, table.Row{
			r.RecordDate,
			r.StartTime,
			r.EndTime,
			internal.FormatDuration(r.TotalDuration),
			strconv.Itoa(r.TotalPauses),
		})
	}
	a.history.SetRows(tableRows)
}

// View implements tea.Model
func (a *App) View() string {
	var timerLine string
	if a.timer.Running() {
		timerLine = runningStyle.Render(fmt.Sprintf("Running: %s", internal.FormatDuration(a.timer.Elapsed())))
	} else {
		timerLine = stoppedStyle.Render("Stopped")
	}

	logs := a.timer.Logs()
	// Show only the most recent entries so the panel stays bounded.
	const maxLogLines = 8
	if len(logs) > maxLogLines {
		logs = logs[len(logs)-maxLogLines:]
	}
	logLines := make([]string, 0, len(logs))
	for _, entry := range logs {
		logLines = append(logLines, logStyle.Render(entry))
	}

	timerPanel := panelStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		append([]string{timerLine, ""}, logLines...)...,
	))

	historyPanel := panelStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("Daily History"),
		a.history.View(),
	))

	sections := []string{
		titleStyle.Render("Time Commander"),
		lipgloss.JoinHorizontal(lipgloss.Top, timerPanel, " ", historyPanel),
	}
	if a.status != "" {
		sections = append(sections, statusStyle.Render(a.status))
	}
	sections = append(sections, helpStyle.Render("s: start  d: stop  e: export  q: quit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run starts the interactive tracker and blocks until the user quits.
func Run(timer *internal.Timer, cache *internal.HistoryCache, exportFile string) error {
	p := tea.NewProgram(NewApp(timer, cache, exportFile), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tracker terminated: %w", err)
	}
	return nil
}
