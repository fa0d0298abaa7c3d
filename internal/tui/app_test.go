package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"time-commander/internal"
	"time-commander/testutil"
)

func newTestApp(t *testing.T) (*App, *internal.SQLiteStore) {
	t.Helper()
	db := testutil.CreateRecordDB(t)
	store := internal.NewSQLiteStore(db)
	timer := internal.NewTimer(store)
	cache := internal.NewHistoryCache(store)
	cache.Refresh()
	exportFile := filepath.Join(testutil.CreateTempDir(t), "history.csv")
	return NewApp(timer, cache, exportFile), store
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestAppStartStop(t *testing.T) {
	app, store := newTestApp(t)

	model, cmd := app.Update(keyMsg("s"))
	app = model.(*App)
	if !app.timer.Running() {
		t.Error("pressing s did not start the timer")
	}
	if cmd == nil {
		t.Error("starting the timer did not schedule a tick")
	}

	model, _ = app.Update(keyMsg("d"))
	app = model.(*App)
	if app.timer.Running() {
		t.Error("pressing d did not stop the timer")
	}

	records, err := store.QueryAll()
	if err != nil {
		t.Fatalf("QueryAll() error = %v", err)
	}
	if len(records) != 1 {
		t.Errorf("store has %d records after start/stop, want 1", len(records))
	}
	if got := len(app.cache.Rows()); got != 1 {
		t.Errorf("cache has %d rows after stop, want 1", got)
	}
}

func TestAppQuitStopsRunningTimer(t *testing.T) {
	app, store := newTestApp(t)

	model, _ := app.Update(keyMsg("s"))
	app = model.(*App)
	_, cmd := app.Update(keyMsg("q"))

	if cmd == nil {
		t.Fatal("pressing q did not return a command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("pressing q returned %v, want tea.QuitMsg", msg)
	}
	records, err := store.QueryAll()
	if err != nil {
		t.Fatalf("QueryAll() error = %v", err)
	}
	if len(records) != 1 {
		t.Errorf("quit lost the running session: %d records, want 1", len(records))
	}
}

func TestAppExport(t *testing.T) {
	app, _ := newTestApp(t)

	model, _ := app.Update(keyMsg("s"))
	app = model.(*App)
	model, _ = app.Update(keyMsg("d"))
	app = model.(*App)

	model, _ = app.Update(keyMsg("e"))
	app = model.(*App)

	data, err := os.ReadFile(app.exportFile)
	if err != nil {
		t.Fatalf("export file not written: %v", err)
	}
	if !strings.HasPrefix(string(data), "Date,Start,End,Total,Pauses") {
		t.Errorf("export file missing header: %q", string(data))
	}
	if !strings.Contains(app.status, "Exported") {
		t.Errorf("status = %q, want export confirmation", app.status)
	}
}

func TestAppViewShowsState(t *testing.T) {
	app, _ := newTestApp(t)

	if view := app.View(); !strings.Contains(view, "Stopped") {
		t.Error("stopped view missing Stopped status")
	}

	model, _ := app.Update(keyMsg("s"))
	app = model.(*App)
	view := app.View()
	if !strings.Contains(view, "Running") {
		t.Error("running view missing Running status")
	}
	if !strings.Contains(view, "Timer started.") {
		t.Error("running view missing log entry")
	}
}

func TestAppIgnoredKeysDoNotPanic(t *testing.T) {
	app, _ := newTestApp(t)
	for _, key := range []string{"x", "1", " "} {
		model, _ := app.Update(keyMsg(key))
		app = model.(*App)
	}
	if app.timer.Running() {
		t.Error("unbound keys changed timer state")
	}
}
