package dashboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/signmaster/internal/catalog"
	"github.com/abhisek/signmaster/internal/progress"
	"github.com/abhisek/signmaster/internal/router"
	"github.com/abhisek/signmaster/internal/screen"
	"github.com/abhisek/signmaster/internal/screens"
	"github.com/abhisek/signmaster/internal/screens/choicequiz"
	"github.com/abhisek/signmaster/internal/screens/picker"
	"github.com/abhisek/signmaster/internal/screens/signlist"
	"github.com/abhisek/signmaster/internal/store"
	"github.com/abhisek/signmaster/internal/ui/components"
	"github.com/abhisek/signmaster/internal/ui/layout"
	"github.com/abhisek/signmaster/internal/ui/theme"
)

type statsLoadedMsg struct {
	Stats progress.Stats
	Err   error
}

type resetDoneMsg struct {
	Err error
}

// DashboardScreen shows a country's progress card and the practice modes.
type DashboardScreen struct {
	svc          *screens.Services
	cat          *catalog.Catalog
	stats        *progress.Stats
	menu         components.Menu
	confirmReset bool
	errMsg       string
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.Resumer = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)
var _ screen.HeaderStatus = (*DashboardScreen)(nil)

// New creates a dashboard for cat.
func New(svc *screens.Services, cat *catalog.Catalog) *DashboardScreen {
	d := &DashboardScreen{svc: svc, cat: cat}
	d.menu = d.buildMenu(false)
	return d
}

func (d *DashboardScreen) Init() tea.Cmd {
	return d.loadStats()
}

// Resume reloads stats after a practice screen is popped.
func (d *DashboardScreen) Resume() tea.Cmd {
	return d.loadStats()
}

func (d *DashboardScreen) Title() string {
	return d.cat.Name
}

func (d *DashboardScreen) Status() string {
	if d.stats == nil {
		return d.cat.Flag
	}
	return fmt.Sprintf("%s %d/%d known", d.cat.Flag, d.stats.Known, d.stats.Total)
}

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	if d.confirmReset {
		return []layout.KeyHint{
			{Key: "Y", Description: "Erase progress"},
			{Key: "N", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Countries"},
	}
}

func (d *DashboardScreen) loadStats() tea.Cmd {
	svc, cat := d.svc, d.cat
	return func() tea.Msg {
		ctx := context.Background()
		var attempts []store.QuizAttempt
		if svc.Attempts != nil {
			var err error
			attempts, err = svc.Attempts.Attempts(ctx, cat.Domain, store.QueryOpts{})
			if err != nil {
				return statsLoadedMsg{Err: err}
			}
		}
		return statsLoadedMsg{Stats: svc.Progress.Stats(ctx, cat.Domain, cat.IDs(), attempts)}
	}
}

func (d *DashboardScreen) resetProgress() tea.Cmd {
	svc, domain := d.svc, d.cat.Domain
	return func() tea.Msg {
		return resetDoneMsg{Err: svc.Progress.ResetAll(context.Background(), domain)}
	}
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}

func (d *DashboardScreen) buildMenu(examUnlocked bool) components.Menu {
	examHint := fmt.Sprintf("unlocks at %d known signs", progress.ExamUnlockThreshold)
	if examUnlocked {
		examHint = ""
	}
	selected := d.menu.Selected
	m := components.NewMenu([]components.MenuItem{
		{Label: "Flashcards", Action: func() tea.Cmd {
			return push(picker.New(d.svc, d.cat, picker.PurposeFlashcards))
		}},
		{Label: "Multiple choice quiz", Action: func() tea.Cmd {
			return push(picker.New(d.svc, d.cat, picker.PurposeChoice))
		}},
		{Label: "True or false", Action: func() tea.Cmd {
			return push(picker.New(d.svc, d.cat, picker.PurposeTrueFalse))
		}},
		{Label: "Browse signs", Action: func() tea.Cmd {
			return push(signlist.New(d.svc, d.cat))
		}},
		{Label: "Master exam", Hint: examHint, Disabled: !examUnlocked, Action: func() tea.Cmd {
			return push(choicequiz.NewExam(d.svc, d.cat))
		}},
		{Label: "Reset progress", Action: func() tea.Cmd {
			d.confirmReset = true
			return nil
		}},
	})
	if selected < len(m.Items) && !m.Items[selected].Disabled {
		m.Selected = selected
	}
	return m
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.Err != nil {
			d.errMsg = msg.Err.Error()
			return d, nil
		}
		d.errMsg = ""
		d.stats = &msg.Stats
		d.menu = d.buildMenu(msg.Stats.ExamUnlocked)
		return d, nil

	case resetDoneMsg:
		if msg.Err != nil {
			d.errMsg = msg.Err.Error()
			return d, nil
		}
		return d, d.loadStats()

	case tea.KeyMsg:
		if d.confirmReset {
			switch msg.String() {
			case "y", "Y":
				d.confirmReset = false
				return d, d.resetProgress()
			case "n", "N":
				d.confirmReset = false
			}
			return d, nil
		}
		var cmd tea.Cmd
		d.menu, cmd = d.menu.Update(msg)
		return d, cmd
	}
	return d, nil
}

func (d *DashboardScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	compact := layout.IsCompactHeight(height)

	var b strings.Builder
	b.WriteString(screens.Centered(width, theme.Title, d.cat.Flag+"  "+d.cat.Name))
	b.WriteString("\n")
	if d.cat.LocalizedName != "" && !compact {
		b.WriteString(screens.Centered(width, theme.Subtitle, d.cat.LocalizedName))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if compact {
		b.WriteString(screens.Centered(width, theme.Body, d.summaryLine()))
		b.WriteString("\n\n")
	} else {
		card := d.renderStats(cw)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, components.Panel(card, cw)))
		b.WriteString("\n\n")
	}

	if d.confirmReset {
		prompt := theme.Incorrect.Render("Erase all known signs for " + d.cat.Name + "?  (y/n)")
		b.WriteString(screens.Centered(width, lipgloss.NewStyle(), prompt))
		return b.String()
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, d.menu.View()))
	return b.String()
}

// summaryLine condenses the stats panel for short terminals.
func (d *DashboardScreen) summaryLine() string {
	switch {
	case d.errMsg != "":
		return "Could not load progress: " + d.errMsg
	case d.stats == nil:
		return "Loading progress..."
	}
	st := d.stats
	exam := "exam locked"
	if st.ExamUnlocked {
		exam = "exam unlocked"
	}
	return fmt.Sprintf("%d of %d signs  ·  %s  ·  %s", st.Known, st.Total, st.Level, exam)
}

func (d *DashboardScreen) renderStats(cw int) string {
	if d.errMsg != "" {
		return theme.Incorrect.Render("Could not load progress: " + d.errMsg)
	}
	if d.stats == nil {
		return theme.Hint.Render("Loading progress...")
	}
	st := d.stats

	lines := []string{
		theme.Label.Render("Known    ") + theme.Body.Render(fmt.Sprintf("%d of %d signs", st.Known, st.Total)),
		components.NewProgressBar("", st.Percent/100, true, cw-6).View(),
		theme.Label.Render("Level    ") + theme.Selected.Render(st.Level.String()),
	}
	if st.QuizzesTaken > 0 {
		lines = append(lines, theme.Label.Render("Quizzes  ")+theme.Body.Render(
			fmt.Sprintf("%d taken, %.0f%% average", st.QuizzesTaken, st.AverageScore*100)))
	} else {
		lines = append(lines, theme.Label.Render("Quizzes  ")+theme.Hint.Render("none yet"))
	}
	if st.ExamUnlocked {
		lines = append(lines, theme.Correct.Render("Master exam unlocked"))
	} else {
		lines = append(lines, theme.Locked.Render(fmt.Sprintf("Master exam locked (%d more to go)",
			progress.ExamUnlockThreshold-st.Known)))
	}
	return strings.Join(lines, "\n")
}
