// Package screenstest provides fixtures for screen tests: services backed by
// an in-memory SQLite store, a small catalog and key message helpers.
package screenstest

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/signmaster/internal/catalog"
	"github.com/abhisek/signmaster/internal/enrich"
	"github.com/abhisek/signmaster/internal/progress"
	"github.com/abhisek/signmaster/internal/screens"
	"github.com/abhisek/signmaster/internal/session"
	"github.com/abhisek/signmaster/internal/store"
)

// Domain is the domain of the fixture catalog.
const Domain = "cz"

// Signs returns six signs: four warning, two prohibition.
func Signs() []catalog.SignRecord {
	names := []struct {
		name string
		cat  catalog.Category
	}{
		{"Dangerous bend", catalog.CategoryWarning},
		{"Slippery road", catalog.CategoryWarning},
		{"Road works", catalog.CategoryWarning},
		{"Falling rocks", catalog.CategoryWarning},
		{"No entry", catalog.CategoryProhibition},
		{"No overtaking", catalog.CategoryProhibition},
	}
	out := make([]catalog.SignRecord, len(names))
	for i, n := range names {
		out[i] = catalog.SignRecord{
			ID:            i + 1,
			CanonicalName: n.name,
			LocalizedName: n.name,
			Category:      n.cat,
			Description:   fmt.Sprintf("Sign number %d.", i+1),
		}
	}
	return out
}

// Services returns services over a fresh in-memory store. Enrich is a
// MockSource with no queued results; tests queue their own.
func Services(t testing.TB) *screens.Services {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	st, err := store.Open("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	reg := catalog.NewRegistry()
	reg.Add(catalog.New(Domain, "Czech Republic", Signs()))

	rng := rand.New(rand.NewPCG(7, 11))
	ps := progress.NewStore(st.KV())
	return &screens.Services{
		Registry:      reg,
		Progress:      ps,
		Attempts:      st.AttemptRepo(),
		Engine:        session.NewEngine(ps, rng),
		Enrich:        enrich.NewMockSource(),
		DefaultDomain: Domain,
		QuizSize:      4,
		Rand:          rng,
	}
}

// Catalog returns the fixture catalog from svc.
func Catalog(t testing.TB, svc *screens.Services) *catalog.Catalog {
	t.Helper()
	c, err := svc.Registry.Get(Domain)
	if err != nil {
		t.Fatalf("fixture catalog: %v", err)
	}
	return c
}

// KeyPress builds a printable key press.
func KeyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// SpecialKey builds a non-printable key press such as tea.KeyEnter.
func SpecialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// Exec runs cmd and returns its message, or nil for a nil command.
func Exec(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
