package shell

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Redwards2/MeijerShoppingList/internal/shopping"
)

type stubAisles struct{}

func (stubAisles) Lookup(_ context.Context, item string) (string, bool) {
	if item == "Milk" {
		return "Dairy", true
	}
	return "", false
}

func newTestModel() Model {
	return NewModel(shopping.NewSession(shopping.Options{Aisles: stubAisles{}}), "notty")
}

func typeLine(t *testing.T, m Model, line string) (Model, tea.Cmd) {
	t.Helper()
	m.input.SetValue(line)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(Model), cmd
}

func TestAddAndDelete(t *testing.T) {
	m := newTestModel()
	m, _ = typeLine(t, m, "add Milk")
	m, _ = typeLine(t, m, "add Bananas")

	if got := m.Current.Pickup; len(got) != 1 || got[0] != "Milk" {
		t.Fatalf("expected Milk in pickup, got %v", got)
	}
	if got := m.Current.InStore; len(got) != 1 || got[0] != "Bananas" {
		t.Fatalf("expected Bananas in-store, got %v", got)
	}

	m, _ = typeLine(t, m, "del instore 1")
	if len(m.Current.InStore) != 0 {
		t.Fatalf("expected in-store list empty, got %v", m.Current.InStore)
	}

	m, _ = typeLine(t, m, "del instore 1")
	if !m.Status.IsError || !strings.Contains(m.Status.Text, "no longer exists") {
		t.Fatalf("expected stale index status, got %+v", m.Status)
	}
}

func TestEditPrefillsInput(t *testing.T) {
	m := newTestModel()
	m, _ = typeLine(t, m, "sample")
	m, _ = typeLine(t, m, "edit pickup 2")

	if m.Current.Editing == nil {
		t.Fatal("expected edit cursor")
	}
	if got := m.input.Value(); got != "save Eggs" {
		t.Fatalf("expected prefilled input, got %q", got)
	}

	m, _ = typeLine(t, m, "save Brown Eggs")
	if m.Current.Editing != nil {
		t.Fatal("expected edit to close")
	}
	if m.Current.Pickup[1] != "Brown Eggs" {
		t.Fatalf("expected replacement, got %v", m.Current.Pickup)
	}
}

func TestEscCancelsEdit(t *testing.T) {
	m := newTestModel()
	m, _ = typeLine(t, m, "sample")
	m, _ = typeLine(t, m, "edit instore 1")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)
	if m.Current.Editing != nil {
		t.Fatal("expected edit cancelled")
	}
	if m.Current.InStore[0] != "Bananas" {
		t.Fatalf("cancel must not change items, got %v", m.Current.InStore)
	}
}

func TestSnapshotsRoundTrip(t *testing.T) {
	m := newTestModel()
	m, _ = typeLine(t, m, "sample")
	m, _ = typeLine(t, m, "snap save weekly")
	m, _ = typeLine(t, m, "clear")
	if m.Current.Len() != 0 {
		t.Fatalf("expected empty lists, got %+v", m.Current)
	}

	m, _ = typeLine(t, m, "snap load weekly")
	if m.Current.Len() != 4 {
		t.Fatalf("expected restored lists, got %+v", m.Current)
	}

	m, _ = typeLine(t, m, "snap load nope")
	if m.Status.Text != "Snapshot not found." || m.Current.Len() != 4 {
		t.Fatalf("expected not-found advisory with lists intact, got %+v", m.Status)
	}
}

func TestAisleRunsAsCommand(t *testing.T) {
	m := newTestModel()
	m, _ = typeLine(t, m, "add Milk")
	m, cmd := typeLine(t, m, "aisle Milk")
	if cmd == nil {
		t.Fatal("expected lookup command")
	}

	updated, _ := m.Update(cmd())
	m = updated.(Model)
	if m.Status.Text != "Milk: aisle Dairy" {
		t.Fatalf("unexpected status %q", m.Status.Text)
	}
	if m.Current.Aisles["Milk"] != "Dairy" {
		t.Fatalf("expected aisle annotation in view, got %v", m.Current.Aisles)
	}
}

func TestUnknownCommandAndQuit(t *testing.T) {
	m := newTestModel()
	m, _ = typeLine(t, m, "frobnicate")
	if !m.Status.IsError {
		t.Fatal("expected error status")
	}

	m, cmd := typeLine(t, m, "quit")
	if !m.Quitting || cmd == nil {
		t.Fatal("expected quit")
	}
	if m.View() != "" {
		t.Fatal("expected empty view after quit")
	}
}

func TestViewRendersLists(t *testing.T) {
	m := newTestModel()
	m, _ = typeLine(t, m, "sample")
	out := m.View()
	for _, want := range []string{"Pickup Items", "1. Milk", "In-Store Items", "2. Chicken"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
