package tui

import (
	"path/filepath"
	"strings"
	"testing"

	"nathanbeddoewebdev/ecoprint/internal/config"
	"nathanbeddoewebdev/ecoprint/internal/tui/components"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func setupTestConfig(t *testing.T) {
	t.Helper()
	config.SetPath(filepath.Join(t.TempDir(), "config.json"))
	t.Cleanup(config.ResetPath)
}

// selectKey moves the cursor to the named key.
func selectKey(t *testing.T, m configViewModel, name string) configViewModel {
	t.Helper()
	for i, k := range m.keys {
		if k.Name == name {
			m.cursor = i
			return m
		}
	}
	t.Fatalf("unknown key %q", name)
	return m
}

func TestConfigView_ApplyRejectsInvalid(t *testing.T) {
	setupTestConfig(t)
	m := selectKey(t, newConfigViewModel(&config.Config{}), "region")

	next, cmd := m.apply("atlantis")
	got := next.(configViewModel)

	if cmd != nil {
		t.Error("invalid value must not be saved")
	}
	if got.status.Tone != components.ToneError || !strings.Contains(got.status.Text, "unknown region") {
		t.Errorf("expected region error status, got %+v", got.status)
	}
	if got.cfg.Region != "" {
		t.Errorf("expected region unchanged, got %q", got.cfg.Region)
	}
}

func TestConfigView_ApplySaves(t *testing.T) {
	setupTestConfig(t)
	m := selectKey(t, newConfigViewModel(&config.Config{}), "caching-level")

	next, cmd := m.apply(" 0.8 ")
	if cmd == nil {
		t.Fatal("expected a save command")
	}
	msg := cmd()
	saved, ok := msg.(configSavedMsg)
	if !ok {
		t.Fatalf("expected configSavedMsg, got %T", msg)
	}

	final, _ := next.(configViewModel).Update(saved)
	if status := final.(configViewModel).status.Text; status != `caching-level set to "0.8"` {
		t.Errorf("unexpected status %q", status)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.CachingLevel != "0.8" {
		t.Errorf("expected caching level saved, got %q", cfg.CachingLevel)
	}
}

func TestConfigView_ClearKey(t *testing.T) {
	setupTestConfig(t)
	m := selectKey(t, newConfigViewModel(&config.Config{CDN: "true"}), "cdn")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if cmd == nil {
		t.Fatal("expected a save command")
	}
	final, _ := next.Update(cmd())
	got := final.(configViewModel)

	if got.cfg.CDN != "" {
		t.Errorf("expected cdn cleared, got %q", got.cfg.CDN)
	}
	if got.status != components.Success("cdn cleared") {
		t.Errorf("unexpected status %+v", got.status)
	}
}

func TestConfigView_Navigation(t *testing.T) {
	m := newConfigViewModel(&config.Config{})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	if next.(configViewModel).cursor != 0 {
		t.Error("cursor should not move above the first key")
	}

	for range len(m.keys) + 2 {
		next, _ = next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	}
	if got := next.(configViewModel).cursor; got != len(m.keys)-1 {
		t.Errorf("cursor should stop at the last key, got %d", got)
	}
}

func TestConfigView_View(t *testing.T) {
	m := selectKey(t, newConfigViewModel(&config.Config{Region: "global"}), "region")
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	view := ansi.Strip(next.View())
	for _, want := range []string{"Configuration", "region", "global", "Grid preset used", "(not set)"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in config view", want)
		}
	}
}
