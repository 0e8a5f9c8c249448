package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(defaultYAML)
	if err != nil {
		t.Fatalf("Parse(defaultYAML) error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults = %+v, want %+v", cfg, Default())
	}
}

func TestParseKeepsDefaultsForMissingFields(t *testing.T) {
	cfg, err := Parse([]byte("strategy: horizon\nhorizon:\n  depth: 6\n"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if cfg.Strategy != "horizon" {
		t.Errorf("Strategy = %q, want horizon", cfg.Strategy)
	}
	if cfg.Horizon.Depth != 6 {
		t.Errorf("Horizon.Depth = %d, want 6", cfg.Horizon.Depth)
	}
	if cfg.Sim.MaxTicks != 500 {
		t.Errorf("Sim.MaxTicks = %d, want default 500", cfg.Sim.MaxTicks)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want default info", cfg.Log.Level)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"negative depth", "horizon:\n  depth: -1\n"},
		{"unknown preset", "horizon:\n  preset: bottomless\n"},
		{"negative ticks", "sim:\n  max_ticks: -5\n"},
		{"malformed", "horizon: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.yaml)); err == nil {
				t.Errorf("Parse(%q) expected error", tt.yaml)
			}
		})
	}
}

func TestHorizonDepth(t *testing.T) {
	tests := []struct {
		name    string
		horizon HorizonConfig
		want    int
	}{
		{"explicit", HorizonConfig{Depth: 5}, 5},
		{"zero falls back", HorizonConfig{Depth: 0}, 3},
		{"shallow preset", HorizonConfig{Depth: 5, Preset: PresetShallow}, 2},
		{"normal preset", HorizonConfig{Preset: PresetNormal}, 4},
		{"deep preset", HorizonConfig{Preset: PresetDeep}, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Horizon: tt.horizon}
			if got := cfg.HorizonDepth(); got != tt.want {
				t.Errorf("HorizonDepth() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRuntime(t *testing.T) {
	cfg := Default()
	cfg.Horizon.Depth = 9
	cfg.Horizon.NearestTarget = true
	cfg.Sim.MaxTicks = 42

	rc := cfg.Runtime()
	if rc.MaxDepth != 9 || !rc.NearestTarget || rc.MaxTicks != 42 {
		t.Errorf("Runtime() = %+v", rc)
	}

	cfg.Sim.MaxTicks = 0
	if got := cfg.Runtime().MaxTicks; got != 500 {
		t.Errorf("Runtime().MaxTicks with zero = %d, want 500", got)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("strategy: bfs\nsim:\n  max_ticks: 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Strategy != "bfs" || cfg.Sim.MaxTicks != 10 {
		t.Errorf("Load(custom) = %+v", cfg)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load(missing) expected error")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	work := t.TempDir()
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(work); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldWD) })

	// Nothing on disk: embedded defaults.
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() without files = %+v, want defaults", cfg)
	}

	// Local configs directory.
	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(work, "configs", "gridmind.yaml"), []byte("strategy: bfs\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if cfg, _ = Load(""); cfg.Strategy != "bfs" {
		t.Errorf("Strategy = %q, want bfs from ./configs", cfg.Strategy)
	}

	// User config wins over the local one.
	if err := os.MkdirAll(filepath.Join(home, ".gridmind"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(home, ".gridmind", "config.yaml"), []byte("strategy: horizon\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if cfg, _ = Load(""); cfg.Strategy != "horizon" {
		t.Errorf("Strategy = %q, want horizon from home", cfg.Strategy)
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if got := ExpandPath("~/.gridmind/runs.db"); got != filepath.Join(home, ".gridmind", "runs.db") {
		t.Errorf("ExpandPath = %q", got)
	}
	if got := ExpandPath("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("ExpandPath absolute = %q", got)
	}
	if got := ExpandPath("~other/x"); got != "~other/x" {
		t.Errorf("ExpandPath ~other = %q", got)
	}
}
