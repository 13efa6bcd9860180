package utils

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("LoadConfig succeeded on a missing file")
	}
	if !strings.Contains(err.Error(), "[LoadConfig] failed to read file") {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.Pattern != DefaultConfig().Pattern {
		t.Fatal("LoadConfig did not fall back to defaults")
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `{"tick_interval": 500000000, "pattern": "acorn", "use_parallel": false}`)
	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.TickInterval != 500*time.Millisecond || config.Pattern != "acorn" || config.UseParallel {
		t.Fatalf("overrides not applied: %+v", config)
	}
	if config.ViewportWidth != DefaultConfig().ViewportWidth {
		t.Fatal("unspecified field lost its default")
	}
}

func TestLoadConfigRejectsBadInput(t *testing.T) {
	tests := []struct {
		name, body, want string
	}{
		{"malformed", `{"pattern":`, "failed to unmarshal"},
		{"unknown pattern", `{"pattern": "spaceship"}`, "unknown pattern"},
		{"density", `{"random_density": 1.5}`, "random_density"},
		{"tick range", `{"tick_interval": 10}`, "tick_interval"},
		{"scale bounds", `{"min_camera_scale": 2, "max_camera_scale": 1}`, "min_camera_scale"},
		{"log level", `{"log_level": "loud"}`, "log_level"},
		{"viewport", `{"viewport_width": 0}`, "viewport"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("LoadConfig error = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestBindParsesFlags(t *testing.T) {
	config := DefaultConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	config.Bind(fs)
	if err := fs.Parse([]string{"-tick", "1s", "-pattern", "pulsar", "-x", "-7", "-workers", "3"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if config.TickInterval != time.Second || config.Pattern != "pulsar" || config.PatternX != -7 || config.Workers != 3 {
		t.Fatalf("flags not applied: %+v", config)
	}
}
