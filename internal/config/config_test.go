package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	chdir(t, t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error without config file: %v", err)
	}

	if cfg.API.URL != "https://lic.deepsrt.cc/webhook/get-srt-from-provider" {
		t.Errorf("unexpected default api.url: %q", cfg.API.URL)
	}
	if cfg.API.Timeout != 60 {
		t.Errorf("api.timeout = %d, want 60", cfg.API.Timeout)
	}
	if cfg.Input.File != "video_ids.csv" {
		t.Errorf("input.file = %q, want video_ids.csv", cfg.Input.File)
	}
	if cfg.Fetch.Delay != 1 {
		t.Errorf("fetch.delay = %d, want 1", cfg.Fetch.Delay)
	}
	if cfg.Fetch.Verbose() {
		t.Error("fetch.log_detail should default to basic")
	}
	if cfg.Log.Timezone != "Asia/Shanghai" {
		t.Errorf("log.timezone = %q, want Asia/Shanghai", cfg.Log.Timezone)
	}
}

func TestLoadConfigFile(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	content := "api:\n  timeout: 10\nfetch:\n  delay: 5\n  log_detail: verbose\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	chdir(t, dir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.API.Timeout != 10 {
		t.Errorf("api.timeout = %d, want 10", cfg.API.Timeout)
	}
	if cfg.Fetch.Delay != 5 {
		t.Errorf("fetch.delay = %d, want 5", cfg.Fetch.Delay)
	}
	if !cfg.Fetch.Verbose() {
		t.Error("fetch.log_detail = verbose should enable Verbose()")
	}
	// Untouched keys keep their defaults.
	if cfg.API.UserAgent != "SRTFetcherGo/1.0" {
		t.Errorf("api.user_agent = %q, want default", cfg.API.UserAgent)
	}
}

func TestLoadMalformedConfigFile(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("api: [broken"), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	chdir(t, dir)

	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed config file")
	}
}

func TestFetchConfigVerbose(t *testing.T) {
	tests := []struct {
		detail   string
		expected bool
	}{
		{detail: "verbose", expected: true},
		{detail: "Verbose", expected: true},
		{detail: "basic", expected: false},
		{detail: "", expected: false},
	}

	for _, tt := range tests {
		cfg := FetchConfig{LogDetail: tt.detail}
		if got := cfg.Verbose(); got != tt.expected {
			t.Errorf("Verbose() with log_detail=%q = %v, want %v", tt.detail, got, tt.expected)
		}
	}
}

// chdir switches to dir for the duration of the test, restoring the
// previous working directory on cleanup. It mirrors testing.T.Chdir,
// which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore chdir: %v", err)
		}
	})
}
