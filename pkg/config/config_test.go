package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	gferrors "github.com/OopsException/ghost-followers/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
out_dir = "results"
write = true
preview = 5

[server]
addr = "127.0.0.1:9000"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	want := Config{
		OutDir:  "results",
		Write:   true,
		Preview: 5,
		Server: ServerConfig{
			Addr:         "127.0.0.1:9000",
			MaxBodyBytes: DefaultMaxBodyBytes,
		},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEmptyStringsKeepDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "out_dir = \"\"\n"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.OutDir != DefaultOutDir {
		t.Errorf("OutDir = %q, want %q", cfg.OutDir, DefaultOutDir)
	}
	if cfg.Preview != DefaultPreview {
		t.Errorf("Preview = %d, want %d", cfg.Preview, DefaultPreview)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed", "out_dir = "},
		{"wrong type", "preview = \"many\""},
		{"negative preview", "preview = -1"},
		{"negative body limit", "[server]\nmax_body_bytes = -5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if !gferrors.Is(err, gferrors.ErrCodeInvalidInput) {
				t.Errorf("GetCode() = %v, want %v", gferrors.GetCode(err), gferrors.ErrCodeInvalidInput)
			}
		})
	}
}

func TestPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	path, err := Path()
	if err != nil {
		t.Fatalf("Path() error: %v", err)
	}
	if want := filepath.Join("/tmp/xdg", AppName, FileName); path != want {
		t.Errorf("Path() = %q, want %q", path, want)
	}

	t.Setenv("XDG_CONFIG_HOME", "")
	path, err = Path()
	if err != nil {
		t.Fatalf("Path() error: %v", err)
	}
	if !strings.HasSuffix(path, filepath.Join(".config", AppName, FileName)) {
		t.Errorf("Path() = %q, should end with .config/%s/%s", path, AppName, FileName)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Write = true
	data, err := cfg.Encode()
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if !strings.Contains(string(data), "out_dir = \"output\"") {
		t.Errorf("Encode() = %s, missing out_dir", data)
	}

	got, err := Load(writeConfig(t, string(data)))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
