package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iw2rmb/tagline/content"
)

func TestLoad_EmptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Return != ReturnAppend || cfg.ReturnPolicy() != content.ReturnAppend {
		t.Fatalf("default return: got %q", cfg.Return)
	}
	if len(cfg.Tags) != 0 {
		t.Fatalf("default tags: got %q, want none", cfg.Tags)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tagline.yaml")
	data := strings.Join([]string{
		"tags: [Go, Rust, Zig]",
		"return: seed",
		"width: 60",
		"log:",
		"  file: /tmp/tagline.log",
		"  debug: true",
	}, "\n")
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got, want := strings.Join(cfg.Tags, ","), "Go,Rust,Zig"; got != want {
		t.Fatalf("tags: got %q, want %q", got, want)
	}
	if cfg.ReturnPolicy() != content.ReturnSeedOrder {
		t.Fatalf("return policy: got %v", cfg.ReturnPolicy())
	}
	if cfg.Width != 60 || cfg.Log.File != "/tmp/tagline.log" || !cfg.Log.Debug {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Placeholder == "" {
		t.Fatalf("unset fields must keep defaults")
	}
}

func TestParse_RejectsInvalid(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{name: "duplicate tags", yaml: "tags: [Go, Go]", want: "Tags"},
		{name: "blank tag", yaml: "tags: [Go, '']", want: "Tags[1]"},
		{name: "bad return", yaml: "return: sorted", want: "Return"},
		{name: "negative width", yaml: "width: -1", want: "Width"},
		{name: "bad yaml", yaml: "tags: [", want: "decode yaml"},
	}
	for _, tc := range cases {
		_, err := Parse([]byte(tc.yaml))
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: error %q does not mention %q", tc.name, err, tc.want)
		}
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
