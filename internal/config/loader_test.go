package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConf(t *testing.T, body string) string {
	t.Helper()
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "conf"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "conf", fileName), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return root
}

func TestLoadFromDefaults(t *testing.T) {
	root := writeConf(t, `
site:
  name: Example
  base_url: https://example.com/
  language: en-GB
  twitter_site: "@example"
`)
	cfg, err := LoadFrom(root)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.HTTP.ListenAddr != defaultListenAddr {
		t.Fatalf("listen addr = %q", cfg.HTTP.ListenAddr)
	}
	if cfg.Pages.Source != "file" || cfg.Pages.Dir != filepath.Join(root, "pages") {
		t.Fatalf("pages = %+v", cfg.Pages)
	}
	if cfg.Site.BaseURL != "https://example.com" {
		t.Fatalf("base url = %q, want trailing slash trimmed", cfg.Site.BaseURL)
	}
	if cfg.Log.Dir != filepath.Join(root, "logs") || cfg.Log.Level != "info" {
		t.Fatalf("log = %+v", cfg.Log)
	}
	if cfg.Paths.Root != root {
		t.Fatalf("root = %q", cfg.Paths.Root)
	}
}

func TestLoadFromEnvOverride(t *testing.T) {
	root := writeConf(t, "http:\n  listen_addr: 127.0.0.1:9000\n")
	t.Setenv("HEADMETA_HTTP__LISTEN_ADDR", "0.0.0.0:7000")
	t.Setenv("HEADMETA_SITE__NAME", "From Env")

	cfg, err := LoadFrom(root)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.HTTP.ListenAddr != "0.0.0.0:7000" {
		t.Fatalf("got %q, want env override", cfg.HTTP.ListenAddr)
	}
	if cfg.Site.Name != "From Env" {
		t.Fatalf("got %q, want %q", cfg.Site.Name, "From Env")
	}
}

func TestLoadFromValidation(t *testing.T) {
	cases := map[string]string{
		"bad source":       "pages:\n  source: s3\n",
		"sql without dsn":  "pages:\n  source: sql\n",
		"bad base url":     "site:\n  base_url: not a url\n",
		"bad twitter site": "site:\n  twitter_site: example\n",
		"bad level":        "log:\n  level: loud\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadFrom(writeConf(t, body)); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestLoadFromSQL(t *testing.T) {
	root := writeConf(t, `
pages:
  source: sql
database:
  dsn: "headmeta@tcp(127.0.0.1:3306)/headmeta?parseTime=true"
  password: "vault:secret/data/headmeta#db_password"
`)
	cfg, err := LoadFrom(root)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Pages.Dir != "" {
		t.Fatalf("sql source should not get a pages dir, got %q", cfg.Pages.Dir)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := LoadFrom(t.TempDir()); err == nil {
		t.Fatalf("expected error for missing %s", fileName)
	}
}

func TestLoadCachesAndRootEnv(t *testing.T) {
	root := writeConf(t, "site:\n  name: Cached\n")
	t.Setenv("HEADMETA_ROOT", root)

	if err := Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if got := Get(); got == nil || got.Site.Name != "Cached" {
		t.Fatalf("Get() = %+v", got)
	}
}
